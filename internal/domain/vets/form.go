package vets

import (
	"net/url"

	"vet-clinic-web/internal/platform/validation"
	"vet-clinic-web/internal/resource"
)

const requiredMessage = "El nombre y el número de licencia son requeridos"

type Form struct {
	ID             int64
	Nombre         string `validate:"required"`
	Direccion      string
	Telefono       string
	NumeroLicencia string `validate:"required"`
	Especialidad   string
}

type Payload struct {
	Nombre         string  `json:"nombre"`
	Direccion      *string `json:"direccion"`
	Telefono       *string `json:"telefono"`
	NumeroLicencia string  `json:"numeroLicencia"`
	Especialidad   *string `json:"especialidad"`
}

func FormFromValues(v url.Values) Form {
	return Form{
		ID:             resource.ID(v, "id"),
		Nombre:         resource.Text(v, "nombre"),
		Direccion:      resource.Text(v, "direccion"),
		Telefono:       resource.Text(v, "telefono"),
		NumeroLicencia: resource.Text(v, "numeroLicencia"),
		Especialidad:   resource.Text(v, "especialidad"),
	}
}

func FormFromRecord(v Veterinarian) Form {
	return Form{
		ID:             v.ID,
		Nombre:         v.Nombre,
		Direccion:      resource.Deref(v.Direccion),
		Telefono:       resource.Deref(v.Telefono),
		NumeroLicencia: v.NumeroLicencia,
		Especialidad:   resource.Deref(v.Especialidad),
	}
}

func (f Form) Identifier() int64 { return f.ID }

func (f Form) Validate() error {
	return validation.Check(f, validation.Messages{
		"Nombre":         requiredMessage,
		"NumeroLicencia": requiredMessage,
	})
}

func (f Form) Payload() any {
	return Payload{
		Nombre:         f.Nombre,
		Direccion:      resource.OptString(f.Direccion),
		Telefono:       resource.OptString(f.Telefono),
		NumeroLicencia: f.NumeroLicencia,
		Especialidad:   resource.OptString(f.Especialidad),
	}
}
