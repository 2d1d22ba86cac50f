package owners

import (
	"net/url"

	"vet-clinic-web/internal/platform/validation"
	"vet-clinic-web/internal/resource"
)

type Form struct {
	ID        int64
	Nombre    string `validate:"required"`
	Direccion string
	Telefono  string
	Email     string `validate:"omitempty,simpleemail"`
}

type Payload struct {
	Nombre    string  `json:"nombre"`
	Direccion *string `json:"direccion"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email"`
}

func FormFromValues(v url.Values) Form {
	return Form{
		ID:        resource.ID(v, "id"),
		Nombre:    resource.Text(v, "nombre"),
		Direccion: resource.Text(v, "direccion"),
		Telefono:  resource.Text(v, "telefono"),
		Email:     resource.Text(v, "email"),
	}
}

func FormFromRecord(o Owner) Form {
	return Form{
		ID:        o.ID,
		Nombre:    o.Nombre,
		Direccion: resource.Deref(o.Direccion),
		Telefono:  resource.Deref(o.Telefono),
		Email:     resource.Deref(o.Email),
	}
}

func (f Form) Identifier() int64 { return f.ID }

func (f Form) Validate() error {
	return validation.Check(f, validation.Messages{
		"Nombre": "El nombre es requerido",
		"Email":  "El formato del email no es válido",
	})
}

func (f Form) Payload() any {
	return Payload{
		Nombre:    f.Nombre,
		Direccion: resource.OptString(f.Direccion),
		Telefono:  resource.OptString(f.Telefono),
		Email:     resource.OptString(f.Email),
	}
}
