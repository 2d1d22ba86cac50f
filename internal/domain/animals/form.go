package animals

import (
	"net/url"

	"vet-clinic-web/internal/platform/datefmt"
	"vet-clinic-web/internal/platform/validation"
	"vet-clinic-web/internal/resource"
)

const requiredMessage = "El nombre y la especie son requeridos"

// Form es lo que el usuario cargó en el formulario de animales.
type Form struct {
	ID                    int64
	Nombre                string `validate:"required"`
	EspecieID             int64  `validate:"required"`
	RazaID                int64
	FechaNacimiento       string
	Color                 string
	Peso                  string
	DuenoID               int64
	ObservacionesHistoria string
}

// Payload es el body de POST/PUT /Animales.
type Payload struct {
	Nombre                string   `json:"nombre"`
	EspecieID             int64    `json:"especieId"`
	RazaID                *int64   `json:"razaId"`
	FechaNacimiento       *string  `json:"fechaNacimiento"`
	Color                 *string  `json:"color"`
	Peso                  *float64 `json:"peso"`
	DuenoID               *int64   `json:"duenoId"`
	ObservacionesHistoria *string  `json:"observacionesHistoria"`
}

func FormFromValues(v url.Values) Form {
	return Form{
		ID:                    resource.ID(v, "id"),
		Nombre:                resource.Text(v, "nombre"),
		EspecieID:             resource.ID(v, "especieId"),
		RazaID:                resource.ID(v, "razaId"),
		FechaNacimiento:       resource.Text(v, "fechaNacimiento"),
		Color:                 resource.Text(v, "color"),
		Peso:                  resource.Text(v, "peso"),
		DuenoID:               resource.ID(v, "duenoId"),
		ObservacionesHistoria: resource.Text(v, "observacionesHistoria"),
	}
}

func FormFromRecord(a Animal) Form {
	return Form{
		ID:              a.ID,
		Nombre:          a.Nombre,
		EspecieID:       a.EspecieID,
		RazaID:          resource.DerefID(a.RazaID),
		FechaNacimiento: datefmt.DateInput(a.FechaNacimiento),
		Color:           resource.Deref(a.Color),
		Peso:            resource.FormatFloat(a.Peso),
		DuenoID:         resource.DerefID(a.DuenoID),
	}
}

func (f Form) Identifier() int64 { return f.ID }

func (f Form) Validate() error {
	return validation.Check(f, validation.Messages{
		"Nombre":    requiredMessage,
		"EspecieID": requiredMessage,
	})
}

func (f Form) Payload() any {
	return Payload{
		Nombre:                f.Nombre,
		EspecieID:             f.EspecieID,
		RazaID:                resource.OptID(f.RazaID),
		FechaNacimiento:       resource.OptString(f.FechaNacimiento),
		Color:                 resource.OptString(f.Color),
		Peso:                  resource.OptFloat(f.Peso),
		DuenoID:               resource.OptID(f.DuenoID),
		ObservacionesHistoria: resource.OptString(f.ObservacionesHistoria),
	}
}
