package medications

import (
	"net/url"

	"vet-clinic-web/internal/platform/logger"
	"vet-clinic-web/internal/platform/validation"
	"vet-clinic-web/internal/ports/gateway"
	"vet-clinic-web/internal/resource"
)

const Path = "/Medicamentos"

type Medication struct {
	ID              int64   `json:"id"`
	Nombre          string  `json:"nombre"`
	PrincipioActivo *string `json:"principioActivo"`
	Presentacion    *string `json:"presentacion"`
	Descripcion     *string `json:"descripcion"`
}

func (m Medication) RecordID() int64 { return m.ID }

type Form struct {
	ID              int64
	Nombre          string `validate:"required"`
	PrincipioActivo string
	Presentacion    string
	Descripcion     string
}

type Payload struct {
	Nombre          string  `json:"nombre"`
	PrincipioActivo *string `json:"principioActivo"`
	Presentacion    *string `json:"presentacion"`
	Descripcion     *string `json:"descripcion"`
}

func (f Form) Identifier() int64 { return f.ID }

func (f Form) Validate() error {
	return validation.Check(f, validation.Messages{"Nombre": "El nombre es requerido"})
}

func (f Form) Payload() any {
	return Payload{
		Nombre:          f.Nombre,
		PrincipioActivo: resource.OptString(f.PrincipioActivo),
		Presentacion:    resource.OptString(f.Presentacion),
		Descripcion:     resource.OptString(f.Descripcion),
	}
}

type Controller = resource.Controller[Medication, Form]

func Definition() resource.Definition[Medication, Form] {
	return resource.Definition[Medication, Form]{
		Path:           Path,
		Entity:         "Medicamento",
		NewTitle:       "Nuevo Medicamento",
		EditTitle:      func(m Medication) string { return "Editar Medicamento: " + m.Nombre },
		EmptyText:      "No hay medicamentos",
		LoadErrorTitle: "Error al cargar",
		ConfirmDelete:  "¿Eliminar este medicamento?",

		Blank: func() Form { return Form{} },
		Bind: func(v url.Values) Form {
			return Form{
				ID:              resource.ID(v, "id"),
				Nombre:          resource.Text(v, "nombre"),
				PrincipioActivo: resource.Text(v, "principioActivo"),
				Presentacion:    resource.Text(v, "presentacion"),
				Descripcion:     resource.Text(v, "descripcion"),
			}
		},
		FromRecord: func(m Medication) Form {
			return Form{
				ID:              m.ID,
				Nombre:          m.Nombre,
				PrincipioActivo: resource.Deref(m.PrincipioActivo),
				Presentacion:    resource.Deref(m.Presentacion),
				Descripcion:     resource.Deref(m.Descripcion),
			}
		},
		Row: func(m Medication) resource.Row {
			r := resource.Row{ID: m.ID, Title: m.Nombre}
			if p := resource.Deref(m.PrincipioActivo); p != "" {
				r.Details = append(r.Details, resource.Detail{Label: "Principio", Value: p})
			}
			if p := resource.Deref(m.Presentacion); p != "" {
				r.Details = append(r.Details, resource.Detail{Label: "Presentación", Value: p})
			}
			return r
		},
	}
}

func NewController(api gateway.Requester, n resource.Notifier, log logger.Logger) *Controller {
	return resource.New(Definition(), api, n, log)
}
