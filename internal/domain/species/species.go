package species

import (
	"net/url"

	"vet-clinic-web/internal/platform/logger"
	"vet-clinic-web/internal/platform/validation"
	"vet-clinic-web/internal/ports/gateway"
	"vet-clinic-web/internal/resource"
)

const Path = "/Especies"

type Species struct {
	ID          int64   `json:"id"`
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion"`
}

func (s Species) RecordID() int64 { return s.ID }

type Form struct {
	ID          int64
	Nombre      string `validate:"required"`
	Descripcion string
}

type Payload struct {
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion"`
}

func (f Form) Identifier() int64 { return f.ID }

func (f Form) Validate() error {
	return validation.Check(f, validation.Messages{"Nombre": "El nombre es requerido"})
}

func (f Form) Payload() any {
	return Payload{Nombre: f.Nombre, Descripcion: resource.OptString(f.Descripcion)}
}

type Controller = resource.Controller[Species, Form]

func Definition() resource.Definition[Species, Form] {
	return resource.Definition[Species, Form]{
		Path:           Path,
		Entity:         "Especie",
		Feminine:       true,
		NewTitle:       "Nueva Especie",
		EditTitle:      func(s Species) string { return "Editar Especie: " + s.Nombre },
		EmptyText:      "No hay especies",
		LoadErrorTitle: "Error al cargar",
		ConfirmDelete:  "¿Eliminar esta especie? No se puede eliminar si tiene animales asociados.",

		Blank: func() Form { return Form{} },
		Bind: func(v url.Values) Form {
			return Form{
				ID:          resource.ID(v, "id"),
				Nombre:      resource.Text(v, "nombre"),
				Descripcion: resource.Text(v, "descripcion"),
			}
		},
		FromRecord: func(s Species) Form {
			return Form{ID: s.ID, Nombre: s.Nombre, Descripcion: resource.Deref(s.Descripcion)}
		},
		Row: func(s Species) resource.Row {
			r := resource.Row{ID: s.ID, Title: s.Nombre}
			if d := resource.Deref(s.Descripcion); d != "" {
				r.Notes = []string{d}
			}
			return r
		},
	}
}

func NewController(api gateway.Requester, n resource.Notifier, log logger.Logger) *Controller {
	return resource.New(Definition(), api, n, log)
}
