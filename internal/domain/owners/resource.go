package owners

import (
	"vet-clinic-web/internal/platform/logger"
	"vet-clinic-web/internal/ports/gateway"
	"vet-clinic-web/internal/resource"
)

const Path = "/Duenos"

type Controller = resource.Controller[Owner, Form]

func Definition() resource.Definition[Owner, Form] {
	return resource.Definition[Owner, Form]{
		Path:           Path,
		Entity:         "Dueño",
		NewTitle:       "Nuevo Dueño",
		EditTitle:      func(o Owner) string { return "Editar Dueño: " + o.Nombre },
		EmptyText:      "No hay dueños registrados",
		LoadErrorTitle: "Error al cargar dueños",
		ConfirmDelete:  "¿Eliminar este dueño? Los animales asociados quedarán sin dueño.",

		Blank:      func() Form { return Form{} },
		Bind:       FormFromValues,
		FromRecord: FormFromRecord,
		Row: func(o Owner) resource.Row {
			r := resource.Row{ID: o.ID, Title: o.Nombre}
			if o.Email != nil && *o.Email != "" {
				r.Notes = append(r.Notes, *o.Email)
			}
			if o.Telefono != nil && *o.Telefono != "" {
				r.Notes = append(r.Notes, *o.Telefono)
			}
			return r
		},
	}
}

func NewController(api gateway.Requester, n resource.Notifier, log logger.Logger) *Controller {
	return resource.New(Definition(), api, n, log)
}
