package treatments

import (
	"fmt"

	"vet-clinic-web/internal/platform/datefmt"
	"vet-clinic-web/internal/platform/logger"
	"vet-clinic-web/internal/ports/gateway"
	"vet-clinic-web/internal/resource"
)

const Path = "/Tratamientos"

type Controller = resource.Controller[Treatment, Form]

func Definition() resource.Definition[Treatment, Form] {
	return resource.Definition[Treatment, Form]{
		Path:           Path,
		Entity:         "Tratamiento",
		NewTitle:       "Nuevo Tratamiento",
		EditTitle:      func(t Treatment) string { return fmt.Sprintf("Editar Tratamiento #%d", t.ID) },
		EmptyText:      "No hay tratamientos registrados",
		LoadErrorTitle: "Error al cargar tratamientos",
		ConfirmDelete:  "¿Eliminar este tratamiento? Esta acción no se puede deshacer.",

		Blank:      func() Form { return Form{} },
		Bind:       FormFromValues,
		FromRecord: FormFromRecord,
		Row:        row,
	}
}

func NewController(api gateway.Requester, n resource.Notifier, log logger.Logger) *Controller {
	return resource.New(Definition(), api, n, log)
}

func row(t Treatment) resource.Row {
	r := resource.Row{
		ID:    t.ID,
		Title: fmt.Sprintf("Tratamiento #%d", t.ID),
		Details: []resource.Detail{
			{Label: "Animal", Value: t.Animal.NameOr("N/A")},
			{Label: "Veterinario", Value: t.Veterinario.NameOr("N/A")},
		},
		Notes: []string{t.Descripcion},
	}
	if t.Medicamento != nil {
		r.Notes = append(r.Notes, t.Medicamento.Nombre)
	}
	r.Notes = append(r.Notes, datefmt.Short(t.FechaTratamiento))
	return r
}
