package vets

import (
	"vet-clinic-web/internal/platform/logger"
	"vet-clinic-web/internal/ports/gateway"
	"vet-clinic-web/internal/resource"
)

const Path = "/Veterinarios"

type Controller = resource.Controller[Veterinarian, Form]

func Definition() resource.Definition[Veterinarian, Form] {
	return resource.Definition[Veterinarian, Form]{
		Path:           Path,
		Entity:         "Veterinario",
		NewTitle:       "Nuevo Veterinario",
		EditTitle:      func(v Veterinarian) string { return "Editar Veterinario: " + v.Nombre },
		EmptyText:      "No hay veterinarios registrados",
		LoadErrorTitle: "Error al cargar veterinarios",
		ConfirmDelete:  "¿Eliminar este veterinario? Esto también eliminará todos sus tratamientos asociados.",

		Blank:      func() Form { return Form{} },
		Bind:       FormFromValues,
		FromRecord: FormFromRecord,
		Row:        row,
	}
}

func NewController(api gateway.Requester, n resource.Notifier, log logger.Logger) *Controller {
	return resource.New(Definition(), api, n, log)
}

func row(v Veterinarian) resource.Row {
	r := resource.Row{
		ID:      v.ID,
		Title:   v.Nombre,
		Details: []resource.Detail{{Label: "Licencia", Value: v.NumeroLicencia}},
	}
	if v.Especialidad != nil && *v.Especialidad != "" {
		r.Details = append(r.Details, resource.Detail{Label: "Especialidad", Value: *v.Especialidad})
	}
	if v.Telefono != nil && *v.Telefono != "" {
		r.Notes = append(r.Notes, *v.Telefono)
	}
	return r
}
