package animals

import (
	"context"

	"vet-clinic-web/internal/domain/histories"
	"vet-clinic-web/internal/platform/logger"
	"vet-clinic-web/internal/ports/gateway"
	"vet-clinic-web/internal/resource"
)

const Path = "/Animales"

type Controller = resource.Controller[Animal, Form]

func Definition() resource.Definition[Animal, Form] {
	return resource.Definition[Animal, Form]{
		Path:           Path,
		Entity:         "Animal",
		NewTitle:       "Nuevo Animal",
		EditTitle:      func(a Animal) string { return "Editar Animal: " + a.Nombre },
		EmptyText:      "No hay animales registrados",
		LoadErrorTitle: "Error al cargar animales",
		ConfirmDelete:  "¿Eliminar este animal? Esta acción también eliminará su historia clínica.",

		Blank:       func() Form { return Form{} },
		Bind:        FormFromValues,
		FromRecord:  FormFromRecord,
		Row:         row,
		PrepareEdit: withHistoryNotes,
	}
}

func NewController(api gateway.Requester, n resource.Notifier, log logger.Logger) *Controller {
	return resource.New(Definition(), api, n, log)
}

func row(a Animal) resource.Row {
	details := []resource.Detail{{Label: "Especie", Value: a.Especie.NameOr("N/A")}}
	if a.Raza != nil {
		details = append(details, resource.Detail{Label: "Raza", Value: a.Raza.Nombre})
	}
	if a.Dueno != nil {
		details = append(details, resource.Detail{Label: "Dueño", Value: a.Dueno.Nombre})
	}

	var notes []string
	if a.Peso != nil && *a.Peso != 0 {
		notes = append(notes, resource.FormatFloat(a.Peso)+" kg")
	}

	return resource.Row{
		ID:         a.ID,
		Title:      a.Nombre,
		Details:    details,
		Notes:      notes,
		HasHistory: true,
	}
}

// withHistoryNotes precarga las observaciones de la historia clínica.
// Si no hay historia (o falla) el campo queda vacío.
func withHistoryNotes(ctx context.Context, api gateway.Requester, a Animal, f Form) Form {
	h, err := histories.Fetch(ctx, api, a.ID)
	if err != nil {
		f.ObservacionesHistoria = ""
		return f
	}
	f.ObservacionesHistoria = resource.Deref(h.Observaciones)
	return f
}
