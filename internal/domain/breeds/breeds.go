package breeds

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"vet-clinic-web/internal/platform/logger"
	"vet-clinic-web/internal/platform/validation"
	"vet-clinic-web/internal/ports/gateway"
	"vet-clinic-web/internal/resource"
)

const Path = "/Razas"

type Breed struct {
	ID          int64         `json:"id"`
	EspecieID   int64         `json:"especieId"`
	Nombre      string        `json:"nombre"`
	Descripcion *string       `json:"descripcion"`
	Especie     *resource.Ref `json:"especie,omitempty"`
}

func (b Breed) RecordID() int64 { return b.ID }

type Form struct {
	ID          int64
	Nombre      string `validate:"required"`
	EspecieID   int64  `validate:"required"`
	Descripcion string
}

type Payload struct {
	EspecieID   int64   `json:"especieId"`
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion"`
}

const requiredMessage = "El nombre y la especie son requeridos"

func (f Form) Identifier() int64 { return f.ID }

func (f Form) Validate() error {
	return validation.Check(f, validation.Messages{
		"Nombre":    requiredMessage,
		"EspecieID": requiredMessage,
	})
}

func (f Form) Payload() any {
	return Payload{EspecieID: f.EspecieID, Nombre: f.Nombre, Descripcion: resource.OptString(f.Descripcion)}
}

// BySpecies trae las razas de una especie (select del form de animales).
func BySpecies(ctx context.Context, api gateway.Requester, especieID int64) ([]Breed, error) {
	var out []Breed
	if err := api.DoJSON(ctx, http.MethodGet, fmt.Sprintf("%s/por-especie/%d", Path, especieID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type Controller = resource.Controller[Breed, Form]

func Definition() resource.Definition[Breed, Form] {
	return resource.Definition[Breed, Form]{
		Path:           Path,
		Entity:         "Raza",
		Feminine:       true,
		NewTitle:       "Nueva Raza",
		EditTitle:      func(b Breed) string { return "Editar Raza: " + b.Nombre },
		EmptyText:      "No hay razas",
		LoadErrorTitle: "Error al cargar",
		ConfirmDelete:  "¿Eliminar esta raza?",

		Blank: func() Form { return Form{} },
		Bind: func(v url.Values) Form {
			return Form{
				ID:          resource.ID(v, "id"),
				Nombre:      resource.Text(v, "nombre"),
				EspecieID:   resource.ID(v, "especieId"),
				Descripcion: resource.Text(v, "descripcion"),
			}
		},
		FromRecord: func(b Breed) Form {
			return Form{ID: b.ID, Nombre: b.Nombre, EspecieID: b.EspecieID, Descripcion: resource.Deref(b.Descripcion)}
		},
		Row: func(b Breed) resource.Row {
			r := resource.Row{
				ID:      b.ID,
				Title:   b.Nombre,
				Details: []resource.Detail{{Label: "Especie", Value: b.Especie.NameOr("N/A")}},
			}
			if d := resource.Deref(b.Descripcion); d != "" {
				r.Notes = []string{d}
			}
			return r
		},
	}
}

func NewController(api gateway.Requester, n resource.Notifier, log logger.Logger) *Controller {
	return resource.New(Definition(), api, n, log)
}
