package treatments

import (
	"net/url"

	"vet-clinic-web/internal/platform/datefmt"
	"vet-clinic-web/internal/platform/validation"
	"vet-clinic-web/internal/resource"
)

const selectMessage = "Debe seleccionar un animal y un veterinario"

// El orden de los campos define qué mensaje sale primero.
type Form struct {
	ID            int64
	AnimalID      int64  `validate:"required"`
	VeterinarioID int64  `validate:"required"`
	Descripcion   string `validate:"required"`
	MedicamentoID int64
	Dosis         string
	Diagnostico   string
	ProximaCita   string
}

type Payload struct {
	AnimalID      int64   `json:"animalId"`
	VeterinarioID int64   `json:"veterinarioId"`
	Descripcion   string  `json:"descripcion"`
	MedicamentoID *int64  `json:"medicamentoId"`
	Dosis         *string `json:"dosis"`
	Diagnostico   *string `json:"diagnostico"`
	ProximaCita   *string `json:"proximaCita"`
}

func FormFromValues(v url.Values) Form {
	return Form{
		ID:            resource.ID(v, "id"),
		AnimalID:      resource.ID(v, "animalId"),
		VeterinarioID: resource.ID(v, "veterinarioId"),
		Descripcion:   resource.Text(v, "descripcion"),
		MedicamentoID: resource.ID(v, "medicamentoId"),
		Dosis:         resource.Text(v, "dosis"),
		Diagnostico:   resource.Text(v, "diagnostico"),
		ProximaCita:   resource.Text(v, "proximaCita"),
	}
}

func FormFromRecord(t Treatment) Form {
	return Form{
		ID:            t.ID,
		AnimalID:      t.AnimalID,
		VeterinarioID: t.VeterinarioID,
		Descripcion:   t.Descripcion,
		MedicamentoID: resource.DerefID(t.MedicamentoID),
		Dosis:         resource.Deref(t.Dosis),
		Diagnostico:   resource.Deref(t.Diagnostico),
		ProximaCita:   datefmt.DateTimeInput(t.ProximaCita),
	}
}

func (f Form) Identifier() int64 { return f.ID }

func (f Form) Validate() error {
	return validation.Check(f, validation.Messages{
		"AnimalID":      selectMessage,
		"VeterinarioID": selectMessage,
		"Descripcion":   "La descripción es requerida",
	})
}

func (f Form) Payload() any {
	return Payload{
		AnimalID:      f.AnimalID,
		VeterinarioID: f.VeterinarioID,
		Descripcion:   f.Descripcion,
		MedicamentoID: resource.OptID(f.MedicamentoID),
		Dosis:         resource.OptString(f.Dosis),
		Diagnostico:   resource.OptString(f.Diagnostico),
		ProximaCita:   resource.OptString(f.ProximaCita),
	}
}
