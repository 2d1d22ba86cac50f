package treatments

import "vet-clinic-web/internal/resource"

// Treatment es un tratamiento (GET /Tratamientos).
type Treatment struct {
	ID               int64   `json:"id"`
	AnimalID         int64   `json:"animalId"`
	VeterinarioID    int64   `json:"veterinarioId"`
	Descripcion      string  `json:"descripcion"`
	MedicamentoID    *int64  `json:"medicamentoId"`
	Dosis            *string `json:"dosis"`
	Diagnostico      *string `json:"diagnostico"`
	ProximaCita      *string `json:"proximaCita"`
	FechaTratamiento string  `json:"fechaTratamiento"`

	Animal      *resource.Ref `json:"animal,omitempty"`
	Veterinario *resource.Ref `json:"veterinario,omitempty"`
	Medicamento *resource.Ref `json:"medicamento,omitempty"`
}

func (t Treatment) RecordID() int64 { return t.ID }
