package vets

// Veterinarian es un veterinario (GET /Veterinarios).
type Veterinarian struct {
	ID             int64   `json:"id"`
	Nombre         string  `json:"nombre"`
	Direccion      *string `json:"direccion"`
	Telefono       *string `json:"telefono"`
	NumeroLicencia string  `json:"numeroLicencia"`
	Especialidad   *string `json:"especialidad"`
}

func (v Veterinarian) RecordID() int64 { return v.ID }

// Label: "Nombre - Licencia".
func (v Veterinarian) Label() string { return v.Nombre + " - " + v.NumeroLicencia }
