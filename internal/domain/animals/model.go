package animals

import "vet-clinic-web/internal/resource"

// Animal es el registro tal como lo devuelve GET /Animales.
type Animal struct {
	ID              int64    `json:"id"`
	Nombre          string   `json:"nombre"`
	EspecieID       int64    `json:"especieId"`
	RazaID          *int64   `json:"razaId"`
	FechaNacimiento *string  `json:"fechaNacimiento"`
	Color           *string  `json:"color"`
	Peso            *float64 `json:"peso"`
	DuenoID         *int64   `json:"duenoId"`

	Especie *resource.Ref `json:"especie,omitempty"`
	Raza    *resource.Ref `json:"raza,omitempty"`
	Dueno   *resource.Ref `json:"dueno,omitempty"`
}

func (a Animal) RecordID() int64 { return a.ID }

// Label es la etiqueta usada en el select de tratamientos: "Nombre (Especie)".
func (a Animal) Label() string {
	return a.Nombre + " (" + a.Especie.NameOr("N/A") + ")"
}
