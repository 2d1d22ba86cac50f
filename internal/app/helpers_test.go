package app

import "vet-clinic-web/internal/domain/animals"

func animalWithSpecies(id, especieID int64) animals.Animal {
	return animals.Animal{ID: id, Nombre: "Michi", EspecieID: especieID}
}
