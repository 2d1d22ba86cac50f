// Package store define el almacenamiento genérico de registros JSON del
// backend de desarrollo. Cada tipo de recurso (Kind) tiene su propia
// secuencia de ids.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
)

var ErrNotFound = errors.New("not found")

type Kind string

const (
	KindAnimales     Kind = "animales"
	KindDuenos       Kind = "duenos"
	KindVeterinarios Kind = "veterinarios"
	KindTratamientos Kind = "tratamientos"
	KindEspecies     Kind = "especies"
	KindRazas        Kind = "razas"
	KindMedicamentos Kind = "medicamentos"
	KindHistorias    Kind = "historias"
)

// Record es un objeto JSON. "id" lo asigna el repositorio.
type Record map[string]any

type Repository interface {
	// Create asigna un id nuevo.
	Create(ctx context.Context, kind Kind, body Record) (Record, error)
	// Update reemplaza el registro; ErrNotFound si no existe.
	Update(ctx context.Context, kind Kind, id int64, body Record) (Record, error)
	// Put crea o reemplaza con id explícito.
	Put(ctx context.Context, kind Kind, id int64, body Record) (Record, error)
	Delete(ctx context.Context, kind Kind, id int64) error
	GetByID(ctx context.Context, kind Kind, id int64) (Record, error)
	// List devuelve los registros ordenados por id.
	List(ctx context.Context, kind Kind) ([]Record, error)
}

// Clone copia superficialmente r (los valores son escalares JSON).
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

func (r Record) ID() int64 {
	id, _ := r.Int("id")
	return id
}

// Int lee un entero venga como número JSON o como string numérico.
func (r Record) Int(key string) (int64, bool) {
	switch v := r[key].(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case float64:
		return int64(v), v == float64(int64(v))
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

func (r Record) String(key string) (string, bool) {
	s, ok := r[key].(string)
	return s, ok
}

// Decode interpreta un body JSON preservando los números.
func Decode(raw []byte) (Record, error) {
	var rec Record
	if err := unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	if rec == nil {
		rec = Record{}
	}
	return rec, nil
}
