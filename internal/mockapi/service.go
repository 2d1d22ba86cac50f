// Package mockapi es un backend de desarrollo que cumple el contrato REST
// de la clínica: recursos con objetos relacionados embebidos, errores de
// validación estilo ASP.NET, borrados en cascada e historia clínica por
// animal.
package mockapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"vet-clinic-web/internal/mockapi/store"
)

var (
	ErrNotFound = store.ErrNotFound
	ErrConflict = errors.New("conflict")
)

// ValidationError acumula mensajes por campo, como un ModelState inválido.
type ValidationError struct {
	Errors map[string][]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for f := range e.Errors {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

func (e *ValidationError) add(field, msg string) {
	if e.Errors == nil {
		e.Errors = make(map[string][]string)
	}
	e.Errors[field] = append(e.Errors[field], msg)
}

// ConflictError lleva el mensaje que se devuelve tal cual al cliente.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }
func (e *ConflictError) Unwrap() error { return ErrConflict }

// Timestamps sin zona, como los DateTime del backend real.
const timestampLayout = "2006-01-02T15:04:05"

type Service struct {
	repo store.Repository
	now  func() time.Time
}

func NewService(repo store.Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) List(ctx context.Context, kind store.Kind) ([]store.Record, error) {
	recs, err := s.repo.List(ctx, kind)
	if err != nil {
		return nil, err
	}
	return s.expandAll(ctx, kind, recs)
}

func (s *Service) Get(ctx context.Context, kind store.Kind, id int64) (store.Record, error) {
	rec, err := s.repo.GetByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	return s.expand(ctx, kind, rec), nil
}

// BreedsBySpecies lista las razas de una especie.
func (s *Service) BreedsBySpecies(ctx context.Context, especieID int64) ([]store.Record, error) {
	recs, err := s.repo.List(ctx, store.KindRazas)
	if err != nil {
		return nil, err
	}
	out := make([]store.Record, 0, len(recs))
	for _, rec := range recs {
		if id, ok := rec.Int("especieId"); ok && id == especieID {
			out = append(out, rec)
		}
	}
	return s.expandAll(ctx, store.KindRazas, out)
}

func (s *Service) Create(ctx context.Context, kind store.Kind, body store.Record) (store.Record, error) {
	sc, ok := schemaFor(kind)
	if !ok {
		return nil, fmt.Errorf("unknown kind %q", kind)
	}

	rec, err := s.normalize(ctx, sc, body)
	if err != nil {
		return nil, err
	}
	if kind == store.KindTratamientos {
		rec["fechaTratamiento"] = s.now().Format(timestampLayout)
	}

	created, err := s.repo.Create(ctx, kind, rec)
	if err != nil {
		return nil, err
	}
	if kind == store.KindAnimales {
		if err := s.initialHistory(ctx, created.ID(), body); err != nil {
			return nil, err
		}
	}
	return s.expand(ctx, kind, created), nil
}

// Update reemplaza el registro completo (PUT). Los campos que pone el
// servidor se conservan.
func (s *Service) Update(ctx context.Context, kind store.Kind, id int64, body store.Record) (store.Record, error) {
	sc, ok := schemaFor(kind)
	if !ok {
		return nil, fmt.Errorf("unknown kind %q", kind)
	}

	current, err := s.repo.GetByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	rec, err := s.normalize(ctx, sc, body)
	if err != nil {
		return nil, err
	}
	if v, ok := current["fechaTratamiento"]; ok {
		rec["fechaTratamiento"] = v
	}

	updated, err := s.repo.Update(ctx, kind, id, rec)
	if err != nil {
		return nil, err
	}
	if kind == store.KindAnimales {
		if err := s.initialHistory(ctx, id, body); err != nil {
			return nil, err
		}
	}
	return s.expand(ctx, kind, updated), nil
}

func (s *Service) Delete(ctx context.Context, kind store.Kind, id int64) error {
	if _, err := s.repo.GetByID(ctx, kind, id); err != nil {
		return err
	}

	var err error
	switch kind {
	case store.KindDuenos:
		err = s.clearRefs(ctx, store.KindAnimales, "duenoId", id)
	case store.KindVeterinarios:
		err = s.deleteWhere(ctx, store.KindTratamientos, "veterinarioId", id)
	case store.KindAnimales:
		err = s.deleteWhere(ctx, store.KindTratamientos, "animalId", id)
		if err == nil {
			err = ignoreNotFound(s.repo.Delete(ctx, store.KindHistorias, id))
		}
	case store.KindEspecies:
		err = s.deleteSpeciesDeps(ctx, id)
	case store.KindRazas:
		err = s.clearRefs(ctx, store.KindAnimales, "razaId", id)
	case store.KindMedicamentos:
		err = s.clearRefs(ctx, store.KindTratamientos, "medicamentoId", id)
	}
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, kind, id)
}

// GetHistory devuelve ErrNotFound hasta el primer PUT.
func (s *Service) GetHistory(ctx context.Context, animalID int64) (store.Record, error) {
	if _, err := s.repo.GetByID(ctx, store.KindAnimales, animalID); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, store.KindHistorias, animalID)
}

// PutHistory crea o reemplaza las observaciones. fechaCreacion se fija en
// la primera escritura.
func (s *Service) PutHistory(ctx context.Context, animalID int64, body store.Record) (store.Record, error) {
	if _, err := s.repo.GetByID(ctx, store.KindAnimales, animalID); err != nil {
		return nil, err
	}
	if id, ok := body.Int("animalId"); ok && id != animalID {
		verr := &ValidationError{}
		verr.add("animalId", "El animalId del cuerpo no coincide con la ruta.")
		return nil, verr
	}

	var obs any
	if v, ok := body.String("observaciones"); ok && strings.TrimSpace(v) != "" {
		obs = strings.TrimSpace(v)
	}
	return s.putHistory(ctx, animalID, obs)
}

func (s *Service) putHistory(ctx context.Context, animalID int64, obs any) (store.Record, error) {
	created := s.now().Format(timestampLayout)
	if current, err := s.repo.GetByID(ctx, store.KindHistorias, animalID); err == nil {
		if v, ok := current.String("fechaCreacion"); ok && v != "" {
			created = v
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	return s.repo.Put(ctx, store.KindHistorias, animalID, store.Record{
		"animalId":      animalID,
		"observaciones": obs,
		"fechaCreacion": created,
	})
}

// initialHistory guarda observacionesHistoria si el alta/edición del animal
// la trae con texto; si no, la historia queda como estaba.
func (s *Service) initialHistory(ctx context.Context, animalID int64, body store.Record) error {
	v, ok := body.String("observacionesHistoria")
	if !ok || strings.TrimSpace(v) == "" {
		return nil
	}
	_, err := s.putHistory(ctx, animalID, strings.TrimSpace(v))
	return err
}

func (s *Service) deleteSpeciesDeps(ctx context.Context, especieID int64) error {
	animals, err := s.repo.List(ctx, store.KindAnimales)
	if err != nil {
		return err
	}
	for _, a := range animals {
		if id, ok := a.Int("especieId"); ok && id == especieID {
			return &ConflictError{Message: "No se puede eliminar la especie porque tiene animales asociados"}
		}
	}
	return s.deleteWhere(ctx, store.KindRazas, "especieId", especieID)
}

func (s *Service) deleteWhere(ctx context.Context, kind store.Kind, key string, id int64) error {
	recs, err := s.repo.List(ctx, kind)
	if err != nil {
		return err
	}
	for _, rec := range recs {
		if v, ok := rec.Int(key); ok && v == id {
			if err := ignoreNotFound(s.repo.Delete(ctx, kind, rec.ID())); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Service) clearRefs(ctx context.Context, kind store.Kind, key string, id int64) error {
	recs, err := s.repo.List(ctx, kind)
	if err != nil {
		return err
	}
	for _, rec := range recs {
		if v, ok := rec.Int(key); ok && v == id {
			rec[key] = nil
			if _, err := s.repo.Update(ctx, kind, rec.ID(), rec); ignoreNotFound(err) != nil {
				return err
			}
		}
	}
	return nil
}

// normalize arma el registro a guardar con sólo los campos del schema:
// strings recortados, vacíos a null, ids numéricos y referencias existentes.
func (s *Service) normalize(ctx context.Context, sc schema, body store.Record) (store.Record, error) {
	out := store.Record{}
	verr := &ValidationError{}

	for _, f := range sc.Fields {
		v, err := coerce(f, body[f.Name])
		if err != nil {
			verr.add(f.Name, err.Error())
			continue
		}
		if v == nil && f.Required {
			verr.add(f.Name, fmt.Sprintf("The %s field is required.", f.Name))
			continue
		}
		out[f.Name] = v

		if v != nil && f.Ref != "" {
			if _, err := s.repo.GetByID(ctx, f.Ref, v.(int64)); err != nil {
				if !errors.Is(err, store.ErrNotFound) {
					return nil, err
				}
				verr.add(f.Name, fmt.Sprintf("No existe %s con id %d.", f.Ref, v.(int64)))
			}
		}
	}

	if len(verr.Errors) > 0 {
		return nil, verr
	}
	return out, nil
}

func coerce(f field, raw any) (any, error) {
	if raw == nil {
		return nil, nil
	}
	if s, ok := raw.(string); ok && strings.TrimSpace(s) == "" {
		return nil, nil
	}

	switch f.Type {
	case typeString:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("The field %s must be a string.", f.Name)
		}
		return strings.TrimSpace(s), nil

	case typeInt:
		n, ok := store.Record{f.Name: raw}.Int(f.Name)
		if !ok || n <= 0 {
			return nil, fmt.Errorf("The value '%v' is not valid for %s.", raw, f.Name)
		}
		return n, nil

	case typeFloat:
		n, err := toFloat(raw)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("The value '%v' is not valid for %s.", raw, f.Name)
		}
		return n, nil

	case typeDate:
		s, ok := raw.(string)
		if !ok || !validDate(s) {
			return nil, fmt.Errorf("The value '%v' is not valid for %s.", raw, f.Name)
		}
		return strings.TrimSpace(s), nil
	}
	return nil, fmt.Errorf("unsupported field %s", f.Name)
}

func toFloat(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case int64:
		return float64(v), nil
	case int:
		return float64(v), nil
	case interface{ Float64() (float64, error) }:
		return v.Float64()
	case string:
		return strconv.ParseFloat(strings.TrimSpace(v), 64)
	default:
		return 0, fmt.Errorf("not a number: %v", raw)
	}
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

func validDate(s string) bool {
	s = strings.TrimSpace(s)
	for _, l := range dateLayouts {
		if _, err := time.Parse(l, s); err == nil {
			return true
		}
	}
	return false
}

func (s *Service) expandAll(ctx context.Context, kind store.Kind, recs []store.Record) ([]store.Record, error) {
	out := make([]store.Record, 0, len(recs))
	for _, rec := range recs {
		out = append(out, s.expand(ctx, kind, rec))
	}
	return out, nil
}

// expand agrega los objetos relacionados ("especie", "dueno"...). Si la
// referencia no existe el objeto queda en null.
func (s *Service) expand(ctx context.Context, kind store.Kind, rec store.Record) store.Record {
	sc, ok := schemaFor(kind)
	if !ok {
		return rec
	}

	out := rec.Clone()
	for _, e := range sc.Embeds {
		out[e.Key] = nil

		id, ok := rec.Int(e.IDField)
		if !ok {
			continue
		}
		related, err := s.repo.GetByID(ctx, e.Kind, id)
		if err != nil {
			continue
		}
		obj := make(map[string]any, len(e.Fields))
		for _, name := range e.Fields {
			obj[name] = related[name]
		}
		out[e.Key] = obj
	}
	return out
}

func ignoreNotFound(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	return err
}
