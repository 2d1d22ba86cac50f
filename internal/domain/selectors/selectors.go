// Package selectors mantiene los <select> dependientes de otros recursos:
// dueños, especies y razas del form de animales y la carga combinada del
// form de tratamientos.
package selectors

import (
	"context"
	"net/http"
	"sync"

	"golang.org/x/sync/errgroup"

	"vet-clinic-web/internal/domain/animals"
	"vet-clinic-web/internal/domain/breeds"
	"vet-clinic-web/internal/domain/medications"
	"vet-clinic-web/internal/domain/owners"
	"vet-clinic-web/internal/domain/species"
	"vet-clinic-web/internal/domain/vets"
	"vet-clinic-web/internal/platform/logger"
	"vet-clinic-web/internal/ports/gateway"
)

const (
	PlaceholderNoOwner      = "Sin dueño"
	PlaceholderSelect       = "Seleccionar..."
	PlaceholderPickSpecies  = "Seleccione primero una especie"
	PlaceholderNoBreed      = "Sin raza"
	PlaceholderBreedsFailed = "Error al cargar razas"
	PlaceholderNoMedication = "Sin medicamento"
)

type Option struct {
	Value int64
	Label string
}

// Select es una lista de opciones precedida por la opción vacía Placeholder.
type Select struct {
	Placeholder string
	Options     []Option
	Failed      bool
}

// Has indica si id está entre las opciones.
func (s Select) Has(id int64) bool {
	for _, o := range s.Options {
		if o.Value == id {
			return true
		}
	}
	return false
}

// View es la foto de todos los selects para el render.
type View struct {
	Owners         Select
	Species        Select
	Breeds         Select
	BreedSpeciesID int64

	TreatmentAnimals     Select
	TreatmentVets        Select
	TreatmentMedications Select
}

// Selectors no notifica al usuario: los errores sólo se loguean.
type Selectors struct {
	api gateway.Requester
	log logger.Logger

	mu   sync.Mutex
	view View
}

func New(api gateway.Requester, log logger.Logger) *Selectors {
	if log == nil {
		log = logger.Nop()
	}
	return &Selectors{
		api: api,
		log: log.With(map[string]any{"component": "selectors"}),
		view: View{
			Owners:               Select{Placeholder: PlaceholderNoOwner},
			Species:              Select{Placeholder: PlaceholderSelect},
			Breeds:               Select{Placeholder: PlaceholderPickSpecies},
			TreatmentAnimals:     Select{Placeholder: PlaceholderSelect},
			TreatmentVets:        Select{Placeholder: PlaceholderSelect},
			TreatmentMedications: Select{Placeholder: PlaceholderNoMedication},
		},
	}
}

func (s *Selectors) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

func (s *Selectors) LoadOwners(ctx context.Context) error {
	var list []owners.Owner
	if err := s.api.DoJSON(ctx, http.MethodGet, owners.Path, nil, &list); err != nil {
		s.log.Warn("error loading owners for select", map[string]any{"error": err})
		return err
	}

	opts := make([]Option, 0, len(list))
	for _, o := range list {
		opts = append(opts, Option{Value: o.ID, Label: o.Nombre})
	}

	s.mu.Lock()
	s.view.Owners = Select{Placeholder: PlaceholderNoOwner, Options: opts}
	s.mu.Unlock()
	return nil
}

// LoadSpecies alimenta el select de especie del form de animales y el del
// form de razas (misma lista).
func (s *Selectors) LoadSpecies(ctx context.Context) error {
	var list []species.Species
	if err := s.api.DoJSON(ctx, http.MethodGet, species.Path, nil, &list); err != nil {
		s.log.Warn("error loading species for select", map[string]any{"error": err})
		return err
	}

	opts := make([]Option, 0, len(list))
	for _, sp := range list {
		opts = append(opts, Option{Value: sp.ID, Label: sp.Nombre})
	}

	s.mu.Lock()
	s.view.Species = Select{Placeholder: PlaceholderSelect, Options: opts}
	s.mu.Unlock()
	return nil
}

// LoadBreeds carga las razas de la especie elegida en el form de animales.
// especieID == 0 vuelve al estado "elegir especie primero".
func (s *Selectors) LoadBreeds(ctx context.Context, especieID int64) error {
	if especieID == 0 {
		s.ResetBreeds()
		return nil
	}

	s.mu.Lock()
	s.view.BreedSpeciesID = especieID
	s.mu.Unlock()

	list, err := breeds.BySpecies(ctx, s.api, especieID)
	if err != nil {
		s.log.Warn("error loading breeds for select", map[string]any{"especie_id": especieID, "error": err})
		s.mu.Lock()
		s.view.Breeds = Select{Placeholder: PlaceholderBreedsFailed, Failed: true}
		s.mu.Unlock()
		return err
	}

	opts := make([]Option, 0, len(list))
	for _, b := range list {
		opts = append(opts, Option{Value: b.ID, Label: b.Nombre})
	}

	s.mu.Lock()
	// una respuesta vieja no pisa la especie elegida después
	if s.view.BreedSpeciesID == especieID {
		s.view.Breeds = Select{Placeholder: PlaceholderNoBreed, Options: opts}
	}
	s.mu.Unlock()
	return nil
}

// RefreshBreeds recarga las razas sólo si hay una especie elegida.
func (s *Selectors) RefreshBreeds(ctx context.Context) {
	s.mu.Lock()
	id := s.view.BreedSpeciesID
	s.mu.Unlock()

	if id != 0 {
		_ = s.LoadBreeds(ctx, id)
	}
}

func (s *Selectors) ResetBreeds() {
	s.mu.Lock()
	s.view.BreedSpeciesID = 0
	s.view.Breeds = Select{Placeholder: PlaceholderPickSpecies}
	s.mu.Unlock()
}

// LoadTreatmentOptions trae animales, veterinarios y medicamentos en
// paralelo. Cada request tiene su propio deadline; si uno falla su lista
// queda vacía y los otros siguen.
func (s *Selectors) LoadTreatmentOptions(ctx context.Context) {
	var (
		animalList []animals.Animal
		vetList    []vets.Veterinarian
		medList    []medications.Medication
	)

	var g errgroup.Group
	g.Go(func() error {
		animalList = fetchOrEmpty[animals.Animal](ctx, s, animals.Path)
		return nil
	})
	g.Go(func() error {
		vetList = fetchOrEmpty[vets.Veterinarian](ctx, s, vets.Path)
		return nil
	})
	g.Go(func() error {
		medList = fetchOrEmpty[medications.Medication](ctx, s, medications.Path)
		return nil
	})
	_ = g.Wait()

	as := Select{Placeholder: PlaceholderSelect, Options: make([]Option, 0, len(animalList))}
	for _, a := range animalList {
		as.Options = append(as.Options, Option{Value: a.ID, Label: a.Label()})
	}
	vs := Select{Placeholder: PlaceholderSelect, Options: make([]Option, 0, len(vetList))}
	for _, v := range vetList {
		vs.Options = append(vs.Options, Option{Value: v.ID, Label: v.Label()})
	}
	ms := Select{Placeholder: PlaceholderNoMedication, Options: make([]Option, 0, len(medList))}
	for _, m := range medList {
		ms.Options = append(ms.Options, Option{Value: m.ID, Label: m.Nombre})
	}

	s.mu.Lock()
	s.view.TreatmentAnimals = as
	s.view.TreatmentVets = vs
	s.view.TreatmentMedications = ms
	s.mu.Unlock()
}

func fetchOrEmpty[T any](ctx context.Context, s *Selectors, path string) []T {
	var out []T
	if err := s.api.DoJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		s.log.Warn("error loading data for tratamientos", map[string]any{"path": path, "error": err})
		return nil
	}
	return out
}
