// Package app es el estado de una sesión del front-end: el tab activo, un
// controller por recurso, los selects dependientes y los toasts.
package app

import (
	"context"
	"sync"
	"time"

	"vet-clinic-web/internal/domain/animals"
	"vet-clinic-web/internal/domain/breeds"
	"vet-clinic-web/internal/domain/histories"
	"vet-clinic-web/internal/domain/medications"
	"vet-clinic-web/internal/domain/owners"
	"vet-clinic-web/internal/domain/selectors"
	"vet-clinic-web/internal/domain/species"
	"vet-clinic-web/internal/domain/treatments"
	"vet-clinic-web/internal/domain/vets"
	"vet-clinic-web/internal/platform/logger"
	"vet-clinic-web/internal/platform/notify"
	"vet-clinic-web/internal/ports/gateway"
	"vet-clinic-web/internal/resource"
)

type Options struct {
	API      gateway.Requester
	Logger   logger.Logger
	ToastTTL time.Duration
}

type App struct {
	Notify *notify.Center

	Animals     *animals.Controller
	Owners      *owners.Controller
	Vets        *vets.Controller
	Treatments  *treatments.Controller
	Species     *species.Controller
	Breeds      *breeds.Controller
	Medications *medications.Controller
	Histories   *histories.Controller
	Selectors   *selectors.Selectors

	log logger.Logger

	mu      sync.Mutex
	active  Tab
	visited bool
}

func New(opts Options) *App {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	center := notify.NewCenter(opts.ToastTTL)

	a := &App{
		Notify:      center,
		Animals:     animals.NewController(opts.API, center, log),
		Owners:      owners.NewController(opts.API, center, log),
		Vets:        vets.NewController(opts.API, center, log),
		Treatments:  treatments.NewController(opts.API, center, log),
		Species:     species.NewController(opts.API, center, log),
		Breeds:      breeds.NewController(opts.API, center, log),
		Medications: medications.NewController(opts.API, center, log),
		Histories:   histories.NewController(opts.API, center, log),
		Selectors:   selectors.New(opts.API, log),
		log:         log,
		active:      TabAnimales,
	}
	a.wire()
	return a
}

// wire registra los refrescos cruzados. Los que dependen del tab activo
// sólo corren si ese tab está montado; el resto se resuelve al cambiar de tab.
func (a *App) wire() {
	sel := a.Selectors

	// volver a Animales trae también las razas creadas en Configuración
	a.Animals.AfterLoad(func(ctx context.Context) {
		_ = sel.LoadOwners(ctx)
		_ = sel.LoadSpecies(ctx)
		sel.RefreshBreeds(ctx)
	})
	a.Animals.OnEdit(func(ctx context.Context, rec animals.Animal) {
		_ = sel.LoadBreeds(ctx, rec.EspecieID)
	})
	a.Animals.OnReset(sel.ResetBreeds)

	a.Owners.OnChange(func(ctx context.Context) {
		if a.Active() == TabAnimales {
			_ = sel.LoadOwners(ctx)
		}
	})

	a.Vets.OnChange(func(ctx context.Context) {
		if a.Active() == TabTratamientos {
			sel.LoadTreatmentOptions(ctx)
		}
	})

	a.Treatments.AfterLoad(sel.LoadTreatmentOptions)

	a.Species.OnChange(func(ctx context.Context) {
		_ = sel.LoadSpecies(ctx)
	})

	a.Breeds.OnChange(func(ctx context.Context) {
		if a.Active() == TabAnimales {
			sel.RefreshBreeds(ctx)
		}
	})

	a.Medications.OnChange(func(ctx context.Context) {
		if a.Active() == TabTratamientos {
			sel.LoadTreatmentOptions(ctx)
		}
	})
}

func (a *App) Active() Tab {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.active
}

// Switch activa el tab y corre sus loaders. Los errores de carga ya quedan
// como toast y panel de error; Switch sólo falla con un tab desconocido.
func (a *App) Switch(ctx context.Context, tab Tab) error {
	if _, err := ParseTab(string(tab)); err != nil {
		return err
	}

	a.mu.Lock()
	a.active = tab
	a.visited = true
	a.mu.Unlock()

	a.log.Debug("tab switch", map[string]any{"tab": string(tab)})

	switch tab {
	case TabAnimales:
		_ = a.Animals.Load(ctx)
	case TabDuenos:
		_ = a.Owners.Load(ctx)
	case TabVeterinarios:
		_ = a.Vets.Load(ctx)
	case TabTratamientos:
		_ = a.Treatments.Load(ctx)
	case TabConfiguracion:
		_ = a.Species.Load(ctx)
		_ = a.Breeds.Load(ctx)
		_ = a.Medications.Load(ctx)
		_ = a.Selectors.LoadSpecies(ctx)
	}
	return nil
}

// Visit es la navegación desde la web: sólo corre los loaders si cambia el
// tab, si es la primera visita o si reload lo pide. Volver al mismo tab tras
// un POST no repite los GET.
func (a *App) Visit(ctx context.Context, tab Tab, reload bool) error {
	a.mu.Lock()
	same := a.visited && a.active == tab
	a.mu.Unlock()

	if same && !reload {
		return nil
	}
	return a.Switch(ctx, tab)
}

// Resource resuelve el controller por el nombre usado en las rutas
// (/r/{resource}/...) junto con el tab donde vive su formulario.
func (a *App) Resource(name string) (resource.Actions, Tab, bool) {
	switch name {
	case "animales":
		return a.Animals, TabAnimales, true
	case "duenos":
		return a.Owners, TabDuenos, true
	case "veterinarios":
		return a.Vets, TabVeterinarios, true
	case "tratamientos":
		return a.Treatments, TabTratamientos, true
	case "especies":
		return a.Species, TabConfiguracion, true
	case "razas":
		return a.Breeds, TabConfiguracion, true
	case "medicamentos":
		return a.Medications, TabConfiguracion, true
	default:
		return nil, "", false
	}
}

// OpenHistory abre la historia clínica con el nombre del animal cargado.
func (a *App) OpenHistory(ctx context.Context, animalID int64) error {
	name := ""
	if rec, ok := a.Animals.Find(animalID); ok {
		name = rec.Nombre
	}
	return a.Histories.Open(ctx, animalID, name)
}
