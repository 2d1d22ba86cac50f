package histories

import (
	"context"
	"errors"
	"strings"
	"sync"

	"vet-clinic-web/internal/platform/datefmt"
	"vet-clinic-web/internal/platform/logger"
	"vet-clinic-web/internal/ports/gateway"
	"vet-clinic-web/internal/resource"
)

const savedMessage = "Historia clínica actualizada exitosamente"

// View es el estado del modal de historia clínica.
type View struct {
	Open          bool
	AnimalID      int64
	AnimalName    string
	FechaCreacion string
	Observaciones string
	Saving        bool
}

type Controller struct {
	api      gateway.Requester
	notifier resource.Notifier
	log      logger.Logger

	mu   sync.Mutex
	view View
}

func NewController(api gateway.Requester, n resource.Notifier, log logger.Logger) *Controller {
	if log == nil {
		log = logger.Nop()
	}
	return &Controller{api: api, notifier: n, log: log.With(map[string]any{"resource": "historias"})}
}

// Open abre el modal para el animal. Sin historia todavía => campos vacíos,
// sin toast. Otro error => toast y el modal queda cerrado.
func (c *Controller) Open(ctx context.Context, animalID int64, animalName string) error {
	if animalName == "" {
		animalName = "N/A"
	}

	h, err := Fetch(ctx, c.api, animalID)
	switch {
	case errors.Is(err, ErrNotFound):
		c.set(View{Open: true, AnimalID: animalID, AnimalName: animalName, FechaCreacion: datefmt.NotAvailable})
		return nil
	case err != nil:
		c.log.Info("history fetch failed", map[string]any{"animal_id": animalID, "error": err})
		c.notifier.Error(err.Error())
		c.set(View{})
		return err
	}

	c.set(View{
		Open:          true,
		AnimalID:      animalID,
		AnimalName:    animalName,
		FechaCreacion: datefmt.Long(h.FechaCreacion),
		Observaciones: resource.Deref(h.Observaciones),
	})
	return nil
}

// Save hace el upsert. Ante error conserva lo escrito.
func (c *Controller) Save(ctx context.Context, animalID int64, observaciones string) error {
	observaciones = strings.TrimSpace(observaciones)

	c.mu.Lock()
	c.view.AnimalID = animalID
	c.view.Observaciones = observaciones
	c.view.Saving = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.view.Saving = false
		c.mu.Unlock()
	}()

	h, err := Upsert(ctx, c.api, Payload{AnimalID: animalID, Observaciones: resource.OptString(observaciones)})
	if err != nil {
		c.log.Info("history save failed", map[string]any{"animal_id": animalID, "error": err})
		c.notifier.Error(err.Error())
		return err
	}

	c.mu.Lock()
	c.view.FechaCreacion = datefmt.Long(h.FechaCreacion)
	c.mu.Unlock()

	c.notifier.Success(savedMessage)
	return nil
}

func (c *Controller) Close() { c.set(View{}) }

func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

func (c *Controller) set(v View) {
	c.mu.Lock()
	c.view = v
	c.mu.Unlock()
}
