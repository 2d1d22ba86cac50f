package resource

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"vet-clinic-web/internal/platform/logger"
	"vet-clinic-web/internal/ports/gateway"
)

var (
	ErrSubmitInProgress = errors.New("submit in progress")
	ErrNoPendingDelete  = errors.New("no pending delete")
)

// Record es un registro del backend con id numérico.
type Record interface {
	RecordID() int64
}

// Form es el binding de un formulario. Identifier() == 0 significa alta.
type Form interface {
	Identifier() int64
	Validate() error
	Payload() any
}

type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Definition describe un tipo de recurso: rutas, textos y bindings.
type Definition[T Record, F Form] struct {
	Path     string // "/Animales"
	Entity   string // "Animal"
	Feminine bool   // "creada" vs "creado"

	NewTitle       string
	EditTitle      func(T) string
	EmptyText      string
	LoadErrorTitle string
	ConfirmDelete  string

	Blank      func() F
	Bind       func(url.Values) F
	FromRecord func(T) F
	Row        func(T) Row

	// PrepareEdit completa el form con datos que no vienen en el registro.
	PrepareEdit func(ctx context.Context, api gateway.Requester, rec T, form F) F
}

// Actions es la vista no genérica de un Controller (para el router web).
type Actions interface {
	Load(ctx context.Context) error
	SubmitValues(ctx context.Context, v url.Values) error
	ValidateValues(v url.Values) error
	EditByID(ctx context.Context, id int64) bool
	Cancel()
	RequestDelete(id int64) PendingDelete
	ConfirmDelete(ctx context.Context) error
	AbortDelete()
	Pending() *PendingDelete
}

// Controller es dueño del ciclo fetch/render/validate/submit/delete de un
// tipo de recurso. La colección solo se reemplaza entera tras un GET.
type Controller[T Record, F Form] struct {
	def      Definition[T, F]
	api      gateway.Requester
	notifier Notifier
	log      logger.Logger

	afterLoad []func(ctx context.Context)
	onChange  []func(ctx context.Context)
	onEdit    []func(ctx context.Context, rec T)
	onReset   []func()

	mu         sync.Mutex
	items      []T
	loadErr    error
	form       F
	mode       Mode
	title      string
	submitting bool
	pending    *PendingDelete
}

func New[T Record, F Form](def Definition[T, F], api gateway.Requester, n Notifier, log logger.Logger) *Controller[T, F] {
	if log == nil {
		log = logger.Nop()
	}
	return &Controller[T, F]{
		def:      def,
		api:      api,
		notifier: n,
		log:      log.With(map[string]any{"resource": def.Path}),
		items:    []T{},
		form:     def.Blank(),
		mode:     ModeCreate,
		title:    def.NewTitle,
	}
}

// AfterLoad registra efectos tras un Load exitoso (p.ej. recargar selects).
func (c *Controller[T, F]) AfterLoad(fn func(ctx context.Context)) { c.afterLoad = append(c.afterLoad, fn) }

// OnChange registra refrescos dependientes tras alta/edición/baja exitosa.
func (c *Controller[T, F]) OnChange(fn func(ctx context.Context)) { c.onChange = append(c.onChange, fn) }

func (c *Controller[T, F]) OnEdit(fn func(ctx context.Context, rec T)) { c.onEdit = append(c.onEdit, fn) }

func (c *Controller[T, F]) OnReset(fn func()) { c.onReset = append(c.onReset, fn) }

// Load trae la colección completa. Si falla, notifica y deja el panel de
// error; la colección anterior no se toca.
func (c *Controller[T, F]) Load(ctx context.Context) error {
	var items []T
	if err := c.api.DoJSON(ctx, http.MethodGet, c.def.Path, nil, &items); err != nil {
		c.mu.Lock()
		c.loadErr = err
		c.mu.Unlock()

		c.log.Warn("load failed", map[string]any{"error": err})
		c.notifier.Error(err.Error())
		return err
	}
	if items == nil {
		items = []T{}
	}

	c.mu.Lock()
	c.items = items
	c.loadErr = nil
	c.mu.Unlock()

	for _, fn := range c.afterLoad {
		fn(ctx)
	}
	return nil
}

func (c *Controller[T, F]) Render() ListView {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loadErr != nil {
		return ListView{Error: &ErrorPanel{Title: c.def.LoadErrorTitle, Message: c.loadErr.Error()}}
	}
	if len(c.items) == 0 {
		return ListView{Empty: true, EmptyText: c.def.EmptyText}
	}

	rows := make([]Row, 0, len(c.items))
	for _, it := range c.items {
		rows = append(rows, c.def.Row(it))
	}
	return ListView{Rows: rows}
}

// Items devuelve una copia de la colección guardada.
func (c *Controller[T, F]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Controller[T, F]) Find(id int64) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, it := range c.items {
		if it.RecordID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func (c *Controller[T, F]) Form() FormState[F] {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := FormState[F]{
		Values:      c.form,
		Mode:        c.mode,
		Title:       c.title,
		SubmitLabel: labelSave,
		Submitting:  c.submitting,
	}
	if c.mode == ModeUpdate {
		st.SubmitLabel = labelUpdate
		st.ShowCancel = true
	}
	return st
}

func (c *Controller[T, F]) SubmitValues(ctx context.Context, v url.Values) error {
	return c.Submit(ctx, c.def.Bind(v))
}

// ValidateValues corre sólo la validación local; no toca el form ni notifica.
func (c *Controller[T, F]) ValidateValues(v url.Values) error {
	return c.def.Bind(v).Validate()
}

// Submit valida, hace POST (alta) o PUT (edición) y recarga. Ante cualquier
// error el form conserva lo ingresado.
func (c *Controller[T, F]) Submit(ctx context.Context, form F) error {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return ErrSubmitInProgress
	}
	c.submitting = true
	c.form = form
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.submitting = false
		c.mu.Unlock()
	}()

	if err := form.Validate(); err != nil {
		c.notifier.Error(err.Error())
		return err
	}

	id := form.Identifier()
	method, path, verb := http.MethodPost, c.def.Path, c.verb("creado")
	if id != 0 {
		method, path, verb = http.MethodPut, fmt.Sprintf("%s/%d", c.def.Path, id), c.verb("actualizado")
	}

	if err := c.api.DoJSON(ctx, method, path, form.Payload(), nil); err != nil {
		c.log.Info("submit failed", map[string]any{"method": method, "error": err})
		c.notifier.Error(err.Error())
		return err
	}

	c.notifier.Success(fmt.Sprintf("%s %s exitosamente", c.def.Entity, verb))
	c.ResetForm()
	c.changed(ctx)
	return nil
}

func (c *Controller[T, F]) Edit(ctx context.Context, rec T) {
	form := c.def.FromRecord(rec)
	if c.def.PrepareEdit != nil {
		form = c.def.PrepareEdit(ctx, c.api, rec, form)
	}

	title := c.def.NewTitle
	if c.def.EditTitle != nil {
		title = c.def.EditTitle(rec)
	}

	c.mu.Lock()
	c.form = form
	c.mode = ModeUpdate
	c.title = title
	c.mu.Unlock()

	for _, fn := range c.onEdit {
		fn(ctx, rec)
	}
}

// EditByID busca el registro en la colección cargada.
func (c *Controller[T, F]) EditByID(ctx context.Context, id int64) bool {
	rec, ok := c.Find(id)
	if !ok {
		return false
	}
	c.Edit(ctx, rec)
	return true
}

func (c *Controller[T, F]) Cancel() { c.ResetForm() }

func (c *Controller[T, F]) ResetForm() {
	c.mu.Lock()
	c.form = c.def.Blank()
	c.mode = ModeCreate
	c.title = c.def.NewTitle
	c.mu.Unlock()

	for _, fn := range c.onReset {
		fn()
	}
}

// RequestDelete deja la baja pendiente de confirmación.
func (c *Controller[T, F]) RequestDelete(id int64) PendingDelete {
	p := PendingDelete{ID: id, Message: c.def.ConfirmDelete}

	c.mu.Lock()
	c.pending = &p
	c.mu.Unlock()
	return p
}

func (c *Controller[T, F]) Pending() *PendingDelete {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending == nil {
		return nil
	}
	p := *c.pending
	return &p
}

func (c *Controller[T, F]) AbortDelete() {
	c.mu.Lock()
	c.pending = nil
	c.mu.Unlock()
}

func (c *Controller[T, F]) ConfirmDelete(ctx context.Context) error {
	c.mu.Lock()
	p := c.pending
	c.pending = nil
	c.mu.Unlock()

	if p == nil {
		return ErrNoPendingDelete
	}
	return c.Delete(ctx, p.ID)
}

// Delete es la mitad de red de la baja (ya confirmada).
func (c *Controller[T, F]) Delete(ctx context.Context, id int64) error {
	path := fmt.Sprintf("%s/%d", c.def.Path, id)
	if err := c.api.DoJSON(ctx, http.MethodDelete, path, nil, nil); err != nil {
		c.log.Info("delete failed", map[string]any{"id": id, "error": err})
		c.notifier.Error(err.Error())
		return err
	}

	c.notifier.Success(fmt.Sprintf("%s %s exitosamente", c.def.Entity, c.verb("eliminado")))
	c.changed(ctx)
	return nil
}

// changed recarga la colección (nunca se parchea localmente) y dispara
// los refrescos dependientes.
func (c *Controller[T, F]) changed(ctx context.Context) {
	_ = c.Load(ctx)
	for _, fn := range c.onChange {
		fn(ctx)
	}
}

// verb adapta el participio al género: "creado" -> "creada".
func (c *Controller[T, F]) verb(masculine string) string {
	if !c.def.Feminine {
		return masculine
	}
	return masculine[:len(masculine)-1] + "a"
}
