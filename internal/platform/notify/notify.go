package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const DefaultTTL = 5 * time.Second

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Toast es una notificación transitoria (descartable, expira sola).
type Toast struct {
	ID        string
	Kind      Kind
	Message   string
	ExpiresAt time.Time
}

func (t Toast) IsError() bool { return t.Kind == KindError }

// Center guarda los toasts de una sesión.
type Center struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	toasts []Toast
}

func NewCenter(ttl time.Duration) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Center{
		ttl: ttl,
		now: time.Now,
	}
}

func (c *Center) Success(msg string) { c.push(KindSuccess, msg) }
func (c *Center) Error(msg string)   { c.push(KindError, msg) }

func (c *Center) push(kind Kind, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.toasts = append(c.toasts, Toast{
		ID:        uuid.NewString(),
		Kind:      kind,
		Message:   msg,
		ExpiresAt: c.now().Add(c.ttl),
	})
}

// Active devuelve los toasts vigentes (y descarta los vencidos).
func (c *Center) Active() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	kept := c.toasts[:0]
	for _, t := range c.toasts {
		if now.Before(t.ExpiresAt) {
			kept = append(kept, t)
		}
	}
	c.toasts = kept

	out := make([]Toast, len(kept))
	copy(out, kept)
	return out
}

func (c *Center) Dismiss(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, t := range c.toasts {
		if t.ID == id {
			c.toasts = append(c.toasts[:i], c.toasts[i+1:]...)
			return true
		}
	}
	return false
}

// Last devuelve el último toast emitido, vigente o no.
func (c *Center) Last() (Toast, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.toasts) == 0 {
		return Toast{}, false
	}
	return c.toasts[len(c.toasts)-1], true
}
