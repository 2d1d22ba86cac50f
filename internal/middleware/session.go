package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"vet-clinic-web/internal/app"
)

type ctxKey string

const appKey ctxKey = "app"

const (
	SessionCookie = "vetclinic_session"

	// DefaultSessionIdle: sesiones sin uso se descartan.
	DefaultSessionIdle = 12 * time.Hour

	// DefaultMaxSessions: pasado el tope se descarta la usada hace más tiempo.
	DefaultMaxSessions = 1000
)

// Sessions guarda un app.App por navegador, indexado por la cookie. Es un
// LRU con vencimiento por inactividad: cada uso renueva el plazo.
type Sessions struct {
	newApp func() *app.App
	cache  *expirable.LRU[string, *app.App]
}

func NewSessions(newApp func() *app.App, idle time.Duration, max int) *Sessions {
	if idle <= 0 {
		idle = DefaultSessionIdle
	}
	if max <= 0 {
		max = DefaultMaxSessions
	}
	return &Sessions{
		newApp: newApp,
		cache:  expirable.NewLRU[string, *app.App](max, nil, idle),
	}
}

// Get devuelve la sesión id o crea una nueva si no existe o venció.
// created indica si hay que (re)emitir la cookie.
func (s *Sessions) Get(id string) (sid string, a *app.App, created bool) {
	if _, err := uuid.Parse(id); err == nil {
		if a, ok := s.cache.Get(id); ok {
			// Add sobre una clave existente renueva el vencimiento
			s.cache.Add(id, a)
			return id, a, false
		}
	}

	sid = uuid.NewString()
	a = s.newApp()
	s.cache.Add(sid, a)
	return sid, a, true
}

func (s *Sessions) Len() int { return s.cache.Len() }

// Session resuelve (o crea) el app.App de la cookie y lo deja en el context.
func Session(store *Sessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string
			if c, err := r.Cookie(SessionCookie); err == nil {
				id = c.Value
			}

			sid, a, created := store.Get(id)
			if created {
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookie,
					Value:    sid,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), appKey, a)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetApp(ctx context.Context) (*app.App, bool) {
	a, ok := ctx.Value(appKey).(*app.App)
	return a, ok && a != nil
}
