package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vet-clinic-web/internal/app"
)

func newStore() *Sessions {
	return NewSessions(func() *app.App { return app.New(app.Options{}) }, time.Hour, 0)
}

func TestSession_IssuesCookieAndReusesApp(t *testing.T) {
	store := newStore()

	var seen []*app.App
	h := Session(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a, ok := GetApp(r.Context())
		require.True(t, ok)
		seen = append(seen, a)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookie, cookies[0].Name)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Empty(t, rr.Result().Cookies())

	require.Len(t, seen, 2)
	assert.Same(t, seen[0], seen[1])
	assert.Equal(t, 1, store.Len())
}

func TestSession_UnknownCookieGetsNewSession(t *testing.T) {
	store := newStore()
	h := Session(store)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "no-es-uuid"})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.Len(t, rr.Result().Cookies(), 1)
	assert.NotEqual(t, "no-es-uuid", rr.Result().Cookies()[0].Value)
}

func TestSessions_EvictsIdle(t *testing.T) {
	store := NewSessions(func() *app.App { return app.New(app.Options{}) }, 30*time.Millisecond, 0)

	id, first, created := store.Get("")
	require.True(t, created)

	time.Sleep(80 * time.Millisecond)
	_, second, created := store.Get(id)
	assert.True(t, created)
	assert.NotSame(t, first, second)
}

func TestSessions_CapsCookielessRequests(t *testing.T) {
	store := NewSessions(func() *app.App { return app.New(app.Options{}) }, time.Hour, 3)
	h := Session(store)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	for i := 0; i < 50; i++ {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	}
	assert.Equal(t, 3, store.Len())
}

func TestSessions_UseKeepsSessionOverNewer(t *testing.T) {
	store := NewSessions(func() *app.App { return app.New(app.Options{}) }, time.Hour, 2)

	oldest, a, _ := store.Get("")
	store.Get("")
	_, again, created := store.Get(oldest)
	require.False(t, created)
	store.Get("")

	_, kept, created := store.Get(oldest)
	assert.False(t, created)
	assert.Same(t, a, again)
	assert.Same(t, a, kept)
	assert.Equal(t, 2, store.Len())
}

func TestGetApp_Missing(t *testing.T) {
	_, ok := GetApp(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.False(t, ok)
}
