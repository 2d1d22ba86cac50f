package animals

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vet-clinic-web/internal/platform/httpclient"
	"vet-clinic-web/internal/platform/notify"
	"vet-clinic-web/internal/platform/validation"
)

type hit struct {
	Method string
	Path   string
	Body   string
}

type backend struct {
	mu   sync.Mutex
	hits []hit
	mux  *http.ServeMux
}

func newBackend() *backend {
	return &backend{mux: http.NewServeMux()}
}

func (b *backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	b.mu.Lock()
	b.hits = append(b.hits, hit{Method: r.Method, Path: r.URL.Path, Body: string(body)})
	b.mu.Unlock()
	b.mux.ServeHTTP(w, r)
}

func (b *backend) Hits() []hit {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]hit(nil), b.hits...)
}

func jsonHandler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func newClient(t *testing.T, h http.Handler) *httpclient.Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	c, err := httpclient.New(httpclient.Options{BaseURL: ts.URL + "/api"})
	require.NoError(t, err)
	return c
}

func TestSubmit_NewAnimalPostsNormalizedPayload(t *testing.T) {
	b := newBackend()
	b.mux.HandleFunc("POST /api/Animales", jsonHandler(http.StatusCreated, `{"id":1}`))
	b.mux.HandleFunc("GET /api/Animales", jsonHandler(http.StatusOK,
		`[{"id":1,"nombre":"Rex","especieId":1,"especie":{"id":1,"nombre":"Perro"}}]`))

	center := notify.NewCenter(0)
	c := NewController(newClient(t, b), center, nil)

	err := c.SubmitValues(context.Background(), url.Values{
		"nombre":    {"  Rex "},
		"especieId": {"1"},
		"razaId":    {""},
		"duenoId":   {""},
		"peso":      {""},
	})
	require.NoError(t, err)

	hits := b.Hits()
	require.Len(t, hits, 2)
	assert.Equal(t, http.MethodPost, hits[0].Method)
	assert.Equal(t, "/api/Animales", hits[0].Path)
	assert.JSONEq(t, `{
		"nombre":"Rex","especieId":1,"razaId":null,"fechaNacimiento":null,
		"color":null,"peso":null,"duenoId":null,"observacionesHistoria":null
	}`, hits[0].Body)
	assert.Equal(t, http.MethodGet, hits[1].Method)

	last, ok := center.Last()
	require.True(t, ok)
	assert.Equal(t, "Animal creado exitosamente", last.Message)
	assert.False(t, last.IsError())

	view := c.Render()
	require.Len(t, view.Rows, 1)
	assert.Equal(t, "Rex", view.Rows[0].Title)
	assert.Equal(t, "Perro", view.Rows[0].Details[0].Value)
	assert.True(t, view.Rows[0].HasHistory)
}

func TestSubmit_MissingSpeciesNeverHitsNetwork(t *testing.T) {
	b := newBackend()
	c := NewController(newClient(t, b), notify.NewCenter(0), nil)

	err := c.SubmitValues(context.Background(), url.Values{"nombre": {"Rex"}})

	var ve *validation.Error
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "El nombre y la especie son requeridos", ve.Message)
	assert.Empty(t, b.Hits())
	assert.Equal(t, "Rex", c.Form().Values.Nombre)
}

func TestEdit_PrefillsHistoryNotes(t *testing.T) {
	b := newBackend()
	b.mux.HandleFunc("GET /api/Animales", jsonHandler(http.StatusOK,
		`[{"id":5,"nombre":"Luna","especieId":2,"razaId":4,"peso":4.5,"fechaNacimiento":"2020-06-01T00:00:00","dueno":{"id":3,"nombre":"Ana"}}]`))
	b.mux.HandleFunc("GET /api/HistoriasClinicas/animal/5", jsonHandler(http.StatusOK,
		`{"animalId":5,"observaciones":"Control anual","fechaCreacion":"2024-01-01T10:00:00"}`))

	c := NewController(newClient(t, b), notify.NewCenter(0), nil)
	require.NoError(t, c.Load(context.Background()))
	require.True(t, c.EditByID(context.Background(), 5))

	st := c.Form()
	assert.Equal(t, "Editar Animal: Luna", st.Title)
	assert.Equal(t, "Actualizar", st.SubmitLabel)
	assert.Equal(t, "Control anual", st.Values.ObservacionesHistoria)
	assert.Equal(t, "2020-06-01", st.Values.FechaNacimiento)
	assert.Equal(t, "4.5", st.Values.Peso)
	assert.Equal(t, int64(4), st.Values.RazaID)

	row := c.Render().Rows[0]
	assert.Equal(t, []string{"4.5 kg"}, row.Notes)
	assert.Equal(t, "Dueño", row.Details[1].Label)
}

func TestEdit_MissingHistoryLeavesNotesEmpty(t *testing.T) {
	b := newBackend()
	b.mux.HandleFunc("GET /api/Animales", jsonHandler(http.StatusOK, `[{"id":5,"nombre":"Luna","especieId":2}]`))
	b.mux.HandleFunc("GET /api/HistoriasClinicas/animal/5", jsonHandler(http.StatusNotFound, `{"message":"no encontrada"}`))

	center := notify.NewCenter(0)
	c := NewController(newClient(t, b), center, nil)
	require.NoError(t, c.Load(context.Background()))
	require.True(t, c.EditByID(context.Background(), 5))

	assert.Equal(t, "", c.Form().Values.ObservacionesHistoria)
	assert.Empty(t, center.Active())
}

func TestDelete_LastAnimalShowsPlaceholder(t *testing.T) {
	b := newBackend()
	var listed atomic.Bool
	b.mux.HandleFunc("GET /api/Animales", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if listed.CompareAndSwap(false, true) {
			_, _ = w.Write([]byte(`[{"id":1,"nombre":"Rex","especieId":1}]`))
			return
		}
		_, _ = w.Write([]byte(`[]`))
	})
	b.mux.HandleFunc("DELETE /api/Animales/1", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	center := notify.NewCenter(0)
	c := NewController(newClient(t, b), center, nil)
	require.NoError(t, c.Load(context.Background()))

	p := c.RequestDelete(1)
	assert.Equal(t, "¿Eliminar este animal? Esta acción también eliminará su historia clínica.", p.Message)
	require.NoError(t, c.ConfirmDelete(context.Background()))

	view := c.Render()
	assert.True(t, view.Empty)
	assert.Equal(t, "No hay animales registrados", view.EmptyText)

	last, _ := center.Last()
	assert.Equal(t, "Animal eliminado exitosamente", last.Message)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Rex (N/A)", Animal{Nombre: "Rex"}.Label())
}
