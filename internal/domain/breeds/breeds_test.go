package breeds

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vet-clinic-web/internal/platform/httpclient"
	"vet-clinic-web/internal/platform/notify"
)

func TestBySpecies(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/Razas/por-especie/2", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":5,"especieId":2,"nombre":"Siamés"}]`))
	}))
	defer ts.Close()

	api, err := httpclient.New(httpclient.Options{BaseURL: ts.URL + "/api"})
	require.NoError(t, err)

	got, err := BySpecies(context.Background(), api, 2)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Siamés", got[0].Nombre)
}

func TestSubmit_FeminineToast(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodGet {
			_, _ = w.Write([]byte(`[]`))
			return
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1}`))
	}))
	defer ts.Close()

	api, err := httpclient.New(httpclient.Options{BaseURL: ts.URL})
	require.NoError(t, err)
	center := notify.NewCenter(0)
	c := NewController(api, center, nil)

	require.NoError(t, c.SubmitValues(context.Background(), url.Values{"nombre": {"Siamés"}, "especieId": {"2"}}))
	last, _ := center.Last()
	assert.Equal(t, "Raza creada exitosamente", last.Message)

	err = c.SubmitValues(context.Background(), url.Values{"nombre": {"Siamés"}})
	require.Error(t, err)
	assert.Equal(t, "El nombre y la especie son requeridos", err.Error())
}
