package selectors

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vet-clinic-web/internal/platform/httpclient"
)

func serve(t *testing.T, routes map[string]string) *httpclient.Client {
	t.Helper()
	mux := http.NewServeMux()
	for pattern, body := range routes {
		mux.HandleFunc(pattern, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))
		})
	}
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	c, err := httpclient.New(httpclient.Options{BaseURL: ts.URL})
	require.NoError(t, err)
	return c
}

func TestInitialPlaceholders(t *testing.T) {
	v := New(serve(t, nil), nil).View()
	assert.Equal(t, "Sin dueño", v.Owners.Placeholder)
	assert.Equal(t, "Seleccionar...", v.Species.Placeholder)
	assert.Equal(t, "Seleccione primero una especie", v.Breeds.Placeholder)
	assert.Equal(t, "Sin medicamento", v.TreatmentMedications.Placeholder)
}

func TestLoadOwnersAndSpecies(t *testing.T) {
	s := New(serve(t, map[string]string{
		"GET /Duenos":   `[{"id":1,"nombre":"Ana"},{"id":2,"nombre":"Luis"}]`,
		"GET /Especies": `[{"id":3,"nombre":"Gato"}]`,
	}), nil)

	require.NoError(t, s.LoadOwners(context.Background()))
	require.NoError(t, s.LoadSpecies(context.Background()))

	v := s.View()
	assert.Equal(t, []Option{{1, "Ana"}, {2, "Luis"}}, v.Owners.Options)
	assert.Equal(t, []Option{{3, "Gato"}}, v.Species.Options)
	assert.True(t, v.Species.Has(3))
}

func TestLoadBreeds(t *testing.T) {
	s := New(serve(t, map[string]string{
		"GET /Razas/por-especie/3": `[{"id":7,"especieId":3,"nombre":"Persa"}]`,
	}), nil)

	require.NoError(t, s.LoadBreeds(context.Background(), 3))
	v := s.View()
	assert.Equal(t, "Sin raza", v.Breeds.Placeholder)
	assert.Equal(t, []Option{{7, "Persa"}}, v.Breeds.Options)
	assert.Equal(t, int64(3), v.BreedSpeciesID)

	require.Error(t, s.LoadBreeds(context.Background(), 4))
	v = s.View()
	assert.Equal(t, "Error al cargar razas", v.Breeds.Placeholder)
	assert.True(t, v.Breeds.Failed)
	assert.Empty(t, v.Breeds.Options)

	require.NoError(t, s.LoadBreeds(context.Background(), 0))
	assert.Equal(t, "Seleccione primero una especie", s.View().Breeds.Placeholder)
	assert.Equal(t, int64(0), s.View().BreedSpeciesID)
}

func TestLoadTreatmentOptions_FailureIsolated(t *testing.T) {
	s := New(serve(t, map[string]string{
		"GET /Animales":     `[{"id":1,"nombre":"Rex","especieId":1,"especie":{"id":1,"nombre":"Perro"}}]`,
		"GET /Medicamentos": `[{"id":4,"nombre":"Rabivac"}]`,
		// /Veterinarios responde 500
	}), nil)

	s.LoadTreatmentOptions(context.Background())

	v := s.View()
	assert.Equal(t, []Option{{1, "Rex (Perro)"}}, v.TreatmentAnimals.Options)
	assert.Empty(t, v.TreatmentVets.Options)
	assert.Equal(t, "Seleccionar...", v.TreatmentVets.Placeholder)
	assert.Equal(t, []Option{{4, "Rabivac"}}, v.TreatmentMedications.Options)
}
