package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vet-clinic-web/internal/platform/httpclient"
)

// countingAPI responde [] a todo GET y {"id":1} al resto, y cuenta hits.
type countingAPI struct {
	mu   sync.Mutex
	hits map[string]int
}

func (c *countingAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c.mu.Lock()
	c.hits[r.Method+" "+r.URL.Path]++
	c.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if r.Method == http.MethodGet {
		_, _ = w.Write([]byte(`[]`))
		return
	}
	_, _ = w.Write([]byte(`{"id":1}`))
}

func (c *countingAPI) Count(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits[key]
}

func (c *countingAPI) Reset() {
	c.mu.Lock()
	c.hits = map[string]int{}
	c.mu.Unlock()
}

func newTestApp(t *testing.T) (*App, *countingAPI) {
	t.Helper()
	backend := &countingAPI{hits: map[string]int{}}
	ts := httptest.NewServer(backend)
	t.Cleanup(ts.Close)

	api, err := httpclient.New(httpclient.Options{BaseURL: ts.URL})
	require.NoError(t, err)
	return New(Options{API: api}), backend
}

func TestParseTab(t *testing.T) {
	tab, err := ParseTab(" Tratamientos ")
	require.NoError(t, err)
	assert.Equal(t, TabTratamientos, tab)

	_, err = ParseTab("facturacion")
	assert.ErrorIs(t, err, ErrUnknownTab)
}

func TestSwitch_RunsDestinationLoaders(t *testing.T) {
	a, backend := newTestApp(t)
	assert.Equal(t, TabAnimales, a.Active())

	ctx := context.Background()

	require.NoError(t, a.Switch(ctx, TabAnimales))
	assert.Equal(t, 1, backend.Count("GET /Animales"))
	assert.Equal(t, 1, backend.Count("GET /Duenos"))
	assert.Equal(t, 1, backend.Count("GET /Especies"))

	backend.Reset()
	require.NoError(t, a.Switch(ctx, TabTratamientos))
	assert.Equal(t, TabTratamientos, a.Active())
	assert.Equal(t, 1, backend.Count("GET /Tratamientos"))
	assert.Equal(t, 1, backend.Count("GET /Animales"))
	assert.Equal(t, 1, backend.Count("GET /Veterinarios"))
	assert.Equal(t, 1, backend.Count("GET /Medicamentos"))

	backend.Reset()
	require.NoError(t, a.Switch(ctx, TabConfiguracion))
	assert.Equal(t, 2, backend.Count("GET /Especies"))
	assert.Equal(t, 1, backend.Count("GET /Razas"))
	assert.Equal(t, 1, backend.Count("GET /Medicamentos"))

	assert.ErrorIs(t, a.Switch(ctx, Tab("nada")), ErrUnknownTab)
	assert.Equal(t, TabConfiguracion, a.Active())
}

func TestOwnerMutation_RefreshesOwnerSelectOnlyOnAnimales(t *testing.T) {
	a, backend := newTestApp(t)
	ctx := context.Background()
	form := url.Values{"nombre": {"Ana"}}

	require.NoError(t, a.Switch(ctx, TabDuenos))
	backend.Reset()
	require.NoError(t, a.Owners.SubmitValues(ctx, form))
	// sólo la recarga de la lista
	assert.Equal(t, 1, backend.Count("GET /Duenos"))

	require.NoError(t, a.Switch(ctx, TabAnimales))
	backend.Reset()
	require.NoError(t, a.Owners.SubmitValues(ctx, form))
	// lista + select del form de animales
	assert.Equal(t, 2, backend.Count("GET /Duenos"))
}

func TestVetMutation_RefreshesTreatmentFanOutOnTratamientos(t *testing.T) {
	a, backend := newTestApp(t)
	ctx := context.Background()
	form := url.Values{"nombre": {"Dra. Paz"}, "numeroLicencia": {"MV-1"}}

	require.NoError(t, a.Switch(ctx, TabVeterinarios))
	backend.Reset()
	require.NoError(t, a.Vets.SubmitValues(ctx, form))
	assert.Equal(t, 0, backend.Count("GET /Medicamentos"))

	require.NoError(t, a.Switch(ctx, TabTratamientos))
	backend.Reset()
	require.NoError(t, a.Vets.SubmitValues(ctx, form))
	assert.Equal(t, 1, backend.Count("GET /Medicamentos"))
	assert.Equal(t, 1, backend.Count("GET /Animales"))
}

func TestBreedMutation_RefreshesBreedSelectWhenSpeciesChosen(t *testing.T) {
	a, backend := newTestApp(t)
	ctx := context.Background()
	form := url.Values{"nombre": {"Persa"}, "especieId": {"3"}}

	require.NoError(t, a.Switch(ctx, TabAnimales))
	backend.Reset()
	require.NoError(t, a.Breeds.SubmitValues(ctx, form))
	assert.Equal(t, 0, backend.Count("GET /Razas/por-especie/3"))

	_ = a.Selectors.LoadBreeds(ctx, 3)
	backend.Reset()
	require.NoError(t, a.Breeds.SubmitValues(ctx, form))
	assert.Equal(t, 1, backend.Count("GET /Razas/por-especie/3"))
}

func TestSpeciesMutation_AlwaysRefreshesSpeciesSelects(t *testing.T) {
	a, backend := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, a.Switch(ctx, TabConfiguracion))
	backend.Reset()
	require.NoError(t, a.Species.SubmitValues(ctx, url.Values{"nombre": {"Ave"}}))
	assert.Equal(t, 2, backend.Count("GET /Especies"))

	last, ok := a.Notify.Last()
	require.True(t, ok)
	assert.Equal(t, "Especie creada exitosamente", last.Message)
}

func TestAnimalEditAndReset_DriveBreedSelect(t *testing.T) {
	a, _ := newTestApp(t)
	ctx := context.Background()

	a.Animals.Edit(ctx, animalWithSpecies(7, 3))
	assert.Equal(t, int64(3), a.Selectors.View().BreedSpeciesID)
	assert.Equal(t, "Sin raza", a.Selectors.View().Breeds.Placeholder)

	a.Animals.Cancel()
	assert.Equal(t, "Seleccione primero una especie", a.Selectors.View().Breeds.Placeholder)
}

func TestResource(t *testing.T) {
	a, _ := newTestApp(t)

	_, tab, ok := a.Resource("razas")
	require.True(t, ok)
	assert.Equal(t, TabConfiguracion, tab)

	_, _, ok = a.Resource("facturas")
	assert.False(t, ok)
}

func TestVisit_LoadsOnlyOnTabChangeOrReload(t *testing.T) {
	a, backend := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, a.Visit(ctx, TabDuenos, false))
	assert.Equal(t, 1, backend.Count("GET /Duenos"))

	require.NoError(t, a.Visit(ctx, TabDuenos, false))
	assert.Equal(t, 1, backend.Count("GET /Duenos"))

	require.NoError(t, a.Visit(ctx, TabDuenos, true))
	assert.Equal(t, 2, backend.Count("GET /Duenos"))

	require.NoError(t, a.Visit(ctx, TabVeterinarios, false))
	assert.Equal(t, 1, backend.Count("GET /Veterinarios"))
}

func TestSwitchBackToAnimales_RefreshesBreedsOfChosenSpecies(t *testing.T) {
	a, backend := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, a.Switch(ctx, TabAnimales))
	assert.Equal(t, 0, backend.Count("GET /Razas/por-especie/3"))

	require.NoError(t, a.Selectors.LoadBreeds(ctx, 3))
	require.NoError(t, a.Switch(ctx, TabConfiguracion))

	backend.Reset()
	require.NoError(t, a.Switch(ctx, TabAnimales))
	assert.Equal(t, 1, backend.Count("GET /Razas/por-especie/3"))
	assert.Equal(t, int64(3), a.Selectors.View().BreedSpeciesID)
}
