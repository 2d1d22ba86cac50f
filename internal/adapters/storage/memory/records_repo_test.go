package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vet-clinic-web/internal/mockapi/store"
)

func TestRecordsRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewRecordsRepo()

	a, err := repo.Create(ctx, store.KindEspecies, store.Record{"nombre": "Perro"})
	require.NoError(t, err)
	b, err := repo.Create(ctx, store.KindEspecies, store.Record{"nombre": "Gato"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), a.ID())
	assert.Equal(t, int64(2), b.ID())

	// secuencias independientes por kind
	d, err := repo.Create(ctx, store.KindDuenos, store.Record{"nombre": "Ana"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), d.ID())

	_, err = repo.Update(ctx, store.KindEspecies, 1, store.Record{"nombre": "Perro doméstico"})
	require.NoError(t, err)
	got, err := repo.GetByID(ctx, store.KindEspecies, 1)
	require.NoError(t, err)
	assert.Equal(t, "Perro doméstico", got["nombre"])

	_, err = repo.Update(ctx, store.KindEspecies, 99, store.Record{})
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, store.KindEspecies, 1))
	assert.ErrorIs(t, repo.Delete(ctx, store.KindEspecies, 1), store.ErrNotFound)

	list, err := repo.List(ctx, store.KindEspecies)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Gato", list[0]["nombre"])
}

func TestRecordsRepo_PutUpserts(t *testing.T) {
	ctx := context.Background()
	repo := NewRecordsRepo()

	_, err := repo.Put(ctx, store.KindHistorias, 42, store.Record{"observaciones": "a"})
	require.NoError(t, err)
	_, err = repo.Put(ctx, store.KindHistorias, 42, store.Record{"observaciones": "b"})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, store.KindHistorias, 42)
	require.NoError(t, err)
	assert.Equal(t, "b", got["observaciones"])

	_, err = repo.Put(ctx, store.KindHistorias, 0, store.Record{})
	assert.Error(t, err)
}

func TestRecordsRepo_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewRecordsRepo()

	rec, err := repo.Create(ctx, store.KindRazas, store.Record{"nombre": "Persa"})
	require.NoError(t, err)
	rec["nombre"] = "otro"

	got, err := repo.GetByID(ctx, store.KindRazas, rec.ID())
	require.NoError(t, err)
	assert.Equal(t, "Persa", got["nombre"])
}
