package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"vet-clinic-web/internal/mockapi/store"
)

type recordsRepo struct {
	mu     sync.RWMutex
	byKind map[store.Kind]map[int64]store.Record
	seq    map[store.Kind]int64
}

func NewRecordsRepo() store.Repository {
	return &recordsRepo{
		byKind: make(map[store.Kind]map[int64]store.Record),
		seq:    make(map[store.Kind]int64),
	}
}

func (r *recordsRepo) Create(ctx context.Context, kind store.Kind, body store.Record) (store.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq[kind]++
	return r.putLocked(kind, r.seq[kind], body), nil
}

func (r *recordsRepo) Update(ctx context.Context, kind store.Kind, id int64, body store.Record) (store.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byKind[kind][id]; !exists {
		return nil, store.ErrNotFound
	}
	return r.putLocked(kind, id, body), nil
}

func (r *recordsRepo) Put(ctx context.Context, kind store.Kind, id int64, body store.Record) (store.Record, error) {
	if id <= 0 {
		return nil, errors.New("record id required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if id > r.seq[kind] {
		r.seq[kind] = id
	}
	return r.putLocked(kind, id, body), nil
}

func (r *recordsRepo) Delete(ctx context.Context, kind store.Kind, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byKind[kind][id]; !exists {
		return store.ErrNotFound
	}
	delete(r.byKind[kind], id)
	return nil
}

func (r *recordsRepo) GetByID(ctx context.Context, kind store.Kind, id int64) (store.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byKind[kind][id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return rec.Clone(), nil
}

func (r *recordsRepo) List(ctx context.Context, kind store.Kind) ([]store.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]store.Record, 0, len(r.byKind[kind]))
	for _, rec := range r.byKind[kind] {
		out = append(out, rec.Clone())
	}

	// Orden estable por id (lo que haría un ORDER BY id)
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID() < out[j].ID()
	})
	return out, nil
}

func (r *recordsRepo) putLocked(kind store.Kind, id int64, body store.Record) store.Record {
	rec := body.Clone()
	rec["id"] = id

	if r.byKind[kind] == nil {
		r.byKind[kind] = make(map[int64]store.Record)
	}
	r.byKind[kind][id] = rec
	return rec.Clone()
}
