package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"vet-clinic-web/internal/mockapi/store"
)

// RecordsRepo guarda cada registro como JSONB en mock_records(kind, id, body).
// El id no se guarda dentro de body.
type RecordsRepo struct {
	db *sql.DB
}

func NewRecordsRepo(db *sql.DB) *RecordsRepo {
	return &RecordsRepo{db: db}
}

func (r *RecordsRepo) Create(ctx context.Context, kind store.Kind, body store.Record) (store.Record, error) {
	raw, err := encodeBody(body)
	if err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	// serializa los altas del mismo kind para que MAX(id)+1 no choque
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, string(kind)); err != nil {
		return nil, err
	}

	var id int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO mock_records (kind, id, body)
		SELECT $1, COALESCE(MAX(id), 0) + 1, $2::jsonb
		FROM mock_records
		WHERE kind = $1
		RETURNING id
	`, string(kind), raw).Scan(&id)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return withID(body, id), nil
}

func (r *RecordsRepo) Update(ctx context.Context, kind store.Kind, id int64, body store.Record) (store.Record, error) {
	raw, err := encodeBody(body)
	if err != nil {
		return nil, err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE mock_records
		SET body = $3::jsonb
		WHERE kind = $1 AND id = $2
	`, string(kind), id, raw)
	if err != nil {
		return nil, err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return nil, store.ErrNotFound
	}
	return withID(body, id), nil
}

func (r *RecordsRepo) Put(ctx context.Context, kind store.Kind, id int64, body store.Record) (store.Record, error) {
	if id <= 0 {
		return nil, errors.New("record id required")
	}
	raw, err := encodeBody(body)
	if err != nil {
		return nil, err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO mock_records (kind, id, body)
		VALUES ($1, $2, $3::jsonb)
		ON CONFLICT (kind, id) DO UPDATE SET body = EXCLUDED.body
	`, string(kind), id, raw)
	if err != nil {
		return nil, err
	}
	return withID(body, id), nil
}

func (r *RecordsRepo) Delete(ctx context.Context, kind store.Kind, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM mock_records WHERE kind = $1 AND id = $2`, string(kind), id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *RecordsRepo) GetByID(ctx context.Context, kind store.Kind, id int64) (store.Record, error) {
	var raw []byte
	err := r.db.QueryRowContext(ctx, `
		SELECT body FROM mock_records WHERE kind = $1 AND id = $2
	`, string(kind), id).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return decodeBody(raw, id)
}

func (r *RecordsRepo) List(ctx context.Context, kind store.Kind) ([]store.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, body FROM mock_records WHERE kind = $1 ORDER BY id
	`, string(kind))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]store.Record, 0)
	for rows.Next() {
		var (
			id  int64
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, err
		}
		rec, err := decodeBody(raw, id)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func encodeBody(body store.Record) (string, error) {
	clean := body.Clone()
	delete(clean, "id")
	b, err := json.Marshal(clean)
	if err != nil {
		return "", fmt.Errorf("encode record: %w", err)
	}
	return string(b), nil
}

func decodeBody(raw []byte, id int64) (store.Record, error) {
	rec, err := store.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	rec["id"] = id
	return rec, nil
}

func withID(body store.Record, id int64) store.Record {
	rec := body.Clone()
	rec["id"] = id
	return rec
}
