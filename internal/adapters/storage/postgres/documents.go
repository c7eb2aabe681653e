package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// docKeys son las columnas indexadas que acompañan al documento JSONB.
type docKeys struct {
	ID        string
	OwnerID   string
	VendorID  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// docTable guarda entidades como JSONB con un puñado de columnas escalares
// para filtrar. table siempre es una constante del paquete.
type docTable[T any] struct {
	db    *sql.DB
	table string
	keys  func(T) docKeys
}

func (t docTable[T]) insert(ctx context.Context, v T) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return err
	}
	k := t.keys(v)
	_, err = t.db.ExecContext(ctx, `
		INSERT INTO `+t.table+` (id, owner_id, vendor_id, created_at, updated_at, doc)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), $4, $5, $6)
	`, k.ID, k.OwnerID, k.VendorID, k.CreatedAt, k.UpdatedAt, doc)
	return mapErr(err)
}

func (t docTable[T]) update(ctx context.Context, v T) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return err
	}
	k := t.keys(v)
	res, err := t.db.ExecContext(ctx, `
		UPDATE `+t.table+`
		SET owner_id = NULLIF($2, ''), vendor_id = NULLIF($3, ''), updated_at = $4, doc = $5
		WHERE id = $1
	`, k.ID, k.OwnerID, k.VendorID, k.UpdatedAt, doc)
	if err != nil {
		return mapErr(err)
	}
	return affected(res)
}

func (t docTable[T]) get(ctx context.Context, id string) (T, error) {
	var zero T
	id = strings.TrimSpace(id)
	if id == "" {
		return zero, ErrNotFound
	}

	var raw []byte
	err := t.db.QueryRowContext(ctx, `SELECT doc FROM `+t.table+` WHERE id = $1`, id).Scan(&raw)
	if err != nil {
		return zero, mapErr(err)
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return zero, fmt.Errorf("decode %s %s: %w", t.table, id, err)
	}
	return v, nil
}

func (t docTable[T]) delete(ctx context.Context, id string) error {
	res, err := t.db.ExecContext(ctx, `DELETE FROM `+t.table+` WHERE id = $1`, id)
	if err != nil {
		return mapErr(err)
	}
	return affected(res)
}

// list aplica where (con $1..$n) y devuelve más reciente primero.
func (t docTable[T]) list(ctx context.Context, where string, args ...any) ([]T, error) {
	rows, err := t.db.QueryContext(ctx, `
		SELECT doc FROM `+t.table+`
		WHERE `+where+`
		ORDER BY created_at DESC, id ASC
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("decode %s: %w", t.table, err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
