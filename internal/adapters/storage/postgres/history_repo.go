package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pawfam-api/internal/domain/history"
	"pawfam-api/internal/domain/lifecycle"
)

type HistoryRepo struct {
	db *sql.DB
}

func NewHistoryRepo(db *sql.DB) *HistoryRepo {
	return &HistoryRepo{db: db}
}

func (r *HistoryRepo) Create(ctx context.Context, e history.Entry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO status_history (
			id, entity_kind, entity_id,
			type, from_status, to_status,
			actor_type, actor_id,
			occurred_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		e.ID,
		string(e.EntityKind),
		e.EntityID,
		string(e.Type),
		e.FromStatus,
		e.ToStatus,
		string(e.Actor.Type),
		e.Actor.ID,
		e.OccurredAt,
	)
	return mapErr(err)
}

func (r *HistoryRepo) ListByEntity(ctx context.Context, kind lifecycle.Kind, entityID string, limit int) ([]history.Entry, error) {
	entityID = strings.TrimSpace(entityID)
	if entityID == "" {
		return []history.Entry{}, nil
	}
	if limit <= 0 {
		limit = 100
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, entity_kind, entity_id,
			type, from_status, to_status,
			actor_type, actor_id,
			occurred_at
		FROM status_history
		WHERE entity_kind = $1 AND entity_id = $2
		ORDER BY occurred_at ASC, seq ASC
		LIMIT $3
	`, string(kind), entityID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]history.Entry, 0)
	for rows.Next() {
		var e history.Entry
		var rawKind, typ, actorType string
		if err := rows.Scan(
			&e.ID,
			&rawKind,
			&e.EntityID,
			&typ,
			&e.FromStatus,
			&e.ToStatus,
			&actorType,
			&e.Actor.ID,
			&e.OccurredAt,
		); err != nil {
			return nil, err
		}
		e.EntityKind = lifecycle.Kind(rawKind)
		e.Type = history.EventType(typ)
		e.Actor.Type = history.ActorType(actorType)
		out = append(out, e)
	}
	return out, rows.Err()
}
