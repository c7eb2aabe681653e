package memory

import (
	"context"
	"sort"
	"sync"

	"pawfam-api/internal/domain/history"
	"pawfam-api/internal/domain/lifecycle"
	"pawfam-api/internal/platform/apperr"
)

// historyRepo es append-only: no hay update ni delete.
type historyRepo struct {
	mu      sync.RWMutex
	entries []history.Entry
	ids     map[string]struct{}
}

func NewHistoryRepo() history.Repository {
	return &historyRepo{ids: make(map[string]struct{})}
}

func (r *historyRepo) Create(ctx context.Context, e history.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		return apperr.Invalid("entry id required")
	}
	if _, exists := r.ids[e.ID]; exists {
		return apperr.Conflict("entry already exists")
	}
	r.ids[e.ID] = struct{}{}
	r.entries = append(r.entries, e)
	return nil
}

func (r *historyRepo) ListByEntity(ctx context.Context, kind lifecycle.Kind, entityID string, limit int) ([]history.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]history.Entry, 0)
	for _, e := range r.entries {
		if e.EntityKind == kind && e.EntityID == entityID {
			out = append(out, e)
		}
	}

	// orden de inserción como desempate: dos cambios en el mismo instante conservan su orden
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OccurredAt.Before(out[j].OccurredAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
