package history

import (
	"context"
	"strings"
	"time"

	"pawfam-api/internal/domain/lifecycle"
	"pawfam-api/internal/platform/apperr"
	"pawfam-api/internal/platform/logger"
	"pawfam-api/internal/platform/metrics"

	"github.com/google/uuid"
)

const (
	defaultLimit = 100
	maxLimit     = 500
)

type Service struct {
	repo Repository
	pub  Publisher
	now  func() time.Time
}

func NewService(repo Repository, pub Publisher) *Service {
	return &Service{
		repo: repo,
		pub:  pub,
		now:  time.Now,
	}
}

type RecordInput struct {
	Kind       lifecycle.Kind
	EntityID   string
	Type       EventType
	FromStatus string
	ToStatus   string
	Actor      Actor
}

func (s *Service) Record(ctx context.Context, in RecordInput) (Entry, error) {
	if in.Kind == "" || strings.TrimSpace(in.EntityID) == "" || in.Type == "" {
		return Entry{}, apperr.Invalid("history: kind, entity and type are required")
	}
	if strings.TrimSpace(in.Actor.ID) == "" {
		in.Actor = Actor{Type: ActorSystem, ID: "system"}
	}

	e := Entry{
		ID:         uuid.NewString(),
		EntityKind: in.Kind,
		EntityID:   in.EntityID,
		Type:       in.Type,
		FromStatus: in.FromStatus,
		ToStatus:   in.ToStatus,
		Actor:      in.Actor,
		OccurredAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return Entry{}, err
	}

	if e.FromStatus != e.ToStatus {
		metrics.ObserveTransition(string(e.EntityKind), e.ToStatus)
	}

	if s.pub != nil {
		if err := s.pub.Publish(ctx, e); err != nil {
			// la entrada ya quedó guardada; el evento se pierde
			logger.FromContext(ctx).Warn("history publish failed", map[string]any{
				"entry_id":  e.ID,
				"entity_id": e.EntityID,
				"error":     err.Error(),
			})
		}
	}
	return e, nil
}

// Track es Record sin error: el historial nunca hace fallar la operación principal.
func (s *Service) Track(ctx context.Context, in RecordInput) {
	if s == nil {
		return
	}
	if _, err := s.Record(ctx, in); err != nil {
		logger.FromContext(ctx).Error("history record failed", map[string]any{
			"kind":      string(in.Kind),
			"entity_id": in.EntityID,
			"type":      string(in.Type),
			"error":     err.Error(),
		})
	}
}

func (s *Service) ListByEntity(ctx context.Context, kind lifecycle.Kind, entityID string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return s.repo.ListByEntity(ctx, kind, entityID, limit)
}
