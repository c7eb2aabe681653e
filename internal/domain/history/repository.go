package history

import (
	"context"

	"pawfam-api/internal/domain/lifecycle"
)

type Repository interface {
	Create(ctx context.Context, e Entry) error
	// ListByEntity devuelve las entradas en orden cronológico.
	ListByEntity(ctx context.Context, kind lifecycle.Kind, entityID string, limit int) ([]Entry, error)
}

// Publisher emite cada entrada hacia afuera (Kafka). nil = no se publica.
type Publisher interface {
	Publish(ctx context.Context, e Entry) error
}
