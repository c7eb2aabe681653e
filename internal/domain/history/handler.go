package history

import (
	"net/http"
	"strconv"
	"time"

	"pawfam-api/internal/domain/lifecycle"
	"pawfam-api/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

type entryResponse struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	FromStatus string    `json:"fromStatus,omitempty"`
	ToStatus   string    `json:"toStatus"`
	ActorType  ActorType `json:"actorType"`
	ActorID    string    `json:"actorId"`
	OccurredAt time.Time `json:"occurredAt"`
}

// OwnerCheck lo provee el módulo dueño de la entidad; debe devolver NotFound si
// el principal no puede verla.
type OwnerCheck func(r *http.Request, entityID string) error

// ListHandler sirve GET .../{id}/history. idParam es el nombre del parámetro chi.
func ListHandler(svc *Service, kind lifecycle.Kind, idParam string, check OwnerCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entityID := chi.URLParam(r, idParam)
		if err := check(r, entityID); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		out := make([]entryResponse, 0)
		if svc == nil {
			httpx.WriteJSON(w, http.StatusOK, out)
			return
		}

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		entries, err := svc.ListByEntity(r.Context(), kind, entityID, limit)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		for _, e := range entries {
			out = append(out, entryResponse{
				ID:         e.ID,
				Type:       e.Type,
				FromStatus: e.FromStatus,
				ToStatus:   e.ToStatus,
				ActorType:  e.Actor.Type,
				ActorID:    e.Actor.ID,
				OccurredAt: e.OccurredAt,
			})
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}
