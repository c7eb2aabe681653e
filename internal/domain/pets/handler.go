package pets

import (
	"net/http"
	"time"

	"pawfam-api/internal/middleware"
	"pawfam-api/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		// público: lo usa el formulario antes de login
		pr.Get("/breeds/{category}", listBreedsHandler())

		pr.Group(func(ar chi.Router) {
			ar.Use(middleware.RequireUser)
			ar.Get("/", listPetsHandler(svc))
			ar.Post("/", createPetHandler(svc))
			ar.Get("/{petID}", getPetHandler(svc))
			ar.Put("/{petID}", updatePetHandler(svc))
			ar.Delete("/{petID}", deletePetHandler(svc))
		})
	})
}

type petRequest struct {
	Category string `json:"category"`
	Breed    string `json:"breed"`
	Name     string `json:"name"`
	Age      *int   `json:"age"`
}

func (req petRequest) input() Input {
	return Input{Category: req.Category, Breed: req.Breed, Name: req.Name, Age: req.Age}
}

type petResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Category  Category  `json:"category"`
	Breed     string    `json:"breed"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func listBreedsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat := Category(chi.URLParam(r, "category"))
		if !cat.Valid() {
			httpx.WriteMessage(w, http.StatusBadRequest, "Invalid category. Must be Dog or Cat")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"category": cat, "breeds": Breeds(cat)})
	}
}

func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		var req petRequest
		if err := httpx.DecodeJSON(w, r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		p, err := svc.Create(r.Context(), claims.UserID, req.input())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, map[string]any{"message": "Pet added successfully", "pet": toPetResponse(p)})
	}
}

func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		items, err := svc.ListByOwner(r.Context(), claims.UserID)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"count": len(out), "pets": out})
	}
}

func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		p, err := svc.GetOwned(r.Context(), chi.URLParam(r, "petID"), claims.UserID)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"pet": toPetResponse(p)})
	}
}

func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		var req petRequest
		if err := httpx.DecodeJSON(w, r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "petID"), claims.UserID, req.input())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"message": "Pet updated successfully", "pet": toPetResponse(p)})
	}
}

func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		p, err := svc.Delete(r.Context(), chi.URLParam(r, "petID"), claims.UserID)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"message": "Pet deleted successfully", "pet": toPetResponse(p)})
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:        p.ID,
		UserID:    p.OwnerUserID,
		Category:  p.Category,
		Breed:     p.Breed,
		Name:      p.Name,
		Age:       p.Age,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
