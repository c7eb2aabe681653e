package daycarecenters

import (
	"net/http"

	"pawfam-api/internal/middleware"
	"pawfam-api/internal/platform/httpx"
	"pawfam-api/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta las rutas del catálogo sobre /vendor/daycare.
// La lista de reservas del vendor la registra el módulo daycare en el mismo subrouter.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/centers", listActiveHandler(svc))
	r.Get("/centers/{centerID}", getCenterHandler(svc))

	r.Group(func(vr chi.Router) {
		vr.Use(middleware.RequireRole(auth.RoleVendor))
		vr.Get("/my-centers", listMineHandler(svc))
		vr.Post("/centers", createCenterHandler(svc))
		vr.Put("/centers/{centerID}", updateCenterHandler(svc))
		vr.Delete("/centers/{centerID}", deleteCenterHandler(svc))
	})
}

type centerRequest struct {
	Name           string          `json:"name"`
	Location       string          `json:"location"`
	Address        string          `json:"address"`
	City           string          `json:"city"`
	State          string          `json:"state"`
	ZipCode        string          `json:"zipCode"`
	Phone          string          `json:"phone"`
	Email          string          `json:"email"`
	PricePerDay    *float64        `json:"pricePerDay"`
	Services       []string        `json:"services"`
	PetTypes       []string        `json:"petTypes"`
	Facilities     []string        `json:"facilities"`
	Capacity       *int            `json:"capacity"`
	Description    string          `json:"description"`
	OperatingHours *OperatingHours `json:"operatingHours"`
	Images         []string        `json:"images"`
	IsActive       *bool           `json:"isActive"`
}

func (req centerRequest) input() Input {
	return Input(req)
}

func vendorID(r *http.Request) string {
	c, _ := middleware.GetClaims(r.Context())
	return c.UserID
}

func listActiveHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListActive(r.Context())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, items)
	}
}

func listMineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByVendor(r.Context(), vendorID(r))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, items)
	}
}

func getCenterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.Get(r.Context(), chi.URLParam(r, "centerID"))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, c)
	}
}

// createCenterHandler godoc
// @Summary      Crear centro de daycare
// @Tags         vendor-daycare
// @Accept       json
// @Produce      json
// @Param        body  body      centerRequest  true  "Centro"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /vendor/daycare/centers [post]
func createCenterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req centerRequest
		if err := httpx.DecodeJSON(w, r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		c, err := svc.Create(r.Context(), vendorID(r), req.input())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, map[string]any{"message": "Daycare center created successfully", "center": c})
	}
}

func updateCenterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req centerRequest
		if err := httpx.DecodeJSON(w, r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		c, err := svc.Update(r.Context(), vendorID(r), chi.URLParam(r, "centerID"), req.input())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"message": "Daycare center updated successfully", "center": c})
	}
}

func deleteCenterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.Delete(r.Context(), vendorID(r), chi.URLParam(r, "centerID"))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"message":       "Daycare center deleted successfully",
			"deletedCenter": map[string]string{"id": c.ID, "name": c.Name},
		})
	}
}
