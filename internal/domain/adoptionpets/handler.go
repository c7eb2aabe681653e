package adoptionpets

import (
	"net/http"

	"pawfam-api/internal/middleware"
	"pawfam-api/internal/platform/httpx"
	"pawfam-api/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta el catálogo sobre /vendor/adoption.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/pets", listActiveHandler(svc))
	r.Get("/pets/{petID}", getListingHandler(svc))

	r.Group(func(vr chi.Router) {
		vr.Use(middleware.RequireRole(auth.RoleVendor))
		vr.Get("/my-pets", listMineHandler(svc))
		vr.Post("/pets", createListingHandler(svc))
		vr.Put("/pets/{petID}", updateListingHandler(svc))
		vr.Delete("/pets/{petID}", deleteListingHandler(svc))
	})
}

type healthRequest struct {
	Vaccinated       *bool  `json:"vaccinated"`
	Neutered         *bool  `json:"neutered"`
	HealthConditions string `json:"healthConditions"`
}

type goodWithRequest struct {
	Kids *bool `json:"kids"`
	Dogs *bool `json:"dogs"`
	Cats *bool `json:"cats"`
}

type listingRequest struct {
	Name         string           `json:"name"`
	Type         string           `json:"type"`
	Breed        string           `json:"breed"`
	Age          string           `json:"age"`
	Gender       string           `json:"gender"`
	Size         string           `json:"size"`
	Color        string           `json:"color"`
	Description  string           `json:"description"`
	Temperament  []string         `json:"temperament"`
	HealthStatus *healthRequest   `json:"healthStatus"`
	Shelter      *Shelter         `json:"shelter"`
	AdoptionFee  *float64         `json:"adoptionFee"`
	SpecialNeeds *string          `json:"specialNeeds"`
	GoodWith     *goodWithRequest `json:"goodWith"`
	Images       []string         `json:"images"`
	Status       string           `json:"status"`
	IsActive     *bool            `json:"isActive"`
}

func (req listingRequest) input() Input {
	in := Input{
		Name:         req.Name,
		Type:         req.Type,
		Breed:        req.Breed,
		Age:          req.Age,
		Gender:       req.Gender,
		Size:         req.Size,
		Color:        req.Color,
		Description:  req.Description,
		Temperament:  req.Temperament,
		Shelter:      req.Shelter,
		AdoptionFee:  req.AdoptionFee,
		SpecialNeeds: req.SpecialNeeds,
		Images:       req.Images,
		Status:       req.Status,
		IsActive:     req.IsActive,
	}
	if h := req.HealthStatus; h != nil {
		in.Health = &HealthInput{Vaccinated: h.Vaccinated, Neutered: h.Neutered, HealthConditions: h.HealthConditions}
	}
	if g := req.GoodWith; g != nil {
		in.GoodWith = &GoodWithInput{Kids: g.Kids, Dogs: g.Dogs, Cats: g.Cats}
	}
	return in
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

func getListingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, err := svc.Get(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, l)
	}
}

func createListingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req listingRequest
		if err := httpx.DecodeJSON(w, r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		l, err := svc.Create(r.Context(), vendorID(r), req.input())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, map[string]any{"message": "Adoption pet created successfully", "pet": l})
	}
}

func updateListingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req listingRequest
		if err := httpx.DecodeJSON(w, r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		l, err := svc.Update(r.Context(), vendorID(r), chi.URLParam(r, "petID"), req.input())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"message": "Adoption pet updated successfully", "pet": l})
	}
}

func deleteListingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, err := svc.Delete(r.Context(), vendorID(r), chi.URLParam(r, "petID"))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"message":    "Adoption pet deleted successfully",
			"deletedPet": map[string]string{"id": l.ID, "name": l.Name},
		})
	}
}
