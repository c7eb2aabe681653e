package profiles

import (
	"net/http"

	"pawfam-api/internal/middleware"
	"pawfam-api/internal/platform/httpx"
	"pawfam-api/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/profile", func(pr chi.Router) {
		pr.Use(middleware.RequireUser)
		pr.Get("/", getProfileHandler(svc))
		pr.Post("/", createProfileHandler(svc))
		pr.Put("/", updateProfileHandler(svc))
		pr.Delete("/", deleteProfileHandler(svc))
	})

	r.Route("/vendor-profile", func(vr chi.Router) {
		vr.Use(middleware.RequireRole(auth.RoleVendor))
		vr.Get("/", getVendorProfileHandler(svc))
		vr.Post("/", createVendorProfileHandler(svc))
		vr.Put("/", updateVendorProfileHandler(svc))
		vr.Delete("/", deleteVendorProfileHandler(svc))
	})
}

type profileRequest struct {
	Name                 string `json:"name"`
	Gender               string `json:"gender"`
	MobileNumber         string `json:"mobileNumber"`
	ResidentialAddress   string `json:"residentialAddress"`
	CommunicationAddress string `json:"communicationAddress"`
}

func (p profileRequest) userInput() ProfileInput {
	return ProfileInput{Name: p.Name, Gender: p.Gender, MobileNumber: p.MobileNumber, Address: p.ResidentialAddress}
}

func (p profileRequest) vendorInput() ProfileInput {
	return ProfileInput{Name: p.Name, Gender: p.Gender, MobileNumber: p.MobileNumber, Address: p.CommunicationAddress}
}

func userID(r *http.Request) string {
	c, _ := middleware.GetClaims(r.Context())
	return c.UserID
}

func getProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetProfile(r.Context(), userID(r))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"profile": p})
	}
}

func createProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req profileRequest
		if err := httpx.DecodeJSON(w, r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		p, err := svc.CreateProfile(r.Context(), userID(r), req.userInput())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, map[string]any{"message": "Profile created successfully", "profile": p})
	}
}

func updateProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req profileRequest
		if err := httpx.DecodeJSON(w, r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		p, err := svc.UpdateProfile(r.Context(), userID(r), req.userInput())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"message": "Profile updated successfully", "profile": p})
	}
}

func deleteProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteProfile(r.Context(), userID(r)); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteMessage(w, http.StatusOK, "Profile deleted successfully")
	}
}

func getVendorProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetVendorProfile(r.Context(), userID(r))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"profile": p})
	}
}

func createVendorProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req profileRequest
		if err := httpx.DecodeJSON(w, r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		p, err := svc.CreateVendorProfile(r.Context(), userID(r), req.vendorInput())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, map[string]any{"message": "Vendor profile created successfully", "profile": p})
	}
}

func updateVendorProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req profileRequest
		if err := httpx.DecodeJSON(w, r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		p, err := svc.UpdateVendorProfile(r.Context(), userID(r), req.vendorInput())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"message": "Vendor profile updated successfully", "profile": p})
	}
}

func deleteVendorProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteVendorProfile(r.Context(), userID(r)); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteMessage(w, http.StatusOK, "Vendor profile deleted successfully")
	}
}
