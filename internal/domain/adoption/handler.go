package adoption

import (
	"net/http"

	"pawfam-api/internal/domain/history"
	"pawfam-api/internal/domain/lifecycle"
	"pawfam-api/internal/middleware"
	"pawfam-api/internal/platform/httpx"
	"pawfam-api/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/adoption/applications", func(ar chi.Router) {
		ar.Use(middleware.RequireUser)

		ar.Post("/", createApplicationHandler(svc))
		ar.Get("/", listApplicationsHandler(svc))
		ar.Get("/{applicationID}", getApplicationHandler(svc))
		ar.Put("/{applicationID}", updateApplicationHandler(svc))
		ar.Delete("/{applicationID}", deleteApplicationHandler(svc))
		ar.Patch("/{applicationID}/revoke", revokeApplicationHandler(svc))
		ar.Patch("/{applicationID}/status", setApplicationStatusHandler(svc))
		ar.Get("/{applicationID}/history", history.ListHandler(svc.history, lifecycle.KindApplication, "applicationID",
			func(r *http.Request, id string) error {
				_, err := svc.GetOwned(r.Context(), userID(r), id)
				return err
			}))
	})
}

// RegisterVendorRoutes cuelga GET /applications del subrouter /vendor/adoption.
func RegisterVendorRoutes(r chi.Router, svc *Service) {
	r.With(middleware.RequireRole(auth.RoleVendor)).Get("/applications", vendorApplicationsHandler(svc))
}

type visitRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type experienceRequest struct {
	Level            string  `json:"level"`
	Details          *string `json:"details"`
	OtherPets        string  `json:"otherPets"`
	OtherPetsDetails *string `json:"otherPetsDetails"`
}

type applicationRequest struct {
	Pet            *PetSnapshot       `json:"pet"`
	PersonalInfo   *PersonalInfo      `json:"personalInfo"`
	Experience     *experienceRequest `json:"experience"`
	VisitSchedule  *visitRequest      `json:"visitSchedule"`
	AdoptionReason *string            `json:"adoptionReason"`
}

type statusRequest struct {
	Status string `json:"status"`
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func (req applicationRequest) createInput() CreateInput {
	in := CreateInput{
		Pet:            req.Pet,
		PersonalInfo:   req.PersonalInfo,
		AdoptionReason: deref(req.AdoptionReason),
	}
	if ex := req.Experience; ex != nil {
		in.Experience = &Experience{
			Level:            ex.Level,
			Details:          deref(ex.Details),
			OtherPets:        ex.OtherPets,
			OtherPetsDetails: deref(ex.OtherPetsDetails),
		}
	}
	if vs := req.VisitSchedule; vs != nil {
		in.VisitSchedule = &VisitInput{Date: vs.Date, Time: vs.Time}
	}
	return in
}

func (req applicationRequest) updateInput() UpdateInput {
	in := UpdateInput{
		PersonalInfo:   req.PersonalInfo,
		AdoptionReason: req.AdoptionReason,
	}
	if ex := req.Experience; ex != nil {
		in.Experience = &ExperienceUpdate{
			Level:            ex.Level,
			Details:          ex.Details,
			OtherPets:        ex.OtherPets,
			OtherPetsDetails: ex.OtherPetsDetails,
		}
	}
	if vs := req.VisitSchedule; vs != nil {
		in.VisitSchedule = &VisitInput{Date: vs.Date, Time: vs.Time}
	}
	return in
}

func userID(r *http.Request) string {
	c, _ := middleware.GetClaims(r.Context())
	return c.UserID
}

// createApplicationHandler godoc
// @Summary      Enviar solicitud de adopción
// @Description  Copia los datos de la mascota del catálogo al momento del envío.
// @Tags         adoption
// @Accept       json
// @Produce      json
// @Param        body  body      applicationRequest  true  "Solicitud"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  map[string]string
// @Router       /adoption/applications [post]
func createApplicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req applicationRequest
		if err := httpx.DecodeJSON(w, r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		a, err := svc.Create(r.Context(), userID(r), req.createInput())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, map[string]any{"message": "Adoption application submitted successfully", "application": a})
	}
}

func listApplicationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListMine(r.Context(), userID(r))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"applications": items, "count": len(items)})
	}
}

func getApplicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetOwned(r.Context(), userID(r), chi.URLParam(r, "applicationID"))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"application": a})
	}
}

func updateApplicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req applicationRequest
		if err := httpx.DecodeJSON(w, r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		a, err := svc.Update(r.Context(), userID(r), chi.URLParam(r, "applicationID"), req.updateInput())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"message": "Application updated successfully", "application": a})
	}
}

// revokeApplicationHandler godoc
// @Summary      Revocar solicitud
// @Description  Pasa la solicitud a rejected. No se puede revocar una solicitud approved o rejected.
// @Tags         adoption
// @Produce      json
// @Param        applicationID  path      string  true  "Application ID"
// @Success      200            {object}  map[string]any
// @Failure      400            {object}  map[string]string
// @Failure      404            {object}  map[string]string
// @Router       /adoption/applications/{applicationID}/revoke [patch]
func revokeApplicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.Revoke(r.Context(), userID(r), chi.URLParam(r, "applicationID"))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"message": "Application revoked successfully", "application": a})
	}
}

func setApplicationStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req statusRequest
		if err := httpx.DecodeJSON(w, r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		claims, _ := middleware.GetClaims(r.Context())

		a, err := svc.SetStatus(r.Context(), claims, chi.URLParam(r, "applicationID"), req.Status)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"message": "Application status updated", "application": a})
	}
}

func deleteApplicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), userID(r), chi.URLParam(r, "applicationID")); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteMessage(w, http.StatusOK, "Application deleted successfully")
	}
}

func vendorApplicationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListForVendor(r.Context(), userID(r))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, items)
	}
}
