package daycare

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
	r.Route("/daycare/bookings", func(br chi.Router) {
		br.Use(middleware.RequireUser)

		br.Post("/", createBookingHandler(svc))
		br.Get("/", listBookingsHandler(svc))
		br.Get("/{bookingID}", getBookingHandler(svc))
		br.Put("/{bookingID}", updateBookingHandler(svc))
		br.Delete("/{bookingID}", deleteBookingHandler(svc))
		br.Patch("/{bookingID}/cancel", cancelBookingHandler(svc))
		br.Patch("/{bookingID}/status", setBookingStatusHandler(svc))
		br.Get("/{bookingID}/history", history.ListHandler(svc.history, lifecycle.KindBooking, "bookingID",
			func(r *http.Request, id string) error {
				_, err := svc.GetOwned(r.Context(), userID(r), id)
				return err
			}))
	})
}

// RegisterVendorRoutes cuelga GET /bookings del subrouter /vendor/daycare.
func RegisterVendorRoutes(r chi.Router, svc *Service) {
	r.With(middleware.RequireRole(auth.RoleVendor)).Get("/bookings", vendorBookingsHandler(svc))
}

type bookingRequest struct {
	DaycareCenter       *CenterSnapshot `json:"daycareCenter"`
	DaycareCenterID     string          `json:"daycareCenterId"`
	PetName             string          `json:"petName"`
	PetType             string          `json:"petType"`
	PetAge              string          `json:"petAge"`
	Email               string          `json:"email"`
	MobileNumber        string          `json:"mobileNumber"`
	StartDate           string          `json:"startDate"`
	EndDate             string          `json:"endDate"`
	SpecialInstructions *string         `json:"specialInstructions"`
	// totalAmount se ignora: se calcula en el servidor
}

type statusRequest struct {
	Status string `json:"status"`
}

func userID(r *http.Request) string {
	c, _ := middleware.GetClaims(r.Context())
	return c.UserID
}

// createBookingHandler godoc
// @Summary      Crear reserva de guardería
// @Description  El total se calcula con el precio por día del centro (snapshot).
// @Tags         daycare
// @Accept       json
// @Produce      json
// @Param        body  body      bookingRequest  true  "Reserva"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /daycare/bookings [post]
func createBookingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req bookingRequest
		if err := httpx.DecodeJSON(w, r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		in := CreateInput{
			DaycareCenterID: req.DaycareCenterID,
			Center:          req.DaycareCenter,
			PetName:         req.PetName,
			PetType:         req.PetType,
			PetAge:          req.PetAge,
			Email:           req.Email,
			MobileNumber:    req.MobileNumber,
			StartDate:       req.StartDate,
			EndDate:         req.EndDate,
		}
		if req.SpecialInstructions != nil {
			in.SpecialInstructions = *req.SpecialInstructions
		}

		b, err := svc.Create(r.Context(), userID(r), in)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, map[string]any{"message": "Daycare booking created successfully", "booking": b})
	}
}

func listBookingsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListMine(r.Context(), userID(r), r.URL.Query().Get("search"))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, items)
	}
}

func getBookingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := svc.GetOwned(r.Context(), userID(r), chi.URLParam(r, "bookingID"))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"booking": b})
	}
}

// updateBookingHandler godoc
// @Summary      Editar reserva
// @Description  Rechazada si la reserva está completed o cancelled. Si cambian las fechas se recalcula el total.
// @Tags         daycare
// @Accept       json
// @Produce      json
// @Param        bookingID  path      string          true  "Booking ID"
// @Param        body       body      bookingRequest  true  "Campos a modificar"
// @Success      200        {object}  map[string]any
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /daycare/bookings/{bookingID} [put]
func updateBookingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req bookingRequest
		if err := httpx.DecodeJSON(w, r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		b, err := svc.Update(r.Context(), userID(r), chi.URLParam(r, "bookingID"), UpdateInput{
			PetName:             req.PetName,
			PetType:             req.PetType,
			PetAge:              req.PetAge,
			Email:               req.Email,
			MobileNumber:        req.MobileNumber,
			StartDate:           req.StartDate,
			EndDate:             req.EndDate,
			SpecialInstructions: req.SpecialInstructions,
		})
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"message": "Booking updated successfully", "booking": b})
	}
}

func cancelBookingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := svc.Cancel(r.Context(), userID(r), chi.URLParam(r, "bookingID"))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"message": "Booking cancelled successfully", "booking": b})
	}
}

func setBookingStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req statusRequest
		if err := httpx.DecodeJSON(w, r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		claims, _ := middleware.GetClaims(r.Context())

		b, err := svc.SetStatus(r.Context(), claims, chi.URLParam(r, "bookingID"), req.Status)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"message": "Booking status updated", "booking": b})
	}
}

func deleteBookingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := svc.Delete(r.Context(), userID(r), chi.URLParam(r, "bookingID"))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"message":        "Booking deleted successfully",
			"deletedBooking": map[string]string{"id": b.ID, "petName": b.PetName},
		})
	}
}

// vendorBookingsHandler godoc
// @Summary      Reservas de los centros del vendor
// @Description  Une reservas con vendor, con daycareCenterId propio y reservas viejas que coinciden por nombre y ubicación del centro.
// @Tags         vendor-daycare
// @Produce      json
// @Success      200  {array}   Booking
// @Failure      403  {object}  map[string]string
// @Router       /vendor/daycare/bookings [get]
func vendorBookingsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListForVendor(r.Context(), userID(r))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, items)
	}
}
