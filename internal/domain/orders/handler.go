package orders

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
	r.Route("/products/orders", func(or chi.Router) {
		or.Use(middleware.RequireUser)

		or.Post("/", createOrderHandler(svc))
		or.Get("/", listOrdersHandler(svc))
		or.Get("/{orderID}", getOrderHandler(svc))
		or.Delete("/{orderID}", deleteOrderHandler(svc))
		or.Put("/{orderID}/address", updateAddressHandler(svc))
		or.Patch("/{orderID}/cancel", cancelOrderHandler(svc))
		or.Patch("/{orderID}/status", setOrderStatusHandler(svc))
		or.Get("/{orderID}/history", history.ListHandler(svc.history, lifecycle.KindOrder, "orderID",
			func(r *http.Request, id string) error {
				_, err := svc.GetOwned(r.Context(), userID(r), id)
				return err
			}))
	})
}

// RegisterVendorRoutes cuelga GET /orders del subrouter /vendor/accessories.
func RegisterVendorRoutes(r chi.Router, svc *Service) {
	r.With(middleware.RequireRole(auth.RoleVendor)).Get("/orders", vendorOrdersHandler(svc))
}

type paymentRequest struct {
	CardNumber string `json:"cardNumber"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
}

type orderRequest struct {
	Items           []Item           `json:"items"`
	ShippingAddress *ShippingAddress `json:"shippingAddress"`
	PaymentInfo     *paymentRequest  `json:"paymentInfo"`
	TotalAmount     float64          `json:"totalAmount"`
}

type addressRequest struct {
	ShippingAddress *ShippingAddress `json:"shippingAddress"`
}

type statusRequest struct {
	Status string `json:"status"`
}

func userID(r *http.Request) string {
	c, _ := middleware.GetClaims(r.Context())
	return c.UserID
}

// createOrderHandler godoc
// @Summary      Crear pedido
// @Description  Resuelve el vendor de cada línea por productId y enmascara tarjeta y CVV.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      orderRequest  true  "Pedido"
// @Success      201   {object}  map[string]any
// @Failure      400   {object}  map[string]string
// @Router       /products/orders [post]
func createOrderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req orderRequest
		if err := httpx.DecodeJSON(w, r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		in := CreateInput{
			Items:           req.Items,
			ShippingAddress: req.ShippingAddress,
			TotalAmount:     req.TotalAmount,
		}
		if p := req.PaymentInfo; p != nil {
			in.PaymentInfo = &PaymentInput{CardNumber: p.CardNumber, ExpiryDate: p.ExpiryDate, CVV: p.CVV}
		}

		o, err := svc.Create(r.Context(), userID(r), in)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, map[string]any{"message": "Order placed successfully", "order": o})
	}
}

func listOrdersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListMine(r.Context(), userID(r))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, items)
	}
}

func getOrderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, err := svc.GetOwned(r.Context(), userID(r), chi.URLParam(r, "orderID"))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"order": o})
	}
}

// updateAddressHandler godoc
// @Summary      Cambiar dirección de envío
// @Description  Rechazado si el pedido está shipped, delivered o cancelled.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        orderID  path      string          true  "Order ID"
// @Param        body     body      addressRequest  true  "Dirección"
// @Success      200      {object}  map[string]any
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /products/orders/{orderID}/address [put]
func updateAddressHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addressRequest
		if err := httpx.DecodeJSON(w, r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		if req.ShippingAddress == nil {
			httpx.WriteMessage(w, http.StatusBadRequest, errAddressRequired)
			return
		}

		o, err := svc.UpdateAddress(r.Context(), userID(r), chi.URLParam(r, "orderID"), *req.ShippingAddress)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"message": "Shipping address updated successfully", "order": o})
	}
}

func cancelOrderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, err := svc.Cancel(r.Context(), userID(r), chi.URLParam(r, "orderID"))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"message": "Order cancelled successfully", "order": o})
	}
}

func setOrderStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req statusRequest
		if err := httpx.DecodeJSON(w, r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		claims, _ := middleware.GetClaims(r.Context())

		o, err := svc.SetStatus(r.Context(), claims, chi.URLParam(r, "orderID"), req.Status)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"message": "Order status updated", "order": o})
	}
}

func deleteOrderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, err := svc.Delete(r.Context(), userID(r), chi.URLParam(r, "orderID"))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"message":      "Order deleted successfully",
			"deletedOrder": map[string]any{"id": o.ID, "totalAmount": o.TotalAmount},
		})
	}
}

func vendorOrdersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListForVendor(r.Context(), userID(r))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, items)
	}
}
