package accessories

import (
	"net/http"

	"pawfam-api/internal/middleware"
	"pawfam-api/internal/platform/httpx"
	"pawfam-api/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta el catálogo sobre /vendor/accessories.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/products", listActiveHandler(svc))
	r.Get("/products/{productID}", getProductHandler(svc))

	r.Group(func(vr chi.Router) {
		vr.Use(middleware.RequireRole(auth.RoleVendor))
		vr.Get("/my-products", listMineHandler(svc))
		vr.Post("/products", createProductHandler(svc))
		vr.Put("/products/{productID}", updateProductHandler(svc))
		vr.Delete("/products/{productID}", deleteProductHandler(svc))
	})
}

type shippingRequest struct {
	FreeShipping *bool  `json:"freeShipping"`
	DeliveryTime string `json:"deliveryTime"`
}

type productRequest struct {
	Name           string           `json:"name"`
	Category       string           `json:"category"`
	PetType        string           `json:"petType"`
	Description    string           `json:"description"`
	Price          *float64         `json:"price"`
	DiscountPrice  *float64         `json:"discountPrice"`
	Stock          *int             `json:"stock"`
	Brand          string           `json:"brand"`
	Specifications []Specification  `json:"specifications"`
	Images         []string         `json:"images"`
	Weight         string           `json:"weight"`
	Dimensions     *Dimensions      `json:"dimensions"`
	Tags           []string         `json:"tags"`
	ShippingInfo   *shippingRequest `json:"shippingInfo"`
	IsFeatured     *bool            `json:"isFeatured"`
	IsActive       *bool            `json:"isActive"`
}

func (req productRequest) input() Input {
	in := Input{
		Name:           req.Name,
		Category:       req.Category,
		PetType:        req.PetType,
		Description:    req.Description,
		Price:          req.Price,
		DiscountPrice:  req.DiscountPrice,
		Stock:          req.Stock,
		Brand:          req.Brand,
		Specifications: req.Specifications,
		Images:         req.Images,
		Weight:         req.Weight,
		Dimensions:     req.Dimensions,
		Tags:           req.Tags,
		IsFeatured:     req.IsFeatured,
		IsActive:       req.IsActive,
	}
	if sh := req.ShippingInfo; sh != nil {
		in.Shipping = &ShippingInput{FreeShipping: sh.FreeShipping, DeliveryTime: sh.DeliveryTime}
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

func getProductHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Get(r.Context(), chi.URLParam(r, "productID"))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, p)
	}
}

func createProductHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req productRequest
		if err := httpx.DecodeJSON(w, r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		p, err := svc.Create(r.Context(), vendorID(r), req.input())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, map[string]any{"message": "Product created successfully", "product": p})
	}
}

func updateProductHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req productRequest
		if err := httpx.DecodeJSON(w, r, &req); err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		p, err := svc.Update(r.Context(), vendorID(r), chi.URLParam(r, "productID"), req.input())
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"message": "Product updated successfully", "product": p})
	}
}

func deleteProductHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Delete(r.Context(), vendorID(r), chi.URLParam(r, "productID"))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"message":        "Product deleted successfully",
			"deletedProduct": map[string]string{"id": p.ID, "name": p.Name},
		})
	}
}
