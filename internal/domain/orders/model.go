package orders

import (
	"time"

	"pawfam-api/internal/domain/lifecycle"
)

// Item es una línea del pedido tal como se vendió; VendorID se resuelve al crear.
type Item struct {
	ProductID string  `json:"productId,omitempty"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image,omitempty"`
	VendorID  string  `json:"vendor,omitempty"`
}

type ShippingAddress struct {
	FullName string `json:"fullName"`
	Email    string `json:"email,omitempty"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
	Phone    string `json:"phone,omitempty"`
}

// PaymentInfo se guarda siempre enmascarado.
type PaymentInfo struct {
	CardNumber string `json:"cardNumber"`
	ExpiryDate string `json:"expiryDate,omitempty"`
	CVV        string `json:"cvv"`
}

type Order struct {
	ID     string `json:"id"`
	UserID string `json:"user"`

	Items           []Item          `json:"items"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentInfo     PaymentInfo     `json:"paymentInfo"`
	TotalAmount     float64         `json:"totalAmount"`

	Status    lifecycle.OrderStatus `json:"status"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
}

func (o Order) productIDs() []string {
	ids := make([]string, len(o.Items))
	for i, it := range o.Items {
		ids[i] = it.ProductID
	}
	return ids
}
