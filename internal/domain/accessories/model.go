package accessories

import "time"

const defaultDeliveryTime = "3-5 business days"

type Specification struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type Dimensions struct {
	Length float64 `json:"length,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Unit   string  `json:"unit"`
}

type ShippingInfo struct {
	FreeShipping bool   `json:"freeShipping"`
	DeliveryTime string `json:"deliveryTime"`
}

// Product es un accesorio publicado por un vendor.
type Product struct {
	ID       string `json:"id"`
	VendorID string `json:"vendor"`

	Name           string          `json:"name" validate:"min=3,max=100"`
	Category       string          `json:"category" validate:"oneof=Food Toys Grooming Accessories Healthcare Bedding Clothing"`
	PetType        string          `json:"petType" validate:"oneof=Dog Cat Bird 'All Pets'"`
	Description    string          `json:"description" validate:"min=20,max=1000"`
	Price          float64         `json:"price" validate:"min=0"`
	DiscountPrice  *float64        `json:"discountPrice,omitempty" validate:"omitnil,min=0"`
	Stock          int             `json:"stock" validate:"min=0"`
	Brand          string          `json:"brand"`
	Specifications []Specification `json:"specifications"`
	Images         []string        `json:"images"`
	Weight         string          `json:"weight,omitempty"`
	Dimensions     Dimensions      `json:"dimensions"`
	Tags           []string        `json:"tags"`
	Shipping       ShippingInfo    `json:"shippingInfo"`

	Rating      float64 `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount int     `json:"reviewCount"`
	IsActive    bool    `json:"isActive"`
	IsFeatured  bool    `json:"isFeatured"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
