package daycarecenters

import "time"

type OperatingHours struct {
	OpenTime  string `json:"openTime" validate:"required" msg:"operatingHours requires openTime and closeTime"`
	CloseTime string `json:"closeTime" validate:"required" msg:"operatingHours requires openTime and closeTime"`
}

// Center es un centro de daycare publicado por un vendor.
type Center struct {
	ID       string `json:"id"`
	VendorID string `json:"vendor"`

	Name     string `json:"name" validate:"min=3,max=100"`
	Location string `json:"location"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode" validate:"zip6" msg:"ZIP Code must be exactly 6 digits"`
	Phone    string `json:"phone" validate:"inphone" msg:"Phone number must be 10 digits"`
	Email    string `json:"email" validate:"emailaddr" msg:"Please provide a valid email"`

	PricePerDay    float64        `json:"pricePerDay" validate:"min=0"`
	Services       []string       `json:"services" validate:"dive,oneof='Day Care' 'Overnight Stay' Grooming Training 'Vet Services' 'Pet Taxi'"`
	PetTypes       []string       `json:"petTypes" validate:"dive,oneof=Dog Cat Bird Other"`
	Facilities     []string       `json:"facilities"`
	Capacity       int            `json:"capacity" validate:"min=1"`
	Description    string         `json:"description" validate:"min=20,max=1000"`
	OperatingHours OperatingHours `json:"operatingHours"`
	Images         []string       `json:"images"`

	Rating      float64 `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount int     `json:"reviewCount"`
	IsActive    bool    `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Snapshot son los campos que una reserva copia del centro al crearse.
type Snapshot struct {
	CenterID    string
	VendorID    string
	Name        string
	Location    string
	PricePerDay float64
}

func (c Center) Snapshot() Snapshot {
	return Snapshot{
		CenterID:    c.ID,
		VendorID:    c.VendorID,
		Name:        c.Name,
		Location:    c.Location,
		PricePerDay: c.PricePerDay,
	}
}
