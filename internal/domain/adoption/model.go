package adoption

import (
	"time"

	"pawfam-api/internal/domain/lifecycle"
)

const unknown = "Unknown"

// PetSnapshot se captura al enviar la solicitud; editar la publicación después no la cambia.
type PetSnapshot struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Breed   string `json:"breed"`
	Age     string `json:"age"`
	Shelter string `json:"shelter"`
}

type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type Experience struct {
	Level            string `json:"level"`
	Details          string `json:"details"`
	OtherPets        string `json:"otherPets"`
	OtherPetsDetails string `json:"otherPetsDetails"`
}

type VisitSchedule struct {
	Date time.Time `json:"date"`
	Time string    `json:"time"`
}

type Application struct {
	ID     string `json:"id"`
	UserID string `json:"user"`
	// VendorID queda vacío si la mascota no estaba en el catálogo al enviarse.
	VendorID string `json:"vendor,omitempty"`

	Pet            PetSnapshot   `json:"pet"`
	PersonalInfo   PersonalInfo  `json:"personalInfo"`
	Experience     Experience    `json:"experience"`
	VisitSchedule  VisitSchedule `json:"visitSchedule"`
	AdoptionReason string        `json:"adoptionReason"`

	Status    lifecycle.ApplicationStatus `json:"status"`
	CreatedAt time.Time                   `json:"createdAt"`
	UpdatedAt time.Time                   `json:"updatedAt"`
}
