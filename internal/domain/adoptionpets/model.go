package adoptionpets

import "time"

type ListingStatus string

const (
	StatusAvailable ListingStatus = "Available"
	StatusPending   ListingStatus = "Pending"
	StatusAdopted   ListingStatus = "Adopted"
)

type HealthStatus struct {
	Vaccinated       bool   `json:"vaccinated"`
	Neutered         bool   `json:"neutered"`
	HealthConditions string `json:"healthConditions"`
}

type Shelter struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Address  string `json:"address"`
	Phone    string `json:"phone" validate:"inphone" msg:"Phone number must be 10 digits"`
	Email    string `json:"email" validate:"emailaddr" msg:"Please provide a valid shelter email"`
}

type GoodWith struct {
	Kids bool `json:"kids"`
	Dogs bool `json:"dogs"`
	Cats bool `json:"cats"`
}

// Listing es una mascota en adopción publicada por un vendor (refugio).
type Listing struct {
	ID       string `json:"id"`
	VendorID string `json:"vendor"`

	Name         string        `json:"name" validate:"min=2,max=50"`
	Type         string        `json:"type" validate:"oneof=Dog Cat Bird Rabbit Other"`
	Breed        string        `json:"breed"`
	Age          string        `json:"age"`
	Gender       string        `json:"gender" validate:"oneof=Male Female"`
	Size         string        `json:"size" validate:"oneof=Small Medium Large"`
	Color        string        `json:"color"`
	Description  string        `json:"description" validate:"min=20,max=1000"`
	Temperament  []string      `json:"temperament"`
	Health       HealthStatus  `json:"healthStatus"`
	Shelter      Shelter       `json:"shelter"`
	AdoptionFee  float64       `json:"adoptionFee" validate:"min=0"`
	Images       []string      `json:"images"`
	Status       ListingStatus `json:"status" validate:"oneof=Available Pending Adopted"`
	SpecialNeeds string        `json:"specialNeeds"`
	GoodWith     GoodWith      `json:"goodWith"`
	IsActive     bool          `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Snapshot son los datos que una solicitud de adopción copia al enviarse.
type Snapshot struct {
	PetID    string
	VendorID string
	Name     string
	Type     string
	Breed    string
	Age      string
	Shelter  string
	Location string
}

func (l Listing) Snapshot() Snapshot {
	return Snapshot{
		PetID:    l.ID,
		VendorID: l.VendorID,
		Name:     l.Name,
		Type:     l.Type,
		Breed:    l.Breed,
		Age:      l.Age,
		Shelter:  l.Shelter.Name,
		Location: l.Shelter.Location,
	}
}
