package profiles

import "time"

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// UserProfile: uno por usuario (userId único).
type UserProfile struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"userId"`
	Name               string    `json:"name"`
	Gender             string    `json:"gender"`
	MobileNumber       string    `json:"mobileNumber"`
	ResidentialAddress string    `json:"residentialAddress"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// VendorProfile: uno por vendor; VendorID es el código público VEN000001.
type VendorProfile struct {
	ID                   string    `json:"id"`
	UserID               string    `json:"userId"`
	VendorID             string    `json:"vendorId"`
	Name                 string    `json:"name"`
	Gender               string    `json:"gender"`
	MobileNumber         string    `json:"mobileNumber"`
	CommunicationAddress string    `json:"communicationAddress"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}
