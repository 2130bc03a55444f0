package domain

import "time"

// Donor represents a registered blood donor.
type Donor struct {
	ID                 int64
	UserID             string
	HospitalID         *int64
	Name               string
	Phone              string
	BloodGroup         BloodGroup
	Latitude           float64
	Longitude          float64
	IsActive           bool
	VerificationStatus VerificationStatus
	LastUpdated        time.Time
}

// PartialDonorUpdate carries optional fields to update a donor.
// A nil field means “do not change” that attribute. Donors are never
// deleted; deactivation flips IsActive to false.
type PartialDonorUpdate struct {
	ID                 int64
	Name               *string
	Phone              *string
	BloodGroup         *BloodGroup
	Latitude           *float64
	Longitude          *float64
	IsActive           *bool
	VerificationStatus *VerificationStatus
}
