package domain

import "time"

// Recipient represents a patient waiting for a blood donation.
type Recipient struct {
	ID               int64
	UserID           string
	HospitalID       *int64
	Name             string
	Phone            string
	BloodGroup       BloodGroup
	Urgency          UrgencyLevel
	Status           RecipientStatus
	Latitude         float64
	Longitude        float64
	RegistrationDate time.Time
}
