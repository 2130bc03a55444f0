package handlers

import (
	"time"

	"bloodlink/internal/domain"
)

type donorDTO struct {
	ID                 int64                     `json:"id"`
	UserID             string                    `json:"user_id,omitempty"`
	HospitalID         *int64                    `json:"hospital_id,omitempty"`
	Name               string                    `json:"name"`
	Phone              string                    `json:"phone"`
	BloodGroup         domain.BloodGroup         `json:"blood_group"`
	Latitude           float64                   `json:"latitude"`
	Longitude          float64                   `json:"longitude"`
	IsActive           bool                      `json:"is_active"`
	VerificationStatus domain.VerificationStatus `json:"verification_status"`
	LastUpdated        time.Time                 `json:"last_updated"`
}

type registerDonorRequest struct {
	UserID     string            `json:"user_id"`
	HospitalID *int64            `json:"hospital_id,omitempty"`
	Name       string            `json:"name"`
	Phone      string            `json:"phone"`
	BloodGroup domain.BloodGroup `json:"blood_group"`
	Latitude   float64           `json:"latitude"`
	Longitude  float64           `json:"longitude"`
}

type updateDonorRequest struct {
	ID                 int64                      `json:"id"`
	Name               *string                    `json:"name,omitempty"`
	Phone              *string                    `json:"phone,omitempty"`
	BloodGroup         *domain.BloodGroup         `json:"blood_group,omitempty"`
	Latitude           *float64                   `json:"latitude,omitempty"`
	Longitude          *float64                   `json:"longitude,omitempty"`
	IsActive           *bool                      `json:"is_active,omitempty"`
	VerificationStatus *domain.VerificationStatus `json:"verification_status,omitempty"`
}

type recipientDTO struct {
	ID               int64                  `json:"id"`
	UserID           string                 `json:"user_id,omitempty"`
	HospitalID       *int64                 `json:"hospital_id,omitempty"`
	Name             string                 `json:"name"`
	Phone            string                 `json:"phone"`
	BloodGroup       domain.BloodGroup      `json:"blood_group"`
	Urgency          domain.UrgencyLevel    `json:"urgency"`
	Status           domain.RecipientStatus `json:"status"`
	Latitude         float64                `json:"latitude"`
	Longitude        float64                `json:"longitude"`
	RegistrationDate time.Time              `json:"registration_date"`
}

type registerRecipientRequest struct {
	UserID     string              `json:"user_id"`
	HospitalID *int64              `json:"hospital_id,omitempty"`
	Name       string              `json:"name"`
	Phone      string              `json:"phone"`
	BloodGroup domain.BloodGroup   `json:"blood_group"`
	Urgency    domain.UrgencyLevel `json:"urgency"`
	Latitude   float64             `json:"latitude"`
	Longitude  float64             `json:"longitude"`
}

type updateRecipientStatusRequest struct {
	Status domain.RecipientStatus `json:"status"`
}

type matchDTO struct {
	ID            string             `json:"id"`
	DonorID       int64              `json:"donor_id"`
	RecipientID   int64              `json:"recipient_id"`
	Score         int                `json:"match_score"`
	DistanceKm    float64            `json:"distance_km"`
	Compatibility string             `json:"compatibility"`
	Reason        string             `json:"reason"`
	Status        domain.MatchStatus `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
}

type sendAlertRequest struct {
	Message      string              `json:"message"`
	Urgency      domain.UrgencyLevel `json:"urgency"`
	TargetGroups []domain.BloodGroup `json:"target_blood_groups"`
}

type alertDTO struct {
	ID           string              `json:"id"`
	Message      string              `json:"message"`
	Urgency      domain.UrgencyLevel `json:"urgency"`
	TargetGroups []domain.BloodGroup `json:"target_blood_groups"`
	IsActive     bool                `json:"is_active"`
	CreatedAt    time.Time           `json:"created_at"`
}

type sendAlertResponse struct {
	Alert     alertDTO `json:"alert"`
	Eligible  int      `json:"eligible"`
	Delivered int      `json:"delivered"`
	Failed    int      `json:"failed"`
}

type hospitalDTO struct {
	ID                 int64                     `json:"id"`
	Name               string                    `json:"name"`
	Address            string                    `json:"address"`
	Phone              string                    `json:"phone"`
	Email              string                    `json:"email"`
	Latitude           float64                   `json:"latitude"`
	Longitude          float64                   `json:"longitude"`
	VerificationStatus domain.VerificationStatus `json:"verification_status"`
	CreatedAt          time.Time                 `json:"created_at"`
}
