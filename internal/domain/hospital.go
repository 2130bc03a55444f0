package domain

import "time"

// Hospital - reference record for a hospital that donors and recipients
// may be linked to.
type Hospital struct {
	ID                 int64
	Name               string
	Address            string
	Phone              string
	Email              string
	Latitude           float64
	Longitude          float64
	VerificationStatus VerificationStatus
	CreatedAt          time.Time
}
