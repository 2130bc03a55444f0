package domain

import "time"

// Match - struct representing a proposed donor for a recipient. Matches are
// derived on every search; the service returns them but does not store them.
type Match struct {
	ID            string
	DonorID       int64
	RecipientID   int64
	Score         int
	DistanceKm    float64
	Compatibility string
	Reason        string
	Status        MatchStatus
	CreatedAt     time.Time
}
