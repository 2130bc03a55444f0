package matching

import (
	"math"
	"time"

	"bloodlink/internal/domain"
)

// Scoring is deterministic: a pure function of donor/recipient geometry and
// the donor profile age. Same inputs always produce the same score, so match
// results are reproducible.
const (
	scoreBase = 60

	proximityWeight   = 25
	proximityWindowKm = 50.0

	recencyWeight = 15
	recencyWindow = 30 * 24 * time.Hour
)

// matchScore rates a donor for a recipient in the range [scoreBase, 100].
// Closer donors and recently updated profiles rank higher.
func matchScore(d domain.Donor, r domain.Recipient, now time.Time) int {
	score := float64(scoreBase)

	dist := domain.DistanceKm(d.Latitude, d.Longitude, r.Latitude, r.Longitude)
	score += proximityWeight * window(dist, proximityWindowKm)

	age := now.Sub(d.LastUpdated)
	score += recencyWeight * window(age.Hours(), recencyWindow.Hours())

	return int(math.Round(score))
}

// window maps v in [0, limit] linearly onto [1, 0]; values past the limit
// contribute nothing.
func window(v, limit float64) float64 {
	if v <= 0 {
		return 1
	}
	if v >= limit {
		return 0
	}
	return 1 - v/limit
}
