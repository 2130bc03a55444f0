package domain

import "regexp"

type (
	// UrgencyLevel represents how urgently a recipient needs blood.
	UrgencyLevel string
	// RecipientStatus represents where a recipient is in the donation flow.
	RecipientStatus string
	// MatchStatus represents the state of a proposed donor/recipient match.
	MatchStatus string
	// VerificationStatus represents identity verification of a donor or hospital.
	VerificationStatus string
)

// List of possible urgency levels
const (
	UrgencyLow      UrgencyLevel = "low"
	UrgencyMedium   UrgencyLevel = "medium"
	UrgencyHigh     UrgencyLevel = "high"
	UrgencyCritical UrgencyLevel = "critical"
)

// List of possible recipient statuses
const (
	RecipientWaiting   RecipientStatus = "waiting"
	RecipientMatched   RecipientStatus = "matched"
	RecipientFulfilled RecipientStatus = "fulfilled"
	RecipientCancelled RecipientStatus = "cancelled"
)

// List of possible match statuses
const (
	MatchPending  MatchStatus = "pending"
	MatchAccepted MatchStatus = "accepted"
	MatchRejected MatchStatus = "rejected"
)

// List of possible verification statuses
const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

var allowedUrgencies = [...]UrgencyLevel{
	UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical,
}

var allowedRecipientStatuses = [...]RecipientStatus{
	RecipientWaiting, RecipientMatched, RecipientFulfilled, RecipientCancelled,
}

var allowedVerificationStatuses = [...]VerificationStatus{
	VerificationPending, VerificationVerified, VerificationRejected,
}

// Valid checks if the UrgencyLevel is valid
func (u UrgencyLevel) Valid() bool {
	for _, v := range allowedUrgencies {
		if u == v {
			return true
		}
	}
	return false
}

// Valid checks if the RecipientStatus is valid
func (s RecipientStatus) Valid() bool {
	for _, v := range allowedRecipientStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Valid checks if the VerificationStatus is valid
func (s VerificationStatus) Valid() bool {
	for _, v := range allowedVerificationStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// rePhone is a regex to validate phone numbers
var rePhone = regexp.MustCompile(`^\+[0-9]{10,14}$`)

// ValidatePhone validates the phone number format
func ValidatePhone(s string) bool {
	return rePhone.MatchString(s)
}
