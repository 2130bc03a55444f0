package domain

import "time"

// Alert represents a broadcast urgent-need notification.
type Alert struct {
	ID           string
	Message      string
	Urgency      UrgencyLevel
	TargetGroups []BloodGroup
	IsActive     bool
	CreatedAt    time.Time
}

// AlertSpec carries the caller-supplied fields for a new alert.
type AlertSpec struct {
	Message      string
	Urgency      UrgencyLevel
	TargetGroups []BloodGroup
}

// Targets reports whether the alert spec targets the given blood group.
// This is direct set membership: an alert names explicit groups, it does
// not expand them through the donation compatibility table.
func (s AlertSpec) Targets(g BloodGroup) bool {
	for _, t := range s.TargetGroups {
		if t == g {
			return true
		}
	}
	return false
}

// DeliveryReport summarizes one fanout run for audit by the caller.
type DeliveryReport struct {
	Eligible  int
	Delivered int
	Failed    int
}
