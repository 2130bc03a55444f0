package domain

// BloodGroup represents one of the 8 ABO/Rh blood groups.
type BloodGroup string

// List of blood groups.
const (
	ONeg  BloodGroup = "O-"
	OPos  BloodGroup = "O+"
	ANeg  BloodGroup = "A-"
	APos  BloodGroup = "A+"
	BNeg  BloodGroup = "B-"
	BPos  BloodGroup = "B+"
	ABNeg BloodGroup = "AB-"
	ABPos BloodGroup = "AB+"
)

// AllBloodGroups lists every valid blood group.
var AllBloodGroups = [...]BloodGroup{
	ONeg, OPos, ANeg, APos, BNeg, BPos, ABNeg, ABPos,
}

// Valid checks if the BloodGroup is one of the 8 known values.
func (g BloodGroup) Valid() bool {
	for _, v := range AllBloodGroups {
		if g == v {
			return true
		}
	}
	return false
}

// donatesTo maps each donor group to the recipient groups it can donate to.
// O- is the universal donor, AB+ the universal recipient.
var donatesTo = map[BloodGroup][]BloodGroup{
	ONeg:  {ONeg, OPos, ANeg, APos, BNeg, BPos, ABNeg, ABPos},
	OPos:  {OPos, APos, BPos, ABPos},
	ANeg:  {ANeg, APos, ABNeg, ABPos},
	APos:  {APos, ABPos},
	BNeg:  {BNeg, BPos, ABNeg, ABPos},
	BPos:  {BPos, ABPos},
	ABNeg: {ABNeg, ABPos},
	ABPos: {ABPos},
}

// CanDonateTo reports whether donor blood can be given to recipient.
// Unknown values fail closed: the answer is false, never an error.
func CanDonateTo(donor, recipient BloodGroup) bool {
	for _, v := range donatesTo[donor] {
		if v == recipient {
			return true
		}
	}
	return false
}

// DonorGroupsFor returns every donor blood group that can donate to the
// recipient group, in AllBloodGroups order. Used to build alert target sets
// for a recipient in urgent need.
func DonorGroupsFor(recipient BloodGroup) []BloodGroup {
	var out []BloodGroup
	for _, donor := range AllBloodGroups {
		if CanDonateTo(donor, recipient) {
			out = append(out, donor)
		}
	}
	return out
}

// CompatibilityReason returns a short human-readable reason for a compatible
// donor/recipient pair. Callers check CanDonateTo first; for incompatible
// pairs the generic fallback is returned.
func CompatibilityReason(donor, recipient BloodGroup) string {
	switch {
	case donor == recipient && donor.Valid():
		return "Exact blood type match"
	case CanDonateTo(donor, recipient):
		return "Blood type compatible"
	default:
		return "Compatible for blood donation"
	}
}
