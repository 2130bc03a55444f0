package domain

import "testing"

// compatMatrix fixes the full donor→recipient relation. Rows are donors,
// columns follow AllBloodGroups order: O-, O+, A-, A+, B-, B+, AB-, AB+.
var compatMatrix = map[BloodGroup][8]bool{
	ONeg:  {true, true, true, true, true, true, true, true},
	OPos:  {false, true, false, true, false, true, false, true},
	ANeg:  {false, false, true, true, false, false, true, true},
	APos:  {false, false, false, true, false, false, false, true},
	BNeg:  {false, false, false, false, true, true, true, true},
	BPos:  {false, false, false, false, false, true, false, true},
	ABNeg: {false, false, false, false, false, false, true, true},
	ABPos: {false, false, false, false, false, false, false, true},
}

func TestCanDonateTo_FullMatrix(t *testing.T) {
	t.Parallel()

	for donor, row := range compatMatrix {
		for i, recipient := range AllBloodGroups {
			got := CanDonateTo(donor, recipient)
			if got != row[i] {
				t.Errorf("CanDonateTo(%s, %s) = %v, want %v", donor, recipient, got, row[i])
			}
		}
	}
}

func TestCanDonateTo_Reflexive(t *testing.T) {
	t.Parallel()

	for _, g := range AllBloodGroups {
		if !CanDonateTo(g, g) {
			t.Errorf("CanDonateTo(%s, %s) = false, want true", g, g)
		}
	}
}

func TestCanDonateTo_UniversalDonorAndRecipient(t *testing.T) {
	t.Parallel()

	for _, g := range AllBloodGroups {
		if !CanDonateTo(ONeg, g) {
			t.Errorf("O- should donate to %s", g)
		}
		if got := CanDonateTo(ABPos, g); got != (g == ABPos) {
			t.Errorf("CanDonateTo(AB+, %s) = %v, want %v", g, got, g == ABPos)
		}
	}
}

func TestCanDonateTo_InvalidGroupFailsClosed(t *testing.T) {
	t.Parallel()

	if CanDonateTo("C+", APos) {
		t.Fatal("unknown donor group must be incompatible")
	}
	if CanDonateTo(ONeg, "C+") {
		t.Fatal("unknown recipient group must be incompatible")
	}
	if CanDonateTo("", "") {
		t.Fatal("empty groups must be incompatible")
	}
}

func TestCompatibilityReason(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		donor     BloodGroup
		recipient BloodGroup
		want      string
	}{
		{"exact match", APos, APos, "Exact blood type match"},
		{"compatible distinct", OPos, APos, "Blood type compatible"},
		{"universal donor distinct", ONeg, ABPos, "Blood type compatible"},
		{"fallback", ABPos, OPos, "Compatible for blood donation"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CompatibilityReason(tt.donor, tt.recipient); got != tt.want {
				t.Fatalf("CompatibilityReason(%s, %s) = %q, want %q", tt.donor, tt.recipient, got, tt.want)
			}
		})
	}
}

func TestBloodGroupValid(t *testing.T) {
	t.Parallel()

	for _, g := range AllBloodGroups {
		if !g.Valid() {
			t.Errorf("%s should be valid", g)
		}
	}
	for _, g := range []BloodGroup{"", "o+", "AB", "C-", "A"} {
		if g.Valid() {
			t.Errorf("%q should be invalid", g)
		}
	}
}
