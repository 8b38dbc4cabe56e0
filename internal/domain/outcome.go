package domain

// Outcome is the classification of a report.
type Outcome bool

const (
	// Invalid means at least one adjacent step breaks the safety rules.
	Invalid Outcome = false

	// Valid means the report is strictly monotonic with steps in [1, 3].
	Valid Outcome = true
)

// String returns "valid" or "invalid".
func (o Outcome) String() string {
	if o {
		return "valid"
	}
	return "invalid"
}
