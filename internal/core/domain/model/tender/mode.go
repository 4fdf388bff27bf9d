package tender

import (
	"fmt"
	"strings"

	"tendering/internal/pkg/errs"
)

// Mode determines how the tiers of a cascade are activated.
type Mode int

const (
	// ModeUnknown represents an invalid or undefined mode.
	ModeUnknown Mode = iota

	// Sequential opens only the lowest tier immediately; each higher tier
	// stays Draft until the tier below it closes without an accepted offer.
	Sequential

	// Parallel opens every tier immediately; tiers are independent thereafter.
	Parallel
)

func getModeStrings() map[Mode]string {
	return map[Mode]string{
		ModeUnknown: "Unknown",
		Sequential:  "Sequential",
		Parallel:    "Parallel",
	}
}

// Validate checks if the Mode value is valid.
func (m Mode) Validate() error {
	if m != Sequential && m != Parallel {
		return errs.NewValueIsInvalidError("mode")
	}
	return nil
}

// String returns the human-readable name of the mode.
func (m Mode) String() string {
	if str, ok := getModeStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

// ParseMode converts a case-insensitive mode name ("sequential", "parallel")
// into a Mode. Used by inbound adapters.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "sequential":
		return Sequential, nil
	case "parallel":
		return Parallel, nil
	default:
		return ModeUnknown, errs.NewValueIsInvalidErrorWithCause("mode",
			fmt.Errorf("%q is not a cascade mode", s))
	}
}
