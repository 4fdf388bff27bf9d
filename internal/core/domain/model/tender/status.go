package tender

import (
	"tendering/internal/pkg/errs"
)

// Status represents the lifecycle state of a tender.
// It implements a state machine with defined transitions to ensure
// a bidding round follows the correct business workflow.
//
// State transitions:
//
//	Draft ──> Open ──> Closed ──> Awarded
//	  │         │         │
//	  └─────────┴─────────┴─────> Cancelled
//
// Awarded and Cancelled are terminal. Cancelled is reachable from every
// non-terminal state.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Draft is the initial status. The tender exists with its provisioned
	// offers but is not yet accepting submissions. Upper cascade tiers in
	// sequential mode wait in this status.
	Draft

	// Open means the tender is accepting offer submissions until its
	// offer deadline.
	Open

	// Closed means the bidding window has ended. Submissions are no longer
	// accepted; the tender awaits an award decision or escalation.
	Closed

	// Awarded means exactly one offer was accepted and all rival submitted
	// offers were rejected. Terminal.
	Awarded

	// Cancelled means the tender was withdrawn before reaching a terminal
	// outcome. Terminal; a cancelled tender never triggers escalation.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Draft:         "Draft",
		Open:          "Open",
		Closed:        "Closed",
		Awarded:       "Awarded",
		Cancelled:     "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:     "Draft",
		Open:      "Open",
		Closed:    "Closed",
		Awarded:   "Awarded",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// Used when reconstructing tenders from external sources such as the database.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the human-readable name of the status.
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Awarded || s == Cancelled
}

// Open transitions the status to Open.
//
// Valid transitions:
//   - Draft -> Open
//
// Returns (0, InvalidStateError) for every other starting status.
func (s Status) Open() (Status, error) {
	if s != Draft {
		return 0, errs.NewInvalidStateError("open tender", s.String())
	}
	return Open, nil
}

// Close transitions the status to Closed.
//
// Valid transitions:
//   - Open -> Closed
//
// Returns (0, InvalidStateError) for every other starting status, which
// also makes a second close of the same tender fail.
func (s Status) Close() (Status, error) {
	if s != Open {
		return 0, errs.NewInvalidStateError("close tender", s.String())
	}
	return Closed, nil
}

// Award transitions the status to Awarded.
//
// Valid transitions:
//   - Closed -> Awarded
//
// A tender must be closed before it can be awarded; awarding an open tender
// would race late submissions.
func (s Status) Award() (Status, error) {
	if s != Closed {
		return 0, errs.NewInvalidStateError("award tender", s.String())
	}
	return Awarded, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Draft, Open, Closed -> Cancelled
//
// Terminal statuses cannot be cancelled.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewInvalidStateError("cancel tender", s.String())
	}
	return Cancelled, nil
}
