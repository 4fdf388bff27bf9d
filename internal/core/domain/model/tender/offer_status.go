package tender

import (
	"tendering/internal/pkg/errs"
)

// OfferStatus represents the lifecycle state of a carrier's offer.
//
// State transitions:
//
//	Pending ──> Submitted ──> Accepted | Rejected | Withdrawn
//
// Accepted, Rejected and Withdrawn are terminal. An offer starts Pending
// the moment its carrier is invited, before any bid has been placed.
type OfferStatus int

const (
	// OfferStatusUnknown represents an invalid or undefined status.
	OfferStatusUnknown OfferStatus = iota

	// OfferPending means the carrier is invited but has not submitted a bid.
	OfferPending

	// OfferSubmitted means the carrier placed a bid within the deadline.
	OfferSubmitted

	// OfferAccepted means the bid won the tender. Terminal.
	OfferAccepted

	// OfferRejected means the bid lost, either by award or manual rejection. Terminal.
	OfferRejected

	// OfferWithdrawn means the carrier retracted a submitted bid. Terminal.
	OfferWithdrawn
)

func getOfferStatusStrings() map[OfferStatus]string {
	return map[OfferStatus]string{
		OfferStatusUnknown: "Unknown",
		OfferPending:       "Pending",
		OfferSubmitted:     "Submitted",
		OfferAccepted:      "Accepted",
		OfferRejected:      "Rejected",
		OfferWithdrawn:     "Withdrawn",
	}
}

func getValidOfferStatusStrings() map[OfferStatus]string {
	//nolint:exhaustive // OfferStatusUnknown is intentionally excluded as it's invalid
	return map[OfferStatus]string{
		OfferPending:   "Pending",
		OfferSubmitted: "Submitted",
		OfferAccepted:  "Accepted",
		OfferRejected:  "Rejected",
		OfferWithdrawn: "Withdrawn",
	}
}

// Validate checks if the OfferStatus value is valid.
func (s OfferStatus) Validate() error {
	if _, ok := getValidOfferStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("offer status")
	}
	return nil
}

// String returns the human-readable name of the status.
func (s OfferStatus) String() string {
	if str, ok := getOfferStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s OfferStatus) IsTerminal() bool {
	return s == OfferAccepted || s == OfferRejected || s == OfferWithdrawn
}

// Submit transitions the status to Submitted. A second submission of the
// same offer is a conflict rather than an invalid state, so callers can
// surface duplicate bids distinctly.
func (s OfferStatus) Submit() (OfferStatus, error) {
	if s == OfferSubmitted {
		return 0, errs.NewConflictError("offer already submitted")
	}
	if s != OfferPending {
		return 0, errs.NewInvalidStateError("submit offer", s.String())
	}
	return OfferSubmitted, nil
}

// Accept transitions the status to Accepted. Only submitted offers can win.
func (s OfferStatus) Accept() (OfferStatus, error) {
	if s != OfferSubmitted {
		return 0, errs.NewInvalidStateError("accept offer", s.String())
	}
	return OfferAccepted, nil
}

// Reject transitions the status to Rejected. Only submitted offers can be rejected.
func (s OfferStatus) Reject() (OfferStatus, error) {
	if s != OfferSubmitted {
		return 0, errs.NewInvalidStateError("reject offer", s.String())
	}
	return OfferRejected, nil
}

// Withdraw transitions the status to Withdrawn. Only submitted offers can be withdrawn.
func (s OfferStatus) Withdraw() (OfferStatus, error) {
	if s != OfferSubmitted {
		return 0, errs.NewInvalidStateError("withdraw offer", s.String())
	}
	return OfferWithdrawn, nil
}
