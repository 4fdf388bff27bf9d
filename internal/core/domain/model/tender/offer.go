package tender

import (
	"errors"
	"time"

	"tendering/internal/core/domain/model/kernel"
	"tendering/internal/pkg/errs"
	"tendering/internal/pkg/guard"
)

// ErrOfferIsNotConstructed is returned when an Offer instance was not created
// through the aggregate or RestoreOffer.
var ErrOfferIsNotConstructed = errors.New("Offer must be created via the Tender aggregate or RestoreOffer")

// Offer is a carrier's bid slot against a specific tender. An offer is
// provisioned in Pending status for every invited carrier at tender creation;
// price, validity and conditions are filled in when the carrier submits.
//
// Offer is a child entity of the Tender aggregate: all state transitions run
// through the aggregate root, which enforces deadline, invitation and
// duplicate checks before delegating here.
type Offer struct {
	// id uniquely identifies the offer
	id kernel.UUID
	// tenderID is the owning tender
	tenderID kernel.UUID
	// carrierID is the invited carrier this slot belongs to
	carrierID kernel.UUID
	// status is the current state in the offer lifecycle
	status OfferStatus
	// price is the bid amount; zero until the offer is submitted
	price kernel.Money
	// validUntil bounds how long the submitted bid stands; zero until submitted
	validUntil time.Time
	// conditions are optional carrier-supplied submission conditions
	conditions []string
	// submittedAt records the submission instant; nil until submitted
	submittedAt *time.Time
	// guard ensures the offer was properly constructed
	guard guard.ConstructorGuard
}

// newPendingOffer provisions an empty Pending offer slot for an invited
// carrier. Called only by the aggregate root at tender creation.
func newPendingOffer(tenderID, carrierID kernel.UUID) (*Offer, error) {
	if err := errors.Join(tenderID.Validate(), carrierID.Validate()); err != nil {
		return nil, err
	}

	return &Offer{
		id:        kernel.NewUUID(),
		tenderID:  tenderID,
		carrierID: carrierID,
		status:    OfferPending,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreOffer reconstructs an Offer from persistent storage.
// Price may be the zero Money for offers that were never submitted.
func RestoreOffer(
	id, tenderID, carrierID kernel.UUID,
	status OfferStatus,
	price kernel.Money,
	validUntil time.Time,
	conditions []string,
	submittedAt *time.Time,
) (*Offer, error) {
	if err := errors.Join(
		id.Validate(),
		tenderID.Validate(),
		carrierID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Offer{
		id:          id,
		tenderID:    tenderID,
		carrierID:   carrierID,
		status:      status,
		price:       price,
		validUntil:  validUntil,
		conditions:  conditions,
		submittedAt: submittedAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Offer instance was properly constructed.
func (o *Offer) Validate() error {
	if o == nil {
		return ErrOfferIsNotConstructed
	}
	return o.guard.Validate(ErrOfferIsNotConstructed)
}

// ID returns the offer's unique identifier.
func (o *Offer) ID() kernel.UUID {
	return o.id
}

// TenderID returns the owning tender's identifier.
func (o *Offer) TenderID() kernel.UUID {
	return o.tenderID
}

// CarrierID returns the invited carrier's identifier.
func (o *Offer) CarrierID() kernel.UUID {
	return o.carrierID
}

// Status returns the current status of the offer.
func (o *Offer) Status() OfferStatus {
	return o.status
}

// Price returns the bid price. The zero Money means no bid was submitted.
func (o *Offer) Price() kernel.Money {
	return o.price
}

// ValidUntil returns how long the submitted bid stands.
// The zero time means no bid was submitted.
func (o *Offer) ValidUntil() time.Time {
	return o.validUntil
}

// Conditions returns the carrier-supplied submission conditions, if any.
func (o *Offer) Conditions() []string {
	return o.conditions
}

// SubmittedAt returns the submission instant, or nil if never submitted.
func (o *Offer) SubmittedAt() *time.Time {
	return o.submittedAt
}

// submit fills in the bid and transitions Pending -> Submitted.
// The aggregate root has already checked deadline and tender status.
func (o *Offer) submit(price kernel.Money, validUntil time.Time, conditions []string, now time.Time) error {
	if err := price.Validate(); err != nil {
		return err
	}
	if validUntil.IsZero() {
		return errs.NewValueIsRequiredError("validUntil")
	}

	newStatus, err := o.status.Submit()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.price = price
	o.validUntil = validUntil
	o.conditions = conditions
	submittedAt := now
	o.submittedAt = &submittedAt
	return nil
}

func (o *Offer) accept() error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

func (o *Offer) reject() error {
	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

func (o *Offer) withdraw() error {
	newStatus, err := o.status.Withdraw()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}
