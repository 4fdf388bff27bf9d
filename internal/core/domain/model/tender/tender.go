package tender

import (
	"errors"
	"time"

	"tendering/internal/core/domain/model/kernel"
	"tendering/internal/pkg/errs"
	"tendering/internal/pkg/events"
	"tendering/internal/pkg/guard"
)

// Domain errors for tender operations.
var (
	// ErrTenderIsNotConstructed is returned when using an improperly initialized Tender.
	ErrTenderIsNotConstructed = errors.New("Tender must be created via NewTender constructor")
	// ErrNumberIsRequired is returned when attempting to create a tender without a display number.
	ErrNumberIsRequired = errs.NewValueIsRequiredError("number")
	// ErrOfferDeadlineIsRequired is returned when attempting to create a tender without an offer deadline.
	ErrOfferDeadlineIsRequired = errs.NewValueIsRequiredError("offerDeadline")
	// ErrNoEligibleCarriers is returned when attempting to create a tender with no invited carriers.
	ErrNoEligibleCarriers = errs.NewValueIsRequiredError("carriers")
	// ErrParentTenderNotAllowed is returned when a tier-zero tender carries a parent.
	ErrParentTenderNotAllowed = errs.NewValueIsInvalidError("parentTenderID")
)

// Tender represents one round of competitive bidding for a shipment order,
// scoped to one tier of a broker's carrier network. It is the aggregate root
// owning the offers of its invited carriers.
//
// Tender follows these invariants:
//   - exactly one offer per invited carrier; carriers deduplicated at creation
//   - the tier number is the rank in the broker's network and survives
//     skipped tiers; the cascade root has no parent, every later tender
//     chains to its predecessor, and tier 0 never carries a parent
//   - status transitions only Draft -> Open -> Closed -> Awarded, with
//     Cancelled reachable from any non-terminal state
//   - submissions require Open status, a Pending slot, and now within the
//     offer deadline
//   - Award is all-or-nothing inside the aggregate: the winner is accepted
//     and every rival submitted offer rejected in the same operation
//
// Every state transition is recorded as a domain event; handlers publish the
// events after the aggregate was committed.
type Tender struct {
	// id is the unique identifier of the tender
	id kernel.UUID
	// number is the human-readable display number from the sequence collaborator
	number string
	// orderID is the shipment order this bidding round is for
	orderID kernel.UUID
	// shipmentID, when set, is the shipment that receives the winning carrier
	shipmentID *kernel.UUID
	// status is the current state in the tender lifecycle
	status Status
	// mode is the cascade activation mode this tender was created under
	mode Mode
	// tier is the rank in the broker's carrier preference hierarchy (0 = most preferred)
	tier int
	// parentTenderID chains this tier to the tier below within one cascade
	parentTenderID *kernel.UUID
	// offerDeadline bounds offer submissions
	offerDeadline time.Time
	// offers are the bid slots of the invited carriers
	offers []*Offer
	// domainEvents are the recorded, not yet published state transitions
	domainEvents []events.DomainEvent
	// guard ensures the tender was properly constructed
	guard guard.ConstructorGuard
}

// NewTender creates a tender in Draft status with one Pending offer per
// invited carrier. Duplicate carrier ids are collapsed to a single offer.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - number: display number from the sequence collaborator (must be non-empty)
//   - orderID: the order being tendered (must be a valid UUID)
//   - shipmentID: optional shipment to assign the winner to
//   - mode: cascade activation mode
//   - tier: rank in the broker's hierarchy (>= 0; tier 0 must have no parent)
//   - offerDeadline: submission cut-off (must be non-zero)
//   - carriers: invited carriers (at least one)
func NewTender(
	id kernel.UUID,
	number string,
	orderID kernel.UUID,
	shipmentID *kernel.UUID,
	mode Mode,
	tier int,
	parentTenderID *kernel.UUID,
	offerDeadline time.Time,
	carriers []kernel.UUID,
) (*Tender, error) {
	t := &Tender{
		status: Draft,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setNumber(number),
		t.setOrderID(orderID),
		t.setShipmentID(shipmentID),
		t.setMode(mode),
		t.setTier(tier, parentTenderID),
		t.setOfferDeadline(offerDeadline),
		t.provisionOffers(id, carriers),
	); err != nil {
		return nil, err
	}

	t.recordTenderEvent(events.TenderCreated)
	return t, nil
}

// RestoreTender reconstructs a Tender aggregate from persistent storage.
// Unlike NewTender it accepts any valid status and previously restored
// offers, and records no domain event.
func RestoreTender(
	id kernel.UUID,
	number string,
	orderID kernel.UUID,
	shipmentID *kernel.UUID,
	status Status,
	mode Mode,
	tier int,
	parentTenderID *kernel.UUID,
	offerDeadline time.Time,
	offers []*Offer,
) (*Tender, error) {
	t := &Tender{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setNumber(number),
		t.setOrderID(orderID),
		t.setShipmentID(shipmentID),
		status.Validate(),
		t.setMode(mode),
		t.setTier(tier, parentTenderID),
		t.setOfferDeadline(offerDeadline),
	); err != nil {
		return nil, err
	}

	for _, offer := range offers {
		if err := offer.Validate(); err != nil {
			return nil, err
		}
	}

	t.status = status
	t.offers = offers
	return t, nil
}

// Validate ensures the Tender instance was properly constructed.
func (t *Tender) Validate() error {
	if t == nil {
		return ErrTenderIsNotConstructed
	}
	return t.guard.Validate(ErrTenderIsNotConstructed)
}

// ID returns the tender's unique identifier.
func (t *Tender) ID() kernel.UUID {
	return t.id
}

// Number returns the human-readable display number.
func (t *Tender) Number() string {
	return t.number
}

// OrderID returns the order this bidding round is for.
func (t *Tender) OrderID() kernel.UUID {
	return t.orderID
}

// ShipmentID returns the shipment that receives the winning carrier.
// Returns nil if the tender is not bound to a shipment.
func (t *Tender) ShipmentID() *kernel.UUID {
	return t.shipmentID
}

// Status returns the current status of the tender.
func (t *Tender) Status() Status {
	return t.status
}

// Mode returns the cascade activation mode.
func (t *Tender) Mode() Mode {
	return t.mode
}

// Tier returns the rank in the broker's carrier preference hierarchy.
func (t *Tender) Tier() int {
	return t.tier
}

// ParentTenderID returns the tender of the tier below within the cascade.
// Returns nil for the root of a cascade.
func (t *Tender) ParentTenderID() *kernel.UUID {
	return t.parentTenderID
}

// OfferDeadline returns the submission cut-off.
func (t *Tender) OfferDeadline() time.Time {
	return t.offerDeadline
}

// Offers returns the bid slots of the invited carriers.
func (t *Tender) Offers() []*Offer {
	return t.offers
}

// OfferByID returns the offer with the given id, or nil if absent.
func (t *Tender) OfferByID(offerID kernel.UUID) *Offer {
	for _, offer := range t.offers {
		if offer.ID().IsEqual(offerID) {
			return offer
		}
	}
	return nil
}

// OfferByCarrier returns the offer slot of the given carrier, or nil if the
// carrier was not invited.
func (t *Tender) OfferByCarrier(carrierID kernel.UUID) *Offer {
	for _, offer := range t.offers {
		if offer.CarrierID().IsEqual(carrierID) {
			return offer
		}
	}
	return nil
}

// HasAcceptedOffer reports whether one of the offers won this tender.
func (t *Tender) HasAcceptedOffer() bool {
	for _, offer := range t.offers {
		if offer.Status() == OfferAccepted {
			return true
		}
	}
	return false
}

// HasAwardableOffer reports whether any offer is still submitted or already
// accepted. A closed tender with an awardable offer awaits the broker's award
// decision and must not escalate.
func (t *Tender) HasAwardableOffer() bool {
	for _, offer := range t.offers {
		if offer.Status() == OfferSubmitted || offer.Status() == OfferAccepted {
			return true
		}
	}
	return false
}

// IsEqual compares two tenders by their unique identifiers.
func (t *Tender) IsEqual(other *Tender) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// Open transitions the tender Draft -> Open, making it accept submissions.
func (t *Tender) Open() error {
	newStatus, err := t.status.Open()
	if err != nil {
		return err
	}

	t.status = newStatus
	t.recordTenderEvent(events.TenderOpened)
	return nil
}

// Close transitions the tender Open -> Closed, ending the bidding window.
// The recorded TenderClosed event is the signal the cascade orchestrator
// reacts to.
func (t *Tender) Close() error {
	newStatus, err := t.status.Close()
	if err != nil {
		return err
	}

	t.status = newStatus
	t.recordTenderEvent(events.TenderClosed)
	return nil
}

// Cancel transitions the tender into Cancelled from any non-terminal status.
// A cancelled tender never escalates its cascade.
func (t *Tender) Cancel() error {
	newStatus, err := t.status.Cancel()
	if err != nil {
		return err
	}

	t.status = newStatus
	t.recordTenderEvent(events.TenderCancelled)
	return nil
}

// SubmitOffer places the invited carrier's bid.
//
// Failure taxonomy, checked in order:
//   - DeadlinePassedError when now is past the offer deadline, regardless of
//     the tender's status
//   - InvalidStateError when the tender is not Open
//   - ForbiddenError when the carrier has no offer slot (was not invited)
//   - ConflictError when the carrier's offer was already submitted
//
// On success the offer transitions Pending -> Submitted with submittedAt=now.
func (t *Tender) SubmitOffer(
	carrierID kernel.UUID,
	price kernel.Money,
	validUntil time.Time,
	conditions []string,
	now time.Time,
) (*Offer, error) {
	if now.After(t.offerDeadline) {
		return nil, errs.NewDeadlinePassedError(t.offerDeadline)
	}

	if t.status != Open {
		return nil, errs.NewInvalidStateError("submit offer", t.status.String())
	}

	offer := t.OfferByCarrier(carrierID)
	if offer == nil {
		return nil, errs.NewForbiddenError("carrier", carrierID.String())
	}

	if err := offer.submit(price, validUntil, conditions, now); err != nil {
		return nil, err
	}

	t.recordOfferEvent(events.OfferSubmitted, offer)
	return offer, nil
}

// WithdrawOffer retracts the carrier's submitted bid.
// Fails with ForbiddenError for an uninvited carrier and with
// InvalidStateError unless the offer is currently Submitted.
func (t *Tender) WithdrawOffer(carrierID kernel.UUID) (*Offer, error) {
	offer := t.OfferByCarrier(carrierID)
	if offer == nil {
		return nil, errs.NewForbiddenError("carrier", carrierID.String())
	}

	if err := offer.withdraw(); err != nil {
		return nil, err
	}

	t.recordOfferEvent(events.OfferWithdrawn, offer)
	return offer, nil
}

// AcceptOffer accepts a single submitted offer without awarding the tender.
// Provided for manual single-offer control outside a full award.
func (t *Tender) AcceptOffer(offerID kernel.UUID) (*Offer, error) {
	offer := t.OfferByID(offerID)
	if offer == nil {
		return nil, errs.NewObjectNotFoundError("offer", offerID.String())
	}

	if err := offer.accept(); err != nil {
		return nil, err
	}

	t.recordOfferEvent(events.OfferAccepted, offer)
	return offer, nil
}

// RejectOffer rejects a single submitted offer without awarding the tender.
// Provided for manual single-offer control outside a full award.
func (t *Tender) RejectOffer(offerID kernel.UUID) (*Offer, error) {
	offer := t.OfferByID(offerID)
	if offer == nil {
		return nil, errs.NewObjectNotFoundError("offer", offerID.String())
	}

	if err := offer.reject(); err != nil {
		return nil, err
	}

	t.recordOfferEvent(events.OfferRejected, offer)
	return offer, nil
}

// Award finalizes the tender: the winning offer is accepted, every rival
// submitted offer is rejected and the tender becomes Awarded, all within
// the aggregate, so no partial award state is ever observable.
//
// Preconditions:
//   - the tender is Closed (InvalidStateError otherwise)
//   - the offer belongs to this tender (ObjectNotFoundError otherwise)
//   - the offer is Submitted (ConflictError otherwise)
//
// Pending and Withdrawn offers are left untouched.
func (t *Tender) Award(offerID kernel.UUID) (*Offer, error) {
	newStatus, err := t.status.Award()
	if err != nil {
		return nil, err
	}

	winner := t.OfferByID(offerID)
	if winner == nil {
		return nil, errs.NewObjectNotFoundError("offer", offerID.String())
	}

	if winner.Status() != OfferSubmitted {
		return nil, errs.NewConflictError("award requires a submitted offer")
	}

	if err = winner.accept(); err != nil {
		return nil, err
	}

	for _, rival := range t.offers {
		if rival.ID().IsEqual(winner.ID()) || rival.Status() != OfferSubmitted {
			continue
		}
		if err = rival.reject(); err != nil {
			return nil, err
		}
		t.recordOfferEvent(events.OfferRejected, rival)
	}

	t.status = newStatus
	t.recordTenderEvent(events.TenderAwarded)
	t.recordOfferEvent(events.OfferAccepted, winner)
	return winner, nil
}

// DomainEvents returns the recorded, not yet published state transitions.
func (t *Tender) DomainEvents() []events.DomainEvent {
	return t.domainEvents
}

// ClearDomainEvents drops the recorded events after they were published.
func (t *Tender) ClearDomainEvents() {
	t.domainEvents = nil
}

func (t *Tender) recordTenderEvent(kind events.Kind) {
	t.domainEvents = append(t.domainEvents, events.DomainEvent{
		Kind:       kind,
		EntityID:   t.id.String(),
		TenderID:   t.id.String(),
		State:      t.status.String(),
		OccurredAt: time.Now().UTC(),
	})
}

func (t *Tender) recordOfferEvent(kind events.Kind, offer *Offer) {
	t.domainEvents = append(t.domainEvents, events.DomainEvent{
		Kind:       kind,
		EntityID:   offer.ID().String(),
		TenderID:   t.id.String(),
		State:      offer.Status().String(),
		OccurredAt: time.Now().UTC(),
	})
}

func (t *Tender) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Tender) setNumber(number string) error {
	if number == "" {
		return ErrNumberIsRequired
	}
	t.number = number
	return nil
}

func (t *Tender) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	t.orderID = orderID
	return nil
}

func (t *Tender) setShipmentID(shipmentID *kernel.UUID) error {
	if shipmentID != nil {
		if err := shipmentID.Validate(); err != nil {
			return err
		}
	}
	t.shipmentID = shipmentID
	return nil
}

func (t *Tender) setMode(mode Mode) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	t.mode = mode
	return nil
}

func (t *Tender) setTier(tier int, parentTenderID *kernel.UUID) error {
	if tier < 0 {
		return errs.NewValueIsOutOfRangeError("tier", tier, 0, "unbounded")
	}

	// tier is the broker-network rank, not the cascade position: a root may
	// carry any tier number when the lower tiers were skipped at planning.
	// Tier 0 is the lowest rank, so it can never chain to a parent.
	if tier == 0 && parentTenderID != nil {
		return ErrParentTenderNotAllowed
	}
	if parentTenderID != nil {
		if err := parentTenderID.Validate(); err != nil {
			return err
		}
	}

	t.tier = tier
	t.parentTenderID = parentTenderID
	return nil
}

func (t *Tender) setOfferDeadline(offerDeadline time.Time) error {
	if offerDeadline.IsZero() {
		return ErrOfferDeadlineIsRequired
	}
	t.offerDeadline = offerDeadline
	return nil
}

func (t *Tender) provisionOffers(id kernel.UUID, carriers []kernel.UUID) error {
	if len(carriers) == 0 {
		return ErrNoEligibleCarriers
	}

	seen := make(map[kernel.UUID]struct{}, len(carriers))
	for _, carrierID := range carriers {
		if _, ok := seen[carrierID]; ok {
			continue
		}
		seen[carrierID] = struct{}{}

		offer, err := newPendingOffer(id, carrierID)
		if err != nil {
			return err
		}
		t.offers = append(t.offers, offer)
	}

	return nil
}
