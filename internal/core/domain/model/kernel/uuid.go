package kernel

import (
	"fmt"

	"tendering/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not properly initialized through one of the constructor functions.
// This error is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is the identifier value object of the domain. Tenders, offers,
// orders, shipments, brokers, and carriers are all identified by it. It wraps
// github.com/google/uuid to keep the identity immutable and validated at the
// boundary.
//
// The zero value is invalid; construct through NewUUID, UUIDFromString, or
// UUIDFromBytes.
//
// Example usage:
//
//	// Fresh identity for a new aggregate
//	tenderID := kernel.NewUUID()
//
//	// Identity arriving from a request path parameter
//	offerID, err := kernel.UUIDFromString(ctx.Param("id"))
//	if err != nil {
//	    // handle error
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random UUID (version 4).
// This is the primary way to mint identifiers for new tenders and offers.
//
// Example:
//
//	tenderID := kernel.NewUUID()
//	fmt.Println(tenderID.String()) // e.g., "550e8400-e29b-41d4-a716-446655440000"
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses a UUID from its string representation.
// It accepts standard UUID formats including:
//   - "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//   - "{6ba7b810-9dad-11d1-80b4-00c04fd430c8}"
//   - "urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//
// Returns an error if the string is not a valid UUID format. Used when ids
// arrive as text: request path parameters, collaborator payloads, domain
// event fields.
//
// Example:
//
//	carrierID, err := kernel.UUIDFromString(req.CarrierID)
//	if err != nil {
//	    return fmt.Errorf("invalid carrier ID: %w", err)
//	}
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes creates a UUID from a byte slice.
// The byte slice must be exactly 16 bytes long.
// Returns an error if the byte slice is not valid for UUID construction.
//
// The postgres adapter stores ids as 16-byte columns, so this is the
// reconstruction path of every persisted identifier.
//
// Example:
//
//	tenderID, err := kernel.UUIDFromBytes(dto.ID[:])
//	if err != nil {
//	    return fmt.Errorf("invalid tender ID: %w", err)
//	}
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the standard string representation of the UUID.
// The format is "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" where x is a hexadecimal digit.
// For a zero value UUID, this returns "00000000-0000-0000-0000-000000000000".
//
// This is the form carried by REST responses, log lines, and domain event
// payloads.
//
// Example:
//
//	id := kernel.NewUUID()
//	logger.Info("Tender created", "tenderId", id.String())
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying UUID value.
// Note: This returns the internal uuid.UUID type, not a byte slice.
// For a byte slice representation, use id.Bytes()[:].
//
// The repository layer uses it to fill the binary id columns of the DTOs;
// other code should stay on the value object itself.
//
// Example:
//
//	dto.ID = aggregate.ID().Bytes()
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual compares two UUIDs for equality.
// Returns true if both UUIDs represent the same value, false otherwise.
//
// Example:
//
//	if offer.CarrierID().IsEqual(cmd.CarrierID()) {
//	    // the bid slot belongs to this carrier
//	}
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate checks if the UUID is properly constructed.
// Returns ErrUUIDIsNotConstructed if the UUID is a zero value (nil UUID).
// A valid UUID is any UUID that was created through one of the constructor functions.
//
// Aggregate and command constructors call this on every id they receive, so
// a zero identity never reaches the repositories.
//
// Example:
//
//	func NewAcceptOfferCommand(offerID kernel.UUID) (AcceptOfferCommand, error) {
//	    if err := offerID.Validate(); err != nil {
//	        return AcceptOfferCommand{}, err
//	    }
//	    ...
//	}
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
