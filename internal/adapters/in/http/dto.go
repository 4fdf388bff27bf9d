package http

import (
	"errors"
	"net/http"
	"time"

	"tendering/internal/pkg/errs"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// TierRequest describes one cascade tier in a create cascade request.
type TierRequest struct {
	Tier                 int      `json:"tier"`
	CarrierFilter        []string `json:"carrierFilter,omitempty"`
	OfferDeadlineMinutes int      `json:"offerDeadlineMinutes"`
}

// CreateCascadeRequest is the body of POST /api/v1/cascades.
type CreateCascadeRequest struct {
	OrderID    string        `json:"orderId"`
	ShipmentID *string       `json:"shipmentId,omitempty"`
	BrokerID   string        `json:"brokerId"`
	Mode       string        `json:"mode"`
	Tiers      []TierRequest `json:"tiers"`
}

// CreateCascadeResponse reports the tenders a cascade request produced.
type CreateCascadeResponse struct {
	RootTenderID     string   `json:"rootTenderId"`
	CreatedTenderIDs []string `json:"createdTenderIds"`
	TotalTiers       int      `json:"totalTiers"`
}

// CreateTenderRequest is the body of POST /api/v1/tenders.
type CreateTenderRequest struct {
	OrderID       string    `json:"orderId"`
	ShipmentID    *string   `json:"shipmentId,omitempty"`
	Carriers      []string  `json:"carriers"`
	OfferDeadline time.Time `json:"offerDeadline"`
}

// CreateTenderResponse carries the id of a directly created tender.
type CreateTenderResponse struct {
	ID string `json:"id"`
}

// SubmitOfferRequest is the body of POST /api/v1/tenders/:id/offers.
type SubmitOfferRequest struct {
	CarrierID  string    `json:"carrierId"`
	Amount     int64     `json:"amount"`
	Currency   string    `json:"currency"`
	ValidUntil time.Time `json:"validUntil"`
	Conditions []string  `json:"conditions,omitempty"`
}

// AwardTenderRequest is the body of POST /api/v1/tenders/:id/award.
type AwardTenderRequest struct {
	OfferID string `json:"offerId"`
}

// Tender is the read model returned by cascade and open tender queries.
type Tender struct {
	ID              string    `json:"id"`
	Number          string    `json:"number"`
	OrderID         string    `json:"orderId,omitempty"`
	Status          string    `json:"status,omitempty"`
	Mode            string    `json:"mode,omitempty"`
	Tier            int       `json:"tier"`
	ParentTenderID  *string   `json:"parentTenderId,omitempty"`
	OfferDeadline   time.Time `json:"offerDeadline"`
	TotalOffers     int       `json:"totalOffers"`
	SubmittedOffers int       `json:"submittedOffers"`
}

// statusFromError maps domain errors to HTTP status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, errs.ErrDeadlinePassed),
		errors.Is(err, errs.ErrVetoedByPolicy):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
