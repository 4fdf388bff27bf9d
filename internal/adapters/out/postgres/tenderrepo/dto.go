// Package tenderrepo provides data transfer objects and mapping functions for tender persistence.
// This package implements the repository pattern for the tender domain aggregate, handling
// the conversion between domain entities and database representations.
package tenderrepo

import (
	"time"

	"tendering/internal/core/domain/model/kernel"
	"tendering/internal/core/domain/model/tender"

	"github.com/google/uuid"
)

// TenderDTO represents the database structure for persisting tender aggregates.
// Maps tender domain entities to relational database tables with proper foreign key relationships.
type TenderDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number         string     `gorm:"type:varchar(32);not null;uniqueIndex"`
	OrderID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	ShipmentID     *uuid.UUID `gorm:"type:uuid"`
	Status         int        `gorm:"type:int;not null;index"`
	Mode           int        `gorm:"type:int;not null"`
	Tier           int        `gorm:"type:int;not null"`
	ParentTenderID *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	OfferDeadline  time.Time  `gorm:"not null;index"`
	Offers         []OfferDTO `gorm:"foreignKey:TenderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for tender entities.
// Overrides GORM's default naming convention to use "tenders" instead of "tender_dtos".
func (TenderDTO) TableName() string {
	return "tenders"
}

// OfferDTO represents the database structure for persisting offer entities.
// Links to the owning tender via foreign key. Price columns hold zero values
// for offers that were never submitted.
type OfferDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TenderID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	CarrierID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status        int        `gorm:"type:int;not null"`
	PriceAmount   int64      `gorm:"type:bigint;not null"`
	PriceCurrency string     `gorm:"type:varchar(3);not null"`
	ValidUntil    time.Time
	Conditions    []string `gorm:"serializer:json"`
	SubmittedAt   *time.Time
}

// TableName specifies the database table name for offer entities.
// Overrides GORM's default naming convention to use "offers" instead of "offer_dtos".
func (OfferDTO) TableName() string {
	return "offers"
}

// fromDomain converts a tender domain aggregate to its database representation.
// Maps all aggregate entities including the offer slots and their current state.
func fromDomain(aggregate *tender.Tender) TenderDTO {
	tenderID := aggregate.ID().Bytes()

	var shipmentID *uuid.UUID
	if aggregate.ShipmentID() != nil {
		raw := aggregate.ShipmentID().Bytes()
		shipmentID = &raw
	}

	var parentID *uuid.UUID
	if aggregate.ParentTenderID() != nil {
		raw := aggregate.ParentTenderID().Bytes()
		parentID = &raw
	}

	offers := make([]OfferDTO, 0, len(aggregate.Offers()))
	for _, offer := range aggregate.Offers() {
		var priceAmount int64
		var priceCurrency string
		if offer.Price().Validate() == nil {
			priceAmount = offer.Price().Amount()
			priceCurrency = offer.Price().Currency()
		}

		offers = append(offers, OfferDTO{
			ID:            offer.ID().Bytes(),
			TenderID:      tenderID,
			CarrierID:     offer.CarrierID().Bytes(),
			Status:        int(offer.Status()),
			PriceAmount:   priceAmount,
			PriceCurrency: priceCurrency,
			ValidUntil:    offer.ValidUntil(),
			Conditions:    offer.Conditions(),
			SubmittedAt:   offer.SubmittedAt(),
		})
	}

	return TenderDTO{
		ID:             tenderID,
		Number:         aggregate.Number(),
		OrderID:        aggregate.OrderID().Bytes(),
		ShipmentID:     shipmentID,
		Status:         int(aggregate.Status()),
		Mode:           int(aggregate.Mode()),
		Tier:           aggregate.Tier(),
		ParentTenderID: parentID,
		OfferDeadline:  aggregate.OfferDeadline(),
		Offers:         offers,
	}
}

// toDomain converts a database DTO to a tender domain aggregate.
// Reconstructs the complete aggregate including all offers using RestoreTender.
func toDomain(dto TenderDTO) (*tender.Tender, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var shipmentID *kernel.UUID
	if dto.ShipmentID != nil {
		sID, shipErr := kernel.UUIDFromBytes((*dto.ShipmentID)[:])
		if shipErr != nil {
			return nil, shipErr
		}
		shipmentID = &sID
	}

	var parentID *kernel.UUID
	if dto.ParentTenderID != nil {
		pID, parentErr := kernel.UUIDFromBytes((*dto.ParentTenderID)[:])
		if parentErr != nil {
			return nil, parentErr
		}
		parentID = &pID
	}

	offers := make([]*tender.Offer, 0, len(dto.Offers))
	for _, offerDto := range dto.Offers {
		offer, offerErr := offerToDomain(offerDto)
		if offerErr != nil {
			return nil, offerErr
		}
		offers = append(offers, offer)
	}

	return tender.RestoreTender(
		id,
		dto.Number,
		orderID,
		shipmentID,
		tender.Status(dto.Status),
		tender.Mode(dto.Mode),
		dto.Tier,
		parentID,
		dto.OfferDeadline,
		offers,
	)
}

// offerToDomain converts an offer DTO to a domain entity.
// Uses RestoreOffer to reconstruct the entity with its persisted state.
func offerToDomain(dto OfferDTO) (*tender.Offer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tenderID, err := kernel.UUIDFromBytes(dto.TenderID[:])
	if err != nil {
		return nil, err
	}

	carrierID, err := kernel.UUIDFromBytes(dto.CarrierID[:])
	if err != nil {
		return nil, err
	}

	var price kernel.Money
	if dto.PriceCurrency != "" {
		price, err = kernel.NewMoney(dto.PriceAmount, dto.PriceCurrency)
		if err != nil {
			return nil, err
		}
	}

	return tender.RestoreOffer(
		id,
		tenderID,
		carrierID,
		tender.OfferStatus(dto.Status),
		price,
		dto.ValidUntil,
		dto.Conditions,
		dto.SubmittedAt,
	)
}
