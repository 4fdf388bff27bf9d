package tenderrepo

import (
	"context"
	"errors"
	"time"

	"tendering/internal/core/domain/model/kernel"
	"tendering/internal/core/domain/model/tender"
	"tendering/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTenderRepository implements TenderRepository using GORM.
type GormTenderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTenderRepository creates a new GORM tender repository.
func NewGormTenderRepository(db *gorm.DB, tracker aggregateTracker) *GormTenderRepository {
	return &GormTenderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new tender to the database.
// A duplicate id, display number, or parent link maps to ConflictError.
func (r *GormTenderRepository) Add(ctx context.Context, aggregate *tender.Tender) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("tender already exists", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing tender to the database.
// Updating a tender that was never added maps to ObjectNotFoundError.
func (r *GormTenderRepository) Update(ctx context.Context, aggregate *tender.Tender) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Save falls back to an insert when the row is missing, so the absence
	// check has to run up front to keep the NotFound contract of the port
	var count int64
	if err := r.db.WithContext(ctx).Model(&TenderDTO{}).
		Where("id = ?", dto.ID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("tender", aggregate.ID().String())
	}

	// Use Session with FullSaveAssociations to properly update nested associations
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a tender by ID with all its offers.
func (r *GormTenderRepository) Get(ctx context.Context, id kernel.UUID) (*tender.Tender, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TenderDTO
	if err := r.db.WithContext(ctx).Preload("Offers").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tender", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves a tender like Get but takes the row lock via
// SELECT ... FOR UPDATE, serializing every mutating handler touching the same
// tender. Must run inside the transaction opened by the unit of work.
func (r *GormTenderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*tender.Tender, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TenderDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Offers").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tender", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOffer retrieves the tender owning the given offer.
func (r *GormTenderRepository) GetByOffer(ctx context.Context, offerID kernel.UUID) (*tender.Tender, error) {
	if err := offerID.Validate(); err != nil {
		return nil, err
	}

	var offerDto OfferDTO
	if err := r.db.WithContext(ctx).First(&offerDto, "id = ?", offerID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("offer", offerID.String())
		}
		return nil, err
	}

	tenderID, err := kernel.UUIDFromBytes(offerDto.TenderID[:])
	if err != nil {
		return nil, err
	}

	return r.Get(ctx, tenderID)
}

// GetChild retrieves the tender chained to the given parent, the next tier of
// the same cascade. Returns ObjectNotFoundError when the parent is the last tier.
func (r *GormTenderRepository) GetChild(ctx context.Context, parentID kernel.UUID) (*tender.Tender, error) {
	if err := parentID.Validate(); err != nil {
		return nil, err
	}

	var dto TenderDTO
	if err := r.db.WithContext(ctx).
		Preload("Offers").
		First(&dto, "parent_tender_id = ?", parentID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parentTenderID", parentID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetOpenPastDeadline retrieves the ids of Open tenders whose offer deadline
// has passed, oldest deadline first.
func (r *GormTenderRepository) GetOpenPastDeadline(ctx context.Context, now time.Time) ([]kernel.UUID, error) {
	var dtos []TenderDTO
	if err := r.db.WithContext(ctx).
		Select("id").
		Where("status = ? AND offer_deadline < ?", int(tender.Open), now).
		Order("offer_deadline").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return dtoIDs(dtos)
}

// GetClosedWithDraftChild retrieves the ids of Closed tenders whose next tier
// is still Draft. These are the escalation sweep candidates.
func (r *GormTenderRepository) GetClosedWithDraftChild(ctx context.Context) ([]kernel.UUID, error) {
	var dtos []TenderDTO
	if err := r.db.WithContext(ctx).
		Table("tenders").
		Select("tenders.id").
		Joins("JOIN tenders child ON child.parent_tender_id = tenders.id AND child.status = ?", int(tender.Draft)).
		Where("tenders.status = ?", int(tender.Closed)).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return dtoIDs(dtos)
}

func dtoIDs(dtos []TenderDTO) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
