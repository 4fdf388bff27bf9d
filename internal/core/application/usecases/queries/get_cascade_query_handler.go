package queries

import (
	"context"

	"tendering/internal/core/domain/model/kernel"
	"tendering/internal/core/domain/model/tender"
	"tendering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCascadeQueryHandler reads the full tender chain of a cascade from the
// database. The chain is resolved in SQL: first ascend the parent links to
// the root, then descend through the children, so the caller may pass any
// tender of the cascade.
type GetCascadeQueryHandler struct {
	db *gorm.DB
}

// NewGetCascadeQueryHandler creates a handler for cascade queries.
// Requires a GORM database connection for query execution.
func NewGetCascadeQueryHandler(db *gorm.DB) GetCascadeQueryHandler {
	return GetCascadeQueryHandler{db: db}
}

// Handle executes the query and returns the cascade's tenders ordered by
// tier. Returns ObjectNotFoundError when the tender is unknown.
func (h GetCascadeQueryHandler) Handle(
	ctx context.Context,
	query GetCascadeQuery,
) ([]GetCascadeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		WITH RECURSIVE up AS (
			SELECT id, parent_tender_id FROM tenders WHERE id = ?
			UNION ALL
			SELECT t.id, t.parent_tender_id FROM tenders t
			JOIN up ON up.parent_tender_id = t.id
		),
		down AS (
			SELECT t.* FROM tenders t
			WHERE t.id = (SELECT id FROM up WHERE parent_tender_id IS NULL)
			UNION ALL
			SELECT t.* FROM tenders t
			JOIN down ON t.parent_tender_id = down.id
		)
		SELECT
			down.id,
			down.number,
			down.status,
			down.mode,
			down.tier,
			down.parent_tender_id,
			down.offer_deadline,
			(SELECT COUNT(*) FROM offers o WHERE o.tender_id = down.id),
			(SELECT COUNT(*) FROM offers o WHERE o.tender_id = down.id AND o.status = ?)
		FROM down
		ORDER BY down.tier
	`, query.TenderID().Bytes(), int(tender.OfferSubmitted)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cascade := make([]GetCascadeQueryResponse, 0)
	for rows.Next() {
		var resp GetCascadeQueryResponse
		var id uuid.UUID
		var parentID *uuid.UUID
		var status, mode int

		err = rows.Scan(
			&id,
			&resp.Number,
			&status,
			&mode,
			&resp.Tier,
			&parentID,
			&resp.OfferDeadline,
			&resp.TotalOffers,
			&resp.SubmittedOffers,
		)
		if err != nil {
			return nil, err
		}

		tenderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = tenderID

		if parentID != nil {
			parent, parentErr := kernel.UUIDFromBytes((*parentID)[:])
			if parentErr != nil {
				return nil, parentErr
			}
			resp.ParentTenderID = &parent
		}

		resp.Status = tender.Status(status).String()
		resp.Mode = tender.Mode(mode).String()
		cascade = append(cascade, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(cascade) == 0 {
		return nil, errs.NewObjectNotFoundError("tender", query.TenderID().String())
	}

	return cascade, nil
}
