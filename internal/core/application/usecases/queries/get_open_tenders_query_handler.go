package queries

import (
	"context"

	"tendering/internal/core/domain/model/kernel"
	"tendering/internal/core/domain/model/tender"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOpenTendersQueryHandler retrieves tenders accepting offers from the
// database. Results carry offer counters so the market surface can show
// bidding activity without loading aggregates.
type GetOpenTendersQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenTendersQueryHandler creates a handler for open tender queries.
// Requires a GORM database connection for query execution.
func NewGetOpenTendersQueryHandler(db *gorm.DB) GetOpenTendersQueryHandler {
	return GetOpenTendersQueryHandler{db: db}
}

// Handle executes the query to retrieve all open tenders.
// Results are sorted by offer deadline so the most urgent tenders come first.
func (h GetOpenTendersQueryHandler) Handle(
	ctx context.Context,
	query GetOpenTendersQuery,
) ([]GetOpenTendersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			t.id,
			t.number,
			t.order_id,
			t.tier,
			t.offer_deadline,
			(SELECT COUNT(*) FROM offers o WHERE o.tender_id = t.id),
			(SELECT COUNT(*) FROM offers o WHERE o.tender_id = t.id AND o.status = ?)
		FROM tenders t
		WHERE t.status = ?
		ORDER BY t.offer_deadline
	`, int(tender.OfferSubmitted), int(tender.Open)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tenders := make([]GetOpenTendersQueryResponse, 0)
	for rows.Next() {
		var resp GetOpenTendersQueryResponse
		var id, orderID uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Number,
			&orderID,
			&resp.Tier,
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

		oID, orderErr := kernel.UUIDFromBytes(orderID[:])
		if orderErr != nil {
			return nil, orderErr
		}
		resp.OrderID = oID

		tenders = append(tenders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tenders, nil
}
