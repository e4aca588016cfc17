package queries

import (
	"time"

	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderSummary is one row of an order listing.
type OrderSummary struct {
	ID             kernel.UUID
	UserID         kernel.UUID
	CampaignID     kernel.UUID
	CampaignName   string
	DealerName     string
	Status         order.Status
	TrackingNumber string
	PlacedAt       *time.Time
	ApprovedAt     *time.Time
	DispatchedAt   *time.Time
}

// orderSummarySelect reads the columns consumed by scanOrderSummary from
// orders o joined with campaigns c.
const orderSummarySelect = `
	SELECT
		o.id,
		o.order_user_id,
		o.campaign_id,
		c.name,
		o.dealer_name,
		o.tracking_number,
		o.is_placed,
		o.is_approved,
		o.is_dispatched,
		o.date_placed,
		o.date_approved,
		o.date_dispatched`

const orderSummaryFrom = `
	FROM orders o
	JOIN campaigns c ON c.id = o.campaign_id`

type scanner interface {
	Scan(dest ...any) error
}

// scanOrderSummary scans the orderSummarySelect columns followed by extra.
func scanOrderSummary(row scanner, extra ...any) (OrderSummary, error) {
	var (
		summary                            OrderSummary
		id, userID, campaignID             uuid.UUID
		isPlaced, isApproved, isDispatched bool
		placedAt, approvedAt, dispatchedAt *time.Time
	)

	dest := append([]any{
		&id,
		&userID,
		&campaignID,
		&summary.CampaignName,
		&summary.DealerName,
		&summary.TrackingNumber,
		&isPlaced,
		&isApproved,
		&isDispatched,
		&placedAt,
		&approvedAt,
		&dispatchedAt,
	}, extra...)
	if err := row.Scan(dest...); err != nil {
		return OrderSummary{}, err
	}

	var err error
	if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderSummary{}, err
	}
	if summary.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
		return OrderSummary{}, err
	}
	if summary.CampaignID, err = kernel.UUIDFromBytes(campaignID[:]); err != nil {
		return OrderSummary{}, err
	}
	if summary.Status, err = order.StatusFromFlags(isPlaced, isApproved, isDispatched); err != nil {
		return OrderSummary{}, err
	}

	summary.PlacedAt = utc(placedAt)
	summary.ApprovedAt = utc(approvedAt)
	summary.DispatchedAt = utc(dispatchedAt)
	return summary, nil
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func listOrderSummaries(db *gorm.DB, where string, args ...any) ([]OrderSummary, error) {
	orders := make([]OrderSummary, 0)

	rows, err := db.Raw(orderSummarySelect+orderSummaryFrom+where, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		summary, scanErr := scanOrderSummary(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
