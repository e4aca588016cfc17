package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetOrdersAwaitingApprovalQueryHandler struct {
	db *gorm.DB
}

func NewGetOrdersAwaitingApprovalQueryHandler(db *gorm.DB) GetOrdersAwaitingApprovalQueryHandler {
	return GetOrdersAwaitingApprovalQueryHandler{db: db}
}

func (h GetOrdersAwaitingApprovalQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersAwaitingApprovalQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return listOrderSummaries(h.db.WithContext(ctx), `
		WHERE c.approver_id = ? AND o.is_placed AND NOT o.is_approved
		ORDER BY o.date_placed, o.id
	`, query.ApproverID().Bytes())
}
