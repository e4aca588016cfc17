package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetOrdersAwaitingDispatchQueryHandler struct {
	db *gorm.DB
}

func NewGetOrdersAwaitingDispatchQueryHandler(db *gorm.DB) GetOrdersAwaitingDispatchQueryHandler {
	return GetOrdersAwaitingDispatchQueryHandler{db: db}
}

func (h GetOrdersAwaitingDispatchQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersAwaitingDispatchQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return listOrderSummaries(h.db.WithContext(ctx), `
		WHERE o.is_approved AND NOT o.is_dispatched
		ORDER BY o.date_approved, o.id
	`)
}
