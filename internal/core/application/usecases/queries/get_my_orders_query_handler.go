package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetMyOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetMyOrdersQueryHandler(db *gorm.DB) GetMyOrdersQueryHandler {
	return GetMyOrdersQueryHandler{db: db}
}

func (h GetMyOrdersQueryHandler) Handle(ctx context.Context, query GetMyOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return listOrderSummaries(h.db.WithContext(ctx), `
		WHERE o.order_user_id = ?
		ORDER BY o.date_placed DESC NULLS FIRST, o.id
	`, query.UserID().Bytes())
}
