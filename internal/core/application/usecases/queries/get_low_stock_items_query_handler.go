package queries

import (
	"context"

	"dealerorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetLowStockItemsQueryHandler struct {
	db *gorm.DB
}

func NewGetLowStockItemsQueryHandler(db *gorm.DB) GetLowStockItemsQueryHandler {
	return GetLowStockItemsQueryHandler{db: db}
}

func (h GetLowStockItemsQueryHandler) Handle(
	ctx context.Context,
	query GetLowStockItemsQuery,
) ([]LowStockItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]LowStockItemView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT i.id, i.campaign_id, c.name, i.name, i.stock, i.thresh_stock_alert
		FROM items i
		JOIN campaigns c ON c.id = i.campaign_id
		WHERE i.stock <= i.thresh_stock_alert
		ORDER BY i.stock, i.name, i.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			view           LowStockItemView
			id, campaignID uuid.UUID
		)
		err = rows.Scan(&id, &campaignID, &view.CampaignName, &view.Name, &view.Stock, &view.ThreshStockAlert)
		if err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.CampaignID, err = kernel.UUIDFromBytes(campaignID[:]); err != nil {
			return nil, err
		}
		items = append(items, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
