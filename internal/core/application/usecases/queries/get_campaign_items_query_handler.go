package queries

import (
	"context"

	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetCampaignItemsQueryHandler struct {
	db *gorm.DB
}

func NewGetCampaignItemsQueryHandler(db *gorm.DB) GetCampaignItemsQueryHandler {
	return GetCampaignItemsQueryHandler{db: db}
}

func (h GetCampaignItemsQueryHandler) Handle(ctx context.Context, query GetCampaignItemsQuery) ([]ItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	var campaigns int64
	if err := db.Raw(`SELECT COUNT(*) FROM campaigns WHERE id = ?`, query.CampaignID().Bytes()).
		Scan(&campaigns).Error; err != nil {
		return nil, err
	}
	if campaigns == 0 {
		return nil, errs.NewObjectNotFoundError("campaign", query.CampaignID().String())
	}

	items := make([]ItemView, 0)

	rows, err := db.Raw(`
		SELECT id, name, remarks, incl, thresh_auto_app, thresh_stock_alert, stock
		FROM items
		WHERE campaign_id = ?
		ORDER BY name, id
	`, query.CampaignID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			view ItemView
			id   uuid.UUID
		)
		err = rows.Scan(&id, &view.Name, &view.Remarks, &view.Incl,
			&view.ThreshAutoApp, &view.ThreshStockAlert, &view.Stock)
		if err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		items = append(items, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
