package queries

import (
	"context"

	"dealerorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetCampaignsQueryHandler struct {
	db *gorm.DB
}

func NewGetCampaignsQueryHandler(db *gorm.DB) GetCampaignsQueryHandler {
	return GetCampaignsQueryHandler{db: db}
}

func (h GetCampaignsQueryHandler) Handle(ctx context.Context, query GetCampaignsQuery) ([]CampaignView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	campaigns := make([]CampaignView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, approver_id
		FROM campaigns
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			view       CampaignView
			id         uuid.UUID
			approverID *uuid.UUID
		)
		if err = rows.Scan(&id, &view.Name, &approverID); err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if approverID != nil {
			approver, approverErr := kernel.UUIDFromBytes(approverID[:])
			if approverErr != nil {
				return nil, approverErr
			}
			view.ApproverID = &approver
		}
		campaigns = append(campaigns, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return campaigns, nil
}
