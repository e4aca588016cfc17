package commands

import (
	"context"

	"dealerorders/internal/core/domain/model/catalog"
)

// CreateCampaignCommandHandler persists a new campaign.
type CreateCampaignCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateCampaignCommandHandler(uowFactory CatalogUoWFactory) CreateCampaignCommandHandler {
	return CreateCampaignCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateCampaignCommandHandler) Handle(ctx context.Context, cmd CreateCampaignCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	campaign, err := catalog.NewCampaign(cmd.CampaignID(), cmd.Name(), cmd.ApproverID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CampaignRepository().Add(ctx, campaign); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
