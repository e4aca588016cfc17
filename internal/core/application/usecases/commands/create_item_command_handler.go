package commands

import (
	"context"

	"dealerorders/internal/core/domain/model/catalog"
)

// CreateItemCommandHandler persists a new item after checking that its
// campaign exists.
type CreateItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateItemCommandHandler(uowFactory CatalogUoWFactory) CreateItemCommandHandler {
	return CreateItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns errs.ErrObjectNotFound when the campaign does not exist.
func (h CreateItemCommandHandler) Handle(ctx context.Context, cmd CreateItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CampaignRepository().Get(ctx, cmd.CampaignID()); err != nil {
		return err
	}

	item, err := catalog.NewItem(cmd.ItemID(), cmd.CampaignID(), cmd.Attributes())
	if err != nil {
		return err
	}

	if err = uow.ItemRepository().Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
