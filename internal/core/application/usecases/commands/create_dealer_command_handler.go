package commands

import (
	"context"
	"errors"
	"fmt"

	"dealerorders/internal/core/domain/model/dealer"
	"dealerorders/internal/pkg/errs"
)

// ErrDealerAlreadyExists is returned when the user already has a profile.
var ErrDealerAlreadyExists = errs.NewTransitionIsRejectedError("create dealer", "user already has a dealer profile")

// CreateDealerCommandHandler persists the dealer profile of a user.
type CreateDealerCommandHandler struct {
	uowFactory DealerUoWFactory
}

func NewCreateDealerCommandHandler(uowFactory DealerUoWFactory) CreateDealerCommandHandler {
	return CreateDealerCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateDealerCommandHandler) Handle(ctx context.Context, cmd CreateDealerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	d, err := dealer.NewDealer(cmd.DealerID(), cmd.UserID(), cmd.Identity(), cmd.Defaults())
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

	dealerRepo := uow.DealerRepository()
	_, err = dealerRepo.GetByUser(ctx, cmd.UserID())
	switch {
	case err == nil:
		return ErrDealerAlreadyExists
	case !errors.Is(err, errs.ErrObjectNotFound):
		return fmt.Errorf("lookup dealer profile: %w", err)
	}

	if err = dealerRepo.Add(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
