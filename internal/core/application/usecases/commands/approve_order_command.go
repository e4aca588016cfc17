package commands

import (
	"errors"

	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/pkg/guard"
)

var ErrApproveOrderCommandIsNotConstructed = errors.New(
	"ApproveOrderCommand must be created via NewApproveOrderCommand constructor",
)

// ApproveOrderCommand records the campaign approver's approval of a placed order.
type ApproveOrderCommand struct { //nolint:recvcheck //using for validation
	approverID kernel.UUID
	orderID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewApproveOrderCommand(approverID, orderID kernel.UUID) (ApproveOrderCommand, error) {
	if err := errors.Join(
		approverID.Validate(),
		orderID.Validate(),
	); err != nil {
		return ApproveOrderCommand{}, err
	}

	return ApproveOrderCommand{
		approverID: approverID,
		orderID:    orderID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ApproveOrderCommand) Validate() error {
	return c.guard.Validate(ErrApproveOrderCommandIsNotConstructed)
}

func (c ApproveOrderCommand) ApproverID() kernel.UUID {
	return c.approverID
}

func (c ApproveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
