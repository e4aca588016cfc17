package queries

import (
	"errors"

	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/pkg/guard"
)

var ErrGetOrdersAwaitingApprovalQueryIsNotConstructed = errors.New(
	"GetOrdersAwaitingApprovalQuery must be created via NewGetOrdersAwaitingApprovalQuery constructor",
)

// GetOrdersAwaitingApprovalQuery lists placed, unapproved orders of the
// campaigns approved by approverID, oldest placement first.
type GetOrdersAwaitingApprovalQuery struct {
	approverID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrdersAwaitingApprovalQuery(approverID kernel.UUID) (GetOrdersAwaitingApprovalQuery, error) {
	if err := approverID.Validate(); err != nil {
		return GetOrdersAwaitingApprovalQuery{}, err
	}

	return GetOrdersAwaitingApprovalQuery{approverID: approverID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrdersAwaitingApprovalQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersAwaitingApprovalQueryIsNotConstructed)
}

func (q GetOrdersAwaitingApprovalQuery) ApproverID() kernel.UUID {
	return q.approverID
}
