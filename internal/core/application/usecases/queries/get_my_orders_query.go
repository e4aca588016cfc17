package queries

import (
	"errors"

	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/pkg/guard"
)

var ErrGetMyOrdersQueryIsNotConstructed = errors.New(
	"GetMyOrdersQuery must be created via NewGetMyOrdersQuery constructor",
)

// GetMyOrdersQuery lists every order of one user: open orders first, then
// placed orders newest first.
type GetMyOrdersQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetMyOrdersQuery(userID kernel.UUID) (GetMyOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetMyOrdersQuery{}, err
	}

	return GetMyOrdersQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetMyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetMyOrdersQueryIsNotConstructed)
}

func (q GetMyOrdersQuery) UserID() kernel.UUID {
	return q.userID
}
