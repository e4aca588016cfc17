package http_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	httpadapter "dealerorders/internal/adapters/in/http"
	"dealerorders/internal/core/domain/model/basket"
	"dealerorders/internal/core/domain/model/order"
	"dealerorders/internal/core/domain/services"
	"dealerorders/internal/core/ports"
	"dealerorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := map[string]struct {
		err  error
		want int
	}{
		"not_found":          {errs.NewObjectNotFoundError("order", "x"), http.StatusNotFound},
		"empty_basket":       {basket.ErrEmptyBasket, http.StatusNotFound},
		"already_approved":   {order.ErrAlreadyApproved, http.StatusConflict},
		"already_dispatched": {order.ErrAlreadyDispatched, http.StatusConflict},
		"not_approved":       {order.ErrNotApproved, http.StatusConflict},
		"bound_basket_item":  {basket.ErrBasketItemIsBound, http.StatusConflict},
		"lock_busy":          {ports.ErrLockNotObtained, http.StatusConflict},
		"not_approver":       {services.ErrNotApprover, http.StatusForbidden},
		"required":           {errs.NewValueIsRequiredError("name"), http.StatusBadRequest},
		"out_of_range":       {errs.NewValueIsOutOfRangeError("nos", -1, 0, 100), http.StatusBadRequest},
		"wrapped":            {fmt.Errorf("place: %w", order.ErrAlreadyPlaced), http.StatusConflict},
		"joined":             {errors.Join(errs.NewValueIsInvalidError("zip")), http.StatusBadRequest},
		"unknown":            {errors.New("boom"), http.StatusInternalServerError},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, httpadapter.StatusOf(tt.err))
		})
	}
}
