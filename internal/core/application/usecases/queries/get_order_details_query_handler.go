package queries

import (
	"context"
	"database/sql"
	"errors"

	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetOrderDetailsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderDetailsQueryHandler(db *gorm.DB) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{db: db}
}

func (h GetOrderDetailsQueryHandler) Handle(ctx context.Context, query GetOrderDetailsQuery) (OrderDetails, error) {
	if err := query.Validate(); err != nil {
		return OrderDetails{}, err
	}

	db := h.db.WithContext(ctx)

	var (
		details    OrderDetails
		approverID *uuid.UUID
	)
	row := db.Raw(orderSummarySelect+`,
		o.zip_code,
		o.address,
		o.telephone,
		o.recipient,
		c.approver_id
	`+orderSummaryFrom+`
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Row()

	summary, err := scanOrderSummary(row,
		&details.Contact.ZipCode,
		&details.Contact.Address,
		&details.Contact.Telephone,
		&details.Contact.Recipient,
		&approverID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderDetails{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return OrderDetails{}, err
	}

	if !canView(query.UserID(), summary, approverID) {
		return OrderDetails{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	details.OrderSummary = summary
	details.Contact.DealerName = summary.DealerName

	if summary.Status.IsPlaced() {
		details.Lines, err = listBoundLines(db, summary.ID)
	} else {
		details.Lines, err = listOrderLines(db,
			`WHERE b.order_id IS NULL AND b.user_id = ? AND i.campaign_id = ?`,
			summary.UserID.Bytes(), summary.CampaignID.Bytes(),
		)
	}
	if err != nil {
		return OrderDetails{}, err
	}

	return details, nil
}

func canView(userID kernel.UUID, summary OrderSummary, approverID *uuid.UUID) bool {
	switch {
	case summary.UserID.IsEqual(userID):
		return true
	case approverID != nil && *approverID == userID.Bytes():
		return true
	default:
		return summary.Status.IsApproved()
	}
}
