package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderSheetQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderSheetQueryHandler(db *gorm.DB) GetOrderSheetQueryHandler {
	return GetOrderSheetQueryHandler{db: db}
}

func (h GetOrderSheetQueryHandler) Handle(ctx context.Context, query GetOrderSheetQuery) (OrderSheet, error) {
	if err := query.Validate(); err != nil {
		return OrderSheet{}, err
	}

	db := h.db.WithContext(ctx)
	notFound := errs.NewObjectNotFoundError("order sheet", query.OrderID().String())

	var contact kernel.Contact
	row := db.Raw(orderSummarySelect+`,
		o.zip_code,
		o.address,
		o.telephone,
		o.recipient
	`+orderSummaryFrom+`
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Row()

	summary, err := scanOrderSummary(row, &contact.ZipCode, &contact.Address, &contact.Telephone, &contact.Recipient)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderSheet{}, notFound
		}
		return OrderSheet{}, err
	}

	if !summary.Status.IsPlaced() || summary.Status.IsDispatched() {
		return OrderSheet{}, notFound
	}

	lines, err := listBoundLines(db, summary.ID)
	if err != nil {
		return OrderSheet{}, err
	}

	sheet := OrderSheet{
		OrderID:  summary.ID,
		Filename: OrderSheetFilename(summary.CampaignID, *summary.PlacedAt),
		Rows:     make([]OrderSheetRow, 0, len(lines)),
	}
	for _, line := range lines {
		sheet.Rows = append(sheet.Rows, OrderSheetRow{
			DealerName:   summary.DealerName,
			Recipient:    contact.Recipient,
			ZipCode:      contact.ZipCode,
			Address:      contact.Address,
			Telephone:    contact.Telephone,
			CampaignName: summary.CampaignName,
			ItemName:     line.ItemName,
			Nos:          line.Nos,
		})
	}

	return sheet, nil
}

// OrderSheetFilename is order_<campaign id>_<placement date>.xlsx.
func OrderSheetFilename(campaignID kernel.UUID, placedAt time.Time) string {
	return fmt.Sprintf("order_%s_%s.xlsx", campaignID, placedAt.Format(time.DateOnly))
}
