package queries

import (
	"dealerorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderLineView is one basket item of an order with its item name.
type OrderLineView struct {
	BasketItemID kernel.UUID
	ItemID       kernel.UUID
	ItemName     string
	Nos          int
}

func listOrderLines(db *gorm.DB, where string, args ...any) ([]OrderLineView, error) {
	lines := make([]OrderLineView, 0)

	rows, err := db.Raw(`
		SELECT b.id, b.item_id, i.name, b.nos
		FROM basket_items b
		JOIN items i ON i.id = b.item_id
	`+where+`
		ORDER BY i.name, b.id
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			line       OrderLineView
			id, itemID uuid.UUID
		)
		if err = rows.Scan(&id, &itemID, &line.ItemName, &line.Nos); err != nil {
			return nil, err
		}

		if line.BasketItemID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if line.ItemID, err = kernel.UUIDFromBytes(itemID[:]); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

func listBoundLines(db *gorm.DB, orderID kernel.UUID) ([]OrderLineView, error) {
	return listOrderLines(db, `WHERE b.order_id = ?`, orderID.Bytes())
}
