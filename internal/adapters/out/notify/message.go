// Package notify delivers order lifecycle events. Each Notifier covers one
// channel (structured log, Pub/Sub topic, SMTP mail) and Fanout combines them.
package notify

import (
	"time"

	"dealerorders/internal/core/domain/model/basket"
	"dealerorders/internal/core/domain/model/order"
)

// Message is the channel-independent payload of one event.
type Message struct {
	Event          string        `json:"event"`
	OrderID        string        `json:"order_id"`
	UserID         string        `json:"user_id"`
	CampaignID     string        `json:"campaign_id"`
	OccurredAt     time.Time     `json:"occurred_at"`
	DealerName     string        `json:"dealer_name"`
	ZipCode        string        `json:"zip_code"`
	Address        string        `json:"address"`
	Telephone      string        `json:"telephone"`
	Recipient      string        `json:"recipient"`
	TrackingNumber string        `json:"tracking_number,omitempty"`
	Lines          []MessageLine `json:"lines"`
}

type MessageLine struct {
	ItemID string `json:"item_id"`
	Nos    int    `json:"nos"`
}

// NewMessage flattens an event with its order and bound lines.
func NewMessage(event order.Event, o *order.Order, lines []*basket.BasketItem) Message {
	contact := o.Contact()

	msg := Message{
		Event:          event.Kind.String(),
		OrderID:        o.ID().String(),
		UserID:         o.UserID().String(),
		CampaignID:     o.CampaignID().String(),
		OccurredAt:     event.OccurredAt,
		DealerName:     contact.DealerName,
		ZipCode:        contact.ZipCode,
		Address:        contact.Address,
		Telephone:      contact.Telephone,
		Recipient:      contact.Recipient,
		TrackingNumber: o.TrackingNumber(),
		Lines:          make([]MessageLine, 0, len(lines)),
	}
	for _, line := range lines {
		msg.Lines = append(msg.Lines, MessageLine{ItemID: line.ItemID().String(), Nos: line.Nos()})
	}
	return msg
}
