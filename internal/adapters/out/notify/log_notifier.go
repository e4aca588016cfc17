package notify

import (
	"context"

	"dealerorders/internal/core/domain/model/basket"
	"dealerorders/internal/core/domain/model/order"

	"github.com/sirupsen/logrus"
)

// LogNotifier writes every event as one structured log entry. It is always
// enabled so that events are traceable even without mail or Pub/Sub.
type LogNotifier struct {
	log logrus.FieldLogger
}

func NewLogNotifier(log logrus.FieldLogger) *LogNotifier {
	return &LogNotifier{log: log.WithField("component", "notify.log")}
}

func (n *LogNotifier) Notify(_ context.Context, event order.Event, o *order.Order, lines []*basket.BasketItem) error {
	msg := NewMessage(event, o, lines)

	n.log.WithFields(logrus.Fields{
		"event":       msg.Event,
		"order_id":    msg.OrderID,
		"user_id":     msg.UserID,
		"campaign_id": msg.CampaignID,
		"lines":       len(msg.Lines),
		"tracking":    msg.TrackingNumber,
	}).Info("order event")
	return nil
}
