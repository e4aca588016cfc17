package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"dealerorders/internal/core/domain/model/basket"
	"dealerorders/internal/core/domain/model/order"

	"cloud.google.com/go/pubsub"
)

// PubSubNotifier publishes each event as a JSON Message to a topic. The
// event kind and order id are also set as attributes for subscription filters.
type PubSubNotifier struct {
	topic *pubsub.Topic
}

func NewPubSubNotifier(topic *pubsub.Topic) *PubSubNotifier {
	return &PubSubNotifier{topic: topic}
}

// Notify blocks until the server acknowledges the publish.
func (n *PubSubNotifier) Notify(ctx context.Context, event order.Event, o *order.Order, lines []*basket.BasketItem) error {
	msg := NewMessage(event, o, lines)

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", msg.Event, err)
	}

	result := n.topic.Publish(ctx, &pubsub.Message{
		Data: data,
		Attributes: map[string]string{
			"event":    msg.Event,
			"order_id": msg.OrderID,
		},
	})
	if _, err = result.Get(ctx); err != nil {
		return fmt.Errorf("publish %s event: %w", msg.Event, err)
	}
	return nil
}
