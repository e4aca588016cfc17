package order

import (
	"time"

	"dealerorders/internal/core/domain/model/kernel"
)

// EventKind names a lifecycle notification.
type EventKind int

const (
	EventUnknown EventKind = iota
	// EventOrderPlaced is raised for every placement.
	EventOrderPlaced
	// EventAutoApproved is raised when placement approved the order by threshold.
	EventAutoApproved
	// EventApproved tells the fulfiller an approved order has arrived. It is
	// raised for manual approval and, in addition to EventAutoApproved, for
	// auto-approval.
	EventApproved
	// EventOrderDispatched is raised on dispatch.
	EventOrderDispatched
	// EventCompleted follows EventOrderDispatched for every dispatch.
	EventCompleted
)

func (k EventKind) String() string {
	switch k {
	case EventOrderPlaced:
		return "OrderPlaced"
	case EventAutoApproved:
		return "AutoApproved"
	case EventApproved:
		return "Approved"
	case EventOrderDispatched:
		return "OrderDispatched"
	case EventCompleted:
		return "Completed"
	case EventUnknown:
	}
	return "Unknown"
}

// Event records one lifecycle change of an order.
type Event struct {
	Kind       EventKind
	OrderID    kernel.UUID
	OccurredAt time.Time
}
