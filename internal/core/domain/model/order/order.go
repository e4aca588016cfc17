package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/pkg/errs"
)

// MaxTrackingNumberLength is the longest tracking number a dispatch accepts.
const MaxTrackingNumberLength = 20

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrTrackingNumberIsRequired is returned by Dispatch for a blank tracking number.
	ErrTrackingNumberIsRequired = errs.NewValueIsRequiredError("tracking number")
)

// Timeline holds the moments an order changed state. A nil field means the
// transition has not happened.
type Timeline struct {
	PlacedAt     *time.Time
	ApprovedAt   *time.Time
	DispatchedAt *time.Time
}

// Order is the aggregate root of the ordering workflow. Its lines are the
// basket items bound to it; the aggregate itself tracks ownership, the
// contact snapshot and the lifecycle.
//
// Order follows these invariants:
//   - owner and campaign never change after creation
//   - the contact snapshot is only writable while the order is Open
//   - status transitions follow Status
//   - every transition appends the matching events, drained with PullEvents
type Order struct {
	id         kernel.UUID
	userID     kernel.UUID
	campaignID kernel.UUID

	contact        kernel.Contact
	trackingNumber string

	status   Status
	timeline Timeline

	events []Event

	isConstructed bool
}

// NewOrder opens a new order of userID for campaignID.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), userID, campaignID)
//	if err != nil {
//	    return err
//	}
//	err = o.SetContact(dealerProfile.Snapshot())
func NewOrder(id, userID, campaignID kernel.UUID) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		userID.Validate(),
		campaignID.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		userID:        userID,
		campaignID:    campaignID,
		status:        Open,
		isConstructed: true,
	}, nil
}

// RestoreOrder rebuilds a persisted order without raising events.
func RestoreOrder(
	id, userID, campaignID kernel.UUID,
	status Status,
	contact kernel.Contact,
	trackingNumber string,
	timeline Timeline,
) (*Order, error) {
	o, err := NewOrder(id, userID, campaignID)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	o.contact = contact
	o.trackingNumber = trackingNumber
	o.timeline = timeline
	return o, nil
}

// Validate ensures the Order instance was built by NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) UserID() kernel.UUID {
	return o.userID
}

func (o *Order) CampaignID() kernel.UUID {
	return o.campaignID
}

// IsOwnedBy reports whether userID placed (or is preparing) the order.
func (o *Order) IsOwnedBy(userID kernel.UUID) bool {
	return o.userID.IsEqual(userID)
}

func (o *Order) Contact() kernel.Contact {
	return o.contact
}

func (o *Order) TrackingNumber() string {
	return o.trackingNumber
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) IsPlaced() bool {
	return o.status.IsPlaced()
}

func (o *Order) IsApproved() bool {
	return o.status.IsApproved()
}

func (o *Order) IsDispatched() bool {
	return o.status.IsDispatched()
}

func (o *Order) Timeline() Timeline {
	return o.timeline
}

// SetContact replaces the contact snapshot. Only Open orders accept it.
func (o *Order) SetContact(contact kernel.Contact) error {
	if o.status != Open {
		return ErrAlreadyPlaced
	}
	o.contact = contact
	return nil
}

// Place submits the order. When autoApproved is set the order is approved in
// the same step and EventAutoApproved and EventApproved are raised before
// EventOrderPlaced.
//
// Binding the lines and deciding autoApproved is the job of the placement
// domain service; Place only moves the state machine.
func (o *Order) Place(autoApproved bool, now time.Time) error {
	newStatus, err := o.status.Place(autoApproved)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.timeline.PlacedAt = &now
	if autoApproved {
		o.timeline.ApprovedAt = &now
		o.raise(EventAutoApproved, now)
		o.raise(EventApproved, now)
	}
	o.raise(EventOrderPlaced, now)
	return nil
}

// Approve records a manual approval of a placed order.
func (o *Order) Approve(now time.Time) error {
	newStatus, err := o.status.Approve()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.timeline.ApprovedAt = &now
	o.raise(EventApproved, now)
	return nil
}

// ValidateDispatch reports, without changing the order, whether Dispatch
// would succeed with trackingNumber.
func (o *Order) ValidateDispatch(trackingNumber string) error {
	if err := o.status.ValidateDispatch(); err != nil {
		return err
	}
	return validateTrackingNumber(trackingNumber)
}

// Dispatch records shipment with its tracking number and raises
// EventOrderDispatched followed by EventCompleted. Stock bookkeeping is done
// by the fulfilment domain service before calling Dispatch.
func (o *Order) Dispatch(trackingNumber string, now time.Time) error {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if err := o.ValidateDispatch(trackingNumber); err != nil {
		return err
	}

	newStatus, err := o.status.Dispatch()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.trackingNumber = trackingNumber
	o.timeline.DispatchedAt = &now
	o.raise(EventOrderDispatched, now)
	o.raise(EventCompleted, now)
	return nil
}

// PullEvents returns the events raised since the last call and forgets them.
func (o *Order) PullEvents() []Event {
	events := o.events
	o.events = nil
	return events
}

func (o *Order) raise(kind EventKind, at time.Time) {
	o.events = append(o.events, Event{Kind: kind, OrderID: o.id, OccurredAt: at})
}

func validateTrackingNumber(trackingNumber string) error {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return ErrTrackingNumberIsRequired
	}
	if n := len([]rune(trackingNumber)); n > MaxTrackingNumberLength {
		return errs.NewValueIsOutOfRangeErrorWithCause("tracking number length", n, 1, MaxTrackingNumberLength,
			fmt.Errorf("tracking number %q is too long", trackingNumber))
	}
	return nil
}
