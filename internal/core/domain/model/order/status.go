package order

import (
	"fmt"

	"dealerorders/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	Open ──> Placed ──> Approved ──> Dispatched
//	  │                    ▲
//	  └────────────────────┘
//	   (auto-approved placement)
//
// Persistence stores the equivalent is_placed / is_approved / is_dispatched
// flags; StatusFromFlags converts them back.
type Status int

const (
	// Unknown is the zero value and never valid.
	Unknown Status = iota
	// Open orders are being prepared from the basket and can still be edited.
	Open
	// Placed orders are submitted and wait for manual approval.
	Placed
	// Approved orders wait for dispatch.
	Approved
	// Dispatched orders are shipped; this is the final state.
	Dispatched
)

var (
	ErrAlreadyPlaced     = errs.NewTransitionIsRejectedError("place", "order is already placed")
	ErrNotPlaced         = errs.NewTransitionIsRejectedError("approve", "order is not placed")
	ErrAlreadyApproved   = errs.NewTransitionIsRejectedError("approve", "order is already approved")
	ErrNotApproved       = errs.NewTransitionIsRejectedError("dispatch", "order is not approved")
	ErrAlreadyDispatched = errs.NewTransitionIsRejectedError("dispatch", "order is already dispatched")
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Open:       "Open",
		Placed:     "Placed",
		Approved:   "Approved",
		Dispatched: "Dispatched",
	}
}

// Validate rejects Unknown and out-of-range values, e.g. from storage.
func (s Status) Validate() error {
	if s < Open || s > Dispatched {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

func (s Status) IsPlaced() bool {
	return s >= Placed && s <= Dispatched
}

func (s Status) IsApproved() bool {
	return s == Approved || s == Dispatched
}

func (s Status) IsDispatched() bool {
	return s == Dispatched
}

// Place transitions an Open order to Placed, or straight to Approved when
// autoApproved is set.
func (s Status) Place(autoApproved bool) (Status, error) {
	if s != Open {
		return 0, ErrAlreadyPlaced
	}
	if autoApproved {
		return Approved, nil
	}
	return Placed, nil
}

// Approve transitions a Placed order to Approved. Re-approval is rejected.
func (s Status) Approve() (Status, error) {
	switch s {
	case Placed:
		return Approved, nil
	case Approved, Dispatched:
		return 0, ErrAlreadyApproved
	case Unknown, Open:
		return 0, ErrNotPlaced
	}
	return 0, s.Validate()
}

// ValidateDispatch checks, without side effects, that the order may be
// dispatched. The dispatched check comes first.
func (s Status) ValidateDispatch() error {
	if s == Dispatched {
		return ErrAlreadyDispatched
	}
	if s != Approved {
		return ErrNotApproved
	}
	return nil
}

// Dispatch transitions an Approved order to Dispatched.
func (s Status) Dispatch() (Status, error) {
	if err := s.ValidateDispatch(); err != nil {
		return 0, err
	}
	return Dispatched, nil
}

// StatusFromFlags converts the persisted flags into a Status, rejecting
// combinations the state machine can not produce.
func StatusFromFlags(isPlaced, isApproved, isDispatched bool) (Status, error) {
	switch {
	case isDispatched && isApproved && isPlaced:
		return Dispatched, nil
	case isDispatched:
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("dispatched order must be placed and approved"))
	case isApproved && isPlaced:
		return Approved, nil
	case isApproved:
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("approved order must be placed"))
	case isPlaced:
		return Placed, nil
	default:
		return Open, nil
	}
}
