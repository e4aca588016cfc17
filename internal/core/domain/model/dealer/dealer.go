// Package dealer models the ordering party's profile: identity fields and the
// default shipping contact that is copied into each new order.
package dealer

import (
	"errors"
	"strings"

	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/pkg/errs"
)

var (
	// ErrDealerIsNotConstructed is returned when using a Dealer not built by NewDealer or RestoreDealer.
	ErrDealerIsNotConstructed = errors.New("Dealer must be created via NewDealer constructor")
	// ErrDealerNameIsRequired is returned for an empty dealer name.
	ErrDealerNameIsRequired = errs.NewValueIsRequiredError("dealer name")
)

// Identity holds the descriptive fields of a dealer.
type Identity struct {
	Name       string
	AbbName    string
	DealerCode string
}

// DefaultsOptIn selects which edited order fields are written back as the
// dealer's new defaults when an order is placed.
type DefaultsOptIn struct {
	ZipAndAddress bool
	Telephone     bool
	Recipient     bool
}

// Any reports whether at least one write-back was requested.
func (o DefaultsOptIn) Any() bool {
	return o.ZipAndAddress || o.Telephone || o.Recipient
}

// Dealer is the persisted default shipping identity of one user.
type Dealer struct {
	id       kernel.UUID
	userID   kernel.UUID
	identity Identity
	defaults kernel.Contact

	isConstructed bool
}

// NewDealer creates the profile of userID. The DealerName of defaults is
// ignored; it always mirrors identity.Name.
func NewDealer(id, userID kernel.UUID, identity Identity, defaults kernel.Contact) (*Dealer, error) {
	identity.Name = strings.TrimSpace(identity.Name)

	if err := errors.Join(
		id.Validate(),
		userID.Validate(),
		validateName(identity.Name),
	); err != nil {
		return nil, err
	}

	defaults.DealerName = identity.Name
	return &Dealer{
		id:            id,
		userID:        userID,
		identity:      identity,
		defaults:      defaults,
		isConstructed: true,
	}, nil
}

// RestoreDealer rebuilds a persisted profile.
func RestoreDealer(id, userID kernel.UUID, identity Identity, defaults kernel.Contact) (*Dealer, error) {
	return NewDealer(id, userID, identity, defaults)
}

func (d *Dealer) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDealerIsNotConstructed
	}
	return nil
}

func (d *Dealer) ID() kernel.UUID {
	return d.id
}

func (d *Dealer) UserID() kernel.UUID {
	return d.userID
}

func (d *Dealer) Identity() Identity {
	return d.identity
}

// Snapshot returns a value copy of the defaults for a new order.
func (d *Dealer) Snapshot() kernel.Contact {
	return d.defaults
}

// ApplyDefaults copies the opted-in fields of edited onto the profile and
// reports whether anything was requested. This is the only write path to
// the defaults.
func (d *Dealer) ApplyDefaults(edited kernel.Contact, optIn DefaultsOptIn) bool {
	if optIn.ZipAndAddress {
		d.defaults.ZipCode = edited.ZipCode
		d.defaults.Address = edited.Address
	}
	if optIn.Telephone {
		d.defaults.Telephone = edited.Telephone
	}
	if optIn.Recipient {
		d.defaults.Recipient = edited.Recipient
	}
	return optIn.Any()
}

func validateName(name string) error {
	if name == "" {
		return ErrDealerNameIsRequired
	}
	return nil
}
