package catalog

import (
	"errors"
	"fmt"
	"strings"

	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when using an Item not built by NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
	// ErrItemNameIsRequired is returned for an empty item name.
	ErrItemNameIsRequired = errs.NewValueIsRequiredError("item name")
)

// Attributes are the catalog-admin fields of an Item.
type Attributes struct {
	Name    string
	Remarks string
	// Incl is the inclusion count of one ordered unit.
	Incl int
	// ThreshAutoApp is the largest quantity approved without human review.
	ThreshAutoApp int
	// ThreshStockAlert is the stock level at or below which the item is reported.
	ThreshStockAlert int
	Stock            int
}

// Item is one orderable article of a campaign.
//
// Invariants:
//   - belongs to exactly one campaign
//   - incl and both thresholds are never negative
//   - stock starts non-negative; after dispatch it may drop below zero
type Item struct {
	id         kernel.UUID
	campaignID kernel.UUID
	attrs      Attributes

	isConstructed bool
}

// NewItem creates an item of the given campaign. Initial stock must not be negative.
func NewItem(id, campaignID kernel.UUID, attrs Attributes) (*Item, error) {
	item, err := newItem(id, campaignID, attrs)
	if err = errors.Join(err, validateNonNegative("stock", attrs.Stock)); err != nil {
		return nil, err
	}
	return item, nil
}

// RestoreItem rebuilds a persisted item. Negative stock is accepted because
// dispatch is allowed to oversell.
func RestoreItem(id, campaignID kernel.UUID, attrs Attributes) (*Item, error) {
	return newItem(id, campaignID, attrs)
}

func newItem(id, campaignID kernel.UUID, attrs Attributes) (*Item, error) {
	attrs.Name = strings.TrimSpace(attrs.Name)

	if err := errors.Join(
		id.Validate(),
		campaignID.Validate(),
		validateName(attrs.Name),
		validateNonNegative("incl", attrs.Incl),
		validateNonNegative("thresh_auto_app", attrs.ThreshAutoApp),
		validateNonNegative("thresh_stock_alert", attrs.ThreshStockAlert),
	); err != nil {
		return nil, err
	}

	return &Item{
		id:            id,
		campaignID:    campaignID,
		attrs:         attrs,
		isConstructed: true,
	}, nil
}

func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) CampaignID() kernel.UUID {
	return i.campaignID
}

func (i *Item) Name() string {
	return i.attrs.Name
}

func (i *Item) Remarks() string {
	return i.attrs.Remarks
}

func (i *Item) Incl() int {
	return i.attrs.Incl
}

func (i *Item) ThreshAutoApp() int {
	return i.attrs.ThreshAutoApp
}

func (i *Item) ThreshStockAlert() int {
	return i.attrs.ThreshStockAlert
}

func (i *Item) Stock() int {
	return i.attrs.Stock
}

// Attributes returns a copy of the item's catalog fields.
func (i *Item) Attributes() Attributes {
	return i.attrs
}

// BelongsTo reports whether the item is offered by the given campaign.
func (i *Item) BelongsTo(campaignID kernel.UUID) bool {
	return i.campaignID.IsEqual(campaignID)
}

// CanAutoApprove reports whether nos units are within the auto-approval threshold.
func (i *Item) CanAutoApprove(nos int) bool {
	return i.attrs.ThreshAutoApp >= nos
}

// IsLowOnStock reports whether stock is at or below the stock-alert threshold.
func (i *Item) IsLowOnStock() bool {
	return i.attrs.Stock <= i.attrs.ThreshStockAlert
}

// DecrementStock removes nos units from stock. Availability is not checked.
func (i *Item) DecrementStock(nos int) error {
	if err := validateNonNegative("nos", nos); err != nil {
		return err
	}
	i.attrs.Stock -= nos
	return nil
}

func validateName(name string) error {
	if name == "" {
		return ErrItemNameIsRequired
	}
	return nil
}

func validateNonNegative(param string, value int) error {
	if value < 0 {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%d is negative", value))
	}
	return nil
}
