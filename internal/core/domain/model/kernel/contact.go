package kernel

// Contact is the shipping and contact block copied from a dealer profile into
// an order. It is a plain value: copying it never links the copy to its source,
// so an order can be edited without touching the dealer's defaults.
type Contact struct {
	DealerName string
	ZipCode    string
	Address    string
	Telephone  string
	Recipient  string
}

// WithDestination returns a copy carrying the given destination fields while
// keeping the dealer name, which is not editable on an order. An empty field
// keeps the current value.
func (c Contact) WithDestination(zipCode, address, telephone, recipient string) Contact {
	c.ZipCode = keepIfEmpty(zipCode, c.ZipCode)
	c.Address = keepIfEmpty(address, c.Address)
	c.Telephone = keepIfEmpty(telephone, c.Telephone)
	c.Recipient = keepIfEmpty(recipient, c.Recipient)
	return c
}

func keepIfEmpty(value, current string) string {
	if value == "" {
		return current
	}
	return value
}
