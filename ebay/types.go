package ebay

// Order is one entry of the Fulfillment API order listing. Only the
// fields needed for packing and label printing are mapped.
type Order struct {
	OrderID                      string                        `json:"orderId"`
	CreationDate                 string                        `json:"creationDate"`
	OrderFulfillmentStatus       string                        `json:"orderFulfillmentStatus"`
	Buyer                        Buyer                         `json:"buyer"`
	FulfillmentStartInstructions []FulfillmentStartInstruction `json:"fulfillmentStartInstructions"`
	LineItems                    []LineItem                    `json:"lineItems"`
}

// Buyer identifies the purchasing account.
type Buyer struct {
	Username string `json:"username"`
}

// LineItem is one purchased item within an order.
type LineItem struct {
	Title    string `json:"title"`
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

// FulfillmentStartInstruction carries the shipping details for an
// order. Orders normally have exactly one.
type FulfillmentStartInstruction struct {
	ShippingStep ShippingStep `json:"shippingStep"`
}

// ShippingStep wraps the destination address.
type ShippingStep struct {
	ShipTo ShipTo `json:"shipTo"`
}

// ShipTo is the buyer's delivery address.
type ShipTo struct {
	FullName       string         `json:"fullName"`
	ContactAddress ContactAddress `json:"contactAddress"`
}

// ContactAddress is a postal address as returned by the API.
type ContactAddress struct {
	AddressLine1    string `json:"addressLine1"`
	AddressLine2    string `json:"addressLine2"`
	City            string `json:"city"`
	StateOrProvince string `json:"stateOrProvince"`
	PostalCode      string `json:"postalCode"`
	CountryCode     string `json:"countryCode"`
}

// ShipToAddress returns the order's delivery address and whether one
// was present.
func (o *Order) ShipToAddress() (ShipTo, bool) {
	if len(o.FulfillmentStartInstructions) == 0 {
		return ShipTo{}, false
	}
	st := o.FulfillmentStartInstructions[0].ShippingStep.ShipTo
	if st.FullName == "" && st.ContactAddress.AddressLine1 == "" {
		return ShipTo{}, false
	}
	return st, true
}

// Lines renders the address as printable lines, skipping blanks.
func (s ShipTo) Lines() []string {
	a := s.ContactAddress
	lines := make([]string, 0, 5)
	for _, l := range []string{
		s.FullName,
		a.AddressLine1,
		a.AddressLine2,
	} {
		if l != "" {
			lines = append(lines, l)
		}
	}
	cityLine := a.City
	if a.StateOrProvince != "" {
		cityLine += ", " + a.StateOrProvince
	}
	if a.PostalCode != "" {
		cityLine += " " + a.PostalCode
	}
	if cityLine != "" {
		lines = append(lines, cityLine)
	}
	if a.CountryCode != "" {
		lines = append(lines, a.CountryCode)
	}
	return lines
}

type ordersResponse struct {
	Orders []Order `json:"orders"`
	Total  int     `json:"total"`
	Limit  int     `json:"limit"`
	Offset int     `json:"offset"`
}
