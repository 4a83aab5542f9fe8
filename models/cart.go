package models

// CartItem is a single line in the client-submitted cart. Prices arrive in
// currency units (reais); conversion to cents happens server-side.
type CartItem struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId,omitempty"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
}

// Ref returns the identifier used as the gateway externalRef, preferring
// the explicit product id when the client sends both.
func (i CartItem) Ref() string {
	if i.ProductID != "" {
		return i.ProductID
	}
	return i.ID
}

// Quantity normalizes a missing/zero qty to 1, matching the client contract.
func (i CartItem) Quantity() int {
	if i.Qty <= 0 {
		return 1
	}
	return i.Qty
}

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ShippingAddress struct {
	ZipCode      string `json:"zipCode"`
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
}

// CheckoutRequest is the body of POST /api/checkout.
type CheckoutRequest struct {
	Cart          []CartItem       `json:"cart"`
	Customer      Customer         `json:"customer"`
	Shipping      *ShippingAddress `json:"shipping,omitempty"`
	PaymentMethod string           `json:"paymentMethod"`
	BumpAdded     bool             `json:"bumpAdded"`
}
