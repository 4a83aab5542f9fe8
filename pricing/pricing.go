// Package pricing contains the cart pricing rules. It is pure computation
// shared by the checkout service and the gateway payload builder.
package pricing

import (
	"errors"
	"math"

	"github.com/hasselmann007-dev/pink-store-v2/models"
)

// Pricing rules shared with the storefront preview. The server recomputes
// these from the submitted cart on every checkout; the client total is
// never trusted for payment.
const (
	FreeShippingThreshold = 199.90
	BaseShippingFee       = 14.90
	OrderBumpPrice        = 9.90
)

var ErrInvalidCart = errors.New("carrinho vazio ou inválido")

// ComputeTotals derives subtotal, shipping, bump surcharge and total for a
// cart. Shipping is free strictly above the threshold. The total is rounded
// to two decimals and converted to cents with round-half-away-from-zero.
func ComputeTotals(cart []models.CartItem, bumpAdded bool) (models.PricingResult, error) {
	if len(cart) == 0 {
		return models.PricingResult{}, ErrInvalidCart
	}

	var subtotal float64
	for _, item := range cart {
		subtotal += item.Price * float64(item.Quantity())
	}

	shipping := BaseShippingFee
	if subtotal > FreeShippingThreshold {
		shipping = 0
	}

	bump := 0.0
	if bumpAdded {
		bump = OrderBumpPrice
	}

	total := roundCents(subtotal + shipping + bump)

	return models.PricingResult{
		Subtotal:      roundCents(subtotal),
		ShippingCost:  shipping,
		BumpCost:      bump,
		Total:         total,
		AmountInCents: ToCents(total),
	}, nil
}

// ToCents converts a currency amount to integer cents.
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func roundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
