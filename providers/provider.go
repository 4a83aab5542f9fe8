package providers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hasselmann007-dev/pink-store-v2/models"
)

// TransactionResult is the normalized outcome of a successful gateway call.
type TransactionResult struct {
	// Payment is the gateway's full response body, passed through to the
	// client untouched.
	Payment json.RawMessage
	Pix     models.PixInfo
	Status  string
}

// GatewayError is a non-success response from the payment gateway. The
// status code and body are preserved verbatim for the caller.
type GatewayError struct {
	StatusCode int
	Message    string
	Body       json.RawMessage
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway error (status %d): %s", e.StatusCode, e.Message)
}

// PaymentProvider defines the interface a payment gateway integration must
// implement.
type PaymentProvider interface {
	// CreateTransaction submits a PIX charge for the given checkout and
	// server-computed pricing. A *GatewayError is returned when the gateway
	// answers with a non-2xx status.
	CreateTransaction(ctx context.Context, req *models.CheckoutRequest, pricing models.PricingResult) (*TransactionResult, error)
}
