package models

import "encoding/json"

// PricingResult is the server-authoritative breakdown of a cart. It is
// recomputed on every checkout and never stored.
type PricingResult struct {
	Subtotal      float64 `json:"subtotal"`
	ShippingCost  float64 `json:"shippingCost"`
	BumpCost      float64 `json:"bumpCost"`
	Total         float64 `json:"total"`
	AmountInCents int64   `json:"amountInCents"`
}

// PixInfo carries the gateway-issued PIX charge the client renders.
type PixInfo struct {
	Qrcode         string `json:"qrcode"`
	ExpirationDate string `json:"expirationDate"`
	Amount         int64  `json:"amount"`
}

// PaymentRecord is the last-known snapshot of a gateway transaction,
// written by the webhook receiver and read by the status endpoint.
type PaymentRecord struct {
	TransactionID   string          `json:"id"`
	Status          string          `json:"status"`
	Amount          int64           `json:"amount"`
	GatewayResponse json.RawMessage `json:"gatewayResponse"`
}

// WebhookEvent is the gateway notification body. The gateway's id field
// name is not contractually fixed, so three candidates are accepted.
type WebhookEvent struct {
	ID            string `json:"id"`
	TransactionID string `json:"transactionId"`
	ReferenceID   string `json:"referenceId"`
	Status        string `json:"status"`
	Amount        *int64 `json:"amount"`
}

// ResolveTransactionID returns the first non-empty id candidate.
func (e WebhookEvent) ResolveTransactionID() string {
	for _, id := range []string{e.ID, e.TransactionID, e.ReferenceID} {
		if id != "" {
			return id
		}
	}
	return ""
}
