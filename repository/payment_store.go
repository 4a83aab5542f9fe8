package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/hasselmann007-dev/pink-store-v2/models"
)

// ErrPaymentNotFound is returned by Get for an unknown transaction id.
var ErrPaymentNotFound = errors.New("pagamento não encontrado")

// PaymentUpdate is a webhook-delivered change. Gateways may send partial
// updates, so zero-value fields mean "leave the stored value alone".
type PaymentUpdate struct {
	Status          string
	Amount          *int64
	GatewayResponse json.RawMessage
}

// PaymentStore maps transaction ids to their last-known payment snapshot.
// Implementations must support concurrent upsert and lookup by key.
type PaymentStore interface {
	// Record merges an update into the stored snapshot. New status/amount
	// values overwrite prior ones; omitted values are preserved. The raw
	// gateway payload is always replaced with the latest event.
	Record(ctx context.Context, transactionID string, update PaymentUpdate) error

	// Get returns the snapshot for a transaction, or ErrPaymentNotFound.
	Get(ctx context.Context, transactionID string) (*models.PaymentRecord, error)
}

// merge applies the update on top of the prior snapshot (which may be nil).
func merge(prior *models.PaymentRecord, transactionID string, update PaymentUpdate) *models.PaymentRecord {
	record := &models.PaymentRecord{
		TransactionID: transactionID,
		Status:        "unknown",
	}
	if prior != nil {
		record.Status = prior.Status
		record.Amount = prior.Amount
	}

	if update.Status != "" {
		record.Status = update.Status
	}
	if update.Amount != nil {
		record.Amount = *update.Amount
	}
	record.GatewayResponse = update.GatewayResponse

	return record
}
