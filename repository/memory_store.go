package repository

import (
	"context"
	"sync"

	"github.com/hasselmann007-dev/pink-store-v2/models"
)

// MemoryPaymentStore keeps payment snapshots in a process-local map. State
// is lost on restart; it exists so a real backend can be swapped in without
// touching the webhook or checkout logic.
type MemoryPaymentStore struct {
	mu      sync.RWMutex
	records map[string]*models.PaymentRecord
}

// NewMemoryPaymentStore creates an empty in-memory store.
func NewMemoryPaymentStore() *MemoryPaymentStore {
	return &MemoryPaymentStore{
		records: make(map[string]*models.PaymentRecord),
	}
}

func (s *MemoryPaymentStore) Record(_ context.Context, transactionID string, update PaymentUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[transactionID] = merge(s.records[transactionID], transactionID, update)
	return nil
}

func (s *MemoryPaymentStore) Get(_ context.Context, transactionID string) (*models.PaymentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[transactionID]
	if !ok {
		return nil, ErrPaymentNotFound
	}

	// Copy so callers cannot mutate the stored snapshot.
	out := *record
	return &out, nil
}
