// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/PoseidonKRL/FINDASH/internal/domain/entity"
)

// TransactionRepository defines the persistence port for the transaction
// collection. The collection is stored as one document: Load hydrates the
// whole ordered sequence and Save replaces it.
type TransactionRepository interface {
	// Load reads the persisted transaction collection. It returns
	// domainerror.ErrNoSavedState when nothing has been persisted yet and
	// wraps domainerror.ErrCorruptSavedState when the data cannot be decoded.
	Load(ctx context.Context) ([]*entity.Transaction, error)

	// Save persists the full transaction collection, replacing any previous state.
	Save(ctx context.Context, transactions []*entity.Transaction) error
}
