package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/PoseidonKRL/FINDASH/internal/application/adapter"
	"github.com/PoseidonKRL/FINDASH/internal/domain/entity"
	domainerror "github.com/PoseidonKRL/FINDASH/internal/domain/error"
	"github.com/PoseidonKRL/FINDASH/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	entries entryStore
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		entries: entryStore{db: db},
	}
}

// Load reads the persisted transaction collection.
func (r *transactionRepository) Load(ctx context.Context) ([]*entity.Transaction, error) {
	value, err := r.entries.read(ctx, KeyTransactions)
	if err != nil {
		return nil, err
	}

	var records []*model.TransactionRecord
	if err := json.Unmarshal([]byte(value), &records); err != nil {
		return nil, fmt.Errorf("%w: transactions: %v", domainerror.ErrCorruptSavedState, err)
	}

	transactions := make([]*entity.Transaction, len(records))
	for i, record := range records {
		transactions[i] = record.ToEntity()
	}
	return transactions, nil
}

// Save persists the full transaction collection.
func (r *transactionRepository) Save(ctx context.Context, transactions []*entity.Transaction) error {
	records := make([]*model.TransactionRecord, len(transactions))
	for i, transaction := range transactions {
		records[i] = model.TransactionFromEntity(transaction)
	}

	value, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode transactions: %w", err)
	}
	return r.entries.write(ctx, KeyTransactions, string(value))
}
