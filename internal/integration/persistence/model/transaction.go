package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/PoseidonKRL/FINDASH/internal/domain/entity"
)

// SubItemRecord is the serialized form of a transaction sub-item.
type SubItemRecord struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// TransactionRecord is the serialized form of a transaction. The transaction
// collection is persisted as an ordered JSON array of these records.
type TransactionRecord struct {
	ID            uuid.UUID        `json:"id"`
	CategoryID    uuid.UUID        `json:"category_id"`
	Type          string           `json:"type"`
	Amount        decimal.Decimal  `json:"amount"`
	Description   string           `json:"description"`
	Date          time.Time        `json:"date"`
	Notes         string           `json:"notes,omitempty"`
	SubItems      []SubItemRecord  `json:"sub_items,omitempty"`
	InitialAmount *decimal.Decimal `json:"initial_amount,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// ToEntity converts a TransactionRecord to a domain Transaction entity.
func (r *TransactionRecord) ToEntity() *entity.Transaction {
	var subItems []entity.SubItem
	if len(r.SubItems) > 0 {
		subItems = make([]entity.SubItem, len(r.SubItems))
		for i, item := range r.SubItems {
			subItems[i] = entity.SubItem{
				ID:          item.ID,
				Description: item.Description,
				Amount:      item.Amount,
			}
		}
	}

	return &entity.Transaction{
		ID:            r.ID,
		CategoryID:    r.CategoryID,
		Type:          entity.TransactionType(r.Type),
		Amount:        r.Amount,
		Description:   r.Description,
		Date:          r.Date,
		Notes:         r.Notes,
		SubItems:      subItems,
		InitialAmount: r.InitialAmount,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionRecord from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionRecord {
	var subItems []SubItemRecord
	if len(transaction.SubItems) > 0 {
		subItems = make([]SubItemRecord, len(transaction.SubItems))
		for i, item := range transaction.SubItems {
			subItems[i] = SubItemRecord{
				ID:          item.ID,
				Description: item.Description,
				Amount:      item.Amount,
			}
		}
	}

	return &TransactionRecord{
		ID:            transaction.ID,
		CategoryID:    transaction.CategoryID,
		Type:          string(transaction.Type),
		Amount:        transaction.Amount,
		Description:   transaction.Description,
		Date:          transaction.Date,
		Notes:         transaction.Notes,
		SubItems:      subItems,
		InitialAmount: transaction.InitialAmount,
		CreatedAt:     transaction.CreatedAt,
		UpdatedAt:     transaction.UpdatedAt,
	}
}
