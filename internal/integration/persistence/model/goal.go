package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/PoseidonKRL/FINDASH/internal/domain/entity"
)

// GoalRecord is the serialized form of a goal.
type GoalRecord struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	TargetAmount  float64   `json:"target_amount"`
	CurrentAmount float64   `json:"current_amount"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToEntity converts a GoalRecord to a domain Goal entity.
func (r *GoalRecord) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:            r.ID,
		Name:          r.Name,
		Description:   r.Description,
		TargetAmount:  r.TargetAmount,
		CurrentAmount: r.CurrentAmount,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// GoalFromEntity creates a GoalRecord from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalRecord {
	return &GoalRecord{
		ID:            goal.ID,
		Name:          goal.Name,
		Description:   goal.Description,
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		CreatedAt:     goal.CreatedAt,
		UpdatedAt:     goal.UpdatedAt,
	}
}
