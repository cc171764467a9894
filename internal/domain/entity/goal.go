// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Goal represents a savings target tracked independently of the transaction
// flow (goals are not automatically funded by transactions).
type Goal struct {
	ID            uuid.UUID
	Name          string
	Description   string
	TargetAmount  float64
	CurrentAmount float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewGoal creates a new Goal entity.
func NewGoal(name, description string, targetAmount, currentAmount float64) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:            uuid.New(),
		Name:          name,
		Description:   description,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Progress returns the raw progress percentage (current / target * 100).
// A non-positive target yields 0 rather than NaN or Inf. The raw value may
// exceed 100 when the goal is overfunded; display text shows it as-is.
func (g *Goal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	return g.CurrentAmount / g.TargetAmount * 100
}

// ProgressBarWidth returns the progress clamped to [0, 100] for use as a
// progress-bar width.
func (g *Goal) ProgressBarWidth() float64 {
	progress := g.Progress()
	if progress > 100 {
		return 100
	}
	if progress < 0 {
		return 0
	}
	return progress
}
