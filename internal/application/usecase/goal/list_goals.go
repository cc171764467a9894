package goal

import (
	"context"

	"github.com/PoseidonKRL/FINDASH/internal/application/store"
	"github.com/PoseidonKRL/FINDASH/internal/domain/entity"
)

// GoalWithProgress pairs a goal with its computed progress values. Progress
// is the raw percentage (may exceed 100 when overfunded); BarWidth is the
// same value clamped to [0, 100].
type GoalWithProgress struct {
	Goal     *entity.Goal
	Progress float64
	BarWidth float64
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []GoalWithProgress
}

// ListGoalsUseCase handles goal listing logic.
type ListGoalsUseCase struct {
	store *store.Store
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(store *store.Store) *ListGoalsUseCase {
	return &ListGoalsUseCase{store: store}
}

// Execute lists goals in insertion order with progress computed.
func (uc *ListGoalsUseCase) Execute(_ context.Context) (*ListGoalsOutput, error) {
	goals := uc.store.Goals()
	out := make([]GoalWithProgress, len(goals))
	for i, goal := range goals {
		out[i] = GoalWithProgress{
			Goal:     goal,
			Progress: goal.Progress(),
			BarWidth: goal.ProgressBarWidth(),
		}
	}
	return &ListGoalsOutput{Goals: out}, nil
}
