package steps

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cucumber/godog"

	"github.com/PoseidonKRL/FINDASH/internal/application/usecase/goal"
)

func registerGoalSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I create a goal "([^"]*)" with target ([0-9.]+) and current ([0-9.]+)$`, iCreateAGoal)
	ctx.Step(`^I update the goal's current amount to ([0-9.]+)$`, iUpdateTheGoalCurrentAmount)
	ctx.Step(`^I delete the goal$`, iDeleteTheGoal)
	ctx.Step(`^the goal progress is ([0-9.]+)% with bar width ([0-9.]+)%$`, theGoalProgressIs)
}

func parseFloat(value string) (float64, error) {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", value, err)
	}
	return parsed, nil
}

func iCreateAGoal(ctx context.Context, name, target, current string) error {
	tc := GetTestContext(ctx)

	targetAmount, err := parseFloat(target)
	if err != nil {
		return err
	}
	currentAmount, err := parseFloat(current)
	if err != nil {
		return err
	}

	output, err := tc.injector.CreateGoal.Execute(ctx, goal.CreateGoalInput{
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
	})
	if err != nil {
		return err
	}
	tc.lastGoalID = output.Goal.ID
	return nil
}

func iUpdateTheGoalCurrentAmount(ctx context.Context, current string) error {
	tc := GetTestContext(ctx)

	currentAmount, err := parseFloat(current)
	if err != nil {
		return err
	}

	existing, err := tc.injector.Store.FindGoal(tc.lastGoalID)
	if err != nil {
		return err
	}

	_, err = tc.injector.UpdateGoal.Execute(ctx, goal.UpdateGoalInput{
		ID:            existing.ID,
		Name:          existing.Name,
		Description:   existing.Description,
		TargetAmount:  existing.TargetAmount,
		CurrentAmount: currentAmount,
	})
	return err
}

func iDeleteTheGoal(ctx context.Context) error {
	tc := GetTestContext(ctx)
	return tc.injector.DeleteGoal.Execute(ctx, goal.DeleteGoalInput{ID: tc.lastGoalID})
}

func theGoalProgressIs(ctx context.Context, progress, barWidth string) error {
	tc := GetTestContext(ctx)

	expectedProgress, err := parseFloat(progress)
	if err != nil {
		return err
	}
	expectedBarWidth, err := parseFloat(barWidth)
	if err != nil {
		return err
	}

	output, err := tc.injector.ListGoals.Execute(ctx)
	if err != nil {
		return err
	}
	tc.lastGoals = output

	for _, item := range output.Goals {
		if item.Goal.ID != tc.lastGoalID {
			continue
		}
		if item.Progress != expectedProgress {
			return fmt.Errorf("expected progress %v, got %v", expectedProgress, item.Progress)
		}
		if item.BarWidth != expectedBarWidth {
			return fmt.Errorf("expected bar width %v, got %v", expectedBarWidth, item.BarWidth)
		}
		return nil
	}
	return fmt.Errorf("goal %s not listed", tc.lastGoalID)
}
