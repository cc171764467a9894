package steps

import (
	"context"
	"fmt"
	"time"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/PoseidonKRL/FINDASH/internal/application/usecase/report"
)

func registerReportSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I read the monthly summary for "(\d{4})-(\d{2})"$`, iReadTheMonthlySummary)
	ctx.Step(`^the summary shows income ([0-9.]+), expense ([0-9.]+) and net (-?[0-9.]+)$`, theSummaryShows)
	ctx.Step(`^I read the total balance$`, iReadTheTotalBalance)
	ctx.Step(`^the total balance is (-?[0-9.]+)$`, theTotalBalanceIs)
	ctx.Step(`^I read the trend series anchored at "([^"]*)"$`, iReadTheTrendSeries)
	ctx.Step(`^the series has (\d+) points from "([^"]*)" to "([^"]*)"$`, theSeriesSpans)
	ctx.Step(`^the point "([^"]*)" shows income ([0-9.]+) and expense ([0-9.]+)$`, thePointShows)
}

func iReadTheMonthlySummary(ctx context.Context, year, month string) error {
	tc := GetTestContext(ctx)

	date, err := time.Parse("2006-01", year+"-"+month)
	if err != nil {
		return err
	}

	output, err := tc.injector.MonthlySummary.Execute(ctx, report.MonthlySummaryInput{
		Year:  date.Year(),
		Month: date.Month(),
	})
	if err != nil {
		return err
	}
	tc.lastSummary = output
	return nil
}

func theSummaryShows(ctx context.Context, income, expense, net string) error {
	tc := GetTestContext(ctx)

	checks := []struct {
		name     string
		expected string
		actual   decimal.Decimal
	}{
		{"income", income, tc.lastSummary.Income},
		{"expense", expense, tc.lastSummary.Expense},
		{"net", net, tc.lastSummary.Net},
	}
	for _, check := range checks {
		expected, err := decimal.NewFromString(check.expected)
		if err != nil {
			return err
		}
		if !check.actual.Equal(expected) {
			return fmt.Errorf("expected %s %s, got %s", check.name, expected, check.actual)
		}
	}
	return nil
}

func iReadTheTotalBalance(ctx context.Context) error {
	tc := GetTestContext(ctx)

	output, err := tc.injector.TotalBalance.Execute(ctx)
	if err != nil {
		return err
	}
	tc.lastBalance = output
	return nil
}

func theTotalBalanceIs(ctx context.Context, balance string) error {
	tc := GetTestContext(ctx)

	expected, err := decimal.NewFromString(balance)
	if err != nil {
		return err
	}
	if !tc.lastBalance.Balance.Equal(expected) {
		return fmt.Errorf("expected balance %s, got %s", expected, tc.lastBalance.Balance)
	}
	return nil
}

func iReadTheTrendSeries(ctx context.Context, reference string) error {
	tc := GetTestContext(ctx)

	date, err := parseDay(reference)
	if err != nil {
		return err
	}

	output, err := tc.injector.TrendSeries.Execute(ctx, report.TrendSeriesInput{Reference: date})
	if err != nil {
		return err
	}
	tc.lastTrend = output
	return nil
}

func theSeriesSpans(ctx context.Context, count int, firstLabel, lastLabel string) error {
	tc := GetTestContext(ctx)

	points := tc.lastTrend.Points
	if len(points) != count {
		return fmt.Errorf("expected %d points, got %d", count, len(points))
	}
	if points[0].Label != firstLabel {
		return fmt.Errorf("expected first label %q, got %q", firstLabel, points[0].Label)
	}
	if points[len(points)-1].Label != lastLabel {
		return fmt.Errorf("expected last label %q, got %q", lastLabel, points[len(points)-1].Label)
	}
	return nil
}

func thePointShows(ctx context.Context, label, income, expense string) error {
	tc := GetTestContext(ctx)

	expectedIncome, err := decimal.NewFromString(income)
	if err != nil {
		return err
	}
	expectedExpense, err := decimal.NewFromString(expense)
	if err != nil {
		return err
	}

	for _, point := range tc.lastTrend.Points {
		if point.Label != label {
			continue
		}
		if !point.Income.Equal(expectedIncome) {
			return fmt.Errorf("expected %q income %s, got %s", label, expectedIncome, point.Income)
		}
		if !point.Expense.Equal(expectedExpense) {
			return fmt.Errorf("expected %q expense %s, got %s", label, expectedExpense, point.Expense)
		}
		return nil
	}
	return fmt.Errorf("no point labeled %q", label)
}
