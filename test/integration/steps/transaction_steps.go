package steps

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/PoseidonKRL/FINDASH/internal/application/usecase/category"
	"github.com/PoseidonKRL/FINDASH/internal/application/usecase/transaction"
	"github.com/PoseidonKRL/FINDASH/internal/domain/entity"
	domainerror "github.com/PoseidonKRL/FINDASH/internal/domain/error"
)

func registerTransactionSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^an? (expense|income) category named "([^"]*)"$`, aCategoryNamed)
	ctx.Step(`^an? (expense|income) "([^"]*)" of ([0-9.]+) dated "([^"]*)"$`, aSimpleTransaction)
	ctx.Step(`^I create an expense "([^"]*)" of ([0-9.]+) dated "([^"]*)" with sub-items:$`, iCreateAnExpenseWithSubItems)
	ctx.Step(`^I create an income "([^"]*)" dated "([^"]*)" with sub-items:$`, iCreateAnIncomeWithSubItems)
	ctx.Step(`^the transaction amount is ([0-9.]+)$`, theTransactionAmountIs)
	ctx.Step(`^the breakdown has a "([^"]*)" entry of ([0-9.]+)$`, theBreakdownHasEntry)
	ctx.Step(`^the breakdown has no "([^"]*)" entry$`, theBreakdownHasNoEntry)
	ctx.Step(`^the breakdown sums to the transaction amount$`, theBreakdownSums)
	ctx.Step(`^I delete the last transaction$`, iDeleteTheLastTransaction)
	ctx.Step(`^I try to rename the last transaction to "([^"]*)"$`, iTryToRenameTheLastTransaction)
	ctx.Step(`^the operation fails because the transaction is gone$`, theOperationFailsTransactionGone)
	ctx.Step(`^I duplicate the last transaction at "([^"]*)"$`, iDuplicateTheLastTransaction)
}

func parseDay(value string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return date, nil
}

func aCategoryNamed(ctx context.Context, categoryType, name string) error {
	tc := GetTestContext(ctx)

	output, err := tc.injector.CreateCategory.Execute(ctx, category.CreateCategoryInput{
		Name: name,
		Icon: "WalletIcon",
		Type: entity.CategoryType(categoryType),
	})
	if err != nil {
		return err
	}

	tc.categoryIDs[name] = output.Category.ID
	return nil
}

func (tc *TestContext) anyCategoryID() error {
	if len(tc.categoryIDs) == 0 {
		return errors.New("no category has been created in this scenario")
	}
	return nil
}

func buildForm(tc *TestContext, transactionType entity.TransactionType, description, amount, date string) (*transaction.Form, error) {
	if err := tc.anyCategoryID(); err != nil {
		return nil, err
	}

	day, err := parseDay(date)
	if err != nil {
		return nil, err
	}

	form := transaction.NewForm(transactionType)
	form.Description = description
	form.Date = day
	for _, id := range tc.categoryIDs {
		form.CategoryID = id
		break
	}

	if amount != "" {
		value, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q: %w", amount, err)
		}
		form.Amount = value
	}
	return form, nil
}

func rowsFromTable(form *transaction.Form, table *godog.Table) error {
	if len(table.Rows) < 2 {
		return errors.New("the sub-item table needs a header and at least one row")
	}

	form.Rows = nil
	for _, row := range table.Rows[1:] {
		if len(row.Cells) != 2 {
			return errors.New("sub-item rows need description and amount columns")
		}
		amount, err := decimal.NewFromString(row.Cells[1].Value)
		if err != nil {
			return fmt.Errorf("invalid sub-item amount %q: %w", row.Cells[1].Value, err)
		}
		form.Rows = append(form.Rows, transaction.FormRow{
			Description: row.Cells[0].Value,
			Amount:      amount,
		})
	}
	return nil
}

func aSimpleTransaction(ctx context.Context, transactionType, description, amount, date string) error {
	tc := GetTestContext(ctx)

	form, err := buildForm(tc, entity.TransactionType(transactionType), description, amount, date)
	if err != nil {
		return err
	}

	output, err := tc.injector.CreateTransaction.Execute(ctx, transaction.CreateTransactionInput{Form: form})
	if err != nil {
		return err
	}
	tc.lastTxID = output.Transaction.ID
	tc.lastCreated = output
	return nil
}

func iCreateAnExpenseWithSubItems(ctx context.Context, description, amount, date string, table *godog.Table) error {
	tc := GetTestContext(ctx)

	form, err := buildForm(tc, entity.TransactionTypeExpense, description, amount, date)
	if err != nil {
		return err
	}
	if err := rowsFromTable(form, table); err != nil {
		return err
	}

	output, err := tc.injector.CreateTransaction.Execute(ctx, transaction.CreateTransactionInput{Form: form})
	if err != nil {
		return err
	}
	tc.lastTxID = output.Transaction.ID
	tc.lastCreated = output
	return nil
}

func iCreateAnIncomeWithSubItems(ctx context.Context, description, date string, table *godog.Table) error {
	tc := GetTestContext(ctx)

	form, err := buildForm(tc, entity.TransactionTypeIncome, description, "", date)
	if err != nil {
		return err
	}
	if err := rowsFromTable(form, table); err != nil {
		return err
	}

	output, err := tc.injector.CreateTransaction.Execute(ctx, transaction.CreateTransactionInput{Form: form})
	if err != nil {
		return err
	}
	tc.lastTxID = output.Transaction.ID
	tc.lastCreated = output
	return nil
}

func theTransactionAmountIs(ctx context.Context, amount string) error {
	tc := GetTestContext(ctx)
	expected, err := decimal.NewFromString(amount)
	if err != nil {
		return err
	}
	if !tc.lastCreated.Transaction.Amount.Equal(expected) {
		return fmt.Errorf("expected amount %s, got %s", expected, tc.lastCreated.Transaction.Amount)
	}
	return nil
}

func theBreakdownHasEntry(ctx context.Context, description, amount string) error {
	tc := GetTestContext(ctx)
	expected, err := decimal.NewFromString(amount)
	if err != nil {
		return err
	}

	for _, item := range tc.lastCreated.Transaction.SubItems {
		if item.Description == description {
			if !item.Amount.Equal(expected) {
				return fmt.Errorf("expected %q entry of %s, got %s", description, expected, item.Amount)
			}
			return nil
		}
	}
	return fmt.Errorf("no %q entry in the breakdown", description)
}

func theBreakdownHasNoEntry(ctx context.Context, description string) error {
	tc := GetTestContext(ctx)
	for _, item := range tc.lastCreated.Transaction.SubItems {
		if item.Description == description {
			return fmt.Errorf("unexpected %q entry in the breakdown", description)
		}
	}
	return nil
}

func theBreakdownSums(ctx context.Context) error {
	tc := GetTestContext(ctx)
	t := tc.lastCreated.Transaction
	if !t.SubItemsTotal().Equal(t.Amount) {
		return fmt.Errorf("breakdown sums to %s, amount is %s", t.SubItemsTotal(), t.Amount)
	}
	return nil
}

func iDeleteTheLastTransaction(ctx context.Context) error {
	tc := GetTestContext(ctx)
	return tc.injector.DeleteTransaction.Execute(ctx, transaction.DeleteTransactionInput{ID: tc.lastTxID})
}

func iTryToRenameTheLastTransaction(ctx context.Context, description string) error {
	tc := GetTestContext(ctx)

	form := transaction.NewFormFromTransaction(tc.lastCreated.Transaction)
	form.Description = description

	_, err := tc.injector.UpdateTransaction.Execute(ctx, transaction.UpdateTransactionInput{
		ID:   tc.lastTxID,
		Form: form,
	})
	tc.lastErr = err
	return nil
}

func theOperationFailsTransactionGone(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if !errors.Is(tc.lastErr, domainerror.ErrTransactionNotFound) {
		return fmt.Errorf("expected ErrTransactionNotFound, got %v", tc.lastErr)
	}
	return nil
}

func iDuplicateTheLastTransaction(ctx context.Context, date string) error {
	tc := GetTestContext(ctx)
	day, err := parseDay(date)
	if err != nil {
		return err
	}
	_, err = tc.injector.DuplicateTransaction.Execute(ctx, transaction.DuplicateTransactionInput{
		ID:   tc.lastTxID,
		Date: day,
	})
	return err
}
