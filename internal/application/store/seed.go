package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/PoseidonKRL/FINDASH/internal/domain/entity"
)

// seedData holds the starter collections installed when no saved state exists.
type seedData struct {
	Categories   []*entity.Category
	Transactions []*entity.Transaction
	Goals        []*entity.Goal
}

// newSeedData builds the starter data set. Transaction dates are anchored to
// the month of now so the dashboard is populated on first run.
func newSeedData(now time.Time) seedData {
	salary := entity.NewCategory("Salário", entity.IconBriefcase, entity.CategoryTypeIncome)
	freelance := entity.NewCategory("Freelance", entity.IconBanknotes, entity.CategoryTypeIncome)
	gifts := entity.NewCategory("Presentes", entity.IconGift, entity.CategoryTypeIncome)
	groceries := entity.NewCategory("Mercado", entity.IconShoppingCart, entity.CategoryTypeExpense)
	bills := entity.NewCategory("Contas", entity.IconCreditCard, entity.CategoryTypeExpense)
	transport := entity.NewCategory("Transporte", entity.IconStorefront, entity.CategoryTypeExpense)

	categories := []*entity.Category{salary, freelance, gifts, groceries, bills, transport}

	monthDay := func(day int) time.Time {
		return time.Date(now.Year(), now.Month(), day, 12, 0, 0, 0, time.UTC)
	}

	salaryTx := entity.NewTransaction(
		salary.ID,
		entity.TransactionTypeIncome,
		decimal.NewFromInt(3200),
		"Salário mensal",
		monthDay(1),
		"",
		nil,
		nil,
	)

	groceriesInitial := decimal.NewFromInt(450)
	groceriesTx := entity.NewTransaction(
		groceries.ID,
		entity.TransactionTypeExpense,
		groceriesInitial,
		"Compras do mês",
		monthDay(2),
		"Compras da semana no atacado",
		[]entity.SubItem{
			entity.NewSubItem("Feira", decimal.NewFromInt(150)),
			entity.NewSubItem("Açougue", decimal.NewFromInt(200)),
			entity.NewSubItem("Limpeza", decimal.NewFromInt(100)),
		},
		&groceriesInitial,
	)

	rentTx := entity.NewTransaction(
		bills.ID,
		entity.TransactionTypeExpense,
		decimal.NewFromInt(550),
		"Aluguel",
		monthDay(5),
		"",
		nil,
		nil,
	)

	freelanceTx := entity.NewTransaction(
		freelance.ID,
		entity.TransactionTypeIncome,
		decimal.NewFromInt(500),
		"Projeto freelance",
		monthDay(15),
		"",
		nil,
		nil,
	)

	transactions := []*entity.Transaction{salaryTx, groceriesTx, rentTx, freelanceTx}

	goals := []*entity.Goal{
		entity.NewGoal("Reduzir gastos", "Gastar menos com compras por impulso", 1500, 1000),
		entity.NewGoal("Viagem de Férias", "Economizar para a viagem de fim de ano", 5000, 1200),
	}

	return seedData{
		Categories:   categories,
		Transactions: transactions,
		Goals:        goals,
	}
}
