// Package category contains category-related use cases.
package category

import (
	"context"
	"strings"

	"github.com/PoseidonKRL/FINDASH/internal/application/store"
	"github.com/PoseidonKRL/FINDASH/internal/domain/entity"
	domainerror "github.com/PoseidonKRL/FINDASH/internal/domain/error"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Name string
	Icon string
	Type entity.CategoryType
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	store *store.Store
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(store *store.Store) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{store: store}
}

// Execute performs the category creation. Unknown icon keys normalize to the
// default icon rather than failing.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeMissingCategoryName,
			"name is required",
			domainerror.ErrMissingCategoryName,
		)
	}

	if input.Type != entity.CategoryTypeExpense && input.Type != entity.CategoryTypeIncome {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryType,
			"type must be 'expense' or 'income'",
			domainerror.ErrInvalidCategoryType,
		)
	}

	category := entity.NewCategory(name, entity.ParseCategoryIcon(input.Icon), input.Type)
	uc.store.AddCategory(ctx, category)

	return &CreateCategoryOutput{Category: category}, nil
}
