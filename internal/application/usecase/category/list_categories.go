package category

import (
	"context"

	"github.com/PoseidonKRL/FINDASH/internal/application/store"
	"github.com/PoseidonKRL/FINDASH/internal/domain/entity"
)

// ListCategoriesInput represents the input for listing categories. ForType,
// when set, restricts the listing to categories offered for transactions of
// that type.
type ListCategoriesInput struct {
	ForType *entity.TransactionType
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*entity.Category
}

// ListCategoriesUseCase handles category listing logic.
type ListCategoriesUseCase struct {
	store *store.Store
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(store *store.Store) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{store: store}
}

// Execute lists categories in insertion order, optionally filtered to the
// type matching a transaction being entered.
func (uc *ListCategoriesUseCase) Execute(_ context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	categories := uc.store.Categories()
	if input.ForType == nil {
		return &ListCategoriesOutput{Categories: categories}, nil
	}

	wanted := entity.CategoryType(*input.ForType)
	filtered := make([]*entity.Category, 0, len(categories))
	for _, category := range categories {
		if category.Type == wanted {
			filtered = append(filtered, category)
		}
	}

	return &ListCategoriesOutput{Categories: filtered}, nil
}
