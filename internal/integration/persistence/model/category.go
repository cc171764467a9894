package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/PoseidonKRL/FINDASH/internal/domain/entity"
)

// CategoryRecord is the serialized form of a category.
type CategoryRecord struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToEntity converts a CategoryRecord to a domain Category entity. The icon
// key is validated here so unknown keys stored on device normalize to the
// default icon at load time.
func (r *CategoryRecord) ToEntity() *entity.Category {
	return &entity.Category{
		ID:        r.ID,
		Name:      r.Name,
		Icon:      entity.ParseCategoryIcon(r.Icon),
		Type:      entity.CategoryType(r.Type),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// CategoryFromEntity creates a CategoryRecord from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryRecord {
	return &CategoryRecord{
		ID:        category.ID,
		Name:      category.Name,
		Icon:      string(category.Icon),
		Type:      string(category.Type),
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}
