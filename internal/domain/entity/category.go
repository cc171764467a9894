// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the type of category (expense or income).
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// CategoryIcon identifies the icon rendered for a category. The set is
// closed: icon keys are validated when categories are created or hydrated
// from storage, and unknown keys normalize to DefaultCategoryIcon.
type CategoryIcon string

const (
	IconBriefcase    CategoryIcon = "BriefcaseIcon"
	IconBanknotes    CategoryIcon = "BanknotesIcon"
	IconGift         CategoryIcon = "GiftIcon"
	IconShoppingCart CategoryIcon = "ShoppingCartIcon"
	IconStorefront   CategoryIcon = "BuildingStorefrontIcon"
	IconCreditCard   CategoryIcon = "CreditCardIcon"
	IconHome         CategoryIcon = "HomeIcon"
	IconWallet       CategoryIcon = "WalletIcon"
	IconCurrency     CategoryIcon = "CurrencyDollarIcon"
	IconChartBar     CategoryIcon = "ChartBarIcon"
	IconFlag         CategoryIcon = "FlagIcon"
	IconUser         CategoryIcon = "UserIcon"
)

// DefaultCategoryIcon is the icon used when a category carries an unknown
// icon key.
const DefaultCategoryIcon = IconWallet

var knownIcons = map[CategoryIcon]struct{}{
	IconBriefcase:    {},
	IconBanknotes:    {},
	IconGift:         {},
	IconShoppingCart: {},
	IconStorefront:   {},
	IconCreditCard:   {},
	IconHome:         {},
	IconWallet:       {},
	IconCurrency:     {},
	IconChartBar:     {},
	IconFlag:         {},
	IconUser:         {},
}

// ParseCategoryIcon maps an icon key to a member of the closed icon set,
// normalizing unknown keys to DefaultCategoryIcon.
func ParseCategoryIcon(key string) CategoryIcon {
	icon := CategoryIcon(key)
	if _, ok := knownIcons[icon]; ok {
		return icon
	}
	return DefaultCategoryIcon
}

// Category represents a transaction category in FINDASH. Categories are
// filtered by type when offered as choices for a transaction of that type.
type Category struct {
	ID        uuid.UUID
	Name      string
	Icon      CategoryIcon
	Type      CategoryType
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity. Icon normalization should be
// applied by the caller (use case layer) before calling this constructor.
func NewCategory(name string, icon CategoryIcon, categoryType CategoryType) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Icon:      icon,
		Type:      categoryType,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
