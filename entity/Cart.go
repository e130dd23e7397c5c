package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Cart is one pending line item owned by one customer. A user may hold at
// most one row per menu item; re-adding is rejected, not merged.
type Cart struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex:idx_cart_user_menuitem" json:"user"`
	User   User `json:"-"`

	MenuItemID uint     `gorm:"uniqueIndex:idx_cart_user_menuitem" json:"menuitem"`
	MenuItem   MenuItem `json:"-"`

	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2)" json:"unit_price"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
}
