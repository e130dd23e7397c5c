package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem is a frozen copy of a cart row taken at checkout;
// price = unit_price * quantity as of that moment.
type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"-"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuitem"`
	MenuItem   MenuItem `json:"-"`

	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2)" json:"unit_price"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
}
