package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Title    string          `gorm:"size:255;not null" json:"title"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Featured bool            `json:"featured"`

	CategoryID uint     `json:"category"`
	Category   Category `json:"-"` // preload only when detail needs it
}

func (m MenuItem) String() string {
	return fmt.Sprintf("%s : %s", m.Title, m.Price)
}
