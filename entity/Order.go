package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	UserID uint `json:"user"`
	User   User `json:"-"`

	// nil until a manager assigns a crew member
	DeliveryCrewID *uint `json:"delivery_crew"`
	DeliveryCrew   *User `gorm:"foreignKey:DeliveryCrewID" json:"-"`

	Status OrderStatus     `gorm:"size:32;not null;default:placed" json:"status"`
	Total  decimal.Decimal `gorm:"type:decimal(10,2)" json:"total"`
	Date   time.Time       `json:"date"`

	OrderItems []OrderItem `json:"-"`
}
