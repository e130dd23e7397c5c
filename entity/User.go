package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `json:"email"`
	Password string `json:"-"`

	// membership is the sole authorization signal
	Groups []Group `gorm:"many2many:user_groups;" json:"-"`

	Carts  []Cart  `json:"-"`
	Orders []Order `json:"-"`
}
