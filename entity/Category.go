package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Title string `gorm:"size:255;uniqueIndex;not null" json:"title"`

	MenuItems []MenuItem `json:"-"`
}
