package entity

import (
	"gorm.io/gorm"
)

// Named role groups: manager, customer, delivery_crew.
const (
	GroupManager      = "manager"
	GroupCustomer     = "customer"
	GroupDeliveryCrew = "delivery_crew"
)

type Group struct {
	gorm.Model
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`

	Users []User `gorm:"many2many:user_groups;" json:"-"`
}
