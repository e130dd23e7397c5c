package entity

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Booking struct {
	gorm.Model
	Name        string    `gorm:"size:255;not null" json:"name"`
	NoOfGuests  int       `json:"no_of_guests"`
	BookingDate time.Time `json:"booking_date"`
}

func (b Booking) String() string {
	return fmt.Sprintf("%s : %s", b.Name, b.BookingDate.Format("2006-01-02 15:04"))
}
