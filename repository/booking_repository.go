package repository

import (
	"gorm.io/gorm"

	"github.com/mwilkosz/Meta-Back-End-Developer/entity"
)

type BookingRepository struct {
	DB *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{DB: db}
}

func (r *BookingRepository) List() ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := r.DB.Order("booking_date").Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) FindByID(id uint) (*entity.Booking, error) {
	var b entity.Booking
	if err := r.DB.First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) Create(b *entity.Booking) error {
	return r.DB.Create(b).Error
}

func (r *BookingRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&entity.Booking{}, id)
	return res.RowsAffected, res.Error
}
