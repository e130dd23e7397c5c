package repository

import (
	"gorm.io/gorm"

	"github.com/mwilkosz/Meta-Back-End-Developer/entity"
)

type MenuItemRepository struct {
	DB *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) *MenuItemRepository {
	return &MenuItemRepository{DB: db}
}

// List menu items, optionally ordered by price ("price" or "-price").
func (r *MenuItemRepository) List(ordering string) ([]entity.MenuItem, error) {
	q := r.DB.Model(&entity.MenuItem{})
	switch ordering {
	case "price":
		q = q.Order("price ASC")
	case "-price":
		q = q.Order("price DESC")
	default:
		q = q.Order("id")
	}
	var items []entity.MenuItem
	err := q.Find(&items).Error
	return items, err
}

func (r *MenuItemRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuItemRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuItemRepository) Update(item *entity.MenuItem) error {
	return r.DB.Save(item).Error
}

func (r *MenuItemRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&entity.MenuItem{}, id)
	return res.RowsAffected, res.Error
}
