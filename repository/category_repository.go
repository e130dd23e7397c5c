package repository

import (
	"gorm.io/gorm"

	"github.com/mwilkosz/Meta-Back-End-Developer/entity"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) List() ([]entity.Category, error) {
	var categories []entity.Category
	err := r.DB.Order("id").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) Create(category *entity.Category) error {
	return r.DB.Create(category).Error
}
