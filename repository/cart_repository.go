package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mwilkosz/Meta-Back-End-Developer/entity"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

// ListForUser reads the user's rows through db so callers can snapshot
// inside a transaction. Ordering by price ("price" or "-price") is optional.
func (r *CartRepository) ListForUser(db *gorm.DB, userID uint, ordering string) ([]entity.Cart, error) {
	q := db.Where("user_id = ?", userID)
	switch ordering {
	case "price":
		q = q.Order("price ASC")
	case "-price":
		q = q.Order("price DESC")
	default:
		q = q.Order("id")
	}
	var rows []entity.Cart
	err := q.Find(&rows).Error
	return rows, err
}

// Exists reports whether the user already holds a row for this menu item.
func (r *CartRepository) Exists(tx *gorm.DB, userID, menuItemID uint) (bool, error) {
	var row entity.Cart
	err := tx.Select("id").
		Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (r *CartRepository) Create(tx *gorm.DB, row *entity.Cart) error {
	return tx.Create(row).Error
}

// Cart rows are deleted for real, not soft-deleted: the unique
// (user_id, menu_item_id) index must not keep tombstones, or the item
// could never be re-added after checkout or clear.

// DeleteForUser clears all of the user's rows and reports how many went away.
func (r *CartRepository) DeleteForUser(tx *gorm.DB, userID uint) (int64, error) {
	res := tx.Unscoped().Where("user_id = ?", userID).Delete(&entity.Cart{})
	return res.RowsAffected, res.Error
}

// DeleteByIDs removes exactly the given rows, so a checkout consumes only
// the rows it snapshotted.
func (r *CartRepository) DeleteByIDs(tx *gorm.DB, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := tx.Unscoped().Where("id IN ?", ids).Delete(&entity.Cart{})
	return res.RowsAffected, res.Error
}
