package repository

import (
	"gorm.io/gorm"

	"github.com/mwilkosz/Meta-Back-End-Developer/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// OrderScope is a role-scoped order selection: managers see everything,
// customers their own orders, delivery crew what has a crew assignment.
type OrderScope struct {
	All      bool
	UserID   uint
	CrewOnly bool
}

func (r *OrderRepository) scoped(scope OrderScope) *gorm.DB {
	q := r.DB.Model(&entity.Order{})
	switch {
	case scope.All:
	case scope.CrewOnly:
		q = q.Where("delivery_crew_id IS NOT NULL")
	default:
		q = q.Where("user_id = ?", scope.UserID)
	}
	return q
}

func (r *OrderRepository) List(scope OrderScope) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.scoped(scope).Order("id").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindScoped(scope OrderScope, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.scoped(scope).Where("orders.id = ?", orderID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

// Bulk insert, one statement for all checkout lines.
func (r *OrderRepository) CreateOrderItems(tx *gorm.DB, items []entity.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return tx.Create(&items).Error
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Order("id").Find(&items).Error
	return items, err
}

// GetOrderItemsByOrder fetches the items of many orders in one query,
// keyed by order id, for in-memory joining onto list responses.
func (r *OrderRepository) GetOrderItemsByOrder(orderIDs []uint) (map[uint][]entity.OrderItem, error) {
	out := make(map[uint][]entity.OrderItem, len(orderIDs))
	if len(orderIDs) == 0 {
		return out, nil
	}
	var items []entity.OrderItem
	if err := r.DB.Where("order_id IN ?", orderIDs).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	for _, it := range items {
		out[it.OrderID] = append(out[it.OrderID], it)
	}
	return out, nil
}

func (r *OrderRepository) UpdateFields(orderID uint, updates map[string]any) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", orderID).Updates(updates).Error
}

func (r *OrderRepository) Delete(orderID uint) (int64, error) {
	res := r.DB.Delete(&entity.Order{}, orderID)
	return res.RowsAffected, res.Error
}
