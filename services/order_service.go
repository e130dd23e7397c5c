package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mwilkosz/Meta-Back-End-Developer/entity"
	"github.com/mwilkosz/Meta-Back-End-Developer/repository"
)

var (
	ErrCartEmpty     = errors.New("Cart is empty")
	ErrOrderNotFound = errors.New("Order not found")
	ErrInvalidStatus = errors.New("invalid order status")
	ErrNotCrewMember = errors.New("assignee is not a member of the delivery_crew group")
)

type OrderService struct {
	DB        *gorm.DB
	Repo      *repository.OrderRepository
	CartRepo  *repository.CartRepository
	GroupRepo *repository.GroupRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, cartRepo *repository.CartRepository, groupRepo *repository.GroupRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, GroupRepo: groupRepo}
}

// OrderOut is an order enriched with its nested items, the shape every
// order-returning endpoint responds with.
type OrderOut struct {
	ID           uint               `json:"id"`
	User         uint               `json:"user"`
	DeliveryCrew *uint              `json:"delivery_crew"`
	Status       entity.OrderStatus `json:"status"`
	Total        decimal.Decimal    `json:"total"`
	Date         time.Time          `json:"date"`
	OrderItems   []entity.OrderItem `json:"order_items"`
}

func orderOut(o *entity.Order, items []entity.OrderItem) *OrderOut {
	if items == nil {
		items = []entity.OrderItem{}
	}
	return &OrderOut{
		ID:           o.ID,
		User:         o.UserID,
		DeliveryCrew: o.DeliveryCrewID,
		Status:       o.Status,
		Total:        o.Total,
		Date:         o.Date,
		OrderItems:   items,
	}
}

// listScope resolves the caller's role into an order selection. Group
// precedence follows the permission model: manager wins, then customer,
// then delivery crew. A caller in no group falls back to their own orders.
func (s *OrderService) listScope(userID uint) (repository.OrderScope, error) {
	if ok, err := s.GroupRepo.IsMember(userID, entity.GroupManager); err != nil {
		return repository.OrderScope{}, err
	} else if ok {
		return repository.OrderScope{All: true}, nil
	}
	if ok, err := s.GroupRepo.IsMember(userID, entity.GroupCustomer); err != nil {
		return repository.OrderScope{}, err
	} else if ok {
		return repository.OrderScope{UserID: userID}, nil
	}
	if ok, err := s.GroupRepo.IsMember(userID, entity.GroupDeliveryCrew); err != nil {
		return repository.OrderScope{}, err
	} else if ok {
		return repository.OrderScope{CrewOnly: true}, nil
	}
	return repository.OrderScope{UserID: userID}, nil
}

// singleScope differs from listScope in one respect: for a single-order
// lookup a crew member may reach any order, assigned or not.
func (s *OrderService) singleScope(userID uint) (repository.OrderScope, error) {
	scope, err := s.listScope(userID)
	if err != nil {
		return scope, err
	}
	if scope.CrewOnly {
		return repository.OrderScope{All: true}, nil
	}
	return scope, nil
}

// Checkout converts the caller's cart rows into one order inside a single
// transaction: the rows are snapshotted, the total is the sum of their
// prices, each row becomes one order item, and exactly the snapshotted rows
// are deleted. A row added concurrently is left for the next checkout.
func (s *OrderService) Checkout(userID uint) (*OrderOut, error) {
	var out *OrderOut
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		carts, err := s.CartRepo.ListForUser(tx, userID, "")
		if err != nil {
			return err
		}
		if len(carts) == 0 {
			return ErrCartEmpty
		}

		total := decimal.Zero
		for _, row := range carts {
			total = total.Add(row.Price)
		}

		order := entity.Order{
			UserID: userID,
			Status: entity.StatusPlaced,
			Total:  total,
			Date:   time.Now(),
		}
		if err := s.Repo.Create(tx, &order); err != nil {
			return err
		}

		items := make([]entity.OrderItem, 0, len(carts))
		ids := make([]uint, 0, len(carts))
		for _, row := range carts {
			items = append(items, entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: row.MenuItemID,
				Quantity:   row.Quantity,
				UnitPrice:  row.UnitPrice,
				Price:      row.Price,
			})
			ids = append(ids, row.ID)
		}
		if err := s.Repo.CreateOrderItems(tx, items); err != nil {
			return err
		}

		if _, err := s.CartRepo.DeleteByIDs(tx, ids); err != nil {
			return err
		}

		out = orderOut(&order, items)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List returns the role-scoped orders, each enriched with its items via a
// second query joined in memory.
func (s *OrderService) List(userID uint) ([]OrderOut, error) {
	scope, err := s.listScope(userID)
	if err != nil {
		return nil, err
	}
	orders, err := s.Repo.List(scope)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	itemsByOrder, err := s.Repo.GetOrderItemsByOrder(ids)
	if err != nil {
		return nil, err
	}

	out := make([]OrderOut, 0, len(orders))
	for i := range orders {
		out = append(out, *orderOut(&orders[i], itemsByOrder[orders[i].ID]))
	}
	return out, nil
}

func (s *OrderService) Detail(userID, orderID uint) (*OrderOut, error) {
	scope, err := s.singleScope(userID)
	if err != nil {
		return nil, err
	}
	o, err := s.Repo.FindScoped(scope, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return orderOut(o, items), nil
}

type UpdateOrderIn struct {
	Status       *string `json:"status"`
	DeliveryCrew *uint   `json:"delivery_crew"`
}

// Update changes status and/or delivery crew assignment. The assignee must
// actually belong to the delivery_crew group.
func (s *OrderService) Update(orderID uint, in *UpdateOrderIn) (*OrderOut, error) {
	if _, err := s.Repo.FindScoped(repository.OrderScope{All: true}, orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	updates := map[string]any{}
	if in.Status != nil {
		status, err := entity.ParseOrderStatus(*in.Status)
		if err != nil {
			return nil, wrapErr(ErrInvalidStatus, "invalid order status %q", *in.Status)
		}
		updates["status"] = status
	}
	if in.DeliveryCrew != nil {
		ok, err := s.GroupRepo.IsMember(*in.DeliveryCrew, entity.GroupDeliveryCrew)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrNotCrewMember
		}
		updates["delivery_crew_id"] = *in.DeliveryCrew
	}
	if len(updates) > 0 {
		if err := s.Repo.UpdateFields(orderID, updates); err != nil {
			return nil, err
		}
	}

	o, err := s.Repo.FindScoped(repository.OrderScope{All: true}, orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return orderOut(o, items), nil
}

// Delete removes the order and its items together.
func (s *OrderService) Delete(orderID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&entity.Order{}, orderID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrOrderNotFound
		}
		return nil
	})
}
