package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mwilkosz/Meta-Back-End-Developer/entity"
	"github.com/mwilkosz/Meta-Back-End-Developer/repository"
)

// Business-rule failures surfaced verbatim to the caller.
var (
	ErrQuantityInvalid  = errors.New("Quantity cannot be 0 or less than 0.")
	ErrAlreadyInCart    = errors.New("Item is already in the cart.")
	ErrCartAlreadyEmpty = errors.New("Cart is already empty.")
	ErrMenuItemNotFound = errors.New("menu item does not exist")
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuItemRepository
}

func NewCartService(db *gorm.DB, cartRepo *repository.CartRepository, menuRepo *repository.MenuItemRepository) *CartService {
	return &CartService{DB: db, CartRepo: cartRepo, MenuRepo: menuRepo}
}

type AddToCartIn struct {
	MenuItemID uint `json:"menuitem" binding:"required"`
	Quantity   int  `json:"quantity"`
}

// List returns the caller's rows, optionally ordered by price
// ("price" ascending, "-price" descending).
func (s *CartService) List(userID uint, ordering string) ([]entity.Cart, error) {
	return s.CartRepo.ListForUser(s.DB, userID, ordering)
}

// Add freezes unit_price from the current menu item price and rejects a
// second row for the same (user, menuitem) pair. The whole check-and-insert
// runs in one transaction; the unique index backs it up under races.
func (s *CartService) Add(userID uint, in *AddToCartIn) (*entity.Cart, error) {
	if in.Quantity <= 0 {
		return nil, ErrQuantityInvalid
	}

	m, err := s.MenuRepo.FindByID(in.MenuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}

	row := &entity.Cart{
		UserID:     userID,
		MenuItemID: m.ID,
		Quantity:   in.Quantity,
		UnitPrice:  m.Price,
		Price:      m.Price.Mul(decimal.NewFromInt(int64(in.Quantity))),
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		exists, err := s.CartRepo.Exists(tx, userID, m.ID)
		if err != nil {
			return err
		}
		if exists {
			return ErrAlreadyInCart
		}
		return s.CartRepo.Create(tx, row)
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

// Clear deletes every row the user holds; clearing nothing is a client error.
func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		deleted, err := s.CartRepo.DeleteForUser(tx, userID)
		if err != nil {
			return err
		}
		if deleted == 0 {
			return ErrCartAlreadyEmpty
		}
		return nil
	})
}
