package services

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mwilkosz/Meta-Back-End-Developer/entity"
	"github.com/mwilkosz/Meta-Back-End-Developer/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{}, &entity.Group{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.Cart{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Booking{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	for _, name := range []string{entity.GroupManager, entity.GroupCustomer, entity.GroupDeliveryCrew} {
		if err := db.Create(&entity.Group{Name: name}).Error; err != nil {
			t.Fatalf("seed group %s: %v", name, err)
		}
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string, groups ...string) *entity.User {
	t.Helper()
	user := &entity.User{Username: username, Password: "x"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	for _, name := range groups {
		var g entity.Group
		if err := db.Where("name = ?", name).First(&g).Error; err != nil {
			t.Fatalf("find group %s: %v", name, err)
		}
		if err := db.Model(user).Association("Groups").Append(&g); err != nil {
			t.Fatalf("add %s to %s: %v", username, name, err)
		}
	}
	return user
}

func createMenuItem(t *testing.T, db *gorm.DB, title, price string) *entity.MenuItem {
	t.Helper()
	p, err := decimal.NewFromString(price)
	if err != nil {
		t.Fatal(err)
	}
	category := entity.Category{Title: "Mains-" + title}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	item := &entity.MenuItem{Title: title, Price: p, CategoryID: category.ID}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("create menu item %s: %v", title, err)
	}
	return item
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewMenuItemRepository(db))
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewGroupRepository(db))
}

func newGroupService(db *gorm.DB) *GroupService {
	return NewGroupService(repository.NewUserRepository(db), repository.NewGroupRepository(db))
}
