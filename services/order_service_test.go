package services

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mwilkosz/Meta-Back-End-Developer/entity"
)

func TestCheckoutEmptyCart(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	user := createUser(t, db, "alice", "customer")

	_, err := svc.Checkout(user.ID)
	if !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}
	if err.Error() != "Cart is empty" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestCheckoutTotalsAndClearsCart(t *testing.T) {
	db := newTestDB(t)
	cartSvc := newCartService(db)
	svc := newOrderService(db)
	user := createUser(t, db, "alice", "customer")
	pizza := createMenuItem(t, db, "Pizza", "10.00")
	coke := createMenuItem(t, db, "Coke", "1.99")

	if _, err := cartSvc.Add(user.ID, &AddToCartIn{MenuItemID: pizza.ID, Quantity: 2}); err != nil {
		t.Fatal(err)
	}
	if _, err := cartSvc.Add(user.ID, &AddToCartIn{MenuItemID: coke.ID, Quantity: 3}); err != nil {
		t.Fatal(err)
	}

	order, err := svc.Checkout(user.ID)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	// 2 x 10.00 + 3 x 1.99 = 25.97
	want, _ := decimal.NewFromString("25.97")
	if !order.Total.Equal(want) {
		t.Fatalf("total %s, want %s", order.Total, want)
	}
	if len(order.OrderItems) != 2 {
		t.Fatalf("expected 2 order items, got %d", len(order.OrderItems))
	}
	if order.Status != entity.StatusPlaced {
		t.Fatalf("status %s, want placed", order.Status)
	}

	rows, err := cartSvc.List(user.ID, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 0 {
		t.Fatalf("cart should be empty after checkout, got %d rows", len(rows))
	}
}

func TestReAddAfterCheckout(t *testing.T) {
	db := newTestDB(t)
	cartSvc := newCartService(db)
	svc := newOrderService(db)
	user := createUser(t, db, "alice", "customer")
	pizza := createMenuItem(t, db, "Pizza", "10.00")

	if _, err := cartSvc.Add(user.ID, &AddToCartIn{MenuItemID: pizza.ID, Quantity: 1}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Checkout(user.ID); err != nil {
		t.Fatalf("checkout: %v", err)
	}

	// checkout hard-deletes the rows, so the unique (user, menuitem)
	// index must allow the same item back in
	if _, err := cartSvc.Add(user.ID, &AddToCartIn{MenuItemID: pizza.ID, Quantity: 2}); err != nil {
		t.Fatalf("re-add after checkout: %v", err)
	}
	rows, err := cartSvc.List(user.ID, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].Quantity != 2 {
		t.Fatalf("cart after re-add wrong: %+v", rows)
	}
}

func TestCheckoutConsumesOnlySnapshottedRows(t *testing.T) {
	db := newTestDB(t)
	cartSvc := newCartService(db)
	user := createUser(t, db, "alice", "customer")
	pizza := createMenuItem(t, db, "Pizza", "10.00")
	coke := createMenuItem(t, db, "Coke", "1.99")

	first, err := cartSvc.Add(user.ID, &AddToCartIn{MenuItemID: pizza.ID, Quantity: 1})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cartSvc.Add(user.ID, &AddToCartIn{MenuItemID: coke.ID, Quantity: 1}); err != nil {
		t.Fatal(err)
	}

	// a row added after the checkout snapshot must survive the delete
	if _, err := cartSvc.CartRepo.DeleteByIDs(db, []uint{first.ID}); err != nil {
		t.Fatal(err)
	}
	rows, err := cartSvc.List(user.ID, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].MenuItemID != coke.ID {
		t.Fatalf("unsnapshotted row should survive: %+v", rows)
	}
}

func TestListIsRoleScoped(t *testing.T) {
	db := newTestDB(t)
	cartSvc := newCartService(db)
	svc := newOrderService(db)

	alice := createUser(t, db, "alice", "customer")
	bob := createUser(t, db, "bob", "customer")
	boss := createUser(t, db, "boss", "manager")
	crew := createUser(t, db, "crew", "delivery_crew")
	pizza := createMenuItem(t, db, "Pizza", "10.00")

	for _, u := range []*entity.User{alice, bob} {
		if _, err := cartSvc.Add(u.ID, &AddToCartIn{MenuItemID: pizza.ID, Quantity: 1}); err != nil {
			t.Fatal(err)
		}
		if _, err := svc.Checkout(u.ID); err != nil {
			t.Fatal(err)
		}
	}

	// customer: own orders only
	mine, err := svc.List(alice.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(mine) != 1 || mine[0].User != alice.ID {
		t.Fatalf("customer scoping broken: %+v", mine)
	}

	// manager: everything
	all, err := svc.List(boss.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("manager should see 2 orders, got %d", len(all))
	}

	// crew: nothing until assigned
	assigned, err := svc.List(crew.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(assigned) != 0 {
		t.Fatalf("crew should see 0 unassigned orders, got %d", len(assigned))
	}

	crewID := crew.ID
	if _, err := svc.Update(all[0].ID, &UpdateOrderIn{DeliveryCrew: &crewID}); err != nil {
		t.Fatalf("assign crew: %v", err)
	}
	assigned, err = svc.List(crew.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(assigned) != 1 {
		t.Fatalf("crew should see the assigned order, got %d", len(assigned))
	}
}

func TestDetailScopedNotFound(t *testing.T) {
	db := newTestDB(t)
	cartSvc := newCartService(db)
	svc := newOrderService(db)
	alice := createUser(t, db, "alice", "customer")
	bob := createUser(t, db, "bob", "customer")
	pizza := createMenuItem(t, db, "Pizza", "10.00")

	if _, err := cartSvc.Add(alice.ID, &AddToCartIn{MenuItemID: pizza.ID, Quantity: 1}); err != nil {
		t.Fatal(err)
	}
	order, err := svc.Checkout(alice.ID)
	if err != nil {
		t.Fatal(err)
	}

	// bob must not reach alice's order
	if _, err := svc.Detail(bob.ID, order.ID); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
	if _, err := svc.Detail(alice.ID, order.ID); err != nil {
		t.Fatalf("owner lookup: %v", err)
	}
}

func TestUpdateValidation(t *testing.T) {
	db := newTestDB(t)
	cartSvc := newCartService(db)
	svc := newOrderService(db)
	alice := createUser(t, db, "alice", "customer")
	outsider := createUser(t, db, "outsider", "customer")
	pizza := createMenuItem(t, db, "Pizza", "10.00")

	if _, err := cartSvc.Add(alice.ID, &AddToCartIn{MenuItemID: pizza.ID, Quantity: 1}); err != nil {
		t.Fatal(err)
	}
	order, err := svc.Checkout(alice.ID)
	if err != nil {
		t.Fatal(err)
	}

	bad := "shipped"
	if _, err := svc.Update(order.ID, &UpdateOrderIn{Status: &bad}); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}

	// assignee must belong to delivery_crew
	outsiderID := outsider.ID
	if _, err := svc.Update(order.ID, &UpdateOrderIn{DeliveryCrew: &outsiderID}); !errors.Is(err, ErrNotCrewMember) {
		t.Fatalf("expected ErrNotCrewMember, got %v", err)
	}

	good := "out_for_delivery"
	updated, err := svc.Update(order.ID, &UpdateOrderIn{Status: &good})
	if err != nil {
		t.Fatalf("valid update: %v", err)
	}
	if updated.Status != entity.StatusOutForDelivery {
		t.Fatalf("status %s, want out_for_delivery", updated.Status)
	}
}

func TestDeleteRemovesOrderAndItems(t *testing.T) {
	db := newTestDB(t)
	cartSvc := newCartService(db)
	svc := newOrderService(db)
	alice := createUser(t, db, "alice", "customer")
	pizza := createMenuItem(t, db, "Pizza", "10.00")

	if _, err := cartSvc.Add(alice.ID, &AddToCartIn{MenuItemID: pizza.ID, Quantity: 1}); err != nil {
		t.Fatal(err)
	}
	order, err := svc.Checkout(alice.ID)
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(order.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	var items int64
	db.Model(&entity.OrderItem{}).Where("order_id = ?", order.ID).Count(&items)
	if items != 0 {
		t.Fatalf("order items should be gone, %d left", items)
	}

	if err := svc.Delete(order.ID); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound on double delete, got %v", err)
	}
}
