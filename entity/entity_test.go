package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestMenuItemString(t *testing.T) {
	price, err := decimal.NewFromString("10.00")
	if err != nil {
		t.Fatal(err)
	}
	item := MenuItem{Title: "Pizza", Price: price}
	if got := item.String(); got != "Pizza : 10.00" {
		t.Fatalf("unexpected representation: %q", got)
	}
}

func TestBookingString(t *testing.T) {
	when, err := time.Parse("2006-01-02 15:04", "2023-04-17 20:00")
	if err != nil {
		t.Fatal(err)
	}
	b := Booking{Name: "Michal", NoOfGuests: 1, BookingDate: when}
	if got := b.String(); got != "Michal : 2023-04-17 20:00" {
		t.Fatalf("unexpected representation: %q", got)
	}
}

func TestParseOrderStatus(t *testing.T) {
	for _, valid := range []string{"placed", "out_for_delivery", "delivered"} {
		if _, err := ParseOrderStatus(valid); err != nil {
			t.Fatalf("%s should parse: %v", valid, err)
		}
	}
	if _, err := ParseOrderStatus("shipped"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}
