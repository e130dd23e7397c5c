package entity

import "fmt"

// OrderStatus is the order fulfillment state, stored as text.
type OrderStatus string

const (
	StatusPlaced         OrderStatus = "placed"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
)

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusPlaced, StatusOutForDelivery, StatusDelivered:
		return OrderStatus(s), nil
	}
	return "", fmt.Errorf("invalid order status %q", s)
}
