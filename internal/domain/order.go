package domain

import "time"

// OrderStatusConfirmed is the fixed status assigned at checkout.
const OrderStatusConfirmed = "confirmed"

// Order is the immutable snapshot produced by a successful checkout. Items
// and User are copies, not references into live session state. Total is
// exact integer arithmetic: sum of price * quantity * rental months.
type Order struct {
	OrderID      string                 `json:"order_id"`
	User         Profile                `json:"user"`
	Items        []CartLine             `json:"items"`
	RentalPeriod int                    `json:"rental_period"`
	Total        int64                  `json:"total"`
	Address      map[string]interface{} `json:"address"`
	OrderDate    time.Time              `json:"order_date"`
	Status       string                 `json:"status"`
}
