package api

import (
	"context"
	"net/http"
)

const pathOwnedOrders = "/orders/by-owned-products"

type Order struct {
	ID                 ID          `json:"id"`
	OrderSummaryNumber string      `json:"order_summary_number,omitempty"`
	Status             string      `json:"status"`
	UserID             ID          `json:"user_id"`
	User               *OrderUser  `json:"user,omitempty"`
	TotalAmount        Amount      `json:"total_amount"`
	CreatedAt          string      `json:"created_at"`
	Items              []OrderItem `json:"items"`
}

type OrderUser struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type OrderItem struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Price       Amount `json:"price"`
}

// Number is the summary number, or a temporary one built from the id while
// the backend has not assigned it.
func (o Order) Number() string {
	if o.OrderSummaryNumber != "" {
		return o.OrderSummaryNumber
	}
	id := o.ID.String()
	if len(id) > 8 {
		id = id[:8]
	}
	return "TEMP-" + id
}

// Customer is the buyer's name, or the user id when no user was joined.
func (o Order) Customer() string {
	if o.User != nil && o.User.Name != "" {
		return o.User.Name
	}
	return o.UserID.String()
}

// Revenue sums the order totals.
func Revenue(orders []Order) Amount {
	var total Amount
	for _, o := range orders {
		total += o.TotalAmount
	}
	return total
}

// ListOrders returns orders that contain the admin's products.
func (c *Client) ListOrders(ctx context.Context) ([]Order, error) {
	resp, err := c.authenticated(ctx, http.MethodGet, pathOwnedOrders, nil)
	if err != nil {
		return nil, c.fail(err, http.MethodGet, pathOwnedOrders)
	}
	var orders []Order
	if err := decode(resp, &orders); err != nil {
		return nil, c.fail(err, http.MethodGet, pathOwnedOrders)
	}
	return orders, nil
}
