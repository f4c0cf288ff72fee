package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/yoave717/yoavsshoes/internal/catalog"
)

type CreateOrderItem struct {
	ShoeModelID int64  `json:"shoeModelId"`
	Size        string `json:"size"`
	Quantity    int    `json:"quantity"`
}

type CreateOrderRequest struct {
	UserID              int64             `json:"userId"`
	Items               []CreateOrderItem `json:"items"`
	ShippingAddressID   int64             `json:"shippingAddressId"`
	SpecialInstructions string            `json:"specialInstructions,omitempty"`
}

type OrderItem struct {
	ID          int64             `json:"id"`
	ShoeModelID int64             `json:"shoeModelId"`
	Size        string            `json:"size"`
	Quantity    int               `json:"quantity"`
	UnitPrice   float64           `json:"unitPrice"`
	TotalPrice  float64           `json:"totalPrice"`
	ShoeModel   catalog.ShoeModel `json:"shoeModel"`
}

type Order struct {
	ID          int64       `json:"id"`
	OrderNumber string      `json:"orderNumber"`
	Status      string      `json:"status"`
	TotalAmount float64     `json:"totalAmount"`
	OrderDate   string      `json:"orderDate"`
	OrderItems  []OrderItem `json:"orderItems"`
}

func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodPost, "/orders", nil, req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// MyOrders pages through the current user's order history.
func (c *Client) MyOrders(ctx context.Context, page, size int) (*catalog.Page[Order], error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("size", strconv.Itoa(size))

	var orders catalog.Page[Order]
	if err := c.do(ctx, http.MethodGet, "/orders/my-orders", params, nil, &orders); err != nil {
		return nil, err
	}
	return &orders, nil
}

// Order fetches a single order by its ID.
func (c *Client) Order(ctx context.Context, orderID int64) (*Order, error) {
	var order Order
	path := "/orders/" + strconv.FormatInt(orderID, 10)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
