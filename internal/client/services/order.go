package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/hvtran/shopfront/internal/client/models"
)

// ErrEmptyCart is returned by Checkout when there is nothing to order.
var ErrEmptyCart = errors.New("cart is empty")

// OrderAPI is the slice of the API client the order service depends on.
type OrderAPI interface {
	CreateOrder(ctx context.Context, req models.OrderRequest, requestID string) (*models.Order, error)
	MyOrders(ctx context.Context, q models.PageQuery) (*models.Page[models.Order], error)
	Order(ctx context.Context, id int64) (*models.Order, error)
	CancelOrder(ctx context.Context, id int64) (*models.Order, error)
}

// ShippingDetails is the delivery information collected at checkout.
type ShippingDetails struct {
	Address        string
	RecipientName  string
	RecipientPhone string
	Notes          string
}

// OrderService turns the local cart into orders and tracks them.
type OrderService interface {
	// Checkout submits the cart lines as a new order. Each submission gets a
	// fresh idempotency request id so a retried POST cannot double-order.
	Checkout(ctx context.Context, items []models.CartItem, shipping ShippingDetails) (*models.Order, error)
	MyOrders(ctx context.Context, q models.PageQuery) (*models.Page[models.Order], error)
	Get(ctx context.Context, id int64) (*models.Order, error)
	Cancel(ctx context.Context, id int64) (*models.Order, error)
}

type orderService struct {
	api      OrderAPI
	pageSize int
}

func NewOrderService(api OrderAPI, pageSize int) OrderService {
	return &orderService{api: api, pageSize: pageSize}
}

func (s *orderService) Checkout(ctx context.Context, items []models.CartItem, shipping ShippingDetails) (*models.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	req := models.OrderRequest{
		Items:           make([]models.CartItemRequest, 0, len(items)),
		ShippingAddress: shipping.Address,
		RecipientName:   shipping.RecipientName,
		RecipientPhone:  shipping.RecipientPhone,
		Notes:           shipping.Notes,
		PaymentMethod:   models.PaymentMethodCOD,
	}
	for _, item := range items {
		req.Items = append(req.Items, models.CartItemRequest{
			ProductID: item.Product.ID,
			Quantity:  item.Quantity,
		})
	}

	return s.api.CreateOrder(ctx, req, uuid.NewString())
}

func (s *orderService) MyOrders(ctx context.Context, q models.PageQuery) (*models.Page[models.Order], error) {
	if q.Size == 0 {
		q.Size = s.pageSize
	}
	return s.api.MyOrders(ctx, q)
}

func (s *orderService) Get(ctx context.Context, id int64) (*models.Order, error) {
	return s.api.Order(ctx, id)
}

func (s *orderService) Cancel(ctx context.Context, id int64) (*models.Order, error) {
	return s.api.CancelOrder(ctx, id)
}
