package services

import (
	"context"
	"errors"
	"time"

	"github.com/hvtran/shopfront/internal/client/models"
)

// ErrInvalidStatus is returned for a status value the API does not know.
var ErrInvalidStatus = errors.New("invalid status")

// AdminAPI is the slice of the API client the admin service depends on.
type AdminAPI interface {
	AdminUsers(ctx context.Context, q models.PageQuery) (*models.Page[models.User], error)
	AdminSearchUsers(ctx context.Context, q models.PageQuery) (*models.Page[models.User], error)
	AdminCreateUser(ctx context.Context, req models.UserRequest) (*models.User, error)
	AdminUpdateUser(ctx context.Context, id int64, req models.UserRequest) (*models.User, error)
	AdminSetUserStatus(ctx context.Context, id int64, status string) (*models.User, error)
	AdminDeleteUser(ctx context.Context, id int64) error

	CreateProduct(ctx context.Context, req models.ProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int64, req models.ProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	CreateCategory(ctx context.Context, req models.CategoryRequest) (*models.Category, error)
	UpdateCategory(ctx context.Context, id int64, req models.CategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	AdminOrders(ctx context.Context, q models.PageQuery) (*models.Page[models.Order], error)
	AdminOrdersByStatus(ctx context.Context, status string, q models.PageQuery) (*models.Page[models.Order], error)
	AdminSearchOrders(ctx context.Context, q models.PageQuery) (*models.Page[models.Order], error)
	UpdateOrderStatus(ctx context.Context, id int64, status string) (*models.Order, error)

	Statistics(ctx context.Context) (*models.Statistics, error)
	StatisticsRange(ctx context.Context, start, end time.Time) (*models.Statistics, error)
}

// AdminService is the back-office surface: user, product, category and order
// management plus the statistics dashboard. Status values are validated
// client-side before hitting the API.
type AdminService interface {
	Users(ctx context.Context, q models.PageQuery) (*models.Page[models.User], error)
	SearchUsers(ctx context.Context, q models.PageQuery) (*models.Page[models.User], error)
	CreateUser(ctx context.Context, req models.UserRequest) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, req models.UserRequest) (*models.User, error)
	SetUserStatus(ctx context.Context, id int64, status string) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error

	CreateProduct(ctx context.Context, req models.ProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int64, req models.ProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	CreateCategory(ctx context.Context, req models.CategoryRequest) (*models.Category, error)
	UpdateCategory(ctx context.Context, id int64, req models.CategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	Orders(ctx context.Context, q models.PageQuery) (*models.Page[models.Order], error)
	OrdersByStatus(ctx context.Context, status string, q models.PageQuery) (*models.Page[models.Order], error)
	SearchOrders(ctx context.Context, q models.PageQuery) (*models.Page[models.Order], error)
	UpdateOrderStatus(ctx context.Context, id int64, status string) (*models.Order, error)

	Dashboard(ctx context.Context) (*models.Statistics, error)
	StatisticsRange(ctx context.Context, start, end time.Time) (*models.Statistics, error)
}

type adminService struct {
	api      AdminAPI
	pageSize int
}

func NewAdminService(api AdminAPI, pageSize int) AdminService {
	return &adminService{api: api, pageSize: pageSize}
}

func validOrderStatus(status string) bool {
	switch status {
	case models.OrderStatusPending, models.OrderStatusShipping,
		models.OrderStatusCompleted, models.OrderStatusCancelled:
		return true
	}
	return false
}

func validUserStatus(status string) bool {
	switch status {
	case models.UserStatusActive, models.UserStatusInactive, models.UserStatusBanned:
		return true
	}
	return false
}

func (s *adminService) withSize(q models.PageQuery) models.PageQuery {
	if q.Size == 0 {
		q.Size = s.pageSize
	}
	return q
}

func (s *adminService) Users(ctx context.Context, q models.PageQuery) (*models.Page[models.User], error) {
	return s.api.AdminUsers(ctx, s.withSize(q))
}

func (s *adminService) SearchUsers(ctx context.Context, q models.PageQuery) (*models.Page[models.User], error) {
	return s.api.AdminSearchUsers(ctx, s.withSize(q))
}

func (s *adminService) CreateUser(ctx context.Context, req models.UserRequest) (*models.User, error) {
	return s.api.AdminCreateUser(ctx, req)
}

func (s *adminService) UpdateUser(ctx context.Context, id int64, req models.UserRequest) (*models.User, error) {
	return s.api.AdminUpdateUser(ctx, id, req)
}

func (s *adminService) SetUserStatus(ctx context.Context, id int64, status string) (*models.User, error) {
	if !validUserStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.api.AdminSetUserStatus(ctx, id, status)
}

func (s *adminService) DeleteUser(ctx context.Context, id int64) error {
	return s.api.AdminDeleteUser(ctx, id)
}

func (s *adminService) CreateProduct(ctx context.Context, req models.ProductRequest) (*models.Product, error) {
	return s.api.CreateProduct(ctx, req)
}

func (s *adminService) UpdateProduct(ctx context.Context, id int64, req models.ProductRequest) (*models.Product, error) {
	return s.api.UpdateProduct(ctx, id, req)
}

func (s *adminService) DeleteProduct(ctx context.Context, id int64) error {
	return s.api.DeleteProduct(ctx, id)
}

func (s *adminService) CreateCategory(ctx context.Context, req models.CategoryRequest) (*models.Category, error) {
	return s.api.CreateCategory(ctx, req)
}

func (s *adminService) UpdateCategory(ctx context.Context, id int64, req models.CategoryRequest) (*models.Category, error) {
	return s.api.UpdateCategory(ctx, id, req)
}

func (s *adminService) DeleteCategory(ctx context.Context, id int64) error {
	return s.api.DeleteCategory(ctx, id)
}

func (s *adminService) Orders(ctx context.Context, q models.PageQuery) (*models.Page[models.Order], error) {
	return s.api.AdminOrders(ctx, s.withSize(q))
}

func (s *adminService) OrdersByStatus(ctx context.Context, status string, q models.PageQuery) (*models.Page[models.Order], error) {
	if !validOrderStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.api.AdminOrdersByStatus(ctx, status, s.withSize(q))
}

func (s *adminService) SearchOrders(ctx context.Context, q models.PageQuery) (*models.Page[models.Order], error) {
	return s.api.AdminSearchOrders(ctx, s.withSize(q))
}

func (s *adminService) UpdateOrderStatus(ctx context.Context, id int64, status string) (*models.Order, error) {
	if !validOrderStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.api.UpdateOrderStatus(ctx, id, status)
}

func (s *adminService) Dashboard(ctx context.Context) (*models.Statistics, error) {
	return s.api.Statistics(ctx)
}

func (s *adminService) StatisticsRange(ctx context.Context, start, end time.Time) (*models.Statistics, error) {
	return s.api.StatisticsRange(ctx, start, end)
}
