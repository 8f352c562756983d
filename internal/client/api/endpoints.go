package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/hvtran/shopfront/internal/client/models"
)

// API paths, matching the backend's route table.
const (
	pathAuthLogin        = "/api/auth/login"
	pathAuthRegister     = "/api/auth/register"
	pathAuthRefreshToken = "/api/auth/refresh-token"
	pathAuthLogout       = "/api/auth/logout"

	pathUsersMe = "/api/users/me"

	pathProducts       = "/api/products"
	pathProductsLatest = "/api/products/latest"

	pathCategories = "/api/categories"

	pathOrders         = "/api/orders"
	pathOrdersMyOrders = "/api/orders/my-orders"

	pathAdminUsers        = "/api/admin/users"
	pathAdminUsersSearch  = "/api/admin/users/search"
	pathAdminOrders       = "/api/admin/orders"
	pathAdminOrdersSearch = "/api/admin/orders/search"

	pathStatisticsDashboard = "/api/statistics/dashboard"
	pathStatisticsDateRange = "/api/statistics/date-range"
)

// --- auth ---

func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	if err := c.do(ctx, http.MethodPost, pathAuthLogin, nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPost, pathAuthRegister, nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, pathAuthLogout, nil, nil, nil)
}

func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, pathUsersMe, nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// --- products ---

func (c *HTTPClient) Products(ctx context.Context, q models.ProductQuery) (*models.Page[models.Product], error) {
	v := pageQueryValues(models.PageQuery{
		Page: q.Page, Size: q.Size, SortBy: q.SortBy, SortDir: q.SortDir, Keyword: q.Keyword,
	})
	if q.CategoryID > 0 {
		v.Set("categoryId", fmt.Sprint(q.CategoryID))
	}
	if q.MinPrice > 0 {
		v.Set("minPrice", fmt.Sprint(q.MinPrice))
	}
	if q.MaxPrice > 0 {
		v.Set("maxPrice", fmt.Sprint(q.MaxPrice))
	}

	var page models.Page[models.Product]
	if err := c.do(ctx, http.MethodGet, pathProducts, v, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *HTTPClient) Product(ctx context.Context, id int64) (*models.Product, error) {
	var p models.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", pathProducts, id), nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) ProductsByCategory(ctx context.Context, categoryID int64, q models.PageQuery) (*models.Page[models.Product], error) {
	var page models.Page[models.Product]
	path := fmt.Sprintf("%s/category/%d", pathProducts, categoryID)
	if err := c.do(ctx, http.MethodGet, path, pageQueryValues(q), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *HTTPClient) LatestProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, pathProductsLatest, nil, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *HTTPClient) CreateProduct(ctx context.Context, req models.ProductRequest) (*models.Product, error) {
	var p models.Product
	if err := c.do(ctx, http.MethodPost, pathProducts, nil, req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) UpdateProduct(ctx context.Context, id int64, req models.ProductRequest) (*models.Product, error) {
	var p models.Product
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", pathProducts, id), nil, req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", pathProducts, id), nil, nil, nil)
}

// --- categories ---

func (c *HTTPClient) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.do(ctx, http.MethodGet, pathCategories, nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *HTTPClient) Category(ctx context.Context, id int64) (*models.Category, error) {
	var cat models.Category
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", pathCategories, id), nil, nil, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *HTTPClient) CreateCategory(ctx context.Context, req models.CategoryRequest) (*models.Category, error) {
	var cat models.Category
	if err := c.do(ctx, http.MethodPost, pathCategories, nil, req, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *HTTPClient) UpdateCategory(ctx context.Context, id int64, req models.CategoryRequest) (*models.Category, error) {
	var cat models.Category
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", pathCategories, id), nil, req, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *HTTPClient) DeleteCategory(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", pathCategories, id), nil, nil, nil)
}

// --- orders ---

// CreateOrder places an order. requestID rides in the X-Request-Id header so
// the server can deduplicate retried submissions.
func (c *HTTPClient) CreateOrder(ctx context.Context, req models.OrderRequest, requestID string) (*models.Order, error) {
	var order models.Order
	headers := map[string]string{requestIDHeader: requestID}
	if err := c.doWithHeaders(ctx, http.MethodPost, pathOrders, nil, req, &order, headers); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *HTTPClient) MyOrders(ctx context.Context, q models.PageQuery) (*models.Page[models.Order], error) {
	var page models.Page[models.Order]
	if err := c.do(ctx, http.MethodGet, pathOrdersMyOrders, pageQueryValues(q), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *HTTPClient) Order(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", pathOrders, id), nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *HTTPClient) CancelOrder(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d/cancel", pathOrders, id), nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// --- admin: users ---

func (c *HTTPClient) AdminUsers(ctx context.Context, q models.PageQuery) (*models.Page[models.User], error) {
	var page models.Page[models.User]
	if err := c.do(ctx, http.MethodGet, pathAdminUsers, pageQueryValues(q), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *HTTPClient) AdminSearchUsers(ctx context.Context, q models.PageQuery) (*models.Page[models.User], error) {
	var page models.Page[models.User]
	if err := c.do(ctx, http.MethodGet, pathAdminUsersSearch, pageQueryValues(q), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *HTTPClient) AdminCreateUser(ctx context.Context, req models.UserRequest) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPost, pathAdminUsers, nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) AdminUpdateUser(ctx context.Context, id int64, req models.UserRequest) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", pathAdminUsers, id), nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) AdminSetUserStatus(ctx context.Context, id int64, status string) (*models.User, error) {
	var user models.User
	path := fmt.Sprintf("%s/%d/status", pathAdminUsers, id)
	v := url.Values{"status": {status}}
	if err := c.do(ctx, http.MethodPut, path, v, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) AdminDeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", pathAdminUsers, id), nil, nil, nil)
}

// --- admin: orders ---

func (c *HTTPClient) AdminOrders(ctx context.Context, q models.PageQuery) (*models.Page[models.Order], error) {
	var page models.Page[models.Order]
	if err := c.do(ctx, http.MethodGet, pathAdminOrders, pageQueryValues(q), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *HTTPClient) AdminOrdersByStatus(ctx context.Context, status string, q models.PageQuery) (*models.Page[models.Order], error) {
	var page models.Page[models.Order]
	path := fmt.Sprintf("%s/status/%s", pathAdminOrders, status)
	if err := c.do(ctx, http.MethodGet, path, pageQueryValues(q), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *HTTPClient) AdminSearchOrders(ctx context.Context, q models.PageQuery) (*models.Page[models.Order], error) {
	var page models.Page[models.Order]
	if err := c.do(ctx, http.MethodGet, pathAdminOrdersSearch, pageQueryValues(q), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *HTTPClient) UpdateOrderStatus(ctx context.Context, id int64, status string) (*models.Order, error) {
	var order models.Order
	path := fmt.Sprintf("%s/%d/status", pathAdminOrders, id)
	req := models.UpdateOrderStatusRequest{Status: status}
	if err := c.do(ctx, http.MethodPut, path, nil, req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// --- statistics ---

func (c *HTTPClient) Statistics(ctx context.Context) (*models.Statistics, error) {
	var stats models.Statistics
	if err := c.do(ctx, http.MethodGet, pathStatisticsDashboard, nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *HTTPClient) StatisticsRange(ctx context.Context, start, end time.Time) (*models.Statistics, error) {
	v := url.Values{
		"startDate": {start.Format(time.RFC3339)},
		"endDate":   {end.Format(time.RFC3339)},
	}
	var stats models.Statistics
	if err := c.do(ctx, http.MethodGet, pathStatisticsDateRange, v, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
