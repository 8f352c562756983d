package services

import (
	"context"

	"github.com/hvtran/shopfront/internal/client/models"
)

// CatalogAPI is the slice of the API client the catalog service depends on.
type CatalogAPI interface {
	Products(ctx context.Context, q models.ProductQuery) (*models.Page[models.Product], error)
	Product(ctx context.Context, id int64) (*models.Product, error)
	ProductsByCategory(ctx context.Context, categoryID int64, q models.PageQuery) (*models.Page[models.Product], error)
	LatestProducts(ctx context.Context) ([]models.Product, error)
	Categories(ctx context.Context) ([]models.Category, error)
}

// CatalogService exposes product browsing. It fills in the configured
// default page size when the caller did not ask for one.
type CatalogService interface {
	Products(ctx context.Context, q models.ProductQuery) (*models.Page[models.Product], error)
	Product(ctx context.Context, id int64) (*models.Product, error)
	ProductsByCategory(ctx context.Context, categoryID int64, q models.PageQuery) (*models.Page[models.Product], error)
	Latest(ctx context.Context) ([]models.Product, error)
	Categories(ctx context.Context) ([]models.Category, error)
}

type catalogService struct {
	api      CatalogAPI
	pageSize int
}

func NewCatalogService(api CatalogAPI, pageSize int) CatalogService {
	return &catalogService{api: api, pageSize: pageSize}
}

func (s *catalogService) Products(ctx context.Context, q models.ProductQuery) (*models.Page[models.Product], error) {
	if q.Size == 0 {
		q.Size = s.pageSize
	}
	return s.api.Products(ctx, q)
}

func (s *catalogService) Product(ctx context.Context, id int64) (*models.Product, error) {
	return s.api.Product(ctx, id)
}

func (s *catalogService) ProductsByCategory(ctx context.Context, categoryID int64, q models.PageQuery) (*models.Page[models.Product], error) {
	if q.Size == 0 {
		q.Size = s.pageSize
	}
	return s.api.ProductsByCategory(ctx, categoryID, q)
}

func (s *catalogService) Latest(ctx context.Context) ([]models.Product, error) {
	return s.api.LatestProducts(ctx)
}

func (s *catalogService) Categories(ctx context.Context) ([]models.Category, error) {
	return s.api.Categories(ctx)
}
