package port

import (
	"context"

	"github.com/nikolayk812/bakery-pos/internal/domain"
)

type CatalogRepository interface {
	GetProduct(ctx context.Context, id int32) (domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListInStock(ctx context.Context) ([]domain.Product, error)
	ListLowStock(ctx context.Context) ([]domain.Product, error)
	AddProduct(ctx context.Context, product domain.Product) error
	UpdateCost(ctx context.Context, id int32, cost domain.Money) error

	AddVariety(ctx context.Context, variety domain.Variety) error
	ListVarieties(ctx context.Context, productID int32) ([]domain.Variety, error)
}
