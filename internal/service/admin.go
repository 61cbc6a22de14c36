package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/nikolayk812/bakery-pos/internal/chart"
	"github.com/nikolayk812/bakery-pos/internal/domain"
	"github.com/nikolayk812/bakery-pos/internal/port"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

type ProductInput struct {
	ID       int32
	Name     string
	Cost     int64
	Stock    int32
	MinStock int32
	Size     string
}

type Admin struct {
	catalog port.CatalogRepository
	sales   port.SalesRepository
	unit    currency.Unit
	logger  *zap.Logger
}

func NewAdmin(catalog port.CatalogRepository, sales port.SalesRepository, unit currency.Unit, logger *zap.Logger) (*Admin, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog is nil")
	}
	if sales == nil {
		return nil, fmt.Errorf("sales is nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	return &Admin{
		catalog: catalog,
		sales:   sales,
		unit:    unit,
		logger:  logger,
	}, nil
}

func (a *Admin) AddProduct(ctx context.Context, in ProductInput) error {
	name := strings.TrimSpace(in.Name)
	switch {
	case in.ID <= 0:
		return domain.Validationf("S.No[%d] must be positive", in.ID)
	case name == "":
		return domain.Validationf("product name is empty")
	case in.Stock < 0:
		return domain.Validationf("stock[%d] is negative", in.Stock)
	case in.MinStock < 0:
		return domain.Validationf("minimum stock[%d] is negative", in.MinStock)
	}
	if err := validateCost(in.Cost); err != nil {
		return err
	}

	size := strings.TrimSpace(in.Size)
	if size == "" {
		size = domain.DefaultSize
	}

	product := domain.Product{
		ID:       in.ID,
		Name:     name,
		Cost:     domain.NewMoney(in.Cost, a.unit),
		Stock:    in.Stock,
		MinStock: in.MinStock,
		Size:     size,
	}
	if err := a.catalog.AddProduct(ctx, product); err != nil {
		return fmt.Errorf("catalog.AddProduct: %w", err)
	}

	a.logger.Info("product added",
		zap.Int32("product_id", product.ID),
		zap.String("name", product.Name),
		zap.Int32("stock", product.Stock))

	return nil
}

func (a *Admin) UpdateCost(ctx context.Context, id int32, cost int64) error {
	if err := validateCost(cost); err != nil {
		return err
	}

	if err := a.catalog.UpdateCost(ctx, id, domain.NewMoney(cost, a.unit)); err != nil {
		return fmt.Errorf("catalog.UpdateCost: %w", err)
	}

	a.logger.Info("cost updated", zap.Int32("product_id", id), zap.Int64("cost", cost))

	return nil
}

func (a *Admin) AddVariety(ctx context.Context, variety domain.Variety) error {
	variety.Name = strings.TrimSpace(variety.Name)
	if variety.Name == "" {
		return domain.Validationf("variety name is empty")
	}

	if err := a.catalog.AddVariety(ctx, variety); err != nil {
		return fmt.Errorf("catalog.AddVariety: %w", err)
	}

	a.logger.Info("variety added",
		zap.Int32("variety_id", variety.ID),
		zap.Int32("product_id", variety.ProductID),
		zap.String("name", variety.Name))

	return nil
}

func (a *Admin) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := a.catalog.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListProducts: %w", err)
	}
	return products, nil
}

func (a *Admin) ListLowStock(ctx context.Context) ([]domain.Product, error) {
	products, err := a.catalog.ListLowStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListLowStock: %w", err)
	}
	return products, nil
}

func (a *Admin) ListSales(ctx context.Context, limit int32) ([]domain.AuditEntry, error) {
	entries, err := a.sales.ListSales(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("sales.ListSales: %w", err)
	}
	return entries, nil
}

// PriceChart writes a bar chart of product name vs cost to path.
func (a *Admin) PriceChart(ctx context.Context, path string) error {
	products, err := a.ListProducts(ctx)
	if err != nil {
		return err
	}

	if err := chart.RenderPrices(products, a.unit, path); err != nil {
		return fmt.Errorf("chart.RenderPrices: %w", err)
	}

	a.logger.Info("price chart rendered", zap.String("path", path), zap.Int("products", len(products)))

	return nil
}

func validateCost(cost int64) error {
	if cost < 0 || cost > math.MaxInt32 {
		return domain.Validationf("cost[%d] is out of range", cost)
	}
	return nil
}
