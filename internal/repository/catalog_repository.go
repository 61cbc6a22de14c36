package repository

import (
	"context"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/bakery-pos/internal/db"
	"github.com/nikolayk812/bakery-pos/internal/domain"
	"github.com/nikolayk812/bakery-pos/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type catalogRepository struct {
	q    *db.Queries
	unit currency.Unit
}

func NewCatalog(pool *pgxpool.Pool, unit currency.Unit) (port.CatalogRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &catalogRepository{
		q:    db.New(pool),
		unit: unit,
	}, nil
}

func (r *catalogRepository) GetProduct(ctx context.Context, id int32) (domain.Product, error) {
	row, err := r.q.GetProduct(ctx, id)
	if err != nil {
		return domain.Product{}, mapError(fmt.Sprintf("q.GetProduct[%d]", id), err)
	}

	return mapProductRowToDomain(row, r.unit), nil
}

func (r *catalogRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.q.ListProducts(ctx)
	if err != nil {
		return nil, mapError("q.ListProducts", err)
	}

	return mapProductRowsToDomain(rows, r.unit), nil
}

func (r *catalogRepository) ListInStock(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.q.ListInStockProducts(ctx)
	if err != nil {
		return nil, mapError("q.ListInStockProducts", err)
	}

	return mapProductRowsToDomain(rows, r.unit), nil
}

func (r *catalogRepository) ListLowStock(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.q.ListLowStockProducts(ctx)
	if err != nil {
		return nil, mapError("q.ListLowStockProducts", err)
	}

	return mapProductRowsToDomain(rows, r.unit), nil
}

func (r *catalogRepository) AddProduct(ctx context.Context, product domain.Product) error {
	cost, err := costToDB(product.Cost)
	if err != nil {
		return err
	}

	err = r.q.CreateProduct(ctx, db.CreateProductParams{
		ID:            product.ID,
		Name:          product.Name,
		Cost:          cost,
		StockQuantity: product.Stock,
		MinStockLevel: product.MinStock,
		Size:          product.Size,
	})
	if err != nil {
		return mapError("q.CreateProduct", err)
	}

	return nil
}

func (r *catalogRepository) UpdateCost(ctx context.Context, id int32, cost domain.Money) error {
	dbCost, err := costToDB(cost)
	if err != nil {
		return err
	}

	rowsAffected, err := r.q.UpdateProductCost(ctx, db.UpdateProductCostParams{
		Cost: dbCost,
		ID:   id,
	})
	if err != nil {
		return mapError("q.UpdateProductCost", err)
	}

	if rowsAffected == 0 {
		return domain.NotFoundf("product[%d]", id)
	}

	return nil
}

func (r *catalogRepository) AddVariety(ctx context.Context, variety domain.Variety) error {
	err := r.q.CreateVariety(ctx, db.CreateVarietyParams{
		ID:        variety.ID,
		ProductID: variety.ProductID,
		Name:      variety.Name,
	})
	if err != nil {
		return mapError("q.CreateVariety", err)
	}

	return nil
}

func (r *catalogRepository) ListVarieties(ctx context.Context, productID int32) ([]domain.Variety, error) {
	rows, err := r.q.ListVarieties(ctx, productID)
	if err != nil {
		return nil, mapError("q.ListVarieties", err)
	}

	varieties := make([]domain.Variety, 0, len(rows))
	for _, row := range rows {
		varieties = append(varieties, domain.Variety{
			ID:        row.ID,
			ProductID: row.ProductID,
			Name:      row.Name,
		})
	}

	return varieties, nil
}

// costToDB accepts whole, non-negative amounts that fit the INTEGER column.
func costToDB(cost domain.Money) (int32, error) {
	if !cost.Amount.IsInteger() {
		return 0, domain.Validationf("cost[%s] is not a whole amount", cost.Amount)
	}
	if cost.Amount.IsNegative() || cost.Amount.GreaterThan(decimalMaxInt32) {
		return 0, domain.Validationf("cost[%s] is out of range", cost.Amount)
	}

	return int32(cost.Amount.IntPart()), nil
}

func mapProductRowToDomain(row db.Product, unit currency.Unit) domain.Product {
	return domain.Product{
		ID:       row.ID,
		Name:     row.Name,
		Cost:     domain.NewMoney(int64(row.Cost), unit),
		Stock:    row.StockQuantity,
		MinStock: row.MinStockLevel,
		Size:     row.Size,
	}
}

func mapProductRowsToDomain(rows []db.Product, unit currency.Unit) []domain.Product {
	products := make([]domain.Product, 0, len(rows))

	for _, row := range rows {
		products = append(products, mapProductRowToDomain(row, unit))
	}

	return products
}

var decimalMaxInt32 = decimal.NewFromInt(math.MaxInt32)
