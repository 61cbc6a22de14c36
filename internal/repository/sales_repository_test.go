package repository_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/bakery-pos/internal/domain"
	"github.com/nikolayk812/bakery-pos/internal/port"
	"github.com/nikolayk812/bakery-pos/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/text/currency"
)

type salesRepositorySuite struct {
	suite.Suite

	catalog port.CatalogRepository
	sales   port.SalesRepository
	pool    *pgxpool.Pool
}

func TestSalesRepositorySuite(t *testing.T) {
	suite.Run(t, new(salesRepositorySuite))
}

func (suite *salesRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	_, connStr, err := startPostgres(ctx)
	suite.Require().NoError(err)

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.Require().NoError(err)

	suite.catalog, err = repository.NewCatalog(suite.pool, currency.INR)
	suite.Require().NoError(err)

	suite.sales, err = repository.NewSales(suite.pool)
	suite.Require().NoError(err)
}

func (suite *salesRepositorySuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

// before each test: a fresh catalog
func (suite *salesRepositorySuite) SetupTest() {
	suite.deleteAll()

	ctx := suite.T().Context()
	for _, p := range []domain.Product{
		newProduct(1, "Cake", 300, 50, 5),
		newProduct(2, "Pastry", 20, 100, 10),
		newProduct(3, "Milk", 60, 80, 8),
	} {
		suite.Require().NoError(suite.catalog.AddProduct(ctx, p))
	}
}

func (suite *salesRepositorySuite) TestRecordSale() {
	tests := []struct {
		name      string
		saleID    uuid.UUID
		lines     []domain.CartLine
		wantStock map[int32]int32
		wantError error
		wantText  string
	}{
		{
			name:   "two products: ok",
			saleID: uuid.New(),
			lines: []domain.CartLine{
				cartLine(1, "Vanilla Cake", 2, 300),
				cartLine(3, "Milk", 1, 60),
			},
			wantStock: map[int32]int32{1: 48, 2: 100, 3: 79},
		},
		{
			name:   "same product on two lines: ok",
			saleID: uuid.New(),
			lines: []domain.CartLine{
				cartLine(1, "Vanilla Cake", 20, 300),
				cartLine(1, "Chocolate Cake", 30, 300),
			},
			wantStock: map[int32]int32{1: 0, 2: 100, 3: 80},
		},
		{
			name:   "whole stock: ok",
			saleID: uuid.New(),
			lines: []domain.CartLine{
				cartLine(2, "Pastry", 100, 20),
			},
			wantStock: map[int32]int32{1: 50, 2: 0, 3: 80},
		},
		{
			name:   "second line oversells: nothing applied",
			saleID: uuid.New(),
			lines: []domain.CartLine{
				cartLine(3, "Milk", 5, 60),
				cartLine(1, "Vanilla Cake", 51, 300),
			},
			wantStock: map[int32]int32{1: 50, 2: 100, 3: 80},
			wantError: domain.ErrInsufficientStock,
		},
		{
			name:   "unknown product: nothing applied",
			saleID: uuid.New(),
			lines: []domain.CartLine{
				cartLine(2, "Pastry", 1, 20),
				cartLine(9, "Ghost", 1, 1),
			},
			wantStock: map[int32]int32{1: 50, 2: 100, 3: 80},
			wantError: domain.ErrNotFound,
		},
		{
			name:      "empty sale id: error",
			saleID:    uuid.Nil,
			lines:     []domain.CartLine{cartLine(2, "Pastry", 1, 20)},
			wantStock: map[int32]int32{1: 50, 2: 100, 3: 80},
			wantText:  "saleID is empty",
		},
		{
			name:      "no lines: error",
			saleID:    uuid.New(),
			wantStock: map[int32]int32{1: 50, 2: 100, 3: 80},
			wantText:  "lines are empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.SetupTest()

			t := suite.T()
			ctx := t.Context()

			entries, err := suite.sales.RecordSale(ctx, tt.saleID, tt.lines)

			defer suite.assertStock(tt.wantStock)

			if tt.wantText != "" {
				require.EqualError(t, err, tt.wantText)
				return
			}
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)

				logged, err := suite.sales.ListSales(ctx, 100)
				require.NoError(t, err)
				assert.Empty(t, logged)
				return
			}
			require.NoError(t, err)

			require.Len(t, entries, len(tt.lines))
			for i, line := range tt.lines {
				assertAuditEntry(t, domain.AuditEntry{
					SaleID:     tt.saleID,
					ProductID:  line.ProductID,
					ChangeType: domain.ChangeTypeSale,
					Quantity:   line.Quantity,
				}, entries[i])
			}
		})
	}
}

func (suite *salesRepositorySuite) TestRecordSaleInsufficientStockDetails() {
	t := suite.T()
	ctx := t.Context()

	_, err := suite.sales.RecordSale(ctx, uuid.New(), []domain.CartLine{
		cartLine(1, "Vanilla Cake", 40, 300),
		cartLine(1, "Chocolate Cake", 11, 300),
	})

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, domain.InsufficientStockError{ProductID: 1, Requested: 11, Available: 10}, *stockErr)

	suite.assertStock(map[int32]int32{1: 50})
}

func (suite *salesRepositorySuite) TestRecordSaleWithCallerTx() {
	t := suite.T()
	ctx := t.Context()

	tx, err := suite.pool.Begin(ctx)
	require.NoError(t, err)

	entries, err := repository.NewSalesWithTx(tx).RecordSale(ctx, uuid.New(), []domain.CartLine{
		cartLine(1, "Vanilla Cake", 2, 300),
		cartLine(2, "Pastry", 3, 20),
	})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// the caller owns the transaction: rolling it back discards the whole sale
	require.NoError(t, tx.Rollback(ctx))

	suite.assertStock(map[int32]int32{1: 50, 2: 100})

	logged, err := suite.sales.ListSales(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, logged)
}

func (suite *salesRepositorySuite) TestStockConservation() {
	t := suite.T()
	ctx := t.Context()

	sales := [][]domain.CartLine{
		{cartLine(1, "Vanilla Cake", 2, 300), cartLine(3, "Milk", 1, 60)},
		{cartLine(2, "Pastry", 10, 20)},
		{cartLine(1, "Butter_Scotch Cake", 5, 300), cartLine(2, "Pastry", 5, 20), cartLine(3, "Milk", 79, 60)},
	}

	sold := map[int32]int32{}
	for _, lines := range sales {
		_, err := suite.sales.RecordSale(ctx, uuid.New(), lines)
		require.NoError(t, err)

		for _, line := range lines {
			sold[line.ProductID] += line.Quantity
		}
	}

	suite.assertStock(map[int32]int32{1: 50 - sold[1], 2: 100 - sold[2], 3: 80 - sold[3]})

	logged, err := suite.sales.ListSales(ctx, 100)
	require.NoError(t, err)
	require.Len(t, logged, 6)

	// newest first
	assert.Equal(t, int32(3), logged[0].ProductID)
	assert.Equal(t, int32(79), logged[0].Quantity)
	assert.Greater(t, logged[0].ID, logged[5].ID)
}

func (suite *salesRepositorySuite) TestListSales() {
	t := suite.T()
	ctx := t.Context()

	_, err := suite.sales.ListSales(ctx, 0)
	require.EqualError(t, err, "limit[0] is not positive")

	saleID := uuid.New()
	_, err = suite.sales.RecordSale(ctx, saleID, []domain.CartLine{
		cartLine(1, "Vanilla Cake", 1, 300),
		cartLine(2, "Pastry", 2, 20),
		cartLine(3, "Milk", 3, 60),
	})
	require.NoError(t, err)

	logged, err := suite.sales.ListSales(ctx, 2)
	require.NoError(t, err)
	require.Len(t, logged, 2)
	assert.Equal(t, saleID, logged[0].SaleID)
	assert.Equal(t, int32(3), logged[0].ProductID)
	assert.Equal(t, int32(2), logged[1].ProductID)
}

func (suite *salesRepositorySuite) assertStock(want map[int32]int32) {
	t := suite.T()

	for id, stock := range want {
		product, err := suite.catalog.GetProduct(t.Context(), id)
		require.NoError(t, err)
		assert.Equal(t, stock, product.Stock, "stock of product[%d]", id)
		assert.GreaterOrEqual(t, product.Stock, int32(0))
	}
}

func (suite *salesRepositorySuite) deleteAll() {
	_, err := suite.pool.Exec(suite.T().Context(), "TRUNCATE TABLE inventory_log, varieties, workers, products CASCADE")
	suite.NoError(err)
}

func cartLine(productID int32, name string, quantity int32, price int64) domain.CartLine {
	return domain.CartLine{
		ProductID: productID,
		Name:      name,
		Quantity:  quantity,
		UnitPrice: domain.NewMoney(price, currency.INR),
	}
}

func assertAuditEntry(t *testing.T, expected, actual domain.AuditEntry) {
	t.Helper()

	opts := cmp.Options{
		cmpopts.IgnoreFields(domain.AuditEntry{}, "ID", "LoggedAt"),
	}

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)

	assert.Positive(t, actual.ID)
	assert.False(t, actual.LoggedAt.IsZero())
}
