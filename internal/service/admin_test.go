package service_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nikolayk812/bakery-pos/internal/domain"
	"github.com/nikolayk812/bakery-pos/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

func newAdmin(t *testing.T, catalog *mockCatalog, sales *mockSales) *service.Admin {
	t.Helper()

	admin, err := service.NewAdmin(catalog, sales, currency.INR, zap.NewNop())
	require.NoError(t, err)
	return admin
}

func TestAdminAddProduct(t *testing.T) {
	tests := []struct {
		name        string
		input       service.ProductInput
		repoErr     error
		wantProduct domain.Product
		wantError   error
	}{
		{
			name:  "add product: ok",
			input: service.ProductInput{ID: 7, Name: " Donut ", Cost: 45, Stock: 20, MinStock: 4, Size: "Small"},
			wantProduct: domain.Product{
				ID: 7, Name: "Donut", Cost: domain.NewMoney(45, currency.INR), Stock: 20, MinStock: 4, Size: "Small",
			},
		},
		{
			name:  "empty size defaults to regular: ok",
			input: service.ProductInput{ID: 8, Name: "Bread", Cost: 40, Stock: 10, MinStock: 2},
			wantProduct: domain.Product{
				ID: 8, Name: "Bread", Cost: domain.NewMoney(40, currency.INR), Stock: 10, MinStock: 2, Size: domain.DefaultSize,
			},
		},
		{
			name:      "duplicate id: already exists",
			input:     service.ProductInput{ID: 1, Name: "Cake", Cost: 300, Stock: 1, MinStock: 1},
			repoErr:   domain.ErrAlreadyExists,
			wantError: domain.ErrAlreadyExists,
			wantProduct: domain.Product{
				ID: 1, Name: "Cake", Cost: domain.NewMoney(300, currency.INR), Stock: 1, MinStock: 1, Size: domain.DefaultSize,
			},
		},
		{
			name:      "empty name: validation error",
			input:     service.ProductInput{ID: 9, Name: "  ", Cost: 1},
			wantError: domain.ErrValidation,
		},
		{
			name:      "zero id: validation error",
			input:     service.ProductInput{ID: 0, Name: "Bun", Cost: 1},
			wantError: domain.ErrValidation,
		},
		{
			name:      "negative cost: validation error",
			input:     service.ProductInput{ID: 9, Name: "Bun", Cost: -1},
			wantError: domain.ErrValidation,
		},
		{
			name:      "negative stock: validation error",
			input:     service.ProductInput{ID: 9, Name: "Bun", Cost: 1, Stock: -1},
			wantError: domain.ErrValidation,
		},
		{
			name:      "negative minimum stock: validation error",
			input:     service.ProductInput{ID: 9, Name: "Bun", Cost: 1, MinStock: -1},
			wantError: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := new(mockCatalog)
			if tt.wantProduct.ID != 0 {
				catalog.On("AddProduct", mock.Anything, tt.wantProduct).Return(tt.repoErr).Once()
			}

			err := newAdmin(t, catalog, new(mockSales)).AddProduct(t.Context(), tt.input)
			catalog.AssertExpectations(t)

			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestAdminUpdateCost(t *testing.T) {
	tests := []struct {
		name      string
		id        int32
		cost      int64
		repoErr   error
		callsRepo bool
		wantError error
	}{
		{
			name:      "update cost: ok",
			id:        1,
			cost:      350,
			callsRepo: true,
		},
		{
			name:      "missing product: not found",
			id:        99,
			cost:      10,
			repoErr:   domain.NotFoundf("product[99]"),
			callsRepo: true,
			wantError: domain.ErrNotFound,
		},
		{
			name:      "negative cost: validation error",
			id:        1,
			cost:      -10,
			wantError: domain.ErrValidation,
		},
		{
			name:      "cost above column range: validation error",
			id:        1,
			cost:      1 << 40,
			wantError: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := new(mockCatalog)
			if tt.callsRepo {
				catalog.On("UpdateCost", mock.Anything, tt.id, domain.NewMoney(tt.cost, currency.INR)).Return(tt.repoErr).Once()
			}

			err := newAdmin(t, catalog, new(mockSales)).UpdateCost(t.Context(), tt.id, tt.cost)
			catalog.AssertExpectations(t)

			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestAdminAddVariety(t *testing.T) {
	catalog := new(mockCatalog)
	catalog.On("AddVariety", mock.Anything, domain.Variety{ID: 5, ProductID: 1, Name: "Mango"}).Return(nil).Once()
	catalog.On("AddVariety", mock.Anything, domain.Variety{ID: 1, ProductID: 77, Name: "Plain"}).Return(domain.NotFoundf("product[77]")).Once()

	admin := newAdmin(t, catalog, new(mockSales))

	require.NoError(t, admin.AddVariety(t.Context(), domain.Variety{ID: 5, ProductID: 1, Name: " Mango "}))
	require.ErrorIs(t, admin.AddVariety(t.Context(), domain.Variety{ID: 1, ProductID: 77, Name: "Plain"}), domain.ErrNotFound)
	require.ErrorIs(t, admin.AddVariety(t.Context(), domain.Variety{ID: 2, ProductID: 1, Name: ""}), domain.ErrValidation)

	catalog.AssertExpectations(t)
}

func TestAdminListings(t *testing.T) {
	pastry := domain.Product{ID: 2, Name: "Pastry", Cost: domain.NewMoney(20, currency.INR), Stock: 10, MinStock: 10}
	lowCake := cake
	lowCake.Stock = 4

	catalog := new(mockCatalog)
	catalog.On("ListProducts", mock.Anything).Return([]domain.Product{lowCake, pastry, milk}, nil)
	catalog.On("ListLowStock", mock.Anything).Return([]domain.Product{lowCake, pastry}, nil)

	entries := []domain.AuditEntry{{ID: 2, ProductID: 3, ChangeType: domain.ChangeTypeSale, Quantity: 1}}
	sales := new(mockSales)
	sales.On("ListSales", mock.Anything, int32(20)).Return(entries, nil)

	admin := newAdmin(t, catalog, sales)

	products, err := admin.ListProducts(t.Context())
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.True(t, products[0].LowStock())
	assert.True(t, products[1].LowStock())
	assert.False(t, products[2].LowStock())

	lowStock, err := admin.ListLowStock(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []domain.Product{lowCake, pastry}, lowStock)

	logged, err := admin.ListSales(t.Context(), 20)
	require.NoError(t, err)
	assert.Equal(t, entries, logged)

	catalog.AssertExpectations(t)
	sales.AssertExpectations(t)
}

func TestAdminPriceChart(t *testing.T) {
	catalog := new(mockCatalog)
	catalog.On("ListProducts", mock.Anything).Return([]domain.Product{cake, milk, cheese}, nil).Once()
	catalog.On("ListProducts", mock.Anything).Return([]domain.Product{}, nil).Once()

	admin := newAdmin(t, catalog, new(mockSales))

	path := filepath.Join(t.TempDir(), "price_chart.png")
	require.NoError(t, admin.PriceChart(t.Context(), path))
	assert.FileExists(t, path)

	empty := filepath.Join(t.TempDir(), "empty.png")
	require.ErrorIs(t, admin.PriceChart(t.Context(), empty), domain.ErrValidation)
	_, err := os.Stat(empty)
	assert.True(t, os.IsNotExist(err))

	catalog.AssertExpectations(t)
}

func TestNewAdmin(t *testing.T) {
	_, err := service.NewAdmin(nil, new(mockSales), currency.INR, zap.NewNop())
	require.EqualError(t, err, "catalog is nil")

	_, err = service.NewAdmin(new(mockCatalog), nil, currency.INR, zap.NewNop())
	require.EqualError(t, err, "sales is nil")

	_, err = service.NewAdmin(new(mockCatalog), new(mockSales), currency.INR, nil)
	require.EqualError(t, err, "logger is nil")
}
