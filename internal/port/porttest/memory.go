// Package porttest provides in-memory implementations of the repository ports
// for tests that do not need PostgreSQL.
package porttest

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/bakery-pos/internal/domain"
)

type Store struct {
	mu        sync.Mutex
	products  map[int32]domain.Product
	varieties []domain.Variety
	log       []domain.AuditEntry

	// FailAt makes RecordSale fail with a persistence error on the given 0-based line.
	FailAt int
}

func NewStore(products ...domain.Product) *Store {
	s := &Store{
		products: make(map[int32]domain.Product, len(products)),
		FailAt:   -1,
	}
	for _, p := range products {
		s.products[p.ID] = p
	}
	return s
}

func (s *Store) GetProduct(_ context.Context, id int32) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return domain.Product{}, domain.NotFoundf("product[%d]", id)
	}
	return p, nil
}

func (s *Store) ListProducts(_ context.Context) ([]domain.Product, error) {
	return s.filter(func(domain.Product) bool { return true }, byID), nil
}

func (s *Store) ListInStock(_ context.Context) ([]domain.Product, error) {
	return s.filter(func(p domain.Product) bool { return p.Stock > 0 }, byID), nil
}

func (s *Store) ListLowStock(_ context.Context) ([]domain.Product, error) {
	return s.filter(domain.Product.LowStock, func(a, b domain.Product) int {
		if a.Stock != b.Stock {
			return int(a.Stock - b.Stock)
		}
		return byID(a, b)
	}), nil
}

func (s *Store) AddProduct(_ context.Context, product domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[product.ID]; ok {
		return fmt.Errorf("%w: product[%d]", domain.ErrAlreadyExists, product.ID)
	}
	s.products[product.ID] = product
	return nil
}

func (s *Store) UpdateCost(_ context.Context, id int32, cost domain.Money) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return domain.NotFoundf("product[%d]", id)
	}
	p.Cost = cost
	s.products[id] = p
	return nil
}

func (s *Store) AddVariety(_ context.Context, variety domain.Variety) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[variety.ProductID]; !ok {
		return domain.NotFoundf("product[%d]", variety.ProductID)
	}
	s.varieties = append(s.varieties, variety)
	return nil
}

func (s *Store) ListVarieties(_ context.Context, productID int32) ([]domain.Variety, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []domain.Variety
	for _, v := range s.varieties {
		if v.ProductID == productID {
			result = append(result, v)
		}
	}
	slices.SortStableFunc(result, func(a, b domain.Variety) int {
		return int(a.ID - b.ID)
	})
	return result, nil
}

// RecordSale applies every line to a copy of the stock and publishes it only when all lines succeed.
func (s *Store) RecordSale(_ context.Context, saleID uuid.UUID, lines []domain.CartLine) ([]domain.AuditEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if saleID == uuid.Nil {
		return nil, fmt.Errorf("saleID is empty")
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("lines are empty")
	}

	stock := make(map[int32]int32, len(s.products))
	for id, p := range s.products {
		stock[id] = p.Stock
	}

	entries := make([]domain.AuditEntry, 0, len(lines))
	for i, line := range lines {
		if i == s.FailAt {
			return nil, &domain.PersistenceError{Op: "RecordSale", Err: fmt.Errorf("line %d: connection lost", i)}
		}

		available, ok := stock[line.ProductID]
		if !ok {
			return nil, domain.NotFoundf("product[%d]", line.ProductID)
		}
		if line.Quantity > available {
			return nil, &domain.InsufficientStockError{ProductID: line.ProductID, Requested: line.Quantity, Available: available}
		}
		stock[line.ProductID] = available - line.Quantity

		entries = append(entries, domain.AuditEntry{
			ID:         int64(len(s.log) + len(entries) + 1),
			SaleID:     saleID,
			ProductID:  line.ProductID,
			ChangeType: domain.ChangeTypeSale,
			Quantity:   line.Quantity,
			LoggedAt:   time.Now(),
		})
	}

	for id, qty := range stock {
		p := s.products[id]
		p.Stock = qty
		s.products[id] = p
	}
	s.log = append(s.log, entries...)

	return entries, nil
}

func (s *Store) ListSales(_ context.Context, limit int32) ([]domain.AuditEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 {
		return nil, fmt.Errorf("limit[%d] is not positive", limit)
	}

	var result []domain.AuditEntry
	for i := len(s.log) - 1; i >= 0 && len(result) < int(limit); i-- {
		result = append(result, s.log[i])
	}
	return result, nil
}

// Log returns every audit entry in insertion order.
func (s *Store) Log() []domain.AuditEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.log)
}

func (s *Store) filter(keep func(domain.Product) bool, order func(a, b domain.Product) int) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []domain.Product
	for _, p := range s.products {
		if keep(p) {
			result = append(result, p)
		}
	}
	slices.SortFunc(result, order)
	return result
}

func byID(a, b domain.Product) int {
	return int(a.ID - b.ID)
}
