package repository

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/bakery-pos/internal/db"
	"github.com/nikolayk812/bakery-pos/internal/domain"
	"github.com/nikolayk812/bakery-pos/internal/port"
)

type salesRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewSales(pool *pgxpool.Pool) (port.SalesRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &salesRepository{
		q:    db.New(pool),
		pool: pool,
	}, nil
}

func NewSalesWithTx(tx pgx.Tx) port.SalesRepository {
	return &salesRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *salesRepository) RecordSale(ctx context.Context, saleID uuid.UUID, lines []domain.CartLine) ([]domain.AuditEntry, error) {
	if saleID == uuid.Nil {
		return nil, fmt.Errorf("saleID is empty")
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("lines are empty")
	}

	return withTx(ctx, r.pool, r.q, func(q *db.Queries) ([]domain.AuditEntry, error) {
		// lock in id order so concurrent checkouts cannot deadlock
		ids := productIDs(lines)
		locked, err := q.LockProducts(ctx, ids)
		if err != nil {
			return nil, mapError("q.LockProducts", err)
		}

		stock := make(map[int32]int32, len(locked))
		for _, row := range locked {
			stock[row.ID] = row.StockQuantity
		}

		entries := make([]domain.AuditEntry, 0, len(lines))

		for _, line := range lines {
			if line.Quantity <= 0 {
				return nil, domain.Validationf("quantity[%d] of product[%d] is not positive", line.Quantity, line.ProductID)
			}

			available, ok := stock[line.ProductID]
			if !ok {
				return nil, domain.NotFoundf("product[%d]", line.ProductID)
			}

			rowsAffected, err := q.DecrementStock(ctx, db.DecrementStockParams{
				Quantity: line.Quantity,
				ID:       line.ProductID,
			})
			if err != nil {
				return nil, mapError("q.DecrementStock", err)
			}
			if rowsAffected == 0 {
				return nil, &domain.InsufficientStockError{
					ProductID: line.ProductID,
					Requested: line.Quantity,
					Available: available,
				}
			}
			stock[line.ProductID] = available - line.Quantity

			row, err := q.InsertInventoryLog(ctx, db.InsertInventoryLogParams{
				SaleID:          saleID,
				ProductID:       line.ProductID,
				ChangeType:      string(domain.ChangeTypeSale),
				QuantityChanged: line.Quantity,
			})
			if err != nil {
				return nil, mapError("q.InsertInventoryLog", err)
			}

			entries = append(entries, mapInventoryLogRowToDomain(row))
		}

		return entries, nil
	})
}

func (r *salesRepository) ListSales(ctx context.Context, limit int32) ([]domain.AuditEntry, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit[%d] is not positive", limit)
	}

	rows, err := r.q.ListInventoryLog(ctx, limit)
	if err != nil {
		return nil, mapError("q.ListInventoryLog", err)
	}

	entries := make([]domain.AuditEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, mapInventoryLogRowToDomain(row))
	}

	return entries, nil
}

func productIDs(lines []domain.CartLine) []int32 {
	ids := make([]int32, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}

	slices.Sort(ids)
	return slices.Compact(ids)
}

func mapInventoryLogRowToDomain(row db.InventoryLog) domain.AuditEntry {
	return domain.AuditEntry{
		ID:         row.ID,
		SaleID:     row.SaleID,
		ProductID:  row.ProductID,
		ChangeType: domain.ChangeType(row.ChangeType),
		Quantity:   row.QuantityChanged,
		LoggedAt:   row.LoggedAt,
	}
}
