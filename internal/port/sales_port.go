package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/bakery-pos/internal/domain"
)

type SalesRepository interface {
	// RecordSale decrements stock and appends one SALE entry per line, all or nothing.
	RecordSale(ctx context.Context, saleID uuid.UUID, lines []domain.CartLine) ([]domain.AuditEntry, error)
	ListSales(ctx context.Context, limit int32) ([]domain.AuditEntry, error)
}
