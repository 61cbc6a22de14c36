package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/bakery-pos/internal/domain"
	"github.com/nikolayk812/bakery-pos/internal/port"
	"go.uber.org/zap"
)

type Checkout struct {
	sales  port.SalesRepository
	logger *zap.Logger

	now   func() time.Time
	newID func() uuid.UUID
}

type CheckoutOption func(*Checkout)

func WithClock(now func() time.Time) CheckoutOption {
	return func(c *Checkout) {
		c.now = now
	}
}

func WithReceiptNumbers(newID func() uuid.UUID) CheckoutOption {
	return func(c *Checkout) {
		c.newID = newID
	}
}

func NewCheckout(sales port.SalesRepository, logger *zap.Logger, opts ...CheckoutOption) (*Checkout, error) {
	if sales == nil {
		return nil, fmt.Errorf("sales is nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	c := &Checkout{
		sales:  sales,
		logger: logger,
		now:    time.Now,
		newID:  uuid.New,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Checkout commits the cart and returns its receipt, or nil for an empty cart.
// Prices come from the cart lines as snapshotted when they were added.
func (c *Checkout) Checkout(ctx context.Context, customer domain.Customer, cart domain.Cart) (*domain.Receipt, error) {
	if cart.Empty() {
		return nil, nil
	}

	saleID := c.newID()
	lines := cart.Lines()

	if _, err := c.sales.RecordSale(ctx, saleID, lines); err != nil {
		c.logger.Warn("checkout rolled back",
			zap.Stringer("sale_id", saleID),
			zap.Int("lines", len(lines)),
			zap.Error(err))
		return nil, fmt.Errorf("sales.RecordSale: %w", err)
	}

	receipt := &domain.Receipt{
		Number:   saleID,
		Customer: customer,
		Lines:    lines,
		Total:    cart.Total(),
		IssuedAt: c.now(),
	}

	c.logger.Info("checkout committed",
		zap.Stringer("sale_id", saleID),
		zap.Int("lines", len(lines)),
		zap.Stringer("total", receipt.Total))

	return receipt, nil
}
