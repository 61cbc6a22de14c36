package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/nikolayk812/bakery-pos/internal/domain"
	"github.com/nikolayk812/bakery-pos/internal/port"
	"go.uber.org/zap"
)

// CartBuilder validates customer selections against the live catalog.
// It never writes to the store.
type CartBuilder struct {
	catalog port.CatalogRepository
	logger  *zap.Logger
}

func NewCartBuilder(catalog port.CatalogRepository, logger *zap.Logger) (*CartBuilder, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog is nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	return &CartBuilder{
		catalog: catalog,
		logger:  logger,
	}, nil
}

// Browse lists products a customer can buy right now.
func (b *CartBuilder) Browse(ctx context.Context) ([]domain.Product, error) {
	products, err := b.catalog.ListInStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListInStock: %w", err)
	}
	return products, nil
}

func (b *CartBuilder) Varieties(ctx context.Context, productID int32) ([]domain.Variety, error) {
	varieties, err := b.catalog.ListVarieties(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListVarieties: %w", err)
	}
	return varieties, nil
}

// AddLine validates one selection and appends it to cart.
// variety is the 1-based position in the product's variety list and is only
// consulted for composite products. Stock already reserved by earlier lines of
// the same cart counts against availability.
func (b *CartBuilder) AddLine(ctx context.Context, cart *domain.Cart, productID, quantity int32, variety int) (domain.CartLine, error) {
	if cart == nil {
		return domain.CartLine{}, fmt.Errorf("cart is nil")
	}

	product, err := b.catalog.GetProduct(ctx, productID)
	if err != nil {
		return domain.CartLine{}, fmt.Errorf("catalog.GetProduct: %w", err)
	}

	available := product.Stock - cart.Reserved(productID)
	if available <= 0 {
		return domain.CartLine{}, &domain.InsufficientStockError{ProductID: productID, Requested: quantity, Available: max(available, 0)}
	}

	name, err := b.displayName(ctx, product, variety)
	if err != nil {
		return domain.CartLine{}, err
	}

	if quantity <= 0 {
		return domain.CartLine{}, domain.Validationf("quantity[%d] must be positive", quantity)
	}
	if quantity > available {
		return domain.CartLine{}, &domain.InsufficientStockError{ProductID: productID, Requested: quantity, Available: available}
	}

	line := domain.CartLine{
		ProductID: product.ID,
		Name:      name,
		Quantity:  quantity,
		UnitPrice: product.Cost,
	}
	cart.Append(line)

	b.logger.Debug("line added",
		zap.Int32("product_id", line.ProductID),
		zap.String("name", line.Name),
		zap.Int32("quantity", line.Quantity))

	return line, nil
}

func (b *CartBuilder) displayName(ctx context.Context, product domain.Product, variety int) (string, error) {
	varieties, err := b.catalog.ListVarieties(ctx, product.ID)
	if err != nil {
		return "", fmt.Errorf("catalog.ListVarieties: %w", err)
	}

	if len(varieties) == 0 {
		return product.Name, nil
	}

	if variety < 1 || variety > len(varieties) {
		return "", domain.Validationf("variety[%d] is out of range 1-%d", variety, len(varieties))
	}

	return fmt.Sprintf("%s %s", varieties[variety-1].Name, product.Name), nil
}

// IsRejection reports whether err is a per-line rejection the customer can correct,
// as opposed to a storage failure.
func IsRejection(err error) bool {
	return errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrInsufficientStock)
}
