package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/nikolayk812/bakery-pos/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	stockErr := fmt.Errorf("checkout: %w", &domain.InsufficientStockError{ProductID: 1, Requested: 5, Available: 2})
	assert.ErrorIs(t, stockErr, domain.ErrInsufficientStock)
	assert.NotErrorIs(t, stockErr, domain.ErrValidation)
	assert.EqualError(t, stockErr, "checkout: product[1]: requested 5, only 2 available")

	cause := errors.New("connection reset")
	persistErr := &domain.PersistenceError{Op: "q.ListProducts", Err: cause}
	assert.ErrorIs(t, persistErr, domain.ErrPersistence)
	assert.ErrorIs(t, persistErr, cause)

	assert.ErrorIs(t, domain.Validationf("quantity %d", 0), domain.ErrValidation)
	assert.EqualError(t, domain.NotFoundf("product[%d]", 7), "not found: product[7]")
}
