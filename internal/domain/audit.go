package domain

import (
	"time"

	"github.com/google/uuid"
)

type ChangeType string

const ChangeTypeSale ChangeType = "SALE"

type AuditEntry struct {
	ID         int64
	SaleID     uuid.UUID
	ProductID  int32
	ChangeType ChangeType
	Quantity   int32

	LoggedAt time.Time
}
