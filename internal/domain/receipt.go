package domain

import (
	"time"

	"github.com/google/uuid"
)

type Receipt struct {
	Number   uuid.UUID
	Customer Customer
	Lines    []CartLine
	Total    Money

	IssuedAt time.Time
}
