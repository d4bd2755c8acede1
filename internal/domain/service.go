package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Money is a non-negative amount in BRL
type Money = decimal.Decimal

// Service is a bookable offering of the shop
type Service struct {
	ID          uuid.UUID
	Name        string
	Description *string
	Duration    int // минуты
	Price       Money
	Active      bool
	CreatedAt   time.Time
}
