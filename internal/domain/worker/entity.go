package worker

import (
	"time"

	"github.com/shopspring/decimal"
)

type Worker struct {
	ID             string
	Name           string
	Address        *string
	Phone          *string
	OpeningBalance decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
