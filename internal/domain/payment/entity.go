package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	ModeCash = "cash"
	ModeUPI  = "upi"
	ModeBank = "bank"
)

var ValidModes = []string{ModeCash, ModeUPI, ModeBank}

type Payment struct {
	ID          string
	WorkerID    string
	Date        time.Time
	Amount      decimal.Decimal
	PaymentMode string
	Narration   *string
	CreatedAt   time.Time

	// DTO
	WorkerName *string
}
