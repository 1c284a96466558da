package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusHalfday = "halfday"
)

var ValidStatuses = []string{StatusPresent, StatusAbsent, StatusHalfday}

type Record struct {
	ID            string
	WorkerID      string
	Date          time.Time
	Status        string
	CategoryID    *string
	SubcategoryID *string
	Amount        *decimal.Decimal
	Narration     *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// DTO
	WorkerName      *string
	CategoryName    *string
	SubcategoryName *string
}

// WageEligible reports whether the record contributes to the worker's
// wage total. Only present and halfday records with a positive amount do.
func (r *Record) WageEligible() bool {
	if r.Status != StatusPresent && r.Status != StatusHalfday {
		return false
	}
	if r.Amount == nil {
		return false
	}
	return r.Amount.IsPositive()
}

// WageAmount returns the amount the record adds to the worker's balance,
// zero for records that are not wage eligible.
func (r *Record) WageAmount() decimal.Decimal {
	if !r.WageEligible() {
		return decimal.Zero
	}
	return *r.Amount
}
