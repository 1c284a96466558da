package audit

import (
	"time"

	"github.com/shopspring/decimal"
)

// Change reasons recorded alongside every balance-affecting write.
const (
	ReasonOpeningBalanceSet     = "opening balance set"
	ReasonOpeningBalanceUpdated = "opening balance updated"
	ReasonAttendanceMarked      = "attendance marked"
	ReasonAttendanceUpdated     = "attendance updated"
	ReasonAttendanceRemoved     = "attendance removed"
	ReasonPaymentReceived       = "payment received"
	ReasonPaymentRemoved        = "payment removed"
)

type BalanceAudit struct {
	ID           string
	WorkerID     string
	OldBalance   decimal.Decimal
	NewBalance   decimal.Decimal
	ChangeReason string
	CreatedAt    time.Time
}
