package ledger

import (
	"context"
	"time"

	"github.com/wagebook/wagebook-backend-go/internal/domain/attendance"
	"github.com/wagebook/wagebook-backend-go/internal/domain/payment"
	"github.com/wagebook/wagebook-backend-go/internal/domain/worker"
)

// LedgerRepository is the read model behind balances and reports. Row
// methods return rows ordered by worker, then date, then insertion order,
// so Replay can rely on the fetch order for same-date ties.
type LedgerRepository interface {
	Workers(ctx context.Context, workerID *string) ([]worker.Worker, error)
	AttendanceRows(ctx context.Context, workerID *string, startDate, endDate *time.Time) ([]attendance.Record, error)
	PaymentRows(ctx context.Context, workerID *string, startDate, endDate *time.Time) ([]payment.Payment, error)
}
