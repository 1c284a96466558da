package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wagebook/wagebook-backend-go/internal/domain/attendance"
	"github.com/wagebook/wagebook-backend-go/internal/domain/payment"
)

const (
	EventAttendance = "attendance"
	EventPayment    = "payment"
)

// Event is one ledger line for a worker: an attendance record crediting
// a wage or a payment debiting the balance.
type Event struct {
	Kind            string
	RefID           string
	Date            time.Time
	Status          string // attendance status, empty for payment events
	CategoryName    string
	SubcategoryName string
	Wage            decimal.Decimal
	Payment         decimal.Decimal
	Running         decimal.Decimal
	Narration       string
}

// Balance recomputes a worker's balance from scratch:
// opening + eligible wages - payments, rounded half up to 2 decimals.
// Non-positive payment amounts are excluded from the sum.
func Balance(opening decimal.Decimal, records []attendance.Record, payments []payment.Payment) decimal.Decimal {
	total := opening
	for i := range records {
		total = total.Add(records[i].WageAmount())
	}
	for i := range payments {
		if payments[i].Amount.IsPositive() {
			total = total.Sub(payments[i].Amount)
		}
	}
	return total.Round(2)
}

// Replay merges one worker's attendance and payment rows into a single
// timeline ordered by date ascending and annotates each event with the
// running balance after it. The running total always starts at the
// opening balance, even when the rows cover a filtered date range, so a
// range-limited statement does not fold earlier activity into its seed.
//
// Events on the same date keep their fetch order, attendance before
// payments.
func Replay(opening decimal.Decimal, records []attendance.Record, payments []payment.Payment) []Event {
	events := make([]Event, 0, len(records)+len(payments))

	for i := range records {
		rec := &records[i]
		e := Event{
			Kind:   EventAttendance,
			RefID:  rec.ID,
			Date:   rec.Date,
			Status: rec.Status,
			Wage:   rec.WageAmount(),
		}
		if rec.CategoryName != nil {
			e.CategoryName = *rec.CategoryName
		}
		if rec.SubcategoryName != nil {
			e.SubcategoryName = *rec.SubcategoryName
		}
		if rec.Narration != nil {
			e.Narration = *rec.Narration
		}
		events = append(events, e)
	}

	for i := range payments {
		p := &payments[i]
		e := Event{
			Kind:    EventPayment,
			RefID:   p.ID,
			Date:    p.Date,
			Payment: p.Amount,
		}
		if p.Narration != nil {
			e.Narration = *p.Narration
		}
		events = append(events, e)
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})

	running := opening
	for i := range events {
		running = running.Add(events[i].Wage).Sub(events[i].Payment).Round(2)
		events[i].Running = running
	}

	return events
}

// Totals sums the rows of a date-scoped report window: the number of
// non-absent attendance records, the eligible wages, and the payments.
func Totals(records []attendance.Record, payments []payment.Payment) (daysWorked int, wages, paid decimal.Decimal) {
	wages = decimal.Zero
	paid = decimal.Zero
	for i := range records {
		if records[i].Status != attendance.StatusAbsent {
			daysWorked++
		}
		wages = wages.Add(records[i].WageAmount())
	}
	for i := range payments {
		if payments[i].Amount.IsPositive() {
			paid = paid.Add(payments[i].Amount)
		}
	}
	return daysWorked, wages.Round(2), paid.Round(2)
}
