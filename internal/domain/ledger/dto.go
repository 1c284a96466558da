package ledger

import "github.com/wagebook/wagebook-backend-go/internal/pkg/validator"

type ReportFilter struct {
	WorkerID  *string `json:"worker_id,omitempty"`
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD
}

func (f *ReportFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.WorkerID != nil && *f.WorkerID != "" && !validator.IsValidUUID(*f.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id must be a valid UUID",
		})
	}

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// DETAILED (RUNNING-BALANCE) REPORT
// ========================================

// LedgerEventRow is one line of the detailed report. Wage and payment
// amounts are mutually exclusive: attendance rows carry a wage amount
// and an empty payment amount, payment rows the reverse.
type LedgerEventRow struct {
	Date           string `json:"date"`
	WorkerName     string `json:"worker_name"`
	Status         string `json:"status"`
	Category       string `json:"category"`
	Subcategory    string `json:"subcategory"`
	WageAmount     string `json:"wage_amount"`
	PaymentAmount  string `json:"payment_amount"`
	RunningBalance string `json:"running_balance"`
	Narration      string `json:"narration"`
}

type WorkerStatement struct {
	WorkerID       string           `json:"worker_id"`
	WorkerName     string           `json:"worker_name"`
	OpeningBalance string           `json:"opening_balance"`
	ClosingBalance string           `json:"closing_balance"`
	Events         []LedgerEventRow `json:"events"`
}

type DetailedReport struct {
	StartDate   string            `json:"start_date,omitempty"`
	EndDate     string            `json:"end_date,omitempty"`
	GeneratedAt string            `json:"generated_at"`
	Workers     []WorkerStatement `json:"workers"`
}

// ========================================
// SUMMARY REPORT
// ========================================

// SummaryRow aggregates one worker. Days worked, wages and payments
// cover the report's date range; the net balance is always the worker's
// all-time balance regardless of the range.
type SummaryRow struct {
	WorkerID       string `json:"worker_id"`
	WorkerName     string `json:"worker_name"`
	OpeningBalance string `json:"opening_balance"`
	DaysWorked     int    `json:"days_worked"`
	TotalWages     string `json:"total_wages"`
	TotalPayments  string `json:"total_payments"`
	NetBalance     string `json:"net_balance"`
}

type SummaryReport struct {
	StartDate   string       `json:"start_date,omitempty"`
	EndDate     string       `json:"end_date,omitempty"`
	GeneratedAt string       `json:"generated_at"`
	Rows        []SummaryRow `json:"rows"`
}

// ToEventRow renders a ledger event for the given worker name.
func ToEventRow(workerName string, e *Event) LedgerEventRow {
	row := LedgerEventRow{
		Date:           e.Date.Format("2006-01-02"),
		WorkerName:     workerName,
		Status:         e.Status,
		Category:       e.CategoryName,
		Subcategory:    e.SubcategoryName,
		RunningBalance: e.Running.StringFixed(2),
		Narration:      e.Narration,
	}
	if e.Kind == EventAttendance {
		row.WageAmount = e.Wage.StringFixed(2)
	} else {
		row.PaymentAmount = e.Payment.StringFixed(2)
	}
	return row
}
