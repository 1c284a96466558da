package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wagebook/wagebook-backend-go/internal/domain/attendance"
	"github.com/wagebook/wagebook-backend-go/internal/domain/ledger"
	"github.com/wagebook/wagebook-backend-go/internal/domain/payment"
	"github.com/wagebook/wagebook-backend-go/internal/pkg/validator"
)

// LedgerService is the single place balances and statements come from.
// Everything that shows a balance goes through WorkerBalance so no stored
// figure can drift from the ledger.
type LedgerService interface {
	// WorkerBalance recomputes the worker's all-time balance from scratch.
	// A blank, malformed or unknown worker id yields zero, not an error.
	WorkerBalance(ctx context.Context, workerID string) (decimal.Decimal, error)

	// DetailedReport replays every ledger event in range per worker with a
	// running balance seeded at the worker's opening balance.
	DetailedReport(ctx context.Context, filter ledger.ReportFilter) (ledger.DetailedReport, error)

	// SummaryReport aggregates one row per worker. Totals cover the
	// filtered range; net balance is always all-time.
	SummaryReport(ctx context.Context, filter ledger.ReportFilter) (ledger.SummaryReport, error)
}

type ledgerServiceImpl struct {
	ledgerRepo ledger.LedgerRepository
}

func NewLedgerService(ledgerRepo ledger.LedgerRepository) LedgerService {
	return &ledgerServiceImpl{ledgerRepo: ledgerRepo}
}

// WorkerBalance implements LedgerService.
func (s *ledgerServiceImpl) WorkerBalance(ctx context.Context, workerID string) (decimal.Decimal, error) {
	// The balance of nobody is zero: a blank or malformed id is treated
	// the same as an id no worker has.
	if !validator.IsValidUUID(workerID) {
		return decimal.Zero, nil
	}

	workers, err := s.ledgerRepo.Workers(ctx, &workerID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load worker: %w", err)
	}
	if len(workers) == 0 {
		return decimal.Zero, nil
	}

	records, err := s.ledgerRepo.AttendanceRows(ctx, &workerID, nil, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load attendance rows: %w", err)
	}

	payments, err := s.ledgerRepo.PaymentRows(ctx, &workerID, nil, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load payment rows: %w", err)
	}

	return ledger.Balance(workers[0].OpeningBalance, records, payments), nil
}

// DetailedReport implements LedgerService.
func (s *ledgerServiceImpl) DetailedReport(ctx context.Context, filter ledger.ReportFilter) (ledger.DetailedReport, error) {
	if err := filter.Validate(); err != nil {
		return ledger.DetailedReport{}, err
	}

	startDate, endDate := parseRange(&filter)

	workers, err := s.ledgerRepo.Workers(ctx, filter.WorkerID)
	if err != nil {
		return ledger.DetailedReport{}, fmt.Errorf("failed to load workers: %w", err)
	}

	records, err := s.ledgerRepo.AttendanceRows(ctx, filter.WorkerID, startDate, endDate)
	if err != nil {
		return ledger.DetailedReport{}, fmt.Errorf("failed to load attendance rows: %w", err)
	}

	payments, err := s.ledgerRepo.PaymentRows(ctx, filter.WorkerID, startDate, endDate)
	if err != nil {
		return ledger.DetailedReport{}, fmt.Errorf("failed to load payment rows: %w", err)
	}

	recordsByWorker := groupRecords(records)
	paymentsByWorker := groupPayments(payments)

	report := ledger.DetailedReport{
		GeneratedAt: time.Now().Format(time.RFC3339),
		Workers:     make([]ledger.WorkerStatement, 0, len(workers)),
	}
	if filter.StartDate != nil {
		report.StartDate = *filter.StartDate
	}
	if filter.EndDate != nil {
		report.EndDate = *filter.EndDate
	}

	for _, w := range workers {
		events := ledger.Replay(w.OpeningBalance, recordsByWorker[w.ID], paymentsByWorker[w.ID])

		stmt := ledger.WorkerStatement{
			WorkerID:       w.ID,
			WorkerName:     w.Name,
			OpeningBalance: w.OpeningBalance.StringFixed(2),
			ClosingBalance: w.OpeningBalance.StringFixed(2),
			Events:         make([]ledger.LedgerEventRow, 0, len(events)),
		}
		for i := range events {
			stmt.Events = append(stmt.Events, ledger.ToEventRow(w.Name, &events[i]))
		}
		if len(events) > 0 {
			stmt.ClosingBalance = events[len(events)-1].Running.StringFixed(2)
		}

		report.Workers = append(report.Workers, stmt)
	}

	return report, nil
}

// SummaryReport implements LedgerService.
func (s *ledgerServiceImpl) SummaryReport(ctx context.Context, filter ledger.ReportFilter) (ledger.SummaryReport, error) {
	if err := filter.Validate(); err != nil {
		return ledger.SummaryReport{}, err
	}

	startDate, endDate := parseRange(&filter)

	workers, err := s.ledgerRepo.Workers(ctx, filter.WorkerID)
	if err != nil {
		return ledger.SummaryReport{}, fmt.Errorf("failed to load workers: %w", err)
	}

	records, err := s.ledgerRepo.AttendanceRows(ctx, filter.WorkerID, startDate, endDate)
	if err != nil {
		return ledger.SummaryReport{}, fmt.Errorf("failed to load attendance rows: %w", err)
	}

	payments, err := s.ledgerRepo.PaymentRows(ctx, filter.WorkerID, startDate, endDate)
	if err != nil {
		return ledger.SummaryReport{}, fmt.Errorf("failed to load payment rows: %w", err)
	}

	recordsByWorker := groupRecords(records)
	paymentsByWorker := groupPayments(payments)

	report := ledger.SummaryReport{
		GeneratedAt: time.Now().Format(time.RFC3339),
		Rows:        make([]ledger.SummaryRow, 0, len(workers)),
	}
	if filter.StartDate != nil {
		report.StartDate = *filter.StartDate
	}
	if filter.EndDate != nil {
		report.EndDate = *filter.EndDate
	}

	for _, w := range workers {
		daysWorked, wages, paid := ledger.Totals(recordsByWorker[w.ID], paymentsByWorker[w.ID])

		// All-time, never the filtered window.
		net, err := s.WorkerBalance(ctx, w.ID)
		if err != nil {
			return ledger.SummaryReport{}, err
		}

		report.Rows = append(report.Rows, ledger.SummaryRow{
			WorkerID:       w.ID,
			WorkerName:     w.Name,
			OpeningBalance: w.OpeningBalance.StringFixed(2),
			DaysWorked:     daysWorked,
			TotalWages:     wages.StringFixed(2),
			TotalPayments:  paid.StringFixed(2),
			NetBalance:     net.StringFixed(2),
		})
	}

	return report, nil
}

func parseRange(filter *ledger.ReportFilter) (*time.Time, *time.Time) {
	var startDate, endDate *time.Time
	if filter.StartDate != nil && *filter.StartDate != "" {
		if t, ok := validator.IsValidDate(*filter.StartDate); ok {
			startDate = &t
		}
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		if t, ok := validator.IsValidDate(*filter.EndDate); ok {
			endDate = &t
		}
	}
	return startDate, endDate
}

// groupRecords splits rows by worker, keeping the repository's fetch
// order within each worker.
func groupRecords(records []attendance.Record) map[string][]attendance.Record {
	grouped := make(map[string][]attendance.Record)
	for _, rec := range records {
		grouped[rec.WorkerID] = append(grouped[rec.WorkerID], rec)
	}
	return grouped
}

func groupPayments(payments []payment.Payment) map[string][]payment.Payment {
	grouped := make(map[string][]payment.Payment)
	for _, p := range payments {
		grouped[p.WorkerID] = append(grouped[p.WorkerID], p)
	}
	return grouped
}
