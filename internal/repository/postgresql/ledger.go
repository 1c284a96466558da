package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/wagebook/wagebook-backend-go/internal/domain/attendance"
	"github.com/wagebook/wagebook-backend-go/internal/domain/ledger"
	"github.com/wagebook/wagebook-backend-go/internal/domain/payment"
	"github.com/wagebook/wagebook-backend-go/internal/domain/worker"
	"github.com/wagebook/wagebook-backend-go/internal/pkg/database"
)

type ledgerRepositoryImpl struct {
	db *database.DB
}

func NewLedgerRepository(db *database.DB) ledger.LedgerRepository {
	return &ledgerRepositoryImpl{db: db}
}

// Workers implements ledger.LedgerRepository.
func (r *ledgerRepositoryImpl) Workers(ctx context.Context, workerID *string) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, address, phone, opening_balance, created_at, updated_at
		FROM workers
	`
	args := []interface{}{}

	if workerID != nil && *workerID != "" {
		query += ` WHERE id = $1`
		args = append(args, *workerID)
	}

	query += ` ORDER BY name ASC, id ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query workers: %w", err)
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		var w worker.Worker
		err := rows.Scan(
			&w.ID,
			&w.Name,
			&w.Address,
			&w.Phone,
			&w.OpeningBalance,
			&w.CreatedAt,
			&w.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return workers, nil
}

// AttendanceRows implements ledger.LedgerRepository. Rows come back
// ordered by worker, then date, then insertion order, which fixes the
// relative order of same-date events in the replay.
func (r *ledgerRepositoryImpl) AttendanceRows(ctx context.Context, workerID *string, startDate, endDate *time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if workerID != nil && *workerID != "" {
		baseWhere += fmt.Sprintf(" AND a.worker_id = $%d", argIdx)
		args = append(args, *workerID)
		argIdx++
	}
	if startDate != nil {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *startDate)
		argIdx++
	}
	if endDate != nil {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *endDate)
		argIdx++
	}

	query := fmt.Sprintf(`%s
		WHERE %s
		ORDER BY a.worker_id, a.date ASC, a.created_at ASC, a.id ASC
	`, attendanceSelect, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance rows: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.WorkerID, &rec.Date, &rec.Status,
			&rec.CategoryID, &rec.SubcategoryID, &rec.Amount, &rec.Narration,
			&rec.CreatedAt, &rec.UpdatedAt,
			&rec.WorkerName, &rec.CategoryName, &rec.SubcategoryName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}

// PaymentRows implements ledger.LedgerRepository.
func (r *ledgerRepositoryImpl) PaymentRows(ctx context.Context, workerID *string, startDate, endDate *time.Time) ([]payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if workerID != nil && *workerID != "" {
		baseWhere += fmt.Sprintf(" AND p.worker_id = $%d", argIdx)
		args = append(args, *workerID)
		argIdx++
	}
	if startDate != nil {
		baseWhere += fmt.Sprintf(" AND p.date >= $%d", argIdx)
		args = append(args, *startDate)
		argIdx++
	}
	if endDate != nil {
		baseWhere += fmt.Sprintf(" AND p.date <= $%d", argIdx)
		args = append(args, *endDate)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT p.id, p.worker_id, p.date, p.amount, p.payment_mode, p.narration, p.created_at,
		       w.name AS worker_name
		FROM payments p
		JOIN workers w ON w.id = p.worker_id
		WHERE %s
		ORDER BY p.worker_id, p.date ASC, p.created_at ASC, p.id ASC
	`, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment rows: %w", err)
	}
	defer rows.Close()

	var payments []payment.Payment
	for rows.Next() {
		var pm payment.Payment
		err := rows.Scan(
			&pm.ID,
			&pm.WorkerID,
			&pm.Date,
			&pm.Amount,
			&pm.PaymentMode,
			&pm.Narration,
			&pm.CreatedAt,
			&pm.WorkerName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, pm)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return payments, nil
}
