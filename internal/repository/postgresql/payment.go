package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/wagebook/wagebook-backend-go/internal/domain/payment"
	"github.com/wagebook/wagebook-backend-go/internal/pkg/database"
)

type paymentRepositoryImpl struct {
	db *database.DB
}

func NewPaymentRepository(db *database.DB) payment.PaymentRepository {
	return &paymentRepositoryImpl{db: db}
}

// Create implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) Create(ctx context.Context, p *payment.Payment) (*payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	query := `
		INSERT INTO payments (id, worker_id, date, amount, payment_mode, narration, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		p.ID,
		p.WorkerID,
		p.Date,
		p.Amount,
		p.PaymentMode,
		p.Narration,
	).Scan(&p.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	return r.GetByID(ctx, p.ID)
}

// GetByID implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) GetByID(ctx context.Context, id string) (*payment.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.worker_id, p.date, p.amount, p.payment_mode, p.narration, p.created_at,
		       w.name AS worker_name
		FROM payments p
		JOIN workers w ON w.id = p.worker_id
		WHERE p.id = $1
	`

	var pm payment.Payment
	err := q.QueryRow(ctx, query, id).Scan(
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
		if err == pgx.ErrNoRows {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return &pm, nil
}

// List implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) List(ctx context.Context, filter *payment.PaymentFilter) ([]payment.Payment, int, error) {
	q := GetQuerier(ctx, r.db)

	// Build WHERE clause
	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	// Worker filter
	if filter.WorkerID != nil && *filter.WorkerID != "" {
		baseWhere += fmt.Sprintf(" AND p.worker_id = $%d", argIdx)
		args = append(args, *filter.WorkerID)
		argIdx++
	}

	// Date range filters
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND p.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND p.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	// Count total
	countQuery := `
		SELECT COUNT(*)
		FROM payments p
		JOIN workers w ON w.id = p.worker_id
		WHERE ` + baseWhere
	var total int
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	// Build ORDER BY
	orderByField := "p.date"
	switch filter.SortBy {
	case "worker_name":
		orderByField = "w.name"
	case "amount":
		orderByField = "p.amount"
	}
	sortOrder := "DESC"
	if strings.ToLower(filter.SortOrder) == "asc" {
		sortOrder = "ASC"
	}

	// Build query with pagination
	selectQuery := fmt.Sprintf(`
		SELECT p.id, p.worker_id, p.date, p.amount, p.payment_mode, p.narration, p.created_at,
		       w.name AS worker_name
		FROM payments p
		JOIN workers w ON w.id = p.worker_id
		WHERE %s
		ORDER BY %s %s, p.created_at DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, orderByField, sortOrder, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query payments: %w", err)
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
			return nil, 0, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, pm)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return payments, total, nil
}

// Delete implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM payments WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return payment.ErrPaymentNotFound
	}

	return nil
}
