package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/wagebook/wagebook-backend-go/internal/domain/worker"
	"github.com/wagebook/wagebook-backend-go/internal/pkg/database"
)

type workerRepositoryImpl struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.WorkerRepository {
	return &workerRepositoryImpl{db: db}
}

// Create implements worker.WorkerRepository.
func (r *workerRepositoryImpl) Create(ctx context.Context, w *worker.Worker) error {
	q := GetQuerier(ctx, r.db)

	if w.ID == "" {
		w.ID = uuid.New().String()
	}

	query := `
		INSERT INTO workers (id, name, address, phone, opening_balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, w.ID, w.Name, w.Address, w.Phone, w.OpeningBalance).Scan(
		&w.CreatedAt,
		&w.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "workers_phone_unique") {
			return worker.ErrPhoneExists
		}
		return fmt.Errorf("failed to create worker: %w", err)
	}

	return nil
}

// GetByID implements worker.WorkerRepository.
func (r *workerRepositoryImpl) GetByID(ctx context.Context, id string) (*worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, address, phone, opening_balance, created_at, updated_at
		FROM workers
		WHERE id = $1
	`

	var w worker.Worker
	err := q.QueryRow(ctx, query, id).Scan(
		&w.ID,
		&w.Name,
		&w.Address,
		&w.Phone,
		&w.OpeningBalance,
		&w.CreatedAt,
		&w.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, worker.ErrWorkerNotFound
		}
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}

	return &w, nil
}

// List implements worker.WorkerRepository.
func (r *workerRepositoryImpl) List(ctx context.Context, req *worker.ListWorkersRequest) ([]worker.Worker, int, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := ""
	args := []interface{}{}
	argIdx := 1

	if req.Search != "" {
		whereClause = fmt.Sprintf("WHERE name ILIKE $%d", argIdx)
		args = append(args, "%"+req.Search+"%")
		argIdx++
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM workers %s", whereClause)
	var total int
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count workers: %w", err)
	}

	sortColumn := "name"
	if req.SortBy == "created_at" {
		sortColumn = "created_at"
	}
	sortOrder := "ASC"
	if req.SortOrder == "desc" {
		sortOrder = "DESC"
	}

	query := fmt.Sprintf(`
		SELECT id, name, address, phone, opening_balance, created_at, updated_at
		FROM workers
		%s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, whereClause, sortColumn, sortOrder, argIdx, argIdx+1)
	args = append(args, req.Limit, (req.Page-1)*req.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list workers: %w", err)
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
			return nil, 0, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return workers, total, nil
}

// Update implements worker.WorkerRepository.
func (r *workerRepositoryImpl) Update(ctx context.Context, w *worker.Worker) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE workers
		SET name = $1, address = $2, phone = $3, opening_balance = $4, updated_at = NOW()
		WHERE id = $5
	`

	commandTag, err := q.Exec(ctx, query, w.Name, w.Address, w.Phone, w.OpeningBalance, w.ID)
	if err != nil {
		if isUniqueViolation(err, "workers_phone_unique") {
			return worker.ErrPhoneExists
		}
		return fmt.Errorf("failed to update worker: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}

	return nil
}

// Delete implements worker.WorkerRepository.
// Attendance, payment and audit rows go with the worker through the
// ON DELETE CASCADE foreign keys.
func (r *workerRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM workers WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete worker: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}

	return nil
}
