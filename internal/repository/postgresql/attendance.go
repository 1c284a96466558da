package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/wagebook/wagebook-backend-go/internal/domain/attendance"
	"github.com/wagebook/wagebook-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// attendanceSelect is the joined projection shared by every read. Category
// and subcategory joins are LEFT JOINs because the references are optional
// and survive as NULL when a category is deleted.
const attendanceSelect = `
	SELECT
		a.id, a.worker_id, a.date, a.status,
		a.category_id, a.subcategory_id, a.amount, a.narration,
		a.created_at, a.updated_at,
		w.name AS worker_name,
		c.name AS category_name,
		s.name AS subcategory_name
	FROM attendance_records a
	JOIN workers w ON w.id = a.worker_id
	LEFT JOIN categories c ON c.id = a.category_id
	LEFT JOIN subcategories s ON s.id = a.subcategory_id
`

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, rec *attendance.Record) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}

	query := `
		INSERT INTO attendance_records (
			id, worker_id, date, status, category_id, subcategory_id, amount, narration, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.ID,
		rec.WorkerID,
		rec.Date,
		rec.Status,
		rec.CategoryID,
		rec.SubcategoryID,
		rec.Amount,
		rec.Narration,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err, "attendance_worker_date_unique") {
			return nil, attendance.ErrDuplicateDay
		}
		return nil, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return a.GetByID(ctx, rec.ID)
}

// CreateBatch implements attendance.AttendanceRepository. All inserts go
// through one batch round trip; the caller is expected to wrap the call in
// a transaction so a duplicate day rejects the whole batch.
func (a *attendanceRepository) CreateBatch(ctx context.Context, recs []attendance.Record) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	ids := make([]string, 0, len(recs))
	batch := &pgx.Batch{}
	for i := range recs {
		if recs[i].ID == "" {
			recs[i].ID = uuid.New().String()
		}
		ids = append(ids, recs[i].ID)
		batch.Queue(`
			INSERT INTO attendance_records (
				id, worker_id, date, status, category_id, subcategory_id, amount, narration, created_at, updated_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW()
			)`,
			recs[i].ID,
			recs[i].WorkerID,
			recs[i].Date,
			recs[i].Status,
			recs[i].CategoryID,
			recs[i].SubcategoryID,
			recs[i].Amount,
			recs[i].Narration,
		)
	}

	br := q.SendBatch(ctx, batch)
	for range recs {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			if isUniqueViolation(err, "attendance_worker_date_unique") {
				return nil, attendance.ErrDuplicateDay
			}
			return nil, fmt.Errorf("failed to create attendance records: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return nil, fmt.Errorf("failed to close batch: %w", err)
	}

	query := attendanceSelect + ` WHERE a.id = ANY($1::uuid[]) ORDER BY w.name ASC`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created attendance records: %w", err)
	}
	defer rows.Close()

	var created []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.WorkerID, &rec.Date, &rec.Status,
			&rec.CategoryID, &rec.SubcategoryID, &rec.Amount, &rec.Narration,
			&rec.CreatedAt, &rec.UpdatedAt,
			&rec.WorkerName, &rec.CategoryName, &rec.SubcategoryName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		created = append(created, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return created, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := attendanceSelect + ` WHERE a.id = $1`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.WorkerID, &rec.Date, &rec.Status,
		&rec.CategoryID, &rec.SubcategoryID, &rec.Amount, &rec.Narration,
		&rec.CreatedAt, &rec.UpdatedAt,
		&rec.WorkerName, &rec.CategoryName, &rec.SubcategoryName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, attendance.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return &rec, nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter *attendance.AttendanceFilter) ([]attendance.Record, int, error) {
	q := GetQuerier(ctx, a.db)

	// Build WHERE clause
	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	// Worker filter
	if filter.WorkerID != nil && *filter.WorkerID != "" {
		baseWhere += fmt.Sprintf(" AND a.worker_id = $%d", argIdx)
		args = append(args, *filter.WorkerID)
		argIdx++
	}

	// Status filter
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	// Date filters
	if filter.Date != nil && *filter.Date != "" {
		baseWhere += fmt.Sprintf(" AND a.date = $%d", argIdx)
		args = append(args, *filter.Date)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	// Count total
	countQuery := `
		SELECT COUNT(*)
		FROM attendance_records a
		JOIN workers w ON w.id = a.worker_id
		WHERE ` + baseWhere
	var total int
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	// Build ORDER BY
	orderByField := "a.date"
	switch filter.SortBy {
	case "worker_name":
		orderByField = "w.name"
	case "status":
		orderByField = "a.status"
	case "amount":
		orderByField = "a.amount"
	}
	sortOrder := "DESC"
	if strings.ToLower(filter.SortOrder) == "asc" {
		sortOrder = "ASC"
	}

	// Build query with pagination
	selectQuery := fmt.Sprintf(`%s
		WHERE %s
		ORDER BY %s %s, a.created_at DESC
		LIMIT $%d OFFSET $%d
	`, attendanceSelect, baseWhere, orderByField, sortOrder, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendance records: %w", err)
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
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, total, nil
}

// Update implements attendance.AttendanceRepository. Worker and date are
// the record's identity and never change here.
func (a *attendanceRepository) Update(ctx context.Context, rec *attendance.Record) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET status = $1, category_id = $2, subcategory_id = $3, amount = $4, narration = $5, updated_at = NOW()
		WHERE id = $6
	`

	commandTag, err := q.Exec(ctx, query,
		rec.Status,
		rec.CategoryID,
		rec.SubcategoryID,
		rec.Amount,
		rec.Narration,
		rec.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// Delete implements attendance.AttendanceRepository.
func (a *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, a.db)

	query := `DELETE FROM attendance_records WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}
