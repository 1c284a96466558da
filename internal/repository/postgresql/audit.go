package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wagebook/wagebook-backend-go/internal/domain/audit"
	"github.com/wagebook/wagebook-backend-go/internal/pkg/database"
)

type auditRepositoryImpl struct {
	db *database.DB
}

func NewAuditRepository(db *database.DB) audit.AuditRepository {
	return &auditRepositoryImpl{db: db}
}

// Append implements audit.AuditRepository.
func (r *auditRepositoryImpl) Append(ctx context.Context, a *audit.BalanceAudit) error {
	q := GetQuerier(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.New().String()
	}

	query := `
		INSERT INTO balance_audit (id, worker_id, old_balance, new_balance, change_reason, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		a.ID,
		a.WorkerID,
		a.OldBalance,
		a.NewBalance,
		a.ChangeReason,
	).Scan(&a.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to append balance audit: %w", err)
	}

	return nil
}

// ListByWorker implements audit.AuditRepository.
func (r *auditRepositoryImpl) ListByWorker(ctx context.Context, workerID string, limit int) ([]audit.BalanceAudit, error) {
	q := GetQuerier(ctx, r.db)

	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, worker_id, old_balance, new_balance, change_reason, created_at
		FROM balance_audit
		WHERE worker_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, workerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list balance audits: %w", err)
	}
	defer rows.Close()

	var audits []audit.BalanceAudit
	for rows.Next() {
		var a audit.BalanceAudit
		err := rows.Scan(
			&a.ID,
			&a.WorkerID,
			&a.OldBalance,
			&a.NewBalance,
			&a.ChangeReason,
			&a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan balance audit: %w", err)
		}
		audits = append(audits, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return audits, nil
}
