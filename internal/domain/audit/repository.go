package audit

import "context"

type AuditRepository interface {
	Append(ctx context.Context, a *BalanceAudit) error
	ListByWorker(ctx context.Context, workerID string, limit int) ([]BalanceAudit, error)
}
