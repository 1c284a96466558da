package audit

import "time"

type BalanceAuditResponse struct {
	ID           string `json:"id"`
	WorkerID     string `json:"worker_id"`
	OldBalance   string `json:"old_balance"`
	NewBalance   string `json:"new_balance"`
	ChangeReason string `json:"change_reason"`
	CreatedAt    string `json:"created_at"`
}

func ToBalanceAuditResponse(a *BalanceAudit) BalanceAuditResponse {
	return BalanceAuditResponse{
		ID:           a.ID,
		WorkerID:     a.WorkerID,
		OldBalance:   a.OldBalance.StringFixed(2),
		NewBalance:   a.NewBalance.StringFixed(2),
		ChangeReason: a.ChangeReason,
		CreatedAt:    a.CreatedAt.Format(time.RFC3339),
	}
}
