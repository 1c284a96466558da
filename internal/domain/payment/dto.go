package payment

import (
	"strings"
	"time"

	"github.com/wagebook/wagebook-backend-go/internal/pkg/validator"
)

type RecordPaymentRequest struct {
	WorkerID    string  `json:"worker_id" validate:"required,uuid"`
	Date        string  `json:"date" validate:"required"` // YYYY-MM-DD
	Amount      string  `json:"amount" validate:"required"`
	PaymentMode string  `json:"payment_mode,omitempty"`
	Narration   *string `json:"narration,omitempty"`

	// AllowNegativeBalance is the caller's confirmation that the payment
	// may push the worker's balance below zero.
	AllowNegativeBalance bool `json:"allow_negative_balance,omitempty"`
}

func (r *RecordPaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	// WorkerID
	if !validator.IsValidUUID(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id must be a valid UUID",
		})
	}

	// Date
	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	// Amount
	if amount, provided, err := validator.ParseAmount(r.Amount); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be a valid decimal amount",
		})
	} else if !provided || !amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be greater than zero",
		})
	}

	// PaymentMode
	if validator.IsEmpty(r.PaymentMode) {
		errs = append(errs, validator.ValidationError{
			Field:   "payment_mode",
			Message: "payment_mode is required",
		})
	} else if !validator.IsInSlice(strings.ToLower(r.PaymentMode), ValidModes) {
		errs = append(errs, validator.ValidationError{
			Field:   "payment_mode",
			Message: "payment_mode must be one of: cash, upi, bank",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PaymentFilter struct {
	// Search & Filter
	WorkerID  *string `json:"worker_id,omitempty"`
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`

	// Sorting
	SortBy    string `json:"sort_by"`    // date, worker_name, amount
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *PaymentFilter) Validate() error {
	var errs validator.ValidationErrors

	// Page validation
	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	// Limit validation
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	// WorkerID validation
	if f.WorkerID != nil && *f.WorkerID != "" && !validator.IsValidUUID(*f.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id must be a valid UUID",
		})
	}

	// Date validation
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

	// Sort validation
	if f.SortBy != "" {
		validSortFields := []string{"date", "worker_name", "amount"}
		if !validator.IsInSlice(f.SortBy, validSortFields) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_by",
				Message: "sort_by must be one of: date, worker_name, amount",
			})
		}
	} else {
		f.SortBy = "date" // Default sort
	}

	if f.SortOrder != "" {
		validSortOrders := []string{"asc", "desc"}
		if !validator.IsInSlice(strings.ToLower(f.SortOrder), validSortOrders) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_order",
				Message: "sort_order must be one of: asc, desc",
			})
		}
	} else {
		f.SortOrder = "desc" // Default descending (newest first)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PaymentResponse struct {
	ID          string  `json:"id"`
	WorkerID    string  `json:"worker_id"`
	WorkerName  *string `json:"worker_name,omitempty"`
	Date        string  `json:"date"`
	Amount      string  `json:"amount"`
	PaymentMode string  `json:"payment_mode"`
	Narration   *string `json:"narration,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

type ListPaymentsResponse struct {
	Payments []PaymentResponse `json:"payments"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}

func ToPaymentResponse(p *Payment) PaymentResponse {
	return PaymentResponse{
		ID:          p.ID,
		WorkerID:    p.WorkerID,
		WorkerName:  p.WorkerName,
		Date:        p.Date.Format("2006-01-02"),
		Amount:      p.Amount.StringFixed(2),
		PaymentMode: p.PaymentMode,
		Narration:   p.Narration,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
}
