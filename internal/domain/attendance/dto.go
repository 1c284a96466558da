package attendance

import (
	"fmt"
	"strings"
	"time"

	"github.com/wagebook/wagebook-backend-go/internal/pkg/validator"
)

type MarkAttendanceRequest struct {
	WorkerID      string  `json:"worker_id" validate:"required,uuid"`
	Date          string  `json:"date" validate:"required"` // YYYY-MM-DD
	Status        string  `json:"status" validate:"required"`
	CategoryID    *string `json:"category_id,omitempty"`
	SubcategoryID *string `json:"subcategory_id,omitempty"`
	Amount        string  `json:"amount,omitempty"`
	Narration     *string `json:"narration,omitempty"`
}

func (r *MarkAttendanceRequest) Validate() error {
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

	errs = append(errs, validateEntryFields(r.Status, r.Amount, r.CategoryID, r.SubcategoryID)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateAttendanceRequest struct {
	ID            string  `json:"-"`
	Status        *string `json:"status,omitempty"`
	CategoryID    *string `json:"category_id,omitempty"`
	SubcategoryID *string `json:"subcategory_id,omitempty"`
	Amount        *string `json:"amount,omitempty"`
	Narration     *string `json:"narration,omitempty"`
}

// Validate checks field shapes only. Rules that span fields, such as a
// positive amount being required for non-absent records, are enforced by
// the service against the merged record.
func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	// ID
	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}

	// Status
	if r.Status != nil && !validator.IsInSlice(strings.ToLower(*r.Status), ValidStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, absent, halfday",
		})
	}

	// Amount
	if r.Amount != nil {
		if amount, provided, err := validator.ParseAmount(*r.Amount); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "amount",
				Message: "amount must be a valid decimal amount",
			})
		} else if provided && amount.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "amount",
				Message: "amount must not be negative",
			})
		}
	}

	// CategoryID
	if r.CategoryID != nil && *r.CategoryID != "" && !validator.IsValidUUID(*r.CategoryID) {
		errs = append(errs, validator.ValidationError{
			Field:   "category_id",
			Message: "category_id must be a valid UUID",
		})
	}

	// SubcategoryID
	if r.SubcategoryID != nil && *r.SubcategoryID != "" && !validator.IsValidUUID(*r.SubcategoryID) {
		errs = append(errs, validator.ValidationError{
			Field:   "subcategory_id",
			Message: "subcategory_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BulkMarkEntry struct {
	WorkerID      string  `json:"worker_id" validate:"required,uuid"`
	Status        string  `json:"status" validate:"required"`
	CategoryID    *string `json:"category_id,omitempty"`
	SubcategoryID *string `json:"subcategory_id,omitempty"`
	Amount        string  `json:"amount,omitempty"`
	Narration     *string `json:"narration,omitempty"`
}

type BulkMarkRequest struct {
	Date    string          `json:"date" validate:"required"` // YYYY-MM-DD
	Entries []BulkMarkEntry `json:"entries" validate:"required,min=1"`
}

func (r *BulkMarkRequest) Validate() error {
	var errs validator.ValidationErrors

	// Date
	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(r.Entries) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "entries",
			Message: "entries must contain at least one worker",
		})
	}

	seen := make(map[string]bool, len(r.Entries))
	for i, entry := range r.Entries {
		prefix := fmt.Sprintf("entries[%d].", i)

		if !validator.IsValidUUID(entry.WorkerID) {
			errs = append(errs, validator.ValidationError{
				Field:   prefix + "worker_id",
				Message: "worker_id must be a valid UUID",
			})
		} else if seen[entry.WorkerID] {
			errs = append(errs, validator.ValidationError{
				Field:   prefix + "worker_id",
				Message: "worker_id is listed more than once",
			})
		} else {
			seen[entry.WorkerID] = true
		}

		for _, e := range validateEntryFields(entry.Status, entry.Amount, entry.CategoryID, entry.SubcategoryID) {
			e.Field = prefix + e.Field
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// validateEntryFields enforces the entry-time rules shared by single and
// bulk marking: a known status, a well-formed amount, a zero or empty
// amount on absent days, and category, subcategory and a positive amount
// on present and halfday records.
func validateEntryFields(status, amount string, categoryID, subcategoryID *string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	st := strings.ToLower(status)
	if !validator.IsInSlice(st, ValidStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, absent, halfday",
		})
		return errs
	}

	parsed, provided, err := validator.ParseAmount(amount)
	if err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be a valid decimal amount",
		})
	}

	if st == StatusAbsent {
		if err == nil && provided && parsed.IsPositive() {
			errs = append(errs, validator.ValidationError{
				Field:   "amount",
				Message: "amount must be empty or zero when status is absent",
			})
		}
		if categoryID != nil && *categoryID != "" && !validator.IsValidUUID(*categoryID) {
			errs = append(errs, validator.ValidationError{
				Field:   "category_id",
				Message: "category_id must be a valid UUID",
			})
		}
		if subcategoryID != nil && *subcategoryID != "" && !validator.IsValidUUID(*subcategoryID) {
			errs = append(errs, validator.ValidationError{
				Field:   "subcategory_id",
				Message: "subcategory_id must be a valid UUID",
			})
		}
		return errs
	}

	if err == nil && (!provided || !parsed.IsPositive()) {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be greater than zero for present and halfday records",
		})
	}
	if categoryID == nil || !validator.IsValidUUID(*categoryID) {
		errs = append(errs, validator.ValidationError{
			Field:   "category_id",
			Message: "category_id is required for present and halfday records",
		})
	}
	if subcategoryID == nil || !validator.IsValidUUID(*subcategoryID) {
		errs = append(errs, validator.ValidationError{
			Field:   "subcategory_id",
			Message: "subcategory_id is required for present and halfday records",
		})
	}

	return errs
}

type AttendanceFilter struct {
	// Search & Filter
	WorkerID  *string `json:"worker_id,omitempty"`
	Status    *string `json:"status,omitempty"`
	Date      *string `json:"date,omitempty"`       // YYYY-MM-DD
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`

	// Sorting
	SortBy    string `json:"sort_by"`    // date, worker_name, status, amount
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *AttendanceFilter) Validate() error {
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

	// Status validation
	if f.Status != nil && !validator.IsInSlice(*f.Status, ValidStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, absent, halfday",
		})
	}

	// Date validation
	if f.Date != nil && *f.Date != "" {
		if _, valid := validator.IsValidDate(*f.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
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

	// Sort validation
	if f.SortBy != "" {
		validSortFields := []string{"date", "worker_name", "status", "amount"}
		if !validator.IsInSlice(f.SortBy, validSortFields) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_by",
				Message: "sort_by must be one of: date, worker_name, status, amount",
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

type AttendanceResponse struct {
	ID              string  `json:"id"`
	WorkerID        string  `json:"worker_id"`
	WorkerName      *string `json:"worker_name,omitempty"`
	Date            string  `json:"date"`
	Status          string  `json:"status"`
	CategoryID      *string `json:"category_id,omitempty"`
	CategoryName    *string `json:"category_name,omitempty"`
	SubcategoryID   *string `json:"subcategory_id,omitempty"`
	SubcategoryName *string `json:"subcategory_name,omitempty"`
	Amount          *string `json:"amount,omitempty"`
	Narration       *string `json:"narration,omitempty"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

type ListAttendanceResponse struct {
	Records []AttendanceResponse `json:"records"`
	Total   int                  `json:"total"`
	Page    int                  `json:"page"`
	Limit   int                  `json:"limit"`
}

type BulkMarkResponse struct {
	Date    string               `json:"date"`
	Records []AttendanceResponse `json:"records"`
}

func ToAttendanceResponse(r *Record) AttendanceResponse {
	resp := AttendanceResponse{
		ID:              r.ID,
		WorkerID:        r.WorkerID,
		WorkerName:      r.WorkerName,
		Date:            r.Date.Format("2006-01-02"),
		Status:          r.Status,
		CategoryID:      r.CategoryID,
		CategoryName:    r.CategoryName,
		SubcategoryID:   r.SubcategoryID,
		SubcategoryName: r.SubcategoryName,
		Narration:       r.Narration,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       r.UpdatedAt.Format(time.RFC3339),
	}
	if r.Amount != nil {
		amount := r.Amount.StringFixed(2)
		resp.Amount = &amount
	}
	return resp
}
