package worker

import (
	"strings"
	"time"

	"github.com/wagebook/wagebook-backend-go/internal/pkg/validator"
)

type CreateWorkerRequest struct {
	Name           string  `json:"name"`
	Address        *string `json:"address"`
	Phone          *string `json:"phone"`
	OpeningBalance string  `json:"opening_balance"`
}

func (r *CreateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	} else if len(strings.TrimSpace(r.Name)) > 100 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must be at most 100 characters"})
	}

	if r.Phone != nil && !validator.IsEmpty(*r.Phone) && !validator.IsValidPhone(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "phone must contain exactly 10 digits"})
	}

	if _, _, err := validator.ParseAmount(r.OpeningBalance); err != nil {
		errs = append(errs, validator.ValidationError{Field: "opening_balance", Message: "opening_balance must be a valid decimal amount"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateWorkerRequest struct {
	ID             string  `json:"-"`
	Name           *string `json:"name"`
	Address        *string `json:"address"`
	Phone          *string `json:"phone"`
	OpeningBalance *string `json:"opening_balance"`
}

func (r *UpdateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id must be a valid UUID"})
	}

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{Field: "name", Message: "name cannot be empty"})
		} else if len(strings.TrimSpace(*r.Name)) > 100 {
			errs = append(errs, validator.ValidationError{Field: "name", Message: "name must be at most 100 characters"})
		}
	}

	if r.Phone != nil && !validator.IsEmpty(*r.Phone) && !validator.IsValidPhone(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "phone must contain exactly 10 digits"})
	}

	if r.OpeningBalance != nil {
		if _, _, err := validator.ParseAmount(*r.OpeningBalance); err != nil {
			errs = append(errs, validator.ValidationError{Field: "opening_balance", Message: "opening_balance must be a valid decimal amount"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListWorkersRequest struct {
	Search    string `json:"search"`
	Page      int    `json:"page"`
	Limit     int    `json:"limit"`
	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"`
}

func (r *ListWorkersRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 || r.Limit > 100 {
		r.Limit = 20
	}

	if r.SortBy == "" {
		r.SortBy = "name"
	} else if !validator.IsInSlice(r.SortBy, []string{"name", "created_at"}) {
		errs = append(errs, validator.ValidationError{Field: "sort_by", Message: "sort_by must be one of: name, created_at"})
	}

	if r.SortOrder == "" {
		r.SortOrder = "asc"
	} else if !validator.IsInSlice(r.SortOrder, []string{"asc", "desc"}) {
		errs = append(errs, validator.ValidationError{Field: "sort_order", Message: "sort_order must be asc or desc"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkerResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Address        *string `json:"address"`
	Phone          *string `json:"phone"`
	OpeningBalance string  `json:"opening_balance"`
	Balance        string  `json:"balance"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

type ListWorkersResponse struct {
	Workers []WorkerResponse `json:"workers"`
	Total   int              `json:"total"`
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
}

func ToWorkerResponse(w *Worker) WorkerResponse {
	return WorkerResponse{
		ID:             w.ID,
		Name:           w.Name,
		Address:        w.Address,
		Phone:          w.Phone,
		OpeningBalance: w.OpeningBalance.StringFixed(2),
		CreatedAt:      w.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      w.UpdatedAt.Format(time.RFC3339),
	}
}
