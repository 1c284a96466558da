package subcategory

import "github.com/wagebook/wagebook-backend-go/internal/pkg/validator"

type CreateSubcategoryRequest struct {
	CategoryID string `json:"category_id" validate:"required,uuid"`
	Name       string `json:"name" validate:"required,max=100"`
}

func (r *CreateSubcategoryRequest) Validate() error {
	var errs validator.ValidationErrors

	// CategoryID
	if !validator.IsValidUUID(r.CategoryID) {
		errs = append(errs, validator.ValidationError{
			Field:   "category_id",
			Message: "category_id must be a valid UUID",
		})
	}

	// Name
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateSubcategoryRequest struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required,max=100"`
}

func (r *UpdateSubcategoryRequest) Validate() error {
	var errs validator.ValidationErrors

	// ID
	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}

	// Name
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SubcategoryResponse struct {
	ID           string  `json:"id"`
	CategoryID   string  `json:"category_id"`
	CategoryName *string `json:"category_name,omitempty"`
	Name         string  `json:"name"`
}

func ToSubcategoryResponse(s Subcategory) SubcategoryResponse {
	return SubcategoryResponse{
		ID:           s.ID,
		CategoryID:   s.CategoryID,
		CategoryName: s.CategoryName,
		Name:         s.Name,
	}
}
