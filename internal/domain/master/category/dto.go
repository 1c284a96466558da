package category

import "github.com/wagebook/wagebook-backend-go/internal/pkg/validator"

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

func (r *CreateCategoryRequest) Validate() error {
	var errs validator.ValidationErrors

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

type UpdateCategoryRequest struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required,max=100"`
}

func (r *UpdateCategoryRequest) Validate() error {
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

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func ToCategoryResponse(c Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name}
}
