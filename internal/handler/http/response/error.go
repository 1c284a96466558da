package response

import (
	"errors"
	"net/http"

	"github.com/wagebook/wagebook-backend-go/internal/domain/attendance"
	"github.com/wagebook/wagebook-backend-go/internal/domain/master/category"
	"github.com/wagebook/wagebook-backend-go/internal/domain/master/subcategory"
	"github.com/wagebook/wagebook-backend-go/internal/domain/payment"
	"github.com/wagebook/wagebook-backend-go/internal/domain/worker"
	"github.com/wagebook/wagebook-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Worker domain errors
	switch {
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, worker.ErrPhoneExists):
		Conflict(w, "Phone number already registered to another worker")

	// Master data errors
	case errors.Is(err, category.ErrCategoryNotFound):
		NotFound(w, "Category not found")
	case errors.Is(err, category.ErrCategoryNameExists):
		Conflict(w, "Category name already exists")
	case errors.Is(err, subcategory.ErrSubcategoryNotFound):
		NotFound(w, "Subcategory not found")
	case errors.Is(err, subcategory.ErrSubcategoryNameExists):
		Conflict(w, "Subcategory name already exists in this category")
	case errors.Is(err, subcategory.ErrCategoryMismatch):
		BadRequest(w, "Subcategory does not belong to the given category", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrDuplicateDay):
		Conflict(w, "Attendance already marked for this worker on this date")
	case errors.Is(err, attendance.ErrAbsentWithAmount):
		BadRequest(w, "Absent days cannot carry a wage amount", nil)

	// Payment domain errors
	case errors.Is(err, payment.ErrPaymentNotFound):
		NotFound(w, "Payment not found")
	case errors.Is(err, payment.ErrExceedsBalance):
		Conflict(w, "Payment exceeds the worker's balance; confirm with allow_negative_balance")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
