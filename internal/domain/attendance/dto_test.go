package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagebook/wagebook-backend-go/internal/pkg/validator"
)

const (
	testWorkerID      = "123e4567-e89b-12d3-a456-426614174000"
	testCategoryID    = "123e4567-e89b-12d3-a456-426614174001"
	testSubcategoryID = "123e4567-e89b-12d3-a456-426614174002"
)

// validationFields unwraps a validation error into its field map so tests
// can assert on which fields were rejected.
func validationFields(t *testing.T, err error) map[string]string {
	t.Helper()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	return errs.ToMap()
}

func strPtr(s string) *string {
	return &s
}

func TestMarkAttendanceRequest_Validate_Present(t *testing.T) {
	req := MarkAttendanceRequest{
		WorkerID:      testWorkerID,
		Date:          "2024-03-15",
		Status:        "present",
		CategoryID:    strPtr(testCategoryID),
		SubcategoryID: strPtr(testSubcategoryID),
		Amount:        "500",
	}

	assert.NoError(t, req.Validate())
}

func TestMarkAttendanceRequest_Validate_StatusCaseInsensitive(t *testing.T) {
	req := MarkAttendanceRequest{
		WorkerID:      testWorkerID,
		Date:          "2024-03-15",
		Status:        "Present",
		CategoryID:    strPtr(testCategoryID),
		SubcategoryID: strPtr(testSubcategoryID),
		Amount:        "500",
	}

	assert.NoError(t, req.Validate())
}

func TestMarkAttendanceRequest_Validate_AbsentNeedsNoWageFields(t *testing.T) {
	req := MarkAttendanceRequest{
		WorkerID: testWorkerID,
		Date:     "2024-03-15",
		Status:   "absent",
	}

	assert.NoError(t, req.Validate())
}

func TestMarkAttendanceRequest_Validate_AbsentZeroAmountAllowed(t *testing.T) {
	req := MarkAttendanceRequest{
		WorkerID: testWorkerID,
		Date:     "2024-03-15",
		Status:   "absent",
		Amount:   "0",
	}

	assert.NoError(t, req.Validate())
}

func TestMarkAttendanceRequest_Validate_AbsentWithWageRejected(t *testing.T) {
	req := MarkAttendanceRequest{
		WorkerID: testWorkerID,
		Date:     "2024-03-15",
		Status:   "absent",
		Amount:   "500",
	}

	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "amount")
}

func TestMarkAttendanceRequest_Validate_PresentMissingWageFields(t *testing.T) {
	req := MarkAttendanceRequest{
		WorkerID: testWorkerID,
		Date:     "2024-03-15",
		Status:   "present",
	}

	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "amount")
	assert.Contains(t, fields, "category_id")
	assert.Contains(t, fields, "subcategory_id")
}

func TestMarkAttendanceRequest_Validate_PresentZeroWageRejected(t *testing.T) {
	req := MarkAttendanceRequest{
		WorkerID:      testWorkerID,
		Date:          "2024-03-15",
		Status:        "present",
		CategoryID:    strPtr(testCategoryID),
		SubcategoryID: strPtr(testSubcategoryID),
		Amount:        "0",
	}

	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "amount")
}

func TestMarkAttendanceRequest_Validate_UnknownStatus(t *testing.T) {
	req := MarkAttendanceRequest{
		WorkerID: testWorkerID,
		Date:     "2024-03-15",
		Status:   "holiday",
	}

	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "status")
	// An unknown status short-circuits the wage-field rules.
	assert.NotContains(t, fields, "amount")
}

func TestMarkAttendanceRequest_Validate_BadWorkerAndDate(t *testing.T) {
	req := MarkAttendanceRequest{
		WorkerID: "not-a-uuid",
		Date:     "15-03-2024",
		Status:   "absent",
	}

	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "worker_id")
	assert.Contains(t, fields, "date")
}

func TestUpdateAttendanceRequest_Validate_EmptyUpdateAllowed(t *testing.T) {
	req := UpdateAttendanceRequest{ID: testWorkerID}

	assert.NoError(t, req.Validate())
}

func TestUpdateAttendanceRequest_Validate_BadID(t *testing.T) {
	req := UpdateAttendanceRequest{ID: "nope"}

	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "id")
}

func TestUpdateAttendanceRequest_Validate_NegativeAmount(t *testing.T) {
	req := UpdateAttendanceRequest{
		ID:     testWorkerID,
		Amount: strPtr("-10"),
	}

	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "amount")
}

func TestUpdateAttendanceRequest_Validate_UnknownStatus(t *testing.T) {
	req := UpdateAttendanceRequest{
		ID:     testWorkerID,
		Status: strPtr("leave"),
	}

	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "status")
}

func TestBulkMarkRequest_Validate_Success(t *testing.T) {
	req := BulkMarkRequest{
		Date: "2024-03-15",
		Entries: []BulkMarkEntry{
			{
				WorkerID:      testWorkerID,
				Status:        "present",
				CategoryID:    strPtr(testCategoryID),
				SubcategoryID: strPtr(testSubcategoryID),
				Amount:        "500",
			},
			{
				WorkerID: "123e4567-e89b-12d3-a456-426614174009",
				Status:   "absent",
			},
		},
	}

	assert.NoError(t, req.Validate())
}

func TestBulkMarkRequest_Validate_EmptyEntries(t *testing.T) {
	req := BulkMarkRequest{Date: "2024-03-15"}

	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "entries")
}

func TestBulkMarkRequest_Validate_DuplicateWorker(t *testing.T) {
	req := BulkMarkRequest{
		Date: "2024-03-15",
		Entries: []BulkMarkEntry{
			{WorkerID: testWorkerID, Status: "absent"},
			{WorkerID: testWorkerID, Status: "absent"},
		},
	}

	fields := validationFields(t, req.Validate())
	assert.NotContains(t, fields, "entries[0].worker_id")
	assert.Contains(t, fields, "entries[1].worker_id")
}

func TestBulkMarkRequest_Validate_EntryErrorsAreIndexed(t *testing.T) {
	req := BulkMarkRequest{
		Date: "2024-03-15",
		Entries: []BulkMarkEntry{
			{WorkerID: testWorkerID, Status: "absent"},
			{WorkerID: "123e4567-e89b-12d3-a456-426614174009", Status: "present"},
		},
	}

	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "entries[1].amount")
	assert.Contains(t, fields, "entries[1].category_id")
	assert.NotContains(t, fields, "entries[0].amount")
}

func TestAttendanceFilter_Validate_Defaults(t *testing.T) {
	filter := AttendanceFilter{}

	require.NoError(t, filter.Validate())
	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, 20, filter.Limit)
	assert.Equal(t, "date", filter.SortBy)
	assert.Equal(t, "desc", filter.SortOrder)
}

func TestAttendanceFilter_Validate_LimitCap(t *testing.T) {
	filter := AttendanceFilter{Limit: 500}

	fields := validationFields(t, filter.Validate())
	assert.Contains(t, fields, "limit")
}

func TestAttendanceFilter_Validate_BadSortField(t *testing.T) {
	filter := AttendanceFilter{SortBy: "narration"}

	fields := validationFields(t, filter.Validate())
	assert.Contains(t, fields, "sort_by")
}
