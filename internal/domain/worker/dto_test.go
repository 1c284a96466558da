package worker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagebook/wagebook-backend-go/internal/pkg/validator"
)

func validationFields(t *testing.T, err error) map[string]string {
	t.Helper()
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	return errs.ToMap()
}

func strPtr(s string) *string {
	return &s
}

func TestCreateWorkerRequest_Validate_NameOnly(t *testing.T) {
	req := CreateWorkerRequest{Name: "Ramesh"}

	assert.NoError(t, req.Validate())
}

func TestCreateWorkerRequest_Validate_AllFields(t *testing.T) {
	req := CreateWorkerRequest{
		Name:           "Ramesh Kumar",
		Address:        strPtr("Sector 12, Noida"),
		Phone:          strPtr("98765 43210"),
		OpeningBalance: "-150.50",
	}

	assert.NoError(t, req.Validate())
}

func TestCreateWorkerRequest_Validate_EmptyName(t *testing.T) {
	req := CreateWorkerRequest{Name: "   "}

	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "name")
}

func TestCreateWorkerRequest_Validate_NameTooLong(t *testing.T) {
	req := CreateWorkerRequest{Name: strings.Repeat("x", 101)}

	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "name")
}

func TestCreateWorkerRequest_Validate_BadPhone(t *testing.T) {
	req := CreateWorkerRequest{Name: "Ramesh", Phone: strPtr("12345")}

	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "phone")
}

func TestCreateWorkerRequest_Validate_PhoneSeparatorsAccepted(t *testing.T) {
	req := CreateWorkerRequest{Name: "Ramesh", Phone: strPtr("(987) 654-3210")}

	assert.NoError(t, req.Validate())
}

func TestCreateWorkerRequest_Validate_BadOpeningBalance(t *testing.T) {
	req := CreateWorkerRequest{Name: "Ramesh", OpeningBalance: "fifty"}

	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "opening_balance")
}

func TestUpdateWorkerRequest_Validate_BadID(t *testing.T) {
	req := UpdateWorkerRequest{ID: "nope"}

	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "id")
}

func TestUpdateWorkerRequest_Validate_NoFieldsAllowed(t *testing.T) {
	req := UpdateWorkerRequest{ID: "123e4567-e89b-12d3-a456-426614174000"}

	assert.NoError(t, req.Validate())
}

func TestUpdateWorkerRequest_Validate_EmptyNameRejected(t *testing.T) {
	req := UpdateWorkerRequest{
		ID:   "123e4567-e89b-12d3-a456-426614174000",
		Name: strPtr(""),
	}

	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "name")
}

func TestListWorkersRequest_Validate_Defaults(t *testing.T) {
	req := ListWorkersRequest{}

	require.NoError(t, req.Validate())
	assert.Equal(t, 1, req.Page)
	assert.Equal(t, 20, req.Limit)
	assert.Equal(t, "name", req.SortBy)
	assert.Equal(t, "asc", req.SortOrder)
}

func TestListWorkersRequest_Validate_BadSortField(t *testing.T) {
	req := ListWorkersRequest{SortBy: "balance"}

	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "sort_by")
}
