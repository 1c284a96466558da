package payment

import (
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

func TestRecordPaymentRequest_Validate_Success(t *testing.T) {
	req := RecordPaymentRequest{
		WorkerID:    "123e4567-e89b-12d3-a456-426614174000",
		Date:        "2024-03-15",
		Amount:      "250.50",
		PaymentMode: "cash",
	}

	assert.NoError(t, req.Validate())
}

func TestRecordPaymentRequest_Validate_ModeCaseInsensitive(t *testing.T) {
	req := RecordPaymentRequest{
		WorkerID:    "123e4567-e89b-12d3-a456-426614174000",
		Date:        "2024-03-15",
		Amount:      "250",
		PaymentMode: "UPI",
	}

	assert.NoError(t, req.Validate())
}

func TestRecordPaymentRequest_Validate_ZeroAmount(t *testing.T) {
	req := RecordPaymentRequest{
		WorkerID:    "123e4567-e89b-12d3-a456-426614174000",
		Date:        "2024-03-15",
		Amount:      "0",
		PaymentMode: "cash",
	}

	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "amount")
}

func TestRecordPaymentRequest_Validate_NegativeAmount(t *testing.T) {
	req := RecordPaymentRequest{
		WorkerID:    "123e4567-e89b-12d3-a456-426614174000",
		Date:        "2024-03-15",
		Amount:      "-10",
		PaymentMode: "cash",
	}

	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "amount")
}

func TestRecordPaymentRequest_Validate_MissingMode(t *testing.T) {
	req := RecordPaymentRequest{
		WorkerID: "123e4567-e89b-12d3-a456-426614174000",
		Date:     "2024-03-15",
		Amount:   "250",
	}

	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "payment_mode")
}

func TestRecordPaymentRequest_Validate_UnknownMode(t *testing.T) {
	req := RecordPaymentRequest{
		WorkerID:    "123e4567-e89b-12d3-a456-426614174000",
		Date:        "2024-03-15",
		Amount:      "250",
		PaymentMode: "cheque",
	}

	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "payment_mode")
}

func TestRecordPaymentRequest_Validate_BadDate(t *testing.T) {
	req := RecordPaymentRequest{
		WorkerID:    "123e4567-e89b-12d3-a456-426614174000",
		Date:        "2024/03/15",
		Amount:      "250",
		PaymentMode: "cash",
	}

	fields := validationFields(t, req.Validate())
	assert.Contains(t, fields, "date")
}

func TestPaymentFilter_Validate_Defaults(t *testing.T) {
	filter := PaymentFilter{}

	require.NoError(t, filter.Validate())
	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, 20, filter.Limit)
	assert.Equal(t, "date", filter.SortBy)
	assert.Equal(t, "desc", filter.SortOrder)
}

func TestPaymentFilter_Validate_LimitCap(t *testing.T) {
	filter := PaymentFilter{Limit: 101}

	fields := validationFields(t, filter.Validate())
	assert.Contains(t, fields, "limit")
}
