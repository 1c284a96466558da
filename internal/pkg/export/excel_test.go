package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagebook/wagebook-backend-go/internal/domain/ledger"
)

func TestDetailedWorkbook(t *testing.T) {
	report := &ledger.DetailedReport{
		Workers: []ledger.WorkerStatement{
			{
				WorkerID:   "w1",
				WorkerName: "Ramesh",
				Events: []ledger.LedgerEventRow{
					{
						Date:           "2024-01-01",
						WorkerName:     "Ramesh",
						Status:         "present",
						WageAmount:     "50.00",
						RunningBalance: "150.00",
					},
				},
			},
		},
	}

	f, err := DetailedWorkbook(report)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue(sheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Date", header)

	date, err := f.GetCellValue(sheetName, "A2")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", date)

	running, err := f.GetCellValue(sheetName, "H2")
	require.NoError(t, err)
	assert.Equal(t, "150.00", running)
}

func TestSummaryWorkbook(t *testing.T) {
	report := &ledger.SummaryReport{
		Rows: []ledger.SummaryRow{
			{
				WorkerName:     "Ramesh",
				OpeningBalance: "100.00",
				DaysWorked:     2,
				TotalWages:     "50.00",
				TotalPayments:  "30.00",
				NetBalance:     "120.00",
			},
		},
	}

	f, err := SummaryWorkbook(report)
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue(sheetName, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Ramesh", name)

	days, err := f.GetCellValue(sheetName, "C2")
	require.NoError(t, err)
	assert.Equal(t, "2", days)
}
