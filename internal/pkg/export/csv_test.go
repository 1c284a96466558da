package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagebook/wagebook-backend-go/internal/domain/ledger"
)

func TestFilename(t *testing.T) {
	at := time.Date(2024, 1, 31, 10, 30, 0, 0, time.UTC)

	assert.Equal(t, "wagebook_detailed_report_20240131.csv", Filename("detailed", "csv", at))
	assert.Equal(t, "wagebook_summary_report_20240131.xlsx", Filename("summary", "xlsx", at))
}

func TestDetailedCSV(t *testing.T) {
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
						Category:       "Masonry",
						Subcategory:    "Brick laying",
						WageAmount:     "50.00",
						RunningBalance: "150.00",
						Narration:      "",
					},
					{
						Date:           "2024-01-02",
						WorkerName:     "Ramesh",
						PaymentAmount:  "30.00",
						RunningBalance: "120.00",
						Narration:      `advance for "festival"`,
					},
				},
			},
		},
	}

	lines := strings.Split(strings.TrimRight(string(DetailedCSV(report)), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, `"Date","Worker","Status","Category","Subcategory","Wage Amount","Payment Amount","Running Balance","Narration"`, lines[0])
	assert.Equal(t, `"2024-01-01","Ramesh","present","Masonry","Brick laying",50.00,,150.00,""`, lines[1])

	// Embedded quotes are doubled, payment rows carry no status or wage.
	assert.Equal(t, `"2024-01-02","Ramesh","","","",,30.00,120.00,"advance for ""festival"""`, lines[2])
}

func TestDetailedCSV_NoEvents(t *testing.T) {
	report := &ledger.DetailedReport{
		Workers: []ledger.WorkerStatement{
			{WorkerID: "w1", WorkerName: "Ramesh"},
		},
	}

	lines := strings.Split(strings.TrimRight(string(DetailedCSV(report)), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"Date"`)
}

func TestSummaryCSV(t *testing.T) {
	report := &ledger.SummaryReport{
		Rows: []ledger.SummaryRow{
			{
				WorkerID:       "w1",
				WorkerName:     "Ramesh",
				OpeningBalance: "100.00",
				DaysWorked:     2,
				TotalWages:     "50.00",
				TotalPayments:  "30.00",
				NetBalance:     "120.00",
			},
		},
	}

	lines := strings.Split(strings.TrimRight(string(SummaryCSV(report)), "\n"), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t, `"Worker","Opening Balance","Days Worked","Total Wages","Total Payments","Net Balance"`, lines[0])
	assert.Equal(t, `"Ramesh",100.00,2,50.00,30.00,120.00`, lines[1])
}
