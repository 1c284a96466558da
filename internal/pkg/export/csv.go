// Package export renders ledger reports into downloadable CSV and XLSX
// documents.
package export

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/wagebook/wagebook-backend-go/internal/domain/ledger"
)

const appName = "wagebook"

var detailedHeader = []string{
	"Date",
	"Worker",
	"Status",
	"Category",
	"Subcategory",
	"Wage Amount",
	"Payment Amount",
	"Running Balance",
	"Narration",
}

var summaryHeader = []string{
	"Worker",
	"Opening Balance",
	"Days Worked",
	"Total Wages",
	"Total Payments",
	"Net Balance",
}

// Filename builds the conventional download name for a report,
// e.g. wagebook_detailed_report_20240131.csv.
func Filename(reportType, ext string, at time.Time) string {
	return fmt.Sprintf("%s_%s_report_%s.%s", appName, reportType, at.Format("20060102"), ext)
}

// DetailedCSV renders the detailed report as one event per line across all
// workers. Text fields are always quoted, amounts are written bare.
func DetailedCSV(report *ledger.DetailedReport) []byte {
	var buf bytes.Buffer

	writeLine(&buf, quoteAll(detailedHeader))
	for _, w := range report.Workers {
		for _, e := range w.Events {
			writeLine(&buf, []string{
				quote(e.Date),
				quote(e.WorkerName),
				quote(e.Status),
				quote(e.Category),
				quote(e.Subcategory),
				e.WageAmount,
				e.PaymentAmount,
				e.RunningBalance,
				quote(e.Narration),
			})
		}
	}

	return buf.Bytes()
}

// SummaryCSV renders the summary report as one line per worker.
func SummaryCSV(report *ledger.SummaryReport) []byte {
	var buf bytes.Buffer

	writeLine(&buf, quoteAll(summaryHeader))
	for _, row := range report.Rows {
		writeLine(&buf, []string{
			quote(row.WorkerName),
			row.OpeningBalance,
			strconv.Itoa(row.DaysWorked),
			row.TotalWages,
			row.TotalPayments,
			row.NetBalance,
		})
	}

	return buf.Bytes()
}

func writeLine(buf *bytes.Buffer, cells []string) {
	buf.WriteString(strings.Join(cells, ","))
	buf.WriteByte('\n')
}

// quote wraps a text cell in double quotes, doubling embedded quotes per
// RFC 4180.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func quoteAll(cells []string) []string {
	quoted := make([]string, len(cells))
	for i, c := range cells {
		quoted[i] = quote(c)
	}
	return quoted
}
