package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/wagebook/wagebook-backend-go/internal/domain/ledger"
)

const sheetName = "Sheet1"

// DetailedWorkbook renders the detailed report as an XLSX workbook with one
// event per row. The caller owns closing the file.
func DetailedWorkbook(report *ledger.DetailedReport) (*excelize.File, error) {
	f := excelize.NewFile()
	if _, err := f.NewSheet(sheetName); err != nil {
		return nil, err
	}

	// Add headers
	col := 'A'
	for _, h := range detailedHeader {
		f.SetCellValue(sheetName, string(col)+"1", h)
		col++
	}

	// Add data
	rowNo := 2
	for _, w := range report.Workers {
		for _, e := range w.Events {
			f.SetCellValue(sheetName, "A"+fmt.Sprint(rowNo), e.Date)
			f.SetCellValue(sheetName, "B"+fmt.Sprint(rowNo), e.WorkerName)
			f.SetCellValue(sheetName, "C"+fmt.Sprint(rowNo), e.Status)
			f.SetCellValue(sheetName, "D"+fmt.Sprint(rowNo), e.Category)
			f.SetCellValue(sheetName, "E"+fmt.Sprint(rowNo), e.Subcategory)
			f.SetCellValue(sheetName, "F"+fmt.Sprint(rowNo), e.WageAmount)
			f.SetCellValue(sheetName, "G"+fmt.Sprint(rowNo), e.PaymentAmount)
			f.SetCellValue(sheetName, "H"+fmt.Sprint(rowNo), e.RunningBalance)
			f.SetCellValue(sheetName, "I"+fmt.Sprint(rowNo), e.Narration)
			rowNo++
		}
	}

	return f, nil
}

// SummaryWorkbook renders the summary report as an XLSX workbook with one
// worker per row.
func SummaryWorkbook(report *ledger.SummaryReport) (*excelize.File, error) {
	f := excelize.NewFile()
	if _, err := f.NewSheet(sheetName); err != nil {
		return nil, err
	}

	// Add headers
	col := 'A'
	for _, h := range summaryHeader {
		f.SetCellValue(sheetName, string(col)+"1", h)
		col++
	}

	// Add data
	for i, row := range report.Rows {
		rowNo := i + 2
		f.SetCellValue(sheetName, "A"+fmt.Sprint(rowNo), row.WorkerName)
		f.SetCellValue(sheetName, "B"+fmt.Sprint(rowNo), row.OpeningBalance)
		f.SetCellValue(sheetName, "C"+fmt.Sprint(rowNo), row.DaysWorked)
		f.SetCellValue(sheetName, "D"+fmt.Sprint(rowNo), row.TotalWages)
		f.SetCellValue(sheetName, "E"+fmt.Sprint(rowNo), row.TotalPayments)
		f.SetCellValue(sheetName, "F"+fmt.Sprint(rowNo), row.NetBalance)
	}

	return f, nil
}
