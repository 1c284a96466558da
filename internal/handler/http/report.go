package http

import (
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/wagebook/wagebook-backend-go/internal/domain/ledger"
	"github.com/wagebook/wagebook-backend-go/internal/handler/http/response"
	"github.com/wagebook/wagebook-backend-go/internal/pkg/export"
	ledgerService "github.com/wagebook/wagebook-backend-go/internal/service/ledger"
)

type ReportHandler interface {
	Detailed(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	ledgerService ledgerService.LedgerService
}

func NewReportHandler(ls ledgerService.LedgerService) ReportHandler {
	return &reportHandlerImpl{
		ledgerService: ls,
	}
}

// Detailed implements ReportHandler. The format query parameter selects the
// response body: json (default), csv or xlsx download.
func (h *reportHandlerImpl) Detailed(w http.ResponseWriter, r *http.Request) {
	filter := reportFilterFromQuery(r)

	report, err := h.ledgerService.DetailedReport(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	switch r.URL.Query().Get("format") {
	case "csv":
		writeCSV(w, export.Filename("detailed", "csv", time.Now()), export.DetailedCSV(&report))
	case "xlsx":
		f, err := export.DetailedWorkbook(&report)
		if err != nil {
			response.InternalServerError(w, "Failed to build workbook")
			return
		}
		defer f.Close()
		writeWorkbook(w, export.Filename("detailed", "xlsx", time.Now()), f)
	default:
		response.Success(w, report)
	}
}

// Summary implements ReportHandler.
func (h *reportHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	filter := reportFilterFromQuery(r)

	report, err := h.ledgerService.SummaryReport(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	switch r.URL.Query().Get("format") {
	case "csv":
		writeCSV(w, export.Filename("summary", "csv", time.Now()), export.SummaryCSV(&report))
	case "xlsx":
		f, err := export.SummaryWorkbook(&report)
		if err != nil {
			response.InternalServerError(w, "Failed to build workbook")
			return
		}
		defer f.Close()
		writeWorkbook(w, export.Filename("summary", "xlsx", time.Now()), f)
	default:
		response.Success(w, report)
	}
}

func reportFilterFromQuery(r *http.Request) ledger.ReportFilter {
	filter := ledger.ReportFilter{}

	if workerID := r.URL.Query().Get("worker_id"); workerID != "" {
		filter.WorkerID = &workerID
	}

	if startDate := r.URL.Query().Get("start_date"); startDate != "" {
		filter.StartDate = &startDate
	}

	if endDate := r.URL.Query().Get("end_date"); endDate != "" {
		filter.EndDate = &endDate
	}

	return filter
}

func writeCSV(w http.ResponseWriter, filename string, body []byte) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	_, _ = w.Write(body)
}

func writeWorkbook(w http.ResponseWriter, filename string, f *excelize.File) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	if err := f.Write(w); err != nil {
		http.Error(w, "Failed to write file", http.StatusInternalServerError)
	}
}
