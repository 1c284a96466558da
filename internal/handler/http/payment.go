package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/wagebook/wagebook-backend-go/internal/domain/payment"
	"github.com/wagebook/wagebook-backend-go/internal/handler/http/response"
	paymentService "github.com/wagebook/wagebook-backend-go/internal/service/payment"
)

type PaymentHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type paymentHandlerImpl struct {
	paymentService paymentService.PaymentService
}

func NewPaymentHandler(ps paymentService.PaymentService) PaymentHandler {
	return &paymentHandlerImpl{
		paymentService: ps,
	}
}

// Record implements PaymentHandler.
func (h *paymentHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var req payment.RecordPaymentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.paymentService.RecordPayment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payment recorded successfully", result)
}

// Get implements PaymentHandler.
func (h *paymentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.paymentService.GetPayment(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements PaymentHandler.
func (h *paymentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	// Parse query parameters
	filter := payment.PaymentFilter{}

	// Worker filter
	if workerID := r.URL.Query().Get("worker_id"); workerID != "" {
		filter.WorkerID = &workerID
	}

	// Date range filters
	if startDate := r.URL.Query().Get("start_date"); startDate != "" {
		filter.StartDate = &startDate
	}

	if endDate := r.URL.Query().Get("end_date"); endDate != "" {
		filter.EndDate = &endDate
	}

	// Pagination
	if p := r.URL.Query().Get("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil && pageNum > 0 {
			filter.Page = pageNum
		}
	}

	if l := r.URL.Query().Get("limit"); l != "" {
		if limitNum, err := strconv.Atoi(l); err == nil && limitNum > 0 {
			filter.Limit = limitNum
		}
	}

	// Sorting
	filter.SortBy = r.URL.Query().Get("sort_by")
	filter.SortOrder = r.URL.Query().Get("sort_order")

	results, err := h.paymentService.ListPayments(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Delete implements PaymentHandler.
func (h *paymentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.paymentService.DeletePayment(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "Payment deleted successfully"})
}
