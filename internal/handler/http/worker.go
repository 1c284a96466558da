package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/wagebook/wagebook-backend-go/internal/domain/worker"
	"github.com/wagebook/wagebook-backend-go/internal/handler/http/response"
	"github.com/wagebook/wagebook-backend-go/internal/service/ledger"
	workerService "github.com/wagebook/wagebook-backend-go/internal/service/worker"
)

type WorkerHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Balance(w http.ResponseWriter, r *http.Request)
	ListAudits(w http.ResponseWriter, r *http.Request)
}

type workerHandlerImpl struct {
	workerService workerService.WorkerService
	ledgerService ledger.LedgerService
}

func NewWorkerHandler(ws workerService.WorkerService, ls ledger.LedgerService) WorkerHandler {
	return &workerHandlerImpl{
		workerService: ws,
		ledgerService: ls,
	}
}

// Create implements WorkerHandler.
func (h *workerHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req worker.CreateWorkerRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.workerService.CreateWorker(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Worker created successfully", result)
}

// Get implements WorkerHandler.
func (h *workerHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.workerService.GetWorker(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements WorkerHandler.
func (h *workerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	req := worker.ListWorkersRequest{
		Search:    r.URL.Query().Get("search"),
		SortBy:    r.URL.Query().Get("sort_by"),
		SortOrder: r.URL.Query().Get("sort_order"),
	}

	if p := r.URL.Query().Get("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil && pageNum > 0 {
			req.Page = pageNum
		}
	}

	if l := r.URL.Query().Get("limit"); l != "" {
		if limitNum, err := strconv.Atoi(l); err == nil && limitNum > 0 {
			req.Limit = limitNum
		}
	}

	results, err := h.workerService.ListWorkers(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Update implements WorkerHandler.
func (h *workerHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req worker.UpdateWorkerRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.workerService.UpdateWorker(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worker updated successfully", result)
}

// Delete implements WorkerHandler.
func (h *workerHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.workerService.DeleteWorker(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "Worker deleted successfully"})
}

// Balance implements WorkerHandler. Unknown or malformed IDs yield a zero
// balance rather than an error.
func (h *workerHandlerImpl) Balance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	balance, err := h.ledgerService.WorkerBalance(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{
		"worker_id": id,
		"balance":   balance.StringFixed(2),
	})
}

// ListAudits implements WorkerHandler.
func (h *workerHandlerImpl) ListAudits(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	limit := 0
	if l := r.URL.Query().Get("limit"); l != "" {
		if limitNum, err := strconv.Atoi(l); err == nil && limitNum > 0 {
			limit = limitNum
		}
	}

	results, err := h.workerService.ListWorkerAudits(r.Context(), id, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
