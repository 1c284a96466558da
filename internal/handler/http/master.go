package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wagebook/wagebook-backend-go/internal/domain/master/category"
	"github.com/wagebook/wagebook-backend-go/internal/domain/master/subcategory"
	"github.com/wagebook/wagebook-backend-go/internal/handler/http/response"
	"github.com/wagebook/wagebook-backend-go/internal/service/master"
)

type MasterHandler interface {
	// Category handlers
	CreateCategory(w http.ResponseWriter, r *http.Request)
	GetCategory(w http.ResponseWriter, r *http.Request)
	ListCategories(w http.ResponseWriter, r *http.Request)
	UpdateCategory(w http.ResponseWriter, r *http.Request)
	DeleteCategory(w http.ResponseWriter, r *http.Request)

	// Subcategory handlers
	CreateSubcategory(w http.ResponseWriter, r *http.Request)
	GetSubcategory(w http.ResponseWriter, r *http.Request)
	ListSubcategories(w http.ResponseWriter, r *http.Request)
	UpdateSubcategory(w http.ResponseWriter, r *http.Request)
	DeleteSubcategory(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &masterHandlerImpl{
		masterService: masterService,
	}
}

// ==================== CATEGORY HANDLERS ====================

func (h *masterHandlerImpl) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req category.CreateCategoryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateCategory(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Category created successfully", result)
}

func (h *masterHandlerImpl) GetCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.masterService.GetCategory(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) ListCategories(w http.ResponseWriter, r *http.Request) {
	results, err := h.masterService.ListCategories(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *masterHandlerImpl) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req category.UpdateCategoryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.masterService.UpdateCategory(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "Category updated successfully"})
}

func (h *masterHandlerImpl) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.masterService.DeleteCategory(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "Category deleted successfully"})
}

// ==================== SUBCATEGORY HANDLERS ====================

func (h *masterHandlerImpl) CreateSubcategory(w http.ResponseWriter, r *http.Request) {
	var req subcategory.CreateSubcategoryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateSubcategory(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Subcategory created successfully", result)
}

func (h *masterHandlerImpl) GetSubcategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.masterService.GetSubcategory(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) ListSubcategories(w http.ResponseWriter, r *http.Request) {
	categoryID := r.URL.Query().Get("category_id")

	results, err := h.masterService.ListSubcategories(r.Context(), categoryID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

func (h *masterHandlerImpl) UpdateSubcategory(w http.ResponseWriter, r *http.Request) {
	var req subcategory.UpdateSubcategoryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.masterService.UpdateSubcategory(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "Subcategory updated successfully"})
}

func (h *masterHandlerImpl) DeleteSubcategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.masterService.DeleteSubcategory(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"message": "Subcategory deleted successfully"})
}
