package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nhalm/canonlog"
	"github.com/yourorg/inventory/internal/models"
)

// ListCategories godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Param X-Warehouse-ID header string false "Tenant scope"
// @Param filter[name] query string false "Partial filter on name"
// @Param filter[parent_id] query string false "Exact filter on parent_id, null for roots"
// @Param sort query string false "Sort field, prefix with - for descending"
// @Param fields query string false "Comma separated fields"
// @Param include query string false "Comma separated relations"
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page, default 15, capped at 100" default(15) maximum(100)
// @Success 200 {object} PageResponse
// @Failure 422 {object} ErrorResponse
// @Router /categories [get]
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	req, ok := listRequest(w, r)
	if !ok {
		return
	}

	page, err := h.categorySvc.ListCategories(r.Context(), h.scope(r), req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	Paginated(w, shapeAll(page.Data, categoryRecord(page.Includes), page.Fields, page.Includes), page.Meta)
}

// ListAllCategories godoc
// @Summary List every category ordered by name
// @Tags categories
// @Produce json
// @Success 200 {object} ListResponse
// @Router /categories/all [get]
func (h *Handler) ListAllCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categorySvc.ListAllCategories(r.Context(), h.scope(r))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	List(w, convertToCategoryResponses(categories))
}

// ListRootCategories godoc
// @Summary List categories without a parent
// @Tags categories
// @Produce json
// @Success 200 {object} ListResponse
// @Router /categories/roots [get]
func (h *Handler) ListRootCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categorySvc.ListRootCategories(r.Context(), h.scope(r))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	List(w, convertToCategoryResponses(categories))
}

// GetCategory godoc
// @Summary Get a category
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Param include query string false "Comma separated relations"
// @Success 200 {object} CategoryResponse
// @Failure 404 {object} ErrorResponse
// @Router /categories/{id} [get]
func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	category, err := h.categorySvc.GetCategory(r.Context(), h.scope(r), models.GetCategoryParams{
		CategoryID: id,
		Includes:   includeParam(r),
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	Success(w, convertToCategoryResponse(category))
}

// CreateCategory godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body CreateCategoryRequest true "Category"
// @Success 201 {object} CategoryResponse
// @Failure 422 {object} ErrorResponse
// @Router /categories [post]
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	canonlog.AddRequestFields(r.Context(), map[string]any{
		"category_name": req.Name,
	})

	serviceReq := models.CreateCategoryRequest{
		Name:     req.Name,
		ParentID: req.ParentID,
		Image:    req.Image,
		IsActive: req.IsActive,
	}

	category, err := h.categorySvc.CreateCategory(r.Context(), h.scope(r), &serviceReq)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	Created(w, convertToCategoryResponse(category))
}

// UpdateCategory godoc
// @Summary Update a category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body UpdateCategoryRequest true "Category"
// @Success 200 {object} CategoryResponse
// @Failure 422 {object} ErrorResponse
// @Router /categories/{id} [patch]
// @Router /categories/{id} [put]
func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateCategoryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	serviceReq := models.UpdateCategoryRequest{
		ID:       id,
		Name:     req.Name,
		Image:    req.Image,
		IsActive: req.IsActive,
	}
	if req.ParentID.Set {
		serviceReq.ParentID = req.ParentID.Value
		serviceReq.ClearParent = req.ParentID.Value == nil
	}

	category, err := h.categorySvc.UpdateCategory(r.Context(), h.scope(r), &serviceReq)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	Success(w, convertToCategoryResponse(category))
}

// DeleteCategory godoc
// @Summary Delete a category
// @Tags categories
// @Param id path string true "Category ID"
// @Success 204
// @Failure 409 {object} ErrorResponse
// @Router /categories/{id} [delete]
func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.categorySvc.DeleteCategory(r.Context(), h.scope(r), models.DeleteCategoryParams{
		CategoryID: id,
	}); err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
