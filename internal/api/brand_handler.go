package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nhalm/canonlog"
	"github.com/yourorg/inventory/internal/apperrors"
	"github.com/yourorg/inventory/internal/models"
	"github.com/yourorg/inventory/internal/query"
)

// ListBrands godoc
// @Summary List brands
// @Tags brands
// @Produce json
// @Param X-Warehouse-ID header string false "Tenant scope"
// @Param filter[name] query string false "Partial filter on name"
// @Param filter[is_active] query string false "Exact filter on is_active"
// @Param sort query string false "Sort field, prefix with - for descending"
// @Param fields query string false "Comma separated fields"
// @Param include query string false "Comma separated relations"
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page, default 15, capped at 100" default(15) maximum(100)
// @Success 200 {object} PageResponse
// @Failure 422 {object} ErrorResponse
// @Router /brands [get]
func (h *Handler) ListBrands(w http.ResponseWriter, r *http.Request) {
	req, ok := listRequest(w, r)
	if !ok {
		return
	}

	page, err := h.brandSvc.ListBrands(r.Context(), h.scope(r), req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	Paginated(w, shapeAll(page.Data, brandRecord(page.Includes), page.Fields, page.Includes), page.Meta)
}

// ListAllBrands godoc
// @Summary List every brand ordered by name
// @Tags brands
// @Produce json
// @Success 200 {object} ListResponse
// @Router /brands/all [get]
func (h *Handler) ListAllBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.brandSvc.ListAllBrands(r.Context(), h.scope(r))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	List(w, convertToBrandResponses(brands))
}

// ListBrandsByStatus godoc
// @Summary List brands by active status
// @Tags brands
// @Produce json
// @Param status query bool true "Active flag"
// @Success 200 {object} ListResponse
// @Failure 422 {object} ErrorResponse
// @Router /brands/by-status [get]
func (h *Handler) ListBrandsByStatus(w http.ResponseWriter, r *http.Request) {
	active, err := query.ParseBool(r.URL.Query().Get("status"))
	if err != nil {
		handleServiceError(w, r, apperrors.NewValidationError("status", "status must be a boolean"))
		return
	}

	brands, err := h.brandSvc.ListBrandsByStatus(r.Context(), h.scope(r), active)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	List(w, convertToBrandResponses(brands))
}

// GetBrand godoc
// @Summary Get a brand
// @Tags brands
// @Produce json
// @Param id path string true "Brand ID"
// @Param include query string false "Comma separated relations"
// @Success 200 {object} BrandResponse
// @Failure 404 {object} ErrorResponse
// @Router /brands/{id} [get]
func (h *Handler) GetBrand(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	brand, err := h.brandSvc.GetBrand(r.Context(), h.scope(r), models.GetBrandParams{
		BrandID:  id,
		Includes: includeParam(r),
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	Success(w, convertToBrandResponse(brand))
}

// CreateBrand godoc
// @Summary Create a brand
// @Tags brands
// @Accept json
// @Produce json
// @Param brand body CreateBrandRequest true "Brand"
// @Success 201 {object} BrandResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /brands [post]
func (h *Handler) CreateBrand(w http.ResponseWriter, r *http.Request) {
	var req CreateBrandRequest
	if !decodeBody(w, r, &req) {
		return
	}

	canonlog.AddRequestFields(r.Context(), map[string]any{
		"brand_name": req.Name,
	})

	serviceReq := models.CreateBrandRequest{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		IsActive:    req.IsActive,
	}
	if req.Slug != nil {
		serviceReq.Slug = *req.Slug
	}

	brand, err := h.brandSvc.CreateBrand(r.Context(), h.scope(r), &serviceReq)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	Created(w, convertToBrandResponse(brand))
}

// UpdateBrand godoc
// @Summary Update a brand
// @Tags brands
// @Accept json
// @Produce json
// @Param id path string true "Brand ID"
// @Param brand body UpdateBrandRequest true "Brand"
// @Success 200 {object} BrandResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /brands/{id} [patch]
// @Router /brands/{id} [put]
func (h *Handler) UpdateBrand(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateBrandRequest
	if !decodeBody(w, r, &req) {
		return
	}

	serviceReq := models.UpdateBrandRequest{
		ID:          id,
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Image:       req.Image,
		IsActive:    req.IsActive,
	}

	brand, err := h.brandSvc.UpdateBrand(r.Context(), h.scope(r), &serviceReq)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	Success(w, convertToBrandResponse(brand))
}

// ToggleBrandStatus godoc
// @Summary Flip a brand's active flag
// @Tags brands
// @Produce json
// @Param id path string true "Brand ID"
// @Success 200 {object} BrandResponse
// @Failure 404 {object} ErrorResponse
// @Router /brands/{id}/toggle-status [patch]
func (h *Handler) ToggleBrandStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	brand, err := h.brandSvc.ToggleBrandStatus(r.Context(), h.scope(r), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	canonlog.AddRequestFields(r.Context(), map[string]any{
		"brand_active": brand.IsActive,
	})
	Success(w, convertToBrandResponse(brand))
}

// DeleteBrand godoc
// @Summary Delete a brand
// @Tags brands
// @Param id path string true "Brand ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /brands/{id} [delete]
func (h *Handler) DeleteBrand(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.brandSvc.DeleteBrand(r.Context(), h.scope(r), models.DeleteBrandParams{
		BrandID: id,
	}); err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
