package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "tripplanner/internal/delivery/http/helpers"
	"tripplanner/internal/domain"
)

// AddItemRequest is the request body for POST /trips/me/checklist
type AddItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// Validate implements Validator.
func (a AddItemRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(a.Title) == "" {
		errs = append(errs, "title is required")
	}
	return errs
}

// SetCompletedRequest is the request body for PATCH /trips/me/checklist/{itemID}
type SetCompletedRequest struct {
	Completed bool `json:"completed"`
}

// ChecklistResponse is the response body for GET /trips/me/checklist
type ChecklistResponse struct {
	Items    []domain.ChecklistItem    `json:"items"`
	Progress *domain.ChecklistProgress `json:"progress"`
}

type ChecklistController struct {
	Logger  *slog.Logger
	Service domain.ChecklistService
}

func NewChecklistController(logger *slog.Logger, svc domain.ChecklistService) *ChecklistController {
	return &ChecklistController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List checklist items with progress
// @Tags checklist
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains items and progress"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /trips/me/checklist [get]
func (c *ChecklistController) List(w http.ResponseWriter, r *http.Request) {
	code, ok := tripCode(w, r)
	if !ok {
		return
	}
	items, progress, err := c.Service.List(r.Context(), code)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, ChecklistResponse{Items: items, Progress: progress})
}

// AddItem godoc
// @Summary Add a custom checklist item
// @Tags checklist
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body AddItemRequest true "Item data"
// @Success 201 {object} helpers.APIResponse "data contains the created item"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /trips/me/checklist [post]
func (c *ChecklistController) AddItem(w http.ResponseWriter, r *http.Request) {
	code, ok := tripCode(w, r)
	if !ok {
		return
	}
	var req AddItemRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	item, err := c.Service.AddItem(r.Context(), code, req.Title, req.Description, req.Category)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, item)
}

// SetCompleted godoc
// @Summary Mark a checklist item complete or incomplete
// @Tags checklist
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param itemID path string true "Checklist item ID"
// @Param body body SetCompletedRequest true "Completion state"
// @Success 200 {object} helpers.APIResponse "data contains updated: true"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /trips/me/checklist/{itemID} [patch]
func (c *ChecklistController) SetCompleted(w http.ResponseWriter, r *http.Request) {
	code, ok := tripCode(w, r)
	if !ok {
		return
	}
	itemID := r.PathValue("itemID")
	var req SetCompletedRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.SetCompleted(r.Context(), code, itemID, req.Completed); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "checklist item not found")
			return
		}
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"updated": true})
}

// DeleteItem godoc
// @Summary Delete a checklist item
// @Tags checklist
// @Produce json
// @Security BearerAuth
// @Param itemID path string true "Checklist item ID"
// @Success 200 {object} helpers.APIResponse "data contains deleted: true"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /trips/me/checklist/{itemID} [delete]
func (c *ChecklistController) DeleteItem(w http.ResponseWriter, r *http.Request) {
	code, ok := tripCode(w, r)
	if !ok {
		return
	}
	itemID := r.PathValue("itemID")
	if err := c.Service.DeleteItem(r.Context(), code, itemID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "checklist item not found")
			return
		}
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"deleted": true})
}

// AddSuggestions godoc
// @Summary Add commonly forgotten items
// @Description Scans the checklist for commonly forgotten items and appends the ones that are missing.
// @Tags checklist
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the newly added items"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /trips/me/checklist/suggestions [post]
func (c *ChecklistController) AddSuggestions(w http.ResponseWriter, r *http.Request) {
	code, ok := tripCode(w, r)
	if !ok {
		return
	}
	added, err := c.Service.AddSuggestions(r.Context(), code)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, added)
}
