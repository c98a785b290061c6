package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fluxo/internal/errors"
	"fluxo/internal/ledger"
	"fluxo/internal/services"
)

// CategoryHandler handles category-related requests
type CategoryHandler struct {
	categoryService services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategoryRequest represents the request payload for creating a category
type CreateCategoryRequest struct {
	FlowType ledger.FlowType `json:"flow_type" binding:"required,flow_type"`
	Name     string          `json:"name" binding:"required,max=100"`
}

type categoryURI struct {
	FlowType ledger.FlowType `uri:"flow_type" binding:"required,flow_type"`
	Name     string          `uri:"name" binding:"required"`
}

type filterOptionsQuery struct {
	FlowType ledger.FlowType `form:"flow_type" binding:"omitempty,flow_type"`
}

// GetCategories handles the retrieval of both category lists
// @Summary     Get categories
// @Description Get the expense and income categories of a profile
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       profile_id path string true "Profile ID"
// @Success     200 {object} ledger.Categories "Categories"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profiles/{profile_id}/categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	key, err := profileKey(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	cats, err := h.categoryService.GetCategories(key)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": cats})
}

// GetFilterOptions handles the category choices of the list filter
// @Summary     Get category filter options
// @Description Sorted, de-duplicated category names for one flow type, or both when omitted
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       profile_id path  string true  "Profile ID"
// @Param       flow_type  query string false "expense or income"
// @Success     200 {object} map[string]interface{} "Options"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profiles/{profile_id}/categories/options [get]
func (h *CategoryHandler) GetFilterOptions(c *gin.Context) {
	key, err := profileKey(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var q filterOptionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	options, err := h.categoryService.GetFilterOptions(key, q.FlowType)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"options": options})
}

// CreateCategory handles the creation of a new category
// @Summary     Create a category
// @Description Add a category to the expense or income list
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       profile_id path string                true "Profile ID"
// @Param       request    body CreateCategoryRequest true "Category"
// @Success     201 {object} map[string]interface{} "Category added"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Duplicate"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profiles/{profile_id}/categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	key, err := profileKey(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	name, n, err := h.categoryService.AddCategory(key, req.FlowType, req.Name)
	if err != nil {
		respondWithFailure(c, err, n)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"category": name, "notification": n})
}

// DeleteCategory handles the deletion of a category
// @Summary     Delete a category
// @Description Remove a category once confirmed. Records already using it keep the name.
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       profile_id path  string true  "Profile ID"
// @Param       flow_type  path  string true  "expense or income"
// @Param       name       path  string true  "Category name"
// @Param       confirm    query bool   false "Confirm the deletion"
// @Success     200 {object} map[string]interface{} "Notification"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     428 {object} ErrorResponse "Confirmation required"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profiles/{profile_id}/categories/{flow_type}/{name} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	key, err := profileKey(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var uri categoryURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	n, err := h.categoryService.DeleteCategory(key, uri.FlowType, uri.Name, confirmer(c))
	if err != nil {
		respondWithFailure(c, err, n)
		return
	}

	c.JSON(http.StatusOK, gin.H{"notification": n})
}
