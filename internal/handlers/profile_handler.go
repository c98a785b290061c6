package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fluxo/internal/errors"
	"fluxo/internal/pagination"
	"fluxo/internal/services"
)

// ProfileHandler handles profile-wide settings, reset and activity.
type ProfileHandler struct {
	profileService  services.ProfileServicer
	activityService services.ActivityServicer
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService services.ProfileServicer, activityService services.ActivityServicer) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, activityService: activityService}
}

// SetNameRequest represents the request payload for the display name
type SetNameRequest struct {
	Name string `json:"name" binding:"max=100"`
}

// GetName returns the profile's display name
// @Summary     Get display name
// @Tags        profiles
// @Produce     json
// @Security    BearerAuth
// @Param       profile_id path string true "Profile ID"
// @Success     200 {object} map[string]interface{} "Name"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profiles/{profile_id}/name [get]
func (h *ProfileHandler) GetName(c *gin.Context) {
	key, err := profileKey(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	name, err := h.profileService.GetDisplayName(key)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"name": name})
}

// SetName stores the profile's display name
// @Summary     Set display name
// @Tags        profiles
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       profile_id path string         true "Profile ID"
// @Param       request    body SetNameRequest true "Name"
// @Success     200 {object} map[string]interface{} "Notification"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profiles/{profile_id}/name [put]
func (h *ProfileHandler) SetName(c *gin.Context) {
	key, err := profileKey(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	n, err := h.profileService.SetDisplayName(key, req.Name)
	if err != nil {
		respondWithFailure(c, err, n)
		return
	}

	c.JSON(http.StatusOK, gin.H{"notification": n})
}

// ClearData wipes the profile
// @Summary     Clear profile data
// @Description Delete every record, category, card and the name of the profile once confirmed
// @Tags        profiles
// @Produce     json
// @Security    BearerAuth
// @Param       profile_id path  string true  "Profile ID"
// @Param       confirm    query bool   false "Confirm the reset"
// @Success     200 {object} map[string]interface{} "Notification"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     428 {object} ErrorResponse "Confirmation required"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profiles/{profile_id}/data [delete]
func (h *ProfileHandler) ClearData(c *gin.Context) {
	key, err := profileKey(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	n, err := h.profileService.ClearData(key, confirmer(c))
	if err != nil {
		respondWithFailure(c, err, n)
		return
	}

	c.JSON(http.StatusOK, gin.H{"notification": n})
}

// GetActivity lists the profile's notifications
// @Summary     Get activity
// @Description Paginated notifications of the profile's mutations, newest first
// @Tags        profiles
// @Produce     json
// @Security    BearerAuth
// @Param       profile_id path  string true  "Profile ID"
// @Param       page       query int    false "Page number (default 1)"
// @Param       page_size  query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} map[string]interface{} "Activity page"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profiles/{profile_id}/activity [get]
func (h *ProfileHandler) GetActivity(c *gin.Context) {
	key, err := profileKey(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.activityService.ListActivity(key, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
