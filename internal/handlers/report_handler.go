package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fluxo/internal/errors"
	"fluxo/internal/ledger"
	"fluxo/internal/services"
)

// ReportHandler serves the derived views of a profile.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

type monthQuery struct {
	Month string `form:"month" binding:"omitempty,year_month"`
}

func bindMonth(c *gin.Context) (ledger.Month, error) {
	var q monthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	return ledger.Month(q.Month), nil
}

// GetSummary handles the dashboard summary
// @Summary     Get summary
// @Description Month stats, totals of the filtered list and annual totals. The month defaults to the current one.
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       profile_id   path  string true  "Profile ID"
// @Param       month        query string false "Month (YYYY-MM)"
// @Param       flow_type    query string false "expense or income"
// @Param       category     query string false "Category"
// @Param       card_or_bank query string false "Card or bank"
// @Param       spend_type   query string false "Fixed or Variable"
// @Success     200 {object} services.Summary "Summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profiles/{profile_id}/reports/summary [get]
func (h *ReportHandler) GetSummary(c *gin.Context) {
	key, err := profileKey(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var filter TransactionFilterQuery
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	summary, err := h.reportService.GetSummary(key, filter.criteria())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetBreakdown handles the spending per category
// @Summary     Get category breakdown
// @Description The month's expenses grouped by category, largest first
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       profile_id path  string true  "Profile ID"
// @Param       month      query string false "Month (YYYY-MM)"
// @Success     200 {object} map[string]interface{} "Breakdown"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profiles/{profile_id}/reports/breakdown [get]
func (h *ReportHandler) GetBreakdown(c *gin.Context) {
	key, err := profileKey(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	month, err := bindMonth(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	shares, err := h.reportService.GetBreakdown(key, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"breakdown": shares})
}

// GetBreakdownChart renders the breakdown as a pie chart
// @Summary     Get category breakdown chart
// @Tags        reports
// @Produce     png
// @Security    BearerAuth
// @Param       profile_id path  string true  "Profile ID"
// @Param       month      query string false "Month (YYYY-MM)"
// @Success     200 {file} binary "PNG image"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Nothing to chart"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profiles/{profile_id}/reports/breakdown/chart [get]
func (h *ReportHandler) GetBreakdownChart(c *gin.Context) {
	key, err := profileKey(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	month, err := bindMonth(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	img, err := h.reportService.RenderBreakdownChart(key, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", img)
}

// GetProjection handles the forecast
// @Summary     Get projection
// @Description Fixed, variable, income and balance of the next twelve months, counting every scheduled record
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       profile_id path string true "Profile ID"
// @Success     200 {object} map[string]interface{} "Projection"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profiles/{profile_id}/reports/projection [get]
func (h *ReportHandler) GetProjection(c *gin.Context) {
	key, err := profileKey(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rows, err := h.reportService.GetProjection(key)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projection": rows})
}

// GetProjectionChart renders the forecast as a line chart
// @Summary     Get projection chart
// @Tags        reports
// @Produce     png
// @Security    BearerAuth
// @Param       profile_id path string true "Profile ID"
// @Success     200 {file} binary "PNG image"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Nothing to chart"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profiles/{profile_id}/reports/projection/chart [get]
func (h *ReportHandler) GetProjectionChart(c *gin.Context) {
	key, err := profileKey(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	img, err := h.reportService.RenderProjectionChart(key)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", img)
}
