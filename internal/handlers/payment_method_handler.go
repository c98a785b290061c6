package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fluxo/internal/errors"
	"fluxo/internal/services"
)

// PaymentMethodHandler handles the cards and banks of a profile.
type PaymentMethodHandler struct {
	paymentMethodService services.PaymentMethodServicer
}

// NewPaymentMethodHandler creates a new PaymentMethodHandler
func NewPaymentMethodHandler(paymentMethodService services.PaymentMethodServicer) *PaymentMethodHandler {
	return &PaymentMethodHandler{paymentMethodService: paymentMethodService}
}

// CreateBankRequest represents the request payload for adding a bank
type CreateBankRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// GetPaymentMethods handles the retrieval of cards and banks
// @Summary     Get payment methods
// @Description Get the credit cards and debit accounts of a profile
// @Tags        payment-methods
// @Produce     json
// @Security    BearerAuth
// @Param       profile_id path string true "Profile ID"
// @Success     200 {object} ledger.PaymentMethods "Payment methods"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profiles/{profile_id}/payment-methods [get]
func (h *PaymentMethodHandler) GetPaymentMethods(c *gin.Context) {
	key, err := profileKey(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	methods, err := h.paymentMethodService.GetPaymentMethods(key)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payment_methods": methods})
}

// CreateBank handles adding a bank
// @Summary     Add a bank
// @Description Register a bank as both a credit card and a debit account
// @Tags        payment-methods
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       profile_id path string            true "Profile ID"
// @Param       request    body CreateBankRequest true "Bank"
// @Success     201 {object} map[string]interface{} "Bank added"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Duplicate"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profiles/{profile_id}/payment-methods [post]
func (h *PaymentMethodHandler) CreateBank(c *gin.Context) {
	key, err := profileKey(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	name, n, err := h.paymentMethodService.AddBank(key, req.Name)
	if err != nil {
		respondWithFailure(c, err, n)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"name": name, "notification": n})
}

// DeleteBank handles removing a bank
// @Summary     Delete a bank
// @Description Remove a bank from both lists once confirmed
// @Tags        payment-methods
// @Produce     json
// @Security    BearerAuth
// @Param       profile_id path  string true  "Profile ID"
// @Param       name       path  string true  "Bank name"
// @Param       confirm    query bool   false "Confirm the deletion"
// @Success     200 {object} map[string]interface{} "Notification"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     428 {object} ErrorResponse "Confirmation required"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profiles/{profile_id}/payment-methods/{name} [delete]
func (h *PaymentMethodHandler) DeleteBank(c *gin.Context) {
	key, err := profileKey(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	n, err := h.paymentMethodService.DeleteBank(key, c.Param("name"), confirmer(c))
	if err != nil {
		respondWithFailure(c, err, n)
		return
	}

	c.JSON(http.StatusOK, gin.H{"notification": n})
}
