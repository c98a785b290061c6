package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fluxo/internal/errors"
	"fluxo/internal/ledger"
	"fluxo/internal/pagination"
	"fluxo/internal/services"
)

// TransactionHandler handles the records of a profile.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateEntryRequest is a new entry. Choices left out are reported by the
// first missing one. When paid is omitted, expenses are paid and income is
// pending.
type CreateEntryRequest struct {
	FlowType      ledger.FlowType      `json:"flow_type" binding:"required,flow_type"`
	Description   string               `json:"description" binding:"max=255"`
	Amount        string               `json:"amount" example:"1.234,56"`
	Date          string               `json:"date" example:"2024-03-15"`
	Category      string               `json:"category" binding:"max=100"`
	SpendType     ledger.SpendType     `json:"spend_type" binding:"omitempty,spend_type"`
	PaymentMethod ledger.PaymentMethod `json:"payment_method" binding:"omitempty,payment_method"`
	CardOrBank    string               `json:"card_or_bank" binding:"max=100"`
	Paid          *bool                `json:"paid"`
	Installment   *bool                `json:"installment"`
	Installments  int                  `json:"installments"`
	Term          ledger.TermMode      `json:"term" binding:"omitempty,term"`
	EndDate       string               `json:"end_date"`
}

func (r CreateEntryRequest) form() ledger.EntryForm {
	paid := r.FlowType == ledger.FlowExpense
	if r.Paid != nil {
		paid = *r.Paid
	}
	return ledger.EntryForm{
		FlowType:      r.FlowType,
		Description:   r.Description,
		Amount:        r.Amount,
		Date:          r.Date,
		Category:      r.Category,
		SpendType:     r.SpendType,
		PaymentMethod: r.PaymentMethod,
		CardOrBank:    r.CardOrBank,
		Paid:          paid,
		Installment:   r.Installment,
		Installments:  r.Installments,
		Term:          r.Term,
		EndDate:       r.EndDate,
	}
}

// UpdateTransactionRequest changes the amount and description of a record.
type UpdateTransactionRequest struct {
	Amount        string `json:"amount" binding:"required"`
	Description   string `json:"description" binding:"max=255"`
	ApplyToSeries bool   `json:"apply_to_series"`
}

// TransactionFilterQuery holds the list filters. Empty values are ignored.
type TransactionFilterQuery struct {
	Month      string           `form:"month" binding:"omitempty,year_month"`
	FlowType   ledger.FlowType  `form:"flow_type" binding:"omitempty,flow_type"`
	Category   string           `form:"category"`
	CardOrBank string           `form:"card_or_bank"`
	SpendType  ledger.SpendType `form:"spend_type" binding:"omitempty,spend_type"`
}

func (q TransactionFilterQuery) criteria() ledger.Criteria {
	return ledger.Criteria{
		Month:      ledger.Month(q.Month),
		Flow:       q.FlowType,
		Category:   q.Category,
		CardOrBank: q.CardOrBank,
		SpendType:  q.SpendType,
	}
}

type deleteTransactionQuery struct {
	Series bool `form:"series"`
}

// CreateEntry handles the creation of an entry
// @Summary     Create an entry
// @Description Create one record, an installment purchase or a monthly recurring series
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       profile_id path string true "Profile ID"
// @Param       request body CreateEntryRequest true "Entry details"
// @Success     201 {object} map[string]interface{} "Created records and notification"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profiles/{profile_id}/transactions [post]
func (h *TransactionHandler) CreateEntry(c *gin.Context) {
	key, err := profileKey(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	created, n, err := h.transactionService.CreateEntry(key, req.form())
	if err != nil {
		respondWithFailure(c, err, n)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transactions": created, "notification": n})
}

// ListTransactions handles the filtered list
// @Summary     List transactions
// @Description Filter the profile's records, income first then newest first, with the totals of the whole filtered list
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       profile_id   path  string true  "Profile ID"
// @Param       month        query string false "Month (YYYY-MM)"
// @Param       flow_type    query string false "expense or income"
// @Param       category     query string false "Category"
// @Param       card_or_bank query string false "Card or bank"
// @Param       spend_type   query string false "Fixed or Variable"
// @Param       page         query int    false "Page number (default 1)"
// @Param       page_size    query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} services.TransactionList "Page of records"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profiles/{profile_id}/transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
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
	var filter TransactionFilterQuery
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	list, err := h.transactionService.ListTransactions(key, filter.criteria(), page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetTransaction handles the retrieval of one record
// @Summary     Get a transaction
// @Description Get a record and the other occurrences of its series
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       profile_id path string true "Profile ID"
// @Param       id         path int    true "Transaction ID"
// @Success     200 {object} services.TransactionDetail "Record"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profiles/{profile_id}/transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	key, err := profileKey(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	detail, err := h.transactionService.GetTransaction(key, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// TogglePaid flips the paid flag of one record
// @Summary     Toggle paid
// @Description Flip the paid flag of exactly one record; the rest of its series is untouched
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       profile_id path string true "Profile ID"
// @Param       id         path int    true "Transaction ID"
// @Success     200 {object} map[string]interface{} "Updated record and notification"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profiles/{profile_id}/transactions/{id}/paid [patch]
func (h *TransactionHandler) TogglePaid(c *gin.Context) {
	key, err := profileKey(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	updated, n, err := h.transactionService.TogglePaid(key, id)
	if err != nil {
		respondWithFailure(c, err, n)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": updated, "notification": n})
}

// UpdateTransaction edits a record or its whole series
// @Summary     Update a transaction
// @Description Change the amount and description of one record, or of every record of its series
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       profile_id path string                   true "Profile ID"
// @Param       id         path int                      true "Transaction ID"
// @Param       request    body UpdateTransactionRequest true "New values"
// @Success     200 {object} map[string]interface{} "Number of records changed and notification"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profiles/{profile_id}/transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	key, err := profileKey(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	changed, n, err := h.transactionService.UpdateTransaction(key, id, req.Amount, req.Description, req.ApplyToSeries)
	if err != nil {
		respondWithFailure(c, err, n)
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": changed, "notification": n})
}

// DeleteTransaction deletes a record or the rest of its series
// @Summary     Delete a transaction
// @Description Delete one record, or with series=true the record and every later occurrence of its series
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       profile_id path  string true  "Profile ID"
// @Param       id         path  int    true  "Transaction ID"
// @Param       series     query bool   false "Delete this and later occurrences"
// @Success     200 {object} map[string]interface{} "Number of records deleted and notification"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profiles/{profile_id}/transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	key, err := profileKey(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var q deleteTransactionQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	removed, n, err := h.transactionService.DeleteTransaction(key, id, q.Series)
	if err != nil {
		respondWithFailure(c, err, n)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": removed, "notification": n})
}
