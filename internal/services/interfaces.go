package services

import (
	"fluxo/internal/ledger"
	"fluxo/internal/models"
	"fluxo/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, name string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
}

// Notifier receives the outcome of every profile mutation.
type Notifier interface {
	Notify(key ProfileKey, action string, n Notification, changes map[string]any)
}

// ActivityServicer defines the contract for the profile activity log.
type ActivityServicer interface {
	Notifier
	ListActivity(key ProfileKey, page pagination.PageRequest) (*pagination.PageResponse[models.ActivityLog], error)
}

// TransactionServicer defines the contract for creating, reading and mutating
// the records of a profile.
type TransactionServicer interface {
	CreateEntry(key ProfileKey, form ledger.EntryForm) ([]ledger.Transaction, Notification, error)
	ListTransactions(key ProfileKey, criteria ledger.Criteria, page pagination.PageRequest) (*TransactionList, error)
	GetTransaction(key ProfileKey, id int64) (*TransactionDetail, error)
	TogglePaid(key ProfileKey, id int64) (*ledger.Transaction, Notification, error)
	UpdateTransaction(key ProfileKey, id int64, amount, description string, applyToSeries bool) (int, Notification, error)
	DeleteTransaction(key ProfileKey, id int64, series bool) (int, Notification, error)
}

// TransactionList is a page of filtered records with the totals of the
// whole filtered list.
type TransactionList struct {
	pagination.PageResponse[ledger.Transaction]
	Totals ledger.Totals `json:"totals"`
}

// TransactionDetail is a record with the other occurrences of its series.
type TransactionDetail struct {
	Transaction ledger.Transaction   `json:"transaction"`
	Series      []ledger.Transaction `json:"series,omitempty"`
}

// CategoryServicer defines the contract for a profile's categories.
type CategoryServicer interface {
	GetCategories(key ProfileKey) (*ledger.Categories, error)
	GetFilterOptions(key ProfileKey, flow ledger.FlowType) ([]string, error)
	AddCategory(key ProfileKey, flow ledger.FlowType, name string) (string, Notification, error)
	DeleteCategory(key ProfileKey, flow ledger.FlowType, name string, confirmer Confirmer) (Notification, error)
}

// PaymentMethodServicer defines the contract for a profile's cards and banks.
type PaymentMethodServicer interface {
	GetPaymentMethods(key ProfileKey) (*ledger.PaymentMethods, error)
	AddBank(key ProfileKey, name string) (string, Notification, error)
	DeleteBank(key ProfileKey, name string, confirmer Confirmer) (Notification, error)
}

// ProfileServicer defines the contract for profile-wide settings and reset.
type ProfileServicer interface {
	GetDisplayName(key ProfileKey) (string, error)
	SetDisplayName(key ProfileKey, name string) (Notification, error)
	ClearData(key ProfileKey, confirmer Confirmer) (Notification, error)
}

// Summary is the dashboard of a profile for one month and filter set.
type Summary struct {
	Month    ledger.Month      `json:"month"`
	Stats    ledger.MonthStats `json:"stats"`
	Filtered ledger.Totals     `json:"filtered"`
	Annual   ledger.Totals     `json:"annual"`
	Count    int               `json:"count"`
}

// ReportServicer defines the contract for the derived views of a profile.
type ReportServicer interface {
	GetSummary(key ProfileKey, criteria ledger.Criteria) (*Summary, error)
	GetBreakdown(key ProfileKey, month ledger.Month) ([]ledger.CategoryShare, error)
	GetProjection(key ProfileKey) ([]ledger.ProjectionRow, error)
	RenderBreakdownChart(key ProfileKey, month ledger.Month) ([]byte, error)
	RenderProjectionChart(key ProfileKey) ([]byte, error)
}
