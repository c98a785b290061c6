package services

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "fluxo/internal/errors"
	"fluxo/internal/ledger"
	"fluxo/internal/logger"
	"fluxo/internal/models"
)

// DefaultProfileID is the profile whose blobs carry no name prefix.
const DefaultProfileID = "default"

// ProfileKey identifies one profile of one user.
type ProfileKey struct {
	UserID    string
	ProfileID string
}

// prefix returns the blob name prefix of the profile.
func (k ProfileKey) prefix() string {
	if k.ProfileID == "" || k.ProfileID == DefaultProfileID {
		return ""
	}
	return k.ProfileID + "_"
}

// blobName returns the stored name of one of the profile's blobs.
func (k ProfileKey) blobName(blob string) string {
	return k.prefix() + blob
}

func (k ProfileKey) blobNames() []string {
	return []string{
		k.blobName(models.BlobTransactions),
		k.blobName(models.BlobCategories),
		k.blobName(models.BlobPaymentMethods),
		k.blobName(models.BlobUserName),
	}
}

// ProfileStore loads and saves a profile's ledger.Store as four named blobs.
type ProfileStore struct {
	db   *gorm.DB
	opts []ledger.Option
}

// NewProfileStore creates a ProfileStore. The options are applied to every
// loaded ledger.Store.
func NewProfileStore(db *gorm.DB, opts ...ledger.Option) *ProfileStore {
	return &ProfileStore{db: db, opts: opts}
}

// Load reads the profile's blobs within tx. Missing or malformed blobs fall
// back to their defaults and never fail the load.
func (p *ProfileStore) Load(tx *gorm.DB, key ProfileKey) (*ledger.Store, error) {
	query := tx.Where("user_id = ? AND name IN ?", key.UserID, key.blobNames())
	if tx.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var blobs []models.ProfileBlob
	if err := query.Find(&blobs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	byName := make(map[string]string, len(blobs))
	for _, b := range blobs {
		byName[b.Name] = b.Payload
	}

	store := ledger.NewStore(p.opts...)
	if raw, ok := byName[key.blobName(models.BlobTransactions)]; ok {
		if txs, ok := decodeTransactions(raw); ok {
			store.Transactions = txs
		} else {
			warnMalformed(key, models.BlobTransactions)
		}
	}
	if raw, ok := byName[key.blobName(models.BlobCategories)]; ok {
		if cats, ok := decodeCategories(raw); ok {
			store.Categories = cats
		} else {
			warnMalformed(key, models.BlobCategories)
		}
	}
	if raw, ok := byName[key.blobName(models.BlobPaymentMethods)]; ok {
		if methods, ok := decodePaymentMethods(raw); ok {
			store.PaymentMethods = methods
		} else {
			warnMalformed(key, models.BlobPaymentMethods)
		}
	}
	store.DisplayName = byName[key.blobName(models.BlobUserName)]

	return store, nil
}

// Save writes all four blobs of the profile within tx.
func (p *ProfileStore) Save(tx *gorm.DB, key ProfileKey, store *ledger.Store) error {
	txs, err := json.Marshal(store.Transactions)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	cats, err := json.Marshal(store.Categories)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	methods, err := json.Marshal(store.PaymentMethods)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	now := time.Now()
	blobs := []models.ProfileBlob{
		{UserID: key.UserID, Name: key.blobName(models.BlobTransactions), Payload: string(txs), CreatedAt: now, UpdatedAt: now},
		{UserID: key.UserID, Name: key.blobName(models.BlobCategories), Payload: string(cats), CreatedAt: now, UpdatedAt: now},
		{UserID: key.UserID, Name: key.blobName(models.BlobPaymentMethods), Payload: string(methods), CreatedAt: now, UpdatedAt: now},
		{UserID: key.UserID, Name: key.blobName(models.BlobUserName), Payload: store.DisplayName, CreatedAt: now, UpdatedAt: now},
	}

	err = tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&blobs).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// Clear deletes the profile's blobs; the next Load returns the defaults.
func (p *ProfileStore) Clear(tx *gorm.DB, key ProfileKey) error {
	err := tx.Where("user_id = ? AND name IN ?", key.UserID, key.blobNames()).
		Delete(&models.ProfileBlob{}).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// View loads the profile and passes it to fn without saving.
func (p *ProfileStore) View(key ProfileKey, fn func(*ledger.Store) error) error {
	store, err := p.Load(p.db, key)
	if err != nil {
		return err
	}
	return fn(store)
}

// Update loads the profile, applies fn and saves the result in one database
// transaction. Nothing is saved when fn returns an error.
func (p *ProfileStore) Update(key ProfileKey, fn func(*ledger.Store) error) error {
	err := p.db.Transaction(func(tx *gorm.DB) error {
		store, err := p.Load(tx, key)
		if err != nil {
			return err
		}
		if err := fn(store); err != nil {
			return err
		}
		return p.Save(tx, key, store)
	})
	var appErr *apperrors.AppError
	if err != nil && !errors.As(err, &appErr) {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return err
}

func decodeTransactions(raw string) ([]ledger.Transaction, bool) {
	var txs []ledger.Transaction
	if err := json.Unmarshal([]byte(raw), &txs); err != nil || txs == nil {
		return nil, false
	}
	return txs, true
}

func decodeCategories(raw string) (ledger.Categories, bool) {
	var shape struct {
		Expense *[]string `json:"expense"`
		Income  *[]string `json:"income"`
	}
	if err := json.Unmarshal([]byte(raw), &shape); err != nil || shape.Expense == nil || shape.Income == nil {
		return ledger.Categories{}, false
	}
	return ledger.Categories{Expense: *shape.Expense, Income: *shape.Income}, true
}

func decodePaymentMethods(raw string) (ledger.PaymentMethods, bool) {
	var shape struct {
		Credit *[]string `json:"credit"`
		Debit  *[]string `json:"debit"`
	}
	if err := json.Unmarshal([]byte(raw), &shape); err != nil || shape.Credit == nil || shape.Debit == nil {
		return ledger.PaymentMethods{}, false
	}
	return ledger.PaymentMethods{Credit: *shape.Credit, Debit: *shape.Debit}, true
}

func warnMalformed(key ProfileKey, blob string) {
	logger.For(key.UserID, key.ProfileID).Warnw("malformed profile blob, using defaults", "blob", blob)
}
