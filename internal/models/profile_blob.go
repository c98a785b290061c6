package models

import "time"

// Blob names of a profile.
const (
	BlobTransactions   = "transactions"
	BlobCategories     = "categories"
	BlobPaymentMethods = "paymentMethods"
	BlobUserName       = "userName"
)

// ProfileBlob is one named JSON document of a user's profile. Name carries
// the profile prefix, so a user's profiles share the table.
type ProfileBlob struct {
	UserID    string    `gorm:"type:uuid;primaryKey" json:"user_id"`
	Name      string    `gorm:"primaryKey;size:191" json:"name"`
	Payload   string    `gorm:"type:text;not null" json:"payload"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// All returns every model managed by the schema, in creation order.
func All() []any {
	return []any{
		&User{},
		&ProfileBlob{},
		&ActivityLog{},
	}
}
