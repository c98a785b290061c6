package models

// NotificationLevel is the severity of an activity entry.
type NotificationLevel string

const (
	LevelSuccess NotificationLevel = "success"
	LevelError   NotificationLevel = "error"
	LevelInfo    NotificationLevel = "info"
)

// ActivityLog records the outcome of a mutation on a profile.
type ActivityLog struct {
	Base
	UserID    string            `gorm:"type:uuid;not null;index:idx_activity_profile" json:"user_id"`
	ProfileID string            `gorm:"not null;index:idx_activity_profile" json:"profile_id"`
	Level     NotificationLevel `gorm:"not null" json:"level"`
	Action    string            `gorm:"not null" json:"action"`
	Message   string            `json:"message"`
	Changes   string            `json:"changes,omitempty"`
}
