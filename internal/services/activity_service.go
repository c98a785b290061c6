package services

import (
	"encoding/json"

	"gorm.io/gorm"

	apperrors "fluxo/internal/errors"
	"fluxo/internal/logger"
	"fluxo/internal/models"
	"fluxo/internal/pagination"
)

// activityService records the notifications of profile mutations.
type activityService struct {
	db *gorm.DB
}

// NewActivityService creates a new ActivityServicer.
func NewActivityService(db *gorm.DB) ActivityServicer {
	return &activityService{db: db}
}

// Notify logs n and stores it in the profile's activity log. Errors are
// logged but never propagate to avoid disrupting the main operation.
func (s *activityService) Notify(key ProfileKey, action string, n Notification, changes map[string]any) {
	log := logger.For(key.UserID, key.ProfileID).With("action", action)
	switch n.Level {
	case models.LevelError:
		log.Warnw(n.Message, "level", n.Level)
	default:
		log.Infow(n.Message, "level", n.Level)
	}

	var changesJSON string
	if changes != nil {
		data, err := json.Marshal(changes)
		if err != nil {
			log.Errorw("failed to marshal activity changes", "error", err)
			changesJSON = "{}"
		} else {
			changesJSON = string(data)
		}
	}

	entry := &models.ActivityLog{
		UserID:    key.UserID,
		ProfileID: key.ProfileID,
		Level:     n.Level,
		Action:    action,
		Message:   n.Message,
		Changes:   changesJSON,
	}
	if err := s.db.Create(entry).Error; err != nil {
		log.Errorw("failed to create activity log entry", "error", err)
	}
}

// ListActivity returns the profile's activity, newest first.
func (s *activityService) ListActivity(key ProfileKey, page pagination.PageRequest) (*pagination.PageResponse[models.ActivityLog], error) {
	page.Defaults()
	base := s.db.Model(&models.ActivityLog{}).
		Where("user_id = ? AND profile_id = ?", key.UserID, key.ProfileID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var entries []models.ActivityLog
	if err := base.Order("created_at DESC, id DESC").Scopes(pagination.Paginate(page)).Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(entries, page.Page, page.PageSize, total)
	return &resp, nil
}
