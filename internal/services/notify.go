package services

import (
	"errors"

	apperrors "fluxo/internal/errors"
	"fluxo/internal/models"
)

// Notification is the user-facing outcome of a mutation.
type Notification struct {
	Level   models.NotificationLevel `json:"level"`
	Message string                   `json:"message"`
}

// Success returns a success notification.
func Success(message string) Notification {
	return Notification{Level: models.LevelSuccess, Message: message}
}

// Confirmer answers the yes/no prompt of a destructive operation.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

// Confirm implements Confirmer.
func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Confirmed returns a Confirmer that gives the same answer to every prompt.
func Confirmed(answer bool) Confirmer {
	return ConfirmFunc(func(string) bool { return answer })
}

func confirm(c Confirmer, prompt string) error {
	if c == nil || !c.Confirm(prompt) {
		return apperrors.WithMessage(apperrors.ErrConfirmationRequired, prompt)
	}
	return nil
}

// failure turns err into the notification reported for it. Duplicates and
// unconfirmed operations are informational.
func failure(err error) Notification {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		return Notification{Level: models.LevelError, Message: apperrors.ErrInternalServer.Message}
	}
	switch appErr.Code {
	case apperrors.ErrDuplicateCategory.Code,
		apperrors.ErrDuplicatePaymentMethod.Code,
		apperrors.ErrConfirmationRequired.Code:
		return Notification{Level: models.LevelInfo, Message: appErr.Message}
	}
	return Notification{Level: models.LevelError, Message: appErr.Message}
}

// report notifies the outcome of a mutation and returns its notification.
func report(n Notifier, key ProfileKey, action, successMessage string, err error, changes map[string]any) Notification {
	result := Success(successMessage)
	if err != nil {
		result = failure(err)
	}
	if n != nil {
		n.Notify(key, action, result, changes)
	}
	return result
}
