package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "fluxo/internal/errors"
	"fluxo/internal/logger"
	"fluxo/internal/middleware"
	"fluxo/internal/services"
)

// profileURI is the profile segment of every profile-scoped route.
type profileURI struct {
	ProfileID string `uri:"profile_id" binding:"required,profile_id"`
}

// confirmQuery carries the answer to a destructive operation's prompt.
type confirmQuery struct {
	Confirm bool `form:"confirm"`
}

// getUserID extracts the authenticated user ID from the Gin context.
// Returns ErrUnauthorized if not present.
func getUserID(c *gin.Context) (string, error) {
	userID := c.GetString(middleware.UserIDKey)
	if userID == "" {
		return "", apperrors.ErrUnauthorized
	}
	return userID, nil
}

// profileKey resolves the authenticated user and the profile named in the path.
func profileKey(c *gin.Context) (services.ProfileKey, error) {
	userID, err := getUserID(c)
	if err != nil {
		return services.ProfileKey{}, err
	}
	var uri profileURI
	if err := c.ShouldBindUri(&uri); err != nil {
		return services.ProfileKey{}, apperrors.ErrInvalidProfile
	}
	return services.ProfileKey{UserID: userID, ProfileID: uri.ProfileID}, nil
}

// parsePathID parses a transaction id path parameter.
// Returns ErrInvalidInput if the parameter is not a valid positive integer.
//
//nolint:unparam // param is intentionally generic for reuse across handlers with different path params
func parsePathID(c *gin.Context, param string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return id, nil
}

// confirmer returns the Confirmer answering with the request's confirm flag.
func confirmer(c *gin.Context) services.Confirmer {
	var q confirmQuery
	_ = c.ShouldBindQuery(&q)
	return services.Confirmed(q.Confirm)
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}

// respondWithFailure writes an error response that also carries the
// notification reported for it.
func respondWithFailure(c *gin.Context, err error, n services.Notification) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		respondWithError(c, err)
		return
	}
	if appErr.Internal != nil {
		logger.Get().Errorw("app error",
			"code", appErr.Code,
			"internal", appErr.Internal.Error(),
			"path", c.Request.URL.Path,
		)
	}
	c.JSON(appErr.StatusCode, gin.H{
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
		"notification": n,
	})
}
