package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "fluxo/internal/errors"
	"fluxo/internal/logger"
)

// ErrorHandler converts errors attached to the Gin context into the
// {"error":{"code","message"}} body. Only the last error is answered. Unknown
// errors are logged with the request and reported as INTERNAL_ERROR.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) {
			appErr = apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if appErr.Internal != nil {
			logger.Get().Errorw("request failed",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"request_id", c.GetString(requestIDKey),
				"user_id", c.GetString(UserIDKey),
				"method", c.Request.Method,
				"path", c.FullPath(),
			)
		}
		writeError(c, appErr.StatusCode, appErr.Code, appErr.Message)
	}
}

func writeError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
