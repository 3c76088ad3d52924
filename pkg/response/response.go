package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/heromap/backend/pkg/apperror"
	"github.com/heromap/backend/pkg/logger"
)

// Envelope is the uniform RPC response. Business outcome is carried in Code
// (0 success, 1 failure); the HTTP status is 200 for both.
type Envelope struct {
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// GetCallerID retrieves the authenticated caller id from the context
func GetCallerID(c *gin.Context) (string, error) {
	callerID, exists := c.Get("caller_id")
	if !exists {
		return "", apperror.PermissionDenied("caller identity missing")
	}

	id, ok := callerID.(string)
	if !ok || id == "" {
		return "", apperror.PermissionDenied("caller identity missing")
	}
	return id, nil
}

// OK writes a success envelope
func OK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Envelope{
		Code:    0,
		Message: message,
		Data:    data,
	})
}

// Fail writes a failure envelope. Unexpected errors are logged and masked.
func Fail(c *gin.Context, err error) {
	msg := err.Error()
	if !apperror.IsExpected(err) {
		if logger.Log != nil {
			logger.Log.Error("internal error",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
		}
		msg = apperror.ErrInternal.Error()
	}

	c.JSON(http.StatusOK, Envelope{
		Code:    1,
		Message: msg,
	})
}
