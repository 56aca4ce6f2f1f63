package response

import (
	"net/http"

	"staffhub/internal/model"
	"staffhub/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// GetRequester retrieves the authenticated user loaded by the auth middleware.
// Every service call takes the requester explicitly; nothing reads it from
// ambient state past this point.
func GetRequester(c *gin.Context) (*model.User, error) {
	val, exists := c.Get("requester")
	if !exists {
		return nil, apperror.ErrUnauthorized
	}

	requester, ok := val.(*model.User)
	if !ok {
		return nil, apperror.ErrUnauthorized
	}

	return requester, nil
}

// Error writes a standardized error response
func Error(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	if code == http.StatusInternalServerError {
		logrus.WithError(err).Error("internal error")
	}

	c.JSON(code, gin.H{"error": err.Error()})
}
