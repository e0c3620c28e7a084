package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

// ErrorHandler recovers from panics in later handlers and answers with a JSON
// 500. Errors attached with c.Error are logged once the request finishes.
func ErrorHandler(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.WithField("path", c.Request.URL.Path).WithField("panic", r).Error("handler panicked")
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error"})
			}
		}()

		c.Next()

		for _, err := range c.Errors {
			logger.WithError(err.Err).WithField("path", c.Request.URL.Path).Error("request failed")
		}
	}
}
