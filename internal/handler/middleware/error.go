package middleware

import (
	"log/slog"
	"net/http"

	"fittingroom/internal/handler/httperr"
	"fittingroom/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const maxStackLines = 8

// ErrorHandler logs errors recorded through httperr.AbortWithError and writes
// a fallback body for handlers that failed without responding.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, e := range c.Errors {
			resp, _ := e.Meta.(httperr.Response)
			attrs := []any{
				"request_id", GetRequestID(c),
				"path", c.FullPath(),
				"status", resp.Status,
				"error", e.Err.Error(),
			}
			if resp.Status >= http.StatusInternalServerError {
				attrs = append(attrs, "stack", errs.ExtractStackLines(e.Err, maxStackLines))
				logger.Error("request failed", attrs...)
			} else {
				logger.Debug("request rejected", attrs...)
			}
		}

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		if len(c.Errors) > 0 {
			c.JSON(http.StatusInternalServerError, httperr.Response{Error: "Internal server error", RequestID: GetRequestID(c)})
		}
	}
}

func CustomRecovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("recovered from panic", "error", err, "path", c.Request.URL.Path, "request_id", GetRequestID(c))

				c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.Response{
					Status:    http.StatusInternalServerError,
					Error:     "Internal server error",
					RequestID: GetRequestID(c),
				})
			}
		}()
		c.Next()
	}
}
