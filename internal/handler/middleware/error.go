package middleware

import (
	"log/slog"
	"net/http"

	"beatbox-store/internal/handler/httperr"
	"beatbox-store/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLines = 8

// ErrorHandler logs server-side failures with their stack and fills in a body
// for handlers that aborted without writing one.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, e := range c.Errors {
			if resp, ok := e.Meta.(httperr.Response); ok && resp.Status < http.StatusInternalServerError {
				continue
			}
			slog.Error("request failed",
				"request_id", GetRequestID(c),
				"path", c.Request.URL.Path,
				"error", e.Err.Error(),
				"stack", errs.ExtractStackLines(e.Err, stackLines),
			)
		}

		if c.Writer.Written() {
			return
		}
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
		c.JSON(http.StatusInternalServerError, httperr.NewResponse(c, http.StatusInternalServerError, "Internal server error", nil))
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path, "request_id", GetRequestID(c))
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httperr.NewResponse(c, http.StatusInternalServerError, "Internal server error", nil))
			}
		}()
		c.Next()
	}
}
