package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coinpulse/coinpulse/internal/domain/dto"
	"github.com/coinpulse/coinpulse/internal/logger"
)

// ErrorHandler converts errors attached to the gin context into a single
// standardized JSON response. Handlers that already wrote a response are
// left alone; the last attached error wins.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled request error")
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
}

// AbortWithError stops the handler chain and writes a standardized error body.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
