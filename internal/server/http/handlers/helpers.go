package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/pkondrashkov/accountd/internal/server/http/dto"
	"github.com/pkondrashkov/accountd/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// respond writes payload wrapped in the standard envelope.
func respond(c *gin.Context, status int, data any) {
	c.JSON(status, dto.NewAPIResponse(data))
}

// respondError writes the envelope with an overriding message and no data.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, dto.APIResponse{Message: message})
}
