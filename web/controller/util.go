package controller

import (
	"net"
	"net/http"
	"strings"

	"edupanel/logger"
	"edupanel/web/entity"

	"github.com/gin-gonic/gin"
)

// getRemoteIp extracts the real IP address from the request headers or remote address.
func getRemoteIp(c *gin.Context) string {
	value := c.GetHeader("X-Real-IP")
	if value != "" {
		return value
	}
	value = c.GetHeader("X-Forwarded-For")
	if value != "" {
		ips := strings.Split(value, ",")
		return ips[0]
	}
	addr := c.Request.RemoteAddr
	ip, _, _ := net.SplitHostPort(addr)
	return ip
}

// jsonError sends an error body with the given status.
func jsonError(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, entity.ErrorMsg{Message: msg})
}

// jsonValidationError sends a 400 with field-level detail from binding.
func jsonValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, entity.ErrorMsg{
		Message: "Validation error",
		Errors:  err.Error(),
	})
}

// jsonInternalError logs the cause and sends a generic 500 without leaking
// detail to the caller.
func jsonInternalError(c *gin.Context, err error) {
	logger.Warning("internal error:", err)
	c.JSON(http.StatusInternalServerError, entity.ErrorMsg{Message: "Internal server error"})
}
