package middleware

import (
	"net/http"
	"strings"

	"edupanel/web/entity"
	"edupanel/web/service"

	"github.com/gin-gonic/gin"
)

const adminContextKey = "ADMIN"

// AdminAuth guards the approval endpoints with a bearer token issued by
// AdminAuthService. The resolved admin is placed in the gin context.
func AdminAuth(auth *service.AdminAuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, entity.ErrorMsg{Message: "Not authenticated"})
			return
		}

		admin, err := auth.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, entity.ErrorMsg{Message: "Not authenticated"})
			return
		}

		c.Set(adminContextKey, admin)
		c.Next()
	}
}
