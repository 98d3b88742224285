// Package controller provides the HTTP request handlers for the panel API.
package controller

import (
	"net/http"

	"edupanel/database/model"
	"edupanel/web/entity"
	"edupanel/web/session"

	"github.com/gin-gonic/gin"
)

// BaseController provides the authentication check shared by all protected
// controllers.
type BaseController struct{}

// checkLogin rejects requests without a valid session before any domain
// logic runs. Role is deliberately not checked here: every authenticated
// panel user may call every protected panel operation.
func (a *BaseController) checkLogin(c *gin.Context) {
	if !session.IsLogin(c) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, entity.ErrorMsg{Message: "Not authenticated"})
		return
	}
	c.Next()
}

// loginUser returns the session user, aborting with 401 when absent. The
// checkLogin middleware normally runs first; this covers direct use.
func loginUser(c *gin.Context) *model.User {
	user := session.GetLoginUser(c)
	if user == nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, entity.ErrorMsg{Message: "Not authenticated"})
	}
	return user
}
