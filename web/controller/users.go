package controller

import (
	"net/http"

	"edupanel/database/model"
	"edupanel/web/service"

	"github.com/gin-gonic/gin"
)

// UsersController serves the by-role user listings. Password hashes are
// stripped from every response.
type UsersController struct {
	BaseController

	userService *service.UserService
}

func NewUsersController(g *gin.RouterGroup, userService *service.UserService) *UsersController {
	a := &UsersController{userService: userService}
	a.initRouter(g)
	return a
}

func (a *UsersController) initRouter(g *gin.RouterGroup) {
	g.GET("/staff", a.checkLogin, a.listStaff)
	g.GET("/teachers", a.checkLogin, a.listTeachers)
}

func (a *UsersController) listStaff(c *gin.Context) {
	a.listByRole(c, model.RoleStaff)
}

func (a *UsersController) listTeachers(c *gin.Context) {
	a.listByRole(c, model.RoleTeacher)
}

func (a *UsersController) listByRole(c *gin.Context, role string) {
	users, err := a.userService.GetUsersByRole(role)
	if err != nil {
		jsonInternalError(c, err)
		return
	}

	safe := make([]model.SafeUser, len(users))
	for i := range users {
		safe[i] = users[i].Safe()
	}
	c.JSON(http.StatusOK, safe)
}
