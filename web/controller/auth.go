package controller

import (
	"errors"
	"net/http"

	"edupanel/config"
	"edupanel/logger"
	"edupanel/web/service"
	"edupanel/web/session"

	"github.com/gin-gonic/gin"
)

// RegisterForm is the request body for account creation.
type RegisterForm struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"fullName" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=admin staff teacher"`
}

// LoginForm is the request body for authentication.
type LoginForm struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthController handles registration, login, logout and the current-user
// endpoint.
type AuthController struct {
	BaseController

	userService *service.UserService
}

func NewAuthController(g *gin.RouterGroup, userService *service.UserService) *AuthController {
	a := &AuthController{userService: userService}
	a.initRouter(g)
	return a
}

func (a *AuthController) initRouter(g *gin.RouterGroup) {
	g.POST("/register", a.register)
	g.POST("/login", a.login)
	g.POST("/logout", a.logout)
	g.GET("/user", a.currentUser)
}

// register creates the account and logs the caller in as a side effect.
func (a *AuthController) register(c *gin.Context) {
	var form RegisterForm
	if err := c.ShouldBindJSON(&form); err != nil {
		jsonValidationError(c, err)
		return
	}

	user, err := a.userService.Register(form.Username, form.Password, form.Email, form.FullName, form.Role)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateUsername) {
			jsonError(c, http.StatusBadRequest, "Username already exists")
			return
		}
		jsonInternalError(c, err)
		return
	}

	if err := session.SetMaxAge(c, config.GetSessionMaxAge()*60); err != nil {
		logger.Warning("Unable to set session max age:", err)
	}
	if err := session.SetLoginUser(c, user); err != nil {
		logger.Warning("Unable to save session:", err)
	}

	c.JSON(http.StatusCreated, user.Safe())
}

func (a *AuthController) login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		jsonValidationError(c, err)
		return
	}

	user, err := a.userService.Login(form.Username, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrAuthenticationFailed) {
			logger.Warningf("failed login for %q, IP: %q", form.Username, getRemoteIp(c))
			jsonError(c, http.StatusUnauthorized, "Authentication failed")
			return
		}
		jsonInternalError(c, err)
		return
	}

	if err := session.SetMaxAge(c, config.GetSessionMaxAge()*60); err != nil {
		logger.Warning("Unable to set session max age:", err)
	}
	if err := session.SetLoginUser(c, user); err != nil {
		logger.Warning("Unable to save session:", err)
	}

	logger.Infof("%s logged in successfully, IP: %s", user.Username, getRemoteIp(c))
	c.JSON(http.StatusOK, user.Safe())
}

func (a *AuthController) logout(c *gin.Context) {
	user := session.GetLoginUser(c)
	if user == nil {
		jsonError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	a.userService.Logout(user)
	if err := session.ClearSession(c); err != nil {
		logger.Warning("Unable to clear session:", err)
	}

	logger.Infof("%s logged out successfully", user.Username)
	c.Status(http.StatusOK)
}

func (a *AuthController) currentUser(c *gin.Context) {
	user := loginUser(c)
	if user == nil {
		return
	}
	c.JSON(http.StatusOK, user.Safe())
}
