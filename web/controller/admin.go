package controller

import (
	"errors"
	"net/http"

	"edupanel/logger"
	"edupanel/web/entity"
	"edupanel/web/middleware"
	"edupanel/web/service"

	"github.com/gin-gonic/gin"
)

// AdminLoginForm is the request body for admin token login.
type AdminLoginForm struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ApproveStudentForm identifies a pending student registration by the
// parent's email.
type ApproveStudentForm struct {
	ParentEmail string `json:"parent_email" binding:"required,email"`
}

// ApproveEmployeeForm identifies a pending employee registration by email.
type ApproveEmployeeForm struct {
	Email string `json:"email" binding:"required,email"`
}

// AddAdminForm is the request body for creating another admin.
type AddAdminForm struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminController serves the approval workflow: admin login, student and
// employee approval, and admin creation.
type AdminController struct {
	adminAuthService *service.AdminAuthService
	approvalService  *service.ApprovalService
}

func NewAdminController(g *gin.RouterGroup, adminAuthService *service.AdminAuthService, approvalService *service.ApprovalService) *AdminController {
	a := &AdminController{
		adminAuthService: adminAuthService,
		approvalService:  approvalService,
	}
	a.initRouter(g)
	return a
}

func (a *AdminController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/admin")
	g.POST("/login", a.login)

	protected := g.Group("")
	protected.Use(middleware.AdminAuth(a.adminAuthService))
	protected.POST("/approve-student", a.approveStudent)
	protected.POST("/approve-employee", a.approveEmployee)
	protected.POST("/add-admin", a.addAdmin)
}

func (a *AdminController) login(c *gin.Context) {
	var form AdminLoginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		jsonValidationError(c, err)
		return
	}

	token, admin, err := a.adminAuthService.Login(form.Email, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrAuthenticationFailed) {
			logger.Warningf("failed admin login for %q, IP: %q", form.Email, getRemoteIp(c))
			jsonError(c, http.StatusUnauthorized, "Authentication failed")
			return
		}
		jsonInternalError(c, err)
		return
	}

	logger.Infof("admin %s logged in", admin.Email)
	c.JSON(http.StatusOK, entity.TokenResponse{Token: token})
}

func (a *AdminController) approveStudent(c *gin.Context) {
	var form ApproveStudentForm
	if err := c.ShouldBindJSON(&form); err != nil {
		jsonValidationError(c, err)
		return
	}

	approved, err := a.approvalService.ApproveStudent(form.ParentEmail)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			jsonError(c, http.StatusNotFound, "Student not found for the given parent email")
		case errors.Is(err, service.ErrAlreadyApproved):
			jsonError(c, http.StatusBadRequest, "Student is already approved")
		default:
			jsonInternalError(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, approved)
}

func (a *AdminController) approveEmployee(c *gin.Context) {
	var form ApproveEmployeeForm
	if err := c.ShouldBindJSON(&form); err != nil {
		jsonValidationError(c, err)
		return
	}

	approved, err := a.approvalService.ApproveEmployee(form.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			jsonError(c, http.StatusNotFound, "Employee not found for the given email")
		case errors.Is(err, service.ErrAlreadyApproved):
			jsonError(c, http.StatusBadRequest, "Employee is already approved")
		default:
			jsonInternalError(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, approved)
}

func (a *AdminController) addAdmin(c *gin.Context) {
	var form AddAdminForm
	if err := c.ShouldBindJSON(&form); err != nil {
		jsonValidationError(c, err)
		return
	}

	admin, err := a.approvalService.AddAdmin(form.Name, form.Email, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateEmail) {
			jsonError(c, http.StatusBadRequest, "Admin with this email already exists")
			return
		}
		jsonInternalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, admin)
}
