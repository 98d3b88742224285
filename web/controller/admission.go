package controller

import (
	"net/http"
	"time"

	"edupanel/database/model"
	"edupanel/web/service"

	"github.com/gin-gonic/gin"
)

// AdmissionFormRequest is the request body for generating an admission form.
// The unique code is never accepted from the caller.
type AdmissionFormRequest struct {
	FormName                string    `json:"formName" binding:"required"`
	GradeLevel              string    `json:"gradeLevel" binding:"required"`
	ExpiryDate              time.Time `json:"expiryDate" binding:"required"`
	IncludeMedicalInfo      bool      `json:"includeMedicalInfo"`
	IncludeAcademicRecords  bool      `json:"includeAcademicRecords"`
	IncludeExtracurricular  bool      `json:"includeExtracurricular"`
	IncludeParentOccupation bool      `json:"includeParentOccupation"`
}

// AdmissionController serves admission form generation and listing.
type AdmissionController struct {
	BaseController

	admissionService *service.AdmissionService
}

func NewAdmissionController(g *gin.RouterGroup, admissionService *service.AdmissionService) *AdmissionController {
	a := &AdmissionController{admissionService: admissionService}
	a.initRouter(g)
	return a
}

func (a *AdmissionController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/admission-forms")
	g.Use(a.checkLogin)

	g.GET("", a.list)
	g.POST("", a.create)
}

func (a *AdmissionController) list(c *gin.Context) {
	forms, err := a.admissionService.GetAll()
	if err != nil {
		jsonInternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, forms)
}

func (a *AdmissionController) create(c *gin.Context) {
	var form AdmissionFormRequest
	if err := c.ShouldBindJSON(&form); err != nil {
		jsonValidationError(c, err)
		return
	}

	user := loginUser(c)
	if user == nil {
		return
	}

	created, err := a.admissionService.Create(user.Id, &model.AdmissionForm{
		FormName:                form.FormName,
		GradeLevel:              form.GradeLevel,
		ExpiryDate:              form.ExpiryDate,
		IncludeMedicalInfo:      form.IncludeMedicalInfo,
		IncludeAcademicRecords:  form.IncludeAcademicRecords,
		IncludeExtracurricular:  form.IncludeExtracurricular,
		IncludeParentOccupation: form.IncludeParentOccupation,
	})
	if err != nil {
		jsonInternalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}
