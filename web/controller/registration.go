package controller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"edupanel/database/model"
	"edupanel/web/service"

	"github.com/gin-gonic/gin"
)

// StudentRegistrationForm is the self-service student registration body.
type StudentRegistrationForm struct {
	ParentEmail           string    `json:"parent_email" binding:"required,email"`
	ParentName            string    `json:"parent_name" binding:"required"`
	ContactNumber         string    `json:"contact_number" binding:"required"`
	Address               string    `json:"address" binding:"required"`
	StudentName           string    `json:"student_name" binding:"required"`
	DOB                   time.Time `json:"dob" binding:"required"`
	BloodGroup            string    `json:"blood_group" binding:"required"`
	Gender                string    `json:"gender" binding:"required"`
	DisabilityType        string    `json:"disability_type" binding:"required"`
	DisabilityDescription string    `json:"disability_description" binding:"required"`
	SpecialRequirements   string    `json:"special_requirements"`
	PreviousInterventions string    `json:"previous_interventions"`
	Password              string    `json:"password" binding:"required"`
}

// EmployeeRegistrationForm is the self-service employee registration body.
type EmployeeRegistrationForm struct {
	Name           string   `json:"name" binding:"required"`
	Email          string   `json:"email" binding:"required,email"`
	ContactNumber  string   `json:"contact_number" binding:"required"`
	Address        string   `json:"address" binding:"required"`
	Qualifications string   `json:"qualifications" binding:"required"`
	Experience     string   `json:"experience"`
	Skills         []string `json:"skills"`
	Resume         string   `json:"resume"`
	Password       string   `json:"password" binding:"required"`
}

// RegistrationController serves the public self-registration endpoints that
// feed the pending stores of the approval workflow.
type RegistrationController struct {
	approvalService *service.ApprovalService
}

func NewRegistrationController(g *gin.RouterGroup, approvalService *service.ApprovalService) *RegistrationController {
	a := &RegistrationController{approvalService: approvalService}
	a.initRouter(g)
	return a
}

func (a *RegistrationController) initRouter(g *gin.RouterGroup) {
	g.POST("/students/register", a.registerStudent)
	g.POST("/employees/register", a.registerEmployee)
}

func (a *RegistrationController) registerStudent(c *gin.Context) {
	var form StudentRegistrationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		jsonValidationError(c, err)
		return
	}

	pending, err := a.approvalService.RegisterStudent(&model.PendingStudent{
		ParentEmail:           form.ParentEmail,
		ParentName:            form.ParentName,
		ContactNumber:         form.ContactNumber,
		Address:               form.Address,
		StudentName:           form.StudentName,
		DOB:                   form.DOB,
		BloodGroup:            form.BloodGroup,
		Gender:                form.Gender,
		DisabilityType:        form.DisabilityType,
		DisabilityDescription: form.DisabilityDescription,
		SpecialRequirements:   form.SpecialRequirements,
		PreviousInterventions: form.PreviousInterventions,
	}, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateEmail) {
			jsonError(c, http.StatusBadRequest, "A registration with this parent email already exists")
			return
		}
		jsonInternalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, pending)
}

func (a *RegistrationController) registerEmployee(c *gin.Context) {
	var form EmployeeRegistrationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		jsonValidationError(c, err)
		return
	}

	pending, err := a.approvalService.RegisterEmployee(&model.PendingEmployee{
		Name:           form.Name,
		Email:          form.Email,
		ContactNumber:  form.ContactNumber,
		Address:        form.Address,
		Qualifications: form.Qualifications,
		Experience:     form.Experience,
		Skills:         strings.Join(form.Skills, ","),
		Resume:         form.Resume,
	}, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateEmail) {
			jsonError(c, http.StatusBadRequest, "A registration with this email already exists")
			return
		}
		jsonInternalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, pending)
}
