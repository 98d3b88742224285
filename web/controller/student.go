package controller

import (
	"net/http"
	"time"

	"edupanel/database/model"
	"edupanel/web/service"

	"github.com/gin-gonic/gin"
)

// StudentForm is the request body for creating a student record.
type StudentForm struct {
	FullName        string    `json:"fullName" binding:"required"`
	AdmissionNumber string    `json:"admissionNumber" binding:"required"`
	Grade           string    `json:"grade" binding:"required"`
	Gender          string    `json:"gender" binding:"required"`
	DateOfBirth     time.Time `json:"dateOfBirth" binding:"required"`
	ParentName      string    `json:"parentName" binding:"required"`
	ParentContact   string    `json:"parentContact" binding:"required"`
	Address         string    `json:"address" binding:"required"`
}

// StudentController serves the student CRUD endpoints.
type StudentController struct {
	BaseController

	studentService *service.StudentService
}

func NewStudentController(g *gin.RouterGroup, studentService *service.StudentService) *StudentController {
	a := &StudentController{studentService: studentService}
	a.initRouter(g)
	return a
}

func (a *StudentController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/students")
	g.Use(a.checkLogin)

	g.GET("", a.list)
	g.POST("", a.create)
}

func (a *StudentController) list(c *gin.Context) {
	students, err := a.studentService.GetAll()
	if err != nil {
		jsonInternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, students)
}

func (a *StudentController) create(c *gin.Context) {
	var form StudentForm
	if err := c.ShouldBindJSON(&form); err != nil {
		jsonValidationError(c, err)
		return
	}

	user := loginUser(c)
	if user == nil {
		return
	}

	student, err := a.studentService.Create(user.Id, &model.Student{
		FullName:        form.FullName,
		AdmissionNumber: form.AdmissionNumber,
		Grade:           form.Grade,
		Gender:          form.Gender,
		DateOfBirth:     form.DateOfBirth,
		ParentName:      form.ParentName,
		ParentContact:   form.ParentContact,
		Address:         form.Address,
	})
	if err != nil {
		jsonInternalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, student)
}
