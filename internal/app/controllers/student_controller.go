package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/tuition/internal/app/models/dto"
	"github.com/yigit/tuition/internal/app/services"
	"github.com/yigit/tuition/internal/middleware"
)

// StudentController handles student records, their import and their marks
type StudentController struct {
	studentService services.StudentService
	markService    services.MarkService
	reportService  services.ReportService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService, markService services.MarkService, reportService services.ReportService) *StudentController {
	return &StudentController{
		studentService: studentService,
		markService:    markService,
		reportService:  reportService,
	}
}

// ListStudents godoc
// @Summary List students
// @Description Every student with the school-wide student figures
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.StudentReport}
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.reportService.StudentReport(ctx.Request.Context(), nil)))
}

// CreateStudent godoc
// @Summary Create a student
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.StudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=models.Student} "Student created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Student already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.StudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	student, err := req.Model()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	id, err := c.studentService.CreateStudent(ctx.Request.Context(), &student)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	student.ID = id
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(student))
}

// GetStudent godoc
// @Summary Get a student
// @Tags students
// @Produce json
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID format"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	id, ok := parseID(ctx, "Student")
	if !ok {
		return
	}

	student, err := c.studentService.GetStudentByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student))
}

// UpdateStudent godoc
// @Summary Update a student
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Param request body dto.StudentRequest true "Student information"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := parseID(ctx, "Student")
	if !ok {
		return
	}

	var req dto.StudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	student, err := req.Model()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	student.ID = id

	if err := c.studentService.UpdateStudent(ctx.Request.Context(), &student); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student))
}

// DeleteStudent godoc
// @Summary Delete a student
// @Tags students
// @Produce json
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Student deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Student still has payments or attendance"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseID(ctx, "Student")
	if !ok {
		return
	}

	if err := c.studentService.DeleteStudent(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Student deleted successfully"))
}

// ImportStudents godoc
// @Summary Import students from a spreadsheet
// @Description Reads the first sheet of an xlsx workbook with columns name, class, gender, phone. The first row is a header.
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "xlsx workbook"
// @Success 200 {object} dto.APIResponse{data=dto.ImportResult}
// @Failure 400 {object} dto.ErrorResponse "Missing or unreadable file"
// @Router /students/import [post]
func (c *StudentController) ImportStudents(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeBadRequest, "A spreadsheet file is required").
			WithField("file").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	file, err := header.Open()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer file.Close()

	result, err := c.studentService.ImportStudents(ctx.Request.Context(), file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}

// GetStudentMarks godoc
// @Summary List a student's marks
// @Tags marks
// @Produce json
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.Mark}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/marks [get]
func (c *StudentController) GetStudentMarks(ctx *gin.Context) {
	id, ok := parseID(ctx, "Student")
	if !ok {
		return
	}

	marks, err := c.markService.GetStudentMarks(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(marks))
}

// AddMark godoc
// @Summary Record an exam mark
// @Tags marks
// @Accept json
// @Produce json
// @Param request body dto.MarkRequest true "Mark"
// @Success 201 {object} dto.APIResponse{data=models.Mark}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /marks [post]
func (c *StudentController) AddMark(ctx *gin.Context) {
	var req dto.MarkRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	mark := req.Model()
	id, err := c.markService.AddMark(ctx.Request.Context(), &mark)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	mark.ID = id
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(mark))
}
