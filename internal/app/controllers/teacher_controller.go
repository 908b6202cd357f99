package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/tuition/internal/app/models/dto"
	"github.com/yigit/tuition/internal/app/services"
	"github.com/yigit/tuition/internal/middleware"
)

// TeacherController handles teacher records
type TeacherController struct {
	teacherService services.TeacherService
	reportService  services.ReportService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService services.TeacherService, reportService services.ReportService) *TeacherController {
	return &TeacherController{teacherService: teacherService, reportService: reportService}
}

// ListTeachers godoc
// @Summary List teachers
// @Tags teachers
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.TeacherReport}
// @Router /teachers [get]
func (c *TeacherController) ListTeachers(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.reportService.TeacherReport(ctx.Request.Context(), nil)))
}

// CreateTeacher godoc
// @Summary Create a teacher
// @Tags teachers
// @Accept json
// @Produce json
// @Param request body dto.TeacherRequest true "Teacher information"
// @Success 201 {object} dto.APIResponse{data=models.Teacher}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Teacher already exists"
// @Router /teachers [post]
func (c *TeacherController) CreateTeacher(ctx *gin.Context) {
	var req dto.TeacherRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	teacher, err := req.Model()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	id, err := c.teacherService.CreateTeacher(ctx.Request.Context(), &teacher)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	teacher.ID = id
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(teacher))
}

// GetTeacher godoc
// @Summary Get a teacher
// @Tags teachers
// @Produce json
// @Param id path int true "Teacher ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Teacher}
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Router /teachers/{id} [get]
func (c *TeacherController) GetTeacher(ctx *gin.Context) {
	id, ok := parseID(ctx, "Teacher")
	if !ok {
		return
	}

	teacher, err := c.teacherService.GetTeacherByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(teacher))
}

// UpdateTeacher godoc
// @Summary Update a teacher
// @Tags teachers
// @Accept json
// @Produce json
// @Param id path int true "Teacher ID" Format(int64) minimum(1)
// @Param request body dto.TeacherRequest true "Teacher information"
// @Success 200 {object} dto.APIResponse{data=models.Teacher}
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Router /teachers/{id} [put]
func (c *TeacherController) UpdateTeacher(ctx *gin.Context) {
	id, ok := parseID(ctx, "Teacher")
	if !ok {
		return
	}

	var req dto.TeacherRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	teacher, err := req.Model()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	teacher.ID = id

	if err := c.teacherService.UpdateTeacher(ctx.Request.Context(), &teacher); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(teacher))
}

// DeleteTeacher godoc
// @Summary Delete a teacher
// @Tags teachers
// @Produce json
// @Param id path int true "Teacher ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Router /teachers/{id} [delete]
func (c *TeacherController) DeleteTeacher(ctx *gin.Context) {
	id, ok := parseID(ctx, "Teacher")
	if !ok {
		return
	}

	if err := c.teacherService.DeleteTeacher(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Teacher deleted successfully"))
}
