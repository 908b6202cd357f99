package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yigit/tuition/internal/app/models/dto"
	"github.com/yigit/tuition/internal/app/services"
	"github.com/yigit/tuition/internal/middleware"
)

// AttendanceController handles daily attendance marks
type AttendanceController struct {
	attendanceService services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// MarkAttendance godoc
// @Summary Mark attendance
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body dto.AttendanceRequest true "Attendance mark; date defaults to today"
// @Success 201 {object} dto.APIResponse{data=models.Attendance}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data, future date or unknown student"
// @Router /attendance [post]
func (c *AttendanceController) MarkAttendance(ctx *gin.Context) {
	var req dto.AttendanceRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	attendance, err := req.Model(time.Now())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	id, err := c.attendanceService.MarkAttendance(ctx.Request.Context(), &attendance)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	attendance.ID = id
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(attendance))
}

// GetTodayAttendance godoc
// @Summary Today's attendance
// @Description Every mark recorded for today, newest first
// @Tags attendance
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.AttendanceRow}
// @Router /attendance [get]
func (c *AttendanceController) GetTodayAttendance(ctx *gin.Context) {
	rows, err := c.attendanceService.GetTodayAttendance(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(rows))
}
