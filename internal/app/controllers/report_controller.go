package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/tuition/internal/app/models/dto"
	"github.com/yigit/tuition/internal/app/services"
	"github.com/yigit/tuition/internal/middleware"
)

// ReportController serves the report pages, the dashboard, search and exports.
// Every handler except ExportReport answers 200, rendering an empty report when the
// data store fails.
type ReportController struct {
	reportService services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// StudentReport godoc
// @Summary Student report
// @Description Lists students filtered by class and gender with school-wide student counts
// @Tags reports
// @Produce json
// @Param class query string false "Exact class"
// @Param gender query string false "Exact gender" Enums(Male, Female, Other)
// @Param sortBy query string false "Sort key" Enums(name, class, phone, id)
// @Success 200 {object} dto.APIResponse{data=dto.StudentReport}
// @Router /reports/student [get]
func (c *ReportController) StudentReport(ctx *gin.Context) {
	report := c.reportService.StudentReport(ctx.Request.Context(), ctx.Request.URL.Query())
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(report))
}

// PaymentReport godoc
// @Summary Payment report
// @Description Lists fee payments filtered by status and method with table-wide payment figures
// @Tags reports
// @Produce json
// @Param status query string false "Exact status" Enums(Paid, Pending, Failed)
// @Param method query string false "Exact payment method"
// @Param sortBy query string false "Sort key" Enums(date, amount, student, id)
// @Success 200 {object} dto.APIResponse{data=dto.PaymentReport}
// @Router /reports/payment [get]
func (c *ReportController) PaymentReport(ctx *gin.Context) {
	report := c.reportService.PaymentReport(ctx.Request.Context(), ctx.Request.URL.Query())
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(report))
}

// TeacherReport godoc
// @Summary Teacher report
// @Description Lists teachers matching specialization and qualification substrings
// @Tags reports
// @Produce json
// @Param specialization query string false "Specialization contains"
// @Param qualification query string false "Qualification contains"
// @Param sortBy query string false "Sort key" Enums(name, experience, id)
// @Success 200 {object} dto.APIResponse{data=dto.TeacherReport}
// @Router /reports/teacher [get]
func (c *ReportController) TeacherReport(ctx *gin.Context) {
	report := c.reportService.TeacherReport(ctx.Request.Context(), ctx.Request.URL.Query())
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(report))
}

// CourseReport godoc
// @Summary Course report
// @Description Lists courses filtered by status with table-wide course figures
// @Tags reports
// @Produce json
// @Param status query string false "Exact status" Enums(Active, Inactive)
// @Param sortBy query string false "Sort key" Enums(name, fee, duration, id)
// @Success 200 {object} dto.APIResponse{data=dto.CourseReport}
// @Router /reports/course [get]
func (c *ReportController) CourseReport(ctx *gin.Context) {
	report := c.reportService.CourseReport(ctx.Request.Context(), ctx.Request.URL.Query())
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(report))
}

// Dashboard godoc
// @Summary Dashboard
// @Description School-wide counters and today's latest attendance marks
// @Tags reports
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.Dashboard}
// @Router /dashboard [get]
func (c *ReportController) Dashboard(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.reportService.Dashboard(ctx.Request.Context())))
}

// SearchStudents godoc
// @Summary Search students
// @Description Students whose name or class contains the query
// @Tags reports
// @Produce json
// @Param query query string false "Search text"
// @Success 200 {object} dto.APIResponse{data=dto.StudentSearchResult}
// @Router /students/search [get]
func (c *ReportController) SearchStudents(ctx *gin.Context) {
	result := c.reportService.SearchStudents(ctx.Request.Context(), ctx.Query("query"))
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}

// SearchPayments godoc
// @Summary Search fee payments
// @Description Payments whose student name or reference number contains the query
// @Tags fees
// @Produce json
// @Param query query string false "Search text"
// @Success 200 {object} dto.APIResponse{data=dto.PaymentSearchResult}
// @Router /fees/search [get]
func (c *ReportController) SearchPayments(ctx *gin.Context) {
	result := c.reportService.SearchPayments(ctx.Request.Context(), ctx.Query("query"))
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}

// ExportReport godoc
// @Summary Export a report
// @Description Downloads a report with the same filters as its page, as xlsx or pdf
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce application/pdf
// @Param kind path string true "Report kind" Enums(student, payment, teacher, course)
// @Param format query string true "Document format" Enums(xlsx, pdf)
// @Success 200 {file} file
// @Failure 400 {object} dto.ErrorResponse "Unsupported format"
// @Failure 404 {object} dto.ErrorResponse "Unknown report"
// @Failure 503 {object} dto.ErrorResponse "Data store unavailable"
// @Router /reports/{kind}/export [get]
func (c *ReportController) ExportReport(ctx *gin.Context) {
	file, err := c.reportService.Export(ctx.Request.Context(), ctx.Param("kind"), ctx.Query("format"), ctx.Request.URL.Query())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.Name))
	ctx.Data(http.StatusOK, file.ContentType, file.Body)
}
