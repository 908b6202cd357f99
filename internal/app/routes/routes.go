package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/tuition/internal/app/controllers"
)

// Controllers groups every handler the router mounts
type Controllers struct {
	Report     *controllers.ReportController
	Student    *controllers.StudentController
	Teacher    *controllers.TeacherController
	Course     *controllers.CourseController
	Fee        *controllers.FeeController
	Attendance *controllers.AttendanceController
	Health     *controllers.HealthController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers) {
	router.GET("/ping", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/health", c.Health.Health)
	v1.GET("/dashboard", c.Report.Dashboard)

	reports := v1.Group("/reports")
	{
		reports.GET("/student", c.Report.StudentReport)
		reports.GET("/payment", c.Report.PaymentReport)
		reports.GET("/teacher", c.Report.TeacherReport)
		reports.GET("/course", c.Report.CourseReport)
		reports.GET("/:kind/export", c.Report.ExportReport)
	}

	students := v1.Group("/students")
	{
		students.GET("", c.Student.ListStudents)
		students.POST("", c.Student.CreateStudent)
		// static segments before /:id
		students.GET("/search", c.Report.SearchStudents)
		students.POST("/import", c.Student.ImportStudents)
		students.GET("/:id", c.Student.GetStudent)
		students.PUT("/:id", c.Student.UpdateStudent)
		students.DELETE("/:id", c.Student.DeleteStudent)
		students.GET("/:id/marks", c.Student.GetStudentMarks)
	}

	teachers := v1.Group("/teachers")
	{
		teachers.GET("", c.Teacher.ListTeachers)
		teachers.POST("", c.Teacher.CreateTeacher)
		teachers.GET("/:id", c.Teacher.GetTeacher)
		teachers.PUT("/:id", c.Teacher.UpdateTeacher)
		teachers.DELETE("/:id", c.Teacher.DeleteTeacher)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", c.Course.ListCourses)
		courses.POST("", c.Course.CreateCourse)
		courses.GET("/:id", c.Course.GetCourse)
		courses.PUT("/:id", c.Course.UpdateCourse)
		courses.DELETE("/:id", c.Course.DeleteCourse)
	}

	fees := v1.Group("/fees")
	{
		fees.GET("", c.Fee.ListPayments)
		fees.POST("", c.Fee.CreatePayment)
		fees.GET("/search", c.Report.SearchPayments)
		fees.GET("/:id", c.Fee.GetPayment)
		fees.PUT("/:id", c.Fee.UpdatePayment)
		fees.DELETE("/:id", c.Fee.DeletePayment)
	}

	attendance := v1.Group("/attendance")
	{
		attendance.GET("", c.Attendance.GetTodayAttendance)
		attendance.POST("", c.Attendance.MarkAttendance)
	}

	v1.POST("/marks", c.Student.AddMark)
}
