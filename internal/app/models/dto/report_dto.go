package dto

import (
	"github.com/yigit/tuition/internal/app/models"
	"github.com/yigit/tuition/internal/app/reports"
)

// StudentReport is the student report page
type StudentReport struct {
	Students      []models.Student `json:"students"`
	TotalStudents int64            `json:"totalStudents" example:"120"`
	MaleCount     int64            `json:"maleCount" example:"64"`
	FemaleCount   int64            `json:"femaleCount" example:"56"`
	UniqueClasses int64            `json:"uniqueClasses" example:"10"`
	FilterClass   string           `json:"filterClass" example:"7"`
	FilterGender  string           `json:"filterGender" example:"Female"`
	SortBy        string           `json:"sortBy" example:"name"`
}

// NewStudentReport maps an assembled student report
func NewStudentReport(v reports.View[models.Student]) StudentReport {
	return StudentReport{
		Students:      v.Rows,
		TotalStudents: v.Figures.Count("totalStudents"),
		MaleCount:     v.Figures.Count("maleCount"),
		FemaleCount:   v.Figures.Count("femaleCount"),
		UniqueClasses: v.Figures.Count("uniqueClasses"),
		FilterClass:   v.Filter("class"),
		FilterGender:  v.Filter("gender"),
		SortBy:        v.SortBy,
	}
}

// StudentSearchResult is the student report narrowed by a free-text query
type StudentSearchResult struct {
	StudentReport
	Query string `json:"query" example:"ali"`
}

// PaymentReport is the payment report and fee list page
type PaymentReport struct {
	Payments      []models.PaymentRow `json:"payments"`
	TotalPayments int64               `json:"totalPayments" example:"40"`
	PaidCount     int64               `json:"paidCount" example:"31"`
	PendingCount  int64               `json:"pendingCount" example:"9"`
	TotalRevenue  string              `json:"totalRevenue" example:"125000.00"`
	FilterStatus  string              `json:"filterStatus" example:"Paid"`
	FilterMethod  string              `json:"filterMethod" example:"Cash"`
	SortBy        string              `json:"sortBy" example:"date"`
}

// NewPaymentReport maps an assembled payment report
func NewPaymentReport(v reports.View[models.PaymentRow]) PaymentReport {
	return PaymentReport{
		Payments:      v.Rows,
		TotalPayments: v.Figures.Count("totalPayments"),
		PaidCount:     v.Figures.Count("paidCount"),
		PendingCount:  v.Figures.Count("pendingCount"),
		TotalRevenue:  v.Figures.Amount("totalRevenue"),
		FilterStatus:  v.Filter("status"),
		FilterMethod:  v.Filter("method"),
		SortBy:        v.SortBy,
	}
}

// PaymentSearchResult is the payment report narrowed by a free-text query
type PaymentSearchResult struct {
	PaymentReport
	Query string `json:"query" example:"REF-1001"`
}

// TeacherReport is the teacher report page
type TeacherReport struct {
	Teachers             []models.Teacher `json:"teachers"`
	TotalTeachers        int64            `json:"totalTeachers" example:"12"`
	AverageExperience    int64            `json:"averageExperience" example:"8"`
	FilterSpecialization string           `json:"filterSpecialization" example:"Math"`
	FilterQualification  string           `json:"filterQualification" example:"MSc"`
	SortBy               string           `json:"sortBy" example:"experience"`
}

// NewTeacherReport maps an assembled teacher report
func NewTeacherReport(v reports.View[models.Teacher]) TeacherReport {
	return TeacherReport{
		Teachers:             v.Rows,
		TotalTeachers:        v.Figures.Count("totalTeachers"),
		AverageExperience:    v.Figures.Count("averageExperience"),
		FilterSpecialization: v.Filter("specialization"),
		FilterQualification:  v.Filter("qualification"),
		SortBy:               v.SortBy,
	}
}

// CourseReport is the course report page
type CourseReport struct {
	Courses       []models.CourseRow `json:"courses"`
	TotalCourses  int64              `json:"totalCourses" example:"8"`
	ActiveCourses int64              `json:"activeCourses" example:"6"`
	AverageFee    string             `json:"averageFee" example:"1500.00"`
	FilterStatus  string             `json:"filterStatus" example:"Active"`
	SortBy        string             `json:"sortBy" example:"name"`
}

// NewCourseReport maps an assembled course report
func NewCourseReport(v reports.View[models.CourseRow]) CourseReport {
	return CourseReport{
		Courses:       v.Rows,
		TotalCourses:  v.Figures.Count("totalCourses"),
		ActiveCourses: v.Figures.Count("activeCourses"),
		AverageFee:    v.Figures.Amount("averageFee"),
		FilterStatus:  v.Filter("status"),
		SortBy:        v.SortBy,
	}
}

// Dashboard holds the school-wide counters and today's latest attendance marks
type Dashboard struct {
	TotalStudents    int64                  `json:"totalStudents" example:"120"`
	PendingFees      int64                  `json:"pendingFees" example:"9"`
	PresentToday     int64                  `json:"presentToday" example:"104"`
	AbsentToday      int64                  `json:"absentToday" example:"6"`
	TotalTeachers    int64                  `json:"totalTeachers" example:"12"`
	TotalCourses     int64                  `json:"totalCourses" example:"8"`
	TotalPayments    int64                  `json:"totalPayments" example:"31"`
	RecentAttendance []models.AttendanceRow `json:"recentAttendance"`
}

// NewDashboard maps the assembled dashboard
func NewDashboard(v reports.View[models.AttendanceRow]) Dashboard {
	return Dashboard{
		TotalStudents:    v.Figures.Count("totalStudents"),
		PendingFees:      v.Figures.Count("pendingFees"),
		PresentToday:     v.Figures.Count("presentToday"),
		AbsentToday:      v.Figures.Count("absentToday"),
		TotalTeachers:    v.Figures.Count("totalTeachers"),
		TotalCourses:     v.Figures.Count("totalCourses"),
		TotalPayments:    v.Figures.Count("totalPayments"),
		RecentAttendance: v.Rows,
	}
}
