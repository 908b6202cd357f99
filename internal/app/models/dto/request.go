package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/yigit/tuition/internal/app/models"
	"github.com/yigit/tuition/internal/pkg/apperrors"
)

// StudentRequest carries the fields of a student on create and update
type StudentRequest struct {
	Name    string  `json:"name" validate:"required,max=100" example:"Ali Khan"`
	Father  *string `json:"father,omitempty" validate:"omitempty,max=100"`
	Mother  *string `json:"mother,omitempty" validate:"omitempty,max=100"`
	DOB     string  `json:"dob,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2012-05-01"`
	Gender  string  `json:"gender" validate:"required,oneof=Male Female Other" example:"Male"`
	Class   string  `json:"class" validate:"required,max=20" example:"7"`
	Phone   string  `json:"phone" validate:"required,max=20" example:"03001234567"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Address *string `json:"address,omitempty" validate:"omitempty,max=255"`
}

// Model converts the request into a student
func (r StudentRequest) Model() (models.Student, error) {
	dob, err := parseOptionalDate("dob", r.DOB)
	if err != nil {
		return models.Student{}, err
	}
	return models.Student{
		Name:    strings.TrimSpace(r.Name),
		Father:  r.Father,
		Mother:  r.Mother,
		DOB:     dob,
		Gender:  r.Gender,
		Class:   strings.TrimSpace(r.Class),
		Phone:   strings.TrimSpace(r.Phone),
		Email:   r.Email,
		Address: r.Address,
	}, nil
}

// TeacherRequest carries the fields of a teacher on create and update
type TeacherRequest struct {
	Name           string  `json:"name" validate:"required,max=100" example:"Sara Ahmed"`
	Email          *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone          *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	DOB            string  `json:"dob,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Gender         *string `json:"gender,omitempty" validate:"omitempty,oneof=Male Female Other"`
	Qualification  *string `json:"qualification,omitempty" validate:"omitempty,max=100" example:"MSc"`
	Specialization *string `json:"specialization,omitempty" validate:"omitempty,max=100" example:"Mathematics"`
	Experience     int     `json:"experience" validate:"gte=0,lte=60" example:"8"`
	Address        *string `json:"address,omitempty" validate:"omitempty,max=255"`
	Bio            *string `json:"bio,omitempty"`
}

// Model converts the request into a teacher
func (r TeacherRequest) Model() (models.Teacher, error) {
	dob, err := parseOptionalDate("dob", r.DOB)
	if err != nil {
		return models.Teacher{}, err
	}
	return models.Teacher{
		Name:           strings.TrimSpace(r.Name),
		Email:          r.Email,
		Phone:          r.Phone,
		DOB:            dob,
		Gender:         r.Gender,
		Qualification:  r.Qualification,
		Specialization: r.Specialization,
		Experience:     r.Experience,
		Address:        r.Address,
		Bio:            r.Bio,
	}, nil
}

// CourseRequest carries the fields of a course on create and update
type CourseRequest struct {
	CourseName  string  `json:"courseName" validate:"required,max=100" example:"Algebra I"`
	CourseCode  string  `json:"courseCode" validate:"required,max=20" example:"MTH-101"`
	TeacherID   *int64  `json:"teacherId,omitempty" validate:"omitempty,min=1"`
	Duration    string  `json:"duration" validate:"required,max=50" example:"3 months"`
	Fee         float64 `json:"fee" validate:"gte=0" example:"1500"`
	MaxStudents int     `json:"maxStudents" validate:"required,min=1" example:"30"`
	Status      string  `json:"status" validate:"required,oneof=Active Inactive" example:"Active"`
	StartDate   string  `json:"startDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Description *string `json:"description,omitempty"`
}

// Model converts the request into a course
func (r CourseRequest) Model() (models.Course, error) {
	start, err := parseOptionalDate("startDate", r.StartDate)
	if err != nil {
		return models.Course{}, err
	}
	return models.Course{
		CourseName:  strings.TrimSpace(r.CourseName),
		CourseCode:  strings.TrimSpace(r.CourseCode),
		TeacherID:   r.TeacherID,
		Duration:    r.Duration,
		Fee:         r.Fee,
		MaxStudents: r.MaxStudents,
		Status:      r.Status,
		StartDate:   start,
		Description: r.Description,
	}, nil
}

// PaymentRequest records a fee payment. PaymentDate defaults to today.
type PaymentRequest struct {
	StudentID     int64   `json:"studentId" validate:"required,min=1" example:"1"`
	Amount        float64 `json:"amount" validate:"gt=0" example:"2500"`
	PaymentDate   string  `json:"paymentDate,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2024-03-01"`
	Status        string  `json:"status" validate:"required,oneof=Paid Pending Failed" example:"Paid"`
	PaymentMethod string  `json:"paymentMethod" validate:"required,max=50" example:"Cash"`
	ReferenceNo   *string `json:"referenceNo,omitempty" validate:"omitempty,max=100"`
	Notes         *string `json:"notes,omitempty"`
}

// Model converts the request into a payment
func (r PaymentRequest) Model(now time.Time) (models.Payment, error) {
	date, err := parseDateOr("paymentDate", r.PaymentDate, now)
	if err != nil {
		return models.Payment{}, err
	}
	return models.Payment{
		StudentID:     r.StudentID,
		Amount:        r.Amount,
		PaymentDate:   date,
		Status:        r.Status,
		PaymentMethod: r.PaymentMethod,
		ReferenceNo:   r.ReferenceNo,
		Notes:         r.Notes,
	}, nil
}

// AttendanceRequest marks a student present or absent. Date defaults to today.
type AttendanceRequest struct {
	StudentID int64  `json:"studentId" validate:"required,min=1" example:"1"`
	Status    string `json:"status" validate:"required,oneof=Present Absent" example:"Present"`
	Date      string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// Model converts the request into an attendance mark
func (r AttendanceRequest) Model(now time.Time) (models.Attendance, error) {
	date, err := parseDateOr("date", r.Date, now)
	if err != nil {
		return models.Attendance{}, err
	}
	return models.Attendance{StudentID: r.StudentID, Date: date, Status: r.Status}, nil
}

// MarkRequest records a student's score in one subject
type MarkRequest struct {
	StudentID int64   `json:"studentId" validate:"required,min=1" example:"1"`
	Subject   string  `json:"subject" validate:"required,max=100" example:"Mathematics"`
	Marks     float64 `json:"marks" validate:"gte=0,lte=100" example:"87.5"`
	Exam      string  `json:"exam" validate:"required,max=100" example:"Midterm"`
}

// Model converts the request into a mark
func (r MarkRequest) Model() models.Mark {
	return models.Mark{
		StudentID: r.StudentID,
		Subject:   strings.TrimSpace(r.Subject),
		Marks:     r.Marks,
		Exam:      strings.TrimSpace(r.Exam),
	}
}

func parseOptionalDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(models.DateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be formatted as %s", apperrors.ErrValidationFailed, field, models.DateLayout)
	}
	return &t, nil
}

func parseDateOr(field, value string, fallback time.Time) (time.Time, error) {
	t, err := parseOptionalDate(field, value)
	if err != nil {
		return time.Time{}, err
	}
	if t == nil {
		y, m, d := fallback.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	return *t, nil
}
