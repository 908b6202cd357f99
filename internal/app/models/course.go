package models

import (
	"strconv"
	"time"
)

// Course represents a row of the 'courses' table. TeacherID is optional.
type Course struct {
	ID          int64      `json:"id" db:"id"`
	CourseName  string     `json:"courseName" db:"course_name"`
	CourseCode  string     `json:"courseCode" db:"course_code"`
	TeacherID   *int64     `json:"teacherId,omitempty" db:"teacher_id"`
	Duration    string     `json:"duration" db:"duration"`
	Fee         float64    `json:"fee" db:"fee"`
	MaxStudents int        `json:"maxStudents" db:"max_students"`
	Status      string     `json:"status" db:"status"`
	StartDate   *time.Time `json:"startDate,omitempty" db:"start_date"`
	Description *string    `json:"description,omitempty" db:"description"`
}

// CourseRow is a course report row with the teacher name left-joined in
type CourseRow struct {
	ID          int64      `json:"id" db:"id"`
	CourseName  string     `json:"courseName" db:"course_name"`
	CourseCode  string     `json:"courseCode" db:"course_code"`
	TeacherID   *int64     `json:"teacherId,omitempty" db:"teacher_id"`
	TeacherName *string    `json:"teacherName,omitempty" db:"teacher_name"`
	Duration    string     `json:"duration" db:"duration"`
	Fee         float64    `json:"fee" db:"fee"`
	MaxStudents int        `json:"maxStudents" db:"max_students"`
	Status      string     `json:"status" db:"status"`
	StartDate   *time.Time `json:"startDate,omitempty" db:"start_date"`
}

// CourseHeaders labels the columns of CourseRow.Record
var CourseHeaders = []string{"ID", "Course", "Code", "Teacher", "Duration", "Fee", "Max Students", "Status", "Start Date"}

// Record implements Recorder
func (c CourseRow) Record() []string {
	return []string{
		strconv.FormatInt(c.ID, 10), c.CourseName, c.CourseCode, text(c.TeacherName), c.Duration,
		money(c.Fee), strconv.Itoa(c.MaxStudents), c.Status, date(c.StartDate),
	}
}
