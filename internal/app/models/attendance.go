package models

import "time"

// Attendance is one daily mark of a student
type Attendance struct {
	ID        int64     `json:"id" db:"id"`
	StudentID int64     `json:"studentId" db:"student_id"`
	Date      time.Time `json:"date" db:"date"`
	Status    string    `json:"status" db:"status"`
}

// AttendanceRow is an attendance mark with the student name left-joined in
type AttendanceRow struct {
	ID          int64     `json:"id" db:"id"`
	StudentID   int64     `json:"studentId" db:"student_id"`
	StudentName *string   `json:"studentName,omitempty" db:"student_name"`
	Date        time.Time `json:"date" db:"date"`
	Status      string    `json:"status" db:"status"`
}
