package models

import (
	"strconv"
	"time"
)

// Teacher represents a row of the 'teachers' table and the teacher report row
type Teacher struct {
	ID             int64      `json:"id" db:"id"`
	Name           string     `json:"name" db:"name"`
	Email          *string    `json:"email,omitempty" db:"email"`
	Phone          *string    `json:"phone,omitempty" db:"phone"`
	DOB            *time.Time `json:"dob,omitempty" db:"dob"`
	Gender         *string    `json:"gender,omitempty" db:"gender"`
	Qualification  *string    `json:"qualification,omitempty" db:"qualification"`
	Specialization *string    `json:"specialization,omitempty" db:"specialization"`
	Experience     int        `json:"experience" db:"experience"` // years
	Address        *string    `json:"address,omitempty" db:"address"`
	Bio            *string    `json:"bio,omitempty" db:"bio"`
}

// TeacherHeaders labels the columns of Teacher.Record
var TeacherHeaders = []string{"ID", "Name", "Qualification", "Specialization", "Experience", "Email", "Phone"}

// Record implements Recorder
func (t Teacher) Record() []string {
	return []string{
		strconv.FormatInt(t.ID, 10), t.Name, text(t.Qualification), text(t.Specialization),
		strconv.Itoa(t.Experience), text(t.Email), text(t.Phone),
	}
}
