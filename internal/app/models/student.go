package models

import (
	"strconv"
	"time"
)

// Student defines the student model based on the 'students' table. It doubles as the
// student report row, so the db tags must match the report projection.
type Student struct {
	ID      int64      `json:"id" db:"id"`
	Name    string     `json:"name" db:"name"`
	Father  *string    `json:"father,omitempty" db:"father"`
	Mother  *string    `json:"mother,omitempty" db:"mother"`
	DOB     *time.Time `json:"dob,omitempty" db:"dob"`
	Gender  string     `json:"gender" db:"gender"`
	Class   string     `json:"class" db:"class"`
	Phone   string     `json:"phone" db:"phone"`
	Email   *string    `json:"email,omitempty" db:"email"`
	Address *string    `json:"address,omitempty" db:"address"`
}

// StudentHeaders labels the columns of Student.Record
var StudentHeaders = []string{"ID", "Name", "Class", "Gender", "Phone", "Email", "Father", "Mother", "Date of Birth"}

// Record implements Recorder
func (s Student) Record() []string {
	return []string{
		strconv.FormatInt(s.ID, 10), s.Name, s.Class, s.Gender, s.Phone,
		text(s.Email), text(s.Father), text(s.Mother), date(s.DOB),
	}
}
