package models

import (
	"strconv"
	"time"
)

// DateLayout is the wire format of calendar dates (dob, payment_date, start_date)
const DateLayout = "2006-01-02"

// Gender values stored in students.gender
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// Payment statuses stored in fees.status
const (
	PaymentPaid    = "Paid"
	PaymentPending = "Pending"
	PaymentFailed  = "Failed"
)

// Course statuses stored in courses.status
const (
	CourseActive   = "Active"
	CourseInactive = "Inactive"
)

// Attendance statuses stored in attendance.status
const (
	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
)

// Recorder is implemented by rows that can be written to a report export
type Recorder interface {
	Record() []string
}

func text(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func date(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
