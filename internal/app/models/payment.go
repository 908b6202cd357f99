package models

import (
	"strconv"
	"time"
)

// Payment represents a fee payment, a row of the 'fees' table
type Payment struct {
	ID            int64     `json:"id" db:"id"`
	StudentID     int64     `json:"studentId" db:"student_id"`
	Amount        float64   `json:"amount" db:"amount"`
	PaymentDate   time.Time `json:"paymentDate" db:"payment_date"`
	Status        string    `json:"status" db:"status"`
	PaymentMethod string    `json:"paymentMethod" db:"payment_method"`
	ReferenceNo   *string   `json:"referenceNo,omitempty" db:"reference_no"`
	Notes         *string   `json:"notes,omitempty" db:"notes"`
}

// PaymentRow is a payment report row with the student name left-joined in
type PaymentRow struct {
	ID            int64     `json:"id" db:"id"`
	StudentID     int64     `json:"studentId" db:"student_id"`
	StudentName   *string   `json:"studentName,omitempty" db:"student_name"`
	Amount        float64   `json:"amount" db:"amount"`
	PaymentDate   time.Time `json:"paymentDate" db:"payment_date"`
	Status        string    `json:"status" db:"status"`
	PaymentMethod string    `json:"paymentMethod" db:"payment_method"`
	ReferenceNo   *string   `json:"referenceNo,omitempty" db:"reference_no"`
	Notes         *string   `json:"notes,omitempty" db:"notes"`
}

// PaymentHeaders labels the columns of PaymentRow.Record
var PaymentHeaders = []string{"ID", "Student", "Amount", "Date", "Status", "Method", "Reference"}

// Record implements Recorder
func (p PaymentRow) Record() []string {
	return []string{
		strconv.FormatInt(p.ID, 10), text(p.StudentName), money(p.Amount), date(&p.PaymentDate),
		p.Status, p.PaymentMethod, text(p.ReferenceNo),
	}
}
