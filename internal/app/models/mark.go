package models

// Mark is a student's score in one subject of an exam
type Mark struct {
	ID        int64   `json:"id" db:"id"`
	StudentID int64   `json:"studentId" db:"student_id"`
	Subject   string  `json:"subject" db:"subject"`
	Marks     float64 `json:"marks" db:"marks"`
	Exam      string  `json:"exam" db:"exam"`
}
