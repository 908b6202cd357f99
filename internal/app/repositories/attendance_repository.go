package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/yigit/tuition/internal/app/models"
	"github.com/yigit/tuition/internal/pkg/logger"
)

// AttendanceRepository handles attendance database operations
type AttendanceRepository struct {
	db DB
	sb squirrel.StatementBuilderType
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db DB) *AttendanceRepository {
	return &AttendanceRepository{db: db, sb: statementBuilder()}
}

// MarkAttendance records one attendance mark and returns its id
func (r *AttendanceRepository) MarkAttendance(ctx context.Context, a *models.Attendance) (int64, error) {
	id, err := insertReturningID(ctx, r.db, r.sb.Insert("attendance").
		Columns("student_id", "date", "status").
		Values(a.StudentID, a.Date, a.Status))
	if err != nil {
		logger.Error().Err(err).Int64("studentID", a.StudentID).Msg("Error marking attendance")
		return 0, writeError("error marking attendance", err)
	}
	return id, nil
}

// GetAttendanceByDate lists the marks of one day with student names, newest first
func (r *AttendanceRepository) GetAttendanceByDate(ctx context.Context, day time.Time) ([]models.AttendanceRow, error) {
	rows, err := getAll[models.AttendanceRow](ctx, r.db, r.sb.
		Select("a.id", "a.student_id", "s.name AS student_name", "a.date", "a.status").
		From("attendance a").
		LeftJoin("students s ON a.student_id = s.id").
		Where(squirrel.Eq{"a.date": day.Format(models.DateLayout)}).
		OrderBy("a.id DESC"))
	if err != nil {
		logger.Error().Err(err).Time("date", day).Msg("Error listing attendance")
		return nil, err
	}
	return rows, nil
}
