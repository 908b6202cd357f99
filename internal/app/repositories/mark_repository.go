package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/yigit/tuition/internal/app/models"
	"github.com/yigit/tuition/internal/pkg/logger"
)

// MarkRepository handles exam mark database operations
type MarkRepository struct {
	db DB
	sb squirrel.StatementBuilderType
}

// NewMarkRepository creates a new MarkRepository
func NewMarkRepository(db DB) *MarkRepository {
	return &MarkRepository{db: db, sb: statementBuilder()}
}

// AddMark records a mark and returns its id
func (r *MarkRepository) AddMark(ctx context.Context, m *models.Mark) (int64, error) {
	id, err := insertReturningID(ctx, r.db, r.sb.Insert("marks").
		Columns("student_id", "subject", "marks", "exam").
		Values(m.StudentID, m.Subject, m.Marks, m.Exam))
	if err != nil {
		logger.Error().Err(err).Int64("studentID", m.StudentID).Msg("Error adding mark")
		return 0, writeError("error adding mark", err)
	}
	return id, nil
}

// GetMarksByStudent lists a student's marks grouped by exam
func (r *MarkRepository) GetMarksByStudent(ctx context.Context, studentID int64) ([]models.Mark, error) {
	marks, err := getAll[models.Mark](ctx, r.db, r.sb.
		Select("id", "student_id", "subject", "marks", "exam").
		From("marks").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("exam ASC", "subject ASC"))
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error listing marks")
		return nil, err
	}
	return marks, nil
}
