package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/yigit/tuition/internal/app/models"
	"github.com/yigit/tuition/internal/pkg/apperrors"
	"github.com/yigit/tuition/internal/pkg/logger"
)

var studentColumns = []string{"id", "name", "father", "mother", "dob", "gender", "class", "phone", "email", "address"}

// StudentRepository handles student database operations
type StudentRepository struct {
	db DB
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db DB) *StudentRepository {
	return &StudentRepository{db: db, sb: statementBuilder()}
}

// CreateStudent inserts a student and returns its id
func (r *StudentRepository) CreateStudent(ctx context.Context, s *models.Student) (int64, error) {
	id, err := insertReturningID(ctx, r.db, r.sb.Insert("students").
		Columns("name", "father", "mother", "dob", "gender", "class", "phone", "email", "address").
		Values(s.Name, s.Father, s.Mother, s.DOB, s.Gender, s.Class, s.Phone, s.Email, s.Address))
	if err != nil {
		logger.Error().Err(err).Msg("Error creating student")
		return 0, writeError("error creating student", err)
	}
	return id, nil
}

// GetStudentByID retrieves a student by ID
func (r *StudentRepository) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	return getOne[models.Student](ctx, r.db,
		r.sb.Select(studentColumns...).From("students").Where(squirrel.Eq{"id": id}),
		apperrors.ErrStudentNotFound)
}

// UpdateStudent overwrites every column of the student
func (r *StudentRepository) UpdateStudent(ctx context.Context, s *models.Student) error {
	n, err := exec(ctx, r.db, r.sb.Update("students").
		SetMap(map[string]interface{}{
			"name":    s.Name,
			"father":  s.Father,
			"mother":  s.Mother,
			"dob":     s.DOB,
			"gender":  s.Gender,
			"class":   s.Class,
			"phone":   s.Phone,
			"email":   s.Email,
			"address": s.Address,
		}).
		Where(squirrel.Eq{"id": s.ID}))
	if err != nil {
		logger.Error().Err(err).Int64("studentID", s.ID).Msg("Error updating student")
		return writeError("error updating student", err)
	}
	if n == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// DeleteStudent removes a student
func (r *StudentRepository) DeleteStudent(ctx context.Context, id int64) error {
	n, err := exec(ctx, r.db, r.sb.Delete("students").Where(squirrel.Eq{"id": id}))
	if err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Error deleting student")
		return deleteError("error deleting student", err)
	}
	if n == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// ImportStudents bulk-inserts students with COPY and returns the number written
func (r *StudentRepository) ImportStudents(ctx context.Context, students []models.Student) (int64, error) {
	if len(students) == 0 {
		return 0, nil
	}

	rows := make([][]any, len(students))
	for i, s := range students {
		rows[i] = []any{s.Name, s.Gender, s.Class, s.Phone}
	}

	n, err := r.db.CopyFrom(ctx, pgx.Identifier{"students"}, []string{"name", "gender", "class", "phone"}, pgx.CopyFromRows(rows))
	if err != nil {
		logger.Error().Err(err).Int("students", len(students)).Msg("Error importing students")
		return 0, writeError("error importing students", err)
	}
	return n, nil
}
