package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/yigit/tuition/internal/app/models"
	"github.com/yigit/tuition/internal/pkg/apperrors"
	"github.com/yigit/tuition/internal/pkg/logger"
)

var teacherColumns = []string{
	"id", "name", "email", "phone", "dob", "gender", "qualification", "specialization", "experience", "address", "bio",
}

// TeacherRepository handles teacher database operations
type TeacherRepository struct {
	db DB
	sb squirrel.StatementBuilderType
}

// NewTeacherRepository creates a new TeacherRepository
func NewTeacherRepository(db DB) *TeacherRepository {
	return &TeacherRepository{db: db, sb: statementBuilder()}
}

func teacherValues(t *models.Teacher) map[string]interface{} {
	return map[string]interface{}{
		"name":           t.Name,
		"email":          t.Email,
		"phone":          t.Phone,
		"dob":            t.DOB,
		"gender":         t.Gender,
		"qualification":  t.Qualification,
		"specialization": t.Specialization,
		"experience":     t.Experience,
		"address":        t.Address,
		"bio":            t.Bio,
	}
}

// CreateTeacher inserts a teacher and returns its id
func (r *TeacherRepository) CreateTeacher(ctx context.Context, t *models.Teacher) (int64, error) {
	id, err := insertReturningID(ctx, r.db, r.sb.Insert("teachers").SetMap(teacherValues(t)))
	if err != nil {
		logger.Error().Err(err).Msg("Error creating teacher")
		return 0, writeError("error creating teacher", err)
	}
	return id, nil
}

// GetTeacherByID retrieves a teacher by ID
func (r *TeacherRepository) GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error) {
	return getOne[models.Teacher](ctx, r.db,
		r.sb.Select(teacherColumns...).From("teachers").Where(squirrel.Eq{"id": id}),
		apperrors.ErrTeacherNotFound)
}

// UpdateTeacher overwrites every column of the teacher
func (r *TeacherRepository) UpdateTeacher(ctx context.Context, t *models.Teacher) error {
	n, err := exec(ctx, r.db, r.sb.Update("teachers").SetMap(teacherValues(t)).Where(squirrel.Eq{"id": t.ID}))
	if err != nil {
		logger.Error().Err(err).Int64("teacherID", t.ID).Msg("Error updating teacher")
		return writeError("error updating teacher", err)
	}
	if n == 0 {
		return apperrors.ErrTeacherNotFound
	}
	return nil
}

// DeleteTeacher removes a teacher. Courses taught by the teacher keep a dangling
// teacher_id, which reports render through a left join.
func (r *TeacherRepository) DeleteTeacher(ctx context.Context, id int64) error {
	n, err := exec(ctx, r.db, r.sb.Delete("teachers").Where(squirrel.Eq{"id": id}))
	if err != nil {
		logger.Error().Err(err).Int64("teacherID", id).Msg("Error deleting teacher")
		return deleteError("error deleting teacher", err)
	}
	if n == 0 {
		return apperrors.ErrTeacherNotFound
	}
	return nil
}
