package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/yigit/tuition/internal/app/models"
	"github.com/yigit/tuition/internal/pkg/apperrors"
	"github.com/yigit/tuition/internal/pkg/logger"
)

var courseColumns = []string{
	"id", "course_name", "course_code", "teacher_id", "duration", "fee", "max_students", "status", "start_date", "description",
}

// CourseRepository handles course database operations
type CourseRepository struct {
	db DB
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db DB) *CourseRepository {
	return &CourseRepository{db: db, sb: statementBuilder()}
}

func courseValues(c *models.Course) map[string]interface{} {
	return map[string]interface{}{
		"course_name":  c.CourseName,
		"course_code":  c.CourseCode,
		"teacher_id":   c.TeacherID,
		"duration":     c.Duration,
		"fee":          c.Fee,
		"max_students": c.MaxStudents,
		"status":       c.Status,
		"start_date":   c.StartDate,
		"description":  c.Description,
	}
}

// CreateCourse inserts a course and returns its id
func (r *CourseRepository) CreateCourse(ctx context.Context, c *models.Course) (int64, error) {
	id, err := insertReturningID(ctx, r.db, r.sb.Insert("courses").SetMap(courseValues(c)))
	if err != nil {
		logger.Error().Err(err).Str("courseCode", c.CourseCode).Msg("Error creating course")
		return 0, writeError("error creating course", err)
	}
	return id, nil
}

// GetCourseByID retrieves a course by ID
func (r *CourseRepository) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	return getOne[models.Course](ctx, r.db,
		r.sb.Select(courseColumns...).From("courses").Where(squirrel.Eq{"id": id}),
		apperrors.ErrCourseNotFound)
}

// UpdateCourse overwrites every column of the course
func (r *CourseRepository) UpdateCourse(ctx context.Context, c *models.Course) error {
	n, err := exec(ctx, r.db, r.sb.Update("courses").SetMap(courseValues(c)).Where(squirrel.Eq{"id": c.ID}))
	if err != nil {
		logger.Error().Err(err).Int64("courseID", c.ID).Msg("Error updating course")
		return writeError("error updating course", err)
	}
	if n == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// DeleteCourse removes a course
func (r *CourseRepository) DeleteCourse(ctx context.Context, id int64) error {
	n, err := exec(ctx, r.db, r.sb.Delete("courses").Where(squirrel.Eq{"id": id}))
	if err != nil {
		logger.Error().Err(err).Int64("courseID", id).Msg("Error deleting course")
		return deleteError("error deleting course", err)
	}
	if n == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}
