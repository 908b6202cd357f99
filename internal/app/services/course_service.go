package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/tuition/internal/app/models"
	"github.com/yigit/tuition/internal/pkg/apperrors"
)

// CourseStore is the persistence the course service needs
type CourseStore interface {
	CreateCourse(ctx context.Context, c *models.Course) (int64, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	UpdateCourse(ctx context.Context, c *models.Course) error
	DeleteCourse(ctx context.Context, id int64) error
}

// CourseService defines the interface for course-related operations
type CourseService interface {
	CreateCourse(ctx context.Context, course *models.Course) (int64, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	UpdateCourse(ctx context.Context, course *models.Course) error
	DeleteCourse(ctx context.Context, id int64) error
}

type courseServiceImpl struct {
	courseRepo CourseStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo CourseStore) CourseService {
	return &courseServiceImpl{courseRepo: courseRepo}
}

func validateCourse(course *models.Course) error {
	if course == nil {
		return fmt.Errorf("%w: course is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(course.CourseName) == "" || strings.TrimSpace(course.CourseCode) == "" {
		return fmt.Errorf("%w: course name and code are required", apperrors.ErrValidationFailed)
	}
	if course.Fee < 0 {
		return fmt.Errorf("%w: fee cannot be negative", apperrors.ErrValidationFailed)
	}
	if course.MaxStudents <= 0 {
		return fmt.Errorf("%w: maxStudents must be positive", apperrors.ErrValidationFailed)
	}
	if course.Status != models.CourseActive && course.Status != models.CourseInactive {
		return fmt.Errorf("%w: status must be %s or %s", apperrors.ErrValidationFailed, models.CourseActive, models.CourseInactive)
	}
	return nil
}

// CreateCourse stores a course. A teacher id that does not exist is rejected by the
// foreign key and surfaces as apperrors.ErrInvalidReference.
func (s *courseServiceImpl) CreateCourse(ctx context.Context, course *models.Course) (int64, error) {
	if err := validateCourse(course); err != nil {
		return 0, err
	}
	return s.courseRepo.CreateCourse(ctx, course)
}

func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, apperrors.ErrCourseNotFound
	}
	return s.courseRepo.GetCourseByID(ctx, id)
}

func (s *courseServiceImpl) UpdateCourse(ctx context.Context, course *models.Course) error {
	if err := validateCourse(course); err != nil {
		return err
	}
	return s.courseRepo.UpdateCourse(ctx, course)
}

func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ErrCourseNotFound
	}
	return s.courseRepo.DeleteCourse(ctx, id)
}
