package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/tuition/internal/app/models"
	"github.com/yigit/tuition/internal/pkg/apperrors"
)

// TeacherStore is the persistence the teacher service needs
type TeacherStore interface {
	CreateTeacher(ctx context.Context, t *models.Teacher) (int64, error)
	GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error)
	UpdateTeacher(ctx context.Context, t *models.Teacher) error
	DeleteTeacher(ctx context.Context, id int64) error
}

// TeacherService defines the interface for teacher-related operations
type TeacherService interface {
	CreateTeacher(ctx context.Context, teacher *models.Teacher) (int64, error)
	GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error)
	UpdateTeacher(ctx context.Context, teacher *models.Teacher) error
	DeleteTeacher(ctx context.Context, id int64) error
}

type teacherServiceImpl struct {
	teacherRepo TeacherStore
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(teacherRepo TeacherStore) TeacherService {
	return &teacherServiceImpl{teacherRepo: teacherRepo}
}

func validateTeacher(teacher *models.Teacher) error {
	if teacher == nil {
		return fmt.Errorf("%w: teacher is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(teacher.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if teacher.Experience < 0 {
		return fmt.Errorf("%w: experience cannot be negative", apperrors.ErrValidationFailed)
	}
	return nil
}

func (s *teacherServiceImpl) CreateTeacher(ctx context.Context, teacher *models.Teacher) (int64, error) {
	if err := validateTeacher(teacher); err != nil {
		return 0, err
	}
	return s.teacherRepo.CreateTeacher(ctx, teacher)
}

func (s *teacherServiceImpl) GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error) {
	if id <= 0 {
		return nil, apperrors.ErrTeacherNotFound
	}
	return s.teacherRepo.GetTeacherByID(ctx, id)
}

func (s *teacherServiceImpl) UpdateTeacher(ctx context.Context, teacher *models.Teacher) error {
	if err := validateTeacher(teacher); err != nil {
		return err
	}
	return s.teacherRepo.UpdateTeacher(ctx, teacher)
}

func (s *teacherServiceImpl) DeleteTeacher(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ErrTeacherNotFound
	}
	return s.teacherRepo.DeleteTeacher(ctx, id)
}
