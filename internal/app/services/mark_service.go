package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/tuition/internal/app/models"
	"github.com/yigit/tuition/internal/pkg/apperrors"
)

// MarkStore is the persistence the mark service needs
type MarkStore interface {
	AddMark(ctx context.Context, m *models.Mark) (int64, error)
	GetMarksByStudent(ctx context.Context, studentID int64) ([]models.Mark, error)
}

// MarkService defines exam mark operations
type MarkService interface {
	AddMark(ctx context.Context, mark *models.Mark) (int64, error)
	GetStudentMarks(ctx context.Context, studentID int64) ([]models.Mark, error)
}

type markServiceImpl struct {
	markRepo    MarkStore
	studentRepo StudentStore
}

// NewMarkService creates a new mark service instance
func NewMarkService(markRepo MarkStore, studentRepo StudentStore) MarkService {
	return &markServiceImpl{markRepo: markRepo, studentRepo: studentRepo}
}

func (s *markServiceImpl) AddMark(ctx context.Context, mark *models.Mark) (int64, error) {
	if mark == nil {
		return 0, fmt.Errorf("%w: mark is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(mark.Subject) == "" || strings.TrimSpace(mark.Exam) == "" {
		return 0, fmt.Errorf("%w: subject and exam are required", apperrors.ErrValidationFailed)
	}
	if mark.Marks < 0 || mark.Marks > 100 {
		return 0, fmt.Errorf("%w: marks must be between 0 and 100", apperrors.ErrValidationFailed)
	}
	return s.markRepo.AddMark(ctx, mark)
}

// GetStudentMarks lists the marks of an existing student
func (s *markServiceImpl) GetStudentMarks(ctx context.Context, studentID int64) ([]models.Mark, error) {
	if _, err := s.studentRepo.GetStudentByID(ctx, studentID); err != nil {
		return nil, err
	}
	return s.markRepo.GetMarksByStudent(ctx, studentID)
}
