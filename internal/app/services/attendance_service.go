package services

import (
	"context"
	"fmt"
	"time"

	"github.com/yigit/tuition/internal/app/models"
	"github.com/yigit/tuition/internal/pkg/apperrors"
)

// AttendanceStore is the persistence the attendance service needs
type AttendanceStore interface {
	MarkAttendance(ctx context.Context, a *models.Attendance) (int64, error)
	GetAttendanceByDate(ctx context.Context, day time.Time) ([]models.AttendanceRow, error)
}

// AttendanceService defines attendance operations
type AttendanceService interface {
	MarkAttendance(ctx context.Context, attendance *models.Attendance) (int64, error)
	GetTodayAttendance(ctx context.Context) ([]models.AttendanceRow, error)
}

type attendanceServiceImpl struct {
	attendanceRepo AttendanceStore
	now            func() time.Time
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(attendanceRepo AttendanceStore) AttendanceService {
	return &attendanceServiceImpl{attendanceRepo: attendanceRepo, now: time.Now}
}

// MarkAttendance records a mark. Marks for a future day are rejected.
func (s *attendanceServiceImpl) MarkAttendance(ctx context.Context, attendance *models.Attendance) (int64, error) {
	if attendance == nil {
		return 0, fmt.Errorf("%w: attendance is nil", apperrors.ErrValidationFailed)
	}
	if attendance.Status != models.AttendancePresent && attendance.Status != models.AttendanceAbsent {
		return 0, fmt.Errorf("%w: status must be %s or %s", apperrors.ErrValidationFailed, models.AttendancePresent, models.AttendanceAbsent)
	}
	// compare calendar days; Date carries no meaningful time of day
	if attendance.Date.Format(models.DateLayout) > s.now().Format(models.DateLayout) {
		return 0, fmt.Errorf("%w: attendance cannot be marked for a future date", apperrors.ErrValidationFailed)
	}
	return s.attendanceRepo.MarkAttendance(ctx, attendance)
}

func (s *attendanceServiceImpl) GetTodayAttendance(ctx context.Context) ([]models.AttendanceRow, error) {
	return s.attendanceRepo.GetAttendanceByDate(ctx, s.now())
}
