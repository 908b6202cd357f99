package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/yigit/tuition/internal/app/models"
	"github.com/yigit/tuition/internal/app/models/dto"
	"github.com/yigit/tuition/internal/pkg/apperrors"
	"github.com/yigit/tuition/internal/pkg/logger"
)

// StudentStore is the persistence the student service needs
type StudentStore interface {
	CreateStudent(ctx context.Context, s *models.Student) (int64, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	UpdateStudent(ctx context.Context, s *models.Student) error
	DeleteStudent(ctx context.Context, id int64) error
	ImportStudents(ctx context.Context, students []models.Student) (int64, error)
}

// StudentService defines the interface for student-related operations
type StudentService interface {
	CreateStudent(ctx context.Context, student *models.Student) (int64, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	UpdateStudent(ctx context.Context, student *models.Student) error
	DeleteStudent(ctx context.Context, id int64) error
	ImportStudents(ctx context.Context, r io.Reader) (dto.ImportResult, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo StudentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo StudentStore) StudentService {
	return &studentServiceImpl{studentRepo: studentRepo}
}

// validateStudent checks the rules request tags cannot express
func validateStudent(student *models.Student) error {
	if student == nil {
		return fmt.Errorf("%w: student is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(student.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(student.Class) == "" {
		return fmt.Errorf("%w: class cannot be empty", apperrors.ErrValidationFailed)
	}
	return nil
}

func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student) (int64, error) {
	if err := validateStudent(student); err != nil {
		return 0, err
	}
	return s.studentRepo.CreateStudent(ctx, student)
}

func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, apperrors.ErrStudentNotFound
	}
	return s.studentRepo.GetStudentByID(ctx, id)
}

func (s *studentServiceImpl) UpdateStudent(ctx context.Context, student *models.Student) error {
	if err := validateStudent(student); err != nil {
		return err
	}
	return s.studentRepo.UpdateStudent(ctx, student)
}

func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ErrStudentNotFound
	}
	return s.studentRepo.DeleteStudent(ctx, id)
}

// ImportStudents reads students from the first sheet of an xlsx workbook. The first row is
// a header; columns are name, class, gender and phone. Rows without a name or a class are
// skipped.
func (s *studentServiceImpl) ImportStudents(ctx context.Context, r io.Reader) (dto.ImportResult, error) {
	var result dto.ImportResult

	f, err := excelize.OpenReader(r)
	if err != nil {
		logger.Warn().Err(err).Msg("Rejected student import file")
		return result, apperrors.ErrInvalidSpreadsheet
	}
	defer func() {
		if err := f.Close(); err != nil {
			logger.Warn().Err(err).Msg("Error closing import workbook")
		}
	}()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return result, apperrors.ErrInvalidSpreadsheet
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return result, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}

	students := make([]models.Student, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue
		}
		student, ok := studentFromRow(row)
		if !ok {
			result.Skipped++
			continue
		}
		students = append(students, student)
	}

	n, err := s.studentRepo.ImportStudents(ctx, students)
	if err != nil {
		return dto.ImportResult{}, err
	}
	result.Inserted = int(n)

	logger.Info().Int("inserted", result.Inserted).Int("skipped", result.Skipped).Msg("Imported students")
	return result, nil
}

func studentFromRow(row []string) (models.Student, bool) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	student := models.Student{
		Name:   cell(0),
		Class:  cell(1),
		Gender: normalizeGender(cell(2)),
		Phone:  cell(3),
	}
	// imported rows follow the same rules as a created student
	if validateStudent(&student) != nil {
		return models.Student{}, false
	}
	return student, true
}

// normalizeGender maps spreadsheet spellings such as "m" or "FEMALE" onto the stored values
func normalizeGender(value string) string {
	switch strings.ToLower(value) {
	case "m", "male":
		return models.GenderMale
	case "f", "female":
		return models.GenderFemale
	default:
		return models.GenderOther
	}
}
