package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/yigit/tuition/internal/pkg/apperrors"
	"github.com/yigit/tuition/internal/pkg/dberrors"
)

// DB is the part of *pgxpool.Pool the repositories use
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository    *StudentRepository
	TeacherRepository    *TeacherRepository
	CourseRepository     *CourseRepository
	FeeRepository        *FeeRepository
	AttendanceRepository *AttendanceRepository
	MarkRepository       *MarkRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db DB) *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentRepository(db),
		TeacherRepository:    NewTeacherRepository(db),
		CourseRepository:     NewCourseRepository(db),
		FeeRepository:        NewFeeRepository(db),
		AttendanceRepository: NewAttendanceRepository(db),
		MarkRepository:       NewMarkRepository(db),
	}
}

// statementBuilder renders PostgreSQL $n placeholders
func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// writeError classifies a failed INSERT or UPDATE
func writeError(op string, err error) error {
	switch {
	case dberrors.IsForeignKeyViolation(err):
		return fmt.Errorf("%s: %w", op, apperrors.ErrInvalidReference)
	case dberrors.IsUniqueViolation(err):
		return fmt.Errorf("%s: %w", op, apperrors.ErrConflict)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// deleteError classifies a failed DELETE. A foreign key violation here means other rows
// still reference the one being removed.
func deleteError(op string, err error) error {
	if dberrors.IsForeignKeyViolation(err) {
		return fmt.Errorf("%s: %w", op, apperrors.ErrConflict)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// getOne runs a single-row SELECT and decodes it by column name
func getOne[T any](ctx context.Context, db DB, query squirrel.SelectBuilder, notFound error) (*T, error) {
	sql, args, err := query.Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound
		}
		return nil, fmt.Errorf("failed to read row: %w", err)
	}
	return item, nil
}

// getAll runs a SELECT and decodes every row by column name
func getAll[T any](ctx context.Context, db DB, query squirrel.SelectBuilder) ([]T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	return items, nil
}

// insertReturningID runs an INSERT ... RETURNING id
func insertReturningID(ctx context.Context, db DB, query squirrel.InsertBuilder) (int64, error) {
	sql, args, err := query.Suffix("RETURNING id").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert: %w", err)
	}

	var id int64
	if err := db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// exec runs a statement and returns the number of rows it touched
func exec(ctx context.Context, db DB, query squirrel.Sqlizer) (int64, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build statement: %w", err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
