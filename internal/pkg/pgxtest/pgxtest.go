// Package pgxtest provides in-memory pgx.Rows and pgx.Row values for tests that run
// without a database.
package pgxtest

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// Rows is an in-memory result set. Values are assigned to scan targets by reflection;
// a nil value zeroes the target and pointer targets are allocated as needed.
type Rows struct {
	columns []string
	data    [][]any
	pos     int
	closed  bool
	err     error
}

var _ pgx.Rows = (*Rows)(nil)

// NewRows builds a result set with the given column names
func NewRows(columns []string, data ...[]any) *Rows {
	return &Rows{columns: columns, data: data}
}

// FailAfter makes Err report err once iteration ends
func (r *Rows) FailAfter(err error) *Rows {
	r.err = err
	return r
}

// Closed reports whether the rows were closed
func (r *Rows) Closed() bool { return r.closed }

func (r *Rows) Close() { r.closed = true }

func (r *Rows) Err() error { return r.err }

func (r *Rows) CommandTag() pgconn.CommandTag {
	return pgconn.NewCommandTag(fmt.Sprintf("SELECT %d", len(r.data)))
}

func (r *Rows) FieldDescriptions() []pgconn.FieldDescription {
	fields := make([]pgconn.FieldDescription, len(r.columns))
	for i, name := range r.columns {
		fields[i] = pgconn.FieldDescription{Name: name}
	}
	return fields
}

func (r *Rows) Next() bool {
	if r.closed || r.pos >= len(r.data) {
		r.closed = true
		return false
	}
	r.pos++
	return true
}

func (r *Rows) Scan(dest ...any) error {
	row := r.data[r.pos-1]
	if len(dest) != len(row) {
		return fmt.Errorf("got %d scan targets for %d columns", len(dest), len(row))
	}
	for i, d := range dest {
		if err := Assign(d, row[i]); err != nil {
			return fmt.Errorf("column %s: %w", r.columns[i], err)
		}
	}
	return nil
}

func (r *Rows) Values() ([]any, error) {
	return r.data[r.pos-1], nil
}

func (r *Rows) RawValues() [][]byte {
	raw := make([][]byte, len(r.columns))
	for i, v := range r.data[r.pos-1] {
		if v != nil {
			raw[i] = []byte(fmt.Sprint(v))
		}
	}
	return raw
}

func (r *Rows) Conn() *pgx.Conn { return nil }

// Row is a single-row result. Err, when set, is returned from Scan.
type Row struct {
	Values []any
	Err    error
}

var _ pgx.Row = Row{}

func (r Row) Scan(dest ...any) error {
	if r.Err != nil {
		return r.Err
	}
	if len(dest) != len(r.Values) {
		return fmt.Errorf("got %d scan targets for %d values", len(dest), len(r.Values))
	}
	for i, d := range dest {
		if err := Assign(d, r.Values[i]); err != nil {
			return err
		}
	}
	return nil
}

// Assign stores value into the pointer dest. A *pgtype.Float8 target receives a
// NULL-aware float, every other target a converted copy of value.
func Assign(dest, value any) error {
	if f, ok := dest.(*pgtype.Float8); ok {
		return assignFloat8(f, value)
	}

	target := reflect.ValueOf(dest)
	if target.Kind() != reflect.Pointer || target.IsNil() {
		return errors.New("scan target must be a non-nil pointer")
	}
	elem := target.Elem()
	if value == nil {
		elem.Set(reflect.Zero(elem.Type()))
		return nil
	}

	if elem.Kind() == reflect.Pointer {
		alloc := reflect.New(elem.Type().Elem())
		if err := Assign(alloc.Interface(), value); err != nil {
			return err
		}
		elem.Set(alloc)
		return nil
	}

	v := reflect.ValueOf(value)
	if !v.Type().ConvertibleTo(elem.Type()) {
		return fmt.Errorf("cannot assign %T to %s", value, elem.Type())
	}
	elem.Set(v.Convert(elem.Type()))
	return nil
}

func assignFloat8(dest *pgtype.Float8, value any) error {
	switch v := value.(type) {
	case nil:
		*dest = pgtype.Float8{}
	case float64:
		*dest = pgtype.Float8{Float64: v, Valid: true}
	case int:
		*dest = pgtype.Float8{Float64: float64(v), Valid: true}
	case int64:
		*dest = pgtype.Float8{Float64: float64(v), Valid: true}
	default:
		return fmt.Errorf("cannot assign %T to float8", value)
	}
	return nil
}
