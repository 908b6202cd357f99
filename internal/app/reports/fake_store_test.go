package reports

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/yigit/tuition/internal/pkg/pgxtest"
)

// recordedQuery is one call made against fakeStore
type recordedQuery struct {
	SQL  string
	Args []any
}

// fakeStore answers row queries through rowsFn and scalar statistics through statsFn.
// Both run concurrently from Assemble, so recording is guarded.
type fakeStore struct {
	mu      sync.Mutex
	queries []recordedQuery
	stats   []recordedQuery

	rowsFn  func(sql string, args []any) (*pgxtest.Rows, error)
	statsFn func(sql string, args []any) (any, error)
}

func (s *fakeStore) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	s.mu.Lock()
	s.queries = append(s.queries, recordedQuery{SQL: sql, Args: args})
	s.mu.Unlock()

	if s.rowsFn == nil {
		return pgxtest.NewRows(nil), nil
	}
	rows, err := s.rowsFn(sql, args)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *fakeStore) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	s.mu.Lock()
	s.stats = append(s.stats, recordedQuery{SQL: sql, Args: args})
	s.mu.Unlock()

	if s.statsFn == nil {
		return pgxtest.Row{Values: []any{nil}}
	}
	value, err := s.statsFn(sql, args)
	return pgxtest.Row{Values: []any{value}, Err: err}
}

func (s *fakeStore) rowQueries() []recordedQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]recordedQuery(nil), s.queries...)
}

func (s *fakeStore) statQueries() []recordedQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]recordedQuery(nil), s.stats...)
}

// statKey identifies a scalar statistic query by its text and arguments
func statKey(sql string, args []any) string {
	return sql + " " + fmt.Sprint(args)
}

// statAnswers maps each named statistic of kind to the value the store returns for it.
// Statistics not named in values come back NULL.
func statAnswers(kind Kind, values map[string]any) func(string, []any) (any, error) {
	def, _ := Lookup(kind)
	byQuery := make(map[string]any, len(def.Statistics))
	for _, s := range def.Statistics {
		sql, args, err := statisticQuery(s)
		if err != nil {
			panic(err)
		}
		if sql, err = rebind(sql); err != nil {
			panic(err)
		}
		byQuery[statKey(sql, args)] = values[s.Name]
	}
	return func(sql string, args []any) (any, error) {
		value, ok := byQuery[statKey(sql, args)]
		if !ok {
			return nil, fmt.Errorf("unexpected statistic query: %s %v", sql, args)
		}
		return value, nil
	}
}

// placeholders counts the `?` markers in a statement
func placeholders(sql string) int {
	return strings.Count(sql, "?")
}
