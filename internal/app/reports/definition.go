// Package reports turns untrusted report query parameters into whitelisted, parameterized
// SQL, runs it next to a fixed battery of table-wide statistics, and assembles the view
// handed to the renderer.
package reports

import (
	"strings"

	"github.com/Masterminds/squirrel"
)

// Kind identifies a report
type Kind string

const (
	KindStudent   Kind = "student"
	KindPayment   Kind = "payment"
	KindTeacher   Kind = "teacher"
	KindCourse    Kind = "course"
	KindDashboard Kind = "dashboard"
)

// SortParam is the query parameter carrying the requested sort key
const SortParam = "sortBy"

// MatchMode selects how a filter value is compared
type MatchMode int

const (
	// MatchExact compares with `=`
	MatchExact MatchMode = iota
	// MatchSubstring compares with ILIKE against %value%
	MatchSubstring
)

// Direction is an ORDER BY direction keyword
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// FilterField declares a query parameter allowed to become a WHERE predicate.
// A substring filter over several columns matches when any of them matches.
type FilterField struct {
	Param   string
	Columns []string
	Match   MatchMode
}

// SortField declares a sort key. The direction is fixed per key and never taken from input.
type SortField struct {
	Key       string
	Column    string
	Direction Direction
}

// OrderBy renders the ORDER BY term for the field
func (s SortField) OrderBy() string {
	return s.Column + " " + string(s.Direction)
}

// AggregateFunc is the SQL aggregate function of a statistic
type AggregateFunc int

const (
	Count AggregateFunc = iota
	CountDistinct
	Sum
	Avg
)

// Format controls how a statistic is presented once assembled
type Format int

const (
	// FormatCount renders an integer count
	FormatCount Format = iota
	// FormatRounded renders an average rounded to the nearest integer
	FormatRounded
	// FormatMoney renders a two-decimal string
	FormatMoney
)

// Statistic is one scalar aggregate over a whole table. Where holds fixed conditions only;
// the report's active filters never reach it.
type Statistic struct {
	Name   string
	Func   AggregateFunc
	Column string
	Table  string
	Where  squirrel.Sqlizer
	Format Format
}

// expression renders the aggregate cast to float8 so every statistic scans the same way
func (s Statistic) expression() string {
	column := s.Column
	if column == "" {
		column = "*"
	}
	var expr string
	switch s.Func {
	case CountDistinct:
		expr = "COUNT(DISTINCT " + column + ")"
	case Sum:
		expr = "SUM(" + column + ")"
	case Avg:
		expr = "AVG(" + column + ")"
	default:
		expr = "COUNT(" + column + ")"
	}
	return expr + "::float8"
}

// Definition is the complete whitelist and query shape of one report
type Definition struct {
	Kind    Kind
	Columns []string
	From    string
	// Joins are LEFT JOIN clauses so a dangling foreign key never drops a row
	Joins []string
	// Scope is a fixed predicate always applied to the row query
	Scope       squirrel.Sqlizer
	Filters     []FilterField
	Sorts       []SortField
	DefaultSort string
	Limit       uint64
	Statistics  []Statistic
}

// sortField resolves key against the whitelist, falling back to the default sort
func (d *Definition) sortField(key string) SortField {
	var fallback SortField
	for _, s := range d.Sorts {
		if s.Key == key {
			return s
		}
		if s.Key == d.DefaultSort {
			fallback = s
		}
	}
	return fallback
}

// Lookup returns the definition registered for kind
func Lookup(kind Kind) (*Definition, bool) {
	def, ok := catalog[kind]
	return def, ok
}

// ParseKind maps a path segment such as "Payment" to a registered report kind
func ParseKind(value string) (Kind, bool) {
	kind := Kind(strings.ToLower(strings.TrimSpace(value)))
	_, ok := catalog[kind]
	return kind, ok
}
