package reports

import (
	"fmt"

	"github.com/Masterminds/squirrel"
)

// Build renders the row query of a report. Identifiers come only from the definition;
// every filter value travels as a `?` argument, so the placeholder count always equals
// len(args).
func Build(def *Definition, n Normalized) (string, []any, error) {
	query := squirrel.Select(def.Columns...).From(def.From)
	for _, join := range def.Joins {
		query = query.LeftJoin(join)
	}

	// 1=1 lets every predicate below be appended as a uniform AND term
	query = query.Where("1=1")
	if def.Scope != nil {
		query = query.Where(def.Scope)
	}
	for _, f := range n.Filters {
		query = query.Where(predicate(f))
	}

	sort := n.Sort
	if sort.Column == "" {
		sort = def.sortField(def.DefaultSort)
	}
	query = query.OrderBy(sort.OrderBy())

	if def.Limit > 0 {
		query = query.Limit(def.Limit)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("failed to build %s report query: %w", def.Kind, err)
	}
	return sql, args, nil
}

// predicate renders one filter as an equality or a (possibly OR-ed) ILIKE match
func predicate(f Filter) squirrel.Sqlizer {
	arg := f.Arg()
	if f.Field.Match == MatchExact {
		return squirrel.Eq{f.Field.Columns[0]: arg}
	}
	if len(f.Field.Columns) == 1 {
		return squirrel.ILike{f.Field.Columns[0]: arg}
	}
	anyColumn := squirrel.Or{}
	for _, column := range f.Field.Columns {
		anyColumn = append(anyColumn, squirrel.ILike{column: arg})
	}
	return anyColumn
}

// statisticQuery renders the scalar query of one statistic
func statisticQuery(s Statistic) (string, []any, error) {
	query := squirrel.Select(s.expression()).From(s.Table)
	if s.Where != nil {
		query = query.Where(s.Where)
	}
	sql, args, err := query.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("failed to build statistic %s: %w", s.Name, err)
	}
	return sql, args, nil
}

// rebind converts `?` placeholders to PostgreSQL's `$n` form
func rebind(sql string) (string, error) {
	return squirrel.Dollar.ReplacePlaceholders(sql)
}
