package reports

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Querier is the part of *pgxpool.Pool the reports run against. Each call borrows a pooled
// connection and hands it back once the rows are closed or the row is scanned.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Statistics holds the numeric result of every statistic of a report, keyed by name
type Statistics map[string]float64

// Aggregate runs the fixed statistics of a report over the whole table. It ignores any
// active filter, so calling it before or after a filtered query gives the same result.
// SUM and AVG over no rows come back as 0.
func Aggregate(ctx context.Context, db Querier, kind Kind) (Statistics, error) {
	def, ok := Lookup(kind)
	if !ok {
		return nil, fmt.Errorf("unknown report kind %q", kind)
	}
	return aggregate(ctx, db, def)
}

func aggregate(ctx context.Context, db Querier, def *Definition) (Statistics, error) {
	stats := make(Statistics, len(def.Statistics))
	for _, s := range def.Statistics {
		sql, args, err := statisticQuery(s)
		if err != nil {
			return nil, err
		}
		if sql, err = rebind(sql); err != nil {
			return nil, fmt.Errorf("failed to rebind statistic %s: %w", s.Name, err)
		}

		var value pgtype.Float8
		if err := db.QueryRow(ctx, sql, args...).Scan(&value); err != nil {
			return nil, fmt.Errorf("failed to compute statistic %s: %w", s.Name, err)
		}
		stats[s.Name] = orZero(value)
	}
	return stats, nil
}

// orZero coerces a NULL aggregate to 0
func orZero(v pgtype.Float8) float64 {
	if !v.Valid {
		return 0
	}
	return v.Float64
}
