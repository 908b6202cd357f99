package reports

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/yigit/tuition/internal/pkg/logger"
)

// View is the assembled report: the filtered rows, the table-wide figures and the
// filter/sort state echoed back for the filter form.
type View[T any] struct {
	Kind Kind
	Rows []T
	// Filters holds each declared filter parameter as the caller supplied it
	Filters map[string]string
	// SortBy is the resolved sort key, or the sort as supplied when Degraded is set
	SortBy  string
	Figures Figures
	// Degraded is set when the data store failed and the view holds the zero fallback
	Degraded bool
}

// Filter returns the echoed value of a filter parameter
func (v View[T]) Filter(param string) string {
	return v.Filters[param]
}

// Assembler runs reports against the data store
type Assembler struct {
	db     Querier
	logger zerolog.Logger
}

// NewAssembler creates a new Assembler
func NewAssembler(db Querier, lgr zerolog.Logger) *Assembler {
	return &Assembler{
		db:     db,
		logger: lgr.With().Str("component", "reports").Logger(),
	}
}

// Assemble builds the report of kind for the raw query parameters, decoding rows into T
// by column name. It never fails: when any query errors the failure is logged and the
// view comes back with no rows, zeroed figures and the caller's filters and sort echoed.
func Assemble[T any](ctx context.Context, a *Assembler, kind Kind, params url.Values) View[T] {
	n := Normalize(kind, params)
	view := View[T]{
		Kind:    kind,
		Rows:    []T{},
		Filters: n.Echo,
		SortBy:  n.Sort.Key,
	}

	def, ok := Lookup(kind)
	if !ok {
		a.fail(ctx, kind, fmt.Errorf("unknown report kind %q", kind))
		return view.degrade(n)
	}
	view.Figures = formatStatistics(def, nil)

	// Rows and statistics are independent reads with no transaction spanning them
	var (
		rows  []T
		stats Statistics
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = fetchRows[T](gctx, a.db, def, n)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = aggregate(gctx, a.db, def)
		return err
	})

	if err := g.Wait(); err != nil {
		a.fail(ctx, kind, err)
		return view.degrade(n)
	}

	if rows != nil {
		view.Rows = rows
	}
	view.Figures = formatStatistics(def, stats)
	return view
}

// degrade marks the view as the failure fallback and echoes the sort the caller attempted
func (v View[T]) degrade(n Normalized) View[T] {
	v.Degraded = true
	v.SortBy = n.SortEcho
	return v
}

func (a *Assembler) fail(ctx context.Context, kind Kind, err error) {
	lgr := logger.FromContext(ctx, a.logger)
	lgr.Error().Err(err).Str("kind", string(kind)).Msg("Report query failed, rendering empty report")
}

// fetchRows runs the filtered, sorted row query and decodes every row into T
func fetchRows[T any](ctx context.Context, db Querier, def *Definition, n Normalized) ([]T, error) {
	sql, args, err := Build(def, n)
	if err != nil {
		return nil, err
	}
	if sql, err = rebind(sql); err != nil {
		return nil, fmt.Errorf("failed to rebind %s report query: %w", def.Kind, err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s report: %w", def.Kind, err)
	}

	// CollectRows closes rows on every path, releasing the pooled connection
	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("failed to read %s report rows: %w", def.Kind, err)
	}
	return out, nil
}
