package reports

import (
	"bytes"
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/yigit/tuition/internal/pkg/pgxtest"
)

type paymentRow struct {
	ID            int64     `db:"id"`
	StudentID     int64     `db:"student_id"`
	StudentName   *string   `db:"student_name"`
	Amount        float64   `db:"amount"`
	PaymentDate   time.Time `db:"payment_date"`
	Status        string    `db:"status"`
	PaymentMethod string    `db:"payment_method"`
	ReferenceNo   *string   `db:"reference_no"`
	Notes         *string   `db:"notes"`
}

type teacherRow struct {
	ID         int64  `db:"id"`
	Name       string `db:"name"`
	Experience int    `db:"experience"`
}

type courseRow struct {
	ID   int64   `db:"id"`
	Name string  `db:"course_name"`
	Fee  float64 `db:"fee"`
}

var paymentColumns = []string{
	"id", "student_id", "student_name", "amount", "payment_date", "status", "payment_method", "reference_no", "notes",
}

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
}

func payment(id int64, amount float64, date time.Time, status string) []any {
	return []any{id, int64(1), "Ali Khan", amount, date, status, "Cash", nil, nil}
}

func newTestAssembler(store Querier) (*Assembler, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewAssembler(store, zerolog.New(&buf)), &buf
}

func TestAssemblePaymentDefaults(t *testing.T) {
	store := &fakeStore{
		rowsFn: func(string, []any) (*pgxtest.Rows, error) {
			return pgxtest.NewRows(paymentColumns,
				payment(3, 500, day(20), "Paid"),
				payment(2, 900, day(12), "Pending"),
				payment(1, 250, day(2), "Paid"),
			), nil
		},
		statsFn: statAnswers(KindPayment, map[string]any{
			"totalPayments": 3, "paidCount": 2, "pendingCount": 1, "totalRevenue": 750.0,
		}),
	}
	a, _ := newTestAssembler(store)

	view := Assemble[paymentRow](context.Background(), a, KindPayment, url.Values{})

	if view.Degraded {
		t.Fatal("view unexpectedly degraded")
	}
	queries := store.rowQueries()
	if len(queries) != 1 {
		t.Fatalf("expected 1 row query, got %d", len(queries))
	}
	if !strings.HasSuffix(queries[0].SQL, "ORDER BY f.payment_date DESC") || len(queries[0].Args) != 0 {
		t.Errorf("unexpected row query %q %v", queries[0].SQL, queries[0].Args)
	}
	if view.SortBy != "date" {
		t.Errorf("SortBy = %q, want date", view.SortBy)
	}
	if len(view.Rows) != 3 || view.Rows[0].ID != 3 || view.Rows[0].StudentName == nil || *view.Rows[0].StudentName != "Ali Khan" {
		t.Errorf("unexpected rows %+v", view.Rows)
	}
	if view.Figures.Count("totalPayments") != 3 || view.Figures.Amount("totalRevenue") != "750.00" {
		t.Errorf("unexpected figures %+v", view.Figures)
	}
}

func TestAssemblePaymentFilterLeavesStatisticsWhole(t *testing.T) {
	store := &fakeStore{
		rowsFn: func(sql string, args []any) (*pgxtest.Rows, error) {
			if len(args) != 1 || args[0] != "Paid" {
				return nil, errors.New("unexpected filter args")
			}
			return pgxtest.NewRows(paymentColumns,
				payment(3, 500, day(20), "Paid"),
				payment(1, 250, day(2), "Paid"),
			), nil
		},
		statsFn: statAnswers(KindPayment, map[string]any{
			"totalPayments": 40, "paidCount": 31, "pendingCount": 9, "totalRevenue": 125000.0,
		}),
	}
	a, _ := newTestAssembler(store)

	params := url.Values{"status": {"Paid"}, SortParam: {"amount"}}
	view := Assemble[paymentRow](context.Background(), a, KindPayment, params)

	if view.Degraded {
		t.Fatal("view unexpectedly degraded")
	}
	for _, row := range view.Rows {
		if row.Status != "Paid" {
			t.Errorf("row %d has status %s", row.ID, row.Status)
		}
	}
	if q := store.rowQueries()[0].SQL; !strings.HasSuffix(q, "ORDER BY f.amount DESC") || !strings.Contains(q, "f.status = $1") {
		t.Errorf("unexpected row query %q", q)
	}
	for _, q := range store.statQueries() {
		if strings.Contains(q.SQL, "f.status") {
			t.Errorf("filter leaked into statistic %q", q.SQL)
		}
	}
	if got := view.Figures.Amount("totalRevenue"); got != "125000.00" {
		t.Errorf("totalRevenue = %q, want the table-wide 125000.00", got)
	}
	if view.Filter("status") != "Paid" || view.SortBy != "amount" {
		t.Errorf("filters not echoed: %v %q", view.Filters, view.SortBy)
	}
}

func TestAssembleTeacherExperienceDescending(t *testing.T) {
	store := &fakeStore{
		rowsFn: func(string, []any) (*pgxtest.Rows, error) {
			return pgxtest.NewRows([]string{"id", "name", "experience"},
				[]any{int64(2), "Sara", 15},
				[]any{int64(1), "Omar", 4},
			), nil
		},
		statsFn: statAnswers(KindTeacher, map[string]any{"totalTeachers": 2, "averageExperience": 9.5}),
	}
	a, _ := newTestAssembler(store)

	view := Assemble[teacherRow](context.Background(), a, KindTeacher, url.Values{SortParam: {"experience"}})

	if q := store.rowQueries()[0].SQL; !strings.HasSuffix(q, "ORDER BY experience DESC") {
		t.Errorf("unexpected row query %q", q)
	}
	if len(view.Rows) != 2 || view.Rows[0].Experience != 15 {
		t.Errorf("unexpected rows %+v", view.Rows)
	}
	if got := view.Figures.Count("averageExperience"); got != 10 {
		t.Errorf("averageExperience = %d, want 10", got)
	}
}

func TestAssembleStoreFailureRendersEmptyReport(t *testing.T) {
	tests := []struct {
		name  string
		store *fakeStore
	}{
		{
			name: "main query",
			store: &fakeStore{
				rowsFn:  func(string, []any) (*pgxtest.Rows, error) { return nil, errors.New("relation \"fees\" does not exist") },
				statsFn: statAnswers(KindPayment, map[string]any{"totalPayments": 3, "totalRevenue": 750.0}),
			},
		},
		{
			name: "statistic query",
			store: &fakeStore{
				rowsFn: func(string, []any) (*pgxtest.Rows, error) {
					return pgxtest.NewRows(paymentColumns, payment(1, 250, day(2), "Paid")), nil
				},
				statsFn: func(string, []any) (any, error) { return nil, errors.New("timeout") },
			},
		},
		{
			name: "row decoding",
			store: &fakeStore{
				rowsFn: func(string, []any) (*pgxtest.Rows, error) {
					return pgxtest.NewRows([]string{"id", "unexpected"}, []any{int64(1), "x"}), nil
				},
				statsFn: statAnswers(KindPayment, nil),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, logs := newTestAssembler(tt.store)
			params := url.Values{"status": {"Paid"}, "method": {" Cash "}, SortParam: {"amount"}}

			view := Assemble[paymentRow](context.Background(), a, KindPayment, params)

			if !view.Degraded {
				t.Error("expected a degraded view")
			}
			if view.Rows == nil || len(view.Rows) != 0 {
				t.Errorf("expected an empty, non-nil row set, got %#v", view.Rows)
			}
			if len(view.Figures) != len(paymentReport.Statistics) {
				t.Fatalf("expected every figure present, got %+v", view.Figures)
			}
			for _, f := range view.Figures {
				if f.Count != 0 || (f.Money && f.Amount != "0.00") {
					t.Errorf("figure %s not zeroed: %+v", f.Name, f)
				}
			}
			if view.Filter("status") != "Paid" || view.Filter("method") != " Cash " || view.SortBy != "amount" {
				t.Errorf("attempted filters not echoed: %v %q", view.Filters, view.SortBy)
			}
			if !strings.Contains(logs.String(), "Report query failed") || !strings.Contains(logs.String(), `"kind":"payment"`) {
				t.Errorf("failure not logged: %s", logs.String())
			}
		})
	}
}

func TestAssembleNoMatchesKeepsStatistics(t *testing.T) {
	store := &fakeStore{
		rowsFn: func(string, []any) (*pgxtest.Rows, error) {
			return pgxtest.NewRows([]string{"id", "course_name", "fee"}), nil
		},
		statsFn: statAnswers(KindCourse, map[string]any{
			"totalCourses": 3, "activeCourses": 2, "averageFee": 1500.0,
		}),
	}
	a, _ := newTestAssembler(store)

	view := Assemble[courseRow](context.Background(), a, KindCourse, url.Values{"status": {"NonexistentStatus"}})

	if view.Degraded {
		t.Fatal("an empty result is not a failure")
	}
	if view.Rows == nil || len(view.Rows) != 0 {
		t.Errorf("expected an empty, non-nil row set, got %#v", view.Rows)
	}
	if view.Figures.Count("totalCourses") != 3 || view.Figures.Amount("averageFee") != "1500.00" {
		t.Errorf("statistics should reflect the whole table: %+v", view.Figures)
	}
	if view.Filter("status") != "NonexistentStatus" {
		t.Errorf("status echo = %q", view.Filter("status"))
	}
}

func TestAssembleUnknownKind(t *testing.T) {
	store := &fakeStore{}
	a, _ := newTestAssembler(store)

	view := Assemble[courseRow](context.Background(), a, Kind("invoices"), url.Values{})

	if !view.Degraded || len(view.Rows) != 0 {
		t.Errorf("unexpected view %+v", view)
	}
	if len(store.rowQueries()) != 0 || len(store.statQueries()) != 0 {
		t.Error("unknown kind reached the store")
	}
}

func TestAssembleFailureEchoesAttemptedSort(t *testing.T) {
	failing := func() *fakeStore {
		return &fakeStore{
			rowsFn:  func(string, []any) (*pgxtest.Rows, error) { return nil, errors.New("connection refused") },
			statsFn: statAnswers(KindPayment, nil),
		}
	}
	healthy := func() *fakeStore {
		return &fakeStore{
			rowsFn:  func(string, []any) (*pgxtest.Rows, error) { return pgxtest.NewRows(paymentColumns), nil },
			statsFn: statAnswers(KindPayment, nil),
		}
	}

	tests := []struct {
		name   string
		store  *fakeStore
		sortBy []string
		want   string
	}{
		{"store down keeps unknown sort", failing(), []string{"droptable"}, "droptable"},
		{"store down keeps valid sort", failing(), []string{"amount"}, "amount"},
		{"store down without sort", failing(), nil, ""},
		{"store up resolves unknown sort", healthy(), []string{"droptable"}, "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := newTestAssembler(tt.store)
			params := url.Values{}
			if tt.sortBy != nil {
				params[SortParam] = tt.sortBy
			}

			view := Assemble[paymentRow](context.Background(), a, KindPayment, params)

			if view.SortBy != tt.want {
				t.Errorf("SortBy = %q, want %q", view.SortBy, tt.want)
			}
		})
	}
}
