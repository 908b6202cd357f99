package reports

import (
	"fmt"
	"net/url"
	"strings"
	"testing"
)

func TestBuildPlaceholdersMatchArgs(t *testing.T) {
	for _, kind := range allKinds() {
		def, _ := Lookup(kind)
		sortKeys := []string{"", "droptable"}
		for _, s := range def.Sorts {
			sortKeys = append(sortKeys, s.Key)
		}

		// every subset of the declared filters
		for mask := 0; mask < 1<<len(def.Filters); mask++ {
			for _, sortBy := range sortKeys {
				params := url.Values{SortParam: {sortBy}}
				for i, f := range def.Filters {
					if mask&(1<<i) != 0 {
						params.Set(f.Param, "v")
					}
				}

				sql, args, err := Build(def, Normalize(kind, params))
				if err != nil {
					t.Fatalf("%s %v: %v", kind, params, err)
				}
				if got := placeholders(sql); got != len(args) {
					t.Errorf("%s %v: %d placeholders for %d args in %q", kind, params, got, len(args), sql)
				}

				bound, err := rebind(sql)
				if err != nil {
					t.Fatalf("rebind: %v", err)
				}
				if strings.Contains(bound, "?") {
					t.Errorf("%s: unbound placeholder in %q", kind, bound)
				}
				if len(args) > 0 && !strings.Contains(bound, fmt.Sprintf("$%d", len(args))) {
					t.Errorf("%s: expected $%d in %q", kind, len(args), bound)
				}
			}
		}
	}
}

func TestBuildOrderBy(t *testing.T) {
	tests := []struct {
		kind   Kind
		sortBy string
		want   string
	}{
		{KindPayment, "", "ORDER BY f.payment_date DESC"},
		{KindPayment, "amount", "ORDER BY f.amount DESC"},
		{KindTeacher, "experience", "ORDER BY experience DESC"},
		{KindTeacher, "", "ORDER BY name ASC"},
		{KindCourse, "fee", "ORDER BY c.fee DESC"},
		{KindStudent, "class", "ORDER BY class ASC"},
		{KindStudent, "droptable", "ORDER BY name ASC"},
		{KindDashboard, "", "ORDER BY a.date DESC LIMIT 5"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind)+"/"+tt.sortBy, func(t *testing.T) {
			def, _ := Lookup(tt.kind)
			sql, _, err := Build(def, Normalize(tt.kind, url.Values{SortParam: {tt.sortBy}}))
			if err != nil {
				t.Fatal(err)
			}
			if !strings.HasSuffix(sql, tt.want) {
				t.Errorf("got %q, want suffix %q", sql, tt.want)
			}
			if n := strings.Count(sql, "ORDER BY"); n != 1 {
				t.Errorf("got %d ORDER BY clauses", n)
			}
		})
	}
}

func TestBuildPaymentStatement(t *testing.T) {
	def, _ := Lookup(KindPayment)
	params := url.Values{"status": {"Paid"}, SortParam: {"amount"}}

	sql, args, err := Build(def, Normalize(KindPayment, params))
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(sql, "FROM fees f LEFT JOIN students s ON f.student_id = s.id") {
		t.Errorf("missing left join in %q", sql)
	}
	if !strings.Contains(sql, "WHERE 1=1 AND f.status = ?") {
		t.Errorf("missing status predicate in %q", sql)
	}
	if len(args) != 1 || args[0] != "Paid" {
		t.Errorf("args = %v, want [Paid]", args)
	}
}

func TestBuildSearchMatchesAnyColumn(t *testing.T) {
	def, _ := Lookup(KindPayment)

	sql, args, err := Build(def, Normalize(KindPayment, url.Values{"search": {"ali"}}))
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(sql, "(s.name ILIKE ? OR f.reference_no ILIKE ?)") {
		t.Errorf("search predicate missing in %q", sql)
	}
	if len(args) != 2 || args[0] != "%ali%" || args[1] != "%ali%" {
		t.Errorf("args = %v", args)
	}
}

func TestBuildKeepsInputOutOfStatement(t *testing.T) {
	hostile := "x'; DROP TABLE fees; --"
	params := url.Values{
		"status":  {hostile},
		"method":  {hostile},
		"search":  {hostile},
		SortParam: {"amount; DROP TABLE fees"},
		"f.id":    {hostile},
	}

	def, _ := Lookup(KindPayment)
	sql, args, err := Build(def, Normalize(KindPayment, params))
	if err != nil {
		t.Fatal(err)
	}

	if strings.Contains(sql, "DROP") || strings.Contains(sql, "'") {
		t.Errorf("input reached statement text: %q", sql)
	}
	if len(args) != 4 {
		t.Errorf("expected status, method and two search args, got %v", args)
	}
}

func TestStatisticQuery(t *testing.T) {
	tests := []struct {
		name string
		stat Statistic
		sql  string
		args int
	}{
		{
			name: "count",
			stat: Statistic{Name: "totalStudents", Func: Count, Table: "students"},
			sql:  "SELECT COUNT(*)::float8 FROM students",
		},
		{
			name: "distinct",
			stat: Statistic{Name: "uniqueClasses", Func: CountDistinct, Column: "class", Table: "students"},
			sql:  "SELECT COUNT(DISTINCT class)::float8 FROM students",
		},
		{
			name: "conditional sum",
			stat: paymentReport.Statistics[3],
			sql:  "SELECT SUM(amount)::float8 FROM fees WHERE status = ?",
			args: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := statisticQuery(tt.stat)
			if err != nil {
				t.Fatal(err)
			}
			if sql != tt.sql {
				t.Errorf("got %q, want %q", sql, tt.sql)
			}
			if len(args) != tt.args {
				t.Errorf("got %d args, want %d", len(args), tt.args)
			}
		})
	}
}

func TestStatisticExpression(t *testing.T) {
	tests := []struct {
		fn     AggregateFunc
		column string
		want   string
	}{
		{Count, "", "COUNT(*)::float8"},
		{CountDistinct, "class", "COUNT(DISTINCT class)::float8"},
		{Sum, "amount", "SUM(amount)::float8"},
		{Avg, "experience", "AVG(experience)::float8"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			s := Statistic{Name: "x", Func: tt.fn, Column: tt.column, Table: "t"}
			if got := s.expression(); got != tt.want {
				t.Errorf("expression() = %q, want %q", got, tt.want)
			}
		})
	}
}
