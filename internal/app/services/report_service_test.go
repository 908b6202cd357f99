package services

import (
	"bytes"
	"context"
	"errors"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/yigit/tuition/internal/app/reports"
	"github.com/yigit/tuition/internal/pkg/apperrors"
	"github.com/yigit/tuition/internal/pkg/pgxtest"
)

// reportStore serves one fixed result set for every row query and NULL for every
// statistic, unless failing is set
type reportStore struct {
	mu      sync.Mutex
	columns []string
	data    [][]any
	failing error
	args    [][]any
}

func (s *reportStore) Query(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
	s.mu.Lock()
	s.args = append(s.args, args)
	s.mu.Unlock()
	if s.failing != nil {
		return nil, s.failing
	}
	return pgxtest.NewRows(s.columns, s.data...), nil
}

func (s *reportStore) QueryRow(context.Context, string, ...any) pgx.Row {
	return pgxtest.Row{Values: []any{nil}}
}

var studentColumns = []string{"id", "name", "father", "mother", "dob", "gender", "class", "phone", "email", "address"}

func studentData(n int) [][]any {
	data := make([][]any, n)
	for i := range data {
		data[i] = []any{int64(i + 1), "Student", nil, nil, nil, "Male", "7", "0300", nil, nil}
	}
	return data
}

func newTestReportService(store reports.Querier, limit int) *reportServiceImpl {
	svc := NewReportService(reports.NewAssembler(store, zerolog.Nop()), limit).(*reportServiceImpl)
	svc.now = func() time.Time { return time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC) }
	return svc
}

func TestExportRejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		kind    string
		format  string
		wantErr error
	}{
		{"unknown kind", "invoices", "xlsx", apperrors.ErrUnknownReport},
		{"dashboard is not exportable", "dashboard", "pdf", apperrors.ErrUnknownReport},
		{"unknown format", "student", "csv", apperrors.ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &reportStore{columns: studentColumns}
			svc := newTestReportService(store, 10)

			_, err := svc.Export(context.Background(), tt.kind, tt.format, url.Values{})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if len(store.args) != 0 {
				t.Error("rejected export reached the store")
			}
		})
	}
}

func TestExportFailsWhenStoreUnavailable(t *testing.T) {
	svc := newTestReportService(&reportStore{failing: errors.New("connection refused")}, 10)

	_, err := svc.Export(context.Background(), "payment", "pdf", url.Values{})
	if !errors.Is(err, apperrors.ErrReportUnavailable) {
		t.Fatalf("err = %v, want ErrReportUnavailable", err)
	}
}

func TestExportStudentWorkbook(t *testing.T) {
	svc := newTestReportService(&reportStore{columns: studentColumns, data: studentData(3)}, 2)

	file, err := svc.Export(context.Background(), "Student", "xlsx", url.Values{"class": {"7"}})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	if file.Name != "student-report-20240305.xlsx" {
		t.Errorf("Name = %q", file.Name)
	}
	if !strings.Contains(file.ContentType, "spreadsheetml") {
		t.Errorf("ContentType = %q", file.ContentType)
	}

	wb, err := excelize.OpenReader(bytes.NewReader(file.Body))
	if err != nil {
		t.Fatal(err)
	}
	defer wb.Close()
	rows, err := wb.GetRows(wb.GetSheetName(0))
	if err != nil {
		t.Fatal(err)
	}

	// header, two records (limit), spacer, four statistics
	if len(rows) != 8 {
		t.Fatalf("got %d rows: %v", len(rows), rows)
	}
	if rows[0][0] != "ID" || rows[2][0] != "2" {
		t.Errorf("unexpected table %v", rows[:3])
	}
	if strings.Join(rows[4], "|") != "Total Students|0" {
		t.Errorf("summary = %v", rows[4])
	}
}

func TestSearchPaymentsEchoesQuery(t *testing.T) {
	store := &reportStore{columns: []string{
		"id", "student_id", "student_name", "amount", "payment_date", "status", "payment_method", "reference_no", "notes",
	}}
	svc := newTestReportService(store, 10)

	result := svc.SearchPayments(context.Background(), "REF_1")

	if result.Query != "REF_1" {
		t.Errorf("Query = %q", result.Query)
	}
	if result.TotalRevenue != "0.00" || result.Payments == nil {
		t.Errorf("unexpected report %+v", result.PaymentReport)
	}
	if len(store.args) != 1 || len(store.args[0]) != 2 || store.args[0][0] != `%REF\_1%` {
		t.Errorf("unexpected search args %v", store.args)
	}
}

func TestDashboardDegradesToZeros(t *testing.T) {
	svc := newTestReportService(&reportStore{failing: errors.New("timeout")}, 10)

	d := svc.Dashboard(context.Background())

	if d.TotalStudents != 0 || d.PresentToday != 0 || d.RecentAttendance == nil || len(d.RecentAttendance) != 0 {
		t.Errorf("unexpected dashboard %+v", d)
	}
}

func TestLabel(t *testing.T) {
	tests := map[string]string{
		"totalRevenue":      "Total Revenue",
		"averageExperience": "Average Experience",
		"payment":           "Payment",
	}
	for in, want := range tests {
		if got := label(in); got != want {
			t.Errorf("label(%q) = %q, want %q", in, got, want)
		}
	}
}
