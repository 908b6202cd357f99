package services

import (
	"bytes"
	"context"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/yigit/tuition/internal/app/models"
	"github.com/yigit/tuition/internal/app/models/dto"
	"github.com/yigit/tuition/internal/app/reports"
	"github.com/yigit/tuition/internal/pkg/apperrors"
	"github.com/yigit/tuition/internal/pkg/export"
	"github.com/yigit/tuition/internal/pkg/logger"
)

// searchParam is the report filter fed by the free-text search endpoints
const searchParam = "search"

// ReportService defines report operations. Report methods never fail: store errors are
// logged and rendered as an empty report.
type ReportService interface {
	StudentReport(ctx context.Context, params url.Values) dto.StudentReport
	PaymentReport(ctx context.Context, params url.Values) dto.PaymentReport
	TeacherReport(ctx context.Context, params url.Values) dto.TeacherReport
	CourseReport(ctx context.Context, params url.Values) dto.CourseReport
	Dashboard(ctx context.Context) dto.Dashboard
	SearchStudents(ctx context.Context, query string) dto.StudentSearchResult
	SearchPayments(ctx context.Context, query string) dto.PaymentSearchResult
	Export(ctx context.Context, kind, format string, params url.Values) (*ExportFile, error)
}

// ExportFile is a rendered report ready for download
type ExportFile struct {
	Name        string
	ContentType string
	Body        []byte
}

// reportServiceImpl implements the ReportService interface
type reportServiceImpl struct {
	assembler   *reports.Assembler
	exportLimit int
	now         func() time.Time
	logger      zerolog.Logger
}

// NewReportService creates a new report service instance. exportLimit caps the rows
// written to an exported document.
func NewReportService(assembler *reports.Assembler, exportLimit int) ReportService {
	return &reportServiceImpl{
		assembler:   assembler,
		exportLimit: exportLimit,
		now:         time.Now,
		logger:      logger.Component("report_service"),
	}
}

func (s *reportServiceImpl) StudentReport(ctx context.Context, params url.Values) dto.StudentReport {
	return dto.NewStudentReport(reports.Assemble[models.Student](ctx, s.assembler, reports.KindStudent, params))
}

func (s *reportServiceImpl) PaymentReport(ctx context.Context, params url.Values) dto.PaymentReport {
	return dto.NewPaymentReport(reports.Assemble[models.PaymentRow](ctx, s.assembler, reports.KindPayment, params))
}

func (s *reportServiceImpl) TeacherReport(ctx context.Context, params url.Values) dto.TeacherReport {
	return dto.NewTeacherReport(reports.Assemble[models.Teacher](ctx, s.assembler, reports.KindTeacher, params))
}

func (s *reportServiceImpl) CourseReport(ctx context.Context, params url.Values) dto.CourseReport {
	return dto.NewCourseReport(reports.Assemble[models.CourseRow](ctx, s.assembler, reports.KindCourse, params))
}

func (s *reportServiceImpl) Dashboard(ctx context.Context) dto.Dashboard {
	return dto.NewDashboard(reports.Assemble[models.AttendanceRow](ctx, s.assembler, reports.KindDashboard, nil))
}

func (s *reportServiceImpl) SearchStudents(ctx context.Context, query string) dto.StudentSearchResult {
	return dto.StudentSearchResult{
		StudentReport: s.StudentReport(ctx, url.Values{searchParam: {query}}),
		Query:         query,
	}
}

func (s *reportServiceImpl) SearchPayments(ctx context.Context, query string) dto.PaymentSearchResult {
	return dto.PaymentSearchResult{
		PaymentReport: s.PaymentReport(ctx, url.Values{searchParam: {query}}),
		Query:         query,
	}
}

// Export renders a report as an xlsx or pdf document. Unlike the report pages it fails
// when the store is unavailable, so a download is never silently empty.
func (s *reportServiceImpl) Export(ctx context.Context, kind, format string, params url.Values) (*ExportFile, error) {
	k, ok := reports.ParseKind(kind)
	if !ok || k == reports.KindDashboard {
		return nil, apperrors.ErrUnknownReport
	}
	f, ok := export.ParseFormat(format)
	if !ok {
		return nil, apperrors.ErrUnsupportedFormat
	}

	var (
		table    export.Table
		degraded bool
	)
	switch k {
	case reports.KindStudent:
		table, degraded = exportTable(s, reports.Assemble[models.Student](ctx, s.assembler, k, params), models.StudentHeaders)
	case reports.KindPayment:
		table, degraded = exportTable(s, reports.Assemble[models.PaymentRow](ctx, s.assembler, k, params), models.PaymentHeaders)
	case reports.KindTeacher:
		table, degraded = exportTable(s, reports.Assemble[models.Teacher](ctx, s.assembler, k, params), models.TeacherHeaders)
	case reports.KindCourse:
		table, degraded = exportTable(s, reports.Assemble[models.CourseRow](ctx, s.assembler, k, params), models.CourseHeaders)
	}
	if degraded {
		return nil, apperrors.ErrReportUnavailable
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, f, table); err != nil {
		s.logger.Error().Err(err).Str("kind", string(k)).Str("format", string(f)).Msg("Failed to render export")
		return nil, err
	}

	return &ExportFile{
		Name:        export.Filename(string(k), f, s.now()),
		ContentType: f.ContentType(),
		Body:        buf.Bytes(),
	}, nil
}

// exportTable lays an assembled view out as an export table, keeping at most the
// configured number of rows. The flag reports a degraded view.
func exportTable[T models.Recorder](s *reportServiceImpl, view reports.View[T], headers []string) (export.Table, bool) {
	rows := view.Rows
	if s.exportLimit > 0 && len(rows) > s.exportLimit {
		s.logger.Warn().Str("kind", string(view.Kind)).Int("rows", len(rows)).Int("limit", s.exportLimit).
			Msg("Export truncated to row limit")
		rows = rows[:s.exportLimit]
	}

	records := make([][]string, len(rows))
	for i, row := range rows {
		records[i] = row.Record()
	}

	summary := make([]export.Summary, 0, len(view.Figures))
	for _, fig := range view.Figures {
		summary = append(summary, export.Summary{Label: label(fig.Name), Value: fig.Text()})
	}

	return export.Table{
		Title:   label(string(view.Kind)) + " Report",
		Headers: headers,
		Rows:    records,
		Summary: summary,
	}, view.Degraded
}

// label turns a camelCase statistic name into words: "totalRevenue" becomes "Total Revenue"
func label(name string) string {
	var b strings.Builder
	for i, r := range name {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
