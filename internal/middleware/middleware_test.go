package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/tuition/internal/app/models/dto"
	"github.com/yigit/tuition/internal/pkg/apperrors"
	"github.com/yigit/tuition/internal/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
		wantMsg    string
	}{
		{"not found", apperrors.ErrStudentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "student not found"},
		{"wrapped not found", fmt.Errorf("lookup: %w", apperrors.ErrCourseNotFound), http.StatusNotFound, dto.ErrorCodeResourceNotFound, "course not found"},
		{"validation", fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed), http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"},
		{"invalid reference", fmt.Errorf("error creating payment: %w", apperrors.ErrInvalidReference), http.StatusBadRequest, dto.ErrorCodeResourceInvalid, ""},
		{"bad request", apperrors.ErrUnsupportedFormat, http.StatusBadRequest, dto.ErrorCodeBadRequest, "unsupported export format"},
		{"conflict", apperrors.ErrConflict, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, ""},
		{"report unavailable", apperrors.ErrReportUnavailable, http.StatusServiceUnavailable, dto.ErrorCodeDatabaseError, ""},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			var resp dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatal(err)
			}
			if resp.Success || resp.Error == nil || resp.Error.Code != tt.wantCode {
				t.Fatalf("unexpected response %s", w.Body.String())
			}
			if tt.wantMsg != "" && resp.Error.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", resp.Error.Message, tt.wantMsg)
			}
		})
	}
}

func TestRequestIDAndLogger(t *testing.T) {
	var logs bytes.Buffer
	r := gin.New()
	r.Use(RequestID(), RequestLogger(zerolog.New(&logs)))

	var fromContext string
	r.GET("/ping", func(c *gin.Context) {
		lgr := logger.FromContext(c.Request.Context(), zerolog.Nop())
		lgr.Info().Msg("inside handler")
		fromContext = GetRequestID(c)
		c.String(http.StatusOK, "pong")
	})

	t.Run("reuses inbound id", func(t *testing.T) {
		logs.Reset()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Correlation-Id", "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
			t.Errorf("response id = %q", got)
		}
		if fromContext != "abc-123" {
			t.Errorf("context id = %q", fromContext)
		}
		out := logs.String()
		if strings.Count(out, `"requestId":"abc-123"`) != 2 {
			t.Errorf("expected the handler and access log lines to carry the id: %s", out)
		}
		if !strings.Contains(out, `"status":200`) || !strings.Contains(out, `"path":"/ping"`) {
			t.Errorf("access log incomplete: %s", out)
		}
	})

	t.Run("generates id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		if got := w.Header().Get(RequestIDHeader); len(got) != 36 {
			t.Errorf("expected a uuid, got %q", got)
		}
	})
}

type sampleRequest struct {
	Name   string `json:"name" validate:"required"`
	Status string `json:"status" validate:"required,oneof=Present Absent"`
}

func TestBindJSON(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantOK     bool
		wantStatus int
		wantField  string
	}{
		{"valid", `{"name":"Ali","status":"Present"}`, true, http.StatusOK, ""},
		{"malformed", `{"name":`, false, http.StatusBadRequest, ""},
		{"failed rule", `{"name":"Ali","status":"Late"}`, false, http.StatusBadRequest, "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			var req sampleRequest
			ok := BindJSON(c, &req)
			if !ok {
				c.Writer.WriteHeaderNow()
			} else {
				c.Status(http.StatusOK)
				c.Writer.WriteHeaderNow()
			}

			if ok != tt.wantOK || w.Code != tt.wantStatus {
				t.Fatalf("ok = %v, status = %d", ok, w.Code)
			}
			if tt.wantField != "" {
				var resp dto.ErrorResponse
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatal(err)
				}
				if resp.Error.Field != tt.wantField {
					t.Errorf("field = %q, want %q", resp.Error.Field, tt.wantField)
				}
			}
		})
	}
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name    string
		origins []string
		origin  string
		want    string
	}{
		{"allowed origin", []string{"http://admin.test"}, "http://admin.test", "http://admin.test"},
		{"other origin", []string{"http://admin.test"}, "http://evil.test", ""},
		{"wildcard", []string{"*"}, "http://any.test", "*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(CORS(tt.origins))
			r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodOptions, "/x", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodGet)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.want {
				t.Errorf("Allow-Origin = %q, want %q", got, tt.want)
			}
		})
	}
}
