package dto

import (
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/yigit/tuition/internal/pkg/apperrors"
)

func TestPaymentRequestDefaultsDateToToday(t *testing.T) {
	now := time.Date(2024, time.March, 5, 16, 30, 0, 0, time.UTC)
	req := PaymentRequest{StudentID: 1, Amount: 2500, Status: "Paid", PaymentMethod: "Cash"}

	payment, err := req.Model(now)
	if err != nil {
		t.Fatal(err)
	}
	if want := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC); !payment.PaymentDate.Equal(want) {
		t.Errorf("PaymentDate = %v, want %v", payment.PaymentDate, want)
	}
}

func TestStudentRequestModel(t *testing.T) {
	tests := []struct {
		name    string
		dob     string
		wantErr bool
	}{
		{"no date", "", false},
		{"valid date", "2012-05-01", false},
		{"bad date", "01/05/2012", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := StudentRequest{Name: " Ali ", Gender: "Male", Class: "7", Phone: "0300", DOB: tt.dob}
			student, err := req.Model()
			if tt.wantErr {
				if !errors.Is(err, apperrors.ErrValidationFailed) {
					t.Fatalf("expected a validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if student.Name != "Ali" {
				t.Errorf("Name = %q, want trimmed", student.Name)
			}
			if (tt.dob == "") != (student.DOB == nil) {
				t.Errorf("DOB = %v for input %q", student.DOB, tt.dob)
			}
		})
	}
}

func TestHandleValidationError(t *testing.T) {
	v := validator.New()
	err := v.Struct(AttendanceRequest{StudentID: 1, Status: "Late"})

	detail := HandleValidationError(err)

	if detail.Code != ErrorCodeValidationFailed {
		t.Errorf("Code = %s", detail.Code)
	}
	if detail.Field != "Status" {
		t.Errorf("Field = %q, want Status", detail.Field)
	}
	errs, ok := detail.Details.([]ErrorDetail)
	if !ok || len(errs) != 1 || errs[0].Message != "Status must be one of: Present Absent" {
		t.Errorf("unexpected details %#v", detail.Details)
	}
}
