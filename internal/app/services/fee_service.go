package services

import (
	"context"
	"fmt"

	"github.com/yigit/tuition/internal/app/models"
	"github.com/yigit/tuition/internal/pkg/apperrors"
)

// FeeStore is the persistence the fee service needs
type FeeStore interface {
	CreatePayment(ctx context.Context, p *models.Payment) (int64, error)
	GetPaymentByID(ctx context.Context, id int64) (*models.Payment, error)
	UpdatePayment(ctx context.Context, p *models.Payment) error
	DeletePayment(ctx context.Context, id int64) error
}

// FeeService defines the interface for fee payment operations
type FeeService interface {
	CreatePayment(ctx context.Context, payment *models.Payment) (int64, error)
	GetPaymentByID(ctx context.Context, id int64) (*models.Payment, error)
	UpdatePayment(ctx context.Context, payment *models.Payment) error
	DeletePayment(ctx context.Context, id int64) error
}

type feeServiceImpl struct {
	feeRepo FeeStore
}

// NewFeeService creates a new fee service instance
func NewFeeService(feeRepo FeeStore) FeeService {
	return &feeServiceImpl{feeRepo: feeRepo}
}

func validatePayment(payment *models.Payment) error {
	if payment == nil {
		return fmt.Errorf("%w: payment is nil", apperrors.ErrValidationFailed)
	}
	if payment.StudentID <= 0 {
		return fmt.Errorf("%w: studentId is required", apperrors.ErrValidationFailed)
	}
	if payment.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidationFailed)
	}
	switch payment.Status {
	case models.PaymentPaid, models.PaymentPending, models.PaymentFailed:
	default:
		return fmt.Errorf("%w: unknown payment status %q", apperrors.ErrValidationFailed, payment.Status)
	}
	return nil
}

func (s *feeServiceImpl) CreatePayment(ctx context.Context, payment *models.Payment) (int64, error) {
	if err := validatePayment(payment); err != nil {
		return 0, err
	}
	return s.feeRepo.CreatePayment(ctx, payment)
}

func (s *feeServiceImpl) GetPaymentByID(ctx context.Context, id int64) (*models.Payment, error) {
	if id <= 0 {
		return nil, apperrors.ErrPaymentNotFound
	}
	return s.feeRepo.GetPaymentByID(ctx, id)
}

func (s *feeServiceImpl) UpdatePayment(ctx context.Context, payment *models.Payment) error {
	if err := validatePayment(payment); err != nil {
		return err
	}
	return s.feeRepo.UpdatePayment(ctx, payment)
}

func (s *feeServiceImpl) DeletePayment(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ErrPaymentNotFound
	}
	return s.feeRepo.DeletePayment(ctx, id)
}
