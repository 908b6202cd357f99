package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/yigit/tuition/internal/app/models"
	"github.com/yigit/tuition/internal/pkg/apperrors"
	"github.com/yigit/tuition/internal/pkg/logger"
)

var feeColumns = []string{"id", "student_id", "amount", "payment_date", "status", "payment_method", "reference_no", "notes"}

// FeeRepository handles fee payment database operations
type FeeRepository struct {
	db DB
	sb squirrel.StatementBuilderType
}

// NewFeeRepository creates a new FeeRepository
func NewFeeRepository(db DB) *FeeRepository {
	return &FeeRepository{db: db, sb: statementBuilder()}
}

func paymentValues(p *models.Payment) map[string]interface{} {
	return map[string]interface{}{
		"student_id":     p.StudentID,
		"amount":         p.Amount,
		"payment_date":   p.PaymentDate,
		"status":         p.Status,
		"payment_method": p.PaymentMethod,
		"reference_no":   p.ReferenceNo,
		"notes":          p.Notes,
	}
}

// CreatePayment records a payment and returns its id. An unknown student id surfaces as
// apperrors.ErrInvalidReference.
func (r *FeeRepository) CreatePayment(ctx context.Context, p *models.Payment) (int64, error) {
	id, err := insertReturningID(ctx, r.db, r.sb.Insert("fees").SetMap(paymentValues(p)))
	if err != nil {
		logger.Error().Err(err).Int64("studentID", p.StudentID).Msg("Error creating payment")
		return 0, writeError("error creating payment", err)
	}
	return id, nil
}

// GetPaymentByID retrieves a payment by ID
func (r *FeeRepository) GetPaymentByID(ctx context.Context, id int64) (*models.Payment, error) {
	return getOne[models.Payment](ctx, r.db,
		r.sb.Select(feeColumns...).From("fees").Where(squirrel.Eq{"id": id}),
		apperrors.ErrPaymentNotFound)
}

// UpdatePayment overwrites every column of the payment
func (r *FeeRepository) UpdatePayment(ctx context.Context, p *models.Payment) error {
	n, err := exec(ctx, r.db, r.sb.Update("fees").SetMap(paymentValues(p)).Where(squirrel.Eq{"id": p.ID}))
	if err != nil {
		logger.Error().Err(err).Int64("paymentID", p.ID).Msg("Error updating payment")
		return writeError("error updating payment", err)
	}
	if n == 0 {
		return apperrors.ErrPaymentNotFound
	}
	return nil
}

// DeletePayment removes a payment
func (r *FeeRepository) DeletePayment(ctx context.Context, id int64) error {
	n, err := exec(ctx, r.db, r.sb.Delete("fees").Where(squirrel.Eq{"id": id}))
	if err != nil {
		logger.Error().Err(err).Int64("paymentID", id).Msg("Error deleting payment")
		return deleteError("error deleting payment", err)
	}
	if n == 0 {
		return apperrors.ErrPaymentNotFound
	}
	return nil
}
