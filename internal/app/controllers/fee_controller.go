package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yigit/tuition/internal/app/models/dto"
	"github.com/yigit/tuition/internal/app/services"
	"github.com/yigit/tuition/internal/middleware"
)

// FeeController handles fee payments
type FeeController struct {
	feeService    services.FeeService
	reportService services.ReportService
}

// NewFeeController creates a new FeeController
func NewFeeController(feeService services.FeeService, reportService services.ReportService) *FeeController {
	return &FeeController{feeService: feeService, reportService: reportService}
}

// ListPayments godoc
// @Summary List fee payments
// @Description The fee list page: the payment report with its filters
// @Tags fees
// @Produce json
// @Param status query string false "Exact status" Enums(Paid, Pending, Failed)
// @Param method query string false "Exact payment method"
// @Param sortBy query string false "Sort key" Enums(date, amount, student, id)
// @Success 200 {object} dto.APIResponse{data=dto.PaymentReport}
// @Router /fees [get]
func (c *FeeController) ListPayments(ctx *gin.Context) {
	report := c.reportService.PaymentReport(ctx.Request.Context(), ctx.Request.URL.Query())
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(report))
}

// CreatePayment godoc
// @Summary Record a fee payment
// @Tags fees
// @Accept json
// @Produce json
// @Param request body dto.PaymentRequest true "Payment"
// @Success 201 {object} dto.APIResponse{data=models.Payment}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unknown student"
// @Failure 409 {object} dto.ErrorResponse "Reference number already used"
// @Router /fees [post]
func (c *FeeController) CreatePayment(ctx *gin.Context) {
	var req dto.PaymentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	payment, err := req.Model(time.Now())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	id, err := c.feeService.CreatePayment(ctx.Request.Context(), &payment)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	payment.ID = id
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(payment))
}

// GetPayment godoc
// @Summary Get a fee payment
// @Tags fees
// @Produce json
// @Param id path int true "Payment ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Payment}
// @Failure 404 {object} dto.ErrorResponse "Payment not found"
// @Router /fees/{id} [get]
func (c *FeeController) GetPayment(ctx *gin.Context) {
	id, ok := parseID(ctx, "Payment")
	if !ok {
		return
	}

	payment, err := c.feeService.GetPaymentByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(payment))
}

// UpdatePayment godoc
// @Summary Update a fee payment
// @Tags fees
// @Accept json
// @Produce json
// @Param id path int true "Payment ID" Format(int64) minimum(1)
// @Param request body dto.PaymentRequest true "Payment"
// @Success 200 {object} dto.APIResponse{data=models.Payment}
// @Failure 404 {object} dto.ErrorResponse "Payment not found"
// @Router /fees/{id} [put]
func (c *FeeController) UpdatePayment(ctx *gin.Context) {
	id, ok := parseID(ctx, "Payment")
	if !ok {
		return
	}

	var req dto.PaymentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	payment, err := req.Model(time.Now())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	payment.ID = id

	if err := c.feeService.UpdatePayment(ctx.Request.Context(), &payment); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(payment))
}

// DeletePayment godoc
// @Summary Delete a fee payment
// @Tags fees
// @Produce json
// @Param id path int true "Payment ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Payment not found"
// @Router /fees/{id} [delete]
func (c *FeeController) DeletePayment(ctx *gin.Context) {
	id, ok := parseID(ctx, "Payment")
	if !ok {
		return
	}

	if err := c.feeService.DeletePayment(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Payment deleted successfully"))
}
