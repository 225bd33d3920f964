package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"woorkins_payments/internal/adapter/http/dto/request"
	"woorkins_payments/internal/adapter/http/dto/response"
	"woorkins_payments/internal/adapter/http/middleware"
	"woorkins_payments/internal/usecase"
	"woorkins_payments/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// PaymentHandler handles HTTP requests for payments.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
	logger  *logrus.Logger
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, logger *logrus.Logger) *PaymentHandler {
	return &PaymentHandler{usecase: uc, logger: logger}
}

// CreatePayment godoc
// @Summary      Create a payment
// @Description  Charges the caller through PIX or card and applies the ledger effects for a proposal or a Woorkoins purchase.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        payment  body      request.PaymentRequest  true  "Payment"
// @Success      200      {object}  response.PixPaymentResponse
// @Success      200      {object}  response.CardPaymentResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	account, ok := middleware.AccountFrom(c)
	if !ok {
		writeError(c, mapPaymentError(usecase.ErrUnauthenticated))
		return
	}

	var req request.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Warn("[payment][handler] invalid payload")
		writeError(c, pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest))
		return
	}
	in, err := req.ToInput()
	if err != nil {
		writeError(c, pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest))
		return
	}

	res, err := h.usecase.CreatePayment(c.Request.Context(), account, in)
	if err != nil {
		appErr := mapPaymentError(err)
		h.logger.WithError(err).WithFields(logrus.Fields{
			"profile_id": account.ProfileID,
			"code":       appErr.Code,
		}).Warn("[payment][handler] create failed")
		writeError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentResult(res))
}

// Reconcile godoc
// @Summary      Reconcile a payment
// @Description  Re-reads a payment from the processor and replays the ledger steps. Safe to repeat.
// @Tags         payments
// @Produce      json
// @Security     Bearer
// @Param        payment_id  path      string  true  "Processor payment id"
// @Success      200         {object}  response.ReconcileResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      500         {object}  pkg.HTTPError
// @Router       /payments/{payment_id}/reconcile [post]
func (h *PaymentHandler) Reconcile(c *gin.Context) {
	account, ok := middleware.AccountFrom(c)
	if !ok {
		writeError(c, mapPaymentError(usecase.ErrUnauthenticated))
		return
	}

	res, err := h.usecase.Reconcile(c.Request.Context(), account, c.Param("payment_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		h.logger.WithError(err).WithField("processor_payment_id", c.Param("payment_id")).Warn("[payment][handler] reconcile failed")
		writeError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, response.FromReconcileResult(res))
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapPaymentError answers 400 for every known failure and 500 otherwise.
func mapPaymentError(err error) *pkg.AppError {
	var rejected *usecase.ProcessorRejectedError
	var incomplete *usecase.CreditingIncompleteError
	switch {
	case errors.As(err, &incomplete):
		return pkg.NewDomainError("CREDITING_INCOMPLETE",
			fmt.Sprintf("Payment %s was charged but the balance was not updated; it will be reconciled", incomplete.ProcessorPaymentID),
			err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Unauthenticated", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return pkg.NewDomainErrorSimple("PROFILE_NOT_FOUND", "Profile not found", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentRequest):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayDisabled):
		return pkg.NewDomainErrorSimple("GATEWAY_DISABLED", "Payment gateway is disabled", http.StatusBadRequest)
	case errors.As(err, &rejected):
		return pkg.NewDomainError("PROCESSOR_REJECTED",
			fmt.Sprintf("Payment rejected by processor (status %d): %s", rejected.StatusCode, rejected.Body),
			err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProcessorUnknown):
		return pkg.NewDomainError("PROCESSOR_UNKNOWN", "Payment processor did not confirm the charge; check its status before retrying", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSplitInput):
		return pkg.NewDomainError("INVALID_SPLIT_INPUT", "Invalid amount or commission", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentRecordNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
