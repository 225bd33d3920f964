package response

import (
	"time"

	"woorkins_payments/internal/domain/entities"
	"woorkins_payments/internal/usecase"
)

// PixPaymentResponse is returned for PIX charges. The payer settles it by
// scanning the QR code before ExpiresAt.
type PixPaymentResponse struct {
	PaymentID       string     `json:"payment_id"`
	QRCode          string     `json:"qr_code"`
	QRCodeBase64    string     `json:"qr_code_base64"`
	TicketURL       string     `json:"ticket_url,omitempty"`
	FinalAmount     float64    `json:"final_amount"`
	OriginalAmount  float64    `json:"original_amount"`
	DiscountApplied float64    `json:"discount_applied"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
}

type CardPaymentResponse struct {
	PaymentID       string  `json:"payment_id"`
	Status          string  `json:"status"`
	StatusDetail    string  `json:"status_detail"`
	FinalAmount     float64 `json:"final_amount"`
	OriginalAmount  float64 `json:"original_amount"`
	DiscountApplied float64 `json:"discount_applied"`
}

// FromPaymentResult picks the response shape for the charge's method.
func FromPaymentResult(r usecase.PaymentResult) any {
	if r.Method == entities.PaymentMethodPix {
		return PixPaymentResponse{
			PaymentID:       r.Payment.ID,
			QRCode:          r.Payment.QRCode,
			QRCodeBase64:    r.Payment.QRCodeBase64,
			TicketURL:       r.Payment.TicketURL,
			FinalAmount:     r.FinalAmount.InexactFloat64(),
			OriginalAmount:  r.OriginalAmount.InexactFloat64(),
			DiscountApplied: r.DiscountApplied.InexactFloat64(),
			ExpiresAt:       r.Payment.ExpiresAt,
		}
	}
	return CardPaymentResponse{
		PaymentID:       r.Payment.ID,
		Status:          r.Payment.Status,
		StatusDetail:    r.Payment.StatusDetail,
		FinalAmount:     r.FinalAmount.InexactFloat64(),
		OriginalAmount:  r.OriginalAmount.InexactFloat64(),
		DiscountApplied: r.DiscountApplied.InexactFloat64(),
	}
}

type ReconcileResponse struct {
	PaymentID       string `json:"payment_id"`
	Target          string `json:"target"`
	ProcessorStatus string `json:"processor_status"`
	Status          string `json:"status"`
	Credited        bool   `json:"credited"`
	AlreadyCredited bool   `json:"already_credited"`
}

func FromReconcileResult(r usecase.ReconcileResult) ReconcileResponse {
	return ReconcileResponse{
		PaymentID:       r.Payment.ID,
		Target:          string(r.Target),
		ProcessorStatus: r.Payment.Status,
		Status:          string(r.Status),
		Credited:        r.Credited,
		AlreadyCredited: r.AlreadyCredited,
	}
}
