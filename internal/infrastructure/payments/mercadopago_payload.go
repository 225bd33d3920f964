package payments

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"woorkins_payments/internal/domain/entities"

	"github.com/mercadopago/sdk-go/pkg/payment"
)

// Mercado Pago request body. Field names follow the /v1/payments API.
type mpPaymentPayload struct {
	TransactionAmount float64    `json:"transaction_amount"`
	Description       string     `json:"description,omitempty"`
	PaymentMethodID   string     `json:"payment_method_id"`
	Token             string     `json:"token,omitempty"`
	Installments      int        `json:"installments,omitempty"`
	ExternalReference string     `json:"external_reference,omitempty"`
	NotificationURL   string     `json:"notification_url,omitempty"`
	DateOfExpiration  string     `json:"date_of_expiration,omitempty"`
	Payer             mpPayer    `json:"payer"`
	Metadata          mpMetadata `json:"metadata,omitempty"`
}

type mpPayer struct {
	Email          string            `json:"email"`
	FirstName      string            `json:"first_name,omitempty"`
	LastName       string            `json:"last_name,omitempty"`
	Identification *mpIdentification `json:"identification,omitempty"`
}

type mpIdentification struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

type mpMetadata map[string]any

// mpPaymentView is the subset of the processor response this service reads.
type mpPaymentView struct {
	ID                 int64  `json:"id"`
	Status             string `json:"status"`
	StatusDetail       string `json:"status_detail"`
	DateOfExpiration   string `json:"date_of_expiration"`
	PointOfInteraction struct {
		TransactionData struct {
			QRCode       string `json:"qr_code"`
			QRCodeBase64 string `json:"qr_code_base64"`
			TicketURL    string `json:"ticket_url"`
		} `json:"transaction_data"`
	} `json:"point_of_interaction"`
}

const pixPaymentMethodID = "pix"

func buildPaymentPayload(req entities.ChargeRequest) ([]byte, error) {
	first, last := splitName(req.Payer.Name)
	p := mpPaymentPayload{
		TransactionAmount: req.Amount.InexactFloat64(),
		Description:       req.Description,
		ExternalReference: req.ExternalReference,
		NotificationURL:   req.NotificationURL,
		Payer: mpPayer{
			Email:     req.Payer.Email,
			FirstName: first,
			LastName:  last,
		},
	}
	if req.Payer.Document != "" {
		p.Payer.Identification = &mpIdentification{Type: documentType(req.Payer.Document), Number: req.Payer.Document}
	}
	if req.ExternalReference != "" {
		p.Metadata = mpMetadata{"external_reference": req.ExternalReference}
	}

	switch req.Method {
	case entities.PaymentMethodPix:
		p.PaymentMethodID = pixPaymentMethodID
		if req.ExpiresAt != nil {
			p.DateOfExpiration = req.ExpiresAt.UTC().Format("2006-01-02T15:04:05.000Z07:00")
		}
	case entities.PaymentMethodCard:
		if req.Card != nil {
			p.Token = req.Card.Token
			p.PaymentMethodID = req.Card.PaymentMethodID
			p.Installments = req.Card.Installments
		}
		if p.Installments <= 0 {
			p.Installments = 1
		}
	}
	return json.Marshal(p)
}

func toProcessorPayment(resp *payment.Response) (entities.ProcessorPayment, error) {
	if resp == nil {
		return entities.ProcessorPayment{}, ErrMercadoPagoGatewayNotConfigured
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return entities.ProcessorPayment{}, err
	}
	return decodePaymentView(raw)
}

func decodePaymentView(raw []byte) (entities.ProcessorPayment, error) {
	var v mpPaymentView
	if err := json.Unmarshal(raw, &v); err != nil {
		return entities.ProcessorPayment{}, err
	}
	out := entities.ProcessorPayment{
		Status:       v.Status,
		StatusDetail: v.StatusDetail,
		QRCode:       v.PointOfInteraction.TransactionData.QRCode,
		QRCodeBase64: v.PointOfInteraction.TransactionData.QRCodeBase64,
		TicketURL:    v.PointOfInteraction.TransactionData.TicketURL,
		Raw:          raw,
	}
	if v.ID != 0 {
		out.ID = strconv.FormatInt(v.ID, 10)
	}
	if t, err := time.Parse(time.RFC3339, v.DateOfExpiration); err == nil && !t.IsZero() && t.Year() > 1 {
		t = t.UTC()
		out.ExpiresAt = &t
	}
	return out, nil
}

func splitName(full string) (string, string) {
	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}

// CNPJs have 14 digits, CPFs 11.
func documentType(doc string) string {
	if len(doc) == 14 {
		return "CNPJ"
	}
	return "CPF"
}
