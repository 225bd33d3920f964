package payments

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"woorkins_payments/internal/domain/entities"

	"github.com/sirupsen/logrus"
)

// mockCreate answers locally: cards are approved on the spot, PIX charges
// stay pending with a fake QR code until fetched again.
func (g *MercadoPagoGateway) mockCreate(req entities.ChargeRequest) (entities.ProcessorPayment, error) {
	body, err := buildPaymentPayload(req)
	if err != nil {
		return entities.ProcessorPayment{}, err
	}
	resp := map[string]any{}
	if err := json.Unmarshal(body, &resp); err != nil {
		resp = map[string]any{"request_payload_raw": string(body)}
	}

	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp["id"], _ = strconv.ParseInt(id, 10, 64)
	resp["date_created"] = now

	switch req.Method {
	case entities.PaymentMethodPix:
		qr := fmt.Sprintf("00020126580014br.gov.bcb.pix0136mock-%s5204000053039865802BR", id)
		resp["status"] = entities.ProcessorStatusPending
		resp["status_detail"] = "pending_waiting_transfer"
		resp["point_of_interaction"] = map[string]any{
			"transaction_data": map[string]any{
				"qr_code":        qr,
				"qr_code_base64": base64.StdEncoding.EncodeToString([]byte(qr)),
				"ticket_url":     "https://mock.mercadopago.local/pix/" + id,
			},
		}
		if req.ExpiresAt != nil {
			resp["date_of_expiration"] = req.ExpiresAt.UTC().Format(time.RFC3339)
		}
	default:
		resp["status"] = entities.ProcessorStatusApproved
		resp["status_detail"] = "accredited"
		resp["date_approved"] = now
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return entities.ProcessorPayment{}, err
	}
	g.logger.WithFields(logrus.Fields{
		"processor_payment_id": id,
		"processor_status":     resp["status"],
	}).Info("[payment][gateway] mock create success")
	return decodePaymentView(raw)
}

// mockGet reports every payment as approved so reconciliation can be
// exercised locally.
func (g *MercadoPagoGateway) mockGet(processorPaymentID string) (entities.ProcessorPayment, error) {
	id, err := strconv.ParseInt(processorPaymentID, 10, 64)
	if err != nil {
		id = 0
	}
	raw, err := json.Marshal(map[string]any{
		"id":            id,
		"status":        entities.ProcessorStatusApproved,
		"status_detail": "accredited",
		"date_approved": time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.ProcessorPayment{}, err
	}
	p, err := decodePaymentView(raw)
	if err != nil {
		return p, err
	}
	p.ID = processorPaymentID
	return p, nil
}
