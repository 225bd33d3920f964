package request

import (
	"errors"
	"strings"

	"woorkins_payments/internal/domain/entities"
	"woorkins_payments/internal/usecase"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPaymentMethod = errors.New("method must be pix or card")
	ErrAmbiguousTarget      = errors.New("proposal_id and woorkoins fields are mutually exclusive")
)

type CustomerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Document string `json:"document"`
}

type CardRequest struct {
	Token           string `json:"token"`
	PaymentMethodID string `json:"payment_method_id"`
	Installments    int    `json:"installments"`
}

// PaymentRequest is the body of POST /v1/payments. The card token may come
// either at the top level or inside card.
type PaymentRequest struct {
	Method          string           `json:"method" binding:"required"`
	Amount          decimal.Decimal  `json:"amount"`
	Description     string           `json:"description"`
	Customer        CustomerRequest  `json:"customer"`
	Token           string           `json:"token"`
	PaymentMethodID string           `json:"payment_method_id"`
	Installments    int              `json:"installments"`
	Card            *CardRequest     `json:"card"`
	WoorkoinsAmount int64            `json:"woorkoins_amount"`
	WoorkoinsPrice  *decimal.Decimal `json:"woorkoins_price"`
	ProposalID      string           `json:"proposal_id"`
}

func (r PaymentRequest) ToInput() (usecase.PaymentInput, error) {
	method, ok := entities.ParsePaymentMethod(r.Method)
	if !ok {
		return usecase.PaymentInput{}, ErrInvalidPaymentMethod
	}

	in := usecase.PaymentInput{
		Method:      method,
		Amount:      r.Amount,
		Description: strings.TrimSpace(r.Description),
		Payer: entities.Payer{
			Name:     strings.TrimSpace(r.Customer.Name),
			Email:    strings.TrimSpace(r.Customer.Email),
			Document: strings.TrimSpace(r.Customer.Document),
		},
	}

	if method == entities.PaymentMethodCard {
		card := entities.CardDetails{
			Token:           strings.TrimSpace(r.Token),
			PaymentMethodID: strings.TrimSpace(r.PaymentMethodID),
			Installments:    r.Installments,
		}
		if r.Card != nil {
			if v := strings.TrimSpace(r.Card.Token); v != "" {
				card.Token = v
			}
			if v := strings.TrimSpace(r.Card.PaymentMethodID); v != "" {
				card.PaymentMethodID = v
			}
			if r.Card.Installments > 0 {
				card.Installments = r.Card.Installments
			}
		}
		in.Card = &card
	}

	proposalID := strings.TrimSpace(r.ProposalID)
	wantsWoorkoins := r.WoorkoinsAmount != 0 || r.WoorkoinsPrice != nil
	switch {
	case proposalID != "" && wantsWoorkoins:
		return usecase.PaymentInput{}, ErrAmbiguousTarget
	case proposalID != "":
		in.Target = entities.ProposalTarget{ProposalID: proposalID}
	case wantsWoorkoins:
		t := entities.WoorkoinTarget{Amount: r.WoorkoinsAmount}
		if r.WoorkoinsPrice != nil {
			t.Price = *r.WoorkoinsPrice
		}
		in.Target = t
	}
	return in, nil
}
