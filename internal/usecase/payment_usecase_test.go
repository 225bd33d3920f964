package usecase

import (
	"context"
	"errors"
	"testing"

	"woorkins_payments/internal/domain/entities"
	"woorkins_payments/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testAccount = entities.Account{
	UserID:    "user-1",
	ProfileID: "profile-client",
	Email:     "client@woorkins.test",
	FullName:  "Client Name",
}

var testProposal = entities.Proposal{ID: "prop-1", FreelancerID: "profile-freela", Status: "accepted"}

func TestPaymentUseCase_CreatePayment_ProposalPixApproved(t *testing.T) {
	m := newPaymentMocks(t)
	m.proposals.EXPECT().GetByID(gomock.Any(), "prop-1").Return(testProposal, nil)
	m.configs.EXPECT().Get(gomock.Any(), entities.GatewayMercadoPago).Return(enabledConfig, nil)
	m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req entities.ChargeRequest) (entities.ProcessorPayment, error) {
			assert.Equal(t, "194.00", req.Amount.StringFixed(2))
			assert.Equal(t, "proposal:prop-1", req.ExternalReference)
			assert.Equal(t, "client@woorkins.test", req.Payer.Email)
			assert.Equal(t, "Client Name", req.Payer.Name)
			return entities.ProcessorPayment{ID: "9001", Status: "approved", QRCode: "qr"}, nil
		})
	m.proposalPayments.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.ProposalPayment) (entities.ProposalPayment, error) {
			assert.Equal(t, "prop-1#9001", p.ID)
			assert.Equal(t, "profile-client", p.PayerProfileID)
			assert.Equal(t, entities.PaymentStatusPaid, p.Status)
			assert.Equal(t, "194.00", p.Amount.StringFixed(2))
			assert.Equal(t, "200.00", p.OriginalAmount.StringFixed(2))
			require.NotNil(t, p.PaidAt)
			return p, nil
		})
	m.proposals.EXPECT().UpdatePaymentSummary(gomock.Any(), "prop-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, s entities.ProposalPaymentSummary) error {
			assert.Equal(t, "200.00", s.AcceptedAmount.StringFixed(2))
			assert.Equal(t, "19.40", s.PlatformCommission.StringFixed(2))
			assert.Equal(t, "174.60", s.FreelancerAmount.StringFixed(2))
			assert.True(t, s.ProcessorFee.IsZero())
			assert.Equal(t, entities.PaymentStatusPaid, s.PaymentStatus)
			return nil
		})
	m.wallets.EXPECT().CreditPending(gomock.Any(), "prop-1#9001", "profile-freela", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, amount decimal.Decimal) (bool, error) {
			assert.Equal(t, "174.60", amount.StringFixed(2))
			return true, nil
		})

	res, err := m.useCase().CreatePayment(context.Background(), testAccount, PaymentInput{
		Method: entities.PaymentMethodPix,
		Amount: dec("200"),
		Target: entities.ProposalTarget{ProposalID: " prop-1 "},
	})
	require.NoError(t, err)
	assert.Equal(t, entities.TargetKindProposal, res.Target)
	require.NotNil(t, res.Proposal)
	assert.True(t, res.Proposal.Credited)
	assert.NotNil(t, res.Proposal.Record.CreditedAt)
	assert.Equal(t, "6.00", res.DiscountApplied.StringFixed(2))
	assert.Equal(t, "qr", res.Payment.QRCode)
}

func TestPaymentUseCase_CreatePayment_ProposalPixPending(t *testing.T) {
	m := newPaymentMocks(t)
	m.proposals.EXPECT().GetByID(gomock.Any(), "prop-1").Return(testProposal, nil)
	m.configs.EXPECT().Get(gomock.Any(), gomock.Any()).Return(enabledConfig, nil)
	m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.ProcessorPayment{ID: "9002", Status: "pending"}, nil)
	m.proposalPayments.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.ProposalPayment) (entities.ProposalPayment, error) {
			assert.Equal(t, entities.PaymentStatusPending, p.Status)
			assert.Nil(t, p.PaidAt)
			return p, nil
		})
	m.proposals.EXPECT().UpdatePaymentSummary(gomock.Any(), "prop-1", gomock.Any()).Return(nil)
	m.wallets.EXPECT().CreditPending(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	res, err := m.useCase().CreatePayment(context.Background(), testAccount, PaymentInput{
		Method: entities.PaymentMethodPix,
		Amount: dec("200"),
		Target: entities.ProposalTarget{ProposalID: "prop-1"},
	})
	require.NoError(t, err)
	assert.False(t, res.Proposal.Credited)
	assert.False(t, res.Proposal.AlreadyCredited)
}

func TestPaymentUseCase_CreatePayment_WoorkoinsCard(t *testing.T) {
	m := newPaymentMocks(t)
	m.configs.EXPECT().Get(gomock.Any(), gomock.Any()).Return(enabledConfig, nil)
	m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req entities.ChargeRequest) (entities.ProcessorPayment, error) {
			assert.Equal(t, "50.00", req.Amount.StringFixed(2))
			require.NotNil(t, req.Card)
			assert.Equal(t, "tok_1", req.Card.Token)
			assert.Equal(t, 1, req.Card.Installments)
			assert.Nil(t, req.ExpiresAt)
			assert.Equal(t, "woorkoins:profile-client", req.ExternalReference)
			return entities.ProcessorPayment{ID: "7001", Status: "approved"}, nil
		})
	m.purchases.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.WoorkoinPurchase) (entities.WoorkoinPurchase, error) {
			assert.Equal(t, int64(500), p.Amount)
			assert.Equal(t, "profile-client", p.ProfileID)
			assert.Equal(t, entities.PaymentStatusPaid, p.Status)
			return p, nil
		})
	m.woorkoins.EXPECT().CreditPurchase(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.WoorkoinPurchase, tx entities.WoorkoinTransaction) (bool, error) {
			assert.Equal(t, "purchase#7001", tx.ID)
			assert.Equal(t, int64(500), tx.Amount)
			assert.Equal(t, entities.WoorkoinTransactionTypePurchase, tx.Type)
			return true, nil
		}).Times(1)

	res, err := m.useCase().CreatePayment(context.Background(), testAccount, PaymentInput{
		Method: entities.PaymentMethodCard,
		Amount: dec("1"),
		Card:   &entities.CardDetails{Token: "tok_1", PaymentMethodID: "visa"},
		Target: entities.WoorkoinTarget{Amount: 500, Price: dec("50.00")},
	})
	require.NoError(t, err)
	require.NotNil(t, res.Woorkoins)
	assert.True(t, res.Woorkoins.Credited)
	assert.Nil(t, res.Proposal)
}

func TestPaymentUseCase_CreatePayment_NoTarget(t *testing.T) {
	m := newPaymentMocks(t)
	m.configs.EXPECT().Get(gomock.Any(), gomock.Any()).Return(enabledConfig, nil)
	m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.ProcessorPayment{ID: "1", Status: "pending"}, nil)

	res, err := m.useCase().CreatePayment(context.Background(), testAccount, PaymentInput{
		Method: entities.PaymentMethodPix,
		Amount: dec("10"),
	})
	require.NoError(t, err)
	assert.Equal(t, entities.TargetKindNone, res.Target)
	assert.Nil(t, res.Proposal)
	assert.Nil(t, res.Woorkoins)
}

func TestPaymentUseCase_CreatePayment_Failures(t *testing.T) {
	proposalPix := PaymentInput{
		Method: entities.PaymentMethodPix,
		Amount: dec("200"),
		Target: entities.ProposalTarget{ProposalID: "prop-1"},
	}

	t.Run("proposal not found before charging", func(t *testing.T) {
		m := newPaymentMocks(t)
		m.proposals.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Proposal{}, nil)

		_, err := m.useCase().CreatePayment(context.Background(), testAccount, proposalPix)
		assert.ErrorIs(t, err, ErrProposalNotFound)
	})

	t.Run("gateway disabled", func(t *testing.T) {
		m := newPaymentMocks(t)
		m.proposals.EXPECT().GetByID(gomock.Any(), "prop-1").Return(testProposal, nil)
		m.configs.EXPECT().Get(gomock.Any(), gomock.Any()).Return(entities.GatewayConfig{Gateway: entities.GatewayMercadoPago}, nil)

		_, err := m.useCase().CreatePayment(context.Background(), testAccount, proposalPix)
		assert.ErrorIs(t, err, ErrGatewayDisabled)
	})

	t.Run("fees above the amount are rejected before charging", func(t *testing.T) {
		m := newPaymentMocks(t)
		cfg := enabledConfig
		cfg.PixFeePercent = dec("95")
		m.proposals.EXPECT().GetByID(gomock.Any(), "prop-1").Return(testProposal, nil)
		m.configs.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cfg, nil)

		_, err := m.useCase().CreatePayment(context.Background(), testAccount, proposalPix)
		assert.ErrorIs(t, err, ErrInvalidSplitInput)
	})

	t.Run("processor rejects and nothing is recorded", func(t *testing.T) {
		m := newPaymentMocks(t)
		m.proposals.EXPECT().GetByID(gomock.Any(), "prop-1").Return(testProposal, nil)
		m.configs.EXPECT().Get(gomock.Any(), gomock.Any()).Return(enabledConfig, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return(entities.ProcessorPayment{}, &interfaces.ProcessorError{StatusCode: 402, Body: "cc_rejected"})
		m.proposalPayments.EXPECT().Upsert(gomock.Any(), gomock.Any()).Times(0)

		_, err := m.useCase().CreatePayment(context.Background(), testAccount, proposalPix)
		var rejected *ProcessorRejectedError
		require.ErrorAs(t, err, &rejected)
		assert.Equal(t, 402, rejected.StatusCode)
	})

	t.Run("processor timeout credits nothing", func(t *testing.T) {
		m := newPaymentMocks(t)
		m.proposals.EXPECT().GetByID(gomock.Any(), "prop-1").Return(testProposal, nil)
		m.configs.EXPECT().Get(gomock.Any(), gomock.Any()).Return(enabledConfig, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.ProcessorPayment{}, interfaces.ErrProcessorTimeout)
		m.wallets.EXPECT().CreditPending(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := m.useCase().CreatePayment(context.Background(), testAccount, proposalPix)
		assert.ErrorIs(t, err, ErrProcessorUnknown)
	})

	t.Run("record write fails after charge", func(t *testing.T) {
		m := newPaymentMocks(t)
		m.proposals.EXPECT().GetByID(gomock.Any(), "prop-1").Return(testProposal, nil)
		m.configs.EXPECT().Get(gomock.Any(), gomock.Any()).Return(enabledConfig, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.ProcessorPayment{ID: "9003", Status: "approved"}, nil)
		m.proposalPayments.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(entities.ProposalPayment{}, errors.New("throttled"))

		_, err := m.useCase().CreatePayment(context.Background(), testAccount, proposalPix)
		var incomplete *CreditingIncompleteError
		require.ErrorAs(t, err, &incomplete)
		assert.False(t, incomplete.Recorded)
		assert.Equal(t, "9003", incomplete.ProcessorPaymentID)
		assert.Equal(t, "194.00", incomplete.Amount.StringFixed(2))
		assert.ErrorIs(t, err, ErrCreditingIncomplete)
	})

	t.Run("wallet credit fails after record", func(t *testing.T) {
		m := newPaymentMocks(t)
		m.proposals.EXPECT().GetByID(gomock.Any(), "prop-1").Return(testProposal, nil)
		m.configs.EXPECT().Get(gomock.Any(), gomock.Any()).Return(enabledConfig, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.ProcessorPayment{ID: "9004", Status: "approved"}, nil)
		m.proposalPayments.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.ProposalPayment) (entities.ProposalPayment, error) { return p, nil })
		m.proposals.EXPECT().UpdatePaymentSummary(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.wallets.EXPECT().CreditPending(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("boom"))

		_, err := m.useCase().CreatePayment(context.Background(), testAccount, proposalPix)
		var incomplete *CreditingIncompleteError
		require.ErrorAs(t, err, &incomplete)
		assert.True(t, incomplete.Recorded)
	})
}

func TestPaymentUseCase_Reconcile(t *testing.T) {
	t.Run("promotes pending proposal payment", func(t *testing.T) {
		m := newPaymentMocks(t)
		record := entities.ProposalPayment{
			ID:                 "prop-1#9002",
			ProposalID:         "prop-1",
			ProcessorPaymentID: "9002",
			PayerProfileID:     "profile-client",
			Amount:             dec("194"),
			OriginalAmount:     dec("200"),
			Method:             entities.PaymentMethodPix,
			Status:             entities.PaymentStatusPending,
		}
		m.proposalPayments.EXPECT().GetByProcessorPaymentID(gomock.Any(), "9002").Return(record, nil)
		m.configs.EXPECT().Get(gomock.Any(), gomock.Any()).Return(enabledConfig, nil)
		m.gateway.EXPECT().GetPayment(gomock.Any(), "9002").Return(entities.ProcessorPayment{ID: "9002", Status: "approved"}, nil)
		m.proposals.EXPECT().GetByID(gomock.Any(), "prop-1").Return(testProposal, nil)
		m.proposalPayments.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.ProposalPayment) (entities.ProposalPayment, error) { return p, nil })
		m.proposals.EXPECT().UpdatePaymentSummary(gomock.Any(), "prop-1", gomock.Any()).Return(nil)
		m.wallets.EXPECT().CreditPending(gomock.Any(), "prop-1#9002", "profile-freela", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string, amount decimal.Decimal) (bool, error) {
				assert.Equal(t, "174.60", amount.StringFixed(2))
				return true, nil
			})

		res, err := m.useCase().Reconcile(context.Background(), testAccount, "9002")
		require.NoError(t, err)
		assert.Equal(t, entities.TargetKindProposal, res.Target)
		assert.Equal(t, entities.PaymentStatusPaid, res.Status)
		assert.True(t, res.Credited)
	})

	t.Run("already credited purchase is skipped", func(t *testing.T) {
		m := newPaymentMocks(t)
		credited := fixedNow
		purchase := entities.WoorkoinPurchase{
			ID:            "7001",
			ProfileID:     "profile-client",
			Amount:        500,
			Price:         dec("50"),
			OriginalPrice: dec("50"),
			Method:        entities.PaymentMethodCard,
			Status:        entities.PaymentStatusPaid,
			CreditedAt:    &credited,
		}
		m.proposalPayments.EXPECT().GetByProcessorPaymentID(gomock.Any(), "7001").Return(entities.ProposalPayment{}, nil)
		m.purchases.EXPECT().GetByID(gomock.Any(), "7001").Return(purchase, nil)
		m.configs.EXPECT().Get(gomock.Any(), gomock.Any()).Return(enabledConfig, nil)
		m.gateway.EXPECT().GetPayment(gomock.Any(), "7001").Return(entities.ProcessorPayment{ID: "7001", Status: "approved"}, nil)
		m.purchases.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(purchase, nil)
		m.woorkoins.EXPECT().CreditPurchase(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		res, err := m.useCase().Reconcile(context.Background(), testAccount, "7001")
		require.NoError(t, err)
		assert.Equal(t, entities.TargetKindWoorkoin, res.Target)
		assert.True(t, res.AlreadyCredited)
		assert.False(t, res.Credited)
	})

	t.Run("freelancer of the proposal may reconcile", func(t *testing.T) {
		m := newPaymentMocks(t)
		credited := fixedNow
		record := entities.ProposalPayment{
			ID:                 "prop-1#9005",
			ProposalID:         "prop-1",
			ProcessorPaymentID: "9005",
			PayerProfileID:     "profile-client",
			Amount:             dec("194"),
			OriginalAmount:     dec("200"),
			Method:             entities.PaymentMethodPix,
			Status:             entities.PaymentStatusPaid,
			CreditedAt:         &credited,
		}
		m.proposalPayments.EXPECT().GetByProcessorPaymentID(gomock.Any(), "9005").Return(record, nil)
		m.proposals.EXPECT().GetByID(gomock.Any(), "prop-1").Return(testProposal, nil)
		m.configs.EXPECT().Get(gomock.Any(), gomock.Any()).Return(enabledConfig, nil)
		m.gateway.EXPECT().GetPayment(gomock.Any(), "9005").Return(entities.ProcessorPayment{ID: "9005", Status: "approved"}, nil)
		m.proposalPayments.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(record, nil)

		freelancer := entities.Account{UserID: "user-2", ProfileID: "profile-freela"}
		res, err := m.useCase().Reconcile(context.Background(), freelancer, "9005")
		require.NoError(t, err)
		assert.True(t, res.AlreadyCredited)
	})

	t.Run("stranger cannot reconcile a proposal payment", func(t *testing.T) {
		m := newPaymentMocks(t)
		record := entities.ProposalPayment{ID: "prop-1#9006", ProposalID: "prop-1", ProcessorPaymentID: "9006", PayerProfileID: "profile-client"}
		m.proposalPayments.EXPECT().GetByProcessorPaymentID(gomock.Any(), "9006").Return(record, nil)
		m.proposals.EXPECT().GetByID(gomock.Any(), "prop-1").Return(testProposal, nil)
		m.gateway.EXPECT().GetPayment(gomock.Any(), gomock.Any()).Times(0)

		stranger := entities.Account{UserID: "user-9", ProfileID: "profile-stranger"}
		_, err := m.useCase().Reconcile(context.Background(), stranger, "9006")
		assert.ErrorIs(t, err, ErrPaymentRecordNotFound)
	})

	t.Run("stranger cannot reconcile a woorkoins purchase", func(t *testing.T) {
		m := newPaymentMocks(t)
		m.proposalPayments.EXPECT().GetByProcessorPaymentID(gomock.Any(), "7002").Return(entities.ProposalPayment{}, nil)
		m.purchases.EXPECT().GetByID(gomock.Any(), "7002").Return(entities.WoorkoinPurchase{ID: "7002", ProfileID: "profile-client"}, nil)
		m.gateway.EXPECT().GetPayment(gomock.Any(), gomock.Any()).Times(0)

		stranger := entities.Account{UserID: "user-9", ProfileID: "profile-stranger"}
		_, err := m.useCase().Reconcile(context.Background(), stranger, "7002")
		assert.ErrorIs(t, err, ErrPaymentRecordNotFound)
	})

	t.Run("unknown payment", func(t *testing.T) {
		m := newPaymentMocks(t)
		m.proposalPayments.EXPECT().GetByProcessorPaymentID(gomock.Any(), "404").Return(entities.ProposalPayment{}, nil)
		m.purchases.EXPECT().GetByID(gomock.Any(), "404").Return(entities.WoorkoinPurchase{}, nil)

		_, err := m.useCase().Reconcile(context.Background(), testAccount, "404")
		assert.ErrorIs(t, err, ErrPaymentRecordNotFound)
	})

	t.Run("blank id", func(t *testing.T) {
		m := newPaymentMocks(t)
		_, err := m.useCase().Reconcile(context.Background(), testAccount, "  ")
		assert.ErrorIs(t, err, ErrInvalidPaymentRequest)
	})
}

func TestNormalizePaymentInput(t *testing.T) {
	tests := []struct {
		name    string
		in      PaymentInput
		wantErr bool
		check   func(t *testing.T, in PaymentInput, gross decimal.Decimal)
	}{
		{
			name:    "invalid method",
			in:      PaymentInput{Method: "boleto", Amount: dec("10")},
			wantErr: true,
		},
		{
			name:    "non positive amount",
			in:      PaymentInput{Method: entities.PaymentMethodPix, Amount: dec("0")},
			wantErr: true,
		},
		{
			name:    "card without token",
			in:      PaymentInput{Method: entities.PaymentMethodCard, Amount: dec("10")},
			wantErr: true,
		},
		{
			name:    "woorkoins without price",
			in:      PaymentInput{Method: entities.PaymentMethodPix, Target: entities.WoorkoinTarget{Amount: 10}},
			wantErr: true,
		},
		{
			name: "woorkoins price is the gross amount",
			in:   PaymentInput{Method: entities.PaymentMethodPix, Amount: dec("999"), Target: entities.WoorkoinTarget{Amount: 100, Price: dec("12.5")}},
			check: func(t *testing.T, in PaymentInput, gross decimal.Decimal) {
				assert.Equal(t, "12.5", gross.String())
				assert.Equal(t, "100 Woorkoins", in.Description)
			},
		},
		{
			name: "payer defaults and document digits",
			in: PaymentInput{
				Method: entities.PaymentMethodPix,
				Amount: dec("10"),
				Payer:  entities.Payer{Document: "123.456.789-09"},
				Card:   &entities.CardDetails{Token: "dropped"},
			},
			check: func(t *testing.T, in PaymentInput, _ decimal.Decimal) {
				assert.Equal(t, "client@woorkins.test", in.Payer.Email)
				assert.Equal(t, "Client Name", in.Payer.Name)
				assert.Equal(t, "12345678909", in.Payer.Document)
				assert.Nil(t, in.Card)
				assert.Equal(t, "Woorkins payment", in.Description)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, gross, err := normalizePaymentInput(testAccount, tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPaymentRequest)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, in, gross)
			}
		})
	}
}
