package usecase

import (
	"context"
	"errors"
	"testing"

	"woorkins_payments/internal/domain/entities"
	mock_interfaces "woorkins_payments/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func approvedInput(id string) LedgerInput {
	return LedgerInput{
		Payment:        entities.ProcessorPayment{ID: id, Status: "approved"},
		Method:         entities.PaymentMethodPix,
		OriginalAmount: dec("200"),
		FinalAmount:    dec("194"),
	}
}

func TestProposalLedger_Apply(t *testing.T) {
	t.Run("already credited record touches nothing else", func(t *testing.T) {
		m := newPaymentMocks(t)
		credited := fixedNow
		m.proposalPayments.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.ProposalPayment) (entities.ProposalPayment, error) {
				p.CreditedAt = &credited
				return p, nil
			})
		m.proposals.EXPECT().UpdatePaymentSummary(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		m.wallets.EXPECT().CreditPending(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		res, err := m.proposalLedger().Apply(context.Background(), testProposal, approvedInput("1"))
		require.NoError(t, err)
		assert.True(t, res.AlreadyCredited)
		assert.False(t, res.Credited)
	})

	t.Run("lost race on the credit marker", func(t *testing.T) {
		m := newPaymentMocks(t)
		m.proposalPayments.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.ProposalPayment) (entities.ProposalPayment, error) { return p, nil })
		m.proposals.EXPECT().UpdatePaymentSummary(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.wallets.EXPECT().CreditPending(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

		res, err := m.proposalLedger().Apply(context.Background(), testProposal, approvedInput("2"))
		require.NoError(t, err)
		assert.True(t, res.AlreadyCredited)
		assert.Nil(t, res.Record.CreditedAt)
	})

	t.Run("refunded payment with paid uncredited record is not credited", func(t *testing.T) {
		m := newPaymentMocks(t)
		paidAt := fixedNow
		m.proposalPayments.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.ProposalPayment) (entities.ProposalPayment, error) {
				// The stored row keeps its paid status; the downgrade is refused.
				p.Status = entities.PaymentStatusPaid
				p.PaidAt = &paidAt
				return p, nil
			})
		m.proposals.EXPECT().UpdatePaymentSummary(gomock.Any(), "prop-1", gomock.Any()).Return(nil)
		m.wallets.EXPECT().CreditPending(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		in := approvedInput("5")
		in.Payment.Status = "refunded"
		res, err := m.proposalLedger().Apply(context.Background(), testProposal, in)
		require.NoError(t, err)
		assert.False(t, res.Credited)
		assert.False(t, res.AlreadyCredited)
		assert.Nil(t, res.Record.CreditedAt)
	})

	t.Run("summary failure reports incomplete crediting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		metrics := mock_interfaces.NewMockIPaymentMetrics(ctrl)
		metrics.EXPECT().CreditingIncomplete(string(entities.TargetKindProposal)).Times(1)

		m := newPaymentMocks(t)
		m.proposalPayments.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.ProposalPayment) (entities.ProposalPayment, error) { return p, nil })
		m.proposals.EXPECT().UpdatePaymentSummary(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("dynamo down"))

		l := NewProposalLedger(m.proposals, m.proposalPayments, m.wallets, metrics, dec("10"), quietLogger())
		_, err := l.Apply(context.Background(), testProposal, approvedInput("3"))
		var incomplete *CreditingIncompleteError
		require.ErrorAs(t, err, &incomplete)
		assert.True(t, incomplete.Recorded)
		assert.Equal(t, "proposal:prop-1", incomplete.Target)
	})

	t.Run("credit records metric", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		metrics := mock_interfaces.NewMockIPaymentMetrics(ctrl)
		metrics.EXPECT().LedgerCredited(string(entities.TargetKindProposal)).Times(1)

		m := newPaymentMocks(t)
		m.proposalPayments.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.ProposalPayment) (entities.ProposalPayment, error) { return p, nil })
		m.proposals.EXPECT().UpdatePaymentSummary(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.wallets.EXPECT().CreditPending(gomock.Any(), "prop-1#4", "profile-freela", gomock.Any()).Return(true, nil)

		l := NewProposalLedger(m.proposals, m.proposalPayments, m.wallets, metrics, dec("10"), quietLogger())
		res, err := l.Apply(context.Background(), testProposal, approvedInput("4"))
		require.NoError(t, err)
		assert.True(t, res.Credited)
		assert.Equal(t, "19.40", res.Split.PlatformCommission.StringFixed(2))
	})
}

func TestProposalLedger_Load(t *testing.T) {
	m := newPaymentMocks(t)
	m.proposals.EXPECT().GetByID(gomock.Any(), "orphan").Return(entities.Proposal{ID: "orphan"}, nil)

	_, err := m.proposalLedger().Load(context.Background(), "orphan")
	assert.ErrorIs(t, err, ErrProposalNotFound)

	_, err = m.proposalLedger().Load(context.Background(), "")
	assert.ErrorIs(t, err, ErrProposalNotFound)
}

func TestWoorkoinLedger_Apply(t *testing.T) {
	target := entities.WoorkoinTarget{Amount: 500, Price: dec("50")}

	t.Run("pending purchase leaves balance untouched", func(t *testing.T) {
		m := newPaymentMocks(t)
		m.purchases.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.WoorkoinPurchase) (entities.WoorkoinPurchase, error) { return p, nil })
		m.woorkoins.EXPECT().CreditPurchase(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		in := approvedInput("10")
		in.Payment.Status = "pending"
		res, err := m.woorkoinLedger().Apply(context.Background(), "profile-client", target, in)
		require.NoError(t, err)
		assert.Equal(t, entities.PaymentStatusPending, res.Purchase.Status)
		assert.False(t, res.Credited)
	})

	t.Run("cancelled payment with paid uncredited purchase is not credited", func(t *testing.T) {
		m := newPaymentMocks(t)
		m.purchases.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.WoorkoinPurchase) (entities.WoorkoinPurchase, error) {
				p.Status = entities.PaymentStatusPaid
				return p, nil
			}).Times(3)
		m.woorkoins.EXPECT().CreditPurchase(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		for _, status := range []string{"refunded", "cancelled", "charged_back"} {
			in := approvedInput("14")
			in.Payment.Status = status
			res, err := m.woorkoinLedger().Apply(context.Background(), "profile-client", target, in)
			require.NoError(t, err)
			assert.False(t, res.Credited, status)
			assert.Nil(t, res.Purchase.CreditedAt, status)
		}
	})

	t.Run("concurrent credit is not an error", func(t *testing.T) {
		m := newPaymentMocks(t)
		m.purchases.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.WoorkoinPurchase) (entities.WoorkoinPurchase, error) { return p, nil })
		m.woorkoins.EXPECT().CreditPurchase(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

		res, err := m.woorkoinLedger().Apply(context.Background(), "profile-client", target, approvedInput("11"))
		require.NoError(t, err)
		assert.True(t, res.AlreadyCredited)
	})

	t.Run("credit failure after record", func(t *testing.T) {
		m := newPaymentMocks(t)
		m.purchases.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.WoorkoinPurchase) (entities.WoorkoinPurchase, error) { return p, nil })
		m.woorkoins.EXPECT().CreditPurchase(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("transaction conflict"))

		_, err := m.woorkoinLedger().Apply(context.Background(), "profile-client", target, approvedInput("12"))
		var incomplete *CreditingIncompleteError
		require.ErrorAs(t, err, &incomplete)
		assert.True(t, incomplete.Recorded)
		assert.Equal(t, "woorkoins:profile-client", incomplete.Target)
	})

	t.Run("purchase write failure", func(t *testing.T) {
		m := newPaymentMocks(t)
		m.purchases.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(entities.WoorkoinPurchase{}, errors.New("throttled"))

		_, err := m.woorkoinLedger().Apply(context.Background(), "profile-client", target, approvedInput("13"))
		var incomplete *CreditingIncompleteError
		require.ErrorAs(t, err, &incomplete)
		assert.False(t, incomplete.Recorded)
	})
}
