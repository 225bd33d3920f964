package usecase

import (
	"io"
	"testing"
	"time"

	mock_interfaces "woorkins_payments/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type paymentMocks struct {
	configs          *mock_interfaces.MockIGatewayConfigRepository
	gateway          *mock_interfaces.MockIPaymentGateway
	proposals        *mock_interfaces.MockIProposalRepository
	proposalPayments *mock_interfaces.MockIProposalPaymentRepository
	wallets          *mock_interfaces.MockIFreelancerWalletRepository
	purchases        *mock_interfaces.MockIWoorkoinPurchaseRepository
	woorkoins        *mock_interfaces.MockIWoorkoinLedgerRepository
}

func newPaymentMocks(t *testing.T) paymentMocks {
	ctrl := gomock.NewController(t)
	return paymentMocks{
		configs:          mock_interfaces.NewMockIGatewayConfigRepository(ctrl),
		gateway:          mock_interfaces.NewMockIPaymentGateway(ctrl),
		proposals:        mock_interfaces.NewMockIProposalRepository(ctrl),
		proposalPayments: mock_interfaces.NewMockIProposalPaymentRepository(ctrl),
		wallets:          mock_interfaces.NewMockIFreelancerWalletRepository(ctrl),
		purchases:        mock_interfaces.NewMockIWoorkoinPurchaseRepository(ctrl),
		woorkoins:        mock_interfaces.NewMockIWoorkoinLedgerRepository(ctrl),
	}
}

func (m paymentMocks) initiator() *PaymentInitiator {
	i := NewPaymentInitiator(m.configs, m.gateway, nil, InitiatorConfig{PixExpiration: 30 * time.Minute}, quietLogger())
	i.nowFn = func() time.Time { return fixedNow }
	return i
}

func (m paymentMocks) proposalLedger() *ProposalLedger {
	l := NewProposalLedger(m.proposals, m.proposalPayments, m.wallets, nil, dec("10"), quietLogger())
	l.nowFn = func() time.Time { return fixedNow }
	return l
}

func (m paymentMocks) woorkoinLedger() *WoorkoinLedger {
	l := NewWoorkoinLedger(m.purchases, m.woorkoins, nil, quietLogger())
	l.nowFn = func() time.Time { return fixedNow }
	return l
}

func (m paymentMocks) useCase() *PaymentUseCase {
	return NewPaymentUseCase(m.initiator(), m.proposalLedger(), m.woorkoinLedger(), m.proposalPayments, m.purchases, nil, quietLogger())
}
