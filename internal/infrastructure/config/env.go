package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Config is the process configuration, read from the environment once at
// startup.
type Config struct {
	Port        int
	ServiceName string

	AWSRegion        string
	DynamoDBEndpoint string
	Tables           Tables

	MercadoPagoAccessToken string
	PaymentGatewayMock     bool
	ProcessorTimeout       time.Duration
	NotificationURL        string
	PixExpiration          time.Duration

	PlatformCommissionPercent decimal.Decimal

	AuthJWTSecret string
}

type Tables struct {
	Profiles             string
	Proposals            string
	ProposalPayments     string
	FreelancerWallets    string
	WoorkoinPurchases    string
	WoorkoinBalances     string
	WoorkoinTransactions string
	GatewayConfig        string
}

func Load() Config {
	return Config{
		Port:             GetEnvInt("PORT", 8080),
		ServiceName:      GetEnv("SERVICE_NAME", "woorkins-payments"),
		AWSRegion:        GetEnv("AWS_REGION", "us-east-1"),
		DynamoDBEndpoint: os.Getenv("DYNAMODB_ENDPOINT"),
		Tables: Tables{
			Profiles:             GetEnv("PROFILES_TABLE", "profiles"),
			Proposals:            GetEnv("PROPOSALS_TABLE", "proposals"),
			ProposalPayments:     GetEnv("PROPOSAL_PAYMENTS_TABLE", "proposal_payments"),
			FreelancerWallets:    GetEnv("FREELANCER_WALLETS_TABLE", "freelancer_wallets"),
			WoorkoinPurchases:    GetEnv("WOORKOIN_PURCHASES_TABLE", "woorkoin_purchases"),
			WoorkoinBalances:     GetEnv("WOORKOIN_BALANCES_TABLE", "woorkoin_balances"),
			WoorkoinTransactions: GetEnv("WOORKOIN_TRANSACTIONS_TABLE", "woorkoin_transactions"),
			GatewayConfig:        GetEnv("GATEWAY_CONFIG_TABLE", "payment_gateway_config"),
		},
		MercadoPagoAccessToken:    os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		PaymentGatewayMock:        IsMockEnabled(),
		ProcessorTimeout:          GetEnvDuration("PROCESSOR_TIMEOUT", 20*time.Second),
		NotificationURL:           os.Getenv("NOTIFICATION_URL"),
		PixExpiration:             GetEnvDuration("PIX_EXPIRATION", 30*time.Minute),
		PlatformCommissionPercent: GetEnvDecimal("PLATFORM_COMMISSION_PERCENT", decimal.NewFromInt(10)),
		AuthJWTSecret:             os.Getenv("AUTH_JWT_SECRET"),
	}
}

func GetEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func GetEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func GetEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			return parsed
		}
	}
	return def
}

func GetEnvDecimal(key string, def decimal.Decimal) decimal.Decimal {
	if v := os.Getenv(key); v != "" {
		if parsed, err := decimal.NewFromString(strings.TrimSpace(v)); err == nil {
			return parsed
		}
	}
	return def
}

// IsMockEnabled reports whether the payment gateway should answer locally.
func IsMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
