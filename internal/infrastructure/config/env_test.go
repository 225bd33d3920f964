package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "PROCESSOR_TIMEOUT", "PLATFORM_COMMISSION_PERCENT", "PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK", "PROPOSALS_TABLE"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.Port != 8080 {
		t.Fatalf("expected port 8080, got %d", cfg.Port)
	}
	if cfg.ProcessorTimeout != 20*time.Second {
		t.Fatalf("unexpected timeout %s", cfg.ProcessorTimeout)
	}
	if !cfg.PlatformCommissionPercent.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("unexpected commission %s", cfg.PlatformCommissionPercent)
	}
	if cfg.PaymentGatewayMock {
		t.Fatalf("mock should be off by default")
	}
	if cfg.Tables.Proposals != "proposals" {
		t.Fatalf("unexpected table %q", cfg.Tables.Proposals)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PROCESSOR_TIMEOUT", "5s")
	t.Setenv("PLATFORM_COMMISSION_PERCENT", "12.5")
	t.Setenv("MERCADOPAGO_MOCK", "on")
	t.Setenv("PROPOSALS_TABLE", "proposals_dev")

	cfg := Load()
	if cfg.Port != 9090 || cfg.ProcessorTimeout != 5*time.Second {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
	if !cfg.PlatformCommissionPercent.Equal(decimal.RequireFromString("12.5")) {
		t.Fatalf("unexpected commission %s", cfg.PlatformCommissionPercent)
	}
	if !cfg.PaymentGatewayMock {
		t.Fatalf("expected mock mode")
	}
	if cfg.Tables.Proposals != "proposals_dev" {
		t.Fatalf("unexpected table %q", cfg.Tables.Proposals)
	}
}

func TestGetEnvInvalidValuesFallBack(t *testing.T) {
	t.Setenv("X_INT", "abc")
	t.Setenv("X_DUR", "-1s")
	t.Setenv("X_DEC", "ten")
	if GetEnvInt("X_INT", 3) != 3 {
		t.Fatalf("expected default int")
	}
	if GetEnvDuration("X_DUR", time.Second) != time.Second {
		t.Fatalf("expected default duration")
	}
	if !GetEnvDecimal("X_DEC", decimal.NewFromInt(1)).Equal(decimal.NewFromInt(1)) {
		t.Fatalf("expected default decimal")
	}
}
