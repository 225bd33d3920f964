package routes

import (
	"woorkins_payments/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments  = "/payments"
	PathWallet    = "/wallet"
	PathWoorkoins = "/woorkoins"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.CreatePayment)
		payments.POST("/:payment_id/reconcile", paymentHandler.Reconcile)
	}
}

func addWalletRoutes(rg *gin.RouterGroup, walletHandler *handlers.WalletHandler) {
	rg.GET(PathWallet, walletHandler.GetWallet)

	woorkoins := rg.Group(PathWoorkoins)
	{
		woorkoins.GET("/balance", walletHandler.GetWoorkoinBalance)
		woorkoins.GET("/transactions", walletHandler.ListWoorkoinTransactions)
	}
}
