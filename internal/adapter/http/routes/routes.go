package routes

import (
	"context"
	"strconv"

	_ "woorkins_payments/docs" // This will be auto-generated
	"woorkins_payments/internal/adapter/http/handlers"
	"woorkins_payments/internal/adapter/http/middleware"
	"woorkins_payments/internal/adapter/persistence/repository"
	"woorkins_payments/internal/domain/entities"
	"woorkins_payments/internal/infrastructure/auth"
	"woorkins_payments/internal/infrastructure/config"
	"woorkins_payments/internal/infrastructure/database"
	"woorkins_payments/internal/infrastructure/logging"
	"woorkins_payments/internal/infrastructure/monitoring"
	"woorkins_payments/internal/infrastructure/payments"
	"woorkins_payments/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Server bundles what the router needs.
type Server struct {
	Logger         *logrus.Logger
	Metrics        *monitoring.MetricsCollector
	Auth           usecase.IAuthUseCase
	PaymentHandler *handlers.PaymentHandler
	WalletHandler  *handlers.WalletHandler
}

// Run will start the server
func Run() {
	cfg := config.Load()
	logger := logging.NewLogger(cfg.ServiceName)
	if cfg.Port <= 0 {
		cfg.Port = 8080
	}

	srv := build(cfg, logger)
	router := NewRouter(srv)

	logger.WithField("port", cfg.Port).Info("[http] starting server")
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		logger.WithError(err).Fatal("Failed to startup the application")
	}
}

func build(cfg config.Config, logger *logrus.Logger) Server {
	ddb := database.ConnectDynamoDB(context.Background(), cfg, logger)
	metrics := monitoring.NewMetricsCollector(cfg.ServiceName)

	profiles := repository.NewProfileDynamoRepository(ddb, cfg.Tables.Profiles)
	proposals := repository.NewProposalDynamoRepository(ddb, cfg.Tables.Proposals)
	proposalPayments := repository.NewProposalPaymentDynamoRepository(ddb, cfg.Tables.ProposalPayments)
	wallets := repository.NewFreelancerWalletDynamoRepository(ddb, cfg.Tables.FreelancerWallets, cfg.Tables.ProposalPayments)
	purchases := repository.NewWoorkoinPurchaseDynamoRepository(ddb, cfg.Tables.WoorkoinPurchases)
	woorkoins := repository.NewWoorkoinLedgerDynamoRepository(ddb, repository.WoorkoinTables{
		Purchases:    cfg.Tables.WoorkoinPurchases,
		Balances:     cfg.Tables.WoorkoinBalances,
		Transactions: cfg.Tables.WoorkoinTransactions,
	})
	gatewayConfigs := repository.NewGatewayConfigDynamoRepository(ddb, cfg.Tables.GatewayConfig)

	gateway, err := payments.NewMercadoPagoGateway(payments.GatewayOptions{
		AccessToken: cfg.MercadoPagoAccessToken,
		Timeout:     cfg.ProcessorTimeout,
		Mock:        cfg.PaymentGatewayMock,
	}, logger)
	if err != nil {
		logger.WithError(err).Fatal("Mercado Pago gateway not configured")
	}

	verifier, err := auth.NewJWTVerifier(cfg.AuthJWTSecret)
	if err != nil {
		logger.WithError(err).Fatal("token verifier not configured")
	}

	initiator := usecase.NewPaymentInitiator(gatewayConfigs, gateway, metrics, usecase.InitiatorConfig{
		Gateway:         entities.GatewayMercadoPago,
		PixExpiration:   cfg.PixExpiration,
		NotificationURL: cfg.NotificationURL,
	}, logger)
	proposalLedger := usecase.NewProposalLedger(proposals, proposalPayments, wallets, metrics, cfg.PlatformCommissionPercent, logger)
	woorkoinLedger := usecase.NewWoorkoinLedger(purchases, woorkoins, metrics, logger)

	paymentUseCase := usecase.NewPaymentUseCase(initiator, proposalLedger, woorkoinLedger, proposalPayments, purchases, metrics, logger)
	walletUseCase := usecase.NewWalletUseCase(wallets, woorkoins)

	return Server{
		Logger:         logger,
		Metrics:        metrics,
		Auth:           usecase.NewAuthUseCase(verifier, profiles, logger),
		PaymentHandler: handlers.NewPaymentHandler(paymentUseCase, logger),
		WalletHandler:  handlers.NewWalletHandler(walletUseCase),
	}
}

// NewRouter wires middlewares and routes onto a fresh engine.
func NewRouter(srv Server) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, srv)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if srv.Metrics != nil {
		router.GET("/metrics", srv.Metrics.Handler())
	}

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Rotas autenticadas
	private := v1.Group("")
	private.Use(middleware.RequireAccount(srv.Auth))
	addPaymentRoutes(private, srv.PaymentHandler)
	addWalletRoutes(private, srv.WalletHandler)

	return router
}

func setMiddlewares(router *gin.Engine, srv Server) {
	router.Use(middleware.Recovery(srv.Logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.Logging(srv.Logger))
	if srv.Metrics != nil {
		router.Use(srv.Metrics.MetricsMiddleware())
	}
}
