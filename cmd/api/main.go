package main

import (
	_ "woorkins_payments/docs"
	"woorkins_payments/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Woorkins Payments API
// @version         1.0
// @description     Payment split and ledger crediting for Woorkins (Mercado Pago PIX and card).

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
