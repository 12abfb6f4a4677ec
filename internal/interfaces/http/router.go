package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/banco-ledger/internal/application/bank"
	"github.com/tu-usuario/banco-ledger/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	BankUC *bank.BankUseCase
	Log    *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	handler := NewBankHandler(deps.BankUC, deps.Log)

	// Clientes
	clients := api.Group("/clients")
	clients.Post("/", handler.RegisterClient)
	clients.Get("/", handler.ListClients)
	clients.Get("/:tax_id/accounts", handler.ListClientAccounts)

	// Cuentas y movimientos
	accounts := api.Group("/accounts")
	accounts.Post("/", handler.CreateAccount)
	accounts.Get("/", handler.ListAccounts)
	accounts.Post("/deposit", handler.Deposit)
	accounts.Post("/withdraw", handler.Withdraw)
	accounts.Get("/:number", handler.GetAccount)
	accounts.Get("/:number/statement", handler.Statement)

	// Transferencias entre cuentas
	api.Post("/transfers", handler.Transfer)

	// Resumen del dashboard
	api.Get("/dashboard", handler.Dashboard)
}
