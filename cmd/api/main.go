package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/banco-ledger/internal/application/bank"
	"github.com/tu-usuario/banco-ledger/internal/infrastructure/memory"
	httpRouter "github.com/tu-usuario/banco-ledger/internal/interfaces/http"
	"github.com/tu-usuario/banco-ledger/pkg/config"
	"github.com/tu-usuario/banco-ledger/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("bank", cfg.Bank.Name).
		Msg("iniciando aplicación")

	// Estado en memoria: vive lo que vive el proceso.
	clientRepo := memory.NewClientRepository()
	accountRepo := memory.NewAccountRepository()
	bankUC := bank.NewBankUseCase(clientRepo, accountRepo, bank.Config{
		Name:               cfg.Bank.Name,
		FirstAccountNumber: cfg.Bank.FirstAccountNumber,
		OverdraftLimit:     cfg.Bank.OverdraftDecimal(),
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		BankUC: bankUC,
		Log:    log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
