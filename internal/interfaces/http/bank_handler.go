package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/banco-ledger/internal/application/bank"
	"github.com/tu-usuario/banco-ledger/internal/application/dto"
	"github.com/tu-usuario/banco-ledger/internal/domain"
	"github.com/tu-usuario/banco-ledger/pkg/logger"
)

// BankHandler maneja las peticiones HTTP del ledger bancario.
type BankHandler struct {
	uc  *bank.BankUseCase
	log *logger.Logger
}

// NewBankHandler construye el handler.
func NewBankHandler(uc *bank.BankUseCase, log *logger.Logger) *BankHandler {
	return &BankHandler{uc: uc, log: log}
}

// RegisterClient POST /api/clients
func (h *BankHandler) RegisterClient(c *fiber.Ctx) error {
	var in dto.RegisterClientRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	client, err := h.uc.AddClient(in.Name, in.TaxID)
	if err != nil {
		return h.domainError(c, err)
	}
	h.log.Info().Str("tax_id", client.TaxID).Msg("cliente registrado")
	return c.Status(fiber.StatusCreated).JSON(dto.NewClientResponse(client))
}

// ListClients GET /api/clients
func (h *BankHandler) ListClients(c *fiber.Ctx) error {
	clients := h.uc.ListClients()
	out := make([]dto.ClientResponse, 0, len(clients))
	for _, cl := range clients {
		out = append(out, dto.NewClientResponse(cl))
	}
	return c.JSON(out)
}

// ListClientAccounts GET /api/clients/:tax_id/accounts
func (h *BankHandler) ListClientAccounts(c *fiber.Ctx) error {
	accounts, err := h.uc.ListClientAccounts(c.Params("tax_id"))
	if err != nil {
		return h.domainError(c, err)
	}
	out := make([]dto.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, dto.NewAccountResponse(a))
	}
	return c.JSON(out)
}

// CreateAccount POST /api/accounts
func (h *BankHandler) CreateAccount(c *fiber.Ctx) error {
	var in dto.CreateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	account, err := h.uc.CreateAccount(in.TaxID, in.Type)
	if err != nil {
		return h.domainError(c, err)
	}
	h.log.Info().Int64("number", account.Number).Str("type", account.Type).Msg("cuenta creada")
	return c.Status(fiber.StatusCreated).JSON(dto.NewAccountResponse(account))
}

// ListAccounts GET /api/accounts
func (h *BankHandler) ListAccounts(c *fiber.Ctx) error {
	accounts := h.uc.ListAccounts()
	out := make([]dto.AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, dto.NewAccountResponse(a))
	}
	return c.JSON(out)
}

// GetAccount GET /api/accounts/:number
func (h *BankHandler) GetAccount(c *fiber.Ctx) error {
	number, err := dto.ParseAccountNumber(c.Params("number"))
	if err != nil {
		return badRequest(c, "VALIDATION", "número de cuenta inválido")
	}
	account, err := h.uc.FindAccount(number)
	if err != nil {
		return h.domainError(c, err)
	}
	return c.JSON(dto.NewAccountResponse(account))
}

// Deposit POST /api/accounts/deposit
func (h *BankHandler) Deposit(c *fiber.Ctx) error {
	number, amount, err := h.parseMovement(c)
	if err != nil {
		return h.domainError(c, err)
	}
	account, err := h.uc.Deposit(number, amount)
	if err != nil {
		return h.domainError(c, err)
	}
	h.log.Info().Int64("number", number).Str("amount", amount.String()).Msg("depósito realizado")
	return c.JSON(dto.NewAccountResponse(account))
}

// Withdraw POST /api/accounts/withdraw
func (h *BankHandler) Withdraw(c *fiber.Ctx) error {
	number, amount, err := h.parseMovement(c)
	if err != nil {
		return h.domainError(c, err)
	}
	account, err := h.uc.Withdraw(number, amount)
	if err != nil {
		return h.domainError(c, err)
	}
	h.log.Info().Int64("number", number).Str("amount", amount.String()).Msg("retiro realizado")
	return c.JSON(dto.NewAccountResponse(account))
}

// Transfer POST /api/transfers
func (h *BankHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	from, err := dto.ParseAccountNumber(in.FromAccount)
	if err != nil {
		return badRequest(c, "VALIDATION", "cuenta origen inválida")
	}
	to, err := dto.ParseAccountNumber(in.ToAccount)
	if err != nil {
		return badRequest(c, "VALIDATION", "cuenta destino inválida")
	}
	amount, err := dto.ParseAmount(in.Amount)
	if err != nil {
		return h.domainError(c, err)
	}
	if err := h.uc.Transfer(from, to, amount); err != nil {
		return h.domainError(c, err)
	}
	h.log.Info().Int64("from", from).Int64("to", to).Str("amount", amount.String()).Msg("transferencia realizada")
	return c.SendStatus(fiber.StatusNoContent)
}

// Statement GET /api/accounts/:number/statement
func (h *BankHandler) Statement(c *fiber.Ctx) error {
	number, err := dto.ParseAccountNumber(c.Params("number"))
	if err != nil {
		return badRequest(c, "VALIDATION", "número de cuenta inválido")
	}
	account, err := h.uc.Statement(number)
	if err != nil {
		return h.domainError(c, err)
	}
	return c.JSON(dto.NewStatementResponse(account))
}

// Dashboard GET /api/dashboard
func (h *BankHandler) Dashboard(c *fiber.Ctx) error {
	return c.JSON(dto.NewSummaryResponse(h.uc.GetSummary()))
}

// parseMovement parsea el body común de depósito/retiro.
// El número de cuenta y el monto llegan como texto y se validan aquí,
// antes de tocar el núcleo.
func (h *BankHandler) parseMovement(c *fiber.Ctx) (int64, decimal.Decimal, error) {
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return 0, decimal.Zero, domain.ErrInvalidInput
	}
	number, err := dto.ParseAccountNumber(in.AccountNumber)
	if err != nil {
		return 0, decimal.Zero, err
	}
	amount, err := dto.ParseAmount(in.Amount)
	if err != nil {
		return 0, decimal.Zero, err
	}
	return number, amount, nil
}

// badRequest responde 400 con el cuerpo de error estándar.
func badRequest(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: message})
}

// domainError traduce un error de dominio al código de estado HTTP.
func (h *BankHandler) domainError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	code := "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidAccountType), errors.Is(err, domain.ErrSameAccount):
		status, code = fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrClientNotFound), errors.Is(err, domain.ErrAccountNotFound):
		status, code = fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrDuplicateClient):
		status, code = fiber.StatusConflict, "DUPLICATE"
	case errors.Is(err, domain.ErrInsufficientFunds):
		status, code = fiber.StatusConflict, "INSUFFICIENT_FUNDS"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}
