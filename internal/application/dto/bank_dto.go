// Package dto define los contratos de la frontera: requests con campos
// débilmente tipados (montos y números de cuenta como texto) que se parsean
// y validan antes de tocar el núcleo, y responses ya formateadas para
// presentación. El núcleo nunca formatea moneda ni fechas.
package dto

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/banco-ledger/internal/application/bank"
	"github.com/tu-usuario/banco-ledger/internal/domain"
	"github.com/tu-usuario/banco-ledger/internal/domain/entity"
)

// Formato de fecha para presentación del extracto.
const statementTimeLayout = "02/01/2006 15:04"

// RegisterClientRequest body para POST /api/clients.
type RegisterClientRequest struct {
	Name  string `json:"name"`
	TaxID string `json:"tax_id"`
}

// CreateAccountRequest body para POST /api/accounts.
// Type acepta los tokens "corrente" o "poupanca".
type CreateAccountRequest struct {
	TaxID string `json:"tax_id"`
	Type  string `json:"type"`
}

// MovementRequest body para depósitos y retiros.
// AccountNumber y Amount llegan como texto y se validan en la frontera.
type MovementRequest struct {
	AccountNumber string `json:"account_number"`
	Amount        string `json:"amount"`
}

// TransferRequest body para POST /api/transfers.
type TransferRequest struct {
	FromAccount string `json:"from_account"`
	ToAccount   string `json:"to_account"`
	Amount      string `json:"amount"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ClientResponse representación de un cliente.
type ClientResponse struct {
	Name  string `json:"name"`
	TaxID string `json:"tax_id"`
}

// AccountResponse representación de una cuenta (saldo con dos decimales).
type AccountResponse struct {
	Number  int64  `json:"number"`
	Type    string `json:"type"`
	Owner   string `json:"owner"`
	TaxID   string `json:"tax_id"`
	Balance string `json:"balance"`
}

// HistoryEntryResponse un movimiento del extracto, ya formateado.
type HistoryEntryResponse struct {
	Date        string `json:"date"`
	Description string `json:"description"`
}

// StatementResponse extracto de una cuenta.
type StatementResponse struct {
	Number  int64                  `json:"number"`
	Owner   string                 `json:"owner"`
	Type    string                 `json:"type"`
	Balance string                 `json:"balance"`
	History []HistoryEntryResponse `json:"history"`
}

// SummaryResponse resumen del dashboard.
type SummaryResponse struct {
	BankName      string            `json:"bank_name"`
	TotalClients  int               `json:"total_clients"`
	TotalAccounts int               `json:"total_accounts"`
	TotalBalance  string            `json:"total_balance"`
	Clients       []ClientResponse  `json:"clients"`
	Accounts      []AccountResponse `json:"accounts"`
}

// ParseAmount valida y convierte un monto textual.
// No numérico o no positivo: domain.ErrInvalidAmount (falla de la frontera,
// nunca llega al núcleo).
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	if !amount.GreaterThan(decimal.Zero) {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	return amount, nil
}

// ParseAccountNumber valida y convierte un número de cuenta textual.
func ParseAccountNumber(s string) (int64, error) {
	number, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidInput
	}
	return number, nil
}

// NewClientResponse mapea un cliente.
func NewClientResponse(c *entity.Client) ClientResponse {
	return ClientResponse{Name: c.Name, TaxID: c.TaxID}
}

// NewAccountResponse mapea una cuenta con el saldo a dos decimales.
func NewAccountResponse(a *entity.Account) AccountResponse {
	return AccountResponse{
		Number:  a.Number,
		Type:    a.Type,
		Owner:   a.Owner.Name,
		TaxID:   a.Owner.TaxID,
		Balance: a.Balance.StringFixed(2),
	}
}

// NewStatementResponse mapea cuenta + historial al extracto presentable.
func NewStatementResponse(a *entity.Account) StatementResponse {
	history := make([]HistoryEntryResponse, 0, len(a.History))
	for _, e := range a.History {
		history = append(history, HistoryEntryResponse{
			Date:        e.Timestamp.Format(statementTimeLayout),
			Description: describeEntry(e),
		})
	}
	return StatementResponse{
		Number:  a.Number,
		Owner:   a.Owner.Name,
		Type:    a.Type,
		Balance: a.Balance.StringFixed(2),
		History: history,
	}
}

// NewSummaryResponse mapea el resumen agregado del banco.
func NewSummaryResponse(s bank.Summary) SummaryResponse {
	clients := make([]ClientResponse, 0, len(s.Clients))
	for _, c := range s.Clients {
		clients = append(clients, NewClientResponse(c))
	}
	accounts := make([]AccountResponse, 0, len(s.Accounts))
	for _, a := range s.Accounts {
		accounts = append(accounts, NewAccountResponse(a))
	}
	return SummaryResponse{
		BankName:      s.BankName,
		TotalClients:  s.TotalClients,
		TotalAccounts: s.TotalAccounts,
		TotalBalance:  s.TotalBalance.StringFixed(2),
		Clients:       clients,
		Accounts:      accounts,
	}
}

// describeEntry construye la descripción textual de un movimiento.
func describeEntry(e entity.HistoryEntry) string {
	amount := e.Amount.StringFixed(2)
	switch e.Kind {
	case entity.HistoryDeposit:
		return fmt.Sprintf("Depósito de R$ %s", amount)
	case entity.HistoryWithdraw:
		return fmt.Sprintf("Retiro de R$ %s", amount)
	case entity.HistoryTransfer:
		if e.Direction == entity.DirectionOut {
			return fmt.Sprintf("Transferencia de R$ %s a la cuenta %d", amount, e.CounterAccount)
		}
		return fmt.Sprintf("Transferencia de R$ %s desde la cuenta %d", amount, e.CounterAccount)
	}
	return fmt.Sprintf("%s R$ %s", e.Kind, amount)
}
