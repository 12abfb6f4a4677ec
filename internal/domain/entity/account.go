package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/banco-ledger/internal/domain"
)

// Tipos de cuenta reconocidos (tokens fijos; se asignan al crear y nunca cambian).
const (
	TypeCorrente = "corrente" // cuenta corriente, admite sobregiro configurable
	TypePoupanca = "poupanca" // cuenta de ahorro, saldo nunca negativo
)

// Tipos de movimiento registrados en el historial.
const (
	HistoryDeposit  = "DEPOSITO"
	HistoryWithdraw = "SAQUE"
	HistoryTransfer = "TRANSFERENCIA"
)

// Direcciones de un movimiento.
const (
	DirectionIn  = "IN"
	DirectionOut = "OUT"
)

// HistoryEntry representa un movimiento del historial de una cuenta.
// El historial es append-only: nunca se reordena ni se poda.
type HistoryEntry struct {
	ID             string
	Kind           string
	Amount         decimal.Decimal // siempre positivo; Direction indica el signo
	Direction      string
	CounterAccount int64 // solo transferencias: número de la cuenta contraparte
	TransactionID  string
	Timestamp      time.Time
}

// Account representa una cuenta bancaria con saldo e historial.
type Account struct {
	Number         int64
	Type           string
	Balance        decimal.Decimal
	OverdraftLimit decimal.Decimal // > 0 solo en corriente; poupanca siempre cero
	Owner          *Client
	History        []HistoryEntry
	CreatedAt      time.Time
}

// withdrawPolicy calcula los fondos disponibles para retiro.
// Tabla de políticas por tipo: la única diferencia de comportamiento entre
// variantes (tolerancia de sobregiro) vive aquí, sin jerarquía de tipos.
type withdrawPolicy func(a *Account) decimal.Decimal

var withdrawPolicies = map[string]withdrawPolicy{
	TypeCorrente: func(a *Account) decimal.Decimal { return a.Balance.Add(a.OverdraftLimit) },
	TypePoupanca: func(a *Account) decimal.Decimal { return a.Balance },
}

// ValidAccountType indica si el token corresponde a un tipo reconocido.
func ValidAccountType(t string) bool {
	_, ok := withdrawPolicies[t]
	return ok
}

// Available devuelve los fondos disponibles para retiro según la política del tipo.
func (a *Account) Available() decimal.Decimal {
	return withdrawPolicies[a.Type](a)
}

// Deposit suma el monto al saldo y registra el movimiento.
// Precondición: amount > 0 (validado en la frontera y en el caso de uso).
func (a *Account) Deposit(amount decimal.Decimal, entry HistoryEntry) {
	a.Balance = a.Balance.Add(amount)
	a.History = append(a.History, entry)
}

// Withdraw resta el monto del saldo si la política del tipo lo permite.
// Si los fondos no alcanzan, no cambia saldo ni historial.
func (a *Account) Withdraw(amount decimal.Decimal, entry HistoryEntry) error {
	if amount.GreaterThan(a.Available()) {
		return domain.ErrInsufficientFunds
	}
	a.Balance = a.Balance.Sub(amount)
	a.History = append(a.History, entry)
	return nil
}

// HistorySnapshot devuelve una copia del historial; releíble y sin mutar el estado.
func (a *Account) HistorySnapshot() []HistoryEntry {
	out := make([]HistoryEntry, len(a.History))
	copy(out, a.History)
	return out
}

// Clone devuelve una copia de la cuenta (historial incluido) para exponer
// fuera del agregado sin entregar punteros internos.
func (a *Account) Clone() *Account {
	cp := *a
	cp.History = a.HistorySnapshot()
	return &cp
}
