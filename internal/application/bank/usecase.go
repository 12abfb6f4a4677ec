// Package bank implementa el agregado banco: registro de clientes, creación
// de cuentas con numeración secuencial, depósitos, retiros, transferencias,
// extractos y el resumen del dashboard.
package bank

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tu-usuario/banco-ledger/internal/domain"
	"github.com/tu-usuario/banco-ledger/internal/domain/entity"
	"github.com/tu-usuario/banco-ledger/internal/domain/repository"
)

// Config parámetros del banco.
type Config struct {
	Name               string          // nombre de la institución (solo presentación)
	FirstAccountNumber int64           // primer número de cuenta a asignar
	OverdraftLimit     decimal.Decimal // límite de sobregiro para cuentas corrientes
}

// Summary vista agregada del banco, calculada en vivo en cada lectura
// (nunca cacheada): TotalBalance es siempre la suma de los saldos actuales.
type Summary struct {
	BankName      string
	TotalClients  int
	TotalAccounts int
	TotalBalance  decimal.Decimal
	Clients       []*entity.Client  // ordenados por nombre (collation pt-BR, sin distinguir mayúsculas)
	Accounts      []*entity.Account // ordenadas por número
}

// BankUseCase agregado banco. Un único mutex serializa toda operación que
// muta estado o lee agregados: la asignación de números es atómica a nivel
// banco y una transferencia nunca queda a medias.
type BankUseCase struct {
	mu         sync.Mutex
	clients    repository.ClientRepository
	accounts   repository.AccountRepository
	nextNumber int64
	cfg        Config
	collator   *collate.Collator
	now        func() time.Time
}

// NewBankUseCase construye el agregado sobre los repositorios dados.
func NewBankUseCase(clients repository.ClientRepository, accounts repository.AccountRepository, cfg Config) *BankUseCase {
	if cfg.FirstAccountNumber <= 0 {
		cfg.FirstAccountNumber = 1
	}
	return &BankUseCase{
		clients:    clients,
		accounts:   accounts,
		nextNumber: cfg.FirstAccountNumber,
		cfg:        cfg,
		collator:   collate.New(language.BrazilianPortuguese, collate.IgnoreCase),
		now:        time.Now,
	}
}

// AddClient registra un cliente. Valida campos no vacíos y delega al registro
// el rechazo de CPF duplicado (defensa en profundidad: la frontera ya validó).
func (uc *BankUseCase) AddClient(name, taxID string) (*entity.Client, error) {
	name = strings.TrimSpace(name)
	taxID = strings.TrimSpace(taxID)
	if name == "" || taxID == "" {
		return nil, domain.ErrInvalidInput
	}
	client := &entity.Client{
		ID:        uuid.New().String(),
		Name:      name,
		TaxID:     taxID,
		CreatedAt: uc.now(),
	}
	if err := uc.clients.Create(client); err != nil {
		return nil, err
	}
	return client, nil
}

// ClientExists indica si hay un cliente registrado con ese CPF.
func (uc *BankUseCase) ClientExists(taxID string) bool {
	return uc.clients.Exists(taxID)
}

// FindClient busca un cliente por CPF.
func (uc *BankUseCase) FindClient(taxID string) (*entity.Client, error) {
	return uc.clients.GetByTaxID(taxID)
}

// ListClients devuelve los clientes en orden de registro.
func (uc *BankUseCase) ListClients() []*entity.Client {
	return uc.clients.List()
}

// ListClientAccounts devuelve copias de las cuentas del cliente con ese CPF.
func (uc *BankUseCase) ListClientAccounts(taxID string) ([]*entity.Account, error) {
	if _, err := uc.clients.GetByTaxID(taxID); err != nil {
		return nil, err
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	live := uc.accounts.ListByOwner(taxID)
	out := make([]*entity.Account, len(live))
	for i, a := range live {
		out[i] = a.Clone()
	}
	return out, nil
}

// CreateAccount crea una cuenta del tipo indicado para el cliente con ese CPF.
// El tipo se valida antes de consumir un número: un token desconocido no
// avanza la secuencia. El sobregiro configurado aplica solo a corriente.
func (uc *BankUseCase) CreateAccount(taxID, accountType string) (*entity.Account, error) {
	client, err := uc.clients.GetByTaxID(taxID)
	if err != nil {
		return nil, err
	}
	if !entity.ValidAccountType(accountType) {
		return nil, domain.ErrInvalidAccountType
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	overdraft := decimal.Zero
	if accountType == entity.TypeCorrente {
		overdraft = uc.cfg.OverdraftLimit
	}
	account := &entity.Account{
		Number:         uc.nextNumber,
		Type:           accountType,
		Balance:        decimal.Zero,
		OverdraftLimit: overdraft,
		Owner:          client,
		CreatedAt:      uc.now(),
	}
	if err := uc.accounts.Create(account); err != nil {
		return nil, err
	}
	uc.nextNumber++
	return account.Clone(), nil
}

// FindAccount devuelve una copia de la cuenta con ese número.
func (uc *BankUseCase) FindAccount(number int64) (*entity.Account, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	account, err := uc.accounts.GetByNumber(number)
	if err != nil {
		return nil, err
	}
	return account.Clone(), nil
}

// ListAccounts devuelve copias de todas las cuentas en orden de creación.
func (uc *BankUseCase) ListAccounts() []*entity.Account {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.cloneAccounts()
}

// Deposit acredita el monto en la cuenta y registra el movimiento.
func (uc *BankUseCase) Deposit(number int64, amount decimal.Decimal) (*entity.Account, error) {
	if !amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	account, err := uc.accounts.GetByNumber(number)
	if err != nil {
		return nil, err
	}
	account.Deposit(amount, entity.HistoryEntry{
		ID:        uuid.New().String(),
		Kind:      entity.HistoryDeposit,
		Amount:    amount,
		Direction: entity.DirectionIn,
		Timestamp: uc.now(),
	})
	return account.Clone(), nil
}

// Withdraw debita el monto si la política del tipo de cuenta lo permite.
// Con fondos insuficientes la cuenta queda intacta (sin movimiento).
func (uc *BankUseCase) Withdraw(number int64, amount decimal.Decimal) (*entity.Account, error) {
	if !amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	account, err := uc.accounts.GetByNumber(number)
	if err != nil {
		return nil, err
	}
	entry := entity.HistoryEntry{
		ID:        uuid.New().String(),
		Kind:      entity.HistoryWithdraw,
		Amount:    amount,
		Direction: entity.DirectionOut,
		Timestamp: uc.now(),
	}
	if err := account.Withdraw(amount, entry); err != nil {
		return nil, err
	}
	return account.Clone(), nil
}

// Transfer mueve el monto entre dos cuentas como operación atómica dentro del
// mutex del banco: si algún paso falla ningún saldo ni historial cambia.
// Ambos movimientos comparten TransactionID y timestamp.
func (uc *BankUseCase) Transfer(fromNumber, toNumber int64, amount decimal.Decimal) error {
	if !amount.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidAmount
	}
	if fromNumber == toNumber {
		return domain.ErrSameAccount
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()

	from, err := uc.accounts.GetByNumber(fromNumber)
	if err != nil {
		return err
	}
	to, err := uc.accounts.GetByNumber(toNumber)
	if err != nil {
		return err
	}

	now := uc.now()
	txID := uuid.New().String()
	if err := from.Withdraw(amount, entity.HistoryEntry{
		ID:             uuid.New().String(),
		Kind:           entity.HistoryTransfer,
		Amount:         amount,
		Direction:      entity.DirectionOut,
		CounterAccount: toNumber,
		TransactionID:  txID,
		Timestamp:      now,
	}); err != nil {
		return err
	}
	to.Deposit(amount, entity.HistoryEntry{
		ID:             uuid.New().String(),
		Kind:           entity.HistoryTransfer,
		Amount:         amount,
		Direction:      entity.DirectionIn,
		CounterAccount: fromNumber,
		TransactionID:  txID,
		Timestamp:      now,
	})
	return nil
}

// Statement devuelve una copia de la cuenta con su historial completo.
func (uc *BankUseCase) Statement(number int64) (*entity.Account, error) {
	return uc.FindAccount(number)
}

// GetSummary calcula el resumen del dashboard sobre el estado actual.
// TotalBalance se recalcula en cada llamada; los clientes se ordenan por
// nombre con collation pt-BR y las cuentas por número.
func (uc *BankUseCase) GetSummary() Summary {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	clients := uc.clients.List()
	accounts := uc.cloneAccounts()

	total := decimal.Zero
	for _, a := range accounts {
		total = total.Add(a.Balance)
	}
	sort.Slice(clients, func(i, j int) bool {
		return uc.collator.CompareString(clients[i].Name, clients[j].Name) < 0
	})
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Number < accounts[j].Number
	})

	return Summary{
		BankName:      uc.cfg.Name,
		TotalClients:  len(clients),
		TotalAccounts: len(accounts),
		TotalBalance:  total,
		Clients:       clients,
		Accounts:      accounts,
	}
}

// cloneAccounts copia todas las cuentas; llamar con uc.mu tomado.
func (uc *BankUseCase) cloneAccounts() []*entity.Account {
	live := uc.accounts.List()
	out := make([]*entity.Account, len(live))
	for i, a := range live {
		out[i] = a.Clone()
	}
	return out
}
