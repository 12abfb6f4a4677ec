package memory

import (
	"sync"

	"github.com/tu-usuario/banco-ledger/internal/domain"
	"github.com/tu-usuario/banco-ledger/internal/domain/entity"
)

// AccountRepository índice de cuentas en memoria, por número.
// Las mutaciones de saldo/historial las serializa el caso de uso banco;
// el lock interno solo protege la estructura del índice.
type AccountRepository struct {
	mu       sync.RWMutex
	byNumber map[int64]*entity.Account
	ordered  []*entity.Account
}

// NewAccountRepository construye un índice vacío.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{byNumber: make(map[int64]*entity.Account)}
}

// Create indexa la cuenta por número.
func (r *AccountRepository) Create(account *entity.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byNumber[account.Number]; ok {
		// Los números son únicos y nunca se reutilizan; un choque aquí
		// indica un error de asignación en el banco.
		return domain.ErrInvalidInput
	}
	r.byNumber[account.Number] = account
	r.ordered = append(r.ordered, account)
	return nil
}

// GetByNumber busca por número de cuenta.
func (r *AccountRepository) GetByNumber(number int64) (*entity.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	account, ok := r.byNumber[number]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}

// List devuelve las cuentas en orden de creación.
func (r *AccountRepository) List() []*entity.Account {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Account, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// ListByOwner devuelve las cuentas cuyo titular tiene el CPF indicado.
func (r *AccountRepository) ListByOwner(taxID string) []*entity.Account {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Account
	for _, a := range r.ordered {
		if a.Owner != nil && a.Owner.TaxID == taxID {
			out = append(out, a)
		}
	}
	return out
}
