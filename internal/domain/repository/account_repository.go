package repository

import "github.com/tu-usuario/banco-ledger/internal/domain/entity"

// AccountRepository define el puerto del índice de cuentas del banco.
type AccountRepository interface {
	// Create indexa la cuenta; el número ya viene asignado por el banco.
	Create(account *entity.Account) error
	// GetByNumber busca por número; domain.ErrAccountNotFound si no existe.
	GetByNumber(number int64) (*entity.Account, error)
	List() []*entity.Account
	ListByOwner(taxID string) []*entity.Account
}
