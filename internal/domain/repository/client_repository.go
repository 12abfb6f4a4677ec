package repository

import "github.com/tu-usuario/banco-ledger/internal/domain/entity"

// ClientRepository define el puerto del registro de clientes.
// El registro preserva el orden de inserción; el orden de presentación
// (por nombre) es responsabilidad de la capa que consume.
type ClientRepository interface {
	// Create registra el cliente; domain.ErrDuplicateClient si el CPF ya existe.
	Create(client *entity.Client) error
	// GetByTaxID busca por CPF; domain.ErrClientNotFound si no hay coincidencia.
	GetByTaxID(taxID string) (*entity.Client, error)
	Exists(taxID string) bool
	List() []*entity.Client
}
