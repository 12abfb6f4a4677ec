// Package memory implementa los puertos de repositorio sobre estado en memoria.
// Todo el estado vive durante el proceso; no hay persistencia durable.
package memory

import (
	"sync"

	"github.com/tu-usuario/banco-ledger/internal/domain"
	"github.com/tu-usuario/banco-ledger/internal/domain/entity"
)

// ClientRepository registro de clientes en memoria, indexado por CPF.
// Mantiene además el orden de inserción para los listados.
type ClientRepository struct {
	mu      sync.RWMutex
	byTaxID map[string]*entity.Client
	ordered []*entity.Client
}

// NewClientRepository construye un registro vacío.
func NewClientRepository() *ClientRepository {
	return &ClientRepository{byTaxID: make(map[string]*entity.Client)}
}

// Create registra el cliente; rechaza CPF duplicado sin modificar el registro.
func (r *ClientRepository) Create(client *entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byTaxID[client.TaxID]; ok {
		return domain.ErrDuplicateClient
	}
	r.byTaxID[client.TaxID] = client
	r.ordered = append(r.ordered, client)
	return nil
}

// GetByTaxID busca por CPF.
func (r *ClientRepository) GetByTaxID(taxID string) (*entity.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	client, ok := r.byTaxID[taxID]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	return client, nil
}

// Exists indica si el CPF ya está registrado.
func (r *ClientRepository) Exists(taxID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byTaxID[taxID]
	return ok
}

// List devuelve los clientes en orden de inserción.
func (r *ClientRepository) List() []*entity.Client {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Client, len(r.ordered))
	copy(out, r.ordered)
	return out
}
