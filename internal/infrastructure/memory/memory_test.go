package memory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/banco-ledger/internal/domain"
	"github.com/tu-usuario/banco-ledger/internal/domain/entity"
	"github.com/tu-usuario/banco-ledger/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Registro de clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestClientRepository_CreateYLookup(t *testing.T) {
	repo := memory.NewClientRepository()
	ana := &entity.Client{ID: "c1", Name: "Ana", TaxID: "111"}

	require.NoError(t, repo.Create(ana))
	assert.True(t, repo.Exists("111"))
	assert.False(t, repo.Exists("222"))

	found, err := repo.GetByTaxID("111")
	require.NoError(t, err)
	assert.Equal(t, ana, found)

	_, err = repo.GetByTaxID("222")
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestClientRepository_DuplicadoNoMuta(t *testing.T) {
	repo := memory.NewClientRepository()
	require.NoError(t, repo.Create(&entity.Client{ID: "c1", Name: "Ana", TaxID: "111"}))

	err := repo.Create(&entity.Client{ID: "c2", Name: "Impostora", TaxID: "111"})

	assert.ErrorIs(t, err, domain.ErrDuplicateClient)
	require.Len(t, repo.List(), 1)
	found, _ := repo.GetByTaxID("111")
	assert.Equal(t, "Ana", found.Name)
}

func TestClientRepository_ListOrdenDeInsercion(t *testing.T) {
	repo := memory.NewClientRepository()
	require.NoError(t, repo.Create(&entity.Client{ID: "c1", Name: "Zeca", TaxID: "333"}))
	require.NoError(t, repo.Create(&entity.Client{ID: "c2", Name: "Ana", TaxID: "111"}))

	list := repo.List()
	require.Len(t, list, 2)
	assert.Equal(t, "Zeca", list[0].Name, "el registro preserva orden de inserción; ordenar es del caller")
	assert.Equal(t, "Ana", list[1].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Índice de cuentas
// ──────────────────────────────────────────────────────────────────────────────

func account(number int64, owner *entity.Client) *entity.Account {
	return &entity.Account{
		Number:  number,
		Type:    entity.TypePoupanca,
		Balance: decimal.Zero,
		Owner:   owner,
	}
}

func TestAccountRepository_CreateYLookup(t *testing.T) {
	repo := memory.NewAccountRepository()
	ana := &entity.Client{ID: "c1", Name: "Ana", TaxID: "111"}

	require.NoError(t, repo.Create(account(1001, ana)))

	found, err := repo.GetByNumber(1001)
	require.NoError(t, err)
	assert.Equal(t, int64(1001), found.Number)

	_, err = repo.GetByNumber(9999)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestAccountRepository_NumeroDuplicadoRechazado(t *testing.T) {
	repo := memory.NewAccountRepository()
	ana := &entity.Client{ID: "c1", Name: "Ana", TaxID: "111"}
	require.NoError(t, repo.Create(account(1001, ana)))

	err := repo.Create(account(1001, ana))

	assert.Error(t, err)
	assert.Len(t, repo.List(), 1)
}

func TestAccountRepository_ListByOwner(t *testing.T) {
	repo := memory.NewAccountRepository()
	ana := &entity.Client{ID: "c1", Name: "Ana", TaxID: "111"}
	bruno := &entity.Client{ID: "c2", Name: "Bruno", TaxID: "222"}
	require.NoError(t, repo.Create(account(1001, ana)))
	require.NoError(t, repo.Create(account(1002, bruno)))
	require.NoError(t, repo.Create(account(1003, ana)))

	mine := repo.ListByOwner("111")
	require.Len(t, mine, 2)
	assert.Equal(t, int64(1001), mine[0].Number)
	assert.Equal(t, int64(1003), mine[1].Number)
	assert.Empty(t, repo.ListByOwner("999"))
}
