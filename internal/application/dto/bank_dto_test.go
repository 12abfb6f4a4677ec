package dto_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/banco-ledger/internal/application/dto"
	"github.com/tu-usuario/banco-ledger/internal/domain"
	"github.com/tu-usuario/banco-ledger/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Parsing de entrada (frontera: texto → tipos del núcleo)
// ──────────────────────────────────────────────────────────────────────────────

func TestParseAmount_Valido(t *testing.T) {
	amount, err := dto.ParseAmount("100.50")
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.RequireFromString("100.50")))

	amount, err = dto.ParseAmount("  25 ")
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.NewFromInt(25)))
}

func TestParseAmount_Invalido(t *testing.T) {
	cases := []string{"", "abc", "10,50", "0", "-5", "   "}
	for _, in := range cases {
		_, err := dto.ParseAmount(in)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount, "entrada %q", in)
	}
}

func TestParseAccountNumber(t *testing.T) {
	n, err := dto.ParseAccountNumber(" 1001 ")
	require.NoError(t, err)
	assert.Equal(t, int64(1001), n)

	for _, in := range []string{"", "abc", "10.5", "1001x"} {
		_, err := dto.ParseAccountNumber(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "entrada %q", in)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Formateo de salida (presentación: dos decimales, dd/mm/aaaa hh:mm)
// ──────────────────────────────────────────────────────────────────────────────

func testAccount() *entity.Account {
	ts := time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC)
	return &entity.Account{
		Number:  1001,
		Type:    entity.TypePoupanca,
		Balance: decimal.RequireFromString("60"),
		Owner:   &entity.Client{Name: "Ana", TaxID: "111"},
		History: []entity.HistoryEntry{
			{Kind: entity.HistoryDeposit, Amount: decimal.NewFromInt(100), Direction: entity.DirectionIn, Timestamp: ts},
			{Kind: entity.HistoryWithdraw, Amount: decimal.NewFromInt(40), Direction: entity.DirectionOut, Timestamp: ts.Add(time.Hour)},
			{Kind: entity.HistoryTransfer, Amount: decimal.NewFromInt(15), Direction: entity.DirectionIn, CounterAccount: 1002, Timestamp: ts.Add(2 * time.Hour)},
		},
	}
}

func TestNewAccountResponse_SaldoConDosDecimales(t *testing.T) {
	out := dto.NewAccountResponse(testAccount())
	assert.Equal(t, "60.00", out.Balance)
	assert.Equal(t, "Ana", out.Owner)
	assert.Equal(t, entity.TypePoupanca, out.Type)
}

func TestNewStatementResponse_FormatoDelExtracto(t *testing.T) {
	out := dto.NewStatementResponse(testAccount())

	assert.Equal(t, int64(1001), out.Number)
	assert.Equal(t, "60.00", out.Balance)
	require.Len(t, out.History, 3)

	assert.Equal(t, "01/09/2026 14:30", out.History[0].Date)
	assert.Equal(t, "Depósito de R$ 100.00", out.History[0].Description)
	assert.Equal(t, "Retiro de R$ 40.00", out.History[1].Description)
	assert.Equal(t, "Transferencia de R$ 15.00 desde la cuenta 1002", out.History[2].Description)
}

func TestNewStatementResponse_PreservaOrdenCronologico(t *testing.T) {
	out := dto.NewStatementResponse(testAccount())
	assert.Equal(t, "01/09/2026 14:30", out.History[0].Date)
	assert.Equal(t, "01/09/2026 15:30", out.History[1].Date)
	assert.Equal(t, "01/09/2026 16:30", out.History[2].Date)
}
