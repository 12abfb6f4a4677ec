package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// El handler HTTP los traduce a códigos de estado; ninguno es fatal para el proceso.
var (
	ErrDuplicateClient    = errors.New("ya existe un cliente con ese CPF")
	ErrClientNotFound     = errors.New("cliente no encontrado")
	ErrAccountNotFound    = errors.New("cuenta no encontrada")
	ErrInvalidAccountType = errors.New("tipo de cuenta inválido")
	ErrInsufficientFunds  = errors.New("saldo insuficiente")
	ErrInvalidAmount      = errors.New("el monto debe ser mayor que cero")
	ErrSameAccount        = errors.New("cuenta origen y destino son la misma")
	ErrInvalidInput       = errors.New("entrada inválida")
)
