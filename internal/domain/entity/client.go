package entity

import "time"

// Client representa un cliente del banco.
// Inmutable después del registro; el CPF es único en todo el registro.
type Client struct {
	ID        string
	Name      string
	TaxID     string // CPF (Brasil); identificador opaco, sin validación de dígito
	CreatedAt time.Time
}
