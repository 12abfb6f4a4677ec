package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App  AppConfig
	HTTP HTTPConfig
	Bank BankConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BankConfig parámetros del ledger bancario.
type BankConfig struct {
	Name               string
	FirstAccountNumber int64  // primer número de cuenta asignado
	OverdraftLimit     string // límite de sobregiro para cuentas corrientes; decimal como texto
}

// OverdraftDecimal parsea el límite de sobregiro; un valor inválido o
// negativo cae al default cero (sin tolerancia de sobregiro).
func (c BankConfig) OverdraftDecimal() decimal.Decimal {
	limit, err := decimal.NewFromString(c.OverdraftLimit)
	if err != nil || limit.IsNegative() {
		return decimal.Zero
	}
	return limit
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, BANK_NAME, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "banco-ledger"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Bank: BankConfig{
			Name:               getString(v, "BANK_NAME", "Banco Digital"),
			FirstAccountNumber: int64(getInt(v, "BANK_FIRST_ACCOUNT_NUMBER", 1001)),
			OverdraftLimit:     getString(v, "BANK_OVERDRAFT_LIMIT", "0"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
