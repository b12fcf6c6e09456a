package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	Engine   EngineConfig
	Audit    AuditConfig
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// AccountPolicy is the per-account-type policy the ledger enforces.
type AccountPolicy struct {
	MinimumBalance     decimal.Decimal
	DailyTransferLimit decimal.Decimal
}

// EngineConfig holds the ledger engine's policy knobs. The bank timezone
// fixes daily-limit day boundaries regardless of where the caller is.
type EngineConfig struct {
	BankTimezone string
	Location     *time.Location
	Currency     string
	Policies     map[string]AccountPolicy
}

// AuditConfig sizes the audit recorder's buffer and retry behaviour.
type AuditConfig struct {
	BufferSize     int
	FlushBatchSize int
	FlushInterval  time.Duration
	RetryPerSecond int
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	config := &Config{
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "ledger_user"),
			Password:        getEnv("DB_PASSWORD", "ledger_password"),
			Name:            getEnv("DB_NAME", "ledger_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Engine: EngineConfig{
			BankTimezone: getEnv("BANK_TIMEZONE", "Asia/Kolkata"),
			Currency:     getEnv("BANK_CURRENCY", "INR"),
			Policies: map[string]AccountPolicy{
				"savings": {
					MinimumBalance:     getDecimalEnv("SAVINGS_MIN_BALANCE", "1000.00"),
					DailyTransferLimit: getDecimalEnv("SAVINGS_DAILY_LIMIT", "100000.00"),
				},
				"current": {
					MinimumBalance:     getDecimalEnv("CURRENT_MIN_BALANCE", "5000.00"),
					DailyTransferLimit: getDecimalEnv("CURRENT_DAILY_LIMIT", "500000.00"),
				},
				"fixed_deposit": {
					MinimumBalance:     decimal.Zero,
					DailyTransferLimit: decimal.Zero,
				},
			},
		},
		Audit: AuditConfig{
			BufferSize:     getIntEnv("AUDIT_BUFFER_SIZE", 1024),
			FlushBatchSize: getIntEnv("AUDIT_FLUSH_BATCH_SIZE", 64),
			FlushInterval:  getDurationEnv("AUDIT_FLUSH_INTERVAL", time.Second),
			RetryPerSecond: getIntEnv("AUDIT_RETRY_PER_SECOND", 2),
		},
	}

	loc, err := time.LoadLocation(config.Engine.BankTimezone)
	if err != nil {
		log.Fatalf("invalid BANK_TIMEZONE %q: %v", config.Engine.BankTimezone, err)
	}
	config.Engine.Location = loc

	return config
}

// PolicyFor returns the policy for an account type, or a zero policy for
// unknown types.
func (c *EngineConfig) PolicyFor(accountType string) AccountPolicy {
	if p, ok := c.Policies[accountType]; ok {
		return p
	}
	return AccountPolicy{MinimumBalance: decimal.Zero, DailyTransferLimit: decimal.Zero}
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getDecimalEnv(key, defaultValue string) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if d, err := decimal.NewFromString(value); err == nil {
			return d
		}
	}
	return decimal.RequireFromString(defaultValue)
}
