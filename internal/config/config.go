package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// PayrollConfig holds the reconciliation tuning values. The local offset and
// the penalty rates used to be scattered as literals across recalculation
// scripts; they are configuration now so passes run months apart agree.
type PayrollConfig struct {
	// LocalOffsetMinutes is the fixed UTC offset used to interpret "HH:MM"
	// schedule times against UTC-stored attendance timestamps. One value for
	// the whole deployment, not per employee.
	LocalOffsetMinutes int

	// LatePenaltyPerMinute is the default deduction per minute of lateness,
	// applied when the employee profile carries no override.
	LatePenaltyPerMinute decimal.Decimal

	// AbsencePenaltyPerDay is the deduction per scheduled working day with no
	// qualifying attendance. Zero disables absence penalties.
	AbsencePenaltyPerDay decimal.Decimal

	// DefaultBaseSalary is used when an employee profile has no base salary.
	DefaultBaseSalary decimal.Decimal

	// ReconcileWorkers bounds the worker pool of the bulk reconciliation pass.
	ReconcileWorkers int
}

func Load() (*Config, error) {
	// Missing .env is fine, values may come from the environment directly.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "balapan-payroll"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	// Payroll configuration
	localOffset, err := strconv.Atoi(getEnv("PAYROLL_LOCAL_OFFSET_MINUTES", "300"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_LOCAL_OFFSET_MINUTES: %w", err)
	}

	latePenalty, err := decimal.NewFromString(getEnv("PAYROLL_LATE_PENALTY_PER_MINUTE", "13"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_LATE_PENALTY_PER_MINUTE: %w", err)
	}

	absencePenalty, err := decimal.NewFromString(getEnv("PAYROLL_ABSENCE_PENALTY_PER_DAY", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_ABSENCE_PENALTY_PER_DAY: %w", err)
	}

	defaultBaseSalary, err := decimal.NewFromString(getEnv("PAYROLL_DEFAULT_BASE_SALARY", "70000"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_DEFAULT_BASE_SALARY: %w", err)
	}

	workers, err := strconv.Atoi(getEnv("PAYROLL_RECONCILE_WORKERS", "4"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_RECONCILE_WORKERS: %w", err)
	}

	config.Payroll = PayrollConfig{
		LocalOffsetMinutes:   localOffset,
		LatePenaltyPerMinute: latePenalty,
		AbsencePenaltyPerDay: absencePenalty,
		DefaultBaseSalary:    defaultBaseSalary,
		ReconcileWorkers:     workers,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Payroll.ReconcileWorkers < 1 {
		return fmt.Errorf("PAYROLL_RECONCILE_WORKERS must be at least 1")
	}
	if c.Payroll.LatePenaltyPerMinute.IsNegative() {
		return fmt.Errorf("PAYROLL_LATE_PENALTY_PER_MINUTE must not be negative")
	}
	if c.Payroll.AbsencePenaltyPerDay.IsNegative() {
		return fmt.Errorf("PAYROLL_ABSENCE_PENALTY_PER_DAY must not be negative")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
