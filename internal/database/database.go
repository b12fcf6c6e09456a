package database

import (
	"fmt"
	"log"
	"time"

	"jadebank/internal/config"
	"jadebank/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Map driver errors onto gorm sentinels (gorm.ErrDuplicatedKey)
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Account{},
		&models.Transaction{},
		&models.DailyTransferRecord{},
		&models.Loan{},
		&models.LoanEMIPayment{},
		&models.AuditEvent{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) Transaction(fn func(*gorm.DB) error) error {
	return db.DB.Transaction(fn)
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		// Account indexes
		"CREATE INDEX IF NOT EXISTS idx_accounts_user_id ON accounts(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_accounts_status ON accounts(status)",
		"CREATE INDEX IF NOT EXISTS idx_accounts_account_type ON accounts(account_type)",
		"CREATE INDEX IF NOT EXISTS idx_accounts_closed_at ON accounts(closed_at) WHERE closed_at IS NOT NULL",
		// Transaction indexes
		"CREATE INDEX IF NOT EXISTS idx_transactions_from_account_id ON transactions(from_account_id)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_to_account_id ON transactions(to_account_id)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_status ON transactions(status)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_created_at ON transactions(created_at)",
		// Daily transfer record indexes
		"CREATE INDEX IF NOT EXISTS idx_daily_transfer_records_day ON daily_transfer_records(day)",
		// Loan indexes
		"CREATE INDEX IF NOT EXISTS idx_loans_user_id ON loans(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_loans_account_id ON loans(account_id)",
		"CREATE INDEX IF NOT EXISTS idx_loans_status ON loans(status)",
		"CREATE INDEX IF NOT EXISTS idx_loan_emi_payments_due_date ON loan_emi_payments(due_date)",
		"CREATE INDEX IF NOT EXISTS idx_loan_emi_payments_status ON loan_emi_payments(status)",
		// Audit event indexes
		"CREATE INDEX IF NOT EXISTS idx_audit_events_category ON audit_events(category)",
		"CREATE INDEX IF NOT EXISTS idx_audit_events_actor_id ON audit_events(actor_id)",
		"CREATE INDEX IF NOT EXISTS idx_audit_events_subject ON audit_events(subject)",
		"CREATE INDEX IF NOT EXISTS idx_audit_events_created_at ON audit_events(created_at)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			log.Printf("Failed to create index: %s, error: %v", query, err)
		}
	}

	return nil
}

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config) (*gorm.DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	// Migrations run over their own connection, not the GORM pool
	migrationDB, err := OpenForMigrations(cfg.Database.DSN())
	if err != nil {
		return nil, err
	}
	defer migrationDB.Close()

	// Run SQL-based migrations using golang-migrate if enabled
	if err := RunMigrationsIfEnabled(migrationDB); err != nil {
		log.Printf("Warning: migration runner failed: %v", err)
		log.Println("Falling back to GORM AutoMigrate...")

		// Fallback to GORM AutoMigrate
		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		log.Printf("Warning: failed to create some indexes: %v", err)
	}

	log.Println("Database initialized successfully")

	return db.DB, nil
}
