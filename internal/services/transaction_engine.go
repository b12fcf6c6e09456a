package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	apperrors "jadebank/internal/errors"

	"jadebank/internal/config"
	"jadebank/internal/dto"
	"jadebank/internal/models"
	"jadebank/internal/repositories"
	"jadebank/internal/validation"

	"github.com/google/uuid"
)

// transactionEngine implements TransactionEngineInterface. A transfer runs in
// two phases: the reserve phase debits the source and reserves daily-limit
// headroom, the commit phase credits the destination. Any reserve-phase
// failure rolls back what was already taken, so no money is ever created or
// destroyed, only moved. Every attempt, rejected ones included, leaves one
// transaction row and one audit event.
type transactionEngine struct {
	ledger    AccountLedgerInterface
	limits    DailyLimitTrackerInterface
	txRepo    repositories.TransactionRepositoryInterface
	audit     AuditRecorderInterface
	fraud     FraudScorerInterface
	engineCfg *config.EngineConfig
	validator *validation.Validator
	metrics   MetricsRecorderInterface
	logger    *slog.Logger
}

// NewTransactionEngine creates a new transaction engine
func NewTransactionEngine(
	ledger AccountLedgerInterface,
	limits DailyLimitTrackerInterface,
	txRepo repositories.TransactionRepositoryInterface,
	audit AuditRecorderInterface,
	fraud FraudScorerInterface,
	engineCfg *config.EngineConfig,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) TransactionEngineInterface {
	if fraud == nil {
		fraud = NewNoopFraudScorer()
	}
	return &transactionEngine{
		ledger:    ledger,
		limits:    limits,
		txRepo:    txRepo,
		audit:     audit,
		fraud:     fraud,
		engineCfg: engineCfg,
		validator: validation.GetValidator(),
		metrics:   metrics,
		logger:    logger,
	}
}

// Transfer moves funds between two accounts.
func (e *transactionEngine) Transfer(ctx context.Context, req *dto.TransferRequest) (*models.Transaction, error) {
	started := time.Now()

	tx := &models.Transaction{
		ID:              uuid.New(),
		TransactionType: models.TransactionTypeTransfer,
		FromAccountID:   &req.FromAccountID,
		ToAccountID:     &req.ToAccountID,
		Amount:          req.Amount,
		Currency:        e.engineCfg.Currency,
		Description:     req.Description,
		InitiatedBy:     req.InitiatedBy,
	}

	if err := e.validator.Struct(req); err != nil {
		return e.reject(tx, apperrors.Wrap(apperrors.KindValidationFailed, err))
	}
	if req.FromAccountID == req.ToAccountID {
		return e.reject(tx, apperrors.Ef(apperrors.KindValidationFailed, "cannot transfer to the same account"))
	}
	if !req.Amount.IsPositive() {
		return e.reject(tx, apperrors.Ef(apperrors.KindValidationFailed, "transfer amount must be positive"))
	}

	source, err := e.ledger.GetAccount(req.FromAccountID)
	if err != nil {
		return e.reject(tx, err)
	}
	destination, err := e.ledger.GetAccount(req.ToAccountID)
	if err != nil {
		return e.reject(tx, err)
	}
	if !destination.IsActive() {
		return e.reject(tx, apperrors.Ef(apperrors.KindAccountNotActive, "destination account is not active"))
	}

	amount := models.NewMoney(req.Amount, source.Currency)
	tx.Currency = source.Currency
	tx.FromBalanceBefore = &source.Balance
	tx.ToBalanceBefore = &destination.Balance

	// Reserve phase: take the funds first, then the daily headroom.
	debited, err := e.ledger.Debit(req.FromAccountID, amount)
	if err != nil {
		return e.reject(tx, err)
	}

	if _, err := e.limits.CheckAndReserve(req.FromAccountID, req.Amount, source.DailyTransferLimit, started); err != nil {
		e.refund(req.FromAccountID, amount, "daily limit reservation failed")
		return e.reject(tx, err)
	}

	// Commit phase: credit never fails for an active account; if the
	// destination changed state since the check, undo both reservations.
	credited, err := e.ledger.Credit(req.ToAccountID, amount)
	if err != nil {
		e.refund(req.FromAccountID, amount, "destination credit failed")
		if relErr := e.limits.Release(req.FromAccountID, req.Amount, started); relErr != nil {
			e.logger.Error("failed to release daily limit reservation",
				slog.String("account_id", req.FromAccountID.String()),
				slog.String("error", relErr.Error()),
			)
		}
		return e.reject(tx, err)
	}

	tx.FromBalanceAfter = &debited.Balance
	tx.ToBalanceAfter = &credited.Balance
	return e.complete(tx, started)
}

// Deposit credits external funds into an account. Deposits do not consume
// daily transfer limit.
func (e *transactionEngine) Deposit(ctx context.Context, req *dto.DepositRequest) (*models.Transaction, error) {
	started := time.Now()

	tx := &models.Transaction{
		ID:              uuid.New(),
		TransactionType: models.TransactionTypeDeposit,
		ToAccountID:     &req.ToAccountID,
		Amount:          req.Amount,
		Currency:        e.engineCfg.Currency,
		Description:     req.Description,
		InitiatedBy:     req.InitiatedBy,
	}

	if err := e.validator.Struct(req); err != nil {
		return e.reject(tx, apperrors.Wrap(apperrors.KindValidationFailed, err))
	}
	if !req.Amount.IsPositive() {
		return e.reject(tx, apperrors.Ef(apperrors.KindValidationFailed, "deposit amount must be positive"))
	}

	account, err := e.ledger.GetAccount(req.ToAccountID)
	if err != nil {
		return e.reject(tx, err)
	}
	tx.Currency = account.Currency
	tx.ToBalanceBefore = &account.Balance

	credited, err := e.ledger.Credit(req.ToAccountID, models.NewMoney(req.Amount, account.Currency))
	if err != nil {
		return e.reject(tx, err)
	}

	tx.ToBalanceAfter = &credited.Balance
	return e.complete(tx, started)
}

// Withdraw debits funds out of an account. Withdrawals observe the minimum
// balance but not the daily transfer limit.
func (e *transactionEngine) Withdraw(ctx context.Context, req *dto.WithdrawRequest) (*models.Transaction, error) {
	started := time.Now()

	tx := &models.Transaction{
		ID:              uuid.New(),
		TransactionType: models.TransactionTypeWithdrawal,
		FromAccountID:   &req.FromAccountID,
		Amount:          req.Amount,
		Currency:        e.engineCfg.Currency,
		Description:     req.Description,
		InitiatedBy:     req.InitiatedBy,
	}

	if err := e.validator.Struct(req); err != nil {
		return e.reject(tx, apperrors.Wrap(apperrors.KindValidationFailed, err))
	}
	if !req.Amount.IsPositive() {
		return e.reject(tx, apperrors.Ef(apperrors.KindValidationFailed, "withdrawal amount must be positive"))
	}

	account, err := e.ledger.GetAccount(req.FromAccountID)
	if err != nil {
		return e.reject(tx, err)
	}
	tx.Currency = account.Currency
	tx.FromBalanceBefore = &account.Balance

	debited, err := e.ledger.Debit(req.FromAccountID, models.NewMoney(req.Amount, account.Currency))
	if err != nil {
		return e.reject(tx, err)
	}

	tx.FromBalanceAfter = &debited.Balance
	return e.complete(tx, started)
}

// GetTransaction retrieves a transaction by ID
func (e *transactionEngine) GetTransaction(id uuid.UUID) (*models.Transaction, error) {
	tx, err := e.txRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, apperrors.E(apperrors.KindTransactionNotFound)
		}
		return nil, apperrors.Wrap(apperrors.KindStoreUnavailable, err)
	}
	return tx, nil
}

// GetTransactionByReference retrieves a transaction by reference number
func (e *transactionEngine) GetTransactionByReference(reference string) (*models.Transaction, error) {
	tx, err := e.txRepo.GetByReference(reference)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, apperrors.E(apperrors.KindTransactionNotFound)
		}
		return nil, apperrors.Wrap(apperrors.KindStoreUnavailable, err)
	}
	return tx, nil
}

// GetAccountTransactions retrieves an account's transaction history
func (e *transactionEngine) GetAccountTransactions(accountID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error) {
	txs, total, err := e.txRepo.GetByAccountID(accountID, offset, limit)
	if err != nil {
		return nil, 0, apperrors.Wrap(apperrors.KindStoreUnavailable, err)
	}
	return txs, total, nil
}

// refund credits a debited amount back to the source account after a failed
// reserve phase. Credit to an active account cannot fail; anything else is
// logged loudly because it means a held balance.
func (e *transactionEngine) refund(accountID uuid.UUID, amount models.Money, cause string) {
	if _, err := e.ledger.Credit(accountID, amount); err != nil {
		e.logger.Error("rollback credit failed, balance held",
			slog.String("account_id", accountID.String()),
			slog.String("amount", amount.String()),
			slog.String("cause", cause),
			slog.String("error", err.Error()),
		)
	}
}

// complete persists the transaction with status completed and emits the
// success audit event.
func (e *transactionEngine) complete(tx *models.Transaction, started time.Time) (*models.Transaction, error) {
	e.scoreFraud(tx)

	if err := tx.Complete(); err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidationFailed, err)
	}

	if err := e.txRepo.Create(tx); err != nil {
		// The money has moved; a failed record write is an operational
		// incident, not a rollback trigger.
		e.logger.Error("failed to persist completed transaction",
			slog.String("transaction_id", tx.ID.String()),
			slog.String("reference", tx.ReferenceNumber),
			slog.String("error", err.Error()),
		)
		return nil, apperrors.Wrap(apperrors.KindStoreUnavailable, err)
	}

	e.metrics.IncrementCounter("transaction.completed", map[string]string{"operation": tx.TransactionType})
	e.metrics.RecordProcessingTime("transaction.processing", time.Since(started))
	amountFloat, _ := tx.Amount.Float64()
	e.metrics.RecordGauge("transfer_amount", amountFloat, nil)

	e.recordAudit(tx, models.AuditOutcomeSuccess, "")

	e.logger.Info("transaction completed",
		slog.String("transaction_id", tx.ID.String()),
		slog.String("type", tx.TransactionType),
		slog.String("reference", tx.ReferenceNumber),
		slog.String("amount", tx.Amount.String()),
		slog.Int64("duration_ms", time.Since(started).Milliseconds()),
	)

	return tx, nil
}

// reject persists the transaction with status failed and emits the denied
// audit event. The business error is returned to the caller unchanged.
func (e *transactionEngine) reject(tx *models.Transaction, cause error) (*models.Transaction, error) {
	kind := apperrors.KindOf(cause)
	reason := cause.Error()

	if err := tx.Fail(reason); err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidationFailed, err)
	}

	if err := e.txRepo.Create(tx); err != nil {
		e.logger.Error("failed to persist rejected transaction",
			slog.String("transaction_id", tx.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	e.metrics.IncrementCounter("transaction.failed", map[string]string{"operation": tx.TransactionType})
	e.recordAudit(tx, models.AuditOutcomeDenied, string(kind))

	e.logger.Info("transaction rejected",
		slog.String("transaction_id", tx.ID.String()),
		slog.String("type", tx.TransactionType),
		slog.String("reason_kind", string(kind)),
		slog.String("reason", reason),
	)

	return tx, cause
}

func (e *transactionEngine) scoreFraud(tx *models.Transaction) {
	score, flagged, reason := e.fraud.Score(tx)
	tx.FraudScore = &score
	tx.IsFlagged = flagged
	tx.FlaggedReason = reason
}

func (e *transactionEngine) recordAudit(tx *models.Transaction, outcome, reasonKind string) {
	event := &models.AuditEvent{
		Category: models.AuditCategoryTransaction,
		ActorID:  tx.InitiatedBy,
		Subject:  tx.ReferenceNumber,
		Action:   tx.TransactionType,
		Outcome:  outcome,
	}
	if outcome != models.AuditOutcomeSuccess {
		event.Severity = models.AuditSeverityWarning
	}
	event.SetDetail("transaction_id", tx.ID.String())
	event.SetDetail("amount", tx.Amount.String())
	if tx.FromAccountID != nil {
		event.SetDetail("from_account_id", tx.FromAccountID.String())
	}
	if tx.ToAccountID != nil {
		event.SetDetail("to_account_id", tx.ToAccountID.String())
	}
	if reasonKind != "" {
		event.SetDetail("reason", reasonKind)
	}
	e.audit.Record(event)
}
