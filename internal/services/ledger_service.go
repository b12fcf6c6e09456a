package services

import (
	"errors"
	"log/slog"

	apperrors "jadebank/internal/errors"

	"jadebank/internal/config"
	"jadebank/internal/dto"
	"jadebank/internal/models"
	"jadebank/internal/repositories"
	"jadebank/internal/validation"

	"github.com/google/uuid"
)

// ledgerService implements AccountLedgerInterface. Every balance change reads
// the account, mutates it in memory and writes back under the version it
// read. A conflict surfaces as ConcurrentModification; the ledger itself
// never retries.
type ledgerService struct {
	accountRepo repositories.AccountRepositoryInterface
	engineCfg   *config.EngineConfig
	validator   *validation.Validator
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
}

// NewLedgerService creates a new account ledger service
func NewLedgerService(
	accountRepo repositories.AccountRepositoryInterface,
	engineCfg *config.EngineConfig,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AccountLedgerInterface {
	return &ledgerService{
		accountRepo: accountRepo,
		engineCfg:   engineCfg,
		validator:   validation.GetValidator(),
		metrics:     metrics,
		logger:      logger,
	}
}

// OpenAccount creates a new account with type-specific policy defaults
func (s *ledgerService) OpenAccount(req *dto.OpenAccountRequest) (*models.Account, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidationFailed, err)
	}

	policy := s.engineCfg.PolicyFor(req.AccountType)

	if req.InitialDeposit.LessThan(policy.MinimumBalance) {
		return nil, apperrors.Ef(apperrors.KindValidationFailed,
			"initial deposit %s is below the minimum balance %s for %s accounts",
			req.InitialDeposit, policy.MinimumBalance, req.AccountType)
	}

	accountNumber, err := s.accountRepo.GenerateUniqueAccountNumber(req.AccountType)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindStoreUnavailable, err)
	}

	currency := req.Currency
	if currency == "" {
		currency = s.engineCfg.Currency
	}

	account := &models.Account{
		UserID:             req.UserID,
		AccountNumber:      accountNumber,
		AccountType:        req.AccountType,
		Balance:            req.InitialDeposit,
		MinimumBalance:     policy.MinimumBalance,
		DailyTransferLimit: policy.DailyTransferLimit,
		Currency:           currency,
		Status:             models.AccountStatusActive,
	}

	if err := s.accountRepo.Create(account); err != nil {
		return nil, apperrors.Wrap(apperrors.KindStoreUnavailable, err)
	}

	s.metrics.IncrementCounter("account.opened", map[string]string{"account_type": req.AccountType})
	s.logger.Info("account opened",
		slog.String("account_id", account.ID.String()),
		slog.String("account_number", account.AccountNumber),
		slog.String("account_type", account.AccountType),
	)

	return account, nil
}

// GetAccount retrieves an account by ID
func (s *ledgerService) GetAccount(accountID uuid.UUID) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.E(apperrors.KindAccountNotFound)
		}
		return nil, apperrors.Wrap(apperrors.KindStoreUnavailable, err)
	}
	return account, nil
}

// GetAccountByNumber retrieves an account by account number
func (s *ledgerService) GetAccountByNumber(accountNumber string) (*models.Account, error) {
	account, err := s.accountRepo.GetByAccountNumber(accountNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.E(apperrors.KindAccountNotFound)
		}
		return nil, apperrors.Wrap(apperrors.KindStoreUnavailable, err)
	}
	return account, nil
}

// GetUserAccounts retrieves all accounts for a user
func (s *ledgerService) GetUserAccounts(userID uuid.UUID) ([]models.Account, error) {
	accounts, err := s.accountRepo.GetByUserID(userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindStoreUnavailable, err)
	}
	return accounts, nil
}

// Debit removes funds from an account. The debit is rejected when the account
// is not active, is a fixed deposit, or would fall below its minimum balance.
func (s *ledgerService) Debit(accountID uuid.UUID, amount models.Money) (*models.Account, error) {
	account, err := s.GetAccount(accountID)
	if err != nil {
		return nil, err
	}

	if account.Currency != amount.Currency {
		return nil, apperrors.Ef(apperrors.KindValidationFailed,
			"currency mismatch: account holds %s, amount is %s", account.Currency, amount.Currency)
	}

	expectedVersion := account.Version
	if err := account.Debit(amount.Amount); err != nil {
		return nil, s.mapAccountError(err)
	}

	if err := s.accountRepo.UpdateWithVersion(account, expectedVersion); err != nil {
		return nil, s.mapUpdateError(err, account.ID)
	}

	return account, nil
}

// Credit adds funds to an account. Credits to active accounts are unbounded.
func (s *ledgerService) Credit(accountID uuid.UUID, amount models.Money) (*models.Account, error) {
	account, err := s.GetAccount(accountID)
	if err != nil {
		return nil, err
	}

	if account.Currency != amount.Currency {
		return nil, apperrors.Ef(apperrors.KindValidationFailed,
			"currency mismatch: account holds %s, amount is %s", account.Currency, amount.Currency)
	}

	expectedVersion := account.Version
	if err := account.Credit(amount.Amount); err != nil {
		return nil, s.mapAccountError(err)
	}

	if err := s.accountRepo.UpdateWithVersion(account, expectedVersion); err != nil {
		return nil, s.mapUpdateError(err, account.ID)
	}

	return account, nil
}

// FreezeAccount locks an account against all balance changes
func (s *ledgerService) FreezeAccount(accountID uuid.UUID) (*models.Account, error) {
	account, err := s.GetAccount(accountID)
	if err != nil {
		return nil, err
	}

	expectedVersion := account.Version
	if err := account.Lock(); err != nil {
		return nil, s.mapAccountError(err)
	}

	if err := s.accountRepo.UpdateWithVersion(account, expectedVersion); err != nil {
		return nil, s.mapUpdateError(err, account.ID)
	}

	s.logger.Warn("account frozen", slog.String("account_id", account.ID.String()))
	return account, nil
}

// UnfreezeAccount returns a locked account to active
func (s *ledgerService) UnfreezeAccount(accountID uuid.UUID) (*models.Account, error) {
	account, err := s.GetAccount(accountID)
	if err != nil {
		return nil, err
	}

	expectedVersion := account.Version
	if err := account.Unlock(); err != nil {
		return nil, s.mapAccountError(err)
	}

	if err := s.accountRepo.UpdateWithVersion(account, expectedVersion); err != nil {
		return nil, s.mapUpdateError(err, account.ID)
	}

	s.logger.Info("account unfrozen", slog.String("account_id", account.ID.String()))
	return account, nil
}

// CloseAccount closes an account. The balance must be zero.
func (s *ledgerService) CloseAccount(accountID uuid.UUID) (*models.Account, error) {
	account, err := s.GetAccount(accountID)
	if err != nil {
		return nil, err
	}

	expectedVersion := account.Version
	if err := account.Close(); err != nil {
		return nil, s.mapAccountError(err)
	}

	if err := s.accountRepo.UpdateWithVersion(account, expectedVersion); err != nil {
		return nil, s.mapUpdateError(err, account.ID)
	}

	s.logger.Info("account closed", slog.String("account_id", account.ID.String()))
	return account, nil
}

func (s *ledgerService) mapAccountError(err error) error {
	switch {
	case errors.Is(err, models.ErrAccountNotActive):
		return apperrors.Wrap(apperrors.KindAccountNotActive, err)
	case errors.Is(err, models.ErrInsufficientFunds):
		return apperrors.Wrap(apperrors.KindInsufficientFunds, err)
	case errors.Is(err, models.ErrUnsupportedOperation):
		return apperrors.Wrap(apperrors.KindUnsupportedOperation, err)
	default:
		return apperrors.Wrap(apperrors.KindValidationFailed, err)
	}
}

func (s *ledgerService) mapUpdateError(err error, accountID uuid.UUID) error {
	if errors.Is(err, repositories.ErrVersionConflict) {
		s.metrics.IncrementCounter("version.conflict", map[string]string{"entity": "account"})
		s.logger.Warn("concurrent account modification",
			slog.String("account_id", accountID.String()),
		)
		return apperrors.Wrap(apperrors.KindConcurrentModification, err)
	}
	if errors.Is(err, repositories.ErrAccountNotFound) {
		return apperrors.E(apperrors.KindAccountNotFound)
	}
	return apperrors.Wrap(apperrors.KindStoreUnavailable, err)
}
