package services

import (
	"errors"
	"log/slog"
	"time"

	apperrors "jadebank/internal/errors"

	"jadebank/internal/config"
	"jadebank/internal/models"
	"jadebank/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// dailyLimitService implements DailyLimitTrackerInterface. Day boundaries are
// computed in the bank's timezone; each day gets its own tracking row and old
// rows are kept for history. Reservations go through the version gate on the
// row, so two concurrent transfers cannot both slip under the limit.
type dailyLimitService struct {
	dailyRepo repositories.DailyTransferRepositoryInterface
	engineCfg *config.EngineConfig
	metrics   MetricsRecorderInterface
	logger    *slog.Logger
}

// NewDailyLimitService creates a new daily limit tracker
func NewDailyLimitService(
	dailyRepo repositories.DailyTransferRepositoryInterface,
	engineCfg *config.EngineConfig,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) DailyLimitTrackerInterface {
	return &dailyLimitService{
		dailyRepo: dailyRepo,
		engineCfg: engineCfg,
		metrics:   metrics,
		logger:    logger,
	}
}

// CheckAndReserve atomically reserves amount against the account's daily
// limit for the day containing at. The reservation is guarded by the row
// version: if another transfer updated the row between read and write, the
// write fails and the whole check re-runs against fresh state.
func (s *dailyLimitService) CheckAndReserve(accountID uuid.UUID, amount, limit decimal.Decimal, at time.Time) (*models.DailyTransferRecord, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.Ef(apperrors.KindValidationFailed, "reservation amount must be positive")
	}

	day := models.DayOf(at, s.engineCfg.Location)

	record, err := s.dailyRepo.GetOrCreateForDay(accountID, day)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindStoreUnavailable, err)
	}

	if record.WouldExceed(amount, limit) {
		s.metrics.IncrementCounter("transaction.daily_limit_rejected", map[string]string{"operation": "transfer"})
		s.logger.Info("daily transfer limit exceeded",
			slog.String("account_id", accountID.String()),
			slog.String("day", day),
			slog.String("used", record.TotalTransferred.String()),
			slog.String("requested", amount.String()),
			slog.String("limit", limit.String()),
		)
		return nil, apperrors.Ef(apperrors.KindDailyLimitExceeded,
			"daily transfer limit exceeded: used %s of %s, requested %s",
			record.TotalTransferred, limit, amount)
	}

	expectedVersion := record.Version
	record.Reserve(amount)

	if err := s.dailyRepo.UpdateWithVersion(record, expectedVersion); err != nil {
		if errors.Is(err, repositories.ErrVersionConflict) {
			s.metrics.IncrementCounter("version.conflict", map[string]string{"entity": "daily_transfer_record"})
			return nil, apperrors.Wrap(apperrors.KindConcurrentModification, err)
		}
		return nil, apperrors.Wrap(apperrors.KindStoreUnavailable, err)
	}

	return record, nil
}

// Release returns a previously reserved amount after a rolled-back transfer.
// The release is attributed to the same day the reservation was made on.
func (s *dailyLimitService) Release(accountID uuid.UUID, amount decimal.Decimal, at time.Time) error {
	day := models.DayOf(at, s.engineCfg.Location)

	record, err := s.dailyRepo.GetOrCreateForDay(accountID, day)
	if err != nil {
		return apperrors.Wrap(apperrors.KindStoreUnavailable, err)
	}

	expectedVersion := record.Version
	record.Release(amount)

	if err := s.dailyRepo.UpdateWithVersion(record, expectedVersion); err != nil {
		if errors.Is(err, repositories.ErrVersionConflict) {
			s.metrics.IncrementCounter("version.conflict", map[string]string{"entity": "daily_transfer_record"})
			return apperrors.Wrap(apperrors.KindConcurrentModification, err)
		}
		return apperrors.Wrap(apperrors.KindStoreUnavailable, err)
	}

	return nil
}

// UsageFor reports how much of the day containing at has been consumed
func (s *dailyLimitService) UsageFor(accountID uuid.UUID, at time.Time) (decimal.Decimal, error) {
	day := models.DayOf(at, s.engineCfg.Location)

	record, err := s.dailyRepo.GetOrCreateForDay(accountID, day)
	if err != nil {
		return decimal.Zero, apperrors.Wrap(apperrors.KindStoreUnavailable, err)
	}
	return record.TotalTransferred, nil
}

// History returns the retained daily records between two instants inclusive
func (s *dailyLimitService) History(accountID uuid.UUID, from, to time.Time) ([]models.DailyTransferRecord, error) {
	fromDay := models.DayOf(from, s.engineCfg.Location)
	toDay := models.DayOf(to, s.engineCfg.Location)

	records, err := s.dailyRepo.GetHistory(accountID, fromDay, toDay)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindStoreUnavailable, err)
	}
	return records, nil
}
