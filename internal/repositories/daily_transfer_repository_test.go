package repositories

import (
	"testing"

	"jadebank/internal/database"
	"jadebank/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// DailyTransferRepositorySuite defines the test suite for DailyTransferRepository
type DailyTransferRepositorySuite struct {
	suite.Suite
	db        *database.DB
	repo      DailyTransferRepositoryInterface
	accountID uuid.UUID
}

// SetupTest runs before each test in the suite
func (s *DailyTransferRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewDailyTransferRepository(s.db.DB)
	s.accountID = uuid.New()
}

// TearDownTest runs after each test in the suite
func (s *DailyTransferRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestDailyTransferRepositorySuite runs the test suite
func TestDailyTransferRepositorySuite(t *testing.T) {
	suite.Run(t, new(DailyTransferRepositorySuite))
}

func (s *DailyTransferRepositorySuite) TestGetOrCreateForDay_CreatesZeroedRecord() {
	record, err := s.repo.GetOrCreateForDay(s.accountID, "2026-08-30")
	s.NoError(err)
	s.NotEqual(uuid.Nil, record.ID)
	s.Equal("2026-08-30", record.Day)
	s.True(record.TotalTransferred.IsZero())
	s.Zero(record.TransferCount)
	s.Equal(1, record.Version)
}

func (s *DailyTransferRepositorySuite) TestGetOrCreateForDay_ReturnsExisting() {
	first, err := s.repo.GetOrCreateForDay(s.accountID, "2026-08-30")
	s.NoError(err)

	again, err := s.repo.GetOrCreateForDay(s.accountID, "2026-08-30")
	s.NoError(err)
	s.Equal(first.ID, again.ID)
}

// A second insert for the same (account, day) must surface as
// gorm.ErrDuplicatedKey; the creation race in GetOrCreateForDay re-reads the
// winner's row off that sentinel.
func (s *DailyTransferRepositorySuite) TestGetOrCreateForDay_DuplicateInsertTranslated() {
	_, err := s.repo.GetOrCreateForDay(s.accountID, "2026-08-30")
	s.NoError(err)

	duplicate := &models.DailyTransferRecord{
		AccountID: s.accountID,
		Day:       "2026-08-30",
	}
	err = s.db.Create(duplicate).Error
	s.ErrorIs(err, gorm.ErrDuplicatedKey)
}

func (s *DailyTransferRepositorySuite) TestGetOrCreateForDay_NewDayNewRow() {
	monday, err := s.repo.GetOrCreateForDay(s.accountID, "2026-08-30")
	s.NoError(err)

	monday.Reserve(decimal.NewFromInt(50000))
	s.NoError(s.repo.UpdateWithVersion(monday, 1))

	// The next day starts from zero in a fresh row; the old row is retained
	tuesday, err := s.repo.GetOrCreateForDay(s.accountID, "2026-08-31")
	s.NoError(err)
	s.NotEqual(monday.ID, tuesday.ID)
	s.True(tuesday.TotalTransferred.IsZero())

	retained, err := s.repo.GetOrCreateForDay(s.accountID, "2026-08-30")
	s.NoError(err)
	s.Equal("50000.00", retained.TotalTransferred.StringFixed(2))
}

func (s *DailyTransferRepositorySuite) TestUpdateWithVersion() {
	record, err := s.repo.GetOrCreateForDay(s.accountID, "2026-08-30")
	s.NoError(err)

	expectedVersion := record.Version
	record.Reserve(decimal.NewFromInt(25000))

	s.NoError(s.repo.UpdateWithVersion(record, expectedVersion))

	stored, err := s.repo.GetOrCreateForDay(s.accountID, "2026-08-30")
	s.NoError(err)
	s.Equal("25000.00", stored.TotalTransferred.StringFixed(2))
	s.Equal(1, stored.TransferCount)
	s.Equal(expectedVersion+1, stored.Version)
}

func (s *DailyTransferRepositorySuite) TestUpdateWithVersion_StaleVersion() {
	record, err := s.repo.GetOrCreateForDay(s.accountID, "2026-08-30")
	s.NoError(err)

	expectedVersion := record.Version
	record.Reserve(decimal.NewFromInt(10000))
	s.NoError(s.repo.UpdateWithVersion(record, expectedVersion))

	// A second reservation made from the same stale read must be rejected
	stale := &models.DailyTransferRecord{
		ID:               record.ID,
		TotalTransferred: decimal.NewFromInt(99999),
		TransferCount:    9,
		Version:          expectedVersion + 1,
	}
	err = s.repo.UpdateWithVersion(stale, expectedVersion)
	s.ErrorIs(err, ErrVersionConflict)
}

func (s *DailyTransferRepositorySuite) TestGetHistory() {
	days := []string{"2026-08-28", "2026-08-29", "2026-08-30"}
	for i, day := range days {
		record, err := s.repo.GetOrCreateForDay(s.accountID, day)
		s.NoError(err)
		record.Reserve(decimal.NewFromInt(int64((i + 1) * 1000)))
		s.NoError(s.repo.UpdateWithVersion(record, 1))
	}

	history, err := s.repo.GetHistory(s.accountID, "2026-08-28", "2026-08-29")
	s.NoError(err)
	s.Len(history, 2)
	s.Equal("2026-08-28", history[0].Day)
	s.Equal("2026-08-29", history[1].Day)

	// Another account's records never leak in
	history, err = s.repo.GetHistory(uuid.New(), "2026-08-01", "2026-08-31")
	s.NoError(err)
	s.Empty(history)
}
