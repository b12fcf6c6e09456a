package repositories

import (
	"testing"
	"time"

	"jadebank/internal/database"
	"jadebank/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// AuditEventRepositorySuite defines the test suite for AuditEventRepository
type AuditEventRepositorySuite struct {
	suite.Suite
	db      *database.DB
	repo    AuditEventRepositoryInterface
	actorID uuid.UUID
}

// SetupTest runs before each test in the suite
func (s *AuditEventRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAuditEventRepository(s.db.DB)
	s.actorID = uuid.New()
}

// TearDownTest runs after each test in the suite
func (s *AuditEventRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestAuditEventRepositorySuite runs the test suite
func TestAuditEventRepositorySuite(t *testing.T) {
	suite.Run(t, new(AuditEventRepositorySuite))
}

func (s *AuditEventRepositorySuite) newEvent(subject, outcome string) models.AuditEvent {
	return models.AuditEvent{
		Category: models.AuditCategoryTransaction,
		ActorID:  s.actorID,
		Subject:  subject,
		Action:   "transfer",
		Outcome:  outcome,
	}
}

func (s *AuditEventRepositorySuite) TestCreate() {
	event := s.newEvent("TXN-abc", models.AuditOutcomeSuccess)
	event.SetDetail("amount", "500.00")

	err := s.repo.Create(&event)
	s.NoError(err)
	s.NotEqual(uuid.Nil, event.ID)
	s.Equal(models.AuditSeverityInfo, event.Severity)
	s.NotZero(event.CreatedAt)
}

func (s *AuditEventRepositorySuite) TestCreateBatch() {
	events := []models.AuditEvent{
		s.newEvent("TXN-1", models.AuditOutcomeSuccess),
		s.newEvent("TXN-2", models.AuditOutcomeDenied),
		s.newEvent("TXN-3", models.AuditOutcomeSuccess),
	}

	s.NoError(s.repo.CreateBatch(events))

	_, total, err := s.repo.GetByActor(s.actorID, 0, 10)
	s.NoError(err)
	s.Equal(int64(3), total)
}

func (s *AuditEventRepositorySuite) TestCreateBatch_Empty() {
	s.NoError(s.repo.CreateBatch(nil))
}

func (s *AuditEventRepositorySuite) TestGetBySubject() {
	s.NoError(s.repo.Create(&models.AuditEvent{
		Category: models.AuditCategoryTransaction,
		ActorID:  s.actorID,
		Subject:  "TXN-shared",
		Action:   "transfer",
		Outcome:  models.AuditOutcomeSuccess,
	}))
	s.NoError(s.repo.Create(&models.AuditEvent{
		Category: models.AuditCategoryTransaction,
		ActorID:  uuid.New(),
		Subject:  "TXN-other",
		Action:   "transfer",
		Outcome:  models.AuditOutcomeDenied,
	}))

	events, total, err := s.repo.GetBySubject("TXN-shared", 0, 10)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Len(events, 1)
	s.Equal("TXN-shared", events[0].Subject)
}

func (s *AuditEventRepositorySuite) TestGetByTimeRange() {
	old := s.newEvent("TXN-old", models.AuditOutcomeSuccess)
	old.CreatedAt = time.Now().Add(-72 * time.Hour)
	s.NoError(s.repo.Create(&old))

	recent := s.newEvent("TXN-recent", models.AuditOutcomeSuccess)
	s.NoError(s.repo.Create(&recent))

	events, total, err := s.repo.GetByTimeRange(
		time.Now().Add(-time.Hour), time.Now().Add(time.Hour), 0, 10)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Equal("TXN-recent", events[0].Subject)
}

func (s *AuditEventRepositorySuite) TestDetailRoundTrip() {
	event := s.newEvent("TXN-detail", models.AuditOutcomeDenied)
	event.SetDetail("reason", "daily transfer limit exceeded")
	event.SetDetail("requested", "40000.01")
	s.NoError(s.repo.Create(&event))

	events, _, err := s.repo.GetBySubject("TXN-detail", 0, 1)
	s.NoError(err)
	s.Require().Len(events, 1)
	s.Equal("daily transfer limit exceeded", events[0].Detail["reason"])
	s.Equal("40000.01", events[0].Detail["requested"])
}
