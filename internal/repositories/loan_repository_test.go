package repositories

import (
	"testing"
	"time"

	"jadebank/internal/database"
	"jadebank/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// LoanRepositorySuite defines the test suite for LoanRepository
type LoanRepositorySuite struct {
	suite.Suite
	db      *database.DB
	repo    LoanRepositoryInterface
	account *models.Account
}

// SetupTest runs before each test in the suite
func (s *LoanRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewLoanRepository(s.db.DB)
	s.account = database.CreateTestAccount(s.T(), s.db, models.AccountTypeSavings, "50000")
}

// TearDownTest runs after each test in the suite
func (s *LoanRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestLoanRepositorySuite runs the test suite
func TestLoanRepositorySuite(t *testing.T) {
	suite.Run(t, new(LoanRepositorySuite))
}

func (s *LoanRepositorySuite) newLoan() *models.Loan {
	return &models.Loan{
		UserID:               s.account.UserID,
		AccountID:            s.account.ID,
		LoanType:             models.LoanTypePersonal,
		Principal:            decimal.NewFromInt(500000),
		AnnualRate:           decimal.RequireFromString("12.5"),
		TenureMonths:         36,
		EMIAmount:            decimal.RequireFromString("16726.81"),
		TotalInterest:        decimal.RequireFromString("102165.16"),
		TotalPayable:         decimal.RequireFromString("602165.16"),
		OutstandingPrincipal: decimal.NewFromInt(500000),
	}
}

func (s *LoanRepositorySuite) createSchedule(loanID uuid.UUID, installments int) []models.LoanEMIPayment {
	schedule := make([]models.LoanEMIPayment, 0, installments)
	for i := 1; i <= installments; i++ {
		schedule = append(schedule, models.LoanEMIPayment{
			LoanID:            loanID,
			InstallmentNumber: i,
			DueAmount:         decimal.RequireFromString("16726.81"),
			PrincipalComp:     decimal.RequireFromString("11518.48"),
			InterestComp:      decimal.RequireFromString("5208.33"),
			DueDate:           time.Now().AddDate(0, i, 0),
			Status:            models.InstallmentStatusDue,
		})
	}
	s.Require().NoError(s.repo.CreateSchedule(schedule))
	return schedule
}

func (s *LoanRepositorySuite) TestCreate() {
	loan := s.newLoan()

	err := s.repo.Create(loan)
	s.NoError(err)
	s.NotEqual(uuid.Nil, loan.ID)
	s.Equal(models.LoanStatusPendingReview, loan.Status)
	s.Equal(1, loan.Version)
}

func (s *LoanRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrLoanNotFound)
}

func (s *LoanRepositorySuite) TestGetByUserID() {
	loan := s.newLoan()
	s.NoError(s.repo.Create(loan))

	loans, err := s.repo.GetByUserID(s.account.UserID)
	s.NoError(err)
	s.Len(loans, 1)

	loans, err = s.repo.GetByUserID(uuid.New())
	s.NoError(err)
	s.Empty(loans)
}

func (s *LoanRepositorySuite) TestUpdateWithVersion() {
	loan := s.newLoan()
	s.NoError(s.repo.Create(loan))

	expectedVersion := loan.Version
	s.NoError(loan.Approve(uuid.New()))
	loan.Version++

	s.NoError(s.repo.UpdateWithVersion(loan, expectedVersion))

	stored, err := s.repo.GetByID(loan.ID)
	s.NoError(err)
	s.Equal(models.LoanStatusApproved, stored.Status)
	s.NotNil(stored.ApprovedAt)
	s.Equal(expectedVersion+1, stored.Version)
}

func (s *LoanRepositorySuite) TestUpdateWithVersion_StaleVersion() {
	loan := s.newLoan()
	s.NoError(s.repo.Create(loan))

	expectedVersion := loan.Version
	s.NoError(loan.Approve(uuid.New()))
	loan.Version++
	s.NoError(s.repo.UpdateWithVersion(loan, expectedVersion))

	err := s.repo.UpdateWithVersion(loan, expectedVersion)
	s.ErrorIs(err, ErrVersionConflict)
}

func (s *LoanRepositorySuite) TestUpdateWithVersion_MissingLoan() {
	loan := s.newLoan()
	loan.ID = uuid.New()
	loan.Status = models.LoanStatusApproved

	err := s.repo.UpdateWithVersion(loan, 1)
	s.ErrorIs(err, ErrLoanNotFound)
}

func (s *LoanRepositorySuite) TestCreateAndGetSchedule() {
	loan := s.newLoan()
	s.NoError(s.repo.Create(loan))

	s.createSchedule(loan.ID, 3)

	schedule, err := s.repo.GetSchedule(loan.ID)
	s.NoError(err)
	s.Len(schedule, 3)
	for i, installment := range schedule {
		s.Equal(i+1, installment.InstallmentNumber)
	}
}

func (s *LoanRepositorySuite) TestGetInstallment() {
	loan := s.newLoan()
	s.NoError(s.repo.Create(loan))
	s.createSchedule(loan.ID, 3)

	installment, err := s.repo.GetInstallment(loan.ID, 2)
	s.NoError(err)
	s.Equal(2, installment.InstallmentNumber)

	_, err = s.repo.GetInstallment(loan.ID, 99)
	s.ErrorIs(err, ErrInstallmentNotFound)
}

func (s *LoanRepositorySuite) TestGetFirstPayable_StrictOrder() {
	loan := s.newLoan()
	s.NoError(s.repo.Create(loan))
	s.createSchedule(loan.ID, 3)

	first, err := s.repo.GetFirstPayable(loan.ID)
	s.NoError(err)
	s.Equal(1, first.InstallmentNumber)

	// Settling the first promotes the second, even when it is overdue
	first.MarkPaid(first.DueAmount, uuid.New())
	s.NoError(s.repo.UpdateInstallment(first))

	second, err := s.repo.GetFirstPayable(loan.ID)
	s.NoError(err)
	s.Equal(2, second.InstallmentNumber)

	second.Status = models.InstallmentStatusOverdue
	s.NoError(s.repo.UpdateInstallment(second))

	payable, err := s.repo.GetFirstPayable(loan.ID)
	s.NoError(err)
	s.Equal(2, payable.InstallmentNumber)
}

func (s *LoanRepositorySuite) TestGetFirstPayable_AllSettled() {
	loan := s.newLoan()
	s.NoError(s.repo.Create(loan))
	schedule := s.createSchedule(loan.ID, 2)

	for i := range schedule {
		schedule[i].MarkPaid(schedule[i].DueAmount, uuid.New())
		s.NoError(s.repo.UpdateInstallment(&schedule[i]))
	}

	_, err := s.repo.GetFirstPayable(loan.ID)
	s.ErrorIs(err, ErrInstallmentNotFound)
}

func (s *LoanRepositorySuite) TestUpdateInstallment_Missing() {
	installment := &models.LoanEMIPayment{ID: uuid.New(), Status: models.InstallmentStatusPaid}
	err := s.repo.UpdateInstallment(installment)
	s.ErrorIs(err, ErrInstallmentNotFound)
}

func (s *LoanRepositorySuite) TestGetDueBefore() {
	loan := s.newLoan()
	s.NoError(s.repo.Create(loan))

	pastDue := []models.LoanEMIPayment{
		{
			LoanID:            loan.ID,
			InstallmentNumber: 1,
			DueAmount:         decimal.NewFromInt(1000),
			PrincipalComp:     decimal.NewFromInt(900),
			InterestComp:      decimal.NewFromInt(100),
			DueDate:           time.Now().AddDate(0, 0, -10),
			Status:            models.InstallmentStatusDue,
		},
		{
			LoanID:            loan.ID,
			InstallmentNumber: 2,
			DueAmount:         decimal.NewFromInt(1000),
			PrincipalComp:     decimal.NewFromInt(900),
			InterestComp:      decimal.NewFromInt(100),
			DueDate:           time.Now().AddDate(0, 1, 0),
			Status:            models.InstallmentStatusDue,
		},
	}
	s.NoError(s.repo.CreateSchedule(pastDue))

	overdue, err := s.repo.GetDueBefore(time.Now(), 100)
	s.NoError(err)
	s.Len(overdue, 1)
	s.Equal(1, overdue[0].InstallmentNumber)
}
