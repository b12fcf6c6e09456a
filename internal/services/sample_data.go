package services

import (
	"time"

	"jadebank/internal/dto"
	"jadebank/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// sampleDataGenerator produces realistic-looking accounts, deposit histories
// and loan applications for demos and load tests.
type sampleDataGenerator struct {
	faker *gofakeit.Faker
}

// NewSampleDataGenerator creates a generator with the given seed. The same
// seed reproduces the same data.
func NewSampleDataGenerator(seed uint64) SampleDataGeneratorInterface {
	return &sampleDataGenerator{
		faker: gofakeit.New(seed),
	}
}

// GenerateAccount builds an unsaved account with plausible balances
func (g *sampleDataGenerator) GenerateAccount(userID uuid.UUID, accountType string) *models.Account {
	minBalance := decimal.NewFromInt(1000)
	dailyLimit := decimal.NewFromInt(100000)
	if accountType == models.AccountTypeCurrent {
		minBalance = decimal.NewFromInt(5000)
		dailyLimit = decimal.NewFromInt(500000)
	}

	balance := decimal.NewFromFloat(g.faker.Price(5000, 500000)).Round(2)

	return &models.Account{
		UserID:             userID,
		AccountNumber:      models.GenerateAccountNumber(accountType),
		AccountType:        accountType,
		Balance:            balance,
		MinimumBalance:     minBalance,
		DailyTransferLimit: dailyLimit,
		Currency:           models.CurrencyINR,
		Status:             models.AccountStatusActive,
	}
}

// GenerateDeposits builds a run of completed deposit transactions spread
// across the date range
func (g *sampleDataGenerator) GenerateDeposits(accountID uuid.UUID, count int, startDate, endDate time.Time) []*models.Transaction {
	transactions := make([]*models.Transaction, 0, count)

	for i := 0; i < count; i++ {
		amount := decimal.NewFromFloat(g.faker.Price(100, 50000)).Round(2)
		createdAt := g.faker.DateRange(startDate, endDate)
		now := createdAt

		transactions = append(transactions, &models.Transaction{
			TransactionType: models.TransactionTypeDeposit,
			Status:          models.TransactionStatusCompleted,
			ToAccountID:     &accountID,
			Amount:          amount,
			Currency:        models.CurrencyINR,
			Description:     g.faker.Company() + " payment",
			ReferenceNumber: models.GenerateReferenceNumber(models.TransactionTypeDeposit),
			InitiatedBy:     uuid.New(),
			CreatedAt:       createdAt,
			CompletedAt:     &now,
		})
	}

	return transactions
}

// GenerateLoanApplication builds a loan application request within policy
// bounds for a random loan type
func (g *sampleDataGenerator) GenerateLoanApplication(userID, accountID uuid.UUID) *dto.LoanApplicationRequest {
	loanTypes := []string{
		models.LoanTypePersonal,
		models.LoanTypeHome,
		models.LoanTypeAuto,
		models.LoanTypeEducation,
	}
	loanType := loanTypes[g.faker.Number(0, len(loanTypes)-1)]
	policy := loanPolicies[loanType]

	maxAmount, _ := policy.MaxAmount.Float64()
	principal := decimal.NewFromFloat(g.faker.Price(maxAmount/10, maxAmount)).Round(2)

	return &dto.LoanApplicationRequest{
		UserID:       userID,
		AccountID:    accountID,
		LoanType:     loanType,
		Principal:    principal,
		TenureMonths: g.faker.Number(policy.MinTenure, policy.MaxTenure),
	}
}
