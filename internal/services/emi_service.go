package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	apperrors "jadebank/internal/errors"

	"jadebank/internal/dto"
	"jadebank/internal/models"
	"jadebank/internal/repositories"
	"jadebank/internal/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoanPolicy bounds what each loan type may borrow and for how long.
type LoanPolicy struct {
	MaxAmount    decimal.Decimal
	MinTenure    int
	MaxTenure    int
	InterestRate decimal.Decimal
}

// loanPolicies is the per-type lending policy table.
var loanPolicies = map[string]LoanPolicy{
	models.LoanTypePersonal: {
		MaxAmount:    decimal.RequireFromString("500000.00"),
		MinTenure:    6,
		MaxTenure:    60,
		InterestRate: decimal.RequireFromString("12.5"),
	},
	models.LoanTypeHome: {
		MaxAmount:    decimal.RequireFromString("5000000.00"),
		MinTenure:    60,
		MaxTenure:    360,
		InterestRate: decimal.RequireFromString("8.5"),
	},
	models.LoanTypeAuto: {
		MaxAmount:    decimal.RequireFromString("1000000.00"),
		MinTenure:    12,
		MaxTenure:    84,
		InterestRate: decimal.RequireFromString("10.5"),
	},
	models.LoanTypeEducation: {
		MaxAmount:    decimal.RequireFromString("2000000.00"),
		MinTenure:    12,
		MaxTenure:    120,
		InterestRate: decimal.RequireFromString("9.5"),
	},
}

// PolicyForLoanType returns the lending policy for a loan type.
func PolicyForLoanType(loanType string) (LoanPolicy, bool) {
	p, ok := loanPolicies[loanType]
	return p, ok
}

var twelveHundred = decimal.NewFromInt(1200)

// emiService implements EMIEngineInterface.
type emiService struct {
	loanRepo  repositories.LoanRepositoryInterface
	txRepo    repositories.TransactionRepositoryInterface
	ledger    AccountLedgerInterface
	audit     AuditRecorderInterface
	validator *validation.Validator
	metrics   MetricsRecorderInterface
	logger    *slog.Logger
}

// NewEMIService creates a new EMI engine
func NewEMIService(
	loanRepo repositories.LoanRepositoryInterface,
	txRepo repositories.TransactionRepositoryInterface,
	ledger AccountLedgerInterface,
	audit AuditRecorderInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) EMIEngineInterface {
	return &emiService{
		loanRepo:  loanRepo,
		txRepo:    txRepo,
		ledger:    ledger,
		audit:     audit,
		validator: validation.GetValidator(),
		metrics:   metrics,
		logger:    logger,
	}
}

// CalculateEMI computes the fixed monthly installment using the standard
// reducing-balance formula: EMI = P*r*(1+r)^n / ((1+r)^n - 1) where r is the
// monthly rate. The EMI rounds half-up to 2 places. Reference: 500000 at
// 12.5% over 36 months gives 16726.81.
func (s *emiService) CalculateEMI(principal, annualRate decimal.Decimal, tenureMonths int) (*EMIBreakdown, error) {
	if principal.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.Ef(apperrors.KindValidationFailed, "principal must be positive")
	}
	if annualRate.LessThan(decimal.Zero) {
		return nil, apperrors.Ef(apperrors.KindValidationFailed, "annual rate cannot be negative")
	}
	if tenureMonths < 1 {
		return nil, apperrors.Ef(apperrors.KindValidationFailed, "tenure must be at least one month")
	}

	n := decimal.NewFromInt(int64(tenureMonths))

	var emi decimal.Decimal
	if annualRate.IsZero() {
		emi = principal.Div(n).Round(2)
	} else {
		r := annualRate.Div(twelveHundred)
		factor := compoundFactor(r, tenureMonths)
		emi = principal.Mul(r).Mul(factor).Div(factor.Sub(decimal.NewFromInt(1))).Round(2)
	}

	totalPayable := emi.Mul(n)
	return &EMIBreakdown{
		EMIAmount:     emi,
		TotalInterest: totalPayable.Sub(principal),
		TotalPayable:  totalPayable,
	}, nil
}

// compoundFactor computes (1+r)^n by repeated multiplication, which keeps
// the arithmetic exact in decimal instead of going through a float power.
func compoundFactor(r decimal.Decimal, n int) decimal.Decimal {
	base := decimal.NewFromInt(1).Add(r)
	factor := decimal.NewFromInt(1)
	for i := 0; i < n; i++ {
		factor = factor.Mul(base)
	}
	return factor
}

// GenerateSchedule produces the amortization schedule. Interest on each
// installment is the monthly rate applied to the remaining balance, rounded
// to the bank's scale; the last installment clears the exact remaining
// balance so rounding drift never accumulates.
func (s *emiService) GenerateSchedule(principal, annualRate decimal.Decimal, tenureMonths int, firstDueDate time.Time) ([]models.LoanEMIPayment, error) {
	breakdown, err := s.CalculateEMI(principal, annualRate, tenureMonths)
	if err != nil {
		return nil, err
	}

	r := decimal.Zero
	if !annualRate.IsZero() {
		r = annualRate.Div(twelveHundred)
	}

	schedule := make([]models.LoanEMIPayment, 0, tenureMonths)
	balance := principal

	for i := 1; i <= tenureMonths; i++ {
		interest := balance.Mul(r).RoundBank(2)

		var principalComp, due decimal.Decimal
		if i < tenureMonths {
			principalComp = breakdown.EMIAmount.Sub(interest)
			due = breakdown.EMIAmount
		} else {
			principalComp = balance
			due = principalComp.Add(interest)
		}

		schedule = append(schedule, models.LoanEMIPayment{
			InstallmentNumber: i,
			DueAmount:         due,
			PrincipalComp:     principalComp,
			InterestComp:      interest,
			DueDate:           firstDueDate.AddDate(0, i-1, 0),
			Status:            models.InstallmentStatusDue,
		})

		balance = balance.Sub(principalComp)
	}

	return schedule, nil
}

// ApplyForLoan files a loan application. The application lands in
// pending_review; nothing is disbursed until approval.
func (s *emiService) ApplyForLoan(req *dto.LoanApplicationRequest) (*models.Loan, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidationFailed, err)
	}

	policy, ok := PolicyForLoanType(req.LoanType)
	if !ok {
		return nil, apperrors.Ef(apperrors.KindValidationFailed, "unknown loan type %q", req.LoanType)
	}
	if req.Principal.GreaterThan(policy.MaxAmount) {
		return nil, apperrors.Ef(apperrors.KindValidationFailed,
			"loan amount %s exceeds maximum %s for %s loans", req.Principal, policy.MaxAmount, req.LoanType)
	}
	if req.TenureMonths < policy.MinTenure || req.TenureMonths > policy.MaxTenure {
		return nil, apperrors.Ef(apperrors.KindValidationFailed,
			"tenure must be between %d and %d months for %s loans", policy.MinTenure, policy.MaxTenure, req.LoanType)
	}

	account, err := s.ledger.GetAccount(req.AccountID)
	if err != nil {
		return nil, err
	}
	if !account.IsActive() {
		return nil, apperrors.Ef(apperrors.KindAccountNotActive, "disbursal account is not active")
	}

	breakdown, err := s.CalculateEMI(req.Principal, policy.InterestRate, req.TenureMonths)
	if err != nil {
		return nil, err
	}

	loan := &models.Loan{
		UserID:               req.UserID,
		AccountID:            req.AccountID,
		LoanType:             req.LoanType,
		Principal:            req.Principal,
		AnnualRate:           policy.InterestRate,
		TenureMonths:         req.TenureMonths,
		EMIAmount:            breakdown.EMIAmount,
		TotalInterest:        breakdown.TotalInterest,
		TotalPayable:         breakdown.TotalPayable,
		OutstandingPrincipal: req.Principal,
		Status:               models.LoanStatusPendingReview,
	}

	if err := s.loanRepo.Create(loan); err != nil {
		return nil, apperrors.Wrap(apperrors.KindStoreUnavailable, err)
	}

	s.metrics.IncrementCounter("loan.applied", nil)
	s.recordLoanAudit(loan, "loan_application", models.AuditOutcomeSuccess, loan.UserID, nil)
	s.logger.Info("loan application filed",
		slog.String("loan_id", loan.ID.String()),
		slog.String("loan_type", loan.LoanType),
		slog.String("principal", loan.Principal.String()),
		slog.String("emi", loan.EMIAmount.String()),
	)

	return loan, nil
}

// ApproveLoan moves a pending application to approved
func (s *emiService) ApproveLoan(loanID, approvedBy uuid.UUID) (*models.Loan, error) {
	loan, err := s.getLoan(loanID)
	if err != nil {
		return nil, err
	}

	expectedVersion := loan.Version
	if err := loan.Approve(approvedBy); err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidationFailed, err)
	}
	loan.Version++

	if err := s.updateLoan(loan, expectedVersion); err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("loan.approved", nil)
	s.recordLoanAudit(loan, "loan_approval", models.AuditOutcomeSuccess, approvedBy, nil)
	return loan, nil
}

// RejectLoan declines a pending application with a reason
func (s *emiService) RejectLoan(loanID uuid.UUID, reason string) (*models.Loan, error) {
	loan, err := s.getLoan(loanID)
	if err != nil {
		return nil, err
	}

	expectedVersion := loan.Version
	if err := loan.Reject(reason); err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidationFailed, err)
	}
	loan.Version++

	if err := s.updateLoan(loan, expectedVersion); err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("loan.rejected", nil)
	s.recordLoanAudit(loan, "loan_rejection", models.AuditOutcomeSuccess, loan.UserID, map[string]interface{}{"reason": reason})
	return loan, nil
}

// DisburseLoan activates an approved loan: the principal is credited to the
// disbursal account, the EMI schedule is generated with the first installment
// due one month out, and the loan goes active.
func (s *emiService) DisburseLoan(ctx context.Context, loanID uuid.UUID) (*models.Loan, error) {
	loan, err := s.getLoan(loanID)
	if err != nil {
		return nil, err
	}

	account, err := s.ledger.GetAccount(loan.AccountID)
	if err != nil {
		return nil, err
	}
	if !account.IsActive() {
		return nil, apperrors.Ef(apperrors.KindAccountNotActive, "disbursal account is not active")
	}

	expectedVersion := loan.Version
	if err := loan.Activate(); err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidationFailed, err)
	}
	loan.Version++

	disbursedAt := *loan.DisbursedAt
	schedule, err := s.GenerateSchedule(loan.Principal, loan.AnnualRate, loan.TenureMonths, disbursedAt.AddDate(0, 1, 0))
	if err != nil {
		return nil, err
	}
	for i := range schedule {
		schedule[i].LoanID = loan.ID
	}

	// Persist the schedule and the activation before any money moves. A
	// failure on either leaves the loan approved with nothing credited, so
	// a retry cannot disburse twice. The credit runs last: crediting an
	// active account does not fail.
	if err := s.loanRepo.CreateSchedule(schedule); err != nil {
		return nil, apperrors.Wrap(apperrors.KindStoreUnavailable, err)
	}

	if err := s.updateLoan(loan, expectedVersion); err != nil {
		return nil, err
	}

	account, err = s.ledger.Credit(loan.AccountID, models.INR(loan.Principal))
	if err != nil {
		s.logger.Error("disbursement credit failed after activation",
			slog.String("loan_id", loan.ID.String()),
			slog.String("account_id", loan.AccountID.String()),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	balanceBefore := account.Balance.Sub(loan.Principal)
	tx := &models.Transaction{
		TransactionType: models.TransactionTypeDisbursement,
		Status:          models.TransactionStatusCompleted,
		ToAccountID:     &loan.AccountID,
		Amount:          loan.Principal,
		Currency:        account.Currency,
		Description:     "loan disbursement",
		InitiatedBy:     loan.UserID,
		ToBalanceBefore: &balanceBefore,
		ToBalanceAfter:  &account.Balance,
	}
	if err := s.txRepo.Create(tx); err != nil {
		s.logger.Error("failed to persist disbursement transaction",
			slog.String("loan_id", loan.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	s.metrics.IncrementCounter("loan.disbursed", nil)
	s.recordLoanAudit(loan, "loan_disbursement", models.AuditOutcomeSuccess, loan.UserID, map[string]interface{}{
		"transaction_id": tx.ID.String(),
		"principal":      loan.Principal.String(),
	})
	s.logger.Info("loan disbursed",
		slog.String("loan_id", loan.ID.String()),
		slog.String("account_id", loan.AccountID.String()),
		slog.String("principal", loan.Principal.String()),
		slog.Int("installments", len(schedule)),
	)

	return loan, nil
}

// PayEMI applies one installment payment. Installments settle strictly in
// order and only at the exact due amount; partial payments and prepayments
// are rejected. Settling the final installment closes the loan.
func (s *emiService) PayEMI(ctx context.Context, req *dto.EMIPaymentRequest) (*models.Transaction, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidationFailed, err)
	}

	loan, err := s.getLoan(req.LoanID)
	if err != nil {
		return s.rejectPayment(nil, nil, req, err)
	}
	if !loan.IsActive() {
		return s.rejectPayment(loan, nil, req, apperrors.Ef(apperrors.KindLoanNotActive, "loan is %s", loan.Status))
	}

	installment, err := s.loanRepo.GetFirstPayable(req.LoanID)
	if err != nil {
		if errors.Is(err, repositories.ErrInstallmentNotFound) {
			return s.rejectPayment(loan, nil, req, apperrors.Ef(apperrors.KindValidationFailed, "no payable installment on this loan"))
		}
		return nil, apperrors.Wrap(apperrors.KindStoreUnavailable, err)
	}

	if req.InstallmentNumber != 0 && req.InstallmentNumber != installment.InstallmentNumber {
		return s.rejectPayment(loan, installment, req, apperrors.Ef(apperrors.KindOutOfOrderPayment,
			"installment %d cannot be paid before installment %d",
			req.InstallmentNumber, installment.InstallmentNumber))
	}

	if !req.Amount.Equal(installment.DueAmount) {
		return s.rejectPayment(loan, installment, req, apperrors.Ef(apperrors.KindAmountMismatch,
			"installment %d requires exactly %s, got %s",
			installment.InstallmentNumber, installment.DueAmount, req.Amount))
	}

	account, err := s.ledger.Debit(loan.AccountID, models.INR(req.Amount))
	if err != nil {
		return s.rejectPayment(loan, installment, req, err)
	}

	balanceBefore := account.Balance.Add(req.Amount)
	tx := &models.Transaction{
		TransactionType:   models.TransactionTypeEMIPayment,
		Status:            models.TransactionStatusCompleted,
		FromAccountID:     &loan.AccountID,
		Amount:            req.Amount,
		Currency:          account.Currency,
		Description:       "EMI payment",
		InitiatedBy:       req.InitiatedBy,
		FromBalanceBefore: &balanceBefore,
		FromBalanceAfter:  &account.Balance,
	}
	if err := s.txRepo.Create(tx); err != nil {
		s.logger.Error("failed to persist EMI payment transaction",
			slog.String("loan_id", loan.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	installment.MarkPaid(req.Amount, tx.ID)
	if err := s.loanRepo.UpdateInstallment(installment); err != nil {
		return nil, apperrors.Wrap(apperrors.KindStoreUnavailable, err)
	}

	if err := s.settlePrincipal(loan, installment.PrincipalComp); err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("emi.payment", map[string]string{"status": "completed"})
	s.recordLoanAudit(loan, "emi_payment", models.AuditOutcomeSuccess, req.InitiatedBy, map[string]interface{}{
		"installment_number": installment.InstallmentNumber,
		"amount":             req.Amount.String(),
		"transaction_id":     tx.ID.String(),
	})

	return tx, nil
}

// WaiveInstallment forgives the next payable installment. Waived
// installments count as settled for ordering purposes.
func (s *emiService) WaiveInstallment(loanID uuid.UUID, installmentNumber int, waivedBy uuid.UUID) (*models.LoanEMIPayment, error) {
	loan, err := s.getLoan(loanID)
	if err != nil {
		return nil, err
	}
	if !loan.IsActive() {
		return s.rejectWaiver(loan, installmentNumber, waivedBy,
			apperrors.Ef(apperrors.KindLoanNotActive, "loan is %s", loan.Status))
	}

	installment, err := s.loanRepo.GetFirstPayable(loanID)
	if err != nil {
		if errors.Is(err, repositories.ErrInstallmentNotFound) {
			return s.rejectWaiver(loan, installmentNumber, waivedBy,
				apperrors.Ef(apperrors.KindValidationFailed, "no payable installment on this loan"))
		}
		return nil, apperrors.Wrap(apperrors.KindStoreUnavailable, err)
	}
	if installmentNumber != installment.InstallmentNumber {
		return s.rejectWaiver(loan, installmentNumber, waivedBy,
			apperrors.Ef(apperrors.KindOutOfOrderPayment,
				"installment %d cannot be waived before installment %d",
				installmentNumber, installment.InstallmentNumber))
	}

	installment.Status = models.InstallmentStatusWaived
	if err := s.loanRepo.UpdateInstallment(installment); err != nil {
		return nil, apperrors.Wrap(apperrors.KindStoreUnavailable, err)
	}

	if err := s.settlePrincipal(loan, installment.PrincipalComp); err != nil {
		return nil, err
	}

	s.recordLoanAudit(loan, "installment_waiver", models.AuditOutcomeSuccess, waivedBy, map[string]interface{}{
		"installment_number": installment.InstallmentNumber,
		"due_amount":         installment.DueAmount.String(),
	})

	return installment, nil
}

// GetLoan retrieves a loan by ID
func (s *emiService) GetLoan(loanID uuid.UUID) (*models.Loan, error) {
	return s.getLoan(loanID)
}

// GetUserLoans retrieves all loans for a user
func (s *emiService) GetUserLoans(userID uuid.UUID) ([]models.Loan, error) {
	loans, err := s.loanRepo.GetByUserID(userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindStoreUnavailable, err)
	}
	return loans, nil
}

// GetSchedule retrieves the EMI schedule for a loan
func (s *emiService) GetSchedule(loanID uuid.UUID) ([]models.LoanEMIPayment, error) {
	if _, err := s.getLoan(loanID); err != nil {
		return nil, err
	}
	schedule, err := s.loanRepo.GetSchedule(loanID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindStoreUnavailable, err)
	}
	return schedule, nil
}

// MarkOverdueInstallments flips due installments past their due date to
// overdue and returns how many were flipped. Meant to run from a daily job.
func (s *emiService) MarkOverdueInstallments(asOf time.Time) (int, error) {
	installments, err := s.loanRepo.GetDueBefore(asOf, 500)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.KindStoreUnavailable, err)
	}

	flipped := 0
	for i := range installments {
		if installments[i].MarkOverdue(asOf) {
			if err := s.loanRepo.UpdateInstallment(&installments[i]); err != nil {
				s.logger.Error("failed to mark installment overdue",
					slog.String("installment_id", installments[i].ID.String()),
					slog.String("error", err.Error()),
				)
				continue
			}
			flipped++
		}
	}

	return flipped, nil
}

// settlePrincipal reduces the outstanding principal after a settled
// installment and closes the loan once nothing remains payable.
func (s *emiService) settlePrincipal(loan *models.Loan, principalComp decimal.Decimal) error {
	expectedVersion := loan.Version
	loan.OutstandingPrincipal = loan.OutstandingPrincipal.Sub(principalComp)
	if loan.OutstandingPrincipal.LessThan(decimal.Zero) {
		loan.OutstandingPrincipal = decimal.Zero
	}
	loan.Version++

	if _, err := s.loanRepo.GetFirstPayable(loan.ID); err != nil {
		if errors.Is(err, repositories.ErrInstallmentNotFound) {
			if err := loan.CloseLoan(); err != nil {
				return apperrors.Wrap(apperrors.KindValidationFailed, err)
			}
			s.metrics.IncrementCounter("loan.closed", nil)
			s.logger.Info("loan fully repaid", slog.String("loan_id", loan.ID.String()))
		} else {
			return apperrors.Wrap(apperrors.KindStoreUnavailable, err)
		}
	}

	return s.updateLoan(loan, expectedVersion)
}

// rejectPayment records the failed EMI attempt and returns the business
// error. Rejections that never resolved a loan or an installment still leave
// a failed transaction row and a denied audit event.
func (s *emiService) rejectPayment(loan *models.Loan, installment *models.LoanEMIPayment, req *dto.EMIPaymentRequest, cause error) (*models.Transaction, error) {
	kind := apperrors.KindOf(cause)

	tx := &models.Transaction{
		TransactionType: models.TransactionTypeEMIPayment,
		Status:          models.TransactionStatusFailed,
		Amount:          req.Amount,
		Currency:        models.CurrencyINR,
		Description:     "EMI payment",
		InitiatedBy:     req.InitiatedBy,
		FailureReason:   cause.Error(),
	}
	// A transaction row must reference an account; an unresolved loan leaves
	// only the audit event.
	if loan != nil {
		tx.FromAccountID = &loan.AccountID
		if err := s.txRepo.Create(tx); err != nil {
			s.logger.Error("failed to persist rejected EMI payment",
				slog.String("loan_id", req.LoanID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	s.metrics.IncrementCounter("emi.payment", map[string]string{"status": "failed"})

	event := &models.AuditEvent{
		Category: models.AuditCategoryLoan,
		ActorID:  req.InitiatedBy,
		Subject:  req.LoanID.String(),
		Action:   "emi_payment",
		Outcome:  models.AuditOutcomeDenied,
		Severity: models.AuditSeverityWarning,
	}
	event.SetDetail("amount", req.Amount.String())
	event.SetDetail("reason", string(kind))
	if loan != nil {
		event.SetDetail("loan_type", loan.LoanType)
		event.SetDetail("loan_status", loan.Status)
	}
	if installment != nil {
		event.SetDetail("installment_number", installment.InstallmentNumber)
	}
	s.audit.Record(event)

	return tx, cause
}

// rejectWaiver records the denied waiver attempt and returns the business
// error. Waivers move no money, so the rejection leaves only an audit event.
func (s *emiService) rejectWaiver(loan *models.Loan, installmentNumber int, waivedBy uuid.UUID, cause error) (*models.LoanEMIPayment, error) {
	s.recordLoanAudit(loan, "installment_waiver", models.AuditOutcomeDenied, waivedBy, map[string]interface{}{
		"installment_number": installmentNumber,
		"reason":             string(apperrors.KindOf(cause)),
	})
	return nil, cause
}

func (s *emiService) getLoan(loanID uuid.UUID) (*models.Loan, error) {
	loan, err := s.loanRepo.GetByID(loanID)
	if err != nil {
		if errors.Is(err, repositories.ErrLoanNotFound) {
			return nil, apperrors.E(apperrors.KindLoanNotFound)
		}
		return nil, apperrors.Wrap(apperrors.KindStoreUnavailable, err)
	}
	return loan, nil
}

func (s *emiService) updateLoan(loan *models.Loan, expectedVersion int) error {
	if err := s.loanRepo.UpdateWithVersion(loan, expectedVersion); err != nil {
		if errors.Is(err, repositories.ErrVersionConflict) {
			s.metrics.IncrementCounter("version.conflict", map[string]string{"entity": "loan"})
			return apperrors.Wrap(apperrors.KindConcurrentModification, err)
		}
		if errors.Is(err, repositories.ErrLoanNotFound) {
			return apperrors.E(apperrors.KindLoanNotFound)
		}
		return apperrors.Wrap(apperrors.KindStoreUnavailable, err)
	}
	return nil
}

func (s *emiService) recordLoanAudit(loan *models.Loan, action, outcome string, actorID uuid.UUID, detail map[string]interface{}) {
	event := &models.AuditEvent{
		Category: models.AuditCategoryLoan,
		ActorID:  actorID,
		Subject:  loan.ID.String(),
		Action:   action,
		Outcome:  outcome,
	}
	if outcome != models.AuditOutcomeSuccess {
		event.Severity = models.AuditSeverityWarning
	}
	event.SetDetail("loan_type", loan.LoanType)
	event.SetDetail("loan_status", loan.Status)
	for k, v := range detail {
		event.SetDetail(k, v)
	}
	s.audit.Record(event)
}
