package errors

// Kind classifies an engine error so callers (and the excluded transport
// layer) can translate it without string matching.
type Kind string

// Business error kinds. All of these are recoverable by the caller.
const (
	KindInsufficientFunds      Kind = "INSUFFICIENT_FUNDS"
	KindDailyLimitExceeded     Kind = "DAILY_LIMIT_EXCEEDED"
	KindAccountNotActive       Kind = "ACCOUNT_NOT_ACTIVE"
	KindUnsupportedOperation   Kind = "UNSUPPORTED_OPERATION"
	KindConcurrentModification Kind = "CONCURRENT_MODIFICATION"
	KindOutOfOrderPayment      Kind = "OUT_OF_ORDER_PAYMENT"
	KindAmountMismatch         Kind = "AMOUNT_MISMATCH"
	KindLoanNotActive          Kind = "LOAN_NOT_ACTIVE"
)

// Lookup error kinds.
const (
	KindAccountNotFound     Kind = "ACCOUNT_NOT_FOUND"
	KindLoanNotFound        Kind = "LOAN_NOT_FOUND"
	KindTransactionNotFound Kind = "TRANSACTION_NOT_FOUND"
	KindValidationFailed    Kind = "VALIDATION_FAILED"
)

// Infrastructure error kinds, distinct from business rejections. The caller
// retries these; the engine never does.
const (
	KindStoreUnavailable Kind = "STORE_UNAVAILABLE"
)

// kindMessages maps kinds to their default human-readable messages
var kindMessages = map[Kind]string{
	KindInsufficientFunds:      "Insufficient balance to cover the amount and minimum balance",
	KindDailyLimitExceeded:     "Daily transfer limit exceeded for this account",
	KindAccountNotActive:       "Account is not active",
	KindUnsupportedOperation:   "Operation is not supported for this account type",
	KindConcurrentModification: "Record was modified concurrently, retry from a fresh read",
	KindOutOfOrderPayment:      "An earlier installment is still unpaid",
	KindAmountMismatch:         "Payment amount does not match the installment due amount",
	KindLoanNotActive:          "Loan is not active",
	KindAccountNotFound:        "Account not found",
	KindLoanNotFound:           "Loan not found",
	KindTransactionNotFound:    "Transaction not found",
	KindValidationFailed:       "Request validation failed",
	KindStoreUnavailable:       "Persistence store is unavailable",
}

// Message returns the default message for a given kind.
// If the kind is not registered, it returns a generic message.
func Message(kind Kind) string {
	if msg, ok := kindMessages[kind]; ok {
		return msg
	}
	return "An error occurred"
}

// IsBusiness reports whether the kind is a business rejection, as opposed to
// an infrastructure failure.
func IsBusiness(kind Kind) bool {
	switch kind {
	case KindStoreUnavailable:
		return false
	default:
		_, ok := kindMessages[kind]
		return ok
	}
}

// IsValidKind checks if the provided kind is a registered kind
func IsValidKind(kind Kind) bool {
	_, ok := kindMessages[kind]
	return ok
}
