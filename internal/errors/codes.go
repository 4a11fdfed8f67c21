package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
	ValidationInvalidMonth  ErrorCode = "VALIDATION_006"
	ValidationInvalidAmount ErrorCode = "VALIDATION_007"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound    ErrorCode = "ACCOUNT_001"
	AccountInvalidType ErrorCode = "ACCOUNT_002"
	AccountNameEmpty   ErrorCode = "ACCOUNT_003"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound      ErrorCode = "CATEGORY_001"
	CategoryNameTaken     ErrorCode = "CATEGORY_002"
	CategoryInvalidType   ErrorCode = "CATEGORY_003"
	CategoryGroupNotFound ErrorCode = "CATEGORY_004"
	CategoryInvalidDueDay ErrorCode = "CATEGORY_005"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound      ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount ErrorCode = "TRANSACTION_002"
	TransactionInvalidType   ErrorCode = "TRANSACTION_003"
	TransactionMissingFields ErrorCode = "TRANSACTION_004"
)

// Budget error codes (BUDGET_*)
const (
	BudgetEntryNotFound  ErrorCode = "BUDGET_001"
	BudgetNegativeAmount ErrorCode = "BUDGET_002"
	BudgetMonthNotFound  ErrorCode = "BUDGET_003"
)

// Import error codes (IMPORT_*)
const (
	ImportEmpty      ErrorCode = "IMPORT_001"
	ImportTooLarge   ErrorCode = "IMPORT_002"
	ImportUnreadable ErrorCode = "IMPORT_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",
	ValidationInvalidMonth:  "Month must use the YYYY-MM format",
	ValidationInvalidAmount: "Invalid monetary amount",

	// Account errors
	AccountNotFound:    "Account not found",
	AccountInvalidType: "Invalid account type",
	AccountNameEmpty:   "Account name must not be empty",

	// Category errors
	CategoryNotFound:      "Category not found",
	CategoryNameTaken:     "A category with this name already exists",
	CategoryInvalidType:   "Invalid category type",
	CategoryGroupNotFound: "Category group not found",
	CategoryInvalidDueDay: "Due day must be between 1 and 31",

	// Transaction errors
	TransactionNotFound:      "Transaction not found",
	TransactionInvalidAmount: "Transaction amount must not be negative",
	TransactionInvalidType:   "Transaction type must be income or expense",
	TransactionMissingFields: "Transaction is missing required fields",

	// Budget errors
	BudgetEntryNotFound:  "Budget entry not found",
	BudgetNegativeAmount: "Budgeted amount must not be negative",
	BudgetMonthNotFound:  "No monthly budget recorded for this month",

	// Import errors
	ImportEmpty:      "Import contains no rows",
	ImportTooLarge:   "Import exceeds the maximum row count",
	ImportUnreadable: "Import body could not be parsed as CSV",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
