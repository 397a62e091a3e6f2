package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUsername  = errors.New("username must be between 3 and 50 characters")
	ErrInvalidEmail     = errors.New("email address is invalid")
	ErrInvalidFullName  = errors.New("full name must be at most 100 characters")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong  = errors.New("password must be at most 72 bytes")

	ErrInvalidIncome          = errors.New("income must not be negative")
	ErrInvalidCreditScore     = errors.New("credit score must be between 0 and 850")
	ErrInvalidDebtRatio       = errors.New("debt ratio must be between 0 and 1")
	ErrInvalidEmploymentYears = errors.New("employment years must not be negative")
	ErrInvalidLoanAmount      = errors.New("loan amount must not be negative")
)
