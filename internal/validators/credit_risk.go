package validators

import (
	"context"

	"github.com/MKhiriev/credit-risk-gateway/models"
)

// Field names accepted by [CreditRiskValidator].
const (
	FieldIncome          = "income"
	FieldCreditScore     = "credit_score"
	FieldDebtRatio       = "debt_ratio"
	FieldEmploymentYears = "employment_years"
	FieldLoanAmount      = "loan_amount"
)

const maxCreditScore = 850

// CreditRiskValidator rejects assessment requests with impossible values.
// Absent numeric fields decode as zero and are accepted.
type CreditRiskValidator struct{}

// NewCreditRiskValidator returns a [Validator] for [models.CreditRiskRequest].
func NewCreditRiskValidator() Validator {
	return &CreditRiskValidator{}
}

func (v *CreditRiskValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreditRiskRequest:
		return v.validateRequest(ctx, value, fields...)
	case *models.CreditRiskRequest:
		return v.validateRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CreditRiskValidator) validateRequest(_ context.Context, req models.CreditRiskRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIncome, FieldCreditScore, FieldDebtRatio, FieldEmploymentYears, FieldLoanAmount}
	}

	for _, f := range fields {
		switch f {
		case FieldIncome:
			if req.Income < 0 {
				return ErrInvalidIncome
			}
		case FieldCreditScore:
			if req.CreditScore < 0 || req.CreditScore > maxCreditScore {
				return ErrInvalidCreditScore
			}
		case FieldDebtRatio:
			if req.DebtRatio < 0 || req.DebtRatio > 1 {
				return ErrInvalidDebtRatio
			}
		case FieldEmploymentYears:
			if req.EmploymentYears < 0 {
				return ErrInvalidEmploymentYears
			}
		case FieldLoanAmount:
			if req.LoanAmount < 0 {
				return ErrInvalidLoanAmount
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
