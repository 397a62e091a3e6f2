package models

import "time"

// RiskLevel is the coarse bucket a risk score falls into.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "LOW"
	RiskLevelMedium RiskLevel = "MEDIUM"
	RiskLevelHigh   RiskLevel = "HIGH"
)

// Recommendation is the decision suggested for a risk level.
type Recommendation string

const (
	RecommendationApprove Recommendation = "APPROVE"
	RecommendationReview  Recommendation = "REVIEW"
	RecommendationDecline Recommendation = "DECLINE"
)

// CreditRiskRequest is the body of the credit-risk endpoints.
// Numeric fields that are absent from the JSON body stay zero.
type CreditRiskRequest struct {
	ApplicantID     string  `json:"applicant_id"`
	Income          float64 `json:"income"`
	CreditScore     int     `json:"credit_score"`
	DebtRatio       float64 `json:"debt_ratio"`
	EmploymentYears int     `json:"employment_years"`
	LoanAmount      float64 `json:"loan_amount"`
	LoanPurpose     string  `json:"loan_purpose"`
}

// CreditRiskResponse is the outcome of a rule-based assessment.
type CreditRiskResponse struct {
	ApplicantID    string         `json:"applicant_id,omitempty"`
	RiskScore      int            `json:"risk_score"`
	RiskLevel      RiskLevel      `json:"risk_level"`
	Recommendation Recommendation `json:"recommendation"`
	AssessmentDate time.Time      `json:"assessment_date"`
	Assessor       string         `json:"assessor"`
	Factors        []string       `json:"factors"`
}
