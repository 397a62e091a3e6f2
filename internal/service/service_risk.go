package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/credit-risk-gateway/internal/logger"
	"github.com/MKhiriev/credit-risk-gateway/internal/validators"
	"github.com/MKhiriev/credit-risk-gateway/models"
)

// Rule thresholds and the score each failed rule adds.
const (
	lowIncomeThreshold      = 30000
	lowCreditScoreThreshold = 650
	highDebtRatioThreshold  = 0.4

	lowIncomeWeight      = 30
	lowCreditScoreWeight = 25
	highDebtRatioWeight  = 20

	mediumRiskFrom = 30
	highRiskFrom   = 60
)

// TestAssessor is reported as the assessor of anonymous assessments.
const TestAssessor = "test-system"

type riskService struct {
	validator validators.Validator
	now       func() time.Time
	logger    *logger.Logger
}

// NewRiskService returns the rule-based RiskService.
func NewRiskService(logger *logger.Logger) RiskService {
	return &riskService{
		validator: validators.NewCreditRiskValidator(),
		now:       time.Now,
		logger:    logger,
	}
}

// Assess scores the request. Each failed rule adds its weight and a
// negative factor; each passed rule adds a positive factor.
func (s *riskService) Assess(ctx context.Context, request models.CreditRiskRequest, assessor string) (models.CreditRiskResponse, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		log.Warn().Err(err).Msg("invalid credit risk request")
		return models.CreditRiskResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	score := 0
	factors := make([]string, 0, 3)

	if request.Income < lowIncomeThreshold {
		score += lowIncomeWeight
		factors = append(factors, "Low income")
	} else {
		factors = append(factors, "Stable income")
	}

	if request.CreditScore < lowCreditScoreThreshold {
		score += lowCreditScoreWeight
		factors = append(factors, "Low credit score")
	} else {
		factors = append(factors, "Good credit score")
	}

	if request.DebtRatio > highDebtRatioThreshold {
		score += highDebtRatioWeight
		factors = append(factors, "High debt ratio")
	} else {
		factors = append(factors, "Healthy debt ratio")
	}

	level, recommendation := classifyRisk(score)

	log.Info().
		Str("assessor", assessor).
		Str("applicant_id", request.ApplicantID).
		Int("risk_score", score).
		Str("risk_level", string(level)).
		Msg("credit risk assessment completed")

	return models.CreditRiskResponse{
		ApplicantID:    request.ApplicantID,
		RiskScore:      score,
		RiskLevel:      level,
		Recommendation: recommendation,
		AssessmentDate: s.now().UTC(),
		Assessor:       assessor,
		Factors:        factors,
	}, nil
}

func classifyRisk(score int) (models.RiskLevel, models.Recommendation) {
	switch {
	case score < mediumRiskFrom:
		return models.RiskLevelLow, models.RecommendationApprove
	case score < highRiskFrom:
		return models.RiskLevelMedium, models.RecommendationReview
	default:
		return models.RiskLevelHigh, models.RecommendationDecline
	}
}
