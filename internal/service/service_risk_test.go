package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/credit-risk-gateway/internal/logger"
	"github.com/MKhiriev/credit-risk-gateway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRiskService() *riskService {
	svc := NewRiskService(logger.Nop()).(*riskService)
	svc.now = func() time.Time { return testNow.In(time.FixedZone("UTC+3", 3*60*60)) }
	return svc
}

func TestRiskService_Assess(t *testing.T) {
	tests := []struct {
		name           string
		request        models.CreditRiskRequest
		score          int
		level          models.RiskLevel
		recommendation models.Recommendation
		factors        []string
	}{
		{
			name:           "no rule fires",
			request:        models.CreditRiskRequest{Income: 85000, CreditScore: 750, DebtRatio: 0.2},
			score:          0,
			level:          models.RiskLevelLow,
			recommendation: models.RecommendationApprove,
			factors:        []string{"Stable income", "Good credit score", "Healthy debt ratio"},
		},
		{
			name:           "high debt only",
			request:        models.CreditRiskRequest{Income: 85000, CreditScore: 750, DebtRatio: 0.41},
			score:          20,
			level:          models.RiskLevelLow,
			recommendation: models.RecommendationApprove,
			factors:        []string{"Stable income", "Good credit score", "High debt ratio"},
		},
		{
			name:           "low income only",
			request:        models.CreditRiskRequest{Income: 29999.99, CreditScore: 650, DebtRatio: 0.4},
			score:          30,
			level:          models.RiskLevelMedium,
			recommendation: models.RecommendationReview,
			factors:        []string{"Low income", "Good credit score", "Healthy debt ratio"},
		},
		{
			name:           "low income and low score",
			request:        models.CreditRiskRequest{Income: 20000, CreditScore: 600, DebtRatio: 0.1},
			score:          55,
			level:          models.RiskLevelMedium,
			recommendation: models.RecommendationReview,
			factors:        []string{"Low income", "Low credit score", "Healthy debt ratio"},
		},
		{
			name:           "every rule fires",
			request:        models.CreditRiskRequest{Income: 10000, CreditScore: 500, DebtRatio: 0.9},
			score:          75,
			level:          models.RiskLevelHigh,
			recommendation: models.RecommendationDecline,
			factors:        []string{"Low income", "Low credit score", "High debt ratio"},
		},
		{
			name:           "empty request",
			request:        models.CreditRiskRequest{},
			score:          55,
			level:          models.RiskLevelMedium,
			recommendation: models.RecommendationReview,
			factors:        []string{"Low income", "Low credit score", "Healthy debt ratio"},
		},
	}

	svc := newTestRiskService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Assess(context.Background(), tt.request, "alice")
			require.NoError(t, err)

			assert.Equal(t, tt.score, resp.RiskScore)
			assert.Equal(t, tt.level, resp.RiskLevel)
			assert.Equal(t, tt.recommendation, resp.Recommendation)
			assert.Equal(t, tt.factors, resp.Factors)
			assert.Equal(t, "alice", resp.Assessor)
			assert.Equal(t, time.UTC, resp.AssessmentDate.Location())
			assert.True(t, resp.AssessmentDate.Equal(testNow))
		})
	}
}

func TestRiskService_Assess_KeepsApplicantID(t *testing.T) {
	resp, err := newTestRiskService().Assess(context.Background(), models.CreditRiskRequest{
		ApplicantID: "app-42",
		Income:      50000,
		CreditScore: 700,
	}, TestAssessor)
	require.NoError(t, err)

	assert.Equal(t, "app-42", resp.ApplicantID)
	assert.Equal(t, "test-system", resp.Assessor)
}

func TestRiskService_Assess_RejectsImpossibleValues(t *testing.T) {
	svc := newTestRiskService()

	for name, req := range map[string]models.CreditRiskRequest{
		"negative income":   {Income: -1},
		"score above range": {CreditScore: 851},
		"debt ratio above":  {DebtRatio: 1.5},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Assess(context.Background(), req, "alice")
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}
