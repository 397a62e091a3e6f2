package client

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/credit-risk-gateway/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Faint(true).Width(18)
	helpStyle  = lipgloss.NewStyle().Faint(true)

	riskLevelColors = map[models.RiskLevel]lipgloss.Color{
		models.RiskLevelLow:    lipgloss.Color("2"),
		models.RiskLevelMedium: lipgloss.Color("3"),
		models.RiskLevelHigh:   lipgloss.Color("1"),
	}
)

type field struct {
	label string
	value string
}

func renderBox(title string, fields []field) string {
	lines := []string{titleStyle.Render(title)}
	for _, f := range fields {
		lines = append(lines, labelStyle.Render(f.label)+f.value)
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

func renderHealth(h models.HealthCheck) string {
	return renderBox("Gateway", []field{
		{"status", h.Status},
		{"version", h.Version},
		{"environment", h.Environment},
		{"timestamp", h.Timestamp.Format("2006-01-02 15:04:05 MST")},
	})
}

func renderUser(u models.UserResponse) string {
	fullName := "-"
	if u.FullName != nil {
		fullName = *u.FullName
	}

	return renderBox("User", []field{
		{"id", fmt.Sprint(u.ID)},
		{"username", u.Username},
		{"email", u.Email},
		{"full name", fullName},
		{"active", fmt.Sprint(u.IsActive)},
		{"created at", u.CreatedAt.Format("2006-01-02 15:04:05 MST")},
	})
}

func renderToken(t models.TokenResponse) string {
	return renderBox("Access token", []field{
		{"token type", t.TokenType},
		{"expires in", fmt.Sprintf("%ds", t.ExpiresIn)},
		{"access token", t.AccessToken},
	})
}

func renderAssessment(r models.CreditRiskResponse) string {
	level := lipgloss.NewStyle().Bold(true).Foreground(riskLevelColors[r.RiskLevel]).Render(string(r.RiskLevel))

	fields := []field{}
	if r.ApplicantID != "" {
		fields = append(fields, field{"applicant", r.ApplicantID})
	}
	fields = append(fields,
		field{"risk score", fmt.Sprint(r.RiskScore)},
		field{"risk level", level},
		field{"recommendation", string(r.Recommendation)},
		field{"assessor", r.Assessor},
		field{"assessed at", r.AssessmentDate.Format("2006-01-02 15:04:05 MST")},
	)
	for i, factor := range r.Factors {
		label := ""
		if i == 0 {
			label = "factors"
		}
		fields = append(fields, field{label, "• " + factor})
	}

	return renderBox("Credit risk assessment", fields)
}
