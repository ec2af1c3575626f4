package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kapu/member-directory-go/internal/domain"
)

var numericPattern = regexp.MustCompile(`^[0-9]+$`)

// requiredFields in warning order.
var requiredFields = []string{"lmNumber", "name", "surname"}

// ValidationResult carries the outcome of validating a single record. All
// rules are applied; warnings are collected, never short-circuited.
type ValidationResult struct {
	IsValid      bool
	Warnings     []string
	QualityScore QualityScore
}

// ValidateRecord checks required-field presence and the numeric LM Number
// rule, and recomputes the completeness score over the scored field set.
func ValidateRecord(record *domain.MemberRecord) ValidationResult {
	fields := record.ScoredFields()
	warnings := make([]string, 0)

	for _, field := range requiredFields {
		if strings.TrimSpace(fields[field]) == "" {
			warnings = append(warnings, fmt.Sprintf("missing or empty required field: %s", field))
		}
	}

	if lm := strings.TrimSpace(record.LMNumber); lm != "" && !numericPattern.MatchString(lm) {
		warnings = append(warnings, "LM Number should be numeric")
	}

	return ValidationResult{
		IsValid:      len(warnings) == 0,
		Warnings:     warnings,
		QualityScore: ScoreFields(fields),
	}
}
