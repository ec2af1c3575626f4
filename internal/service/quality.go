package service

import (
	"strings"

	"github.com/kapu/member-directory-go/internal/constants"
	"github.com/kapu/member-directory-go/internal/domain"
)

// QualityScore is the completeness measure of an extracted field set.
type QualityScore struct {
	Percent float64
	Bucket  domain.QualityBucket
}

// ScoreFields computes the percentage of populated fields and maps it onto a
// quality bucket. Pure function; an empty field set scores POOR at 0%.
func ScoreFields(fields map[string]string) QualityScore {
	if len(fields) == 0 {
		return QualityScore{Percent: 0, Bucket: domain.QualityPoor}
	}

	populated := 0
	for _, value := range fields {
		if strings.TrimSpace(value) != "" {
			populated++
		}
	}

	percent := 100 * float64(populated) / float64(len(fields))
	return QualityScore{Percent: percent, Bucket: bucketFor(percent)}
}

func bucketFor(percent float64) domain.QualityBucket {
	switch {
	case percent >= constants.QualityThresholds.Excellent:
		return domain.QualityExcellent
	case percent >= constants.QualityThresholds.Good:
		return domain.QualityGood
	case percent >= constants.QualityThresholds.Acceptable:
		return domain.QualityAcceptable
	default:
		return domain.QualityPoor
	}
}
