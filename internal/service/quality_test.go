package service

import (
	"testing"

	"github.com/kapu/member-directory-go/internal/domain"
)

func TestScoreFieldsEmptySet(t *testing.T) {
	score := ScoreFields(map[string]string{})
	if score.Percent != 0 {
		t.Errorf("expected 0 percent, got %v", score.Percent)
	}
	if score.Bucket != domain.QualityPoor {
		t.Errorf("expected POOR, got %s", score.Bucket)
	}
}

func TestScoreFieldsBuckets(t *testing.T) {
	tests := []struct {
		name    string
		fields  map[string]string
		percent float64
		bucket  domain.QualityBucket
	}{
		{
			name:    "all populated",
			fields:  map[string]string{"a": "1", "b": "2", "c": "3", "d": "4"},
			percent: 100,
			bucket:  domain.QualityExcellent,
		},
		{
			name:    "three of four",
			fields:  map[string]string{"a": "1", "b": "2", "c": "3", "d": ""},
			percent: 75,
			bucket:  domain.QualityGood,
		},
		{
			name:    "whitespace counts as empty",
			fields:  map[string]string{"a": "1", "b": "2", "c": "3", "d": "   "},
			percent: 75,
			bucket:  domain.QualityGood,
		},
		{
			name:    "three of five",
			fields:  map[string]string{"a": "1", "b": "2", "c": "3", "d": "", "e": ""},
			percent: 60,
			bucket:  domain.QualityAcceptable,
		},
		{
			name:    "one of four",
			fields:  map[string]string{"a": "1", "b": "", "c": "", "d": ""},
			percent: 25,
			bucket:  domain.QualityPoor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := ScoreFields(tt.fields)
			if score.Percent != tt.percent {
				t.Errorf("expected %v percent, got %v", tt.percent, score.Percent)
			}
			if score.Bucket != tt.bucket {
				t.Errorf("expected %s, got %s", tt.bucket, score.Bucket)
			}
		})
	}
}

func TestScoreFieldsMonotonic(t *testing.T) {
	fields := map[string]string{"a": "", "b": "", "c": "", "d": "", "e": ""}
	keys := []string{"a", "b", "c", "d", "e"}

	prev := -1.0
	for _, key := range keys {
		fields[key] = "value"
		score := ScoreFields(fields)
		if score.Percent <= prev {
			t.Fatalf("score not monotonically increasing: %v after %v", score.Percent, prev)
		}
		if score.Percent < 0 || score.Percent > 100 {
			t.Fatalf("score out of range: %v", score.Percent)
		}
		prev = score.Percent
	}
}
