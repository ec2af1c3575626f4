package domain

import "time"

type QualityBucket string

const (
	QualityExcellent  QualityBucket = "EXCELLENT"
	QualityGood       QualityBucket = "GOOD"
	QualityAcceptable QualityBucket = "ACCEPTABLE"
	QualityPoor       QualityBucket = "POOR"
)

func (q QualityBucket) String() string {
	return string(q)
}

func (q QualityBucket) IsValid() bool {
	switch q {
	case QualityExcellent, QualityGood, QualityAcceptable, QualityPoor:
		return true
	default:
		return false
	}
}

// ExtractionMetadata is attached to every record produced by the extraction
// pipeline. SchemaVersion mirrors the cache schema tag so consumers can tell
// which field shape a record carries.
type ExtractionMetadata struct {
	Timestamp        time.Time     `json:"timestamp"`
	ProcessingTimeMs int64         `json:"processingTimeMs"`
	Quality          QualityBucket `json:"quality"`
	SchemaVersion    string        `json:"schemaVersion"`
}

// MemberRecord is one extracted member profile. Empty string means the field
// was missing from the source document.
type MemberRecord struct {
	MemberID           int                `json:"memberId"`
	LMNumber           string             `json:"lmNumber"`
	Name               string             `json:"name"`
	Surname            string             `json:"surname"`
	FullName           string             `json:"fullName"`
	Gaam               string             `json:"gaam"`
	Area               string             `json:"area"`
	MobileNumber       string             `json:"mobileNumber"`
	Status             string             `json:"status"`
	ImageURL           string             `json:"imageUrl"`
	ExtractionMetadata ExtractionMetadata `json:"extractionMetadata"`
	ValidationWarnings []string           `json:"validationWarnings,omitempty"`
	FromCache          bool               `json:"fromCache,omitempty"`
}

// Clone returns an independent copy so cached records stay immutable when the
// caller-facing copy is annotated.
func (r *MemberRecord) Clone() *MemberRecord {
	if r == nil {
		return nil
	}
	clone := *r
	if r.ValidationWarnings != nil {
		clone.ValidationWarnings = append([]string(nil), r.ValidationWarnings...)
	}
	return &clone
}

// IsCacheable reports whether the record may be stored in the record cache.
// Records carrying validation warnings are never cached.
func (r *MemberRecord) IsCacheable() bool {
	return r != nil && len(r.ValidationWarnings) == 0
}

// ScoredFields returns the field-name to value mapping the validator scores
// for completeness. Media and metadata fields are excluded.
func (r *MemberRecord) ScoredFields() map[string]string {
	return map[string]string{
		"lmNumber":     r.LMNumber,
		"name":         r.Name,
		"surname":      r.Surname,
		"gaam":         r.Gaam,
		"area":         r.Area,
		"mobileNumber": r.MobileNumber,
		"status":       r.Status,
	}
}
