package service

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/kapu/member-directory-go/internal/constants"
	"github.com/kapu/member-directory-go/internal/domain"
	"go.uber.org/zap"
)

// RecordBuilder assembles a MemberRecord from a parsed profile page. Fields
// are extracted in three independent groups (identity, contact/location,
// media) and merged.
type RecordBuilder struct {
	extractor *FieldExtractor
	logger    *zap.Logger
}

func NewRecordBuilder(extractor *FieldExtractor, logger *zap.Logger) *RecordBuilder {
	return &RecordBuilder{extractor: extractor, logger: logger}
}

// Build extracts all field groups for memberID. startedAt anchors the
// metadata timestamp and processing duration.
func (b *RecordBuilder) Build(doc *goquery.Document, memberID int, startedAt time.Time) *domain.MemberRecord {
	identity := b.extractIdentity(doc)
	contact := b.extractContact(doc)

	scored := make(map[string]string, len(identity)+len(contact))
	for k, v := range identity {
		scored[k] = v
	}
	for k, v := range contact {
		scored[k] = v
	}
	quality := ScoreFields(scored)

	record := &domain.MemberRecord{
		MemberID:     memberID,
		LMNumber:     identity["lmNumber"],
		Name:         identity["name"],
		Surname:      identity["surname"],
		FullName:     identity["fullName"],
		Gaam:         contact["gaam"],
		Area:         contact["area"],
		MobileNumber: contact["mobileNumber"],
		Status:       contact["status"],
		ImageURL:     b.extractImageURL(doc),
		ExtractionMetadata: domain.ExtractionMetadata{
			Timestamp:        startedAt,
			ProcessingTimeMs: time.Since(startedAt).Milliseconds(),
			Quality:          quality.Bucket,
			SchemaVersion:    constants.CacheSchemaVersion,
		},
	}

	b.logger.Debug("Record assembled",
		zap.Int("member_id", memberID),
		zap.Float64("quality_percent", quality.Percent),
		zap.String("quality", quality.Bucket.String()))

	return record
}

func (b *RecordBuilder) extractIdentity(doc *goquery.Document) map[string]string {
	return map[string]string{
		"lmNumber": b.extractor.ExtractField(doc, constants.FieldLabels.LMNumber, true),
		"name":     b.extractor.ExtractField(doc, constants.FieldLabels.Name, true),
		"surname":  b.extractor.ExtractField(doc, constants.FieldLabels.Surname, true),
		"fullName": strings.TrimSpace(doc.Find("h1").First().Text()),
	}
}

func (b *RecordBuilder) extractContact(doc *goquery.Document) map[string]string {
	return map[string]string{
		"gaam":         b.extractor.ExtractField(doc, constants.FieldLabels.Gaam, true),
		"area":         b.extractor.ExtractField(doc, constants.FieldLabels.Area, true),
		"mobileNumber": b.extractor.ExtractField(doc, constants.FieldLabels.MobileNumber, true),
		"status":       b.extractor.ExtractField(doc, constants.FieldLabels.Status, true),
	}
}

func (b *RecordBuilder) extractImageURL(doc *goquery.Document) string {
	if src, exists := doc.Find(constants.MediaConfig.ProfileImageSelector).First().Attr("src"); exists && src != "" {
		return src
	}
	return constants.MediaConfig.PlaceholderImagePath
}
