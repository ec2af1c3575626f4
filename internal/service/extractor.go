package service

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kapu/member-directory-go/internal/util"
	"go.uber.org/zap"
)

// FieldExtractor locates labeled values inside a parsed profile page. Labels
// look like "Mobile Number: 9876543210" inside paragraph elements.
type FieldExtractor struct {
	logger *zap.Logger
}

func NewFieldExtractor(logger *zap.Logger) *FieldExtractor {
	return &FieldExtractor{logger: logger}
}

// ExtractField returns the value for label, or "" when no strategy matches.
// It never fails: internal panics are recovered and logged.
//
// Values containing colons are truncated at the first colon on the fallback
// path. That is a known limitation of the matching heuristic, kept as-is.
func (e *FieldExtractor) ExtractField(doc *goquery.Document, label string, useFallback bool) (value string) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("Field extraction recovered from panic",
				zap.String("label", label),
				zap.Any("panic", r))
			value = ""
		}
	}()

	if doc == nil || label == "" {
		return ""
	}

	if v, ok := e.extractExact(doc, label); ok {
		return v
	}

	if useFallback {
		if v, ok := e.extractNormalized(doc, label); ok {
			return v
		}
	}

	return ""
}

// extractExact scans paragraphs in document order for the first one whose
// text contains the literal label immediately followed by a colon, and takes
// everything after the first colon. A paragraph carrying the label without
// that colon does not match, so the normalized fallback gets a chance.
func (e *FieldExtractor) extractExact(doc *goquery.Document, label string) (string, bool) {
	value := ""
	found := false

	doc.Find("p").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		text := sel.Text()
		if !strings.Contains(text, label+":") {
			return true
		}

		if idx := strings.Index(text, ":"); idx != -1 {
			value = strings.TrimSpace(text[idx+1:])
			found = true
		}
		return false
	})

	return value, found
}

// extractNormalized retries the lookup with whitespace and colons stripped
// from both label and paragraph text, which catches sloppy source markup
// like "Name :  John".
func (e *FieldExtractor) extractNormalized(doc *goquery.Document, label string) (string, bool) {
	normLabel := util.NormalizeLabel(label)
	if normLabel == "" {
		return "", false
	}

	value := ""
	found := false

	doc.Find("p").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		text := sel.Text()
		if !strings.Contains(util.NormalizeLabel(text), normLabel) {
			return true
		}

		parts := strings.Split(text, ":")
		if len(parts) >= 2 {
			value = strings.TrimSpace(parts[1])
			found = true
		}
		return false
	})

	return value, found
}
