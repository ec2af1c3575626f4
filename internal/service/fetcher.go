package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/kapu/member-directory-go/internal/constants"
	"github.com/kapu/member-directory-go/pkg/errors"
	"go.uber.org/zap"
)

// DocumentFetcher retrieves and parses member profile pages from the upstream
// directory. It is the only component that touches the network.
type DocumentFetcher struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewDocumentFetcher builds a fetcher with the given request timeout. A
// non-positive timeout falls back to constants.ScraperConfig.Timeout.
func NewDocumentFetcher(baseURL string, timeout time.Duration, logger *zap.Logger) *DocumentFetcher {
	if timeout <= 0 {
		timeout = constants.ScraperConfig.Timeout
	}
	return &DocumentFetcher{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		logger:  logger,
	}
}

// FetchMemberDocument downloads the profile page for memberID and parses it.
// Network and status failures surface as *errors.FetchError, parse failures
// as a CodeParse *errors.ExtractorError; there is no retry here.
func (f *DocumentFetcher) FetchMemberDocument(ctx context.Context, memberID int) (*goquery.Document, error) {
	url := f.baseURL + fmt.Sprintf(constants.ScraperConfig.ProfilePathFormat, memberID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.NewFetchError("failed to build request", url, 0, err)
	}

	req.Header.Set("User-Agent", constants.ScraperConfig.UserAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		f.logger.Warn("Member page request failed",
			zap.Int("member_id", memberID),
			zap.Error(err))
		return nil, errors.NewFetchError("HTTP request failed", url, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		f.logger.Warn("Unexpected status from upstream",
			zap.Int("member_id", memberID),
			zap.Int("status", resp.StatusCode))
		return nil, errors.NewFetchError(
			fmt.Sprintf("unexpected status code: %d", resp.StatusCode), url, resp.StatusCode, nil)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, errors.NewExtractorError("HTML parse failed", errors.CodeParse, http.StatusBadGateway,
			map[string]any{"url": url}).WithCause(err)
	}

	return doc, nil
}
