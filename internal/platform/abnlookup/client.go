package abnlookup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/invomate/invomate_app/internal/apperrors"
	"github.com/invomate/invomate_app/internal/core/domain"
	portssvc "github.com/invomate/invomate_app/internal/core/ports/services"
	"github.com/invomate/invomate_app/internal/middleware"
)

// Client queries the Australian Business Register AbnDetails endpoint.
// The register answers JSONP even when format=json is requested, so the
// callback wrapper is stripped before decoding.
type Client struct {
	baseURL    string
	guid       string
	httpClient *http.Client
}

var _ portssvc.ABNLookupSvc = (*Client)(nil)

// NewClient creates an ABN lookup client. A nil httpClient gets a default
// with a 10 second timeout.
func NewClient(baseURL string, guid string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:    baseURL,
		guid:       guid,
		httpClient: httpClient,
	}
}

// FetchABNDetails looks up one ABN. Upstream lookup failures carry the
// register's own message.
func (c *Client) FetchABNDetails(ctx context.Context, abn string) (*domain.ABNDetails, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	reqURL := fmt.Sprintf("%s?abn=%s&guid=%s&format=json",
		c.baseURL, url.QueryEscape(abn), url.QueryEscape(c.guid))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build ABN lookup request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("ABN lookup request failed", "abn", abn, "error", err)
		return nil, fmt.Errorf("ABN lookup request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read ABN lookup response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ABN lookup returned status %d", resp.StatusCode)
	}

	var details domain.ABNDetails
	if err := json.Unmarshal(stripJSONPCallback(body), &details); err != nil {
		return nil, fmt.Errorf("failed to decode ABN lookup response: %w", err)
	}

	if details.Message != "" {
		return nil, apperrors.NewBadRequestError(details.Message)
	}
	return &details, nil
}

// stripJSONPCallback unwraps payloads of the form `callback({...})`.
func stripJSONPCallback(body []byte) []byte {
	s := strings.TrimSpace(string(body))
	if !strings.HasSuffix(s, ")") {
		return body
	}
	open := strings.Index(s, "(")
	if open == -1 || !strings.HasPrefix(s[:open], "callback") {
		return body
	}
	return []byte(s[open+1 : len(s)-1])
}
