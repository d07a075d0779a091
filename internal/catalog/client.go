package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lehigh-university-libraries/artworks/internal/models"
)

// DefaultBaseURL is the public Art Institute of Chicago API
const DefaultBaseURL = "https://api.artic.edu/api/v1"

const userAgent = "artworks (https://github.com/lehigh-university-libraries/artworks)"

// Kind classifies a FetchError
type Kind int

const (
	// KindUnknown covers transport failures and undecodable bodies
	KindUnknown Kind = iota
	// KindStatus means the API answered with a non-success status
	KindStatus
)

// FetchError is returned by FetchPage for every failure
type FetchError struct {
	Kind       Kind
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Kind == KindStatus {
		return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
	}
	if e.Err == nil {
		return "unknown error"
	}
	return e.Err.Error()
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Client represents an artworks API client
type Client struct {
	BaseURL    string
	httpClient *http.Client
}

// NewClient creates a new artworks client. An empty baseURL falls back to
// ARTIC_API_URL and then DefaultBaseURL. A zero timeout leaves the transport default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = os.Getenv("ARTIC_API_URL")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchPage fetches one page of artworks. Every call issues exactly one request.
func (c *Client) FetchPage(ctx context.Context, page int) (*models.ArtworksResponse, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	pageURL := fmt.Sprintf("%s/artworks?%s", c.BaseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, &FetchError{Kind: KindUnknown, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("AIC-User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Kind: KindUnknown, Err: fmt.Errorf("failed to fetch artworks: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &FetchError{Kind: KindStatus, StatusCode: resp.StatusCode}
	}

	var artworksResp models.ArtworksResponse
	if err := json.NewDecoder(resp.Body).Decode(&artworksResp); err != nil {
		return nil, &FetchError{Kind: KindUnknown, Err: fmt.Errorf("failed to decode artworks response: %w", err)}
	}

	return &artworksResp, nil
}

// StatusCode returns the HTTP status carried by err, or 0 when there is none
func StatusCode(err error) int {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) && fetchErr.Kind == KindStatus {
		return fetchErr.StatusCode
	}
	return 0
}
