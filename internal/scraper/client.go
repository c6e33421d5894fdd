// Package scraper harvests people profiles from the LinkedIn voyager search
// API and normalizes them into lead records. Each run fetches exactly one
// results page; there is no pagination loop and no retry policy.
package scraper

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultBaseURL = "https://www.linkedin.com"
	resultsPerPage = 10
)

// ErrRateLimited marks a rate-limit response from the search endpoint. It is
// terminal for the run; the caller re-runs the job later.
var ErrRateLimited = errors.New("rate limit exceeded")

// Client fetches raw search results from the voyager endpoint using a
// caller-supplied cookie credential.
type Client struct {
	baseURL    string
	cookies    string
	httpClient *http.Client
}

// NewClient creates a search client. cookies is the raw Cookie header value
// of an authenticated browser session.
func NewClient(cookies string) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		cookies: cookies,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchSearchPage issues one people-search request for the given term and
// 1-based page number and decodes the raw response.
func (c *Client) FetchSearchPage(searchTerm string, page int) (*SearchResponse, error) {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * resultsPerPage

	endpoint := fmt.Sprintf(
		"%s/voyager/api/graphql?variables=(start:%d,origin:SWITCH_SEARCH_VERTICAL,query:(keywords:%s,flagshipSearchIntent:SEARCH_SRP,queryParameters:List((key:heroEntityKey,value:List(urn%%3Ali%%3Aautocomplete%%3A1052861661)),(key:position,value:List(1)),(key:resultType,value:List(PEOPLE)),(key:searchId,value:List(06c4ced8-68b0-4f81-902e-1e71147a775b))),includeFiltersInResponse:false))&&queryId=voyagerSearchDashClusters.181547298141ca2c72182b748713641b",
		c.baseURL, start, url.QueryEscape(searchTerm))

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("accept", "application/vnd.linkedin.normalized+json+2.1")
	req.Header.Set("csrf-token", "ajax:1690738384797705558")
	req.Header.Set("sec-ch-ua", `"Chromium";v="112", "Google Chrome";v="112", "Not:A-Brand";v="99"`)
	req.Header.Set("sec-fetch-site", "same-origin")
	req.Header.Set("x-restli-protocol-version", "2.0.0")
	req.Header.Set("cookie", c.cookies)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var search SearchResponse
	if err := json.Unmarshal(body, &search); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	// The endpoint also signals throttling inside an HTTP 200 body.
	if search.Status == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}

	return &search, nil
}
