package scraper

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outflo/outflo-backend/internal/models"
)

type fakeSink struct {
	upserted []models.LeadProfile
	existing map[string]bool
}

func (f *fakeSink) UpsertByExternalID(lead *models.LeadProfile) (bool, error) {
	if f.existing[lead.ExternalID] {
		return false, nil
	}
	f.upserted = append(f.upserted, *lead)
	return true, nil
}

func testClient(serverURL string) *Client {
	c := NewClient("li_at=test")
	c.baseURL = serverURL
	return c
}

func TestRunUpsertsParsedProfilesAndSkipsHeadless(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "li_at=test", r.Header.Get("cookie"))
		w.Write([]byte(`{
			"included": [
				{
					"template": "UNIVERSAL",
					"trackingUrn": "urn:li:member:12345",
					"title": {"text": "Jane Doe"},
					"navigationUrl": "https://www.linkedin.com/in/jane-doe?origin=x"
				},
				{
					"template": "UNIVERSAL",
					"trackingUrn": "urn:li:member:headless"
				}
			]
		}`))
	}))
	defer server.Close()

	sink := &fakeSink{}
	ingestor := NewIngestor(testClient(server.URL), sink, nil)

	result := ingestor.Run("lead generation agency", 1)

	assert.Equal(t, 1, result.Parsed)
	assert.Equal(t, 1, result.Inserted)
	assert.Equal(t, 1, result.Skipped)
	assert.False(t, result.RateLimited)
	require.Len(t, sink.upserted, 1)
	assert.Equal(t, "12345", sink.upserted[0].ExternalID)
}

func TestRunNeverOverwritesExistingProfiles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"included": [
				{"template": "UNIVERSAL", "trackingUrn": "urn:li:member:1"},
				{"template": "UNIVERSAL", "trackingUrn": "urn:li:member:2"}
			]
		}`))
	}))
	defer server.Close()

	sink := &fakeSink{existing: map[string]bool{"1": true}}
	ingestor := NewIngestor(testClient(server.URL), sink, nil)

	result := ingestor.Run("growth", 1)

	assert.Equal(t, 2, result.Parsed)
	assert.Equal(t, 1, result.Inserted)
	assert.Equal(t, 1, result.Duplicates)
}

func TestRunAbortsOnRateLimitStatusCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	sink := &fakeSink{}
	ingestor := NewIngestor(testClient(server.URL), sink, nil)

	result := ingestor.Run("growth", 1)

	assert.True(t, result.RateLimited)
	assert.Zero(t, result.Parsed)
	assert.Empty(t, sink.upserted)
}

func TestRunAbortsOnRateLimitInBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": 429}`))
	}))
	defer server.Close()

	sink := &fakeSink{}
	ingestor := NewIngestor(testClient(server.URL), sink, nil)

	result := ingestor.Run("growth", 1)

	assert.True(t, result.RateLimited)
	assert.Empty(t, sink.upserted)
}

func TestRunYieldsEmptyResultOnMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	sink := &fakeSink{}
	ingestor := NewIngestor(testClient(server.URL), sink, nil)

	result := ingestor.Run("growth", 1)

	assert.False(t, result.RateLimited)
	assert.Zero(t, result.Parsed)
	assert.Empty(t, sink.upserted)
}

func TestFetchPageOffsets(t *testing.T) {
	var gotURL string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		w.Write([]byte(`{"included": []}`))
	}))
	defer server.Close()

	client := testClient(server.URL)
	_, err := client.FetchSearchPage("growth marketing", 3)
	require.NoError(t, err)

	assert.Contains(t, gotURL, "start:20")
	assert.Contains(t, gotURL, "growth+marketing")
}
