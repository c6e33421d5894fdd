package scraper

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/outflo/outflo-backend/internal/models"
	"github.com/outflo/outflo-backend/internal/services"
)

// LeadSink is the write surface the ingestor needs from the lead store.
type LeadSink interface {
	UpsertByExternalID(lead *models.LeadProfile) (bool, error)
}

// Ingestor runs one-shot ingestion batches: fetch a page, parse it, upsert
// the candidates.
type Ingestor struct {
	client *Client
	sink   LeadSink
	events *services.EventService
}

func NewIngestor(client *Client, sink LeadSink, events *services.EventService) *Ingestor {
	return &Ingestor{client: client, sink: sink, events: events}
}

// RunResult summarizes one ingestion batch.
type RunResult struct {
	Parsed      int
	Inserted    int
	Duplicates  int
	Failed      int
	Skipped     int
	RateLimited bool
}

// Run fetches one search page for the term and upserts every parsed profile,
// inserting only when the external id is absent. A rate-limit response aborts
// the batch; any other fetch or parse failure yields an empty result rather
// than propagating. Per-record write errors are logged and the batch
// continues.
func (i *Ingestor) Run(searchTerm string, page int) *RunResult {
	result := &RunResult{}

	resp, err := i.client.FetchSearchPage(searchTerm, page)
	if err != nil {
		if errors.Is(err, ErrRateLimited) {
			logrus.Warnf("Search rate limited for term %q page %d, aborting run", searchTerm, page)
			result.RateLimited = true
			return result
		}
		logrus.Errorf("Scraping failed for term %q page %d: %v", searchTerm, page, err)
		return result
	}

	parsed := Parse(resp)
	result.Parsed = len(parsed.Profiles)
	result.Skipped = len(parsed.Skipped)
	for _, skipped := range parsed.Skipped {
		logrus.Debugf("Skipped search item (%s): %s", skipped.Reason, skipped.TrackingURN)
	}

	for idx := range parsed.Profiles {
		profile := parsed.Profiles[idx]
		inserted, err := i.sink.UpsertByExternalID(&profile)
		if err != nil {
			result.Failed++
			logrus.Errorf("Error saving profile %s: %v", profile.ExternalID, err)
			continue
		}
		if inserted {
			result.Inserted++
		} else {
			result.Duplicates++
			logrus.Debugf("Profile %s already stored, skipping", profile.ExternalID)
		}
	}

	logrus.Infof("Ingestion run for %q page %d: parsed=%d inserted=%d duplicates=%d failed=%d skipped=%d",
		searchTerm, page, result.Parsed, result.Inserted, result.Duplicates, result.Failed, result.Skipped)

	i.events.PublishIngestionSummary(searchTerm, page, result.Parsed, result.Inserted, result.Skipped)
	return result
}
