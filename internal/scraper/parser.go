package scraper

import (
	"strings"

	"github.com/outflo/outflo-backend/internal/models"
)

// peopleTemplate marks search result entries that describe a person.
const peopleTemplate = "UNIVERSAL"

// headlessURNID is the member id voyager uses for placeholder profiles that
// carry no real data.
const headlessURNID = "headless"

// SearchResponse is the subset of the voyager search payload the parser
// consumes.
type SearchResponse struct {
	Status   int          `json:"status"`
	Included []SearchItem `json:"included"`
}

// SearchItem is one entry of the denormalized "included" array.
type SearchItem struct {
	Template          string     `json:"template"`
	TrackingURN       string     `json:"trackingUrn"`
	Title             *TextField `json:"title"`
	NavigationURL     string     `json:"navigationUrl"`
	PrimarySubtitle   *TextField `json:"primarySubtitle"`
	SecondarySubtitle *TextField `json:"secondarySubtitle"`
	Summary           *TextField `json:"summary"`
	Image             *Image     `json:"image"`
}

// TextField wraps voyager's {text: "..."} values.
type TextField struct {
	Text string `json:"text"`
}

// Image mirrors the nested profile picture structure just deep enough to
// reach the artifact path segment.
type Image struct {
	Attributes []struct {
		DetailData struct {
			NonEntityProfilePicture *struct {
				VectorImage *struct {
					Artifacts []struct {
						FileIdentifyingURLPathSegment string `json:"fileIdentifyingUrlPathSegment"`
					} `json:"artifacts"`
				} `json:"vectorImage"`
			} `json:"nonEntityProfilePicture"`
		} `json:"detailData"`
	} `json:"attributes"`
}

// SkipReason explains why a search item produced no lead profile.
type SkipReason string

const (
	SkipNonPeopleTemplate SkipReason = "non-people template"
	SkipMissingURN        SkipReason = "missing tracking urn"
	SkipHeadlessProfile   SkipReason = "headless placeholder profile"
)

// SkippedItem records one search item that was not converted.
type SkippedItem struct {
	Reason      SkipReason
	TrackingURN string
}

// ParseResult is the partial outcome of normalizing one search page: the
// profiles that parsed plus every item that was skipped, with its reason, so
// ingestion losses stay observable.
type ParseResult struct {
	Profiles []models.LeadProfile
	Skipped  []SkippedItem
}

// Parse normalizes a raw search response into lead profile candidates.
// Unresolved text fields default to empty strings.
func Parse(resp *SearchResponse) *ParseResult {
	result := &ParseResult{}

	for _, item := range resp.Included {
		if item.Template != peopleTemplate {
			result.Skipped = append(result.Skipped, SkippedItem{
				Reason:      SkipNonPeopleTemplate,
				TrackingURN: item.TrackingURN,
			})
			continue
		}

		externalID := externalIDFromURN(item.TrackingURN)
		if externalID == "" {
			result.Skipped = append(result.Skipped, SkippedItem{
				Reason:      SkipMissingURN,
				TrackingURN: item.TrackingURN,
			})
			continue
		}
		if externalID == headlessURNID {
			result.Skipped = append(result.Skipped, SkippedItem{
				Reason:      SkipHeadlessProfile,
				TrackingURN: item.TrackingURN,
			})
			continue
		}

		profileURL := profileURLFromNavigation(item.NavigationURL)
		result.Profiles = append(result.Profiles, models.LeadProfile{
			ExternalID: externalID,
			Name:       fieldText(item.Title),
			Handle:     handleFromProfileURL(profileURL),
			JobTitle:   fieldText(item.PrimarySubtitle),
			Company:    companyName(item),
			Location:   fieldText(item.SecondarySubtitle),
			ProfileURL: profileURL,
			Summary:    fieldText(item.Summary),
			ImageURL:   imageURL(item.Image),
		})
	}

	return result
}

// externalIDFromURN extracts the member id from a tracking urn of the form
// "urn:li:member:<id>".
func externalIDFromURN(urn string) string {
	parts := strings.Split(urn, ":")
	if len(parts) < 4 {
		return ""
	}
	return parts[3]
}

// profileURLFromNavigation strips the query string from a navigation URL.
func profileURLFromNavigation(navigationURL string) string {
	if navigationURL == "" {
		return ""
	}
	return strings.SplitN(navigationURL, "?", 2)[0]
}

// handleFromProfileURL returns the path segment after "/in/".
func handleFromProfileURL(profileURL string) string {
	_, after, found := strings.Cut(profileURL, "/in/")
	if !found {
		return ""
	}
	return after
}

// companyName derives the company from the "... at <company>" pattern in the
// summary, falling back to the primary subtitle.
func companyName(item SearchItem) string {
	if name := companyFromText(fieldText(item.Summary)); name != "" {
		return name
	}
	return companyFromText(fieldText(item.PrimarySubtitle))
}

func companyFromText(text string) string {
	parts := strings.Split(text, " at ")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

func fieldText(f *TextField) string {
	if f == nil {
		return ""
	}
	return f.Text
}

func imageURL(img *Image) string {
	if img == nil || len(img.Attributes) == 0 {
		return ""
	}
	picture := img.Attributes[0].DetailData.NonEntityProfilePicture
	if picture == nil || picture.VectorImage == nil || len(picture.VectorImage.Artifacts) == 0 {
		return ""
	}
	return picture.VectorImage.Artifacts[0].FileIdentifyingURLPathSegment
}
