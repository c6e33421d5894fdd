package services

import "errors"

var (
	// ErrCampaignNotFound covers both a missing id and an id that refers to a
	// soft-deleted campaign on lookup paths.
	ErrCampaignNotFound = errors.New("campaign not found")

	// ErrDuplicateCampaignName is returned when a non-deleted campaign already
	// uses the requested name.
	ErrDuplicateCampaignName = errors.New("campaign with this name already exists")

	// ErrGenerationFailed wraps any failure of the external generation call.
	ErrGenerationFailed = errors.New("failed to generate message")
)
