package services

import (
	"errors"
	"fmt"

	"github.com/outflo/outflo-backend/internal/models"

	"gorm.io/gorm"
)

// CampaignStore is the persistence surface the campaign service needs.
// Implemented by repository.CampaignRepository; tests inject in-memory fakes.
type CampaignStore interface {
	Create(campaign *models.Campaign) error
	GetByID(id string) (*models.Campaign, error)
	ListVisible() ([]*models.Campaign, error)
	Update(campaign *models.Campaign) error
	NameTaken(name, excludeID string) (bool, error)
}

type CampaignService struct {
	repo   CampaignStore
	events *EventService
}

func NewCampaignService(repo CampaignStore, events *EventService) *CampaignService {
	return &CampaignService{repo: repo, events: events}
}

// List returns every campaign that has not been soft-deleted.
func (s *CampaignService) List() ([]*models.Campaign, error) {
	campaigns, err := s.repo.ListVisible()
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, nil
}

// Get returns the campaign unless it is missing or soft-deleted.
func (s *CampaignService) Get(id string) (*models.Campaign, error) {
	campaign, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}
	if campaign.Status == models.CampaignStatusDeleted {
		return nil, ErrCampaignNotFound
	}
	return campaign, nil
}

// Create persists a new campaign. A name already used by a non-deleted
// campaign is rejected; names of deleted campaigns are free for reuse.
func (s *CampaignService) Create(req *models.CampaignRequest) (*models.Campaign, error) {
	taken, err := s.repo.NameTaken(req.Name, "")
	if err != nil {
		return nil, fmt.Errorf("failed to check campaign name: %w", err)
	}
	if taken {
		return nil, ErrDuplicateCampaignName
	}

	campaign := &models.Campaign{
		Name:        req.Name,
		Description: req.Description,
		Status:      models.CampaignStatusActive,
		Leads:       *req.Leads,
		AccountIDs:  *req.AccountIDs,
	}
	if req.Status != "" {
		campaign.Status = models.CampaignStatus(req.Status)
	}

	if err := s.repo.Create(campaign); err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}

	s.events.PublishCampaignEvent("campaign.created", campaign)
	return campaign, nil
}

// Update replaces the mutable fields of an existing campaign. Status may be
// forced to any of the three values here, including "deleted". A missing or
// already-deleted target is not found.
func (s *CampaignService) Update(id string, req *models.CampaignRequest) (*models.Campaign, error) {
	campaign, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	campaign.Name = req.Name
	campaign.Description = req.Description
	campaign.Leads = *req.Leads
	campaign.AccountIDs = *req.AccountIDs
	if req.Status != "" {
		campaign.Status = models.CampaignStatus(req.Status)
	}

	if err := s.repo.Update(campaign); err != nil {
		return nil, fmt.Errorf("failed to update campaign: %w", err)
	}

	s.events.PublishCampaignEvent("campaign.updated", campaign)
	return campaign, nil
}

// Delete soft-deletes a campaign, leaving every other field untouched.
// Deleting an already-deleted campaign is not found, consistent with Get and
// Update.
func (s *CampaignService) Delete(id string) (*models.Campaign, error) {
	campaign, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	campaign.Status = models.CampaignStatusDeleted
	if err := s.repo.Update(campaign); err != nil {
		return nil, fmt.Errorf("failed to delete campaign: %w", err)
	}

	s.events.PublishCampaignEvent("campaign.deleted", campaign)
	return campaign, nil
}
