package services

import (
	"fmt"

	"github.com/outflo/outflo-backend/internal/models"
)

// searchResultLimit caps substring searches for performance.
const searchResultLimit = 50

// LeadStore is the persistence surface the lead service needs.
type LeadStore interface {
	Search(query string, limit int) ([]*models.LeadProfile, error)
	ListAll() ([]*models.LeadProfile, error)
}

type LeadService struct {
	repo LeadStore
}

func NewLeadService(repo LeadStore) *LeadService {
	return &LeadService{repo: repo}
}

// Search matches the query as a case-insensitive substring against name, job
// title, company, location and summary. A zero-match query is a successful
// empty result.
func (s *LeadService) Search(query string) ([]*models.LeadProfile, error) {
	leads, err := s.repo.Search(query, searchResultLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search leads: %w", err)
	}
	return leads, nil
}

// List returns every stored lead profile, newest first.
func (s *LeadService) List() ([]*models.LeadProfile, error) {
	leads, err := s.repo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	return leads, nil
}
