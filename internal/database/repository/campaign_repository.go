package repository

import (
	"github.com/outflo/outflo-backend/internal/models"

	"gorm.io/gorm"
)

type CampaignRepository struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

// Create creates a new campaign
func (r *CampaignRepository) Create(campaign *models.Campaign) error {
	return r.db.Create(campaign).Error
}

// GetByID retrieves a campaign by ID regardless of status. Soft-delete
// filtering is a service concern; the row itself stays reachable here.
func (r *CampaignRepository) GetByID(id string) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.db.First(&campaign, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

// ListVisible retrieves all campaigns whose status is not deleted.
func (r *CampaignRepository) ListVisible() ([]*models.Campaign, error) {
	var campaigns []*models.Campaign
	err := r.db.Where("status <> ?", models.CampaignStatusDeleted).Find(&campaigns).Error
	return campaigns, err
}

// Update saves the full campaign record (last write wins).
func (r *CampaignRepository) Update(campaign *models.Campaign) error {
	return r.db.Save(campaign).Error
}

// NameTaken reports whether a non-deleted campaign other than excludeID
// already uses the given name.
func (r *CampaignRepository) NameTaken(name, excludeID string) (bool, error) {
	var count int64
	q := r.db.Model(&models.Campaign{}).
		Where("name = ? AND status <> ?", name, models.CampaignStatusDeleted)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}
