package repository

import (
	"github.com/outflo/outflo-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// Search performs a case-insensitive substring match across the profile text
// fields, capped at limit results. Ordering is whatever the store returns.
func (r *LeadRepository) Search(query string, limit int) ([]*models.LeadProfile, error) {
	var leads []*models.LeadProfile
	pattern := "%" + query + "%"
	err := r.db.
		Where("name ILIKE ? OR job_title ILIKE ? OR company ILIKE ? OR location ILIKE ? OR summary ILIKE ?",
			pattern, pattern, pattern, pattern, pattern).
		Limit(limit).
		Find(&leads).Error
	return leads, err
}

// ListAll retrieves every lead profile, newest first.
func (r *LeadRepository) ListAll() ([]*models.LeadProfile, error) {
	var leads []*models.LeadProfile
	err := r.db.Order("created_at DESC").Find(&leads).Error
	return leads, err
}

// UpsertByExternalID inserts the profile if no row with the same external id
// exists. Existing rows are never overwritten. Returns true when a row was
// inserted, false when the external id was already present.
func (r *LeadRepository) UpsertByExternalID(lead *models.LeadProfile) (bool, error) {
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "external_id"}},
		DoNothing: true,
	}).Create(lead)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
