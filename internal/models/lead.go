package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadProfile is a harvested person profile. Records are created by the
// ingestion job and only ever read through the API; there is no update or
// delete surface.
type LeadProfile struct {
	ID         string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ExternalID string `json:"externalId" gorm:"type:varchar(255);uniqueIndex;not null"`
	Name       string `json:"name" gorm:"type:varchar(255)"`
	Handle     string `json:"handle" gorm:"type:varchar(255)"`
	JobTitle   string `json:"jobTitle" gorm:"type:varchar(255)"`
	Company    string `json:"company" gorm:"type:varchar(255)"`
	Location   string `json:"location" gorm:"type:varchar(255)"`
	ProfileURL string `json:"profileUrl" gorm:"type:text"`
	Summary    string `json:"summary" gorm:"type:text"`
	ImageURL   string `json:"imageUrl" gorm:"type:text"`

	CreatedAt time.Time `json:"createdAt" gorm:"index"`
}

// TableName specifies the table name for the LeadProfile model
func (LeadProfile) TableName() string {
	return "lead_profiles"
}

// BeforeCreate assigns an id when the column default did not run.
func (p *LeadProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
