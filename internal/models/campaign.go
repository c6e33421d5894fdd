package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignStatusActive   CampaignStatus = "active"
	CampaignStatusInactive CampaignStatus = "inactive"
	CampaignStatusDeleted  CampaignStatus = "deleted"
)

// Valid reports whether s is one of the known campaign statuses.
func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignStatusActive, CampaignStatusInactive, CampaignStatusDeleted:
		return true
	}
	return false
}

// Campaign represents an outreach campaign. Deletion is logical only:
// status moves to "deleted" and the row stays in place.
type Campaign struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name        string         `json:"name" gorm:"type:varchar(255);not null;index"`
	Description string         `json:"description" gorm:"type:text;not null"`
	Status      CampaignStatus `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`
	Leads       []string       `json:"leads" gorm:"serializer:json;type:jsonb"`
	AccountIDs  []string       `json:"accountIDs" gorm:"serializer:json;type:jsonb"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name for the Campaign model
func (Campaign) TableName() string {
	return "campaigns"
}

// BeforeCreate assigns an id when the column default did not run.
func (c *Campaign) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// CampaignRequest is the payload for both create and update. All fields are
// re-validated on update; leads and accountIDs must be present and
// array-typed but may be empty.
type CampaignRequest struct {
	Name        string    `json:"name" binding:"required" example:"Q1 outbound"`
	Description string    `json:"description" binding:"required" example:"First quarter outreach push"`
	Status      string    `json:"status" binding:"omitempty,oneof=active inactive deleted" example:"active"`
	Leads       *[]string `json:"leads" binding:"required"`
	AccountIDs  *[]string `json:"accountIDs" binding:"required"`
}
