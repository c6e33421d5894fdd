package services_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/outflo/outflo-backend/internal/models"
	"github.com/outflo/outflo-backend/internal/services"
)

// memCampaignStore is an in-memory CampaignStore.
type memCampaignStore struct {
	campaigns map[string]models.Campaign
	order     []string
}

func newMemCampaignStore() *memCampaignStore {
	return &memCampaignStore{campaigns: make(map[string]models.Campaign)}
}

func (m *memCampaignStore) Create(campaign *models.Campaign) error {
	if campaign.ID == "" {
		campaign.ID = uuid.NewString()
	}
	m.campaigns[campaign.ID] = *campaign
	m.order = append(m.order, campaign.ID)
	return nil
}

func (m *memCampaignStore) GetByID(id string) (*models.Campaign, error) {
	campaign, ok := m.campaigns[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &campaign, nil
}

func (m *memCampaignStore) ListVisible() ([]*models.Campaign, error) {
	var out []*models.Campaign
	for _, id := range m.order {
		campaign := m.campaigns[id]
		if campaign.Status != models.CampaignStatusDeleted {
			out = append(out, &campaign)
		}
	}
	return out, nil
}

func (m *memCampaignStore) Update(campaign *models.Campaign) error {
	m.campaigns[campaign.ID] = *campaign
	return nil
}

func (m *memCampaignStore) NameTaken(name, excludeID string) (bool, error) {
	for _, campaign := range m.campaigns {
		if campaign.Name == name && campaign.Status != models.CampaignStatusDeleted && campaign.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func campaignRequest(name string) *models.CampaignRequest {
	return &models.CampaignRequest{
		Name:        name,
		Description: "d",
		Leads:       &[]string{},
		AccountIDs:  &[]string{},
	}
}

func TestCreateDefaultsToActive(t *testing.T) {
	svc := services.NewCampaignService(newMemCampaignStore(), nil)

	campaign, err := svc.Create(campaignRequest("Q1"))
	require.NoError(t, err)

	assert.Equal(t, models.CampaignStatusActive, campaign.Status)
	assert.NotEmpty(t, campaign.ID)
	assert.Empty(t, campaign.Leads)
	assert.Empty(t, campaign.AccountIDs)
}

func TestCreateRejectsDuplicateName(t *testing.T) {
	svc := services.NewCampaignService(newMemCampaignStore(), nil)

	_, err := svc.Create(campaignRequest("Q1"))
	require.NoError(t, err)

	_, err = svc.Create(campaignRequest("Q1"))
	assert.ErrorIs(t, err, services.ErrDuplicateCampaignName)
}

func TestCreateAllowsNameOfDeletedCampaign(t *testing.T) {
	svc := services.NewCampaignService(newMemCampaignStore(), nil)

	first, err := svc.Create(campaignRequest("Q1"))
	require.NoError(t, err)

	_, err = svc.Delete(first.ID)
	require.NoError(t, err)

	second, err := svc.Create(campaignRequest("Q1"))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestSoftDeleteHidesCampaignButKeepsRecord(t *testing.T) {
	store := newMemCampaignStore()
	svc := services.NewCampaignService(store, nil)

	campaign, err := svc.Create(campaignRequest("Q1"))
	require.NoError(t, err)

	deleted, err := svc.Delete(campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CampaignStatusDeleted, deleted.Status)

	// Gone from the listing and from Get.
	visible, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, visible)

	_, err = svc.Get(campaign.ID)
	assert.ErrorIs(t, err, services.ErrCampaignNotFound)

	// Still reachable directly in the store, marked deleted.
	row, err := store.GetByID(campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CampaignStatusDeleted, row.Status)
	assert.Equal(t, "Q1", row.Name)
}

func TestDeleteAlreadyDeletedIsNotFound(t *testing.T) {
	svc := services.NewCampaignService(newMemCampaignStore(), nil)

	campaign, err := svc.Create(campaignRequest("Q1"))
	require.NoError(t, err)

	_, err = svc.Delete(campaign.ID)
	require.NoError(t, err)

	_, err = svc.Delete(campaign.ID)
	assert.ErrorIs(t, err, services.ErrCampaignNotFound)
}

func TestDeleteMissingIsNotFound(t *testing.T) {
	svc := services.NewCampaignService(newMemCampaignStore(), nil)

	_, err := svc.Delete("no-such-id")
	assert.ErrorIs(t, err, services.ErrCampaignNotFound)
}

func TestUpdateStatusRoundTripsOtherFields(t *testing.T) {
	svc := services.NewCampaignService(newMemCampaignStore(), nil)

	req := &models.CampaignRequest{
		Name:        "Q1",
		Description: "first quarter",
		Leads:       &[]string{"https://example.com/in/a"},
		AccountIDs:  &[]string{"acc-1", "acc-2"},
	}
	campaign, err := svc.Create(req)
	require.NoError(t, err)

	req.Status = "inactive"
	updated, err := svc.Update(campaign.ID, req)
	require.NoError(t, err)
	assert.Equal(t, models.CampaignStatusInactive, updated.Status)

	req.Status = "active"
	updated, err = svc.Update(campaign.ID, req)
	require.NoError(t, err)

	assert.Equal(t, models.CampaignStatusActive, updated.Status)
	assert.Equal(t, "Q1", updated.Name)
	assert.Equal(t, "first quarter", updated.Description)
	assert.Equal(t, []string{"https://example.com/in/a"}, updated.Leads)
	assert.Equal(t, []string{"acc-1", "acc-2"}, updated.AccountIDs)
}

func TestUpdateCanForceDeletedStatus(t *testing.T) {
	svc := services.NewCampaignService(newMemCampaignStore(), nil)

	campaign, err := svc.Create(campaignRequest("Q1"))
	require.NoError(t, err)

	req := campaignRequest("Q1")
	req.Status = "deleted"
	updated, err := svc.Update(campaign.ID, req)
	require.NoError(t, err)
	assert.Equal(t, models.CampaignStatusDeleted, updated.Status)

	// The soft-deleted target is now invisible to further updates.
	_, err = svc.Update(campaign.ID, campaignRequest("Q1"))
	assert.ErrorIs(t, err, services.ErrCampaignNotFound)
}
