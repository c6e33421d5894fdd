package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/outflo/outflo-backend/internal/models"
	"github.com/outflo/outflo-backend/internal/services"
)

type CampaignHandler struct {
	campaignService *services.CampaignService
}

func NewCampaignHandler(campaignService *services.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService}
}

// GetCampaigns godoc
// @Summary List campaigns
// @Description Get all campaigns that have not been deleted
// @Tags campaigns
// @Produce json
// @Success 200 {object} models.APIResponse
// @Failure 500 {object} models.APIError
// @Router /campaigns/get-campaign [get]
func (h *CampaignHandler) GetCampaigns(c *gin.Context) {
	campaigns, err := h.campaignService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Err("Failed to fetch campaigns", err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.OK("Campaigns fetched successfully", campaigns))
}

// GetCampaignByID godoc
// @Summary Get campaign by ID
// @Description Get one campaign unless it is missing or deleted
// @Tags campaigns
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} models.APIResponse
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /campaigns/get-campaign/{id} [get]
func (h *CampaignHandler) GetCampaignByID(c *gin.Context) {
	campaign, err := h.campaignService.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrCampaignNotFound) {
			c.JSON(http.StatusNotFound, models.Err("Campaign not found", err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, models.Err("Failed to fetch campaign", err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.OK("Campaign fetched successfully", campaign))
}

// CreateCampaign godoc
// @Summary Create a campaign
// @Description Create a campaign; the name must be unique among non-deleted campaigns
// @Tags campaigns
// @Accept json
// @Produce json
// @Param request body models.CampaignRequest true "Campaign payload"
// @Success 201 {object} models.APIResponse
// @Failure 400 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /campaigns/add-campaign [post]
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	var req models.CampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	campaign, err := h.campaignService.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateCampaignName) {
			c.JSON(http.StatusConflict, models.Err("Campaign already exists", err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, models.Err("Failed to create campaign", err.Error()))
		return
	}

	c.JSON(http.StatusCreated, models.OK("Campaign created successfully", campaign))
}

// UpdateCampaign godoc
// @Summary Update a campaign
// @Description Replace the fields of an existing campaign; status may be set to any of the three values
// @Tags campaigns
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID"
// @Param request body models.CampaignRequest true "Campaign payload"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /campaigns/update-campaign/{id} [put]
func (h *CampaignHandler) UpdateCampaign(c *gin.Context) {
	var req models.CampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	campaign, err := h.campaignService.Update(c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, services.ErrCampaignNotFound) {
			c.JSON(http.StatusNotFound, models.Err("Campaign not found", err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, models.Err("Failed to update campaign", err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.OK("Campaign updated successfully", campaign))
}

// DeleteCampaign godoc
// @Summary Soft-delete a campaign
// @Description Set the campaign status to deleted; the record is never physically removed
// @Tags campaigns
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} models.APIResponse
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /campaigns/delete-campaign/{id} [delete]
func (h *CampaignHandler) DeleteCampaign(c *gin.Context) {
	campaign, err := h.campaignService.Delete(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrCampaignNotFound) {
			c.JSON(http.StatusNotFound, models.Err("Campaign not found", err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, models.Err("Failed to delete campaign", err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.OK("Campaign deleted successfully", campaign))
}
