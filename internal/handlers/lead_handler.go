package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/outflo/outflo-backend/internal/models"
	"github.com/outflo/outflo-backend/internal/services"
	"github.com/outflo/outflo-backend/internal/services/excel"
)

type LeadHandler struct {
	leadService  *services.LeadService
	excelService *excel.Service
}

func NewLeadHandler(leadService *services.LeadService, excelService *excel.Service) *LeadHandler {
	return &LeadHandler{
		leadService:  leadService,
		excelService: excelService,
	}
}

// SearchLeads godoc
// @Summary Search leads
// @Description Case-insensitive substring search across name, job title, company, location and summary, capped at 50 results
// @Tags leads
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /leads/search [get]
func (h *LeadHandler) SearchLeads(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, models.Err("Search query parameter 'q' is required", ""))
		return
	}

	leads, err := h.leadService.Search(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Err("Failed to search leads", err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.OKCount("Leads fetched successfully", len(leads), leads))
}

// GetAllLeads godoc
// @Summary List all leads
// @Description Get every stored lead profile, newest first
// @Tags leads
// @Produce json
// @Success 200 {object} models.APIResponse
// @Failure 500 {object} models.APIError
// @Router /leads/get-leads [get]
func (h *LeadHandler) GetAllLeads(c *gin.Context) {
	leads, err := h.leadService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Err("Failed to fetch all leads", err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.OKCount("All leads fetched successfully", len(leads), leads))
}

// ExportLeads godoc
// @Summary Export leads to Excel
// @Description Export every stored lead profile to an .xlsx workbook
// @Tags leads
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 500 {object} models.APIError
// @Router /leads/export-leads [get]
func (h *LeadHandler) ExportLeads(c *gin.Context) {
	leads, err := h.leadService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Err("Failed to fetch leads for export", err.Error()))
		return
	}

	result, err := h.excelService.ExportLeads(leads)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Err("Failed to export leads", err.Error()))
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", result.Filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.File(result.Path)
}
