// Package excel renders lead profiles into spreadsheet workbooks for bulk
// download from the dashboard.
package excel

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/outflo/outflo-backend/internal/models"
)

const leadsSheet = "Leads"

// Service handles Excel export of lead profiles.
type Service struct {
	exportsDir string
}

// NewService creates an Excel export service writing into exportsDir.
func NewService(exportsDir string) *Service {
	if _, err := os.Stat(exportsDir); os.IsNotExist(err) {
		os.MkdirAll(exportsDir, 0755)
	}
	return &Service{exportsDir: exportsDir}
}

// ExportResult contains the result of an export operation
type ExportResult struct {
	Filename string
	Path     string
	Rows     int
}

// ExportLeads writes the given profiles to a timestamped .xlsx file and
// returns its location.
func (s *Service) ExportLeads(leads []*models.LeadProfile) (*ExportResult, error) {
	filename := fmt.Sprintf("leads_%d.xlsx", time.Now().Unix())
	filePath := filepath.Join(s.exportsDir, filename)

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(leadsSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Name", "Handle", "Job Title", "Company", "Location", "Profile URL", "Summary"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to build header cell: %w", err)
		}
		if err := f.SetCellValue(leadsSheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, lead := range leads {
		values := []string{
			lead.Name,
			lead.Handle,
			lead.JobTitle,
			lead.Company,
			lead.Location,
			lead.ProfileURL,
			lead.Summary,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, fmt.Errorf("failed to build cell name: %w", err)
			}
			if err := f.SetCellValue(leadsSheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}

	if err := f.SaveAs(filePath); err != nil {
		return nil, fmt.Errorf("failed to save workbook: %w", err)
	}

	return &ExportResult{
		Filename: filename,
		Path:     filePath,
		Rows:     len(leads),
	}, nil
}
