package excel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/outflo/outflo-backend/internal/models"
	"github.com/outflo/outflo-backend/internal/services/excel"
)

func TestExportLeadsWritesWorkbook(t *testing.T) {
	svc := excel.NewService(t.TempDir())

	result, err := svc.ExportLeads([]*models.LeadProfile{
		{Name: "Jane Doe", Handle: "jane-doe", JobTitle: "Head of Growth", Company: "Acme Corp"},
		{Name: "John Roe", Company: "Globex"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Rows)

	f, err := excelize.OpenFile(result.Path)
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue("Leads", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", name)

	company, err := f.GetCellValue("Leads", "D3")
	require.NoError(t, err)
	assert.Equal(t, "Globex", company)

	header, err := f.GetCellValue("Leads", "F1")
	require.NoError(t, err)
	assert.Equal(t, "Profile URL", header)
}
