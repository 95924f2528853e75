package tracker

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReport_Inventory(t *testing.T) {
	tr, reports := newTestTracker(t)
	seed(t, tr)

	path, err := tr.GenerateReport(context.Background(), ReportInventory)
	require.NoError(t, err)
	assert.Equal(t, "inventory_report.csv", path)
	assert.Equal(t, [][]string{
		{"", "Type", "Quantity"},
		{"1", "food", "25"},
		{"2", "clothes", "5"},
	}, reports.saved["inventory_report"])
}

func TestGenerateReport_Donation(t *testing.T) {
	tr, reports := newTestTracker(t)
	seed(t, tr)

	_, err := tr.GenerateReport(context.Background(), ReportDonation)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"", "Donor", "Type", "Quantity"},
		{"1", "Andrew", "food", "10"},
		{"2", "Brian", "food", "20"},
		{"3", "Brian", "clothes", "5"},
	}, reports.saved["donation_report"])
}

func TestGenerateReport_EmptyTracker(t *testing.T) {
	tr, reports := newTestTracker(t)

	_, err := tr.GenerateReport(context.Background(), ReportInventory)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"", "Type", "Quantity"}}, reports.saved["inventory_report"])
}

func TestGenerateReport_InvalidType(t *testing.T) {
	for _, reportType := range []string{"analytics", "", "Inventory", "distribution"} {
		t.Run(reportType, func(t *testing.T) {
			tr, reports := newTestTracker(t)

			_, err := tr.GenerateReport(context.Background(), reportType)
			assert.ErrorIs(t, err, ErrInvalidReportType)
			assert.Empty(t, reports.saved)
		})
	}
}

func TestGenerateReport_StoreError(t *testing.T) {
	tr, reports := newTestTracker(t)
	reports.saveErr = errors.New("read-only filesystem")

	_, err := tr.GenerateReport(context.Background(), ReportDonation)
	assert.ErrorContains(t, err, "read-only filesystem")
}
