package tracker

import (
	"context"
	"fmt"
	"strconv"
)

const (
	ReportInventory = "inventory"
	ReportDonation  = "donation"
)

// GenerateReport exports the inventory or the grouped donation totals and
// returns the path of the written file. Rows carry a 1-based index column
// with an empty header cell.
func (t *Tracker) GenerateReport(ctx context.Context, reportType string) (string, error) {
	var (
		name   string
		header []string
		rows   [][]string
	)

	switch reportType {
	case ReportInventory:
		name = "inventory_report"
		header = []string{"", "Type", "Quantity"}
		for i, e := range t.Inventory() {
			rows = append(rows, []string{strconv.Itoa(i + 1), e.ItemType, strconv.Itoa(e.Quantity)})
		}
	case ReportDonation:
		name = "donation_report"
		header = []string{"", "Donor", "Type", "Quantity"}
		for i, g := range t.DonationTotals() {
			rows = append(rows, []string{strconv.Itoa(i + 1), g.Donor, g.ItemType, strconv.Itoa(g.Quantity)})
		}
	default:
		return "", t.reject("generate report", fmt.Errorf("%w: got %q", ErrInvalidReportType, reportType), "report_type", reportType)
	}

	path, err := t.reports.Save(ctx, name, header, rows)
	if err != nil {
		return "", fmt.Errorf("failed to export %s report: %w", reportType, err)
	}
	t.logger.Info("report generated", "report_type", reportType, "rows", len(rows), "path", path)
	return path, nil
}
