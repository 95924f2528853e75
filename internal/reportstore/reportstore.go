package reportstore

import "context"

// ReportStore persists tabular reports under a fixed name. Saving a report
// with an existing name replaces it.
type ReportStore interface {
	Save(ctx context.Context, name string, header []string, rows [][]string) (path string, err error)
}
