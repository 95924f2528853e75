package local

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// LocalReportStore writes reports as comma-separated files in a directory.
type LocalReportStore struct {
	basePath string
}

func NewLocalReportStore(basePath string) (*LocalReportStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create report directory: %w", err)
	}
	return &LocalReportStore{basePath: basePath}, nil
}

// Path returns the file a report with the given name is written to.
func (s *LocalReportStore) Path(name string) string {
	return filepath.Join(s.basePath, name+".csv")
}

// Save writes to a temporary file first so a failed export never leaves a
// truncated report behind.
func (s *LocalReportStore) Save(ctx context.Context, name string, header []string, rows [][]string) (string, error) {
	if err := validName(name); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := os.CreateTemp(s.basePath, name+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	tmpPath := f.Name()

	w := csv.NewWriter(f)
	err = w.Write(header)
	if err == nil {
		err = w.WriteAll(rows)
	}
	if err != nil {
		if cerr := f.Close(); cerr != nil {
			slog.Error("failed to close file after write error", "error", cerr)
		}
		if rerr := os.Remove(tmpPath); rerr != nil {
			slog.Error("failed to remove file after write error", "error", rerr)
		}
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	if err := f.Close(); err != nil {
		if rerr := os.Remove(tmpPath); rerr != nil {
			slog.Error("failed to remove file after close error", "error", rerr)
		}
		return "", fmt.Errorf("failed to close file: %w", err)
	}

	path := s.Path(name)
	if err := os.Rename(tmpPath, path); err != nil {
		if rerr := os.Remove(tmpPath); rerr != nil {
			slog.Error("failed to remove file after rename error", "error", rerr)
		}
		return "", fmt.Errorf("failed to move report into place: %w", err)
	}
	return path, nil
}

// validName rejects names that would escape basePath.
func validName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid report name %q", name)
	}
	return nil
}
