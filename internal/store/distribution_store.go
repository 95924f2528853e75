package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/vbonduro/donationtracker/internal/domain"
)

type DistributionStore struct {
	db *sql.DB
}

func NewDistributionStore(db *sql.DB) *DistributionStore {
	return &DistributionStore{db: db}
}

func (s *DistributionStore) Create(ctx context.Context, d *domain.Distribution) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO distributions (id, item_type, quantity, distributed_on, recorded_at) VALUES (?, ?, ?, ?, ?)
	`, d.ID, d.ItemType, d.Quantity, d.Date.Format(domain.DateLayout), d.RecordedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to create distribution: %w", err)
	}
	return nil
}

// List returns distributions in the order they were recorded.
func (s *DistributionStore) List(ctx context.Context) ([]*domain.Distribution, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, item_type, quantity, distributed_on, recorded_at FROM distributions ORDER BY rowid ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list distributions: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	var distributions []*domain.Distribution
	for rows.Next() {
		d := &domain.Distribution{}
		var date string
		if err := rows.Scan(&d.ID, &d.ItemType, &d.Quantity, &date, &d.RecordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan distribution: %w", err)
		}
		if d.Date, err = time.Parse(domain.DateLayout, date); err != nil {
			return nil, fmt.Errorf("invalid stored date %q: %w", date, err)
		}
		distributions = append(distributions, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating distributions: %w", err)
	}

	return distributions, nil
}
