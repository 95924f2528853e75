package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/vbonduro/donationtracker/internal/domain"
)

type DonationStore struct {
	db *sql.DB
}

func NewDonationStore(db *sql.DB) *DonationStore {
	return &DonationStore{db: db}
}

func (s *DonationStore) Create(ctx context.Context, d *domain.Donation) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO donations (id, donor, item_type, quantity, donated_on, recorded_at) VALUES (?, ?, ?, ?, ?, ?)
	`, d.ID, d.Donor, d.ItemType, d.Quantity, d.Date.Format(domain.DateLayout), d.RecordedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to create donation: %w", err)
	}
	return nil
}

// List returns donations in the order they were recorded.
func (s *DonationStore) List(ctx context.Context) ([]*domain.Donation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, donor, item_type, quantity, donated_on, recorded_at FROM donations ORDER BY rowid ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list donations: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	var donations []*domain.Donation
	for rows.Next() {
		d, err := scanDonation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan donation: %w", err)
		}
		donations = append(donations, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating donations: %w", err)
	}

	return donations, nil
}

func scanDonation(rows *sql.Rows) (*domain.Donation, error) {
	d := &domain.Donation{}
	var date string
	if err := rows.Scan(&d.ID, &d.Donor, &d.ItemType, &d.Quantity, &date, &d.RecordedAt); err != nil {
		return nil, err
	}
	parsed, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("invalid stored date %q: %w", date, err)
	}
	d.Date = parsed
	return d, nil
}
