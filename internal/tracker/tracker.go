package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vbonduro/donationtracker/internal/domain"
	"github.com/vbonduro/donationtracker/internal/reportstore"
)

// donationRepository is the subset of store.DonationStore that Tracker requires.
type donationRepository interface {
	Create(ctx context.Context, d *domain.Donation) error
	List(ctx context.Context) ([]*domain.Donation, error)
}

// distributionRepository is the subset of store.DistributionStore that Tracker requires.
type distributionRepository interface {
	Create(ctx context.Context, d *domain.Distribution) error
	List(ctx context.Context) ([]*domain.Distribution, error)
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock replaces time.Now as the source of "today" for date validation.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithJournal records every accepted donation and distribution in the given
// repositories before the in-memory state changes.
func WithJournal(donations donationRepository, distributions distributionRepository) Option {
	return func(t *Tracker) {
		t.donationStore = donations
		t.distributionStore = distributions
	}
}

// Tracker holds the inventory and the donation and distribution logs. It is
// not safe for concurrent use.
type Tracker struct {
	inventory     map[string]int
	itemTypes     []string // insertion order of inventory keys
	donations     []domain.Donation
	distributions []domain.Distribution

	donationStore     donationRepository
	distributionStore distributionRepository
	reports           reportstore.ReportStore
	now               func() time.Time
	logger            *slog.Logger
}

func NewTracker(reports reportstore.ReportStore, logger *slog.Logger, opts ...Option) *Tracker {
	t := &Tracker{
		inventory: make(map[string]int),
		reports:   reports,
		now:       time.Now,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// RegisterDonation validates a donation, adds its quantity to the inventory
// and appends it to the donation log.
func (t *Tracker) RegisterDonation(ctx context.Context, donor, itemType string, quantity int, dateStr string) error {
	date, err := t.validateDonation(donor, itemType, quantity, dateStr)
	if err != nil {
		return t.reject("register donation", err, "donor", donor, "type", itemType, "quantity", quantity)
	}

	d := domain.Donation{
		ID:         uuid.NewString(),
		Donor:      donor,
		ItemType:   itemType,
		Quantity:   quantity,
		Date:       date,
		RecordedAt: t.now(),
	}
	if t.donationStore != nil {
		if err := t.donationStore.Create(ctx, &d); err != nil {
			return fmt.Errorf("failed to journal donation: %w", err)
		}
	}

	t.applyDonation(d)
	t.logger.Info("donation registered",
		"id", d.ID, "donor", donor, "type", itemType, "quantity", quantity,
		"date", dateStr, "on_hand", t.inventory[itemType])
	return nil
}

// LogDistribution validates a distribution, removes its quantity from the
// inventory and appends it to the distribution log.
func (t *Tracker) LogDistribution(ctx context.Context, itemType string, quantity int, dateStr string) error {
	date, err := t.validateDistribution(itemType, quantity, dateStr)
	if err != nil {
		return t.reject("log distribution", err, "type", itemType, "quantity", quantity)
	}

	d := domain.Distribution{
		ID:         uuid.NewString(),
		ItemType:   itemType,
		Quantity:   quantity,
		Date:       date,
		RecordedAt: t.now(),
	}
	if t.distributionStore != nil {
		if err := t.distributionStore.Create(ctx, &d); err != nil {
			return fmt.Errorf("failed to journal distribution: %w", err)
		}
	}

	t.applyDistribution(d)
	t.logger.Info("distribution logged",
		"id", d.ID, "type", itemType, "quantity", quantity,
		"date", dateStr, "on_hand", t.inventory[itemType])
	return nil
}

func (t *Tracker) validateDonation(donor, itemType string, quantity int, dateStr string) (time.Time, error) {
	if err := checkProvided("donor", donor); err != nil {
		return time.Time{}, err
	}
	return t.validateEvent(itemType, quantity, dateStr)
}

func (t *Tracker) validateDistribution(itemType string, quantity int, dateStr string) (time.Time, error) {
	date, err := t.validateEvent(itemType, quantity, dateStr)
	if err != nil {
		return time.Time{}, err
	}
	onHand, ok := t.inventory[itemType]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %s", ErrUnknownInventoryType, itemType)
	}
	if onHand < quantity {
		return time.Time{}, fmt.Errorf("%w: %d %s requested, %d on hand", ErrInsufficientInventory, quantity, itemType, onHand)
	}
	return date, nil
}

// validateEvent runs the checks shared by donations and distributions:
// presence, then date, then sign. The sign check runs before any inventory
// check so a negative quantity never reaches the subtraction.
func (t *Tracker) validateEvent(itemType string, quantity int, dateStr string) (time.Time, error) {
	if err := checkProvided("type", itemType); err != nil {
		return time.Time{}, err
	}
	if err := checkQuantityProvided(quantity); err != nil {
		return time.Time{}, err
	}
	if err := checkProvided("date", dateStr); err != nil {
		return time.Time{}, err
	}
	date, err := parseDate(dateStr, t.now())
	if err != nil {
		return time.Time{}, err
	}
	if err := checkQuantityPositive(quantity); err != nil {
		return time.Time{}, err
	}
	return date, nil
}

func (t *Tracker) applyDonation(d domain.Donation) {
	if _, ok := t.inventory[d.ItemType]; !ok {
		t.itemTypes = append(t.itemTypes, d.ItemType)
	}
	t.inventory[d.ItemType] += d.Quantity
	t.donations = append(t.donations, d)
}

func (t *Tracker) applyDistribution(d domain.Distribution) {
	t.inventory[d.ItemType] -= d.Quantity
	t.distributions = append(t.distributions, d)
}

func (t *Tracker) reject(op string, err error, attrs ...any) error {
	t.logger.Warn(op+" rejected", append(attrs, "error", err)...)
	return err
}

// Replay loads the journaled history into an empty Tracker. Entries are not
// re-validated or re-journaled.
func (t *Tracker) Replay(ctx context.Context) error {
	if t.donationStore == nil || t.distributionStore == nil {
		return errors.New("no journal configured")
	}
	if len(t.donations) > 0 || len(t.distributions) > 0 {
		return errors.New("replay requires an empty tracker")
	}

	donations, err := t.donationStore.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load donations: %w", err)
	}
	distributions, err := t.distributionStore.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load distributions: %w", err)
	}

	for _, d := range donations {
		t.applyDonation(*d)
	}
	for _, d := range distributions {
		t.applyDistribution(*d)
	}
	t.logger.Info("journal replayed", "donations", len(donations), "distributions", len(distributions))
	return nil
}

// Quantity returns the on-hand quantity of itemType and whether the type has
// ever been donated.
func (t *Tracker) Quantity(itemType string) (int, bool) {
	q, ok := t.inventory[itemType]
	return q, ok
}

// Inventory returns the on-hand quantities in the order item types were first
// donated.
func (t *Tracker) Inventory() []domain.InventoryEntry {
	entries := make([]domain.InventoryEntry, 0, len(t.itemTypes))
	for _, it := range t.itemTypes {
		entries = append(entries, domain.InventoryEntry{ItemType: it, Quantity: t.inventory[it]})
	}
	return entries
}

func (t *Tracker) Donations() []domain.Donation {
	return append([]domain.Donation(nil), t.donations...)
}

func (t *Tracker) Distributions() []domain.Distribution {
	return append([]domain.Distribution(nil), t.distributions...)
}

// DonationTotals sums donated quantities per (donor, type). Groups are
// returned in the order their first donation was registered.
func (t *Tracker) DonationTotals() []domain.DonorTotal {
	type key struct{ donor, itemType string }
	index := make(map[key]int)
	var totals []domain.DonorTotal
	for _, d := range t.donations {
		k := key{d.Donor, d.ItemType}
		i, ok := index[k]
		if !ok {
			i = len(totals)
			index[k] = i
			totals = append(totals, domain.DonorTotal{Donor: d.Donor, ItemType: d.ItemType})
		}
		totals[i].Quantity += d.Quantity
	}
	return totals
}
