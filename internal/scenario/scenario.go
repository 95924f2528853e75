// Package scenario reads driver files that list donations, distributions and
// reports to apply to a tracker in order.
package scenario

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vbonduro/donationtracker/internal/tracker"
)

//go:embed sample.yaml
var sample []byte

// Entry fields are decoded untyped so that a value of the wrong YAML type
// (a quoted or fractional quantity, a numeric donor, a boolean item type) is
// reported as tracker.ErrWrongType instead of being silently converted.
// yaml.v3 keeps unquoted dates such as 2024-04-01 as strings when decoding
// into an interface value.

type Donation struct {
	Donor    any `yaml:"donor"`
	Type     any `yaml:"type"`
	Quantity any `yaml:"quantity"`
	Date     any `yaml:"date"`
}

type Distribution struct {
	Type     any `yaml:"type"`
	Quantity any `yaml:"quantity"`
	Date     any `yaml:"date"`
}

type Scenario struct {
	Donations     []Donation     `yaml:"donations"`
	Distributions []Distribution `yaml:"distributions"`
	Reports       []any          `yaml:"reports"`
}

// Target is the subset of tracker.Tracker a scenario drives.
type Target interface {
	RegisterDonation(ctx context.Context, donor, itemType string, quantity int, dateStr string) error
	LogDistribution(ctx context.Context, itemType string, quantity int, dateStr string) error
	GenerateReport(ctx context.Context, reportType string) (string, error)
}

// Default returns the built-in sample: five donations, two distributions and
// both reports.
func Default() (*Scenario, error) {
	return Parse(sample)
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	return &sc, nil
}

// Apply registers every donation, then logs every distribution, then
// generates every report, stopping at the first failure. It returns the
// paths of the generated reports.
func (sc *Scenario) Apply(ctx context.Context, t Target) ([]string, error) {
	for i, d := range sc.Donations {
		if err := d.apply(ctx, t); err != nil {
			return nil, fmt.Errorf("donation %d: %w", i+1, err)
		}
	}

	for i, d := range sc.Distributions {
		if err := d.apply(ctx, t); err != nil {
			return nil, fmt.Errorf("distribution %d: %w", i+1, err)
		}
	}

	paths := make([]string, 0, len(sc.Reports))
	for _, r := range sc.Reports {
		reportType, err := tracker.StringOf("report type", r)
		if err != nil {
			return nil, fmt.Errorf("report %v: %w", r, err)
		}
		path, err := t.GenerateReport(ctx, reportType)
		if err != nil {
			return nil, fmt.Errorf("report %q: %w", reportType, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (d Donation) apply(ctx context.Context, t Target) error {
	if err := checkPresent(field{"donor", d.Donor}, field{"type", d.Type}, field{"quantity", d.Quantity}, field{"date", d.Date}); err != nil {
		return err
	}
	donor, err := tracker.StringOf("donor", d.Donor)
	if err != nil {
		return err
	}
	itemType, err := tracker.StringOf("type", d.Type)
	if err != nil {
		return err
	}
	quantity, err := tracker.QuantityOf(d.Quantity)
	if err != nil {
		return err
	}
	date, err := tracker.StringOf("date", d.Date)
	if err != nil {
		return err
	}
	return t.RegisterDonation(ctx, donor, itemType, quantity, date)
}

func (d Distribution) apply(ctx context.Context, t Target) error {
	if err := checkPresent(field{"type", d.Type}, field{"quantity", d.Quantity}, field{"date", d.Date}); err != nil {
		return err
	}
	itemType, err := tracker.StringOf("type", d.Type)
	if err != nil {
		return err
	}
	quantity, err := tracker.QuantityOf(d.Quantity)
	if err != nil {
		return err
	}
	date, err := tracker.StringOf("date", d.Date)
	if err != nil {
		return err
	}
	return t.LogDistribution(ctx, itemType, quantity, date)
}

type field struct {
	name  string
	value any
}

// checkPresent runs before any type check so that an absent field is
// reported as missing even when another field has the wrong type.
func checkPresent(fields ...field) error {
	for _, f := range fields {
		switch v := f.value.(type) {
		case nil:
			return fmt.Errorf("%w: %s", tracker.ErrMissingInput, f.name)
		case string:
			if v == "" {
				return fmt.Errorf("%w: %s", tracker.ErrMissingInput, f.name)
			}
		case int:
			if v == 0 {
				return fmt.Errorf("%w: %s", tracker.ErrMissingInput, f.name)
			}
		}
	}
	return nil
}
