package domain

import "time"

// DateLayout is the calendar date format accepted for donation and
// distribution dates.
const DateLayout = "2006-01-02"

type Donation struct {
	ID         string
	Donor      string
	ItemType   string
	Quantity   int
	Date       time.Time
	RecordedAt time.Time
}

type Distribution struct {
	ID         string
	ItemType   string
	Quantity   int
	Date       time.Time
	RecordedAt time.Time
}

// InventoryEntry is the on-hand quantity of one item type.
type InventoryEntry struct {
	ItemType string
	Quantity int
}

// DonorTotal is the summed quantity a donor gave of one item type.
type DonorTotal struct {
	Donor    string
	ItemType string
	Quantity int
}
