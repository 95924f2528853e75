package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/donationtracker/internal/domain"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateLayout, s)
	require.NoError(t, err)
	return d
}

func TestDonationStoreCreate(t *testing.T) {
	donations := NewDonationStore(openTestDB(t))
	ctx := context.Background()
	recordedAt := time.Date(2024, 4, 10, 15, 30, 0, 0, time.UTC)

	err := donations.Create(ctx, &domain.Donation{
		ID: "d1", Donor: "Andrew", ItemType: "food", Quantity: 10, Date: date(t, "2024-04-01"), RecordedAt: recordedAt,
	})
	require.NoError(t, err)

	list, err := donations.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	got := list[0]
	assert.Equal(t, "d1", got.ID)
	assert.Equal(t, "Andrew", got.Donor)
	assert.Equal(t, "food", got.ItemType)
	assert.Equal(t, 10, got.Quantity)
	assert.Equal(t, date(t, "2024-04-01"), got.Date)
	assert.True(t, recordedAt.Equal(got.RecordedAt), "recorded_at %v, want %v", got.RecordedAt, recordedAt)
}

func TestDonationStoreCreate_DuplicateID(t *testing.T) {
	donations := NewDonationStore(openTestDB(t))
	ctx := context.Background()
	d := &domain.Donation{ID: "d1", Donor: "Andrew", ItemType: "food", Quantity: 10, Date: date(t, "2024-04-01")}

	require.NoError(t, donations.Create(ctx, d))
	assert.Error(t, donations.Create(ctx, d))
}

func TestDonationStoreList_InsertionOrder(t *testing.T) {
	donations := NewDonationStore(openTestDB(t))
	ctx := context.Background()

	// IDs sort opposite to insertion order.
	require.NoError(t, donations.Create(ctx, &domain.Donation{ID: "z", Donor: "Brian", ItemType: "food", Quantity: 20, Date: date(t, "2024-04-01")}))
	require.NoError(t, donations.Create(ctx, &domain.Donation{ID: "a", Donor: "Andrew", ItemType: "money", Quantity: 15, Date: date(t, "2024-04-03")}))

	list, err := donations.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "z", list[0].ID)
	assert.Equal(t, "a", list[1].ID)
}

func TestDonationStoreList_Empty(t *testing.T) {
	donations := NewDonationStore(openTestDB(t))

	list, err := donations.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}
