package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seatwise/auctioneer/pkg/adapters/memory"
	"github.com/seatwise/auctioneer/pkg/domain"
	"github.com/seatwise/auctioneer/pkg/ports"
)

func TestStore_SaveGet(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	record := &ports.DealRecord{
		ID:       "deal-1",
		North:    "AQ3 AK3 J2 AQ652",
		South:    "K9742 J2 QJ65 K3",
		Dealer:   "N",
		Auction:  []string{"2N", "P", "3N", "P", "4D", "P", "4N", "P", "P", "P"},
		Contract: "4N",
		BidAt:    time.Now().UTC(),
	}
	require.NoError(t, store.Save(ctx, record))

	got, err := store.Get(ctx, "deal-1")
	require.NoError(t, err)
	assert.Equal(t, record, got)

	// The store must hold its own copy.
	record.Contract = "7N"
	got, err = store.Get(ctx, "deal-1")
	require.NoError(t, err)
	assert.Equal(t, "4N", got.Contract)
}

func TestStore_GetMissing(t *testing.T) {
	store := memory.NewStore()
	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrDealNotFound)
}

func TestStore_ListSorted(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, store.Save(ctx, &ports.DealRecord{ID: id}))
	}

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}
