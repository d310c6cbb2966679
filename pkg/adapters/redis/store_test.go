package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seatwise/auctioneer/pkg/adapters/redis"
	"github.com/seatwise/auctioneer/pkg/domain"
	"github.com/seatwise/auctioneer/pkg/ports"
)

func newTestStore(t *testing.T) (*redis.Store, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	return redis.NewFromClient(client), mr
}

func TestStore_SaveGet(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	record := &ports.DealRecord{
		ID:       "deal-1",
		North:    "AQ3 AK3 J2 AQ652",
		South:    "K9742 J2 QJ65 K3",
		Dealer:   "N",
		Auction:  []string{"2N", "P", "3N", "P", "4D", "P", "4N", "P", "P", "P"},
		Contract: "4N",
	}
	require.NoError(t, store.Save(ctx, record))

	assert.True(t, mr.Exists("auctioneer:deal:deal-1"), "record key should be set")

	got, err := store.Get(ctx, "deal-1")
	require.NoError(t, err)
	assert.Equal(t, record, got)
}

func TestStore_GetMissing(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrDealNotFound)
}

func TestStore_List(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	for _, id := range []string{"a", "b"} {
		require.NoError(t, store.Save(ctx, &ports.DealRecord{ID: id}))
	}

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, ids)
}

func TestStore_CustomPrefix(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	store := redis.NewFromClient(client, redis.WithPrefix("bridge:"))

	require.NoError(t, store.Save(context.Background(), &ports.DealRecord{ID: "x"}))
	assert.True(t, mr.Exists("bridge:x"))
}
