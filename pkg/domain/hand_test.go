package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seatwise/auctioneer/pkg/domain"
)

func TestParseHand(t *testing.T) {
	hand, err := domain.ParseHand("AQ3 AK3 J2 AQ652")
	require.NoError(t, err)
	assert.Equal(t, [domain.NumSuits]int{3, 3, 2, 5}, hand.Lengths())
	assert.Equal(t, [domain.NumSuits]int{5, 3, 3, 2}, hand.SortedLengths())
	assert.Equal(t, "AQ3 AK3 J2 AQ652", hand.String())
}

func TestParseHand_Invalid(t *testing.T) {
	for _, bad := range []string{"", "AQ3 AK3 J2", "AQ3 AK3 J2 AQ652 T9"} {
		_, err := domain.ParseHand(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidHand, "input %q", bad)
	}
}

func TestHand_Suit(t *testing.T) {
	hand, err := domain.ParseHand("KJxx QJTx AK AKx")
	require.NoError(t, err)
	assert.Equal(t, domain.Holding("KJxx"), hand.Suit(domain.Spades))
	assert.Equal(t, domain.Holding("QJTx"), hand.Suit(domain.Hearts))
	assert.Equal(t, domain.Holding("AK"), hand.Suit(domain.Diamonds))
	assert.Equal(t, domain.Holding("AKx"), hand.Suit(domain.Clubs))
}

func TestHolding_Count(t *testing.T) {
	h := domain.Holding("AKxxx")
	assert.Equal(t, 1, h.Count('A'))
	assert.Equal(t, 3, h.Count('x'))
	assert.Equal(t, 0, h.Count('Q'))
	assert.Equal(t, 5, h.Length())
}

func TestSeat(t *testing.T) {
	assert.Equal(t, domain.East, domain.North.Next())
	assert.Equal(t, domain.North, domain.West.Next())
	assert.Equal(t, domain.South, domain.North.Partner())
	assert.Equal(t, domain.North, domain.South.Partner())

	seat, err := domain.ParseSeat("S")
	require.NoError(t, err)
	assert.Equal(t, domain.South, seat)

	_, err = domain.ParseSeat("Q")
	assert.Error(t, err)
}
