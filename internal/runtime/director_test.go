package runtime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seatwise/auctioneer/internal/runtime"
	"github.com/seatwise/auctioneer/pkg/convention"
	"github.com/seatwise/auctioneer/pkg/criteria"
	"github.com/seatwise/auctioneer/pkg/domain"
)

// kokishSystem is the strong-notrump system the slam auctions run under:
// 2N shows 19-21 balanced, and 3N asks for controls via CONFI.
func kokishSystem() *domain.System {
	return &domain.System{
		Name: "kokish",
		Openings: []domain.BidNode{
			{
				Call: domain.Bid{Level: 1, Strain: domain.NoTrump},
				Criteria: []domain.CriterionRef{
					{Name: "opening"},
					{Name: "balanced"},
					{Name: "hcp", Params: map[string]any{"min": 15, "max": 17}},
				},
			},
			{
				Call: domain.Bid{Level: 2, Strain: domain.NoTrump},
				Criteria: []domain.CriterionRef{
					{Name: "opening"},
					{Name: "balanced"},
					{Name: "hcp", Params: map[string]any{"min": 19, "max": 21}},
				},
				Responses: []domain.BidNode{
					{
						Call: domain.Bid{Level: 3, Strain: domain.NoTrump},
						Criteria: []domain.CriterionRef{
							{Name: "hcp", Params: map[string]any{"min": 10, "max": 12}},
						},
						Handoff: "confi",
					},
				},
			},
		},
	}
}

func bidDeal(t *testing.T, north, south string) []string {
	t.Helper()
	n, err := domain.ParseHand(north)
	require.NoError(t, err)
	s, err := domain.ParseHand(south)
	require.NoError(t, err)

	director := runtime.NewDirector(kokishSystem(), criteria.Builtin(), convention.Builtin())
	auction, err := director.Bid(domain.Deal{domain.North: n, domain.South: s})
	require.NoError(t, err)
	require.True(t, auction.Completed())
	return domain.Notation(auction.Bids())
}

func TestDirector_SlamAuctions(t *testing.T) {
	cases := []struct {
		name         string
		north, south string
		want         []string
	}{
		{
			name:  "signoff below ten controls",
			north: "AQ3 AK3 J2 AQ652", south: "K9742 J2 QJ65 K3",
			want: []string{"2N", "P", "3N", "P", "4D", "P", "4N", "P", "P", "P"},
		},
		{
			name:  "three-card spade raise finds the fit",
			north: "AQ3 AK3 J2 AQ652", south: "K9742 J2 K865 K3",
			want: []string{"2N", "P", "3N", "P", "4D", "P", "4S", "P", "5C", "P", "5D", "P", "5S", "P", "6S", "P", "P", "P"},
		},
		{
			name:  "signoff after one-step reply",
			north: "KJx KJxx KJ AKJx", south: "QTxx AQxx Qxx xx",
			want: []string{"2N", "P", "3N", "P", "4C", "P", "4N", "P", "P", "P"},
		},
		{
			name:  "no fit found, five-level notrump",
			north: "AQxx KJxx AJx AJ", south: "Kx Jxx Kxxx KQxx",
			want: []string{"2N", "P", "3N", "P", "4D", "P", "5C", "P", "5N", "P", "P", "P"},
		},
		{
			name:  "minimum correction passed out",
			north: "KQJx KQxx KQx Ax", south: "Axxx ATx Jx Qxxx",
			want: []string{"2N", "P", "3N", "P", "4C", "P", "4S", "P", "4N", "P", "P", "P"},
		},
		{
			name:  "four-four heart fit",
			north: "KJxx QJTx AK AKx", south: "Axx Axxx QTxx Jx",
			want: []string{"2N", "P", "3N", "P", "4D", "P", "4H", "P", "6H", "P", "P", "P"},
		},
		{
			name:  "immediate spade fit",
			north: "AKJT QTxx AJT AJ", south: "Qxxx Ax KQxx xxx",
			want: []string{"2N", "P", "3N", "P", "4D", "P", "4S", "P", "6S", "P", "P", "P"},
		},
		{
			name:  "club fit after cascade",
			north: "AJx AKQ Kxx ATxx", south: "Qxxx xxx Ax KQxx",
			want: []string{"2N", "P", "3N", "P", "4H", "P", "4S", "P", "5C", "P", "6C", "P", "P", "P"},
		},
		{
			name:  "five-three heart fit",
			north: "Kxx AQTxx AKJ KJ", south: "AQxx Kxx xx Qxxx",
			want: []string{"2N", "P", "3N", "P", "4D", "P", "4S", "P", "5H", "P", "6H", "P", "P", "P"},
		},
		{
			name:  "early signoff with no suits to show",
			north: "AK QJTx KJxx AQx", south: "Qxx xx AQx KJxxx",
			want: []string{"2N", "P", "3N", "P", "4C", "P", "4N", "P", "P", "P"},
		},
		{
			name:  "five-card diamonds shown",
			north: "AQTx Ax QJx AKxx", south: "Kx Kxx KTxxx JTx",
			want: []string{"2N", "P", "3N", "P", "4D", "P", "5D", "P", "5N", "P", "P", "P"},
		},
		{
			name:  "club fit after notrump offer",
			north: "AJT QJTx AKJ AJx", south: "Qxxx Ax xx KQxxx",
			want: []string{"2N", "P", "3N", "P", "4D", "P", "4S", "P", "4N", "P", "5C", "P", "6C", "P", "P", "P"},
		},
		{
			name:  "minimum correction then heart fit",
			north: "QJ QJxx AKQx AQx", south: "Ax ATxx xx KT9xx",
			want: []string{"2N", "P", "3N", "P", "4C", "P", "4H", "P", "4N", "P", "5C", "P", "6H", "P", "P", "P"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, bidDeal(t, tc.north, tc.south))
		})
	}
}

func TestDirector_PassOutWithoutOpening(t *testing.T) {
	got := bidDeal(t, "xxxx xxx xxx xxx", "xxxx xxx xxx xxx")
	assert.Equal(t, []string{"P", "P", "P", "P"}, got)
}

func TestDirector_WeakNotrumpOpening(t *testing.T) {
	// 15-17 balanced opens 1N; the subtree has no responses, so the rest
	// pass it out.
	got := bidDeal(t, "AQxx KQx QJx Kxx", "xxxx xxx xxx xxx")
	assert.Equal(t, []string{"1N", "P", "P", "P"}, got)
}

func TestDirector_NoMatchingResponsePassesOut(t *testing.T) {
	// The opener's 2N finds no answering hand.
	got := bidDeal(t, "AQ3 AK3 J2 AQ652", "xxxxx xxx xx xxx")
	assert.Equal(t, []string{"2N", "P", "P", "P"}, got)
}

func TestDirector_MissingCriteriaIsAnError(t *testing.T) {
	system := &domain.System{
		Name:     "broken",
		Openings: []domain.BidNode{{Call: domain.Bid{Level: 1, Strain: domain.Clubs}}},
	}
	director := runtime.NewDirector(system, criteria.Builtin(), convention.Builtin())

	n, err := domain.ParseHand("AQ3 AK3 J2 AQ652")
	require.NoError(t, err)
	_, err = director.Bid(domain.Deal{domain.North: n, domain.South: n})
	assert.ErrorIs(t, err, domain.ErrMissingCriteria)
}

func TestDirector_WithDealer(t *testing.T) {
	// With South dealing, the strong hand must sit South to open.
	n, err := domain.ParseHand("K9742 J2 QJ65 K3")
	require.NoError(t, err)
	s, err := domain.ParseHand("AQ3 AK3 J2 AQ652")
	require.NoError(t, err)

	director := runtime.NewDirector(kokishSystem(), criteria.Builtin(), convention.Builtin(),
		runtime.WithDealer(domain.South))
	auction, err := director.Bid(domain.Deal{domain.North: n, domain.South: s})
	require.NoError(t, err)

	assert.Equal(t, domain.South, auction.Dealer())
	assert.Equal(t, []string{"2N", "P", "3N", "P", "4D", "P", "4N", "P", "P", "P"},
		domain.Notation(auction.Bids()))
}
