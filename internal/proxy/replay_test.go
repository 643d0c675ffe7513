package proxy

import (
	"testing"
	"time"

	"auction-engine/internal/models"

	"github.com/peterldowns/testy/check"
	"github.com/shopspring/decimal"
)

var t0 = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

func proxyBid(bidder string, max int64, offset time.Duration) models.ProxyBid {
	return models.ProxyBid{LotID: "lot1", BidderID: bidder, MaxPrice: decimal.NewFromInt(max), PlacedAt: t0.Add(offset)}
}

func TestSortByPriority(t *testing.T) {
	in := []models.ProxyBid{
		proxyBid("late_tie", 800, 3*time.Second),
		proxyBid("low", 500, time.Second),
		proxyBid("early_tie", 800, 2*time.Second),
		proxyBid("top", 1200, 4*time.Second),
	}
	out := SortByPriority(in)

	check.Equal(t, []string{"top", "early_tie", "late_tie", "low"}, bidderIDs(out))
	// input untouched
	check.Equal(t, "late_tie", in[0].BidderID)
}

func TestReplay(t *testing.T) {
	tests := []struct {
		name       string
		bids       []models.ProxyBid
		wantPrice  string
		wantLeader string
	}{
		{name: "empty", bids: nil, wantPrice: "100", wantLeader: ""},
		{name: "single", bids: []models.ProxyBid{proxyBid("a", 900, 0)}, wantPrice: "100", wantLeader: "a"},
		{name: "runner_up_plus_step", bids: []models.ProxyBid{proxyBid("a", 500, 0), proxyBid("b", 800, time.Second)}, wantPrice: "550", wantLeader: "b"},
		{name: "capped_by_winner", bids: []models.ProxyBid{proxyBid("a", 500, 0), proxyBid("b", 520, time.Second)}, wantPrice: "520", wantLeader: "b"},
		{name: "tie_earlier_wins", bids: []models.ProxyBid{proxyBid("late", 700, time.Second), proxyBid("early", 700, 0)}, wantPrice: "700", wantLeader: "early"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Replay(tc.bids, decimal.NewFromInt(100), decimal.NewFromInt(50))
			check.Equal(t, tc.wantPrice, got.CurrentPrice.String())
			check.Equal(t, tc.wantLeader, got.LeadingBidderID)
			check.Equal(t, tc.wantLeader != "", got.LeadingMaxPrice.Valid)
		})
	}
}

// resolveAll feeds bids into Resolve one after another, the way live bidding does
func resolveAll(t *testing.T, lot models.Lot, bids []models.ProxyBid) models.Lot {
	t.Helper()
	for _, b := range bids {
		lot, _ = bid(t, lot, b.BidderID, b.MaxPrice.IntPart())
	}
	return lot
}

func TestReject_ReplayMatchesNeverHavingBid(t *testing.T) {
	a := proxyBid("A", 500, 0)
	b := proxyBid("B", 800, time.Second)
	c := proxyBid("C", 1200, 2*time.Second)

	full := resolveAll(t, newLot(100, 50), []models.ProxyBid{a, b, c})
	check.Equal(t, "C", full.LeadingBidderID)
	check.Equal(t, "850", full.CurrentPrice.String())

	plan := Reject(full, "C", []models.ProxyBid{a, b}, &models.LedgerEntry{BidderID: "B", CurrentPrice: decimal.NewFromInt(550)})

	withoutC := resolveAll(t, newLot(100, 50), []models.ProxyBid{a, b})
	check.True(t, plan.Recomputed)
	check.Equal(t, withoutC.LeadingBidderID, plan.LeadingBidderID)
	check.Equal(t, withoutC.CurrentPrice.String(), plan.CurrentPrice.String())
	// last surviving entry already shows 550
	check.Equal(t, "", plan.LedgerBidderID)
}

func TestReject_LeaderRemovedWritesLedgerWhenPriceMoves(t *testing.T) {
	a := proxyBid("A", 500, 0)
	b := proxyBid("B", 800, time.Second)
	c := proxyBid("C", 1200, 2*time.Second)
	full := resolveAll(t, newLot(100, 50), []models.ProxyBid{a, b, c})

	plan := Reject(full, "C", []models.ProxyBid{a, b}, &models.LedgerEntry{BidderID: "A", CurrentPrice: decimal.NewFromInt(100)})
	check.Equal(t, "B", plan.LedgerBidderID)

	plan = Reject(full, "C", []models.ProxyBid{a, b}, nil)
	check.Equal(t, "B", plan.LedgerBidderID)
}

func TestReject_SingleBidderResetsLot(t *testing.T) {
	lot := resolveAll(t, newLot(100, 50), []models.ProxyBid{proxyBid("solo", 700, 0)})

	plan := Reject(lot, "solo", nil, nil)
	check.True(t, plan.Reset)
	check.Equal(t, "100", plan.CurrentPrice.String())
	check.Equal(t, "", plan.LeadingBidderID)
	check.False(t, plan.LeadingMaxPrice.Valid)
	check.Equal(t, "", plan.LedgerBidderID)
}

func TestReject_OneRemainingWinsAtStartingPrice(t *testing.T) {
	w := proxyBid("W", 900, 0)
	x := proxyBid("X", 1000, time.Second)
	lot := resolveAll(t, newLot(100, 50), []models.ProxyBid{w, x})
	check.Equal(t, "950", lot.CurrentPrice.String())

	plan := Reject(lot, "X", []models.ProxyBid{w}, nil)
	check.Equal(t, "W", plan.LeadingBidderID)
	check.Equal(t, "100", plan.CurrentPrice.String())
	check.Equal(t, "900", plan.LeadingMaxPrice.Decimal.String())
	check.Equal(t, "W", plan.LedgerBidderID)
}

func TestReject_OneRemainingUnchangedSkipsLedger(t *testing.T) {
	w := proxyBid("W", 900, 0)
	lot := resolveAll(t, newLot(100, 50), []models.ProxyBid{w})

	plan := Reject(lot, "ghost", []models.ProxyBid{w}, nil)
	check.Equal(t, "W", plan.LeadingBidderID)
	check.Equal(t, "", plan.LedgerBidderID)
}

func TestReject_LosingBidderLeavesOutcome(t *testing.T) {
	a := proxyBid("A", 500, 0)
	b := proxyBid("B", 800, time.Second)
	c := proxyBid("C", 1200, 2*time.Second)
	lot := resolveAll(t, newLot(100, 50), []models.ProxyBid{a, b, c})

	plan := Reject(lot, "A", []models.ProxyBid{b, c}, nil)
	check.False(t, plan.Recomputed)
	check.Equal(t, "C", plan.LeadingBidderID)
	check.Equal(t, lot.CurrentPrice.String(), plan.CurrentPrice.String())
	check.Equal(t, "", plan.LedgerBidderID)
}

func bidderIDs(bids []models.ProxyBid) []string {
	ids := make([]string, 0, len(bids))
	for _, b := range bids {
		ids = append(ids, b.BidderID)
	}
	return ids
}
