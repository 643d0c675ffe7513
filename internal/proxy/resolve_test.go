package proxy

import (
	"errors"
	"testing"
	"time"

	"auction-engine/internal/biddingerrors"
	"auction-engine/internal/models"

	"github.com/peterldowns/testy/check"
	"github.com/shopspring/decimal"
)

func d(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func newLot(starting, step int64) models.Lot {
	return models.Lot{
		ID:            "lot1",
		SellerID:      "seller",
		StartingPrice: d(starting),
		StepPrice:     d(step),
		CurrentPrice:  d(starting),
		EndAt:         time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		SoldState:     models.SoldUnresolved,
	}
}

// bid validates and resolves one bid, returning the lot with the new state applied
func bid(t *testing.T, lot models.Lot, bidderID string, max int64) (models.Lot, Resolution) {
	t.Helper()
	noop, err := ValidateAmount(lot, bidderID, d(max))
	if err != nil {
		t.Fatalf("bid %s/%d rejected: %v", bidderID, max, err)
	}
	if noop {
		return lot, Resolution{State: StateOf(lot)}
	}
	res := Resolve(lot, bidderID, d(max))
	return res.State.Apply(lot), res
}

func TestResolve_FirstBidOpensAtStartingPrice(t *testing.T) {
	lot, res := bid(t, newLot(100, 50), "alice", 400)

	check.Equal(t, "100", res.CurrentPrice.String())
	check.Equal(t, "alice", res.LeadingBidderID)
	check.Equal(t, "400", res.LeadingMaxPrice.Decimal.String())
	check.Equal(t, "alice", res.LedgerBidderID)
	check.True(t, res.WritesLedger())
	check.Equal(t, "alice", lot.LeadingBidderID)
}

func TestResolve_SecondPriceBehavior(t *testing.T) {
	lot, _ := bid(t, newLot(100, 50), "leader", 1000)

	lot, res := bid(t, lot, "challenger", 700)
	check.Equal(t, "700", res.CurrentPrice.String())
	check.Equal(t, "leader", res.LeadingBidderID)
	check.Equal(t, "leader", res.LedgerBidderID)

	lot, res = bid(t, lot, "challenger", 1300)
	check.Equal(t, "1050", res.CurrentPrice.String())
	check.Equal(t, "challenger", res.LeadingBidderID)
	check.Equal(t, "1300", res.LeadingMaxPrice.Decimal.String())
	check.Equal(t, "challenger", res.LedgerBidderID)
	check.True(t, lot.LeadingMaxPrice.Decimal.GreaterThanOrEqual(lot.CurrentPrice))
}

func TestResolve_IncrementCappedByChallengerMax(t *testing.T) {
	lot, _ := bid(t, newLot(100, 50), "leader", 1000)
	_, res := bid(t, lot, "challenger", 1020)

	check.Equal(t, "1020", res.CurrentPrice.String())
	check.Equal(t, "challenger", res.LeadingBidderID)
}

func TestResolve_TieKeepsEarlierLeader(t *testing.T) {
	lot, _ := bid(t, newLot(100, 50), "leader", 1000)
	lot, _ = bid(t, lot, "other", 800)
	check.Equal(t, "800", lot.CurrentPrice.String())

	_, res := bid(t, lot, "other", 1000)
	check.Equal(t, "1000", res.CurrentPrice.String())
	check.Equal(t, "leader", res.LeadingBidderID)
	check.Equal(t, "leader", res.LedgerBidderID)
}

func TestResolve_SelfRaiseWritesNoLedger(t *testing.T) {
	lot, _ := bid(t, newLot(100, 50), "leader", 500)
	lot, _ = bid(t, lot, "other", 300)

	_, res := bid(t, lot, "leader", 900)
	check.True(t, res.SelfRaise)
	check.False(t, res.WritesLedger())
	check.Equal(t, "300", res.CurrentPrice.String())
	check.Equal(t, "leader", res.LeadingBidderID)
	check.Equal(t, "900", res.LeadingMaxPrice.Decimal.String())
}

func TestResolve_BuyNowClampsPrice(t *testing.T) {
	lot := newLot(100, 200)
	lot.BuyNowPrice = decimal.NewNullDecimal(d(2000))
	lot, _ = bid(t, lot, "leader", 1900)

	_, res := bid(t, lot, "challenger", 2500)
	// 1900 + 200 would overshoot the buy-now price
	check.True(t, res.BuyNow)
	check.Equal(t, "2000", res.CurrentPrice.String())
	check.Equal(t, "challenger", res.LeadingBidderID)
}

func TestResolve_BuyNowNotReachedStaysOpen(t *testing.T) {
	lot := newLot(100, 50)
	lot.BuyNowPrice = decimal.NewNullDecimal(d(2000))
	_, res := bid(t, lot, "first", 5000)

	check.False(t, res.BuyNow)
	check.Equal(t, "100", res.CurrentPrice.String())
}

func TestValidateAmount(t *testing.T) {
	open := newLot(100, 50)
	led, _ := bid(t, open, "leader", 1000)
	led, _ = bid(t, led, "other", 600)

	tests := []struct {
		name     string
		lot      models.Lot
		bidder   string
		amount   int64
		wantNoop bool
		wantErr  error
	}{
		{name: "first_bid_at_starting_price", lot: open, bidder: "b", amount: 100},
		{name: "first_bid_below_starting_price", lot: open, bidder: "b", amount: 99, wantErr: biddingerrors.ErrBidTooLow},
		{name: "zero_amount", lot: open, bidder: "b", amount: 0, wantErr: biddingerrors.ErrInvalidBid},
		{name: "negative_amount", lot: open, bidder: "b", amount: -5, wantErr: biddingerrors.ErrInvalidBid},
		{name: "equal_to_current_price", lot: led, bidder: "b", amount: 600, wantErr: biddingerrors.ErrBidTooLow},
		{name: "inside_increment", lot: led, bidder: "b", amount: 649, wantErr: biddingerrors.ErrBelowIncrement},
		{name: "exactly_one_step", lot: led, bidder: "b", amount: 650},
		{name: "leader_same_max_is_noop", lot: led, bidder: "leader", amount: 1000, wantNoop: true},
		{name: "leader_lowering_max", lot: led, bidder: "leader", amount: 900, wantErr: biddingerrors.ErrMaxBidLowered},
		{name: "leader_raise", lot: led, bidder: "leader", amount: 1500},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			noop, err := ValidateAmount(tc.lot, tc.bidder, d(tc.amount))
			if tc.wantErr != nil {
				check.True(t, errors.Is(err, tc.wantErr))
				return
			}
			check.NoError(t, err)
			check.Equal(t, tc.wantNoop, noop)
		})
	}
}

func TestValidateAmount_MoneyPrecision(t *testing.T) {
	open := newLot(100, 50)

	tests := []struct {
		name    string
		amount  string
		wantErr bool
	}{
		{name: "cents", amount: "100.25"},
		{name: "sub_cent", amount: "100.005", wantErr: true},
		{name: "overflows_column", amount: "100000000000000", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ValidateAmount(open, "b", decimal.RequireFromString(tc.amount))
			if tc.wantErr {
				check.True(t, errors.Is(err, biddingerrors.ErrInvalidBid))
				return
			}
			check.NoError(t, err)
		})
	}
}

func TestResolve_PriceNeverDecreases(t *testing.T) {
	lot := newLot(100, 25)
	sequence := []struct {
		bidder string
		max    int64
	}{
		{"a", 300}, {"b", 250}, {"b", 400}, {"c", 450}, {"a", 500}, {"c", 800}, {"b", 900}, {"c", 900},
	}

	prev := lot.CurrentPrice
	for _, s := range sequence {
		if _, err := ValidateAmount(lot, s.bidder, d(s.max)); err != nil {
			continue
		}
		lot, _ = bid(t, lot, s.bidder, s.max)
		check.True(t, lot.CurrentPrice.GreaterThanOrEqual(prev))
		check.True(t, lot.LeadingMaxPrice.Decimal.GreaterThanOrEqual(lot.CurrentPrice))
		prev = lot.CurrentPrice
	}
}
