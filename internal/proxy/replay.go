package proxy

import (
	"sort"

	"auction-engine/internal/models"

	"github.com/shopspring/decimal"
)

// SortByPriority orders bids the way they compete: highest ceiling first, and for equal
// ceilings the one placed earlier. The input slice is not modified.
func SortByPriority(bids []models.ProxyBid) []models.ProxyBid {
	sorted := append([]models.ProxyBid(nil), bids...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if c := a.MaxPrice.Cmp(b.MaxPrice); c != 0 {
			return c > 0
		}
		if !a.PlacedAt.Equal(b.PlacedAt) {
			return a.PlacedAt.Before(b.PlacedAt)
		}
		return a.BidderID < b.BidderID
	})
	return sorted
}

// Replay rebuilds the price/leader state of a lot from its complete proxy bid set.
func Replay(bids []models.ProxyBid, startingPrice, stepPrice decimal.Decimal) State {
	sorted := SortByPriority(bids)

	switch len(sorted) {
	case 0:
		return State{CurrentPrice: startingPrice}
	case 1:
		return State{
			CurrentPrice:    startingPrice,
			LeadingBidderID: sorted[0].BidderID,
			LeadingMaxPrice: decimal.NewNullDecimal(sorted[0].MaxPrice),
		}
	}

	winner, runnerUp := sorted[0], sorted[1]
	price := decimal.Min(winner.MaxPrice, runnerUp.MaxPrice.Add(stepPrice))
	if price.LessThan(startingPrice) {
		price = startingPrice
	}
	return State{
		CurrentPrice:    price,
		LeadingBidderID: winner.BidderID,
		LeadingMaxPrice: decimal.NewNullDecimal(winner.MaxPrice),
	}
}

// RejectPlan is the state a lot moves to once a bidder has been removed
type RejectPlan struct {
	State
	Reset      bool
	Recomputed bool
	// LedgerBidderID is set when a ledger entry must be appended for the new state
	LedgerBidderID string
}

// Reject recomputes a lot after removedBidderID's proxy bid was deleted. remaining holds
// every other proxy bid on the lot; lastEntry is the newest ledger entry left after the
// removed bidder's entries were purged, or nil.
func Reject(lot models.Lot, removedBidderID string, remaining []models.ProxyBid, lastEntry *models.LedgerEntry) RejectPlan {
	before := StateOf(lot)

	switch {
	case len(remaining) == 0:
		return RejectPlan{
			State:      State{CurrentPrice: lot.StartingPrice},
			Reset:      true,
			Recomputed: true,
		}

	case len(remaining) == 1:
		plan := RejectPlan{
			State:      Replay(remaining, lot.StartingPrice, lot.StepPrice),
			Recomputed: true,
		}
		if !plan.State.Equal(before) {
			plan.LedgerBidderID = plan.LeadingBidderID
		}
		return plan

	case removedBidderID == lot.LeadingBidderID:
		plan := RejectPlan{
			State:      Replay(remaining, lot.StartingPrice, lot.StepPrice),
			Recomputed: true,
		}
		if lastEntry == nil || !lastEntry.CurrentPrice.Equal(plan.CurrentPrice) {
			plan.LedgerBidderID = plan.LeadingBidderID
		}
		return plan

	default:
		// a losing bidder leaving does not move the visible outcome
		return RejectPlan{State: before}
	}
}
