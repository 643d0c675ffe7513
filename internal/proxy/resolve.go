// Package proxy computes lot price/leader state from proxy bids.
//
// Everything here is pure: functions take a lot snapshot and bids and return the
// next state, leaving persistence and locking to the caller.
package proxy

import (
	"fmt"

	"auction-engine/internal/biddingerrors"
	"auction-engine/internal/models"

	"github.com/shopspring/decimal"
)

// State is the derived price/leader view of a lot
type State struct {
	CurrentPrice    decimal.Decimal
	LeadingBidderID string
	LeadingMaxPrice decimal.NullDecimal
}

// StateOf extracts the derived state cached on a lot
func StateOf(lot models.Lot) State {
	return State{
		CurrentPrice:    lot.CurrentPrice,
		LeadingBidderID: lot.LeadingBidderID,
		LeadingMaxPrice: lot.LeadingMaxPrice,
	}
}

// Apply writes the state back onto a lot copy
func (s State) Apply(lot models.Lot) models.Lot {
	lot.CurrentPrice = s.CurrentPrice
	lot.LeadingBidderID = s.LeadingBidderID
	lot.LeadingMaxPrice = s.LeadingMaxPrice
	return lot
}

// Equal reports whether two states show the same price and leader
func (s State) Equal(o State) bool {
	return s.CurrentPrice.Equal(o.CurrentPrice) && s.LeadingBidderID == o.LeadingBidderID
}

// Resolution is the outcome of one incoming proxy bid
type Resolution struct {
	State
	// LedgerBidderID is the bidder credited with the new visible price; empty when
	// the visible price and leader did not change.
	LedgerBidderID string
	SelfRaise      bool
	BuyNow         bool
}

// WritesLedger reports whether the resolution produced a visible price change
func (r Resolution) WritesLedger() bool {
	return r.LedgerBidderID != ""
}

// MinimumBid is the lowest ceiling a new competitor may submit
func MinimumBid(lot models.Lot) decimal.Decimal {
	if !lot.HasLeader() {
		return lot.StartingPrice
	}
	return lot.CurrentPrice.Add(lot.StepPrice)
}

// ValidateAmount checks amount against the lot's visible price. It returns noop=true
// when the current leader resubmits exactly their stored ceiling.
func ValidateAmount(lot models.Lot, bidderID string, amount decimal.Decimal) (noop bool, err error) {
	if !amount.IsPositive() {
		return false, fmt.Errorf("%w - non-positive bid amount", biddingerrors.ErrInvalidBid)
	}
	if !models.FitsMoney(amount) {
		return false, fmt.Errorf("%w - at most %d decimal places and %d integer digits", biddingerrors.ErrInvalidBid, models.MoneyScale, models.MoneyPrecision-models.MoneyScale)
	}

	if lot.HasLeader() && lot.LeadingBidderID == bidderID && lot.LeadingMaxPrice.Valid {
		own := lot.LeadingMaxPrice.Decimal
		switch amount.Cmp(own) {
		case 0:
			return true, nil
		case -1:
			return false, fmt.Errorf("%w - your current maximum is %s", biddingerrors.ErrMaxBidLowered, own)
		}
	}

	if !lot.HasLeader() {
		if amount.LessThan(lot.StartingPrice) {
			return false, fmt.Errorf("%w - starting price is %s", biddingerrors.ErrBidTooLow, lot.StartingPrice)
		}
		return false, nil
	}

	if amount.LessThanOrEqual(lot.CurrentPrice) {
		return false, fmt.Errorf("%w - current price is %s", biddingerrors.ErrBidTooLow, lot.CurrentPrice)
	}
	if min := MinimumBid(lot); amount.LessThan(min) {
		return false, fmt.Errorf("%w - minimum bid is %s (step %s)", biddingerrors.ErrBelowIncrement, min, lot.StepPrice)
	}
	return false, nil
}

// Resolve applies the English proxy rules for a bid of max from bidderID against lot.
// The caller must have validated the amount with ValidateAmount.
func Resolve(lot models.Lot, bidderID string, max decimal.Decimal) Resolution {
	var res Resolution

	switch {
	case lot.HasLeader() && lot.LeadingBidderID == bidderID:
		// leader raising their own ceiling: visible price stays put
		res.State = StateOf(lot)
		res.LeadingMaxPrice = decimal.NewNullDecimal(max)
		res.SelfRaise = true

	case !lot.HasLeader():
		res.State = State{
			CurrentPrice:    lot.StartingPrice,
			LeadingBidderID: bidderID,
			LeadingMaxPrice: decimal.NewNullDecimal(max),
		}
		res.LedgerBidderID = bidderID

	default:
		leaderMax := lot.LeadingMaxPrice.Decimal
		if max.LessThanOrEqual(leaderMax) {
			// ties keep the earlier ceiling in front
			res.State = State{
				CurrentPrice:    max,
				LeadingBidderID: lot.LeadingBidderID,
				LeadingMaxPrice: lot.LeadingMaxPrice,
			}
			res.LedgerBidderID = lot.LeadingBidderID
		} else {
			res.State = State{
				CurrentPrice:    decimal.Min(leaderMax.Add(lot.StepPrice), max),
				LeadingBidderID: bidderID,
				LeadingMaxPrice: decimal.NewNullDecimal(max),
			}
			res.LedgerBidderID = bidderID
		}
	}

	if lot.BuyNowPrice.Valid && res.CurrentPrice.GreaterThanOrEqual(lot.BuyNowPrice.Decimal) {
		res.CurrentPrice = lot.BuyNowPrice.Decimal
		res.BuyNow = true
	}

	return res
}
