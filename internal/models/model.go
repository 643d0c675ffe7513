package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Money columns are stored as NUMERIC(MoneyPrecision, MoneyScale)
const (
	MoneyPrecision = 16
	MoneyScale     = 2
)

var moneyLimit = decimal.New(1, MoneyPrecision-MoneyScale)

// FitsMoney reports whether d can be stored without rounding or overflow
func FitsMoney(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(MoneyScale)) && d.Abs().LessThan(moneyLimit)
}

// SoldState is the settlement state of a lot
type SoldState string

const (
	SoldUnresolved SoldState = "unresolved"
	SoldSold       SoldState = "sold"
	SoldCancelled  SoldState = "cancelled"
)

// LotStatus is the seller-facing lifecycle status derived from lot fields
type LotStatus string

const (
	StatusActive    LotStatus = "active"
	StatusPending   LotStatus = "pending"
	StatusSold      LotStatus = "sold"
	StatusNoBidders LotStatus = "no_bidders"
	StatusCancelled LotStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses
func (s LotStatus) Valid() bool {
	switch s {
	case StatusActive, StatusPending, StatusSold, StatusNoBidders, StatusCancelled:
		return true
	}
	return false
}

// Lot represents a single item up for auction together with its cached price/leader state.
// LeadingBidderID and LeadingMaxPrice are derived from the proxy bids of the lot.
type Lot struct {
	ID                 string              `json:"id"`
	SellerID           string              `json:"seller_id"`
	StartingPrice      decimal.Decimal     `json:"starting_price"`
	StepPrice          decimal.Decimal     `json:"step_price"`
	CurrentPrice       decimal.Decimal     `json:"current_price"`
	LeadingBidderID    string              `json:"leading_bidder_id,omitempty"`
	LeadingMaxPrice    decimal.NullDecimal `json:"leading_max_price"`
	BuyNowPrice        decimal.NullDecimal `json:"buy_now_price"`
	EndAt              time.Time           `json:"end_at"`
	AutoExtend         bool                `json:"auto_extend"`
	AllowUnratedBidder bool                `json:"allow_unrated_bidder"`
	ClosedAt           *time.Time          `json:"closed_at,omitempty"`
	SoldState          SoldState           `json:"sold_state"`
	CreatedAt          time.Time           `json:"created_at"`
}

// HasLeader reports whether someone currently leads the lot
func (l Lot) HasLeader() bool {
	return l.LeadingBidderID != ""
}

// IsOpen reports whether the lot still accepts bids at the given instant
func (l Lot) IsOpen(now time.Time) bool {
	return l.SoldState == SoldUnresolved && l.ClosedAt == nil && now.Before(l.EndAt)
}

// Status derives the lifecycle status shown to sellers
func (l Lot) Status(now time.Time) LotStatus {
	switch {
	case l.SoldState == SoldSold:
		return StatusSold
	case l.SoldState == SoldCancelled:
		return StatusCancelled
	case l.ClosedAt == nil && now.Before(l.EndAt):
		return StatusActive
	case l.HasLeader():
		return StatusPending
	default:
		return StatusNoBidders
	}
}

// ProxyBid is a bidder's private maximum on a lot; one row per (lot, bidder)
type ProxyBid struct {
	LotID    string          `json:"lot_id"`
	BidderID string          `json:"bidder_id"`
	MaxPrice decimal.Decimal `json:"max_price"`
	PlacedAt time.Time       `json:"placed_at"`
}

// LedgerEntry records one visible price change on a lot
type LedgerEntry struct {
	ID           string          `json:"id"`
	LotID        string          `json:"lot_id"`
	BidderID     string          `json:"bidder_id"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	CreatedAt    time.Time       `json:"created_at"`
}

// RejectedBidder bans a bidder from a lot
type RejectedBidder struct {
	LotID              string    `json:"lot_id"`
	BidderID           string    `json:"bidder_id"`
	RejectedBySellerID string    `json:"rejected_by_seller_id"`
	CreatedAt          time.Time `json:"created_at"`
}

// ResolveResult is returned to callers after a bid has been resolved
type ResolveResult struct {
	LotID           string              `json:"lot_id"`
	BidderID        string              `json:"bidder_id"`
	CurrentPrice    decimal.Decimal     `json:"current_price"`
	LeadingBidderID string              `json:"leading_bidder_id"`
	LeadingMaxPrice decimal.NullDecimal `json:"-"`
	Leading         bool                `json:"leading"`
	Sold            bool                `json:"sold"`
	Extended        bool                `json:"extended"`
	EndAt           time.Time           `json:"end_at"`
	LedgerWritten   bool                `json:"ledger_written"`
}

// RejectResult is returned after a bidder has been removed from a lot
type RejectResult struct {
	LotID           string          `json:"lot_id"`
	RejectedBidder  string          `json:"rejected_bidder_id"`
	CurrentPrice    decimal.Decimal `json:"current_price"`
	LeadingBidderID string          `json:"leading_bidder_id,omitempty"`
	Reset           bool            `json:"reset"`
	LedgerWritten   bool            `json:"ledger_written"`
	PurgedEntries   int64           `json:"purged_entries"`
}

// SellerStats summarizes a seller's lots by status. Pending revenue is what leaders of
// ended lots would pay; completed revenue is what sold lots closed at.
type SellerStats struct {
	SellerID         string          `json:"seller_id"`
	Total            int             `json:"total"`
	Active           int             `json:"active"`
	Pending          int             `json:"pending"`
	Sold             int             `json:"sold"`
	NoBidders        int             `json:"no_bidders"`
	Cancelled        int             `json:"cancelled"`
	PendingRevenue   decimal.Decimal `json:"pending_revenue"`
	CompletedRevenue decimal.Decimal `json:"completed_revenue"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
}

// Add counts lot into the stats as of now
func (st *SellerStats) Add(lot Lot, now time.Time) {
	st.Total++
	switch lot.Status(now) {
	case StatusActive:
		st.Active++
	case StatusPending:
		st.Pending++
		st.PendingRevenue = st.PendingRevenue.Add(lot.CurrentPrice)
	case StatusSold:
		st.Sold++
		st.CompletedRevenue = st.CompletedRevenue.Add(lot.CurrentPrice)
	case StatusNoBidders:
		st.NoBidders++
	case StatusCancelled:
		st.Cancelled++
	}
	st.TotalRevenue = st.PendingRevenue.Add(st.CompletedRevenue)
}
