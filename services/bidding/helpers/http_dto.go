package helpers

import (
	"time"

	"auction-engine/internal/models"

	"github.com/shopspring/decimal"
)

// Request/Response DTOs. Money travels as decimal strings ("1050.00").

type CreateLotRequest struct {
	SellerID           string              `json:"seller_id" binding:"required"`
	StartingPrice      decimal.Decimal     `json:"starting_price"`
	StepPrice          decimal.Decimal     `json:"step_price"`
	BuyNowPrice        decimal.NullDecimal `json:"buy_now_price"`
	EndAt              time.Time           `json:"end_at" binding:"required"`
	AutoExtend         bool                `json:"auto_extend"`
	AllowUnratedBidder bool                `json:"allow_unrated_bidder"`
}

type PlaceBidRequest struct {
	BidderID string          `json:"bidder_id" binding:"required"`
	MaxBid   decimal.Decimal `json:"max_bid"`
}

type RejectBidderRequest struct {
	BidderID string `json:"bidder_id" binding:"required"`
	SellerID string `json:"seller_id" binding:"required"`
}

type SellerActionRequest struct {
	SellerID string `json:"seller_id" binding:"required"`
}

type LotResponse struct {
	LotID              string           `json:"lot_id"`
	SellerID           string           `json:"seller_id"`
	StartingPrice      decimal.Decimal  `json:"starting_price"`
	StepPrice          decimal.Decimal  `json:"step_price"`
	CurrentPrice       decimal.Decimal  `json:"current_price"`
	MinimumBid         decimal.Decimal  `json:"minimum_bid"`
	LeadingBidder      string           `json:"leading_bidder,omitempty"`
	BuyNowPrice        *decimal.Decimal `json:"buy_now_price,omitempty"`
	EndAt              string           `json:"end_at"`
	ClosedAt           string           `json:"closed_at,omitempty"`
	AutoExtend         bool             `json:"auto_extend"`
	AllowUnratedBidder bool             `json:"allow_unrated_bidder"`
	Status             models.LotStatus `json:"status"`
}

type BidResponse struct {
	LotID         string          `json:"lot_id"`
	CurrentPrice  decimal.Decimal `json:"current_price"`
	Leading       bool            `json:"leading"`
	LeadingBidder string          `json:"leading_bidder"`
	Sold          bool            `json:"sold"`
	Extended      bool            `json:"extended"`
	EndAt         string          `json:"end_at"`
	Notice        string          `json:"notice"`
}

type RejectResponse struct {
	LotID          string          `json:"lot_id"`
	RejectedBidder string          `json:"rejected_bidder_id"`
	CurrentPrice   decimal.Decimal `json:"current_price"`
	LeadingBidder  string          `json:"leading_bidder,omitempty"`
	Reset          bool            `json:"reset"`
	PurgedEntries  int64           `json:"purged_entries"`
}

type DeleteLotResponse struct {
	LotID string `json:"lot_id"`
}

type SellerStatsResponse struct {
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

type HistoryEntryResponse struct {
	Bidder       string          `json:"bidder"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	CreatedAt    string          `json:"created_at"`
}
