package repository

import (
	"context"

	"auction-engine/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// AuctionDB defines the lot storage interface for the auction engine: the Lot Store,
// the Proxy Bid Registry, the Bid Ledger and the rejected-bidder list.
type AuctionDB interface {
	CreateLot(ctx context.Context, lot models.Lot) error
	GetLot(ctx context.Context, lotID string) (models.Lot, error)
	GetLedger(ctx context.Context, lotID string) ([]models.LedgerEntry, error)
	// ListLotsBySeller returns the seller's lots, newest first
	ListLotsBySeller(ctx context.Context, sellerID string) ([]models.Lot, error)
	// WithLotLock runs fn while holding the exclusive lease on lotID inside one transaction.
	// fn's writes are committed only when it returns nil.
	WithLotLock(ctx context.Context, lotID string, fn func(ctx context.Context, tx LotTx) error) error
}

// LotTx is the transactional view of one locked lot
type LotTx interface {
	// Lot returns the lot as read under the lock
	Lot() models.Lot
	SaveLot(ctx context.Context, lot models.Lot) error
	// DeleteLot removes the lot with its bids, ledger and rejections on commit
	DeleteLot(ctx context.Context) error

	ProxyBid(ctx context.Context, bidderID string) (models.ProxyBid, bool, error)
	// ProxyBids returns every proxy bid on the lot, highest ceiling first
	ProxyBids(ctx context.Context) ([]models.ProxyBid, error)
	UpsertProxyBid(ctx context.Context, bid models.ProxyBid) error
	DeleteProxyBid(ctx context.Context, bidderID string) error

	AppendLedger(ctx context.Context, entry models.LedgerEntry) error
	// LastLedgerEntry returns the newest entry or nil when the ledger is empty
	LastLedgerEntry(ctx context.Context) (*models.LedgerEntry, error)
	DeleteLedgerEntries(ctx context.Context, bidderID string) (int64, error)

	IsRejected(ctx context.Context, bidderID string) (bool, error)
	AddRejected(ctx context.Context, rejected models.RejectedBidder) error
}
