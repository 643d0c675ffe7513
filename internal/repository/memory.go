package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"auction-engine/internal/biddingerrors"
	"auction-engine/internal/lotlock"
	"auction-engine/internal/models"
	"auction-engine/internal/proxy"
)

const defaultLockWait = 5 * time.Second

// lotRecord is everything stored for one lot
type lotRecord struct {
	lot      models.Lot
	bids     map[string]models.ProxyBid       // key: bidderID
	ledger   []models.LedgerEntry             // oldest first
	rejected map[string]models.RejectedBidder // key: bidderID
}

func (r *lotRecord) clone() *lotRecord {
	c := &lotRecord{
		lot:      r.lot,
		bids:     make(map[string]models.ProxyBid, len(r.bids)),
		ledger:   append([]models.LedgerEntry(nil), r.ledger...),
		rejected: make(map[string]models.RejectedBidder, len(r.rejected)),
	}
	for k, v := range r.bids {
		c.bids[k] = v
	}
	for k, v := range r.rejected {
		c.rejected[k] = v
	}
	return c
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB.
// Each lot is guarded by its own lease; a transaction works on a private copy that
// replaces the stored record only on commit.
type MemoryRepo struct {
	mu    sync.RWMutex
	lots  map[string]*lotRecord // key: lotID
	locks *lotlock.Keyed
}

// MemoryOption configures a MemoryRepo
type MemoryOption func(*MemoryRepo)

// WithLockWait bounds how long WithLotLock waits for a busy lot
func WithLockWait(d time.Duration) MemoryOption {
	return func(r *MemoryRepo) {
		r.locks = lotlock.NewKeyed(d)
	}
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo(opts ...MemoryOption) *MemoryRepo {
	r := &MemoryRepo{
		lots:  make(map[string]*lotRecord),
		locks: lotlock.NewKeyed(defaultLockWait),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// CreateLot stores a new lot
func (r *MemoryRepo) CreateLot(_ context.Context, lot models.Lot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if lot.ID == "" {
		return fmt.Errorf("create lot: %w - empty id", biddingerrors.ErrInvalidLot)
	}
	if _, ok := r.lots[lot.ID]; ok {
		return fmt.Errorf("create lot %s: %w", lot.ID, biddingerrors.ErrLotExists)
	}
	r.lots[lot.ID] = &lotRecord{
		lot:      lot,
		bids:     make(map[string]models.ProxyBid),
		rejected: make(map[string]models.RejectedBidder),
	}
	return nil
}

// GetLot returns the last committed state of a lot
func (r *MemoryRepo) GetLot(_ context.Context, lotID string) (models.Lot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.lots[lotID]
	if !ok {
		return models.Lot{}, fmt.Errorf("get lot %s: %w", lotID, biddingerrors.ErrLotNotFound)
	}
	return rec.lot, nil
}

// GetLedger returns the lot's ledger, newest entry first
func (r *MemoryRepo) GetLedger(_ context.Context, lotID string) ([]models.LedgerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.lots[lotID]
	if !ok {
		return nil, fmt.Errorf("get ledger for lot %s: %w", lotID, biddingerrors.ErrLotNotFound)
	}
	entries := make([]models.LedgerEntry, 0, len(rec.ledger))
	for i := len(rec.ledger) - 1; i >= 0; i-- {
		entries = append(entries, rec.ledger[i])
	}
	return entries, nil
}

// ListLotsBySeller returns the seller's committed lots, newest first
func (r *MemoryRepo) ListLotsBySeller(_ context.Context, sellerID string) ([]models.Lot, error) {
	r.mu.RLock()
	lots := make([]models.Lot, 0)
	for _, rec := range r.lots {
		if rec.lot.SellerID == sellerID {
			lots = append(lots, rec.lot)
		}
	}
	r.mu.RUnlock()

	sort.Slice(lots, func(i, j int) bool {
		if !lots[i].CreatedAt.Equal(lots[j].CreatedAt) {
			return lots[i].CreatedAt.After(lots[j].CreatedAt)
		}
		return lots[i].ID < lots[j].ID
	})
	return lots, nil
}

// WithLotLock runs fn on a private copy of the lot while holding the lot's lease
func (r *MemoryRepo) WithLotLock(ctx context.Context, lotID string, fn func(ctx context.Context, tx LotTx) error) error {
	release, err := r.locks.Acquire(ctx, lotID)
	if err != nil {
		return err
	}
	defer release()

	r.mu.RLock()
	rec, ok := r.lots[lotID]
	var work *lotRecord
	if ok {
		work = rec.clone()
	}
	r.mu.RUnlock()
	if !ok {
		return fmt.Errorf("lock lot %s: %w", lotID, biddingerrors.ErrLotNotFound)
	}

	tx := &memTx{rec: work}
	if err := fn(ctx, tx); err != nil {
		return err
	}

	r.mu.Lock()
	if tx.deleted {
		delete(r.lots, lotID)
	} else {
		r.lots[lotID] = work
	}
	r.mu.Unlock()
	return nil
}

// AddLot adds a lot to the repository, overwriting any existing record. Intended for tests and seeding.
func (r *MemoryRepo) AddLot(lot models.Lot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lots[lot.ID] = &lotRecord{
		lot:      lot,
		bids:     make(map[string]models.ProxyBid),
		rejected: make(map[string]models.RejectedBidder),
	}
}

// ProxyBidsForLot returns the committed proxy bids of a lot. Intended for tests.
func (r *MemoryRepo) ProxyBidsForLot(lotID string) []models.ProxyBid {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.lots[lotID]
	if !ok {
		return nil
	}
	bids := make([]models.ProxyBid, 0, len(rec.bids))
	for _, b := range rec.bids {
		bids = append(bids, b)
	}
	return proxy.SortByPriority(bids)
}

// memTx mutates a private lotRecord copy
type memTx struct {
	rec     *lotRecord
	deleted bool
}

func (t *memTx) Lot() models.Lot {
	return t.rec.lot
}

func (t *memTx) SaveLot(_ context.Context, lot models.Lot) error {
	if lot.ID != t.rec.lot.ID {
		return fmt.Errorf("save lot %s inside transaction for %s: %w", lot.ID, t.rec.lot.ID, biddingerrors.ErrInvalidLot)
	}
	t.rec.lot = lot
	return nil
}

func (t *memTx) DeleteLot(_ context.Context) error {
	t.deleted = true
	return nil
}

func (t *memTx) ProxyBid(_ context.Context, bidderID string) (models.ProxyBid, bool, error) {
	b, ok := t.rec.bids[bidderID]
	return b, ok, nil
}

func (t *memTx) ProxyBids(_ context.Context) ([]models.ProxyBid, error) {
	bids := make([]models.ProxyBid, 0, len(t.rec.bids))
	for _, b := range t.rec.bids {
		bids = append(bids, b)
	}
	return proxy.SortByPriority(bids), nil
}

func (t *memTx) UpsertProxyBid(_ context.Context, bid models.ProxyBid) error {
	t.rec.bids[bid.BidderID] = bid
	return nil
}

func (t *memTx) DeleteProxyBid(_ context.Context, bidderID string) error {
	delete(t.rec.bids, bidderID)
	return nil
}

func (t *memTx) AppendLedger(_ context.Context, entry models.LedgerEntry) error {
	t.rec.ledger = append(t.rec.ledger, entry)
	return nil
}

func (t *memTx) LastLedgerEntry(_ context.Context) (*models.LedgerEntry, error) {
	if len(t.rec.ledger) == 0 {
		return nil, nil
	}
	last := t.rec.ledger[len(t.rec.ledger)-1]
	return &last, nil
}

func (t *memTx) DeleteLedgerEntries(_ context.Context, bidderID string) (int64, error) {
	kept := t.rec.ledger[:0:0]
	var removed int64
	for _, e := range t.rec.ledger {
		if e.BidderID == bidderID {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	t.rec.ledger = kept
	return removed, nil
}

func (t *memTx) IsRejected(_ context.Context, bidderID string) (bool, error) {
	_, ok := t.rec.rejected[bidderID]
	return ok, nil
}

func (t *memTx) AddRejected(_ context.Context, rejected models.RejectedBidder) error {
	if _, ok := t.rec.rejected[rejected.BidderID]; ok {
		return nil
	}
	t.rec.rejected[rejected.BidderID] = rejected
	return nil
}
