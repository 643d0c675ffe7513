package bidding

import (
	"context"
	"fmt"
	"time"

	"auction-engine/internal/biddingerrors"
	"auction-engine/internal/cache"
	"auction-engine/internal/clock"
	"auction-engine/internal/models"
	"auction-engine/internal/monitoring"
	"auction-engine/internal/proxy"
	"auction-engine/internal/repository"
	"auction-engine/internal/reputation"
	"auction-engine/utils"

	"github.com/shopspring/decimal"
)

// BiddingService resolves proxy bids and seller actions on lots. Every write runs
// inside one per-lot transaction, so a failed call leaves the lot untouched.
type BiddingService struct {
	repo        repository.AuctionDB
	clock       clock.Clock
	extend      clock.Policy
	scorer      reputation.Scorer
	eligibility reputation.Policy
	cache       cache.LotCache
	metrics     monitoring.Recorder
}

// Option configures a BiddingService
type Option func(*BiddingService)

// WithClock replaces the system clock
func WithClock(c clock.Clock) Option {
	return func(s *BiddingService) { s.clock = c }
}

// WithExtendPolicy enables auto-extension for lots that opt in
func WithExtendPolicy(p clock.Policy) Option {
	return func(s *BiddingService) { s.extend = p }
}

// WithReputation makes rating eligibility a precondition of every bid
func WithReputation(scorer reputation.Scorer, policy reputation.Policy) Option {
	return func(s *BiddingService) {
		s.scorer = scorer
		s.eligibility = policy
	}
}

// WithCache serves GetLot from a snapshot cache
func WithCache(c cache.LotCache) Option {
	return func(s *BiddingService) { s.cache = c }
}

// WithMetrics records outcomes into r
func WithMetrics(r monitoring.Recorder) Option {
	return func(s *BiddingService) { s.metrics = r }
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(repo repository.AuctionDB, opts ...Option) *BiddingService {
	s := &BiddingService{
		repo:    repo,
		clock:   clock.System{},
		cache:   cache.Nop{},
		metrics: monitoring.Nop{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LotInput describes a lot to be listed
type LotInput struct {
	SellerID           string
	StartingPrice      decimal.Decimal
	StepPrice          decimal.Decimal
	BuyNowPrice        decimal.NullDecimal
	EndAt              time.Time
	AutoExtend         bool
	AllowUnratedBidder bool
}

// CreateLot validates and lists a new lot opening at its starting price
func (s *BiddingService) CreateLot(ctx context.Context, in LotInput) (models.Lot, error) {
	now := s.clock.Now()
	if err := validateLot(in, now); err != nil {
		return models.Lot{}, err
	}

	lot := models.Lot{
		ID:                 utils.GenerateID(),
		SellerID:           in.SellerID,
		StartingPrice:      in.StartingPrice,
		StepPrice:          in.StepPrice,
		CurrentPrice:       in.StartingPrice,
		BuyNowPrice:        in.BuyNowPrice,
		EndAt:              in.EndAt.UTC(),
		AutoExtend:         in.AutoExtend,
		AllowUnratedBidder: in.AllowUnratedBidder,
		SoldState:          models.SoldUnresolved,
		CreatedAt:          now,
	}

	if err := s.repo.CreateLot(ctx, lot); err != nil {
		return models.Lot{}, fmt.Errorf("service: failed to create lot for seller %s: %w", in.SellerID, err)
	}
	return lot, nil
}

func validateLot(in LotInput, now time.Time) error {
	switch {
	case in.SellerID == "":
		return fmt.Errorf("service: %w - missing seller", biddingerrors.ErrInvalidLot)
	case !in.StartingPrice.IsPositive():
		return fmt.Errorf("service: %w - starting price must be positive", biddingerrors.ErrInvalidLot)
	case !in.StepPrice.IsPositive():
		return fmt.Errorf("service: %w - step price must be positive", biddingerrors.ErrInvalidLot)
	case !models.FitsMoney(in.StartingPrice) || !models.FitsMoney(in.StepPrice):
		return fmt.Errorf("service: %w - prices take at most %d decimal places and %d integer digits", biddingerrors.ErrInvalidLot, models.MoneyScale, models.MoneyPrecision-models.MoneyScale)
	case in.BuyNowPrice.Valid && !models.FitsMoney(in.BuyNowPrice.Decimal):
		return fmt.Errorf("service: %w - buy-now price takes at most %d decimal places and %d integer digits", biddingerrors.ErrInvalidLot, models.MoneyScale, models.MoneyPrecision-models.MoneyScale)
	case in.BuyNowPrice.Valid && !in.BuyNowPrice.Decimal.GreaterThan(in.StartingPrice):
		return fmt.Errorf("service: %w - buy-now price must exceed starting price %s", biddingerrors.ErrInvalidLot, in.StartingPrice)
	case !in.EndAt.After(now):
		return fmt.Errorf("service: %w - end time must be in the future", biddingerrors.ErrInvalidLot)
	}
	return nil
}

// Resolve places or raises bidderID's proxy bid of maxBid on lotID and recomputes the
// visible price and leader.
func (s *BiddingService) Resolve(ctx context.Context, lotID, bidderID string, maxBid decimal.Decimal) (models.ResolveResult, error) {
	start := time.Now()

	if lotID == "" || bidderID == "" {
		return models.ResolveResult{}, fmt.Errorf("service: %w - missing lotID or bidderID", biddingerrors.ErrInvalidBid)
	}
	if !maxBid.IsPositive() {
		return models.ResolveResult{}, fmt.Errorf("service: %w - non-positive bid amount", biddingerrors.ErrInvalidBid)
	}
	if !models.FitsMoney(maxBid) {
		return models.ResolveResult{}, fmt.Errorf("service: %w - bid amount %s exceeds %d decimal places or %d integer digits", biddingerrors.ErrInvalidBid, maxBid, models.MoneyScale, models.MoneyPrecision-models.MoneyScale)
	}

	var (
		result  models.ResolveResult
		outcome string
	)
	err := s.repo.WithLotLock(ctx, lotID, func(ctx context.Context, tx repository.LotTx) error {
		var err error
		result, outcome, err = s.resolveLocked(ctx, tx, bidderID, maxBid)
		return err
	})
	if err != nil {
		s.metrics.ObserveResolution(string(biddingerrors.KindOf(err)), time.Since(start))
		return models.ResolveResult{}, fmt.Errorf("service: resolve bid on lot %s by %s: %w", lotID, bidderID, err)
	}

	s.metrics.ObserveResolution(outcome, time.Since(start))
	if result.Extended {
		s.metrics.LotExtended()
	}
	if result.Sold {
		s.metrics.BuyNowClosed()
	}
	s.invalidate(ctx, lotID)
	return result, nil
}

func (s *BiddingService) resolveLocked(ctx context.Context, tx repository.LotTx, bidderID string, maxBid decimal.Decimal) (models.ResolveResult, string, error) {
	lot := tx.Lot()
	now := s.clock.Now()

	if lot.SoldState != models.SoldUnresolved || lot.ClosedAt != nil {
		return models.ResolveResult{}, "", fmt.Errorf("%w - lot %s is %s", biddingerrors.ErrLotClosed, lot.ID, lot.Status(now))
	}

	// a bid landing inside the trigger window qualifies even at the exact end instant
	endAt := lot.EndAt
	extended := lot.AutoExtend && s.extend.ShouldExtend(lot.EndAt, now)
	if extended {
		endAt = s.extend.NewEndAt(lot.EndAt)
	}
	if !now.Before(endAt) {
		return models.ResolveResult{}, "", fmt.Errorf("%w - auction ended at %s", biddingerrors.ErrLotClosed, lot.EndAt.Format(time.RFC3339))
	}

	if bidderID == lot.SellerID {
		return models.ResolveResult{}, "", biddingerrors.ErrSelfBid
	}
	rejected, err := tx.IsRejected(ctx, bidderID)
	if err != nil {
		return models.ResolveResult{}, "", fmt.Errorf("failed to check rejected bidders: %w", err)
	}
	if rejected {
		return models.ResolveResult{}, "", biddingerrors.ErrRejected
	}
	if s.scorer != nil {
		score, err := s.scorer.RatingScore(ctx, bidderID)
		if err != nil {
			return models.ResolveResult{}, "", fmt.Errorf("failed to read rating of %s: %w", bidderID, err)
		}
		if err := s.eligibility.Check(score, lot.AllowUnratedBidder); err != nil {
			return models.ResolveResult{}, "", err
		}
	}

	noop, err := proxy.ValidateAmount(lot, bidderID, maxBid)
	if err != nil {
		return models.ResolveResult{}, "", err
	}
	if noop {
		return resultOf(lot, bidderID), "unchanged", nil
	}

	res := proxy.Resolve(lot, bidderID, maxBid)
	next := res.State.Apply(lot)
	switch {
	case res.BuyNow:
		closedAt := now
		next.EndAt = now
		next.ClosedAt = &closedAt
		extended = false
	case extended:
		next.EndAt = endAt
		utils.Debug("lot end extended", map[string]any{
			"lot_id":     lot.ID,
			"old_end_at": lot.EndAt,
			"new_end_at": endAt,
		})
	}

	if err := tx.UpsertProxyBid(ctx, models.ProxyBid{LotID: lot.ID, BidderID: bidderID, MaxPrice: maxBid, PlacedAt: now}); err != nil {
		return models.ResolveResult{}, "", err
	}
	if err := tx.SaveLot(ctx, next); err != nil {
		return models.ResolveResult{}, "", err
	}
	if res.WritesLedger() {
		entry := models.LedgerEntry{
			ID:           utils.GenerateID(),
			LotID:        lot.ID,
			BidderID:     res.LedgerBidderID,
			CurrentPrice: res.CurrentPrice,
			CreatedAt:    now,
		}
		if err := tx.AppendLedger(ctx, entry); err != nil {
			return models.ResolveResult{}, "", err
		}
	}

	result := resultOf(next, bidderID)
	result.Sold = res.BuyNow
	result.Extended = extended
	result.LedgerWritten = res.WritesLedger()

	var outcome string
	switch {
	case res.BuyNow:
		outcome = "buy_now"
	case res.SelfRaise:
		outcome = "self_raise"
	case result.Leading:
		outcome = "leading"
	default:
		outcome = "outbid"
	}
	return result, outcome, nil
}

func resultOf(lot models.Lot, bidderID string) models.ResolveResult {
	return models.ResolveResult{
		LotID:           lot.ID,
		BidderID:        bidderID,
		CurrentPrice:    lot.CurrentPrice,
		LeadingBidderID: lot.LeadingBidderID,
		LeadingMaxPrice: lot.LeadingMaxPrice,
		Leading:         lot.LeadingBidderID == bidderID,
		EndAt:           lot.EndAt,
	}
}

// Reject bans bidderID from lotID on the seller's behalf, erases the bidder's ledger
// entries and proxy bid, and recomputes the lot from the remaining bids.
func (s *BiddingService) Reject(ctx context.Context, lotID, bidderID, sellerID string) (models.RejectResult, error) {
	start := time.Now()

	if lotID == "" || bidderID == "" || sellerID == "" {
		return models.RejectResult{}, fmt.Errorf("service: %w - missing lotID, bidderID or sellerID", biddingerrors.ErrInvalidBid)
	}

	var result models.RejectResult
	err := s.repo.WithLotLock(ctx, lotID, func(ctx context.Context, tx repository.LotTx) error {
		var err error
		result, err = s.rejectLocked(ctx, tx, bidderID, sellerID)
		return err
	})
	if err != nil {
		s.metrics.ObserveRejection(string(biddingerrors.KindOf(err)), time.Since(start))
		return models.RejectResult{}, fmt.Errorf("service: reject bidder %s on lot %s: %w", bidderID, lotID, err)
	}

	outcome := "unchanged"
	switch {
	case result.Reset:
		outcome = "reset"
	case result.LedgerWritten:
		outcome = "recomputed"
	}
	s.metrics.ObserveRejection(outcome, time.Since(start))
	s.invalidate(ctx, lotID)
	return result, nil
}

func (s *BiddingService) rejectLocked(ctx context.Context, tx repository.LotTx, bidderID, sellerID string) (models.RejectResult, error) {
	lot := tx.Lot()
	now := s.clock.Now()

	if lot.SellerID != sellerID {
		return models.RejectResult{}, fmt.Errorf("%w - rejecting bidders on lot %s", biddingerrors.ErrNotSeller, lot.ID)
	}
	if !lot.IsOpen(now) {
		return models.RejectResult{}, fmt.Errorf("%w - lot %s is %s", biddingerrors.ErrLotClosed, lot.ID, lot.Status(now))
	}
	if _, ok, err := tx.ProxyBid(ctx, bidderID); err != nil {
		return models.RejectResult{}, err
	} else if !ok {
		return models.RejectResult{}, fmt.Errorf("%w - %s", biddingerrors.ErrBidderNotOnLot, bidderID)
	}

	if err := tx.AddRejected(ctx, models.RejectedBidder{LotID: lot.ID, BidderID: bidderID, RejectedBySellerID: sellerID, CreatedAt: now}); err != nil {
		return models.RejectResult{}, err
	}
	purged, err := tx.DeleteLedgerEntries(ctx, bidderID)
	if err != nil {
		return models.RejectResult{}, err
	}
	if err := tx.DeleteProxyBid(ctx, bidderID); err != nil {
		return models.RejectResult{}, err
	}
	remaining, err := tx.ProxyBids(ctx)
	if err != nil {
		return models.RejectResult{}, err
	}
	last, err := tx.LastLedgerEntry(ctx)
	if err != nil {
		return models.RejectResult{}, err
	}

	plan := proxy.Reject(lot, bidderID, remaining, last)
	next := plan.State.Apply(lot)
	if err := tx.SaveLot(ctx, next); err != nil {
		return models.RejectResult{}, err
	}
	if plan.LedgerBidderID != "" {
		entry := models.LedgerEntry{
			ID:           utils.GenerateID(),
			LotID:        lot.ID,
			BidderID:     plan.LedgerBidderID,
			CurrentPrice: plan.CurrentPrice,
			CreatedAt:    now,
		}
		if err := tx.AppendLedger(ctx, entry); err != nil {
			return models.RejectResult{}, err
		}
	}

	return models.RejectResult{
		LotID:           lot.ID,
		RejectedBidder:  bidderID,
		CurrentPrice:    next.CurrentPrice,
		LeadingBidderID: next.LeadingBidderID,
		Reset:           plan.Reset,
		LedgerWritten:   plan.LedgerBidderID != "",
		PurgedEntries:   purged,
	}, nil
}

// CancelLot withdraws a lot that has not been settled. The ledger is left as it is.
func (s *BiddingService) CancelLot(ctx context.Context, lotID, sellerID string) (models.Lot, error) {
	return s.settle(ctx, "cancel", lotID, sellerID, func(lot models.Lot, now time.Time) (models.Lot, error) {
		lot.SoldState = models.SoldCancelled
		return lot, nil
	})
}

// ConfirmSale marks an ended lot as sold to its leader once payment has been confirmed
func (s *BiddingService) ConfirmSale(ctx context.Context, lotID, sellerID string) (models.Lot, error) {
	return s.settle(ctx, "confirm sale of", lotID, sellerID, func(lot models.Lot, now time.Time) (models.Lot, error) {
		if lot.ClosedAt == nil && now.Before(lot.EndAt) {
			return models.Lot{}, fmt.Errorf("%w - bidding ends at %s", biddingerrors.ErrLotStillOpen, lot.EndAt.Format(time.RFC3339))
		}
		if !lot.HasLeader() {
			return models.Lot{}, biddingerrors.ErrNoWinner
		}
		lot.SoldState = models.SoldSold
		return lot, nil
	})
}

// settle runs a seller-only state change on an unresolved lot and stamps closed_at
func (s *BiddingService) settle(ctx context.Context, action, lotID, sellerID string, apply func(models.Lot, time.Time) (models.Lot, error)) (models.Lot, error) {
	if lotID == "" || sellerID == "" {
		return models.Lot{}, fmt.Errorf("service: %w - missing lotID or sellerID", biddingerrors.ErrInvalidLot)
	}

	var settled models.Lot
	err := s.repo.WithLotLock(ctx, lotID, func(ctx context.Context, tx repository.LotTx) error {
		lot := tx.Lot()
		now := s.clock.Now()

		if lot.SellerID != sellerID {
			return biddingerrors.ErrNotSeller
		}
		if lot.SoldState != models.SoldUnresolved {
			return fmt.Errorf("%w - lot %s is %s", biddingerrors.ErrLotClosed, lot.ID, lot.SoldState)
		}

		next, err := apply(lot, now)
		if err != nil {
			return err
		}
		if next.ClosedAt == nil {
			closedAt := now
			next.ClosedAt = &closedAt
		}
		if err := tx.SaveLot(ctx, next); err != nil {
			return err
		}
		settled = next
		return nil
	})
	if err != nil {
		return models.Lot{}, fmt.Errorf("service: %s lot %s: %w", action, lotID, err)
	}

	s.invalidate(ctx, lotID)
	return settled, nil
}

// DeleteLot removes a lot that nobody has bid on, together with its history. Sold lots
// and lots holding proxy bids stay; those can only be cancelled.
func (s *BiddingService) DeleteLot(ctx context.Context, lotID, sellerID string) error {
	if lotID == "" || sellerID == "" {
		return fmt.Errorf("service: %w - missing lotID or sellerID", biddingerrors.ErrInvalidLot)
	}

	err := s.repo.WithLotLock(ctx, lotID, func(ctx context.Context, tx repository.LotTx) error {
		lot := tx.Lot()
		if lot.SellerID != sellerID {
			return fmt.Errorf("%w - deleting lot %s", biddingerrors.ErrNotSeller, lot.ID)
		}
		if lot.SoldState == models.SoldSold {
			return fmt.Errorf("%w - lot %s is sold", biddingerrors.ErrLotClosed, lot.ID)
		}
		bids, err := tx.ProxyBids(ctx)
		if err != nil {
			return err
		}
		if len(bids) > 0 || lot.HasLeader() {
			return fmt.Errorf("%w - lot %s has %d bids, cancel it instead", biddingerrors.ErrLotClosed, lot.ID, len(bids))
		}
		return tx.DeleteLot(ctx)
	})
	if err != nil {
		return fmt.Errorf("service: delete lot %s: %w", lotID, err)
	}

	utils.Info("lot deleted", map[string]any{"lot_id": lotID, "seller_id": sellerID})
	s.invalidate(ctx, lotID)
	return nil
}

// SellerLots lists the seller's lots, newest first. A non-empty status keeps only the
// lots currently in that status.
func (s *BiddingService) SellerLots(ctx context.Context, sellerID string, status models.LotStatus) ([]models.Lot, error) {
	if sellerID == "" {
		return nil, fmt.Errorf("service: %w - empty seller ID", biddingerrors.ErrInvalidLot)
	}
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("service: %w - unknown status %q", biddingerrors.ErrInvalidLot, status)
	}

	lots, err := s.repo.ListLotsBySeller(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list lots of seller %s: %w", sellerID, err)
	}
	if status == "" {
		return lots, nil
	}

	now := s.clock.Now()
	filtered := make([]models.Lot, 0, len(lots))
	for _, lot := range lots {
		if lot.Status(now) == status {
			filtered = append(filtered, lot)
		}
	}
	return filtered, nil
}

// SellerStats counts the seller's lots per status and sums their revenue
func (s *BiddingService) SellerStats(ctx context.Context, sellerID string) (models.SellerStats, error) {
	lots, err := s.SellerLots(ctx, sellerID, "")
	if err != nil {
		return models.SellerStats{}, err
	}

	now := s.clock.Now()
	stats := models.SellerStats{SellerID: sellerID}
	for _, lot := range lots {
		stats.Add(lot, now)
	}
	return stats, nil
}

// GetLot returns the committed state of a lot, from the cache when possible
func (s *BiddingService) GetLot(ctx context.Context, lotID string) (models.Lot, error) {
	if lotID == "" {
		return models.Lot{}, fmt.Errorf("service: %w - empty lot ID", biddingerrors.ErrInvalidLot)
	}

	lot, ok, err := s.cache.Get(ctx, lotID)
	if err != nil {
		utils.Warn("lot cache read failed", map[string]any{"lot_id": lotID, "error": err.Error()})
	}
	s.metrics.CacheLookup(ok)
	if ok {
		return lot, nil
	}

	// the generation is taken before the store read so a commit in between voids the fill
	gen, genErr := s.cache.Generation(ctx, lotID)
	if genErr != nil {
		utils.Warn("lot cache generation read failed", map[string]any{"lot_id": lotID, "error": genErr.Error()})
	}

	lot, err = s.repo.GetLot(ctx, lotID)
	if err != nil {
		return models.Lot{}, fmt.Errorf("service: failed to get lot %s: %w", lotID, err)
	}
	if genErr != nil {
		return lot, nil
	}
	if err := s.cache.Set(ctx, lot, gen); err != nil {
		utils.Warn("lot cache write failed", map[string]any{"lot_id": lotID, "error": err.Error()})
	}
	return lot, nil
}

// GetHistory returns the lot's price ledger, newest entry first
func (s *BiddingService) GetHistory(ctx context.Context, lotID string) ([]models.LedgerEntry, error) {
	if lotID == "" {
		return nil, fmt.Errorf("service: %w - empty lot ID", biddingerrors.ErrInvalidLot)
	}

	entries, err := s.repo.GetLedger(ctx, lotID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get history of lot %s: %w", lotID, err)
	}
	return entries, nil
}

// Now exposes the service clock so callers derive lot status consistently
func (s *BiddingService) Now() time.Time {
	return s.clock.Now()
}

func (s *BiddingService) invalidate(ctx context.Context, lotID string) {
	if err := s.cache.Invalidate(ctx, lotID); err != nil {
		utils.Warn("lot cache invalidation failed", map[string]any{"lot_id": lotID, "error": err.Error()})
	}
}
