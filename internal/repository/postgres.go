package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"auction-engine/internal/biddingerrors"
	"auction-engine/internal/dbx"
	"auction-engine/internal/models"
	"auction-engine/internal/repository/migrations"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// SQLSTATE codes the store reacts to
const (
	pgLockNotAvailable = "55P03"
	pgDeadlockDetected = "40P01"
	pgUniqueViolation  = "23505"
)

const lotColumns = `id, seller_id, starting_price, step_price, current_price, leading_bidder_id,
	leading_max_price, buy_now_price, end_at, auto_extend, allow_unrated_bidder, closed_at, sold_state, created_at`

// PostgresRepo implements AuctionDB over PostgreSQL. The per-lot lease is the lot row lock
// taken with SELECT ... FOR UPDATE; lock waits are bounded by lock_timeout.
type PostgresRepo struct {
	db          *sql.DB
	lockTimeout time.Duration
}

// OpenPostgres opens a pgx-backed *sql.DB
func OpenPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	return db, nil
}

// NewPostgresRepo binds the store to db
func NewPostgresRepo(db *sql.DB, lockTimeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, lockTimeout: lockTimeout}
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded schema migrations
func (r *PostgresRepo) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, r.db, "."); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// CreateLot inserts a new lot
func (r *PostgresRepo) CreateLot(ctx context.Context, lot models.Lot) error {
	query := `
		INSERT INTO lots (` + lotColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.ExecContext(ctx, query,
		lot.ID, lot.SellerID, lot.StartingPrice, lot.StepPrice, lot.CurrentPrice, nullString(lot.LeadingBidderID),
		lot.LeadingMaxPrice, lot.BuyNowPrice, lot.EndAt, lot.AutoExtend, lot.AllowUnratedBidder, lot.ClosedAt,
		string(lot.SoldState), lot.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("create lot %s: %w", lot.ID, biddingerrors.ErrLotExists)
		}
		return fmt.Errorf("create lot %s: %w", lot.ID, err)
	}
	return nil
}

// GetLot reads a lot without locking it
func (r *PostgresRepo) GetLot(ctx context.Context, lotID string) (models.Lot, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+lotColumns+` FROM lots WHERE id = $1`, lotID)
	lot, err := scanLot(row)
	if err != nil {
		return models.Lot{}, fmt.Errorf("get lot %s: %w", lotID, err)
	}
	return lot, nil
}

// GetLedger returns the lot's ledger, newest entry first
func (r *PostgresRepo) GetLedger(ctx context.Context, lotID string) ([]models.LedgerEntry, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM lots WHERE id = $1)`, lotID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("get ledger for lot %s: %w", lotID, err)
	}
	if !exists {
		return nil, fmt.Errorf("get ledger for lot %s: %w", lotID, biddingerrors.ErrLotNotFound)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, lot_id, bidder_id, current_price, created_at FROM bid_ledger
		WHERE lot_id = $1 ORDER BY seq DESC`, lotID)
	if err != nil {
		return nil, fmt.Errorf("get ledger for lot %s: %w", lotID, err)
	}
	defer rows.Close()

	entries := []models.LedgerEntry{}
	for rows.Next() {
		var e models.LedgerEntry
		if err := rows.Scan(&e.ID, &e.LotID, &e.BidderID, &e.CurrentPrice, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// ListLotsBySeller returns the seller's lots, newest first
func (r *PostgresRepo) ListLotsBySeller(ctx context.Context, sellerID string) ([]models.Lot, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+lotColumns+` FROM lots
		WHERE seller_id = $1 ORDER BY created_at DESC, id ASC`, sellerID)
	if err != nil {
		return nil, fmt.Errorf("list lots of seller %s: %w", sellerID, err)
	}
	defer rows.Close()

	lots := []models.Lot{}
	for rows.Next() {
		lot, err := scanLot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		lots = append(lots, lot)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return lots, nil
}

// WithLotLock opens a transaction, locks the lot row and runs fn.
// Lock waits beyond lockTimeout and deadlocks surface as ErrBusy.
func (r *PostgresRepo) WithLotLock(ctx context.Context, lotID string, fn func(ctx context.Context, tx LotTx) error) error {
	err := dbx.WithLease(ctx, r.db, r.lockTimeout, func(ctx context.Context, tx dbx.DBTX) error {
		row := tx.QueryRowContext(ctx, `SELECT `+lotColumns+` FROM lots WHERE id = $1 FOR UPDATE`, lotID)
		lot, err := scanLot(row)
		if err != nil {
			return fmt.Errorf("lock lot %s: %w", lotID, err)
		}

		return fn(ctx, &pgLotTx{db: tx, lot: lot})
	})
	return translateLockError(err)
}

func translateLockError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && (pgErr.Code == pgLockNotAvailable || pgErr.Code == pgDeadlockDetected) {
		return fmt.Errorf("%w: %s", biddingerrors.ErrBusy, pgErr.Message)
	}
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLot(row rowScanner) (models.Lot, error) {
	var (
		lot       models.Lot
		leader    sql.NullString
		closedAt  sql.NullTime
		soldState string
	)
	err := row.Scan(&lot.ID, &lot.SellerID, &lot.StartingPrice, &lot.StepPrice, &lot.CurrentPrice, &leader,
		&lot.LeadingMaxPrice, &lot.BuyNowPrice, &lot.EndAt, &lot.AutoExtend, &lot.AllowUnratedBidder, &closedAt,
		&soldState, &lot.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Lot{}, biddingerrors.ErrLotNotFound
	}
	if err != nil {
		return models.Lot{}, err
	}
	lot.LeadingBidderID = leader.String
	if closedAt.Valid {
		t := closedAt.Time
		lot.ClosedAt = &t
	}
	lot.SoldState = models.SoldState(soldState)
	return lot, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// pgLotTx runs lot-scoped statements inside the locking transaction
type pgLotTx struct {
	db  dbx.DBTX
	lot models.Lot
}

func (t *pgLotTx) Lot() models.Lot {
	return t.lot
}

func (t *pgLotTx) SaveLot(ctx context.Context, lot models.Lot) error {
	query := `
		UPDATE lots SET current_price = $2, leading_bidder_id = $3, leading_max_price = $4,
			end_at = $5, closed_at = $6, sold_state = $7
		WHERE id = $1`
	res, err := t.db.ExecContext(ctx, query, lot.ID, lot.CurrentPrice, nullString(lot.LeadingBidderID),
		lot.LeadingMaxPrice, lot.EndAt, lot.ClosedAt, string(lot.SoldState))
	if err != nil {
		return fmt.Errorf("save lot %s: %w", lot.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n != 1 {
		return fmt.Errorf("save lot %s: unexpected rows affected: %d", lot.ID, n)
	}
	t.lot = lot
	return nil
}

// DeleteLot removes the locked row; proxy bids, ledger and rejections go with it by cascade
func (t *pgLotTx) DeleteLot(ctx context.Context) error {
	res, err := t.db.ExecContext(ctx, `DELETE FROM lots WHERE id = $1`, t.lot.ID)
	if err != nil {
		return fmt.Errorf("delete lot %s: %w", t.lot.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n != 1 {
		return fmt.Errorf("delete lot %s: unexpected rows affected: %d", t.lot.ID, n)
	}
	return nil
}

func (t *pgLotTx) ProxyBid(ctx context.Context, bidderID string) (models.ProxyBid, bool, error) {
	var b models.ProxyBid
	err := t.db.QueryRowContext(ctx, `
		SELECT lot_id, bidder_id, max_price, placed_at FROM proxy_bids
		WHERE lot_id = $1 AND bidder_id = $2`, t.lot.ID, bidderID).
		Scan(&b.LotID, &b.BidderID, &b.MaxPrice, &b.PlacedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ProxyBid{}, false, nil
	}
	if err != nil {
		return models.ProxyBid{}, false, fmt.Errorf("get proxy bid: %w", err)
	}
	return b, true, nil
}

func (t *pgLotTx) ProxyBids(ctx context.Context) ([]models.ProxyBid, error) {
	rows, err := t.db.QueryContext(ctx, `
		SELECT lot_id, bidder_id, max_price, placed_at FROM proxy_bids
		WHERE lot_id = $1 ORDER BY max_price DESC, placed_at ASC, bidder_id ASC`, t.lot.ID)
	if err != nil {
		return nil, fmt.Errorf("list proxy bids: %w", err)
	}
	defer rows.Close()

	var bids []models.ProxyBid
	for rows.Next() {
		var b models.ProxyBid
		if err := rows.Scan(&b.LotID, &b.BidderID, &b.MaxPrice, &b.PlacedAt); err != nil {
			return nil, fmt.Errorf("scan proxy bid: %w", err)
		}
		bids = append(bids, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return bids, nil
}

func (t *pgLotTx) UpsertProxyBid(ctx context.Context, bid models.ProxyBid) error {
	query := `
		INSERT INTO proxy_bids (lot_id, bidder_id, max_price, placed_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (lot_id, bidder_id)
		DO UPDATE SET max_price = EXCLUDED.max_price, placed_at = EXCLUDED.placed_at`
	if _, err := t.db.ExecContext(ctx, query, bid.LotID, bid.BidderID, bid.MaxPrice, bid.PlacedAt); err != nil {
		return fmt.Errorf("upsert proxy bid: %w", err)
	}
	return nil
}

func (t *pgLotTx) DeleteProxyBid(ctx context.Context, bidderID string) error {
	if _, err := t.db.ExecContext(ctx, `DELETE FROM proxy_bids WHERE lot_id = $1 AND bidder_id = $2`, t.lot.ID, bidderID); err != nil {
		return fmt.Errorf("delete proxy bid: %w", err)
	}
	return nil
}

func (t *pgLotTx) AppendLedger(ctx context.Context, entry models.LedgerEntry) error {
	query := `
		INSERT INTO bid_ledger (id, lot_id, bidder_id, current_price, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	if _, err := t.db.ExecContext(ctx, query, entry.ID, entry.LotID, entry.BidderID, entry.CurrentPrice, entry.CreatedAt); err != nil {
		return fmt.Errorf("append ledger: %w", err)
	}
	return nil
}

func (t *pgLotTx) LastLedgerEntry(ctx context.Context) (*models.LedgerEntry, error) {
	var e models.LedgerEntry
	err := t.db.QueryRowContext(ctx, `
		SELECT id, lot_id, bidder_id, current_price, created_at FROM bid_ledger
		WHERE lot_id = $1 ORDER BY seq DESC LIMIT 1`, t.lot.ID).
		Scan(&e.ID, &e.LotID, &e.BidderID, &e.CurrentPrice, &e.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("last ledger entry: %w", err)
	}
	return &e, nil
}

func (t *pgLotTx) DeleteLedgerEntries(ctx context.Context, bidderID string) (int64, error) {
	res, err := t.db.ExecContext(ctx, `DELETE FROM bid_ledger WHERE lot_id = $1 AND bidder_id = $2`, t.lot.ID, bidderID)
	if err != nil {
		return 0, fmt.Errorf("delete ledger entries: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}

func (t *pgLotTx) IsRejected(ctx context.Context, bidderID string) (bool, error) {
	var rejected bool
	err := t.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM rejected_bidders WHERE lot_id = $1 AND bidder_id = $2)`,
		t.lot.ID, bidderID).Scan(&rejected)
	if err != nil {
		return false, fmt.Errorf("check rejected bidder: %w", err)
	}
	return rejected, nil
}

func (t *pgLotTx) AddRejected(ctx context.Context, rejected models.RejectedBidder) error {
	query := `
		INSERT INTO rejected_bidders (lot_id, bidder_id, rejected_by_seller_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (lot_id, bidder_id) DO NOTHING`
	if _, err := t.db.ExecContext(ctx, query, rejected.LotID, rejected.BidderID, rejected.RejectedBySellerID, rejected.CreatedAt); err != nil {
		return fmt.Errorf("add rejected bidder: %w", err)
	}
	return nil
}
