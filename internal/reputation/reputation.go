// Package reputation decides whether a bidder's rating allows them to bid on a lot.
package reputation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"auction-engine/internal/biddingerrors"
)

// DefaultMinScore is the share of positive feedback a rated bidder needs
const DefaultMinScore = 0.8

// Scorer returns a bidder's rating score in [0,1]; 0 means the bidder has no ratings yet
type Scorer interface {
	RatingScore(ctx context.Context, bidderID string) (float64, error)
}

// Policy holds the eligibility thresholds
type Policy struct {
	MinScore float64
}

// Check returns ErrIneligible when a bidder with score may not bid on a lot.
// Unrated bidders pass only on lots that allow them.
func (p Policy) Check(score float64, allowUnrated bool) error {
	if score == 0 {
		if allowUnrated {
			return nil
		}
		return fmt.Errorf("%w - this lot does not accept bidders without ratings", biddingerrors.ErrIneligible)
	}
	if score < p.MinScore {
		return fmt.Errorf("%w - rating %.0f%% is below the required %.0f%%", biddingerrors.ErrIneligible, score*100, p.MinScore*100)
	}
	return nil
}

// MemoryScores is a concurrency-safe in-memory Scorer. Unknown bidders score 0.
type MemoryScores struct {
	mu     sync.RWMutex
	scores map[string]float64
}

// NewMemoryScores creates a MemoryScores seeded with scores
func NewMemoryScores(scores map[string]float64) *MemoryScores {
	m := &MemoryScores{scores: make(map[string]float64, len(scores))}
	for k, v := range scores {
		m.scores[k] = v
	}
	return m
}

// Set records a bidder's score
func (m *MemoryScores) Set(bidderID string, score float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores[bidderID] = score
}

func (m *MemoryScores) RatingScore(_ context.Context, bidderID string) (float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.scores[bidderID], nil
}

// PostgresScores reads scores from the bidder_ratings table
type PostgresScores struct {
	db *sql.DB
}

func NewPostgresScores(db *sql.DB) *PostgresScores {
	return &PostgresScores{db: db}
}

// RatingScore is positive/(positive+negative), or 0 for a bidder with no feedback
func (p *PostgresScores) RatingScore(ctx context.Context, bidderID string) (float64, error) {
	var positive, negative int64
	err := p.db.QueryRowContext(ctx,
		`SELECT positive, negative FROM bidder_ratings WHERE bidder_id = $1`, bidderID).
		Scan(&positive, &negative)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("rating score for %s: %w", bidderID, err)
	}
	if positive+negative == 0 {
		return 0, nil
	}
	return float64(positive) / float64(positive+negative), nil
}
