package reputation

import (
	"context"
	"errors"
	"testing"

	"auction-engine/internal/biddingerrors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestPolicy_Check(t *testing.T) {
	policy := Policy{MinScore: DefaultMinScore}

	tests := []struct {
		name         string
		score        float64
		allowUnrated bool
		wantErr      bool
	}{
		{name: "unrated_allowed", score: 0, allowUnrated: true},
		{name: "unrated_forbidden", score: 0, allowUnrated: false, wantErr: true},
		{name: "below_threshold", score: 0.79, wantErr: true},
		{name: "below_threshold_even_if_unrated_allowed", score: 0.5, allowUnrated: true, wantErr: true},
		{name: "at_threshold", score: 0.8},
		{name: "perfect", score: 1},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := policy.Check(tc.score, tc.allowUnrated)
			if tc.wantErr {
				require.ErrorIs(t, err, biddingerrors.ErrIneligible)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestMemoryScores(t *testing.T) {
	t.Parallel()

	scores := NewMemoryScores(map[string]float64{"good": 0.95})
	got, err := scores.RatingScore(context.Background(), "good")
	require.NoError(t, err)
	require.Equal(t, 0.95, got)

	got, err = scores.RatingScore(context.Background(), "new")
	require.NoError(t, err)
	require.Zero(t, got)

	scores.Set("new", 0.5)
	got, err = scores.RatingScore(context.Background(), "new")
	require.NoError(t, err)
	require.Equal(t, 0.5, got)
}

func TestPostgresScores_RatingScore(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(mock sqlmock.Sqlmock)
		wantScore float64
		wantErr   bool
	}{
		{
			name: "ratio_of_positive_feedback",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT\s+positive,\s*negative\s+FROM\s+bidder_ratings`).
					WithArgs("b1").
					WillReturnRows(sqlmock.NewRows([]string{"positive", "negative"}).AddRow(9, 1))
			},
			wantScore: 0.9,
		},
		{
			name: "no_row_is_unrated",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM\s+bidder_ratings`).WithArgs("b1").
					WillReturnRows(sqlmock.NewRows([]string{"positive", "negative"}))
			},
			wantScore: 0,
		},
		{
			name: "zero_feedback_is_unrated",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM\s+bidder_ratings`).WithArgs("b1").
					WillReturnRows(sqlmock.NewRows([]string{"positive", "negative"}).AddRow(0, 0))
			},
			wantScore: 0,
		},
		{
			name: "db_error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM\s+bidder_ratings`).WithArgs("b1").
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
			require.NoError(t, err)
			defer db.Close()

			tc.setup(mock)
			score, err := NewPostgresScores(db).RatingScore(context.Background(), "b1")
			if tc.wantErr {
				require.ErrorContains(t, err, "connection reset")
				return
			}
			require.NoError(t, err)
			require.InDelta(t, tc.wantScore, score, 1e-9)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
