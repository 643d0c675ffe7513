package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	bidding "auction-engine/internal/biddingService"
	"auction-engine/internal/clock"
	"auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/internal/reputation"
	"auction-engine/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

var startTime = time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)

// testEnv is a full server over the in-memory store with a movable clock
type testEnv struct {
	router *gin.Engine
	repo   *repository.MemoryRepo
	clock  *clock.Fixed
	scores *reputation.MemoryScores
}

// SetupTestEnv initializes the router with an in-memory repository for integration testing.
// Bidders in ratedBidders get a rating of 0.95; everyone else is unrated.
func SetupTestEnv(ratedBidders ...string) *testEnv {
	gin.SetMode(gin.TestMode)
	env := &testEnv{
		repo:   repository.NewMemoryRepo(repository.WithLockWait(2 * time.Second)),
		clock:  &clock.Fixed{T: startTime},
		scores: reputation.NewMemoryScores(nil),
	}
	for _, id := range ratedBidders {
		env.scores.Set(id, 0.95)
	}

	service := bidding.NewBiddingService(env.repo,
		bidding.WithClock(env.clock),
		bidding.WithExtendPolicy(clock.Policy{TriggerMinutes: 5, ExtendMinutes: 10}),
		bidding.WithReputation(env.scores, reputation.Policy{MinScore: reputation.DefaultMinScore}),
	)
	env.router = server.SetupRouter(service, false)
	return env
}

// SeedLot stores an open lot starting at start with the given step, ending one hour after startTime
func (e *testEnv) SeedLot(id, seller string, start, step int64, mutate ...func(*models.Lot)) {
	lot := models.Lot{
		ID:            id,
		SellerID:      seller,
		StartingPrice: decimal.NewFromInt(start),
		StepPrice:     decimal.NewFromInt(step),
		CurrentPrice:  decimal.NewFromInt(start),
		EndAt:         startTime.Add(time.Hour),
		SoldState:     models.SoldUnresolved,
		CreatedAt:     startTime,
	}
	for _, m := range mutate {
		m(&lot)
	}
	e.repo.AddLot(lot)
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// PlaceBid posts a bid and returns the decoded response
func (e *testEnv) PlaceBid(t *testing.T, lotID, bidderID, maxBid string) (map[string]any, *httptest.ResponseRecorder) {
	return ExecuteRequestAndParse(t, e.router, "POST", "/lots/"+lotID+"/bids", map[string]any{
		"bidder_id": bidderID,
		"max_bid":   maxBid,
	})
}

func data(resp map[string]any) map[string]any {
	return resp["data"].(map[string]any)
}
