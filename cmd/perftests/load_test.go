package perftests

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	bidding "auction-engine/internal/biddingService"
	"auction-engine/internal/biddingerrors"
	"auction-engine/internal/repository"

	"github.com/shopspring/decimal"
)

// LoadScenario defines configurable benchmark parameters
type LoadScenario struct {
	Name            string
	NumLots         int
	ReadRatio       int
	MaxBidIncrement int
	LockWait        time.Duration
	Burst           bool // if true, no delay between ops
}

// OperationMetrics collects latencies safely
type OperationMetrics struct {
	mu        sync.Mutex
	latencies []time.Duration
}

func (om *OperationMetrics) Record(d time.Duration) {
	om.mu.Lock()
	om.latencies = append(om.latencies, d)
	om.mu.Unlock()
}

func (om *OperationMetrics) Stats() (min, max, avg, p95, p99 time.Duration) {
	om.mu.Lock()
	latencies := append([]time.Duration(nil), om.latencies...)
	om.mu.Unlock()
	if len(latencies) == 0 {
		return
	}
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })

	min = latencies[0]
	max = latencies[len(latencies)-1]

	var total time.Duration
	for _, d := range latencies {
		total += d
	}
	avg = total / time.Duration(len(latencies))
	p95 = latencies[int(0.95*float64(len(latencies)))]
	p99 = latencies[int(0.99*float64(len(latencies)))]
	return
}

// setupService creates the repository and bidding service with open lots
func setupService(s LoadScenario) *bidding.BiddingService {
	repo := repository.NewMemoryRepo(repository.WithLockWait(s.LockWait))
	svc := bidding.NewBiddingService(repo)
	now := time.Now().UTC()
	for i := 0; i < s.NumLots; i++ {
		repo.AddLot(benchLot(fmt.Sprintf("lot_%d", i), 100, now))
	}
	return svc
}

// Benchmark_Load_BiddingSystem runs multiple scenarios
func Benchmark_Load_BiddingSystem(b *testing.B) {
	scenarios := []LoadScenario{
		{"Low-Contention-WriteHeavy", 200, 0, 50, time.Second, false},
		{"High-Contention-WriteHeavy", 10, 0, 20, time.Second, false},
		{"Mixed-Workload", 50, 7, 30, time.Second, false},
		{"ReadHeavy", 50, 9, 20, time.Second, false},
		{"Edge-Case-SingleLot", 1, 5, 10, time.Second, false},
		{"Peak-Burst-ShortLockWait", 5, 0, 20, time.Millisecond, true},
	}

	for _, s := range scenarios {
		b.Run(s.Name, func(b *testing.B) {
			runParallelScenario(b, s)
		})
	}
}

func runParallelScenario(b *testing.B, s LoadScenario) {
	b.ReportAllocs()

	svc := setupService(s)
	ctx := context.Background()

	var totalOps, acceptedBids, refusedBids, busyBids, totalReads int64
	lotCeilings := make([]int64, s.NumLots)
	for i := range lotCeilings {
		lotCeilings[i] = 100
	}
	metrics := &OperationMetrics{}

	start := time.Now()

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

		for pb.Next() {
			lotIndex := rnd.Intn(s.NumLots)
			lotID := fmt.Sprintf("lot_%d", lotIndex)

			opStart := time.Now()
			if rnd.Intn(10) < s.ReadRatio {
				if _, err := svc.GetLot(ctx, lotID); err != nil {
					b.Logf("ignored read error: %v", err)
				}
				atomic.AddInt64(&totalReads, 1)
			} else {
				maxBid := atomic.AddInt64(&lotCeilings[lotIndex], int64(1+rnd.Intn(s.MaxBidIncrement)))
				bidderID := fmt.Sprintf("bidder_%d", rnd.Int())
				_, err := svc.Resolve(ctx, lotID, bidderID, decimal.NewFromInt(maxBid))
				switch {
				case err == nil:
					atomic.AddInt64(&acceptedBids, 1)
				case errors.Is(err, biddingerrors.ErrBusy):
					atomic.AddInt64(&busyBids, 1)
				default:
					atomic.AddInt64(&refusedBids, 1)
				}
			}

			metrics.Record(time.Since(opStart))
			atomic.AddInt64(&totalOps, 1)

			if !s.Burst {
				time.Sleep(time.Millisecond)
			}
		}
	})

	elapsed := time.Since(start)
	throughput := float64(totalOps) / elapsed.Seconds()
	min, max, avg, p95, p99 := metrics.Stats()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	b.Logf(
		"Scenario: %s | Lots: %d | Total Ops: %d | Accepted: %d | Refused: %d | Busy: %d | Reads: %d | Elapsed: %s | Throughput: %.2f ops/sec | Latency(us) min: %.2f avg: %.2f max: %.2f p95: %.2f p99: %.2f | Memory Alloc: %.2f MB",
		s.Name, s.NumLots, totalOps, acceptedBids, refusedBids, busyBids, totalReads, elapsed,
		throughput,
		float64(min.Microseconds()), float64(avg.Microseconds()), float64(max.Microseconds()),
		float64(p95.Microseconds()), float64(p99.Microseconds()),
		float64(mem.Alloc)/1024/1024,
	)
}
