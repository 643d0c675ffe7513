// Package monitoring exposes prometheus metrics for bid resolutions and rejections.
package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	resolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auction_bid_resolutions_total",
			Help: "Bid resolutions by outcome",
		},
		[]string{"outcome"},
	)

	resolutionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "auction_bid_resolution_duration_seconds",
			Help:    "Time spent resolving a bid, lock wait included",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14),
		},
		[]string{"operation"},
	)

	rejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auction_bidder_rejections_total",
			Help: "Seller rejections by outcome",
		},
		[]string{"outcome"},
	)

	extensions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "auction_lot_extensions_total",
			Help: "Lots whose end was pushed back by a late bid",
		},
	)

	buyNowClosures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "auction_buy_now_closures_total",
			Help: "Lots closed because the price reached buy-now",
		},
	)

	cacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auction_lot_cache_lookups_total",
			Help: "Lot snapshot cache lookups",
		},
		[]string{"result"},
	)
)

// Recorder is the metrics surface used by the bidding service
type Recorder interface {
	ObserveResolution(outcome string, elapsed time.Duration)
	ObserveRejection(outcome string, elapsed time.Duration)
	LotExtended()
	BuyNowClosed()
	CacheLookup(hit bool)
}

// Prometheus records into the default registry
type Prometheus struct{}

func (Prometheus) ObserveResolution(outcome string, elapsed time.Duration) {
	resolutions.WithLabelValues(outcome).Inc()
	resolutionDuration.WithLabelValues("resolve").Observe(elapsed.Seconds())
}

func (Prometheus) ObserveRejection(outcome string, elapsed time.Duration) {
	rejections.WithLabelValues(outcome).Inc()
	resolutionDuration.WithLabelValues("reject").Observe(elapsed.Seconds())
}

func (Prometheus) LotExtended() {
	extensions.Inc()
}

func (Prometheus) BuyNowClosed() {
	buyNowClosures.Inc()
}

func (Prometheus) CacheLookup(hit bool) {
	if hit {
		cacheLookups.WithLabelValues("hit").Inc()
		return
	}
	cacheLookups.WithLabelValues("miss").Inc()
}

// Nop discards everything
type Nop struct{}

func (Nop) ObserveResolution(string, time.Duration) {}
func (Nop) ObserveRejection(string, time.Duration)  {}
func (Nop) LotExtended()                            {}
func (Nop) BuyNowClosed()                           {}
func (Nop) CacheLookup(bool)                        {}

// Handler serves the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
