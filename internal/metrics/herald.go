package metrics

import (
	"time"

	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	heraldFetchLatestTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "service",
		Name:      "fetch_latest_total",
		Help:      "Count of attempts to fetch the latest block height.",
	}, []string{"network", "status"})

	heraldBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "service",
		Name:      "blocks_total",
		Help:      "Count of processed blocks.",
	}, []string{"network", "status"})

	heraldBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "service",
		Name:      "block_duration_seconds",
		Help:      "Duration of fetching, classifying and reporting a single block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	heraldBlockTxs = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "service",
		Name:      "block_transactions",
		Help:      "Number of transactions per processed block.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14), // 1..8192
	}, []string{"network"})
)

// Herald records metrics of the block processing loop.
type Herald struct {
	network model.Network
}

// NewHerald constructs a metrics collector for the processing loop.
func NewHerald(network model.Network) *Herald {
	if network == "" {
		network = "unknown"
	}
	return &Herald{network: network}
}

func (m Herald) ObserveFetchLatest(err error) {
	heraldFetchLatestTotal.WithLabelValues(string(m.network), status(err)).Inc()
}

func (m Herald) ObserveBlock(err error, txs int, started time.Time) {
	s := status(err)
	heraldBlocksTotal.WithLabelValues(string(m.network), s).Inc()
	heraldBlockDuration.WithLabelValues(string(m.network), s).Observe(time.Since(started).Seconds())
	if err == nil {
		heraldBlockTxs.WithLabelValues(string(m.network)).Observe(float64(txs))
	}
}
