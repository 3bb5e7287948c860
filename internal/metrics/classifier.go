// Package metrics exposes application metrics collectors.
package metrics

import (
	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "blockherald"

var (
	classifierTransactionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "classifier",
		Name:      "transactions_total",
		Help:      "Count of classified transactions by payload protocol and token status.",
	}, []string{"protocol", "status"})

	classifierWarningsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "classifier",
		Name:      "warnings_total",
		Help:      "Count of per-transaction classification warnings.",
	}, []string{"kind"})
)

// Classifier counts classification outcomes.
type Classifier struct{}

func NewClassifier() *Classifier {
	return &Classifier{}
}

// ObserveTransaction counts one classified transaction. Transactions without a
// data carrier are labeled "none".
func (Classifier) ObserveTransaction(protocol model.ProtocolTag, tokenStatus model.TokenStatus) {
	if protocol == "" {
		protocol = "none"
	}
	classifierTransactionsTotal.WithLabelValues(string(protocol), string(tokenStatus)).Inc()
}

func (Classifier) ObserveWarning(kind model.WarningKind) {
	classifierWarningsTotal.WithLabelValues(string(kind)).Inc()
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
