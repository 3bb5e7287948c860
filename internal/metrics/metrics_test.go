package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func delta(t *testing.T, collector prometheus.Collector, observe func()) float64 {
	t.Helper()

	before := testutil.ToFloat64(collector)
	observe()
	after := testutil.ToFloat64(collector)
	return after - before
}

func TestClassifierRecords(t *testing.T) {
	m := NewClassifier()

	if inc := delta(t, classifierTransactionsTotal.WithLabelValues("SLP", "TOKEN_STATUS_NORMAL"), func() {
		m.ObserveTransaction(model.TagSLP, model.TokenStatusNormal)
	}); inc != 1 {
		t.Fatalf("expected slp transaction increment, got %v", inc)
	}

	if inc := delta(t, classifierTransactionsTotal.WithLabelValues("none", "TOKEN_STATUS_NON_TOKEN"), func() {
		m.ObserveTransaction("", model.TokenStatusNonToken)
	}); inc != 1 {
		t.Fatalf("expected unlabeled transaction increment, got %v", inc)
	}

	if inc := delta(t, classifierWarningsTotal.WithLabelValues("FeeComputationError"), func() {
		m.ObserveWarning(model.WarningFeeComputation)
	}); inc != 1 {
		t.Fatalf("expected warning increment, got %v", inc)
	}
}

func TestHeraldRecords(t *testing.T) {
	m := NewHerald(model.Testnet)
	start := time.Now().Add(-500 * time.Millisecond)

	if inc := delta(t, heraldFetchLatestTotal.WithLabelValues("testnet", "error"), func() {
		m.ObserveFetchLatest(errors.New("fail"))
	}); inc != 1 {
		t.Fatalf("expected fetch latest error increment, got %v", inc)
	}

	if inc := delta(t, heraldBlocksTotal.WithLabelValues("testnet", "success"), func() {
		m.ObserveBlock(nil, 12, start)
	}); inc != 1 {
		t.Fatalf("expected block success increment, got %v", inc)
	}

	if inc := delta(t, heraldBlocksTotal.WithLabelValues("testnet", "error"), func() {
		m.ObserveBlock(errors.New("boom"), 0, start)
	}); inc != 1 {
		t.Fatalf("expected block error increment, got %v", inc)
	}
}

func TestRPCClientRecords(t *testing.T) {
	m := NewRPCClient("")
	start := time.Now().Add(-200 * time.Millisecond)

	if inc := delta(t, rpcRequestsTotal.WithLabelValues("call", "unknown", "success"), func() {
		m.Observe("call", nil, start)
	}); inc != 1 {
		t.Fatalf("expected rpc call counter increment, got %v", inc)
	}

	if inc := delta(t, rpcRequestsTotal.WithLabelValues("call", "unknown", "error"), func() {
		m.Observe("call", errors.New("oops"), start)
	}); inc != 1 {
		t.Fatalf("expected rpc error counter increment, got %v", inc)
	}
}
