// Package service runs the block processing loop: fetch, classify, report, deliver.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/clock"
	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/model"
	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/report"
	"go.uber.org/zap"
)

const (
	defaultPollInterval = 10 * time.Second
	maxBackoff          = 5 * time.Minute
)

// Herald follows the chain tip and emits one report per block, in height order.
type Herald struct {
	logger       *zap.Logger
	source       BlockSource
	classifier   Classifier
	batcher      ReportBatcher
	metrics      HeraldMetrics
	opts         report.Options
	sleep        func(context.Context, time.Duration) error
	pollInterval time.Duration
	next         uint64
	failures     int
	blockSignal  <-chan struct{}
}

// NewHerald builds a Herald that starts at startHeight.
func NewHerald(
	source BlockSource,
	classifier Classifier,
	batcher ReportBatcher,
	metrics HeraldMetrics,
	opts report.Options,
	startHeight uint64,
	pollInterval time.Duration,
	logger *zap.Logger,
) (*Herald, error) {
	if metrics == nil {
		return nil, errors.New("herald metrics is required")
	}
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	return &Herald{
		logger:       logger.Named("herald"),
		source:       source,
		classifier:   classifier,
		batcher:      batcher,
		metrics:      metrics,
		opts:         opts,
		sleep:        clock.SleepWithContext,
		pollInterval: pollInterval,
		next:         startHeight,
	}, nil
}

// Run processes blocks until the context is canceled.
func (h *Herald) Run(ctx context.Context) error {
	h.batcher.Start(ctx)
	defer h.batcher.Stop()

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := h.run(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			h.failures++
			wait := clock.Backoff(h.pollInterval, maxBackoff, h.failures)
			h.logger.Warn("run iteration failed, backing off",
				zap.Error(err),
				zap.Uint64("height", h.next),
				zap.Int("failures", h.failures),
				zap.Duration("sleep", wait),
			)
			if sleepErr := h.sleep(ctx, wait); sleepErr != nil {
				return sleepErr
			}
			continue
		}
		h.failures = 0
	}
}

func (h *Herald) run(ctx context.Context) error {
	latest, err := h.source.LatestHeight(ctx)
	h.metrics.ObserveFetchLatest(err)
	if err != nil {
		return fmt.Errorf("fetch latest height: %w", err)
	}

	if h.next > latest {
		h.logger.Debug("no new blocks; sleeping", zap.Uint64("latest", latest), zap.Duration("sleep", h.pollInterval))
		return h.waitForBlock(ctx)
	}

	for h.next <= latest {
		err := h.ProcessHeight(ctx, h.next)
		switch {
		case err == nil:
		case errors.Is(err, model.ErrInvalidBlock), errors.Is(err, model.ErrInvalidTransaction):
			h.logger.Error("skipping invalid block", zap.Uint64("height", h.next), zap.Error(err))
		default:
			return err
		}
		h.next++
	}
	return nil
}

// ProcessHeight fetches, classifies and reports the block at height.
func (h *Herald) ProcessHeight(ctx context.Context, height uint64) (err error) {
	started := time.Now()
	var txs int
	defer func() {
		h.metrics.ObserveBlock(err, txs, started)
	}()

	block, err := h.source.FetchBlock(ctx, height)
	if err != nil {
		return fmt.Errorf("fetch block %d: %w", height, err)
	}
	txs = len(block.Txs)

	classifications, err := h.classifier.ClassifyBlock(ctx, block)
	if err != nil {
		return fmt.Errorf("classify block %d: %w", height, err)
	}

	r, err := report.Build(block, classifications, h.opts)
	if err != nil {
		return fmt.Errorf("build report %d: %w", height, err)
	}

	if err := h.batcher.Add(ctx, r); err != nil {
		return fmt.Errorf("queue report %d: %w", height, err)
	}
	h.logger.Info("block reported",
		zap.Uint64("height", height),
		zap.Int("txs", txs),
		zap.Int("appTxs", len(r.AppTxs)),
		zap.Int("transfers", len(r.Transfers)),
	)
	return nil
}

// SetBlockSignal makes the herald poll the tip as soon as signal fires
// instead of waiting out the poll interval.
func (h *Herald) SetBlockSignal(signal <-chan struct{}) {
	h.blockSignal = signal
}

func (h *Herald) waitForBlock(ctx context.Context) error {
	if h.blockSignal == nil {
		return h.sleep(ctx, h.pollInterval)
	}

	waitCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-h.blockSignal:
			cancel()
		case <-waitCtx.Done():
		}
	}()

	if err := h.sleep(waitCtx, h.pollInterval); err != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	return nil
}

// Next returns the height the herald will process next.
func (h *Herald) Next() uint64 {
	return h.next
}

// Publisher adapts a ReportSink to the batcher flush callback.
func Publisher(sink ReportSink, logger *zap.Logger) func(context.Context, []model.BlockReport) error {
	return func(ctx context.Context, reports []model.BlockReport) error {
		if err := sink.Publish(ctx, reports); err != nil {
			return fmt.Errorf("publish %d reports: %w", len(reports), err)
		}
		logger.Debug("reports published", zap.Int("count", len(reports)))
		return nil
	}
}
