package service

import (
	"context"
	"time"

	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	BlockSource interface {
		LatestHeight(ctx context.Context) (uint64, error)
		FetchBlock(ctx context.Context, height uint64) (*model.BlockTxs, error)
	}
	Classifier interface {
		ClassifyBlock(ctx context.Context, block *model.BlockTxs) ([]model.TxClassification, error)
	}
	ReportBatcher interface {
		Start(ctx context.Context)
		Stop()
		Add(ctx context.Context, report model.BlockReport) error
	}
	ReportSink interface {
		Publish(ctx context.Context, reports []model.BlockReport) error
	}
	HeraldMetrics interface {
		ObserveFetchLatest(err error)
		ObserveBlock(err error, txs int, started time.Time)
	}
)
