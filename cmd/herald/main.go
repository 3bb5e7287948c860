package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/archive"
	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/classify"
	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/model"
	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/node"
	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/protocol"
	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/report"
	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/script"
	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/service"
	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/sink"
	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/metrics"
	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/pkg/batcher"
	"github.com/btcsuite/btcd/rpcclient"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type config struct {
	Source        string        `long:"source" env:"HERALD_SOURCE" description:"block source" choice:"archive" choice:"node" default:"node"`
	ArchiveDir    string        `long:"archive-dir" env:"HERALD_ARCHIVE_DIR" description:"directory of <height>.json block files"`
	RPCHost       string        `long:"rpc-host" env:"HERALD_RPC_HOST" description:"node RPC host:port" default:"127.0.0.1:8332"`
	RPCUser       string        `long:"rpc-user" env:"HERALD_RPC_USER" description:"node RPC username"`
	RPCPass       string        `long:"rpc-pass" env:"HERALD_RPC_PASS" description:"node RPC password"`
	RPCDisableTLS bool          `long:"rpc-disable-tls" env:"HERALD_RPC_DISABLE_TLS" description:"use plain http for node RPC"`
	Network       model.Network `long:"network" env:"HERALD_NETWORK" description:"network name" choice:"mainnet" choice:"testnet" choice:"regtest" default:"mainnet"`
	StartHeight   uint64        `long:"start-height" env:"HERALD_START_HEIGHT" description:"first block height to report" required:"true"`
	PollInterval  time.Duration `long:"poll-interval" env:"HERALD_POLL_INTERVAL" description:"tip polling interval" default:"10s"`
	ZMQAddr       string        `long:"zmq-addr" env:"HERALD_ZMQ_ADDR" description:"node zmq hashblock endpoint, wakes the poller early"`
	Workers       int           `long:"workers" env:"HERALD_WORKERS" description:"parallel classification and RPC workers" default:"8"`
	DustThreshold uint64        `long:"dust-threshold" env:"HERALD_DUST_THRESHOLD" description:"smallest listed transfer in satoshis" default:"55000"`
	MaxTransfers  int           `long:"max-transfers" env:"HERALD_MAX_TRANSFERS" description:"transfers listed per block, 0 for all" default:"10"`
	MinersFile    string        `long:"miners-file" env:"HERALD_MINERS_FILE" description:"JSON known-miner table"`
	Output        string        `long:"output" env:"HERALD_OUTPUT" description:"report file, - for stdout" default:"-"`
	FlushSize     int           `long:"flush-size" env:"HERALD_FLUSH_SIZE" description:"reports per write" default:"1"`
	FlushInterval time.Duration `long:"flush-interval" env:"HERALD_FLUSH_INTERVAL" description:"max report buffering time" default:"1s"`
	FlushRPS      int           `long:"flush-rps" env:"HERALD_FLUSH_RPS" description:"max writes per second" default:"10"`
	MetricsAddr   string        `long:"metrics-addr" env:"HERALD_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	LogJSON       bool          `long:"log-json" env:"HERALD_LOG_JSON" description:"production JSON logging"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.LogJSON)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if cfg.Source == "archive" && cfg.ArchiveDir == "" {
		logger.Fatal("archive dir is required for the archive source")
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("herald failed", zap.Error(err))
	}
}

func newLogger(json bool) (*zap.Logger, error) {
	if json {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	addresses, err := script.NewAddressEncoder(cfg.Network)
	if err != nil {
		return fmt.Errorf("init address encoder: %w", err)
	}

	var miners *report.KnownMiners
	if cfg.MinersFile != "" {
		if miners, err = report.LoadKnownMiners(cfg.MinersFile); err != nil {
			return err
		}
	}

	source, closeSource, err := newBlockSource(cfg, logger)
	if err != nil {
		return err
	}
	defer closeSource()

	out, closeOut, err := openOutput(cfg.Output)
	if err != nil {
		return err
	}
	defer closeOut()

	reports, err := batcher.New(
		logger.Named("reportBatcher"),
		service.Publisher(sink.NewJSONLines(out), logger),
		batcher.Config{FlushSize: cfg.FlushSize, FlushInterval: cfg.FlushInterval, RPS: cfg.FlushRPS},
	)
	if err != nil {
		return fmt.Errorf("init report batcher: %w", err)
	}

	classifier := classify.NewClassifier(protocol.NewDecoder(addresses), metrics.NewClassifier(), cfg.Workers)
	svc, err := service.NewHerald(
		source,
		classifier,
		reports,
		metrics.NewHerald(cfg.Network),
		report.Options{
			DustThreshold: cfg.DustThreshold,
			MaxTransfers:  cfg.MaxTransfers,
			Miners:        miners,
			Addresses:     addresses,
		},
		cfg.StartHeight,
		cfg.PollInterval,
		logger,
	)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	if cfg.Source == "node" {
		announced, err := startBlockSignal(ctx, cfg.ZMQAddr, logger)
		if err != nil {
			return err
		}
		if announced != nil {
			svc.SetBlockSignal(announced)
		}
	}
	g.Go(func() error {
		return serveMetrics(ctx, cfg.MetricsAddr, logger)
	})
	g.Go(func() error {
		return svc.Run(ctx)
	})
	return g.Wait()
}

func newBlockSource(cfg config, logger *zap.Logger) (service.BlockSource, func(), error) {
	if cfg.Source == "archive" {
		return archive.NewSource(cfg.ArchiveDir, logger), func() {}, nil
	}

	client, err := rpcclient.New(&rpcclient.ConnConfig{
		Host:         cfg.RPCHost,
		User:         cfg.RPCUser,
		Pass:         cfg.RPCPass,
		HTTPPostMode: true,
		DisableTLS:   cfg.RPCDisableTLS,
	}, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("init node rpc client: %w", err)
	}
	closeFn := func() {
		client.Shutdown()
		client.WaitForShutdown()
	}
	rpc := node.NewObservedClient(client, metrics.NewRPCClient(cfg.Network))
	return node.NewSource(rpc, cfg.Workers, logger), closeFn, nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open output %s: %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}

func serveMetrics(ctx context.Context, addr string, logger *zap.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()

	logger.Info("starting metrics server", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server: %w", err)
	}
	return nil
}
