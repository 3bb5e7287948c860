// Package archive reads indexer-shaped block documents from a directory.
package archive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/model"
	"go.uber.org/zap"
)

const ext = ".json"

var (
	ErrEmpty    = errors.New("archive has no blocks")
	ErrNotFound = errors.New("block not archived")
)

// Source serves blocks stored as <dir>/<height>.json documents of the form
// {"block": {...}, "txs": [...]}.
type Source struct {
	dir    string
	logger *zap.Logger
}

// NewSource creates a source over dir.
func NewSource(dir string, logger *zap.Logger) *Source {
	return &Source{dir: dir, logger: logger.Named("archiveSource")}
}

// LatestHeight returns the highest archived height.
func (s *Source) LatestHeight(_ context.Context) (uint64, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("read archive dir: %w", err)
	}
	var (
		latest uint64
		found  bool
	)
	for _, entry := range entries {
		height, ok := parseName(entry)
		if !ok {
			continue
		}
		if !found || height > latest {
			latest, found = height, true
		}
	}
	if !found {
		return 0, fmt.Errorf("%w: %s", ErrEmpty, s.dir)
	}
	return latest, nil
}

func parseName(entry fs.DirEntry) (uint64, bool) {
	if entry.IsDir() {
		return 0, false
	}
	name, ok := strings.CutSuffix(entry.Name(), ext)
	if !ok {
		return 0, false
	}
	height, err := strconv.ParseUint(name, 10, 64)
	if err != nil {
		return 0, false
	}
	return height, true
}

// FetchBlock decodes the document archived for height.
func (s *Source) FetchBlock(ctx context.Context, height uint64) (*model.BlockTxs, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := filepath.Join(s.dir, strconv.FormatUint(height, 10)+ext)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: height %d", ErrNotFound, height)
	}
	if err != nil {
		return nil, fmt.Errorf("open block %d: %w", height, err)
	}
	defer f.Close()

	var block model.BlockTxs
	if err := json.NewDecoder(f).Decode(&block); err != nil {
		return nil, fmt.Errorf("decode block %d: %w", height, err)
	}
	if block.Block.Height != height {
		return nil, fmt.Errorf("decode block %d: document holds height %d", height, block.Block.Height)
	}
	s.logger.Debug("block loaded", zap.Uint64("height", height), zap.Int("txs", len(block.Txs)))
	return &block, nil
}
