// Package sink delivers block reports.
package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/Bitcoin-ABC/bitcoin-abc-sub005/internal/herald/model"
)

// JSONLines writes one JSON report per line.
type JSONLines struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// NewJSONLines creates a sink writing to w.
func NewJSONLines(w io.Writer) *JSONLines {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSONLines{enc: enc}
}

// Publish writes reports in order. It stops at the first write error.
func (s *JSONLines) Publish(ctx context.Context, reports []model.BlockReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range reports {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.enc.Encode(&reports[i]); err != nil {
			return fmt.Errorf("write report for block %d: %w", reports[i].Height, err)
		}
	}
	return nil
}
