package workerpool

import (
	"context"
	"errors"
	"reflect"
	"sync/atomic"
	"testing"
	"time"
)

func TestMap(t *testing.T) {
	errBoom := errors.New("boom")
	canceled := func() context.Context {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		return ctx
	}

	tests := []struct {
		name        string
		ctx         context.Context
		workerCount int
		items       []int
		fail        int
		want        []int
		wantErr     error
	}{
		{
			name:        "results keep item order",
			ctx:         context.Background(),
			workerCount: 3,
			items:       []int{5, 1, 4, 2, 3},
			want:        []int{50, 10, 40, 20, 30},
		},
		{
			name:        "more workers than items",
			ctx:         context.Background(),
			workerCount: 16,
			items:       []int{1, 2},
			want:        []int{10, 20},
		},
		{
			name:        "zero workers still runs",
			ctx:         context.Background(),
			workerCount: 0,
			items:       []int{7},
			want:        []int{70},
		},
		{
			name:        "empty input",
			ctx:         context.Background(),
			workerCount: 2,
			items:       nil,
			want:        []int{},
		},
		{
			name:        "first error is returned",
			ctx:         context.Background(),
			workerCount: 2,
			items:       []int{1, 2, 3, 4},
			fail:        2,
			wantErr:     errBoom,
		},
		{
			name:        "canceled context",
			ctx:         canceled(),
			workerCount: 2,
			items:       []int{1, 2},
			wantErr:     context.Canceled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Map(tt.ctx, tt.workerCount, tt.items, func(_ context.Context, v int) (int, error) {
				if v == tt.fail {
					return 0, errBoom
				}
				time.Sleep(time.Duration(v) * time.Millisecond)
				return v * 10, nil
			})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Map() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Map() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Map() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMap_StopsAfterError(t *testing.T) {
	var calls int32
	items := make([]int, 100)
	_, err := Map(context.Background(), 1, items, func(ctx context.Context, _ int) (int, error) {
		if atomic.AddInt32(&calls, 1) == 3 {
			return 0, errors.New("stop")
		}
		return 0, nil
	})
	if err == nil {
		t.Fatal("Map() expected error")
	}
	if n := atomic.LoadInt32(&calls); n != 3 {
		t.Errorf("Map() ran %d items after the error, want 3 calls", n)
	}
}
