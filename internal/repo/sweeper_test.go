package repo

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeDeleter struct {
	calls   atomic.Int64
	deleted int64
	err     error
}

func (f *fakeDeleter) DeleteExpiredOrders(ctx context.Context) (int64, error) {
	f.calls.Add(1)
	return f.deleted, f.err
}

func TestSweeper(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("sweeps on interval until cancelled", func(t *testing.T) {
		deleter := &fakeDeleter{deleted: 2}
		s := NewSweeper(logger, deleter, time.Millisecond*10)

		ctx, cancel := context.WithCancel(context.Background())
		assert.NoError(t, s.Start(ctx))

		time.Sleep(time.Millisecond * 55)
		cancel()
		time.Sleep(time.Millisecond * 15)

		calls := deleter.calls.Load()
		assert.GreaterOrEqual(t, calls, int64(2))

		// no more sweeps after cancellation
		time.Sleep(time.Millisecond * 30)
		assert.Equal(t, calls, deleter.calls.Load())
	})

	t.Run("delete failure does not stop the sweeper", func(t *testing.T) {
		deleter := &fakeDeleter{err: errors.New("db error")}
		s := NewSweeper(logger, deleter, time.Millisecond*10)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		assert.NoError(t, s.Start(ctx))

		time.Sleep(time.Millisecond * 35)
		assert.GreaterOrEqual(t, deleter.calls.Load(), int64(2))
	})
}
