package reactive_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whitefusionhq/signalize/reactive"
)

// an effect runs once immediately on creation
func TestEffectRunsImmediately(t *testing.T) {
	ctx := reactive.NewContext(nil)
	a := reactive.NewSignal(ctx, 1)
	runs := 0
	dispose, err := reactive.NewEffect(ctx, func() (reactive.Cleanup, error) {
		a.Value()
		runs++
		return nil, nil
	})
	require.NoError(t, err)
	defer dispose()

	assert.Equal(t, 1, runs)
}

// a batch coalesces multiple writes into a single effect run
func TestBatchCoalescesEffectRuns(t *testing.T) {
	ctx := reactive.NewContext(nil)
	a := reactive.NewSignal(ctx, "a")
	b := reactive.NewSignal(ctx, "b")
	spy := 0
	dispose, err := reactive.NewEffect(ctx, func() (reactive.Cleanup, error) {
		spy++
		a.Value()
		b.Value()
		return nil, nil
	})
	require.NoError(t, err)
	defer dispose()

	assert.Equal(t, 1, spy)

	err = ctx.Batch(func() error {
		if err := a.SetValue("A"); err != nil {
			return err
		}
		return b.SetValue("B")
	})
	require.NoError(t, err)
	assert.Equal(t, 2, spy)
}

// batch returns the closure's result; a nested batch flushes only
// when the outermost batch exits
func TestBatchReturnsResultAndNestsWithoutEarlyFlush(t *testing.T) {
	ctx := reactive.NewContext(nil)
	a := reactive.NewSignal(ctx, 0)
	spy := 0
	dispose, err := reactive.NewEffect(ctx, func() (reactive.Cleanup, error) {
		a.Value()
		spy++
		return nil, nil
	})
	require.NoError(t, err)
	defer dispose()

	result := ctx.Batch(func() error {
		return ctx.Batch(func() error {
			require.NoError(t, a.SetValue(1))
			assert.Equal(t, 1, spy, "inner batch exit must not flush yet")
			return nil
		})
	})
	require.NoError(t, result)
	assert.Equal(t, 2, spy)
}

// disposing an effect twice is a no-op
func TestEffectDisposeTwiceIsNoOp(t *testing.T) {
	ctx := reactive.NewContext(nil)
	a := reactive.NewSignal(ctx, 1)
	runs := 0
	dispose, err := reactive.NewEffect(ctx, func() (reactive.Cleanup, error) {
		a.Value()
		runs++
		return nil, nil
	})
	require.NoError(t, err)

	dispose()
	dispose()
	require.NoError(t, a.SetValue(2))
	assert.Equal(t, 1, runs)
}

// disposing an effect stops subsequent invocations on writes to
// cells it read
func TestEffectDisposeStopsFutureRuns(t *testing.T) {
	ctx := reactive.NewContext(nil)
	a := reactive.NewSignal(ctx, 1)
	runs := 0
	dispose, err := reactive.NewEffect(ctx, func() (reactive.Cleanup, error) {
		a.Value()
		runs++
		return nil, nil
	})
	require.NoError(t, err)

	require.NoError(t, a.SetValue(2))
	assert.Equal(t, 2, runs)

	dispose()
	require.NoError(t, a.SetValue(3))
	assert.Equal(t, 2, runs)
}

// an untracked read inside an effect does not create a subscription
func TestUntrackedReadInsideEffectDoesNotSubscribe(t *testing.T) {
	ctx := reactive.NewContext(nil)
	a := reactive.NewSignal(ctx, 1)
	runs := 0
	dispose, err := reactive.NewEffect(ctx, func() (reactive.Cleanup, error) {
		runs++
		return nil, ctx.Untracked(func() error {
			a.Value()
			return nil
		})
	})
	require.NoError(t, err)
	defer dispose()

	assert.Equal(t, 1, runs)
	require.NoError(t, a.SetValue(2))
	assert.Equal(t, 1, runs)
}

// an effect's stored cleanup runs before its next invocation and on
// dispose
func TestEffectCleanupRunsBeforeRerunAndOnDispose(t *testing.T) {
	ctx := reactive.NewContext(nil)
	a := reactive.NewSignal(ctx, 1)
	cleanups := 0
	dispose, err := reactive.NewEffect(ctx, func() (reactive.Cleanup, error) {
		a.Value()
		return func() { cleanups++ }, nil
	})
	require.NoError(t, err)

	assert.Equal(t, 0, cleanups)
	require.NoError(t, a.SetValue(2))
	assert.Equal(t, 1, cleanups)

	dispose()
	assert.Equal(t, 2, cleanups)
}

// an error raised inside an effect during a batch drain is captured,
// the drain continues, and the first such error is re-raised at the
// end of the batch
func TestEffectErrorDuringDrainSurfacesFromBatch(t *testing.T) {
	ctx := reactive.NewContext(nil)
	a := reactive.NewSignal(ctx, 0)
	boom := errors.New("boom")
	secondRan := false

	disposeFirst, err := reactive.NewEffect(ctx, func() (reactive.Cleanup, error) {
		if a.Value() == 1 {
			return nil, boom
		}
		return nil, nil
	})
	require.NoError(t, err)
	defer disposeFirst()

	disposeSecond, err := reactive.NewEffect(ctx, func() (reactive.Cleanup, error) {
		a.Value()
		secondRan = true
		return nil, nil
	})
	require.NoError(t, err)
	defer disposeSecond()

	secondRan = false
	err = a.SetValue(1)
	assert.True(t, secondRan, "remaining effects must run despite an earlier error")
	assert.ErrorIs(t, err, boom)
}
