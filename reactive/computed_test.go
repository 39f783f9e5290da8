package reactive_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whitefusionhq/signalize/reactive"
)

// a computed recomputes lazily when its source changes
func TestComputedBasicUsage(t *testing.T) {
	ctx := reactive.NewContext(nil)
	n := reactive.NewSignal(ctx, 0)
	c := reactive.NewComputed(ctx, func(old int) (int, error) {
		return n.Value() + 1, nil
	})

	v, err := c.Value()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	require.NoError(t, n.SetValue(5))
	v, err = c.Value()
	require.NoError(t, err)
	assert.Equal(t, 6, v)
}

// a diamond dependency recomputes its join point exactly once per write
func TestComputedDiamondRunsOnce(t *testing.T) {
	ctx := reactive.NewContext(nil)
	a := reactive.NewSignal(ctx, "a")
	b := reactive.NewComputed(ctx, func(old string) (string, error) {
		return a.Value(), nil
	})
	c := reactive.NewComputed(ctx, func(old string) (string, error) {
		return a.Value(), nil
	})
	spy := 0
	d := reactive.NewComputed(ctx, func(old string) (string, error) {
		spy++
		bv, err := b.Value()
		if err != nil {
			return old, err
		}
		cv, err := c.Value()
		if err != nil {
			return old, err
		}
		return bv + " " + cv, nil
	})

	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "a a", v)
	assert.Equal(t, 1, spy)

	require.NoError(t, a.SetValue("aa"))
	v, err = d.Value()
	require.NoError(t, err)
	assert.Equal(t, "aa aa", v)
	assert.Equal(t, 2, spy)
}

// a computed bails out of recomputing its subscribers when its own
// value is unchanged, even though one of its sources changed
func TestComputedBailsOutWhenValueUnchanged(t *testing.T) {
	ctx := reactive.NewContext(nil)
	a := reactive.NewSignal(ctx, "a")
	b := reactive.NewComputed(ctx, func(old string) (string, error) {
		a.Value()
		return "foo", nil
	})
	cRuns := 0
	c := reactive.NewComputed(ctx, func(old string) (string, error) {
		cRuns++
		return b.Value()
	})

	v, err := c.Value()
	require.NoError(t, err)
	assert.Equal(t, "foo", v)

	require.NoError(t, a.SetValue("aa"))
	v, err = c.Value()
	require.NoError(t, err)
	assert.Equal(t, "foo", v)
	assert.Equal(t, 1, cRuns)
}

// a computed with no subscribers does not activate its own
// subscriptions; an effect reading it activates it
func TestComputedLazySubscription(t *testing.T) {
	ctx := reactive.NewContext(nil)
	a := reactive.NewSignal(ctx, 0)
	runs := 0
	b := reactive.NewComputed(ctx, func(old int) (int, error) {
		runs++
		return a.Value(), nil
	})

	require.NoError(t, a.SetValue(1))
	require.NoError(t, a.SetValue(2))
	assert.Equal(t, 0, runs, "unsubscribed computed must not recompute eagerly")

	dispose, err := reactive.NewEffect(ctx, func() (reactive.Cleanup, error) {
		_, err := b.Value()
		return nil, err
	})
	require.NoError(t, err)
	defer dispose()

	assert.Equal(t, 1, runs)
	require.NoError(t, a.SetValue(3))
	assert.Equal(t, 2, runs)
}

// a computed that reads itself through peek raises CycleDetected
func TestComputedSelfCycleDetected(t *testing.T) {
	ctx := reactive.NewContext(nil)
	var c *reactive.Computed[int]
	c = reactive.NewComputed(ctx, func(old int) (int, error) {
		return c.Peek()
	})

	_, err := c.Peek()
	assert.ErrorIs(t, err, reactive.ErrCycleDetected)
}

// a mutual cycle across four computeds raises CycleDetected
func TestComputedMutualCycleDetected(t *testing.T) {
	ctx := reactive.NewContext(nil)
	var c1, c2, c3, c4 *reactive.Computed[int]
	c1 = reactive.NewComputed(ctx, func(old int) (int, error) { return c4.Peek() })
	c2 = reactive.NewComputed(ctx, func(old int) (int, error) { return c1.Peek() })
	c3 = reactive.NewComputed(ctx, func(old int) (int, error) { return c2.Peek() })
	c4 = reactive.NewComputed(ctx, func(old int) (int, error) { return c3.Peek() })

	_, err := c1.Peek()
	assert.ErrorIs(t, err, reactive.ErrCycleDetected)
}

// an error raised inside a computed is captured and re-raised until
// the next successful recompute
func TestComputedErrorCapturedUntilRecompute(t *testing.T) {
	ctx := reactive.NewContext(nil)
	a := reactive.NewSignal(ctx, 0)
	boom := errors.New("boom")
	b := reactive.NewComputed(ctx, func(old int) (int, error) {
		v := a.Value()
		if v == 1 {
			return old, boom
		}
		return v, nil
	})
	c := reactive.NewComputed(ctx, func(old string) (string, error) {
		v, err := b.Value()
		if err != nil {
			return "ok", nil
		}
		return fmt.Sprint(v), nil
	})

	v, err := c.Value()
	require.NoError(t, err)
	assert.Equal(t, "0", v)

	require.NoError(t, a.SetValue(1))
	v, err = c.Value()
	require.NoError(t, err)
	assert.Equal(t, "ok", v)

	require.NoError(t, a.SetValue(2))
	v, err = c.Value()
	require.NoError(t, err)
	assert.Equal(t, "2", v)
}

// peek and value agree whenever value would not raise, and neither
// leaves the dependency graph in a different state than the other
func TestComputedPeekMatchesValue(t *testing.T) {
	ctx := reactive.NewContext(nil)
	a := reactive.NewSignal(ctx, 7)
	c := reactive.NewComputed(ctx, func(old int) (int, error) {
		return a.Value() * 2, nil
	})

	peeked, err := c.Peek()
	require.NoError(t, err)
	read, err := c.Value()
	require.NoError(t, err)
	assert.Equal(t, peeked, read)
}

// reading a computed twice without an intervening write invokes its
// closure at most once
func TestComputedCachesBetweenReads(t *testing.T) {
	ctx := reactive.NewContext(nil)
	a := reactive.NewSignal(ctx, 1)
	runs := 0
	c := reactive.NewComputed(ctx, func(old int) (int, error) {
		runs++
		return a.Value(), nil
	})

	_, _ = c.Value()
	_, _ = c.Value()
	assert.Equal(t, 1, runs)
}
