package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// internCacheConfig mirrors the shape intern.Config actually configures,
// so these tests exercise the pattern the way its one real caller does.
type internCacheConfig struct {
	capacity   int
	caseFolded bool
	lastCall   string
}

func (c *internCacheConfig) setCapacity(n int) error {
	if n <= 0 {
		return errors.New("capacity must be positive")
	}

	c.capacity = n
	c.lastCall = "setCapacity"

	return nil
}

func (c *internCacheConfig) setCaseFolded(v bool) {
	c.caseFolded = v
	c.lastCall = "setCaseFolded"
}

func TestOptionNewPropagatesError(t *testing.T) {
	cfg := &internCacheConfig{}

	t.Run("valid capacity applies", func(t *testing.T) {
		opt := New(func(c *internCacheConfig) error { return c.setCapacity(1024) })

		require.NoError(t, opt.apply(cfg))
		require.Equal(t, 1024, cfg.capacity)
		require.Equal(t, "setCapacity", cfg.lastCall)
	})

	t.Run("invalid capacity is rejected", func(t *testing.T) {
		opt := New(func(c *internCacheConfig) error { return c.setCapacity(0) })

		err := opt.apply(cfg)
		require.Error(t, err)
		require.Contains(t, err.Error(), "capacity must be positive")
	})
}

func TestOptionNoError(t *testing.T) {
	cfg := &internCacheConfig{}

	opt := NoError(func(c *internCacheConfig) { c.setCaseFolded(true) })

	require.NoError(t, opt.apply(cfg))
	require.True(t, cfg.caseFolded)
	require.Equal(t, "setCaseFolded", cfg.lastCall)
}

func TestApplyRunsInOrderAndStopsAtFirstError(t *testing.T) {
	cfg := &internCacheConfig{}

	opts := []Option[*internCacheConfig]{
		New(func(c *internCacheConfig) error { return c.setCapacity(512) }),
		NoError(func(c *internCacheConfig) { c.setCaseFolded(true) }),
	}

	require.NoError(t, Apply(cfg, opts...))
	require.Equal(t, 512, cfg.capacity)
	require.True(t, cfg.caseFolded)
	require.Equal(t, "setCaseFolded", cfg.lastCall)

	failing := &internCacheConfig{}
	opts = []Option[*internCacheConfig]{
		New(func(c *internCacheConfig) error { return c.setCapacity(64) }),
		New(func(c *internCacheConfig) error { return c.setCapacity(-1) }),
		NoError(func(c *internCacheConfig) { c.setCaseFolded(true) }),
	}

	err := Apply(failing, opts...)
	require.Error(t, err)
	require.Equal(t, 64, failing.capacity, "the first option should still have applied")
	require.False(t, failing.caseFolded, "options after the error must not run")
}

func TestApplyWithNoOptionsLeavesTargetUnchanged(t *testing.T) {
	cfg := &internCacheConfig{}
	require.NoError(t, Apply(cfg))
	require.Zero(t, cfg.capacity)
	require.False(t, cfg.caseFolded)
}

func TestWithHelperStyleConstructors(t *testing.T) {
	withCapacity := func(n int) Option[*internCacheConfig] {
		return New(func(c *internCacheConfig) error { return c.setCapacity(n) })
	}
	withCaseFolded := func(v bool) Option[*internCacheConfig] {
		return NoError(func(c *internCacheConfig) { c.setCaseFolded(v) })
	}

	cfg := &internCacheConfig{}
	require.NoError(t, Apply(cfg, withCapacity(2048), withCaseFolded(true)))
	require.Equal(t, 2048, cfg.capacity)
	require.True(t, cfg.caseFolded)
}

// A second configurable type confirms Option stays generic across the
// module's internals rather than being accidentally specialized to
// internCacheConfig's fields.
type retryBudget struct {
	attempts int
}

func TestOptionGenericsAcrossDistinctTargets(t *testing.T) {
	rb := &retryBudget{}
	opt := NoError(func(r *retryBudget) { r.attempts = 3 })

	require.NoError(t, opt.apply(rb))
	require.Equal(t, 3, rb.attempts)
}
