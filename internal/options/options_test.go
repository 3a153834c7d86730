package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	size  int
	name  string
	calls []string
}

func withSize(n int) Option[*testConfig] {
	return func(c *testConfig) error {
		if n <= 0 {
			return errors.New("size must be positive")
		}
		c.size = n
		c.calls = append(c.calls, "size")

		return nil
	}
}

func withName(name string) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.name = name
		c.calls = append(c.calls, "name")
	})
}

func TestApply(t *testing.T) {
	cfg := &testConfig{}

	err := Apply(cfg, withSize(16), withName("block"))
	require.NoError(t, err)
	require.Equal(t, 16, cfg.size)
	require.Equal(t, "block", cfg.name)
	require.Equal(t, []string{"size", "name"}, cfg.calls)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	cfg := &testConfig{}

	err := Apply(cfg, withName("a"), withSize(0), withName("b"))
	require.EqualError(t, err, "size must be positive")
	require.Equal(t, "a", cfg.name)
	require.Equal(t, []string{"name"}, cfg.calls)
}

func TestApply_SkipsNil(t *testing.T) {
	cfg := &testConfig{}

	require.NoError(t, Apply[*testConfig](cfg, nil, withSize(1)))
	require.Equal(t, 1, cfg.size)
	require.NoError(t, Apply[*testConfig](cfg))
}
