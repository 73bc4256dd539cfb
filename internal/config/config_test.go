package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad_Defaults(t *testing.T) {
	// Given: no config file, nothing in the environment
	t.Setenv("HEXPAWN_ARBITER_URL", "")
	t.Setenv("NIM_ARBITER_URL", "")

	// When: loading from a path that does not exist
	conf := MustLoad("does-not-exist.yml")

	// Then: each arbiter gets its own default port
	require.NotEqual(t, conf.Hexpawn.BaseURL, conf.Nim.BaseURL)
	assert.Equal(t, "http://localhost:5001", conf.Hexpawn.BaseURL)
	assert.Equal(t, "http://localhost:5002", conf.Nim.BaseURL)

	// Then: the remaining defaults apply
	assert.Equal(t, "info", conf.LogLevel)
	assert.Equal(t, 10*time.Second, conf.HTTPTimeoutDuration())
}

func TestMustLoad_EnvOverride(t *testing.T) {
	// Given: the environment points the hexpawn arbiter elsewhere
	t.Setenv("HEXPAWN_ARBITER_URL", "http://hans.example:8080")
	t.Setenv("NIM_ARBITER_URL", "")

	// When: loading without a config file
	conf := MustLoad("does-not-exist.yml")

	// Then: the override wins, the other arbiter keeps its default
	assert.Equal(t, "http://hans.example:8080", conf.Hexpawn.BaseURL)
	assert.Equal(t, "http://localhost:5002", conf.Nim.BaseURL)
}
