package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoad_Precedence(t *testing.T) {
	path := writeTempJSON(t, "cfg.json", map[string]any{
		"server_endpoint_addr": "json:9000",
		"session_file":         "/tmp/json-session.toml",
		"request_timeout":      "5s",
	})

	tests := []struct {
		name     string
		args     []string
		expected *Config
	}{
		{
			name:     "json only",
			args:     []string{"--config", path},
			expected: &Config{ServerEndpointAddr: "json:9000", SessionFile: "/tmp/json-session.toml", RequestTimeout: 5 * time.Second},
		},
		{
			name:     "flags beat json",
			args:     []string{"-c", path, "-a", "flag:7000", "--timeout", "1m"},
			expected: &Config{ServerEndpointAddr: "flag:7000", SessionFile: "/tmp/json-session.toml", RequestTimeout: time.Minute},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(newFlagSet(t, tt.args...))
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}

func TestLoad_DefaultsWithoutFlags(t *testing.T) {
	cfg, err := Load(newFlagSet(t))
	require.NoError(t, err)

	var d Config
	d.LoadDefaults()
	assert.Empty(t, cmp.Diff(&d, cfg))
}

func TestLoad_BadJSONPath(t *testing.T) {
	_, err := Load(newFlagSet(t, "--config", "/definitely/not/here.json"))
	require.Error(t, err)
}
