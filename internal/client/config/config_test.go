package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Empty(t, cmp.Diff(Config{DatabasePath: "forum.db", LogLevel: "info"}, c))
	assert.False(t, c.RemoteEnabled())
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    Config
		wantErr bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "127.0.0.1:9090", "-d", "/tmp/f.db", "-l", "debug"},
			want: Config{ServerEndpointAddr: "127.0.0.1:9090", DatabasePath: "/tmp/f.db", LogLevel: "debug"},
		},
		{
			name: "unknown flags ignored",
			args: []string{"-x", "1", "-a=host:1"},
			want: Config{ServerEndpointAddr: "host:1", DatabasePath: "forum.db", LogLevel: "info"},
		},
		{
			name:    "flag missing value",
			args:    []string{"-d"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			c.LoadDefaults()

			err := parseArgs(&c, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.want, c))
		})
	}
}

func TestLoadConfig_JsonThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server_endpoint_addr":"json:1","log_level":"warn"}`), 0o600))

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"client", "-c", path, "-a", "flag:2"}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "flag:2", cfg.ServerEndpointAddr)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "forum.db", cfg.DatabasePath)
	assert.True(t, cfg.RemoteEnabled())
}

func TestLoadConfig_BadJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(`{`), 0o600))

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"client", "-config", path}

	_, err := LoadConfig()
	assert.Error(t, err)
}
