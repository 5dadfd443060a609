package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.True(t, cfg.Mount.Incremental)
	require.Equal(t, 3, cfg.Mount.PoolSize)
	require.InDelta(t, 0.5, cfg.Visibility.FocusedRatio, 1e-9)
	require.True(t, cfg.Visibility.Process)
	require.Empty(t, cfg.Validate())
}

func TestLoad_Defaults(t *testing.T) {
	v, err := New("")
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mount.yaml")
	data := []byte("mount:\n  incremental: false\n  pool_size: 8\nvisibility:\n  focused_ratio: 0.75\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	v, err := New(path)
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	require.False(t, cfg.Mount.Incremental)
	require.Equal(t, 8, cfg.Mount.PoolSize)
	require.InDelta(t, 0.75, cfg.Visibility.FocusedRatio, 1e-9)
	require.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("MOUNT_MOUNT_POOL_SIZE", "5")

	v, err := New("")
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Mount.PoolSize)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	type tc struct {
		mutate func(*Config)
		fields []string
	}

	tests := map[string]tc{
		"valid": {
			mutate: func(*Config) {},
		},
		"negative pool size": {
			mutate: func(c *Config) { c.Mount.PoolSize = -1 },
			fields: []string{"mount.pool_size"},
		},
		"zero focused ratio": {
			mutate: func(c *Config) { c.Visibility.FocusedRatio = 0 },
			fields: []string{"visibility.focused_ratio"},
		},
		"ratio above one and bad level": {
			mutate: func(c *Config) {
				c.Visibility.FocusedRatio = 1.5
				c.Logging.Level = "verbose"
			},
			fields: []string{"visibility.focused_ratio", "logging.level"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			var got []string
			for _, e := range cfg.Validate() {
				got = append(got, e.Field)
			}
			require.Equal(t, tt.fields, got)
		})
	}
}

func TestLoad_ValidationErrors(t *testing.T) {
	v, err := New("")
	require.NoError(t, err)
	v.Set("visibility.focused_ratio", 2.0)

	_, err = Load(v)
	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 1)
	require.Contains(t, verrs.Error(), "visibility.focused_ratio")
}
