package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeGameParams(t *testing.T) {
	tests := []struct {
		name    string
		src     map[string][]string
		want    GameParams
		wantErr bool
	}{
		{
			name: "full",
			src: map[string][]string{
				"side_len":  {"8"},
				"num_mines": {"10"},
				"seed":      {"42"},
			},
			want: GameParams{SideLen: 8, NumMines: 10, Seed: 42},
		},
		{
			name: "seed optional",
			src: map[string][]string{
				"side_len":  {"16"},
				"num_mines": {"40"},
			},
			want: GameParams{SideLen: 16, NumMines: 40},
		},
		{
			name: "unknown keys ignored",
			src: map[string][]string{
				"side_len":   {"8"},
				"num_mines":  {"10"},
				"difficulty": {"beginner"},
			},
			want: GameParams{SideLen: 8, NumMines: 10},
		},
		{
			name:    "missing required",
			src:     map[string][]string{"side_len": {"8"}},
			wantErr: true,
		},
		{
			name: "not a number",
			src: map[string][]string{
				"side_len":  {"eight"},
				"num_mines": {"10"},
			},
			wantErr: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			params, err := DecodeGameParams(test.src)
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, params)
		})
	}
}

func TestParamsFromEnv(t *testing.T) {
	t.Run("unset", func(t *testing.T) {
		t.Setenv(OptsEnv, "") // register restore, then drop the variable
		os.Unsetenv(OptsEnv)
		_, ok, err := ParamsFromEnv()
		assert.False(t, ok)
		assert.NoError(t, err)
	})

	t.Run("set", func(t *testing.T) {
		t.Setenv(OptsEnv, "side_len=8&num_mines=10&seed=7")
		params, ok, err := ParamsFromEnv()
		require.True(t, ok)
		require.NoError(t, err)
		assert.Equal(t, GameParams{SideLen: 8, NumMines: 10, Seed: 7}, params)
	})

	t.Run("malformed", func(t *testing.T) {
		t.Setenv(OptsEnv, "side_len=%zz")
		_, ok, err := ParamsFromEnv()
		assert.True(t, ok)
		assert.Error(t, err)
	})
}

func TestDevelopment(t *testing.T) {
	t.Run("unset", func(t *testing.T) {
		t.Setenv("DEVELOPMENT", "")
		os.Unsetenv("DEVELOPMENT")
		assert.False(t, Development())
	})
	t.Run("set", func(t *testing.T) {
		t.Setenv("DEVELOPMENT", "1")
		assert.True(t, Development())
	})
	t.Run("zero", func(t *testing.T) {
		t.Setenv("DEVELOPMENT", "0")
		assert.False(t, Development())
	})
}

func TestLogPath(t *testing.T) {
	t.Setenv("PYNESWEEPER_LOG", "/tmp/custom.log")
	assert.Equal(t, "/tmp/custom.log", LogPath())
}

func TestNewLogger(t *testing.T) {
	t.Setenv("DEVELOPMENT", "")
	os.Unsetenv("DEVELOPMENT")
	path := filepath.Join(t.TempDir(), "game.log")
	log, err := NewLogger(path)
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())

	// the hook must create and write the file
	log.Info("hello")
	assert.FileExists(t, path)
}
