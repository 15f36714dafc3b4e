package splitter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func absPath(t *testing.T, path string) string {
	t.Helper()
	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	return abs
}

func TestConfig_Resolve(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name    string
		config  Config
		want    Config
		wantErr error
	}{
		{
			name:   "defaults from input path",
			config: Config{InputPath: filepath.Join("data", "ratings.csv"), Parts: 4},
			want: Config{
				InputPath: absPath(t, filepath.Join("data", "ratings.csv")),
				Parts:     4,
				OutputDir: absPath(t, "data"),
				BaseName:  "ratings",
			},
		},
		{
			name:   "explicit output dir and base name",
			config: Config{InputPath: "ratings.csv", Parts: 2, OutputDir: "out", BaseName: "shard", CRLF: true},
			want:   Config{InputPath: absPath(t, "ratings.csv"), Parts: 2, OutputDir: absPath(t, "out"), BaseName: "shard", CRLF: true},
		},
		{
			name:   "multiple extensions keep all but the last",
			config: Config{InputPath: "ratings.2024.csv", Parts: 1},
			want:   Config{InputPath: absPath(t, "ratings.2024.csv"), Parts: 1, OutputDir: absPath(t, "."), BaseName: "ratings.2024"},
		},
		{
			name:   "home directory expanded",
			config: Config{InputPath: "~/ml/ratings.csv", Parts: 4, OutputDir: "~/parts"},
			want: Config{
				InputPath: filepath.Join(home, "ml", "ratings.csv"),
				Parts:     4,
				OutputDir: filepath.Join(home, "parts"),
				BaseName:  "ratings",
			},
		},
		{
			name:    "no input",
			config:  Config{Parts: 4},
			wantErr: ErrNoInput,
		},
		{
			name:    "zero parts",
			config:  Config{InputPath: "ratings.csv"},
			wantErr: ErrInvalidPartCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.config
			err := c.Resolve()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c)
		})
	}
}

func TestConfig_PartFilePath(t *testing.T) {
	c := Config{InputPath: "ratings.csv", Parts: 4}
	require.NoError(t, c.Resolve())

	assert.Equal(t, "ratings_part1.csv", c.PartFileName(1))
	assert.Equal(t, "ratings_part4.csv", c.PartFileName(4))
	assert.Equal(t, filepath.Join(absPath(t, "."), "ratings_part2.csv"), c.PartFilePath(2))
}
