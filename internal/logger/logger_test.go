package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turbot/csvsplit/internal/constants"
)

func TestCsvsplitLogger(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{"unset", "", false, false},
		{"off", "off", false, false},
		{"debug", "debug", true, true},
		{"info upper case", "INFO", false, true},
		{"error", "error", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(constants.EnvLogLevel, tt.level)
			var buf bytes.Buffer
			l := CsvsplitLogger(&buf)

			l.Debug("debug message")
			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("debug message")))

			buf.Reset()
			l.Info("info message", "rows", 10)
			assert.Equal(t, tt.wantInfo, bytes.Contains(buf.Bytes(), []byte("info message")))

			if tt.wantInfo {
				var entry map[string]any
				require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
				assert.Equal(t, "cli", entry["source"])
				assert.EqualValues(t, 10, entry["rows"])
			}
		})
	}
}
