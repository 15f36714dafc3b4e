package error_helpers

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/turbot/csvsplit/internal/constants"
)

func TestTransformError(t *testing.T) {
	_, parseErr := csv.NewReader(strings.NewReader("a,b\"c\n")).ReadAll()
	wrapped := fmt.Errorf("failed to load ratings.csv: %w", parseErr)

	got := TransformError(wrapped)
	assert.Contains(t, got.Error(), "failed to load ratings.csv: malformed CSV on line 1")

	assert.Nil(t, TransformError(nil))
	assert.Equal(t, "plain", TransformError(errors.New("  plain \n")).Error())
}

func TestIsCancelledError(t *testing.T) {
	assert.True(t, IsCancelledError(fmt.Errorf("split: %w", context.Canceled)))
	assert.False(t, IsCancelledError(errors.New("boom")))
}

func TestGetWarningOutputStream(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set(constants.ArgOutput, constants.OutputFormatText)
	assert.Equal(t, os.Stdout, GetWarningOutputStream())

	// keep stdout clean for json
	viper.Set(constants.ArgOutput, constants.OutputFormatJSON)
	assert.Equal(t, os.Stderr, GetWarningOutputStream())
}
