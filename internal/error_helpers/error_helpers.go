//nolint:forbidigo // errors and warnings are written to the console
package error_helpers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/shiena/ansicolor"
	"github.com/spf13/viper"
	"github.com/turbot/csvsplit/internal/constants"
)

var (
	coloredErr  = color.RedString("Error")
	coloredWarn = color.YellowString("Warning")
)

func init() {
	color.Output = ansicolor.NewAnsiColorWriter(os.Stderr)
}

func FailOnError(err error) {
	if err != nil {
		panic(err)
	}
}

func ShowError(ctx context.Context, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(GetWarningOutputStream(), "%s: %v\n", coloredErr, TransformError(err))
}

// TransformError rewords errors raised by the csv parser so they read as
// problems with the input file rather than parser internals
func TransformError(err error) error {
	if err == nil {
		return nil
	}
	errString := strings.TrimSpace(err.Error())
	errString = strings.ReplaceAll(errString, "parse error on line", "malformed CSV on line")
	return errors.New(errString)
}

func IsCancelledError(err error) bool {
	return errors.Is(err, context.Canceled)
}

func ShowWarning(warning string) {
	if len(warning) == 0 {
		return
	}
	fmt.Fprintf(GetWarningOutputStream(), "%s: %v\n", coloredWarn, warning)
}

// ShowInfo prints a non-critical info message to the appropriate output stream.
func ShowInfo(info string) {
	if len(info) == 0 {
		return
	}
	fmt.Fprintf(GetWarningOutputStream(), "%s: %v\n", color.YellowString("Note"), info)
}

// isMachineReadableOutput checks if the current output format is machine readable
func isMachineReadableOutput() bool {
	return viper.GetString(constants.ArgOutput) == constants.OutputFormatJSON
}

func GetWarningOutputStream() io.Writer {
	if isMachineReadableOutput() {
		// keep stdout clean for machine-readable formats
		return os.Stderr
	}
	return os.Stdout
}
