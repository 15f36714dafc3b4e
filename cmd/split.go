package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/thediveo/enumflag/v2"
	"github.com/turbot/csvsplit/internal/cmdconfig"
	"github.com/turbot/csvsplit/internal/constants"
	"github.com/turbot/csvsplit/internal/display"
	"github.com/turbot/csvsplit/internal/error_helpers"
	"github.com/turbot/csvsplit/internal/filepaths"
	"github.com/turbot/csvsplit/internal/splitter"
	"github.com/turbot/go-kit/helpers"
	"github.com/turbot/pipe-fittings/v2/contexthelpers"
	"github.com/turbot/pipe-fittings/v2/statushooks"
	"github.com/turbot/pipe-fittings/v2/utils"
)

func splitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split [flags]",
		Args:  cobra.NoArgs,
		Run:   runSplitCmd,
		Short: "Split a CSV file into parts, each with the original header",
		Long: `Split a CSV file into parts, each with the original header.

The data rows are divided into contiguous parts of equal size; the last part also
takes any remainder. Parts are written to <output-dir>/<base-name>_part<N>.csv,
overwriting existing files of the same name.

Examples:

	# Split ratings.csv into 4 parts alongside the input
	csvsplit split --input ratings.csv

	# Split into 8 parts written to ./parts/shard_part1.csv ... shard_part8.csv
	csvsplit split --input ratings.csv --parts 8 --output-dir parts --base-name shard`,
	}

	// variable used to assign the output mode flag
	outputMode := constants.SplitOutputModeText
	addSplitFlags(cmd, &outputMode).
		AddStringFlag(constants.ArgOutputDir, "", "Directory to write the parts to (defaults to the input's directory)").
		AddStringFlag(constants.ArgBaseName, "", "File name prefix of each part (defaults to the input file name without extension)").
		AddBoolFlag(constants.ArgCRLF, false, "Terminate records with \\r\\n instead of \\n").
		AddBoolFlag(constants.ArgHelp, false, "Help for split", cmdconfig.FlagOptions.WithShortHand("h"))

	return cmd
}

// addSplitFlags adds the flags shared by split and plan
func addSplitFlags(cmd *cobra.Command, outputMode *constants.SplitOutputMode) *cmdconfig.CmdBuilder {
	return cmdconfig.
		OnCmd(cmd).
		AddStringFlag(constants.ArgInput, constants.DefaultInput, "CSV file to split; the first record must be the header", cmdconfig.FlagOptions.WithShortHand("i")).
		AddIntFlag(constants.ArgParts, constants.DefaultParts, "Number of parts to split the data rows into", cmdconfig.FlagOptions.WithShortHand("n")).
		AddVarFlag(enumflag.New(outputMode, constants.ArgOutput, constants.SplitOutputModeIds, enumflag.EnumCaseInsensitive),
			constants.ArgOutput,
			fmt.Sprintf("Output format; one of: %s", strings.Join(constants.FlagValues(constants.SplitOutputModeIds), ", ")))
}

func runSplitCmd(cmd *cobra.Command, args []string) {
	var err error
	//setup a cancel context and start cancel handler
	ctx, cancel := context.WithCancel(cmd.Context())
	contexthelpers.StartCancelHandler(cancel)

	defer func() {
		if r := recover(); r != nil {
			err = helpers.ToError(r)
			exitCode = constants.ExitCodeUnknownErrorPanic
		}
		if err != nil {
			setExitCodeForSplitError(err)
			error_helpers.ShowError(ctx, err)
		}
	}()

	// if diagnostic mode is set, print out config and return
	if _, ok := os.LookupEnv(constants.EnvConfigDump); ok {
		cmdconfig.DisplayConfig()
		return
	}

	config := splitConfigFromViper()
	output := viper.GetString(constants.ArgOutput)

	status, err := doSplit(ctx, config, output)
	if errors.Is(err, context.Canceled) {
		// cancellation is a user choice - clear error so we don't show it with normal error reporting
		err = nil
		if status != nil {
			error_helpers.ShowInfo(fmt.Sprintf("Split cancelled after %d of %d parts", len(status.Partitions), status.Parts))
		}
		return
	}
	if err != nil {
		return
	}

	err = display.RenderSplitStatus(os.Stdout, status, output)
	if err != nil {
		return
	}

	warnStaleParts(config)
	// defer block will show the error
}

// warnStaleParts warns about part files left over from an earlier split into more parts.
// They are not removed, since they may not have been written by us.
func warnStaleParts(config splitter.Config) {
	if err := config.Resolve(); err != nil {
		return
	}
	stale, err := filepaths.FindStaleParts(config.OutputDir, config.BaseName, config.Parts)
	if err != nil {
		slog.Warn("Failed to check for stale parts", "error", err)
		return
	}
	if len(stale) == 0 {
		return
	}
	error_helpers.ShowWarning(fmt.Sprintf("%d part %s from an earlier split remain in %s and were not modified: %s",
		len(stale),
		utils.Pluralize("file", len(stale)),
		config.OutputDir,
		strings.Join(stale, ", ")))
}

func doSplit(ctx context.Context, config splitter.Config, output string) (*splitter.SplitStatus, error) {
	var opts []splitter.SplitterOption
	if output == constants.OutputFormatText {
		progress := display.NewProgressPrinter(os.Stdout)
		opts = append(opts,
			splitter.WithPlanHook(progress.PrintPlan),
			splitter.WithProgress(progress.PrintPartition))
	}

	s, err := splitter.NewSplitter(config, opts...)
	if err != nil {
		return nil, err
	}
	slog.Info("Splitting CSV file", "input", s.Config().InputPath, "parts", s.Config().Parts, "output_dir", s.Config().OutputDir)

	// the splitter hides the spinner once loading completes, before any progress is printed
	ctx = withLoadSpinner(ctx, output, s.Config().InputPath)
	defer statushooks.Done(ctx)

	return s.Split(ctx)
}

// withLoadSpinner adds a status spinner to ctx on interactive terminals for human readable output modes
func withLoadSpinner(ctx context.Context, output, inputPath string) context.Context {
	if output == constants.OutputFormatJSON || !viper.GetBool(constants.ConfigKeyIsTerminalTTY) {
		return ctx
	}

	spinner := statushooks.NewStatusSpinnerHook(statushooks.WithMessage(fmt.Sprintf("Loading %s...", inputPath)))
	spinner.Show()
	return statushooks.AddStatusHooksToContext(ctx, spinner)
}

func splitConfigFromViper() splitter.Config {
	return splitter.Config{
		InputPath: viper.GetString(constants.ArgInput),
		Parts:     viper.GetInt(constants.ArgParts),
		OutputDir: viper.GetString(constants.ArgOutputDir),
		BaseName:  viper.GetString(constants.ArgBaseName),
		CRLF:      viper.GetBool(constants.ArgCRLF),
	}
}

func setExitCodeForSplitError(err error) {
	// set exit code only if an error occurred and no exit code is already set
	if exitCode != 0 || err == nil {
		return
	}
	switch {
	case errors.Is(err, splitter.ErrInvalidPartCount), errors.Is(err, splitter.ErrNoInput):
		exitCode = constants.ExitCodeInsufficientOrWrongInputs
	default:
		exitCode = constants.ExitCodeSplitFailed
	}
}
