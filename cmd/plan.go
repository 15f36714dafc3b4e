package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/turbot/csvsplit/internal/cmdconfig"
	"github.com/turbot/csvsplit/internal/constants"
	"github.com/turbot/csvsplit/internal/display"
	"github.com/turbot/csvsplit/internal/error_helpers"
	"github.com/turbot/csvsplit/internal/splitter"
	"github.com/turbot/go-kit/helpers"
	"github.com/turbot/pipe-fittings/v2/contexthelpers"
	"github.com/turbot/pipe-fittings/v2/statushooks"
)

func planCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan [flags]",
		Args:  cobra.NoArgs,
		Run:   runPlanCmd,
		Short: "Show how a CSV file would be split, without writing any files",
		Long: `Show how a CSV file would be split, without writing any files.

For each part, the plan lists the output file name, the range of data rows
(zero based, end exclusive) and the row count.

Examples:

	# Show the boundaries of an 8 way split
	csvsplit plan --input ratings.csv --parts 8

	# Machine readable plan
	csvsplit plan --input ratings.csv --output json`,
	}

	outputMode := constants.SplitOutputModeTable
	addSplitFlags(cmd, &outputMode).
		AddBoolFlag(constants.ArgHelp, false, "Help for plan", cmdconfig.FlagOptions.WithShortHand("h"))

	return cmd
}

func runPlanCmd(cmd *cobra.Command, args []string) {
	var err error
	ctx, cancel := context.WithCancel(cmd.Context())
	contexthelpers.StartCancelHandler(cancel)

	defer func() {
		if r := recover(); r != nil {
			err = helpers.ToError(r)
			exitCode = constants.ExitCodeUnknownErrorPanic
		}
		if err != nil && !error_helpers.IsCancelledError(err) {
			setExitCodeForSplitError(err)
			error_helpers.ShowError(ctx, err)
		}
	}()

	if _, ok := os.LookupEnv(constants.EnvConfigDump); ok {
		cmdconfig.DisplayConfig()
		return
	}

	output := viper.GetString(constants.ArgOutput)
	config, plan, err := doPlan(ctx, splitConfigFromViper(), output)
	if err != nil {
		return
	}

	err = display.RenderPlan(os.Stdout, config, plan, output)
}

func doPlan(ctx context.Context, config splitter.Config, output string) (splitter.Config, *splitter.PartitionPlan, error) {
	s, err := splitter.NewSplitter(config)
	if err != nil {
		return config, nil, err
	}

	ctx = withLoadSpinner(ctx, output, s.Config().InputPath)
	defer statushooks.Done(ctx)

	_, plan, err := s.Plan(ctx)
	return s.Config(), plan, err
}
