package cmd

import (
	"github.com/spf13/cobra"
	"github.com/turbot/csvsplit/internal/cmdconfig"
	"github.com/turbot/csvsplit/internal/constants"
	"github.com/turbot/csvsplit/internal/error_helpers"
)

var exitCode int

// Build the cobra command that handles our command line tool.
func rootCommand() *cobra.Command {
	// Define our command
	rootCmd := &cobra.Command{
		Use:   "csvsplit [--version] [--help] COMMAND [args]",
		Short: constants.CsvsplitShortDescription,
		Long:  constants.CsvsplitLongDescription,
		Run: func(cmd *cobra.Command, args []string) {
			err := cmd.Help()
			error_helpers.FailOnError(err)
		},
	}
	if cmdconfig.AppVersion != nil {
		rootCmd.Version = cmdconfig.AppVersion.String()
	}

	rootCmd.SetVersionTemplate("Csvsplit v{{.Version}}\n")

	cmdconfig.
		OnCmd(rootCmd).
		AddPersistentStringFlag(constants.ArgConfigPath, "", "Path of a config file (yaml, toml or json) providing defaults for any flag")

	rootCmd.AddCommand(
		splitCmd(),
		planCmd(),
	)

	// disable auto completion generation, since we don't want to support
	// powershell yet - and there's no way to disable powershell in the default generator
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	return rootCmd
}

func Execute() int {
	rootCmd := rootCommand()
	// commands report their own failures by setting exitCode, so any error returned by cobra is
	// from flag parsing or the pre run hook, i.e. an invalid flag, config file or config value
	if err := rootCmd.Execute(); err != nil && exitCode == 0 {
		exitCode = constants.ExitCodeInsufficientOrWrongInputs
	}
	return exitCode
}
