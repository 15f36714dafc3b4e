package cmdconfig

import (
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/turbot/csvsplit/internal/constants"
	"github.com/turbot/csvsplit/internal/logger"
)

// preRunHook is a function that is executed before the Run of every command handler
func preRunHook(cmd *cobra.Command, args []string) error {
	viper.Set(constants.ConfigKeyActiveCommand, cmd)
	viper.Set(constants.ConfigKeyIsTerminalTTY, isatty.IsTerminal(os.Stdout.Fd()))

	logger.Initialize()

	// set up the global viper config with default values from
	// config files and ENV variables
	if err := initGlobalConfig(); err != nil {
		return err
	}

	slog.Debug("Resolved config",
		"command", cmd.Name(),
		constants.ArgInput, viper.GetString(constants.ArgInput),
		constants.ArgParts, viper.GetInt(constants.ArgParts))
	return nil
}

// postRunHook is a function that is executed after the Run of every command handler
func postRunHook(cmd *cobra.Command, _ []string) error {
	slog.Debug("Command complete", "command", cmd.Name())
	return nil
}

// initGlobalConfig reads in config file and ENV variables if set.
func initGlobalConfig() error {
	var cmd = viper.Get(constants.ConfigKeyActiveCommand).(*cobra.Command)

	// set-up viper with defaults and the env var bindings
	if err := BootstrapViper(configDefaults(cmd), envMappings()); err != nil {
		return err
	}

	if err := loadConfigFile(); err != nil {
		return err
	}

	// now validate all config values have appropriate values
	return validateConfig()
}
