package cmdconfig

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/spf13/viper"
	"github.com/turbot/csvsplit/internal/constants"
	"github.com/turbot/go-kit/files"
)

// BootstrapViper sets the defaults for keys which have no corresponding flag value
// and binds the known environment variables
func BootstrapViper(defaults map[string]any, envs map[string]string) error {
	for k, v := range defaults {
		viper.SetDefault(k, v)
	}

	for envVar, key := range envs {
		if err := viper.BindEnv(key, envVar); err != nil {
			return fmt.Errorf("failed to bind env var %s: %w", envVar, err)
		}
	}
	return nil
}

// loadConfigFile reads the config file named by the config-path flag or env var, if any.
// Values from the file take precedence over defaults but not over env vars or flags.
func loadConfigFile() error {
	configPath := viper.GetString(constants.ArgConfigPath)
	if configPath == "" {
		return nil
	}

	configPath, err := files.Tildefy(configPath)
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}

	viper.SetConfigFile(configPath)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}
	slog.Info("Loaded config file", "path", viper.ConfigFileUsed())
	return nil
}

// DisplayConfig prints the resolved value of every config key
//
//nolint:forbidigo // intentional use of fmt
func DisplayConfig() {
	keys := []string{
		constants.ArgInput,
		constants.ArgParts,
		constants.ArgOutputDir,
		constants.ArgBaseName,
		constants.ArgCRLF,
		constants.ArgOutput,
		constants.ArgConfigPath,
	}
	slices.Sort(keys)

	var lines []string
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s: %v", k, viper.Get(k)))
	}
	fmt.Println(strings.Join(lines, "\n"))
}

// validateConfig checks config values which are not checked by the splitter itself
func validateConfig() error {
	output := viper.GetString(constants.ArgOutput)
	if output != "" && !slices.Contains(constants.FlagValues(constants.SplitOutputModeIds), output) {
		return fmt.Errorf("invalid value of 'output' (%s), must be one of: %s", output, strings.Join(constants.FlagValues(constants.SplitOutputModeIds), ", "))
	}
	return nil
}
