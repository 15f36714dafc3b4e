package cmdconfig

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/turbot/csvsplit/internal/constants"
	"golang.org/x/exp/maps"
)

func configDefaults(cmd *cobra.Command) map[string]any {
	defs := map[string]any{
		constants.ArgInput: constants.DefaultInput,
		constants.ArgParts: constants.DefaultParts,
		constants.ArgCRLF:  false,
	}

	cmdSpecificDefaults, ok := cmdSpecificDefaults()[cmd.Name()]
	if ok {
		maps.Copy(defs, cmdSpecificDefaults)
	}
	return defs
}

// command specific config defaults (keyed by command name)
func cmdSpecificDefaults() map[string]map[string]any {
	return map[string]map[string]any{
		"plan": {
			constants.ArgOutput: constants.OutputFormatTable,
		},
	}
}

// a map of known environment variables to map to viper keys
func envMappings() map[string]string {
	res := map[string]string{}
	for _, key := range []string{
		constants.ArgInput,
		constants.ArgParts,
		constants.ArgOutputDir,
		constants.ArgBaseName,
		constants.ArgCRLF,
		constants.ArgConfigPath,
	} {
		res[envVarForKey(key)] = key
	}
	return res
}

// envVarForKey returns the env var for a viper key, e.g. output-dir -> CSVSPLIT_OUTPUT_DIR
func envVarForKey(key string) string {
	return constants.EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}
