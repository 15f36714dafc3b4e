package constants

// argument names, also used as viper keys
const (
	ArgInput      = "input"
	ArgParts      = "parts"
	ArgOutputDir  = "output-dir"
	ArgBaseName   = "base-name"
	ArgCRLF       = "crlf"
	ArgOutput     = "output"
	ArgConfigPath = "config-path"
	ArgHelp       = "help"
)

// viper keys which do not map to a flag
const (
	ConfigKeyVersion       = "main.version"
	ConfigKeyActiveCommand = "cmd"
	ConfigKeyIsTerminalTTY = "is_terminal"
)

const (
	DefaultInput = "ratings.csv"
	DefaultParts = 4
)

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
	LogLevelOff   = "off"
)
