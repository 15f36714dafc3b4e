package constants

const (
	EnvPrefix   = "CSVSPLIT_"
	EnvLogLevel = EnvPrefix + "LOG_LEVEL"
	// EnvConfigDump is an undocumented variable that is used to test config precedence
	EnvConfigDump = EnvPrefix + "CONFIG_DUMP"
)
