package main

import (
	"os"

	"github.com/spf13/viper"
	"github.com/turbot/csvsplit/cmd"
	"github.com/turbot/csvsplit/internal/cmdconfig"
	"github.com/turbot/csvsplit/internal/constants"
)

var (
	// These variables will be set by GoReleaser.
	version = "0.0.0-dev"
)

func main() {
	viper.SetDefault(constants.ConfigKeyVersion, version)
	cmdconfig.SetAppSpecificConstants()

	os.Exit(cmd.Execute())
}
