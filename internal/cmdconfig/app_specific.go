package cmdconfig

import (
	"github.com/Masterminds/semver/v3"
	"github.com/spf13/viper"
	"github.com/turbot/csvsplit/internal/constants"
)

// AppVersion is the parsed build version, set by SetAppSpecificConstants
var AppVersion *semver.Version

// SetAppSpecificConstants sets the constants which depend on the build, and must be
// called after the version has been set in viper
func SetAppSpecificConstants() {
	versionString := viper.GetString(constants.ConfigKeyVersion)
	AppVersion = semver.MustParse(versionString)
}
