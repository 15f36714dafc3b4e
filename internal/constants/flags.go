package constants

import (
	"slices"

	"github.com/thediveo/enumflag/v2"
)

const (
	OutputFormatText  = "text"
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
)

type SplitOutputMode enumflag.Flag

const (
	SplitOutputModeText SplitOutputMode = iota
	SplitOutputModeTable
	SplitOutputModeJson
)

var SplitOutputModeIds = map[SplitOutputMode][]string{
	SplitOutputModeText:  {OutputFormatText},
	SplitOutputModeTable: {OutputFormatTable},
	SplitOutputModeJson:  {OutputFormatJSON},
}

// FlagValues returns the primary name of each enum value, sorted
func FlagValues[T comparable](mappings map[T][]string) []string {
	var res = make([]string, 0, len(mappings))
	for _, v := range mappings {
		res = append(res, v[0])
	}
	slices.Sort(res)
	return res
}
