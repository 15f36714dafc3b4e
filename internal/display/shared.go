package display

import (
	"math"

	"github.com/dustin/go-humanize"
)

func humanizeBytes(bytes int64) string {
	return humanize.Bytes(uint64(math.Max(float64(bytes), 0)))
}

func humanizeCount(count int) string {
	return humanize.Comma(int64(count))
}
