package common

import (
	"math"
	"strconv"
)

// fileSizeUnits are the suffixes used by FormatFileSize, smallest first.
var fileSizeUnits = []string{"B", "KB", "MB", "GB"}

// FormatFileSize formats a byte count as a human-readable size with up to two
// decimal places: 512 -> "512 B", 2560 -> "2.5 KB", 5*1024*1024 -> "5 MB".
func FormatFileSize(bytes int64) string {
	v := float64(bytes)
	i := 0
	for v >= 1024 && i < len(fileSizeUnits)-1 {
		v /= 1024
		i++
	}
	rounded := math.Round(v*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64) + " " + fileSizeUnits[i]
}

// FormatPercent formats a percentage value without trailing zeros:
// 60 -> "60", 99.5 -> "99.5".
func FormatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
