// Package filemeta classifies, formats and sanitizes file names and sizes
// for display in the object browser.
package filemeta

import (
	"strconv"
)

const unit = 1024

var sizeUnits = []string{"Bytes", "KB", "MB", "GB", "TB"}

// FormatSize converts a byte count to a human-readable string such as
// "1.5 KB". Negative counts format as "0 Bytes". Sizes past the TB tier
// stay in TB ("1024 TB").
func FormatSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}

	div, exp := int64(1), 0
	for exp < len(sizeUnits)-1 && bytes/div >= unit {
		div *= unit
		exp++
	}

	value := float64(bytes) / float64(div)
	// Round to two decimals, then drop trailing zeros ("2.00" -> "2").
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(value, 'f', 2, 64), 64)
	return strconv.FormatFloat(rounded, 'f', -1, 64) + " " + sizeUnits[exp]
}
