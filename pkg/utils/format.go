// Package utils provides common utility functions used throughout the helpers module.
package utils

import (
	"fmt"
	"math"
	"strconv"

	"github.com/CodeMonkeyCybersecurity/helpers/pkg/helper_err"
)

var sizeSuffixes = [...]string{"B", "KB", "MB", "GB", "TB", "PB"}

// ToFileSizeFormat converts a byte count into a compact human-readable size.
// It uses base-1024 units without a space, one decimal at most, rounded
// half away from zero, and always '.' as the separator.
// Counts of 1024 PB and more stay in PB. Negative counts are rejected.
//
// Example:
//   ToFileSizeFormat(0) -> "0B"
//   ToFileSizeFormat(1536) -> "1.5KB"
//   ToFileSizeFormat(1073741824) -> "1GB"
func ToFileSizeFormat(bytes int64) (string, error) {
	if bytes < 0 {
		return "", helper_err.NewInvalidArgumentError("bytes", fmt.Sprintf("byte count must not be negative, got %d", bytes))
	}
	if bytes == 0 {
		return "0" + sizeSuffixes[0], nil
	}

	const unit = 1024
	place := 0
	div := int64(1)
	for n := bytes / unit; n > 0 && place < len(sizeSuffixes)-1; n /= unit {
		div *= unit
		place++
	}

	rounded := math.Round(float64(bytes)/float64(div)*10) / 10
	return strconv.FormatFloat(rounded, 'f', -1, 64) + sizeSuffixes[place], nil
}

// MustFileSizeFormat is ToFileSizeFormat for counts known to be non-negative,
// such as len() results. It panics otherwise.
func MustFileSizeFormat(bytes int64) string {
	s, err := ToFileSizeFormat(bytes)
	if err != nil {
		panic(err)
	}
	return s
}
