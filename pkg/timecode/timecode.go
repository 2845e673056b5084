// Package timecode converts between second offsets and HH:MM:SS clock strings.
package timecode

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatHMS renders a second offset as zero-padded HH:MM:SS.
func FormatHMS(totalSeconds int) string {
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// ParseClock converts a colon-separated clock string into seconds.
// Two components mean MM:SS, three mean HH:MM:SS; anything else is an error.
func ParseClock(value string) (int, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	nums := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0, fmt.Errorf("invalid time format: %q", value)
		}
		nums = append(nums, n)
	}
	switch len(nums) {
	case 2:
		return nums[0]*60 + nums[1], nil
	case 3:
		return nums[0]*3600 + nums[1]*60 + nums[2], nil
	default:
		return 0, fmt.Errorf("invalid time format: %q", value)
	}
}
