// Package units converts raw byte counts into human-scaled strings.
package units

import "fmt"

var ladder = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// Humanize scales n through the 1024 ladder, stopping when the value
// drops below 1024 or units run out. Base-unit values print as integers,
// everything else with one decimal.
func Humanize(n uint64) string {
	x := float64(n)
	i := 0
	for x >= 1024 && i < len(ladder)-1 {
		x /= 1024
		i++
	}
	if i == 0 {
		return fmt.Sprintf("%d %s", uint64(x), ladder[i])
	}
	return fmt.Sprintf("%.1f %s", x, ladder[i])
}
