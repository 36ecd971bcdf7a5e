package utils

import "fmt"

// FormatAmount renders an amount in minor units as a decimal string,
// e.g. 12550 -> "125.50".
func FormatAmount(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s%d.%02d", sign, minor/100, minor%100)
}
