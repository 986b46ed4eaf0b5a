// Package util holds small formatting helpers used in log lines and client messages.
package util

import (
	"strconv"
	"strings"
	"time"
)

var byteUnits = []string{"B", "KiB", "MiB", "GiB", "TiB"}

var durationUnits = []struct {
	size   time.Duration
	suffix string
}{
	{24 * time.Hour, "d"},
	{time.Hour, "h"},
	{time.Minute, "m"},
	{time.Second, "s"},
}

// FormatBytes renders a size with binary units and at most one decimal, e.g. "5 MiB", "1.5 KiB".
func FormatBytes(n int64) string {
	if n < 1024 {
		return strconv.FormatInt(n, 10) + " B"
	}

	v, i := float64(n), 0
	for v >= 1024 && i < len(byteUnits)-1 {
		v /= 1024
		i++
	}

	return strings.TrimSuffix(strconv.FormatFloat(v, 'f', 1, 64), ".0") + " " + byteUnits[i]
}

// FormatDuration renders the two most significant units of d at second
// precision, e.g. "30d", "1h30m", "45s".
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d <= 0 {
		return "0s"
	}

	var b strings.Builder
	for i, u := range durationUnits {
		n := d / u.size
		if n == 0 {
			continue
		}
		b.WriteString(strconv.FormatInt(int64(n), 10) + u.suffix)

		if i+1 < len(durationUnits) {
			next := durationUnits[i+1]
			if m := (d % u.size) / next.size; m > 0 {
				b.WriteString(strconv.FormatInt(int64(m), 10) + next.suffix)
			}
		}

		break
	}

	return b.String()
}
