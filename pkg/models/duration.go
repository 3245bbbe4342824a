package models

import (
	"strconv"
	"time"
)

// FormatDuration renders a time.Duration as a SurrealQL duration literal,
// e.g. "5s", "1h30m", "1s500ms". SurrealQL has no fractional units, so the
// duration is decomposed into whole units down to nanoseconds. A zero
// duration renders as "0s".
func FormatDuration(d time.Duration) string {
	if d == 0 {
		return "0s"
	}

	units := []struct {
		suffix string
		size   time.Duration
	}{
		{"h", time.Hour},
		{"m", time.Minute},
		{"s", time.Second},
		{"ms", time.Millisecond},
		{"us", time.Microsecond},
		{"ns", time.Nanosecond},
	}

	var out []byte
	if d < 0 {
		out = append(out, '-')
		d = -d
	}
	for _, u := range units {
		if n := d / u.size; n > 0 {
			out = strconv.AppendInt(out, int64(n), 10)
			out = append(out, u.suffix...)
			d -= n * u.size
		}
	}
	return string(out)
}
