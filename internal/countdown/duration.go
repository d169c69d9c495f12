package countdown

import (
	"fmt"
	"strings"
)

const (
	msPerSecond = int64(1000)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

// Remaining is the decomposed time left until a target instant.
type Remaining struct {
	Expired bool
	TotalMs int64
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// Until decomposes the delta between targetMs and nowMs (both epoch
// milliseconds) into fixed-length days, hours, minutes and seconds. A
// delta of zero or less is expired with all components zero. Months,
// years and leap seconds are not modeled.
func Until(targetMs, nowMs int64) Remaining {
	delta := targetMs - nowMs
	if delta <= 0 {
		return Remaining{Expired: true}
	}
	return Remaining{
		TotalMs: delta,
		Days:    delta / msPerDay,
		Hours:   delta % msPerDay / msPerHour,
		Minutes: delta % msPerHour / msPerMinute,
		Seconds: delta % msPerMinute / msPerSecond,
	}
}

// ExpiredPhrase is shown once a countdown's target instant has passed.
const ExpiredPhrase = "This countdown has expired!"

// Phrase renders the remaining time as a human-readable fragment listing
// only the non-zero units, e.g. "2 days, 3 hours, 1 minute, 10 seconds".
// A non-expired remainder whose components are all zero (target within
// the current second) renders as "Just a moment".
func (r Remaining) Phrase() string {
	if r.Expired {
		return ExpiredPhrase
	}
	units := []struct {
		value int64
		name  string
	}{
		{r.Days, "day"},
		{r.Hours, "hour"},
		{r.Minutes, "minute"},
		{r.Seconds, "second"},
	}
	parts := make([]string, 0, len(units))
	for _, u := range units {
		switch {
		case u.value == 1:
			parts = append(parts, "1 "+u.name)
		case u.value > 1:
			parts = append(parts, fmt.Sprintf("%d %ss", u.value, u.name))
		}
	}
	if len(parts) == 0 {
		return "Just a moment"
	}
	return strings.Join(parts, ", ")
}
