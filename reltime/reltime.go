// Package reltime renders the distance between two instants as a
// natural-language phrase.
//
//	Time(time.Now().Add(-5 * time.Minute))  = "5 minutes ago"
//	Time(time.Now().Add(2 * time.Hour))     = "2 hours from now"
//
// The delta is bucketed against an ordered magnitude table running
// from "now" (under one second) to a final catch-all of "a very long
// time". RelTime takes both instants and the two direction labels;
// CustomRelTime additionally takes a caller-supplied table.
//
// Bucketing works on plain time deltas, not calendars: a month is a
// fixed 30 days and a year 12 such months, so no timezone or leap
// arithmetic is involved.
//
// All functions are safe for concurrent use by multiple goroutines.
package reltime

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Common deltas used by the default magnitude table.
const (
	Day      = 24 * time.Hour
	Week     = 7 * Day
	Month    = 30 * Day
	Year     = 12 * Month
	LongTime = 37 * Year
)

// RelTimeMagnitude is one bucket of a relative-time table: deltas
// strictly below D render with Format, dividing the delta by DivBy.
// Format may reference the scaled delta as %d and the direction label
// as %s.
type RelTimeMagnitude struct {
	D      time.Duration
	Format string
	DivBy  time.Duration
}

// defaultMagnitudes must be ordered by strictly ascending D.
// The final entry's math.MaxInt64 threshold catches every delta.
var defaultMagnitudes = []RelTimeMagnitude{
	{time.Second, "now", time.Second},
	{2 * time.Second, "1 second %s", 1},
	{time.Minute, "%d seconds %s", time.Second},
	{2 * time.Minute, "1 minute %s", 1},
	{time.Hour, "%d minutes %s", time.Minute},
	{2 * time.Hour, "1 hour %s", 1},
	{Day, "%d hours %s", time.Hour},
	{2 * Day, "1 day %s", 1},
	{Week, "%d days %s", Day},
	{2 * Week, "1 week %s", 1},
	{Month, "%d weeks %s", Week},
	{2 * Month, "1 month %s", 1},
	{Year, "%d months %s", Month},
	{2 * Year, "1 year %s", 1},
	{LongTime, "%d years %s", Year},
	{math.MaxInt64, "a very long time", 1},
}

// Time renders t relative to the current time:
// "5 minutes ago" for past instants, "2 hours from now" for future.
func Time(t time.Time) string {
	return RelTime(t, time.Now(), "ago", "from now")
}

// RelTime renders the delta between a and b. albl labels a delta where
// a precedes b ("ago" in Time), blbl the reverse direction.
func RelTime(a, b time.Time, albl, blbl string) string {
	return CustomRelTime(a, b, albl, blbl, defaultMagnitudes)
}

// CustomRelTime renders the delta between a and b against a
// caller-supplied magnitude table. The table must be ordered by
// strictly ascending D with a final catch-all threshold; buckets whose
// Format has no %s verb render without the direction label.
func CustomRelTime(a, b time.Time, albl, blbl string, magnitudes []RelTimeMagnitude) string {
	lbl := albl
	diff := b.Sub(a)
	if a.After(b) {
		lbl = blbl
		diff = a.Sub(b)
	}

	mag := magnitudes[len(magnitudes)-1]
	for _, m := range magnitudes {
		if diff < m.D {
			mag = m
			break
		}
	}

	// Supply arguments in the order the verbs appear, so tables may
	// put %s and %d in either order.
	var args []any
	escaped := false
	for _, r := range mag.Format {
		if escaped {
			switch r {
			case 'd':
				args = append(args, int64(diff/mag.DivBy))
			case 's':
				args = append(args, lbl)
			}
			escaped = false
			continue
		}
		escaped = r == '%'
	}
	if len(args) == 0 {
		return mag.Format
	}
	return strings.TrimSpace(fmt.Sprintf(mag.Format, args...))
}
