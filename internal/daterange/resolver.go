package daterange

import (
	"strings"
	"time"
)

// Resolve turns a relative date expression into a concrete date range,
// relative to today. It reports false when the expression cannot be
// resolved by any rule.
//
// Expressions are case-insensitive and surrounding whitespace is ignored:
//
//	T, T+n, T-n        today, or today through n days ahead/behind
//	WB, WE             first/last day of the current week (weeks start Sunday)
//	W, W+n, W-n        the full current week, or the week n weeks away
//	MB, ME             first/last day of the current month
//	M, M+n, M-n        the full current month, or the month n months away
//	YB, YE             Jan 1 / Dec 31 of the current year
//	Y, Y+n, Y-n        the current year, stretched n years forward or back
//
// Anything else is parsed as an absolute date or date-time, yielding a
// single-point range.
func Resolve(expression string, today time.Time) (Range, bool) {
	today = truncateToDay(today)

	expr := strings.ToUpper(strings.TrimSpace(expression))
	if expr == "" {
		return Range{}, false
	}

	unit, ok := unitOf(expr)
	if !ok {
		parsed, ok := parseAbsolute(expression, today.Location())
		if !ok {
			return Range{}, false
		}
		return Range{Start: parsed, End: parsed}, true
	}

	tok := parseToken(expr, unit)
	switch tok.unit {
	case UnitToday:
		return resolveToday(tok, today), true
	case UnitWeek:
		return resolveWeek(tok, today), true
	case UnitMonth:
		return resolveMonth(tok, today), true
	default:
		return resolveYear(tok, today), true
	}
}

func resolveToday(tok token, today time.Time) Range {
	if !tok.hasOffset {
		return Range{Start: today, End: today}
	}
	target := today.AddDate(0, 0, tok.offset)
	if tok.offset < 0 {
		return Range{Start: target, End: today}
	}
	return Range{Start: today, End: target}
}

func resolveWeek(tok token, today time.Time) Range {
	switch tok.edge {
	case EdgeBegin:
		start := startOfWeek(today)
		return Range{Start: start, End: start}
	case EdgeEnd:
		end := today.AddDate(0, 0, 6-int(today.Weekday()))
		return Range{Start: end, End: end}
	}

	ref := today
	if tok.hasOffset {
		ref = today.AddDate(0, 0, 7*tok.offset)
	}
	start := startOfWeek(ref)
	return Range{Start: start, End: start.AddDate(0, 0, 6)}
}

func resolveMonth(tok token, today time.Time) Range {
	first := firstOfMonth(today.Year(), today.Month(), today.Location())

	switch tok.edge {
	case EdgeBegin:
		return Range{Start: first, End: first}
	case EdgeEnd:
		last := lastOfMonth(first)
		return Range{Start: last, End: last}
	}

	if tok.hasOffset {
		// time.Date normalizes month overflow across year boundaries.
		first = firstOfMonth(today.Year(), today.Month()+time.Month(tok.offset), today.Location())
	}
	return Range{Start: first, End: lastOfMonth(first)}
}

// resolveYear keeps the asymmetric offset rule: a negative offset moves
// only the start year back, a positive one moves only the end year forward.
func resolveYear(tok token, today time.Time) Range {
	year, loc := today.Year(), today.Location()

	switch tok.edge {
	case EdgeBegin:
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
		return Range{Start: start, End: start}
	case EdgeEnd:
		end := time.Date(year, time.December, 31, 0, 0, 0, 0, loc)
		return Range{Start: end, End: end}
	}

	startYear, endYear := year, year
	if tok.hasOffset {
		if tok.offset < 0 {
			startYear += tok.offset
		} else {
			endYear += tok.offset
		}
	}
	return Range{
		Start: time.Date(startYear, time.January, 1, 0, 0, 0, 0, loc),
		End:   time.Date(endYear, time.December, 31, 0, 0, 0, 0, loc),
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek returns the Sunday on or before t.
func startOfWeek(t time.Time) time.Time {
	return t.AddDate(0, 0, -int(t.Weekday()))
}

func firstOfMonth(year int, month time.Month, loc *time.Location) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, loc)
}

// lastOfMonth computes the first of the next month minus one day, which
// stays correct across month lengths and leap years.
func lastOfMonth(first time.Time) time.Time {
	return first.AddDate(0, 1, -1)
}
