// Package merge implements C6: the context merger that walks the
// cleaned tag stream left to right, combines tags that describe one
// expression (a date tag plus the period/clock that refines it, a
// range opener plus its start/end segments), and produces the final
// results plus the overall QueryTag.
package merge

import (
	"time"

	"github.com/az-ai-labs/timenlp/resolve"
	"github.com/az-ai-labs/timenlp/tag"
)

// Merge resolves a cleaned, sorted tag stream against base and returns
// the final results plus the query classification. It never returns an
// error: individual tags that fail to resolve (out-of-range, malformed
// payload) are dropped and extraction continues, per the "no
// recoverable error propagates" policy.
func Merge(tags []tag.Tag, base tag.Instant, ctx *resolve.Context) ([]tag.Result, tag.QueryTag) {
	segments, sawRange, sawRecur := splitSegments(tags)
	if len(segments) == 0 {
		return nil, tag.QueryNone
	}

	resolved := make([]segmentResult, 0, len(segments))
	for _, seg := range segments {
		sr, ok := resolveSegment(seg, base, ctx)
		if !ok {
			continue
		}
		resolved = append(resolved, sr)
	}
	if len(resolved) == 0 {
		return nil, tag.QueryNone
	}

	var results []tag.Result
	var queryTag tag.QueryTag

	if sawRange && len(resolved) >= 2 {
		start, end := resolved[0], resolved[len(resolved)-1]
		propagateSharedDate(&start, &end)
		iv := buildInterval(start.result, end.result)
		results = []tag.Result{tag.IntervalResult(iv)}
		queryTag = tag.QueryRange
	} else {
		for _, r := range resolved {
			results = append(results, r.result)
		}
		queryTag = familyQueryTag(resolved[0].family)
	}

	if sawRecur {
		queryTag = tag.QueryRecurring
	}

	return results, queryTag
}

type segmentResult struct {
	result       tag.Result
	family       tag.Family
	explicitDate bool // a DATE-like (non-CLOCK/PERIOD) tag set this segment's day
}

// splitSegments partitions the tag stream into range-endpoint segments.
// With no RANGE_OPEN present, the whole stream is a single segment per
// top-level expression, so disjoint expressions each get their own
// segment (a new segment starts at any tag other than PERIOD, CLOCK
// or ORDINAL that follows a tag which already committed a result).
func splitSegments(tags []tag.Tag) (segments [][]tag.Tag, sawRange, sawRecur bool) {
	var cur []tag.Tag
	inRange := false
	committed := false

	flush := func() {
		if len(cur) > 0 {
			segments = append(segments, cur)
			cur = nil
		}
		committed = false
	}

	for _, t := range tags {
		switch t.Family {
		case tag.RangeOpen:
			sawRange = true
			inRange = true
			flush()
			continue
		case tag.RangeSep:
			flush()
			continue
		case tag.RangeClose:
			flush()
			inRange = false
			continue
		case tag.RECUR:
			sawRecur = true
		}

		if !inRange && committed && startsNewExpression(t.Family) {
			flush()
		}
		cur = append(cur, t)
		if isAnchor(t.Family) {
			committed = true
		}
	}
	flush()
	return segments, sawRange, sawRecur
}

// isAnchor reports whether t's family alone is enough to commit a
// segment's result (a date, a clock-only point, a delta, a holiday, or
// a recurring/century/decade expression).
func isAnchor(f tag.Family) bool {
	switch f {
	case tag.UTC, tag.REL, tag.WEEK, tag.HOLIDAY, tag.LUNAR, tag.CLOCK, tag.DELTA,
		tag.CENTURY, tag.DECADE, tag.RECUR:
		return true
	default:
		return false
	}
}

// startsNewExpression reports whether t's family should begin a fresh
// top-level expression rather than refine the one already committed in
// the current segment (PERIOD/CLOCK extend a preceding DATE-like tag;
// ORDINAL qualifies an adjacent WEEK/RECUR tag).
func startsNewExpression(f tag.Family) bool {
	switch f {
	case tag.PERIOD, tag.CLOCK, tag.ORDINAL:
		return false
	default:
		return true
	}
}

// resolveSegment runs the local FSM over one segment's tags. Date and
// time-of-day are tracked independently so a DATE-like tag trailing a
// CLOCK in the same segment ("11:00 ... on thursday") still supplies
// the day that clock applies to, matching how the source phrase reads
// as one expression regardless of token order. PERIOD refines the day
// interval and disambiguates an ambiguous CLOCK's am/pm; HOLIDAY,
// LUNAR, CENTURY, DECADE, RECUR, and DELTA are self-contained and are
// only overridden by a CLOCK appearing in the same segment.
func resolveSegment(seg []tag.Tag, base tag.Instant, ctx *resolve.Context) (segmentResult, bool) {
	var (
		haveDate            bool
		day                 tag.Instant
		haveClock           bool
		hour, minute, second int
		period              *tag.PeriodPayload
		periodInterval      tag.Interval
		standalone          tag.Result
		standaloneSet       bool
		explicitDate        bool
		family              tag.Family
		has                 bool
	)

	for _, t := range seg {
		switch t.Family {
		case tag.UTC, tag.REL, tag.WEEK:
			r, err := resolve.Dispatch(t, base, ctx)
			if err != nil {
				continue
			}
			day = resolve.DateOnly(r)
			haveDate = true
			explicitDate = true
			family, has = t.Family, true

		case tag.HOLIDAY, tag.LUNAR, tag.CENTURY, tag.DECADE, tag.RECUR, tag.DELTA:
			r, err := resolve.Dispatch(t, base, ctx)
			if err != nil {
				continue
			}
			standalone, standaloneSet = r, true
			day = resolve.DateOnly(r)
			haveDate = true
			explicitDate = true
			family, has = t.Family, true

		case tag.PERIOD:
			p := t.Payload.(tag.PeriodPayload)
			period = &p
			anchor := base.StartOfDay()
			if haveDate {
				anchor = day
			}
			periodInterval = resolve.ApplyPeriod(anchor, p)
			if !haveDate {
				day, haveDate = anchor, true
			}
			if !has {
				family, has = tag.PERIOD, true
			}

		case tag.CLOCK:
			c := t.Payload.(tag.ClockPayload)
			hh, mm, ss, err := resolve.SplitClock(c, period)
			if err != nil {
				continue
			}
			hour, minute, second, haveClock = hh, mm, ss, true
			if !haveDate {
				day, haveDate = base.StartOfDay(), true
			}
			if !has {
				family, has = tag.CLOCK, true
			}

		case tag.ORDINAL:
			// A standalone ordinal reference ("第3个") with nothing of
			// its own to anchor a day/time to. WeekRule's "Nth weekday
			// of the month" construct is built as a complete WEEK tag
			// directly by the grammar (see grammar.newENWeekFragment),
			// so there is no cross-tag folding to do here.
		}
	}

	if !has {
		return segmentResult{}, false
	}
	if standaloneSet && !haveClock {
		return segmentResult{result: standalone, family: family, explicitDate: explicitDate}, true
	}
	if haveClock {
		t := day.Time()
		instant := tag.NewInstant(time.Date(t.Year(), t.Month(), t.Day(), hour, minute, second, 0, time.UTC))
		return segmentResult{result: tag.PointResult(instant), family: family, explicitDate: explicitDate}, true
	}
	if period != nil {
		return segmentResult{result: tag.IntervalResult(periodInterval), family: family, explicitDate: explicitDate}, true
	}
	return segmentResult{result: tag.IntervalResult(tag.DayInterval(day)), family: family, explicitDate: explicitDate}, true
}

// propagateSharedDate implements the "if the end lacks a date, inherit
// from start" rule from a direction-agnostic angle: whichever endpoint
// never saw a DATE-like tag of its own (only PERIOD/CLOCK) borrows the
// other endpoint's date, regardless of which one is textually first —
// a trailing weekday/date modifier can apply to the whole range.
func propagateSharedDate(start, end *segmentResult) {
	if !start.explicitDate && end.explicitDate {
		shiftToDate(&start.result, resolve.DateOnly(end.result))
	} else if !end.explicitDate && start.explicitDate {
		shiftToDate(&end.result, resolve.DateOnly(start.result))
	}
}

func shiftToDate(r *tag.Result, day tag.Instant) {
	if r.Kind != tag.ResultPoint {
		return
	}
	t := r.Point.Time()
	d := day.Time()
	r.Point = tag.NewInstant(time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC))
}

func buildInterval(startRes, endRes tag.Result) tag.Interval {
	start := pointOf(startRes, true)
	end := pointOf(endRes, false)
	if end.Before(start) {
		end = end.AddDate(0, 0, 1)
	}
	return tag.Interval{Start: start, End: end}
}

func pointOf(r tag.Result, isStart bool) tag.Instant {
	if r.Kind == tag.ResultPoint {
		return r.Point
	}
	if isStart {
		return r.Interval.Start
	}
	return r.Interval.End
}

// familyQueryTag maps the first surviving top-level tag's family to a
// coarse QueryTag. CENTURY/DECADE report "range" directly since a
// century/decade is fundamentally a multi-year span rather than a
// single relative/absolute reference, even though no RANGE_* marker
// tag is present in the source text.
func familyQueryTag(f tag.Family) tag.QueryTag {
	switch f {
	case tag.UTC:
		return tag.QueryAbsolute
	case tag.HOLIDAY:
		return tag.QueryHoliday
	case tag.LUNAR:
		return tag.QueryLunar
	case tag.CENTURY, tag.DECADE:
		return tag.QueryRange
	case tag.RECUR:
		return tag.QueryRecurring
	default:
		return tag.QueryRelative
	}
}
