// Package resolve implements C5: one pure function per tag family,
// converting a single Tag plus a base instant (and the merger's
// already-resolved context) into a concrete Instant or Interval.
//
// Dispatch is the single entry point a caller uses to resolve a tag in
// isolation. The context merger (package merge) additionally uses the
// more granular DateOnly/ApplyPeriod/SplitClock helpers directly when
// it needs to combine several tags into one result, since that
// combination is the merger's job, not any individual resolver's.
package resolve

import (
	"fmt"
	"time"

	"github.com/az-ai-labs/timenlp/holiday"
	"github.com/az-ai-labs/timenlp/lunar"
	"github.com/az-ai-labs/timenlp/tag"
)

// ErrOutOfRange is returned when a resolved instant falls outside
// [0001-01-01, 9999-12-31].
type ErrOutOfRange struct {
	Detail string
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("resolve: out of range: %s", e.Detail)
}

var (
	minInstant = tag.NewInstant(time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC))
	maxInstant = tag.NewInstant(time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC))
)

func checkRange(i tag.Instant, detail string) (tag.Instant, error) {
	if i.Before(minInstant) || i.After(maxInstant) {
		return i, &ErrOutOfRange{Detail: detail}
	}
	return i, nil
}

// Context carries anchors the merger has already resolved, so a
// resolver never needs package-global state to combine with a
// previous tag's result.
type Context struct {
	Locale   holiday.Locale
	Holidays *holiday.Table
	Lunar    lunar.Calendar

	// Period, when set, disambiguates am/pm for a CLOCK tag resolved
	// through Dispatch. The merger does not set it; it passes the
	// PERIOD payload to SplitClock directly.
	Period *tag.PeriodPayload
}

// NewContext builds a Context with the built-in (no-override) holiday
// table and the default table-based lunar calendar.
func NewContext(loc holiday.Locale) *Context {
	return &Context{
		Locale:   loc,
		Holidays: holiday.NewTable(nil),
		Lunar:    lunar.NewTableCalendar(),
	}
}

// Dispatch resolves a single tag against base, with no prior context
// from other tags in the same expression.
func Dispatch(t tag.Tag, base tag.Instant, ctx *Context) (tag.Result, error) {
	switch t.Family {
	case tag.UTC:
		return resolveUTC(t)
	case tag.REL:
		return resolveREL(t, base)
	case tag.WEEK:
		return resolveWEEK(t, base)
	case tag.PERIOD:
		day := base.StartOfDay()
		iv := ApplyPeriod(day, t.Payload.(tag.PeriodPayload))
		return tag.IntervalResult(iv), nil
	case tag.CLOCK:
		instant, err := ApplyClock(base.StartOfDay(), t.Payload.(tag.ClockPayload), ctx.Period)
		if err != nil {
			return tag.Result{}, err
		}
		return tag.PointResult(instant), nil
	case tag.DELTA:
		return resolveDELTA(t, base)
	case tag.HOLIDAY:
		return resolveHOLIDAY(t, base, ctx)
	case tag.LUNAR:
		return resolveLUNAR(t, base, ctx)
	case tag.CENTURY:
		return resolveCENTURY(t)
	case tag.DECADE:
		return resolveDECADE(t)
	case tag.RECUR:
		return resolveRECUR(t, base, ctx)
	default:
		return tag.Result{}, fmt.Errorf("resolve: no resolver for family %s", t.Family)
	}
}

// ---------- UTC ----------

func resolveUTC(t tag.Tag) (tag.Result, error) {
	p := t.Payload.(tag.UTCPayload)
	if !validDate(p.Year, p.Month, p.Day) {
		return tag.Result{}, &ErrOutOfRange{Detail: "invalid calendar date"}
	}
	if p.HasTime {
		instant, err := checkRange(tag.NewInstant(time.Date(
			p.Year, time.Month(p.Month), p.Day, p.Hour, p.Minute, p.Second, 0, time.UTC,
		)), "UTC date+time")
		if err != nil {
			return tag.Result{}, err
		}
		return tag.PointResult(instant), nil
	}
	day := tag.NewInstant(time.Date(p.Year, time.Month(p.Month), p.Day, 0, 0, 0, 0, time.UTC))
	if _, err := checkRange(day, "UTC date"); err != nil {
		return tag.Result{}, err
	}
	return tag.IntervalResult(tag.DayInterval(day)), nil
}

func validDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

// ---------- REL ----------

func resolveREL(t tag.Tag, base tag.Instant) (tag.Result, error) {
	p := t.Payload.(tag.RelPayload)
	day := relDay(p, base)
	if _, err := checkRange(day, "REL offset"); err != nil {
		return tag.Result{}, err
	}
	return tag.IntervalResult(tag.DayInterval(day)), nil
}

// relDay applies a RelPayload's signed offset to base's day, at day
// granularity regardless of unit (week/month/year offsets shift the
// calendar date, not just the day count).
func relDay(p tag.RelPayload, base tag.Instant) tag.Instant {
	day := base.StartOfDay()
	switch p.Unit {
	case tag.RelDay:
		return day.AddDate(0, 0, p.Offset)
	case tag.RelWeek:
		monday := mondayOf(day)
		shifted := monday.AddDate(0, 0, 7*p.Offset)
		if p.HasWeekday {
			return shifted.AddDate(0, 0, weekdayDelta(shifted, p.Weekday))
		}
		return shifted
	case tag.RelMonth:
		return day.AddDate(0, p.Offset, 0)
	case tag.RelYear:
		return day.AddDate(p.Offset, 0, 0)
	default:
		return day
	}
}

func mondayOf(day tag.Instant) tag.Instant {
	wd := int(day.Time().Weekday())
	// time.Weekday: Sunday=0 .. Saturday=6; Monday-based delta:
	delta := (wd + 6) % 7
	return day.AddDate(0, 0, -delta)
}

func weekdayDelta(monday tag.Instant, target time.Weekday) int {
	mondayBased := (int(target) + 6) % 7
	return mondayBased
}

// ---------- WEEK ----------

func resolveWEEK(t tag.Tag, base tag.Instant) (tag.Result, error) {
	p := t.Payload.(tag.WeekPayload)
	day := weekDay(p, base)
	if _, err := checkRange(day, "WEEK reference"); err != nil {
		return tag.Result{}, err
	}
	return tag.IntervalResult(tag.DayInterval(day)), nil
}

// weekDay resolves a WeekPayload to a calendar day, per §4.5: compute
// the Monday-based week of base, apply the modifier, then land on the
// target weekday within that (possibly shifted) week. Nth/last-of
// enumerate within base's month instead of a single week.
func weekDay(p tag.WeekPayload, base tag.Instant) tag.Instant {
	switch p.Modifier {
	case tag.ModNth:
		return nthWeekdayOfMonth(base, p.Weekday, p.N, p.Month)
	case tag.ModLastOf:
		return lastWeekdayOfMonth(base, p.Weekday, p.Month)
	default:
		monday := mondayOf(base.StartOfDay())
		weeks := p.N
		switch p.Modifier {
		case tag.ModNext:
			monday = monday.AddDate(0, 0, 7*weeks)
		case tag.ModLast:
			monday = monday.AddDate(0, 0, -7*weeks)
		}
		return monday.AddDate(0, 0, weekdayDelta(monday, p.Weekday))
	}
}

// targetMonth resolves a WeekPayload's explicit month, falling back to
// base's own month when the grammar left it unset (0).
func targetMonth(base tag.Instant, month time.Month) (year int, mon time.Month) {
	t := base.Time()
	if month == 0 {
		return t.Year(), t.Month()
	}
	return t.Year(), month
}

func nthWeekdayOfMonth(base tag.Instant, wd time.Weekday, n int, month time.Month) tag.Instant {
	year, mon := targetMonth(base, month)
	first := time.Date(year, mon, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(wd) - int(first.Weekday()) + 7) % 7
	day := 1 + offset + (n-1)*7
	return tag.NewInstant(time.Date(year, mon, day, 0, 0, 0, 0, time.UTC))
}

func lastWeekdayOfMonth(base tag.Instant, wd time.Weekday, month time.Month) tag.Instant {
	year, mon := targetMonth(base, month)
	nextMonth := time.Date(year, mon+1, 1, 0, 0, 0, 0, time.UTC)
	last := nextMonth.AddDate(0, 0, -1)
	offset := (int(last.Weekday()) - int(wd) + 7) % 7
	return tag.NewInstant(last.AddDate(0, 0, -offset))
}

// ---------- PERIOD / CLOCK combination helpers ----------

// ApplyPeriod narrows day's full-day interval to the named period's
// default hour bounds.
func ApplyPeriod(day tag.Instant, p tag.PeriodPayload) tag.Interval {
	t := day.Time()
	start := tag.NewInstant(time.Date(t.Year(), t.Month(), t.Day(), p.StartH, 0, 0, 0, time.UTC))
	endH := p.EndH
	if endH <= p.StartH {
		endH += 24
	}
	end := start.Add(time.Duration(endH-p.StartH)*time.Hour - time.Second)
	return tag.Interval{Start: start, End: end}
}

// ApplyClock combines day with an explicit clock time. If the clock
// carries no am/pm marker and period is non-nil, period disambiguates:
// an hour from 1 to 11 is shifted by 12 when the period starts at or
// after noon. With no period and no am/pm, the hour is kept as written
// on day; neither this function nor the merger moves it to the next
// future occurrence after base.
func ApplyClock(day tag.Instant, c tag.ClockPayload, period *tag.PeriodPayload) (tag.Instant, error) {
	hour, minute, second, err := SplitClock(c, period)
	if err != nil {
		return tag.Instant{}, err
	}
	t := day.Time()
	return tag.NewInstant(time.Date(t.Year(), t.Month(), t.Day(), hour, minute, second, 0, time.UTC)), nil
}

// SplitClock resolves a ClockPayload to a 24-hour (hour, minute,
// second) triple, independent of any calendar day, so a caller can
// apply it to a day anchor discovered after the clock tag itself (the
// merger needs this when a date-like tag trails the clock in the same
// expression).
func SplitClock(c tag.ClockPayload, period *tag.PeriodPayload) (hour, minute, second int, err error) {
	hour = c.Hour
	if c.HasAMPM {
		hour = hour % 12
		if c.PM {
			hour += 12
		}
	} else if period != nil && hour >= 1 && hour <= 11 && period.StartH >= 12 {
		hour += 12
	}
	if hour > 23 || c.Minute > 59 || c.Second > 59 {
		return 0, 0, 0, &ErrOutOfRange{Detail: "clock time out of bounds"}
	}
	return hour, c.Minute, c.Second, nil
}

// DateOnly strips any time-of-day a DATE-like tag's resolved Result
// carries and returns just its calendar day, for use as a shared
// anchor when combining with a PERIOD or CLOCK tag.
func DateOnly(r tag.Result) tag.Instant {
	if r.Kind == tag.ResultPoint {
		return r.Point.StartOfDay()
	}
	return r.Interval.Start.StartOfDay()
}

// ---------- DELTA ----------

func resolveDELTA(t tag.Tag, base tag.Instant) (tag.Result, error) {
	p := t.Payload.(tag.DeltaPayload)
	shift := func(amount int) tag.Instant {
		switch p.Unit {
		case tag.DeltaYear:
			return base.AddDate(amount, 0, 0)
		case tag.DeltaMonth:
			return base.AddDate(0, amount, 0)
		case tag.DeltaWeek:
			return base.AddDate(0, 0, 7*amount)
		case tag.DeltaDay:
			return base.AddDate(0, 0, amount)
		case tag.DeltaHour:
			return base.Add(time.Duration(amount) * time.Hour)
		case tag.DeltaMinute:
			return base.Add(time.Duration(amount) * time.Minute)
		case tag.DeltaSecond:
			return base.Add(time.Duration(amount) * time.Second)
		default:
			return base
		}
	}

	if p.Bracket {
		start, end := shift(-p.Amount), shift(p.Amount)
		if end.Before(start) {
			start, end = end, start
		}
		if _, err := checkRange(start, "DELTA bracket start"); err != nil {
			return tag.Result{}, err
		}
		if _, err := checkRange(end, "DELTA bracket end"); err != nil {
			return tag.Result{}, err
		}
		return tag.IntervalResult(tag.Interval{Start: start, End: end}), nil
	}

	shifted := shift(p.Amount)
	if _, err := checkRange(shifted, "DELTA offset"); err != nil {
		return tag.Result{}, err
	}
	return tag.PointResult(shifted), nil
}

// ---------- HOLIDAY ----------

func resolveHOLIDAY(t tag.Tag, base tag.Instant, ctx *Context) (tag.Result, error) {
	p := t.Payload.(tag.HolidayPayload)
	year := base.Time().Year()

	month, day, ok := ctx.Holidays.Lookup(ctx.Locale, p.ID, year)
	if !ok {
		month, day, ok = ctx.Lunar.Holiday(p.ID, year)
	}
	if !ok {
		month, day, ok = ctx.Lunar.SolarTerm(solarTermName(p.ID), year)
	}
	if !ok {
		return tag.Result{}, &ErrOutOfRange{Detail: "unknown holiday id " + p.ID}
	}

	occurrence := tag.NewInstant(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC))
	if p.Next && !occurrence.After(base) {
		// Conservative choice for "next <holiday>" landing on today or
		// already past: advance to next year's occurrence.
		month2, day2, ok2 := ctx.Holidays.Lookup(ctx.Locale, p.ID, year+1)
		if !ok2 {
			month2, day2, ok2 = ctx.Lunar.Holiday(p.ID, year+1)
		}
		if !ok2 {
			month2, day2, ok2 = ctx.Lunar.SolarTerm(solarTermName(p.ID), year+1)
		}
		if ok2 {
			occurrence = tag.NewInstant(time.Date(year+1, time.Month(month2), day2, 0, 0, 0, 0, time.UTC))
		}
	}

	if _, err := checkRange(occurrence, "HOLIDAY"); err != nil {
		return tag.Result{}, err
	}
	return tag.IntervalResult(tag.DayInterval(occurrence)), nil
}

var holidaySolarTerms = map[string]string{
	"dongzhi": "冬至",
	"lichun":  "立春",
}

func solarTermName(id string) string {
	return holidaySolarTerms[id]
}

// ---------- LUNAR ----------

func resolveLUNAR(t tag.Tag, base tag.Instant, ctx *Context) (tag.Result, error) {
	p := t.Payload.(tag.LunarPayload)
	year := p.Year
	if !p.HasYear {
		year = base.Time().Year()
	}
	y, m, d, ok := ctx.Lunar.Gregorian(year, p.Month, p.Day, p.IsLeapMonth)
	if !ok {
		return tag.Result{}, &ErrOutOfRange{Detail: "lunar date outside covered range"}
	}
	day := tag.NewInstant(time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC))
	if _, err := checkRange(day, "LUNAR"); err != nil {
		return tag.Result{}, err
	}
	return tag.IntervalResult(tag.DayInterval(day)), nil
}

// ---------- CENTURY / DECADE ----------

func resolveCENTURY(t tag.Tag) (tag.Result, error) {
	p := t.Payload.(tag.CenturyPayload)
	firstYear := (p.Value-1)*100 + 1
	lastYear := p.Value * 100
	return qualifiedYearInterval(firstYear, lastYear, p.Qualifier)
}

func resolveDECADE(t tag.Tag) (tag.Result, error) {
	p := t.Payload.(tag.DecadePayload)
	century := p.Century
	if century == 0 {
		century = 20 // unspecified century defaults to the 1900s/2000s boundary's common case
	}
	firstYear := (century-1)*100 + p.Decade*10
	lastYear := firstYear + 9
	return qualifiedYearInterval(firstYear, lastYear, p.Qualifier)
}

func qualifiedYearInterval(firstYear, lastYear int, q tag.CenturyQualifier) (tag.Result, error) {
	span := lastYear - firstYear + 1
	switch q {
	case tag.QualEarly:
		lastYear = firstYear + span/3 - 1
	case tag.QualMid:
		firstYear = firstYear + span/3
		lastYear = firstYear + span/3 - 1
	case tag.QualLate:
		firstYear = lastYear - span/3 + 1
	}
	start := tag.NewInstant(time.Date(firstYear, 1, 1, 0, 0, 0, 0, time.UTC))
	end := tag.NewInstant(time.Date(lastYear, 12, 31, 23, 59, 59, 0, time.UTC))
	if _, err := checkRange(start, "CENTURY/DECADE"); err != nil {
		return tag.Result{}, err
	}
	return tag.IntervalResult(tag.Interval{Start: start, End: end}), nil
}

// ---------- RECUR ----------

func resolveRECUR(t tag.Tag, base tag.Instant, ctx *Context) (tag.Result, error) {
	p := t.Payload.(tag.RecurPayload)
	if p.Inner == nil {
		return tag.Result{}, fmt.Errorf("resolve: RECUR tag has no inner tag")
	}
	inner := *p.Inner
	result, err := Dispatch(inner, base, ctx)
	if err != nil {
		return tag.Result{}, err
	}
	occurrence := DateOnly(result)
	// Advance to the next occurrence >= base's day for relative/weekday
	// inner tags whose naive resolution could land in the past relative
	// to base (e.g. "every Monday" evaluated on a Tuesday).
	if inner.Family == tag.WEEK && occurrence.Before(base.StartOfDay()) {
		occurrence = occurrence.AddDate(0, 0, 7)
	}
	if _, err := checkRange(occurrence, "RECUR"); err != nil {
		return tag.Result{}, err
	}
	return tag.IntervalResult(tag.DayInterval(occurrence)), nil
}
