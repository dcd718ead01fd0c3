// Package tag defines the wire format the tagger (C3) emits and the
// resolvers (C5) and context merger (C6) consume: typed Tags, their
// per-family payloads, and the Instant/Interval/Result/QueryTag types
// that make up the extractor's public data model.
package tag

import (
	"encoding/json"
	"fmt"
	"time"
)

// Instant is a UTC date-time truncated to second precision.
type Instant struct {
	t time.Time
}

// NewInstant truncates t to second precision and forces it to UTC.
func NewInstant(t time.Time) Instant {
	return Instant{t: t.UTC().Truncate(time.Second)}
}

// Time returns the underlying time.Time, always UTC.
func (i Instant) Time() time.Time { return i.t }

// IsZero reports whether i is the zero Instant.
func (i Instant) IsZero() bool { return i.t.IsZero() }

// Before reports whether i is strictly before o.
func (i Instant) Before(o Instant) bool { return i.t.Before(o.t) }

// After reports whether i is strictly after o.
func (i Instant) After(o Instant) bool { return i.t.After(o.t) }

// AddDate returns i shifted by the given number of years, months, and days.
func (i Instant) AddDate(years, months, days int) Instant {
	return NewInstant(i.t.AddDate(years, months, days))
}

// Add returns i shifted by d.
func (i Instant) Add(d time.Duration) Instant {
	return NewInstant(i.t.Add(d))
}

// String renders i as YYYY-MM-DDTHH:MM:SSZ.
func (i Instant) String() string {
	if i.IsZero() {
		return ""
	}
	return i.t.Format("2006-01-02T15:04:05Z")
}

// MarshalJSON encodes the instant as an ISO-8601 UTC string.
func (i Instant) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.String())
}

// UnmarshalJSON decodes an ISO-8601 UTC string into the instant.
func (i *Instant) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*i = Instant{}
		return nil
	}
	t, err := time.Parse("2006-01-02T15:04:05Z", s)
	if err != nil {
		return fmt.Errorf("tag: invalid instant %q: %w", s, err)
	}
	*i = NewInstant(t)
	return nil
}

// StartOfDay returns the Instant at 00:00:00 of i's calendar day.
func (i Instant) StartOfDay() Instant {
	t := i.t
	return NewInstant(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
}

// EndOfDay returns the Instant at 23:59:59 of i's calendar day.
func (i Instant) EndOfDay() Instant {
	t := i.t
	return NewInstant(time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, time.UTC))
}

// Interval is an ordered pair of Instants with Start <= End.
type Interval struct {
	Start Instant
	End   Instant
}

// Valid reports whether the interval satisfies Start <= End.
func (iv Interval) Valid() bool {
	return !iv.End.Before(iv.Start)
}

// DayInterval expands a calendar day into its full-day interval.
func DayInterval(i Instant) Interval {
	return Interval{Start: i.StartOfDay(), End: i.EndOfDay()}
}

// ResultKind distinguishes a point Result from an interval Result.
type ResultKind int

const (
	ResultPoint ResultKind = iota
	ResultInterval
)

// Result is either a single Instant or an Interval, matching the public
// "Instant | [start,end]" shape of extract()'s return value.
type Result struct {
	Kind     ResultKind
	Point    Instant
	Interval Interval
}

// PointResult builds a point Result.
func PointResult(i Instant) Result { return Result{Kind: ResultPoint, Point: i} }

// IntervalResult builds an interval Result.
func IntervalResult(iv Interval) Result { return Result{Kind: ResultInterval, Interval: iv} }

// MarshalJSON encodes a point Result as a single ISO string and an
// interval Result as a two-element [start,end] array.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.Kind == ResultInterval {
		return json.Marshal([2]Instant{r.Interval.Start, r.Interval.End})
	}
	return json.Marshal(r.Point)
}

// QueryTag is the coarse classification of the dominant expression kind.
type QueryTag string

const (
	QueryAbsolute  QueryTag = "absolute"
	QueryRelative  QueryTag = "relative"
	QueryRange     QueryTag = "range"
	QueryHoliday   QueryTag = "holiday"
	QueryLunar     QueryTag = "lunar"
	QueryRecurring QueryTag = "recurring"
	QueryNone      QueryTag = "none"
)

// Family classifies the kind of tag emitted by the grammar.
type Family int

const (
	UTC Family = iota
	REL
	WEEK
	PERIOD
	CLOCK
	HOLIDAY
	LUNAR
	DELTA
	RangeOpen
	RangeClose
	RangeSep
	CENTURY
	DECADE
	RECUR
	ORDINAL
	NOISE
)

var familyNames = [...]string{
	UTC: "UTC", REL: "REL", WEEK: "WEEK", PERIOD: "PERIOD", CLOCK: "CLOCK",
	HOLIDAY: "HOLIDAY", LUNAR: "LUNAR", DELTA: "DELTA",
	RangeOpen: "RANGE_OPEN", RangeClose: "RANGE_CLOSE", RangeSep: "RANGE_SEP",
	CENTURY: "CENTURY", DECADE: "DECADE", RECUR: "RECUR", ORDINAL: "ORDINAL",
	NOISE: "NOISE",
}

func (f Family) String() string {
	if int(f) >= 0 && int(f) < len(familyNames) {
		return familyNames[f]
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// Tag is a typed, structured token emitted by the tagger (C3), covering
// a left-to-right source span [Start,End) in the preprocessed text.
type Tag struct {
	Family  Family
	Start   int
	End     int
	Payload any // one of the *Payload types below, or nil for NOISE
}

func (t Tag) String() string {
	return fmt.Sprintf("%s[%d:%d]%+v", t.Family, t.Start, t.End, t.Payload)
}

// ---------- payload types (spec.md §3) ----------

// UTCPayload is a fully specified absolute date (or date+time).
type UTCPayload struct {
	Year, Month, Day      int
	Hour, Minute, Second  int
	HasTime               bool
}

// RelUnit is the unit a REL tag's offset is expressed in.
type RelUnit int

const (
	RelYear RelUnit = iota
	RelMonth
	RelWeek
	RelDay
)

// RelPayload is a relative day/week/month/year offset from the base time.
type RelPayload struct {
	Unit           RelUnit
	Offset         int
	HasWeekday     bool
	Weekday        time.Weekday
	OrdinalInMonth int // 0 when absent
}

// WeekModifier qualifies a weekday reference.
type WeekModifier int

const (
	ModThis WeekModifier = iota
	ModNext
	ModLast
	ModNth
	ModLastOf
)

// WeekPayload is a weekday reference with a modifier.
type WeekPayload struct {
	Weekday  time.Weekday
	Modifier WeekModifier
	N        int        // ModNth: which occurrence; ModNext/ModLast: how many weeks away
	Month    time.Month // used when Modifier == ModNth or ModLastOf; 0 means base's month
}

// PeriodKind names a part of day.
type PeriodKind int

const (
	PeriodDawn PeriodKind = iota
	PeriodMorning
	PeriodNoon
	PeriodAfternoon
	PeriodEvening
	PeriodNight
	PeriodMidnight
)

// PeriodPayload is a named part-of-day with its default hour bounds.
type PeriodPayload struct {
	Kind             PeriodKind
	StartH, EndH     int
}

// ClockPayload is an explicit clock time.
type ClockPayload struct {
	Hour, Minute, Second int
	HasSecond            bool
	HasAMPM               bool
	PM                     bool
}

// HolidayPayload names a holiday or solar term.
type HolidayPayload struct {
	ID        string
	Next      bool // "next <holiday>" was explicit in the input
}

// LunarPayload is a lunar calendar date.
type LunarPayload struct {
	HasYear    bool
	Year       int
	Month      int
	Day        int
	IsLeapMonth bool
}

// DeltaUnit is the unit a DELTA tag's amount is expressed in.
type DeltaUnit int

const (
	DeltaYear DeltaUnit = iota
	DeltaMonth
	DeltaWeek
	DeltaDay
	DeltaHour
	DeltaMinute
	DeltaSecond
)

// DeltaPayload is a signed offset applied to the base time. Bracket
// marks a fuzzy-quantifier reading ("近一年") that resolves to a
// symmetric interval around base rather than a single shifted point.
type DeltaPayload struct {
	Unit    DeltaUnit
	Amount  int
	Fuzzy   bool
	Bracket bool
}

// CenturyQualifier narrows a century/decade interval.
type CenturyQualifier int

const (
	QualAll CenturyQualifier = iota
	QualEarly
	QualMid
	QualLate
)

// CenturyPayload is a century reference, e.g. "20世纪" / "the 20th century".
type CenturyPayload struct {
	Value     int // e.g. 20 for the 20th century
	Qualifier CenturyQualifier
}

// DecadePayload is a decade reference, e.g. "60年代" / "the 80s".
type DecadePayload struct {
	Century   int // e.g. 20
	Decade    int // e.g. 6 for the 1960s, 8 for the 1980s
	Qualifier CenturyQualifier
}

// RecurPayload is a recurring-schedule reference; Inner is the tag
// describing one representative occurrence (e.g. a WEEK or REL tag).
type RecurPayload struct {
	Inner *Tag
}

// OrdinalPayload is a bare ordinal reference, e.g. "第3个".
type OrdinalPayload struct {
	N int
}
