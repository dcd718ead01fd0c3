// Package holiday resolves a named holiday to a month/day within a
// given year, for the subset of holidays whose date is either fixed
// on the Gregorian calendar or computable by a simple weekday rule
// ("4th Thursday of November"). Lunisolar holidays (Spring Festival,
// Dragon Boat, Mid-Autumn) and solar terms are not resolvable here —
// Lookup reports ok=false for them and the caller falls back to
// package lunar, the same split the teacher's country tables draw
// between their hardcoded Gregorian entries and their per-year
// lunar-date switch statements.
package holiday

import "time"

// Locale selects which country's holiday table Lookup consults.
type Locale int

const (
	LocaleCN Locale = iota
	LocaleUS
)

type fixedDate struct{ month, day int }

// rule computes a holiday's (month, day) for a specific year — used
// for holidays defined by weekday position rather than a fixed date.
type rule func(year int) (month, day int)

var cnFixed = map[string]fixedDate{
	"new_year":     {1, 1},
	"labor_day":    {5, 1},
	"national_day": {10, 1},
	"womens_day":   {3, 8},
	"childrens_day": {6, 1},
	"youth_day":    {5, 4},
	"army_day":     {8, 1},
	"christmas":    {12, 25},
	"valentines_day": {2, 14},
}

var usFixed = map[string]fixedDate{
	"new_year":         {1, 1},
	"independence_day": {7, 4},
	"christmas":        {12, 25},
	"halloween":        {10, 31},
	"valentines_day":   {2, 14},
}

var usRules = map[string]rule{
	"thanksgiving": func(year int) (int, int) { return int(time.November), nthWeekday(year, time.November, time.Thursday, 4) },
	"mothers_day":  func(year int) (int, int) { return int(time.May), nthWeekday(year, time.May, time.Sunday, 2) },
	"fathers_day":  func(year int) (int, int) { return int(time.June), nthWeekday(year, time.June, time.Sunday, 3) },
	"labor_day":    func(year int) (int, int) { return int(time.September), nthWeekday(year, time.September, time.Monday, 1) },
	"memorial_day": func(year int) (int, int) { return int(time.May), lastWeekday(year, time.May, time.Monday) },
}

// cnLunarAnchored lists holiday IDs whose date depends on the lunar
// calendar and so cannot be resolved by this package; Lookup reports
// ok=false for these and the caller must consult package lunar.
var cnLunarAnchored = map[string]bool{
	"spring_festival":     true,
	"lunar_new_year_eve":  true,
	"dragon_boat":         true,
	"mid_autumn":          true,
	"double_ninth":        true,
	"qingming":            true,
}

// Lookup resolves name to a (month, day) within year for loc. ok is
// false when name is unknown to loc or is lunar-anchored.
func Lookup(loc Locale, name string, year int) (month, day int, ok bool) {
	switch loc {
	case LocaleCN:
		if cnLunarAnchored[name] {
			return 0, 0, false
		}
		if fd, found := cnFixed[name]; found {
			return fd.month, fd.day, true
		}
	case LocaleUS:
		if fd, found := usFixed[name]; found {
			return fd.month, fd.day, true
		}
		if r, found := usRules[name]; found {
			m, d := r(year)
			return m, d, true
		}
	}
	return 0, 0, false
}

// IsLunarAnchored reports whether name requires the lunar calendar to
// resolve, for the given locale.
func IsLunarAnchored(loc Locale, name string) bool {
	return loc == LocaleCN && cnLunarAnchored[name]
}

// nthWeekday returns the day-of-month of the n-th occurrence of wd in
// (year, month).
func nthWeekday(year int, month time.Month, wd time.Weekday, n int) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(wd) - int(first.Weekday()) + 7) % 7
	return 1 + offset + (n-1)*7
}

// lastWeekday returns the day-of-month of the final occurrence of wd
// in (year, month).
func lastWeekday(year int, month time.Month, wd time.Weekday) int {
	next := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC)
	last := next.AddDate(0, 0, -1)
	offset := (int(last.Weekday()) - int(wd) + 7) % 7
	return last.Day() - offset
}

// Override applies a caller-supplied set of fixed-date additions or
// masks on top of the built-in table, the same "CustomHoliday" shape
// used to extend a locale's table without a code change.
type Override struct {
	Locale Locale
	Name   string
	Month  int
	Day    int
	Remove bool
}

// Table is a locale's holiday lookup with any Overrides applied.
type Table struct {
	extra   map[Locale]map[string]fixedDate
	removed map[Locale]map[string]bool
}

// NewTable builds a Table from a base (empty) state plus overrides.
func NewTable(overrides []Override) *Table {
	t := &Table{
		extra:   map[Locale]map[string]fixedDate{},
		removed: map[Locale]map[string]bool{},
	}
	for _, o := range overrides {
		if o.Remove {
			if t.removed[o.Locale] == nil {
				t.removed[o.Locale] = map[string]bool{}
			}
			t.removed[o.Locale][o.Name] = true
			continue
		}
		if t.extra[o.Locale] == nil {
			t.extra[o.Locale] = map[string]fixedDate{}
		}
		t.extra[o.Locale][o.Name] = fixedDate{month: o.Month, day: o.Day}
	}
	return t
}

// Lookup resolves name for loc, consulting overrides before falling
// back to the package-level built-in table.
func (t *Table) Lookup(loc Locale, name string, year int) (month, day int, ok bool) {
	if t.removed[loc][name] {
		return 0, 0, false
	}
	if fd, found := t.extra[loc][name]; found {
		return fd.month, fd.day, true
	}
	return Lookup(loc, name, year)
}
