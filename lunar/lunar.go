// Package lunar is the external lunisolar-calendar collaborator:
// converting a lunar month/day (optionally a leap month) to a
// Gregorian date, and resolving solar terms (冬至, 清明, ...) and
// lunar-anchored holidays (Spring Festival, Dragon Boat, Mid-Autumn)
// to their Gregorian date for a given year. No real astronomical
// ephemeris computation lives here — like the per-year switch tables
// an actual production holiday provider uses for these same
// occasions, known dates are hardcoded for a bounded range of years
// and a deployment that needs a wider range supplies its own Calendar.
package lunar

import "time"

// Calendar converts lunar references to Gregorian dates. A production
// deployment that needs correctness beyond the bounded year range a
// lookup table can cover would supply an ephemeris-backed
// implementation of this same interface.
type Calendar interface {
	// Gregorian resolves a lunar month/day (and leap-month flag) within
	// lunarYear to its Gregorian date. ok is false outside the
	// implementation's covered year range.
	Gregorian(lunarYear, month, day int, isLeapMonth bool) (year, month2, day2 int, ok bool)

	// SolarTerm resolves a named solar term (e.g. "冬至", "立春") within
	// the given Gregorian year to its date. ok is false for an unknown
	// term or a year outside the covered range.
	SolarTerm(name string, year int) (month, day int, ok bool)

	// Holiday resolves a lunar-anchored holiday id (spring_festival,
	// lunar_new_year_eve, dragon_boat, mid_autumn, double_ninth,
	// qingming) within the given Gregorian year. ok is false for an
	// unknown id or an out-of-range year.
	Holiday(id string, year int) (month, day int, ok bool)
}

// TableCalendar is the default Calendar: a small embedded lookup
// table covering 2023-2030, the same horizon and per-year switch
// idiom a holiday provider's own lunar-date tables use.
type TableCalendar struct{}

// NewTableCalendar returns the default lookup-table-backed Calendar.
func NewTableCalendar() TableCalendar { return TableCalendar{} }

var springFestivalEve = map[int]struct{ month, day int }{
	2023: {1, 21}, 2024: {2, 9}, 2025: {1, 28}, 2026: {2, 16},
	2027: {2, 5}, 2028: {1, 25}, 2029: {2, 12}, 2030: {2, 2},
}

var dragonBoatDate = map[int]struct{ month, day int }{
	2023: {6, 22}, 2024: {6, 10}, 2025: {5, 31}, 2026: {6, 19},
	2027: {6, 9}, 2028: {5, 28}, 2029: {6, 16}, 2030: {6, 5},
}

var midAutumnDate = map[int]struct{ month, day int }{
	2023: {9, 29}, 2024: {9, 17}, 2025: {10, 6}, 2026: {9, 25},
	2027: {9, 15}, 2028: {10, 3}, 2029: {9, 22}, 2030: {9, 12},
}

var doubleNinthDate = map[int]struct{ month, day int }{
	2023: {10, 23}, 2024: {10, 11}, 2025: {10, 29}, 2026: {10, 18},
	2027: {10, 8}, 2028: {10, 26}, 2029: {10, 16}, 2030: {10, 5},
}

var qingmingDate = map[int]struct{ month, day int }{
	2023: {4, 5}, 2024: {4, 4}, 2025: {4, 4}, 2026: {4, 4},
	2027: {4, 5}, 2028: {4, 4}, 2029: {4, 4}, 2030: {4, 5},
}

// dongzhiDate is the winter solstice (冬至), the 22nd solar term,
// which falls on December 21 or 22 depending on the year.
var dongzhiDate = map[int]struct{ month, day int }{
	2023: {12, 22}, 2024: {12, 21}, 2025: {12, 21}, 2026: {12, 22},
	2027: {12, 22}, 2028: {12, 21}, 2029: {12, 21}, 2030: {12, 21},
}

// lichunDate is the start of spring (立春), the first solar term.
var lichunDate = map[int]struct{ month, day int }{
	2023: {2, 4}, 2024: {2, 4}, 2025: {2, 3}, 2026: {2, 4},
	2027: {2, 4}, 2028: {2, 4}, 2029: {2, 3}, 2030: {2, 4},
}

func (TableCalendar) Holiday(id string, year int) (int, int, bool) {
	switch id {
	case "spring_festival":
		d, ok := springFestivalEve[year]
		if !ok {
			return 0, 0, false
		}
		eve := time.Date(year, time.Month(d.month), d.day, 0, 0, 0, 0, time.UTC)
		first := eve.AddDate(0, 0, 1)
		return int(first.Month()), first.Day(), true
	case "lunar_new_year_eve":
		d, ok := springFestivalEve[year]
		return d.month, d.day, ok
	case "dragon_boat":
		d, ok := dragonBoatDate[year]
		return d.month, d.day, ok
	case "mid_autumn":
		d, ok := midAutumnDate[year]
		return d.month, d.day, ok
	case "double_ninth":
		d, ok := doubleNinthDate[year]
		return d.month, d.day, ok
	case "qingming":
		d, ok := qingmingDate[year]
		return d.month, d.day, ok
	default:
		return 0, 0, false
	}
}

func (TableCalendar) SolarTerm(name string, year int) (int, int, bool) {
	switch name {
	case "冬至":
		d, ok := dongzhiDate[year]
		return d.month, d.day, ok
	case "立春":
		d, ok := lichunDate[year]
		return d.month, d.day, ok
	case "清明":
		d, ok := qingmingDate[year]
		return d.month, d.day, ok
	default:
		return 0, 0, false
	}
}

// Gregorian is intentionally narrow: it covers only the lunar new
// year's first day of each table year (month=1, day=1, non-leap),
// which is enough to anchor "正月初一" without a full lunar-to-solar
// day-offset conversion table. Any other lunar month/day returns
// ok=false; a production Calendar would implement the full
// conversion.
func (TableCalendar) Gregorian(lunarYear, month, day int, isLeapMonth bool) (int, int, int, bool) {
	if isLeapMonth || month != 1 || day != 1 {
		return 0, 0, 0, false
	}
	d, ok := springFestivalEve[lunarYear]
	if !ok {
		return 0, 0, 0, false
	}
	eve := time.Date(lunarYear, time.Month(d.month), d.day, 0, 0, 0, 0, time.UTC)
	first := eve.AddDate(0, 0, 1)
	return first.Year(), int(first.Month()), first.Day(), true
}
