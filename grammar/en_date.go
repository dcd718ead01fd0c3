package grammar

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/az-ai-labs/timenlp/fst"
	"github.com/az-ai-labs/timenlp/tag"
)

var enMonthNames = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

var reENMonthDayYear = regexp.MustCompile(`(?i)\b([A-Za-z]+)\.?\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{4})\b`)
var reENDayMonthYear = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+([A-Za-z]+)\.?,?\s+(\d{4})\b`)
var reENISODate = regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`)
var reENSlashDate = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`)

// newENUTCFragment implements UTCTimeRule for English: "January 21,
// 2025", "21 January 2025", ISO "2025-01-21", and US-style
// "01/21/2025".
func newENUTCFragment() fst.Fragment {
	return fst.FragmentFunc{
		FragmentName: "en.utc",
		ScanFunc: func(s string) []fst.Match {
			var out []fst.Match
			out = append(out, scanENMonthDayYear(s)...)
			out = append(out, scanENDayMonthYear(s)...)
			out = append(out, scanENNumericISO(s)...)
			out = append(out, scanENNumericSlash(s)...)
			return out
		},
	}
}

func emitUTCDate(start, end, year, month, day int) fst.Match {
	y, mo, d := year, month, day
	return fst.Match{
		Start: start, End: end, Weight: weightUTC, Source: "en.utc",
		Emit: func() tag.Tag {
			return tag.Tag{Family: tag.UTC, Start: start, End: end, Payload: tag.UTCPayload{Year: y, Month: mo, Day: d}}
		},
	}
}

func scanENMonthDayYear(s string) []fst.Match {
	var out []fst.Match
	for _, m := range reENMonthDayYear.FindAllStringSubmatchIndex(s, -1) {
		month, ok := enMonthNames[strings.ToLower(s[m[2]:m[3]])]
		if !ok {
			continue
		}
		day, err1 := strconv.Atoi(s[m[4]:m[5]])
		year, err2 := strconv.Atoi(s[m[6]:m[7]])
		if err1 != nil || err2 != nil || day < 1 || day > 31 {
			continue
		}
		out = append(out, emitUTCDate(m[0], m[1], year, int(month), day))
	}
	return out
}

func scanENDayMonthYear(s string) []fst.Match {
	var out []fst.Match
	for _, m := range reENDayMonthYear.FindAllStringSubmatchIndex(s, -1) {
		day, err1 := strconv.Atoi(s[m[2]:m[3]])
		month, ok := enMonthNames[strings.ToLower(s[m[4]:m[5]])]
		year, err2 := strconv.Atoi(s[m[6]:m[7]])
		if err1 != nil || err2 != nil || !ok || day < 1 || day > 31 {
			continue
		}
		out = append(out, emitUTCDate(m[0], m[1], year, int(month), day))
	}
	return out
}

func scanENNumericISO(s string) []fst.Match {
	var out []fst.Match
	for _, m := range reENISODate.FindAllStringSubmatchIndex(s, -1) {
		year, err1 := strconv.Atoi(s[m[2]:m[3]])
		month, err2 := strconv.Atoi(s[m[4]:m[5]])
		day, err3 := strconv.Atoi(s[m[6]:m[7]])
		if err1 != nil || err2 != nil || err3 != nil || month < 1 || month > 12 || day < 1 || day > 31 {
			continue
		}
		out = append(out, emitUTCDate(m[0], m[1], year, month, day))
	}
	return out
}

// scanENNumericSlash parses MM/DD/YYYY, the conventional US reading.
func scanENNumericSlash(s string) []fst.Match {
	var out []fst.Match
	for _, m := range reENSlashDate.FindAllStringSubmatchIndex(s, -1) {
		month, err1 := strconv.Atoi(s[m[2]:m[3]])
		day, err2 := strconv.Atoi(s[m[4]:m[5]])
		year, err3 := strconv.Atoi(s[m[6]:m[7]])
		if err1 != nil || err2 != nil || err3 != nil || month < 1 || month > 12 || day < 1 || day > 31 {
			continue
		}
		out = append(out, emitUTCDate(m[0], m[1], year, month, day))
	}
	return out
}

// ---------- RelativeRule (en) ----------

var enRelPhrases = []struct {
	phrase string
	offset int
}{
	{"day after tomorrow", 2},
	{"day before yesterday", -2},
	{"today", 0},
	{"tomorrow", 1},
	{"yesterday", -1},
}

// newENRelativeFragment implements RelativeRule for English. Every
// phrase is searched for independently, so "day after tomorrow" and
// the "tomorrow" inside it are both reported; fst.SelectCover keeps
// the longer, earlier-starting one.
func newENRelativeFragment() fst.Fragment {
	return fst.FragmentFunc{
		FragmentName: "en.relative",
		ScanFunc: func(s string) []fst.Match {
			lower := strings.ToLower(s)
			var out []fst.Match
			for _, p := range enRelPhrases {
				phrase, offset := p.phrase, p.offset
				for i := 0; i+len(phrase) <= len(lower); i++ {
					if lower[i:i+len(phrase)] != phrase {
						continue
					}
					if !wordBoundary(lower, i, i+len(phrase)) {
						continue
					}
					start, end, off := i, i+len(phrase), offset
					out = append(out, fst.Match{
						Start: start, End: end, Weight: weightRel, Source: "en.relative",
						Emit: func() tag.Tag {
							return tag.Tag{Family: tag.REL, Start: start, End: end, Payload: tag.RelPayload{
								Unit: tag.RelDay, Offset: off,
							}}
						},
					})
				}
			}
			return out
		},
	}
}

func wordBoundary(s string, start, end int) bool {
	if start > 0 && isASCIIWordChar(s[start-1]) {
		return false
	}
	if end < len(s) && isASCIIWordChar(s[end]) {
		return false
	}
	return true
}

func isASCIIWordChar(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// ---------- WeekRule (en) ----------

var enWeekdayNames = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday, "tues": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday, "thurs": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

var weekdayAlt = `sunday|sun|monday|mon|tuesday|tue|tues|wednesday|wed|thursday|thu|thurs|friday|fri|saturday|sat`

var reENWeek = regexp.MustCompile(`(?i)\b(?:(this|next|last)\s+)?(` + weekdayAlt + `)\b`)

// reENWeekAfterNext matches "wednesday after next": the weekday two
// weeks out rather than the one next.
var reENWeekAfterNext = regexp.MustCompile(`(?i)\b(` + weekdayAlt + `)\s+after\s+next\b`)

// reENWeekNthOfMonth matches "first tuesday of october" and "last
// friday of the month".
var reENWeekNthOfMonth = regexp.MustCompile(`(?i)\b(first|second|third|fourth|fifth|last)\s+(` + weekdayAlt + `)\s+of\s+(?:the\s+month|([A-Za-z]+))\b`)

var enWeekOrdinals = map[string]int{
	"first": 1, "second": 2, "third": 3, "fourth": 4, "fifth": 5,
}

// newENWeekFragment implements WeekRule for English: a weekday name
// optionally preceded by this/next/last, "weekday after next", and
// "Nth weekday of <month|the month>".
func newENWeekFragment() fst.Fragment {
	return fst.FragmentFunc{
		FragmentName: "en.week",
		ScanFunc: func(s string) []fst.Match {
			var out []fst.Match
			out = append(out, scanENWeekNthOfMonth(s)...)
			out = append(out, scanENWeekAfterNext(s)...)
			out = append(out, scanENWeekSimple(s)...)
			return out
		},
	}
}

func scanENWeekSimple(s string) []fst.Match {
	var out []fst.Match
	for _, m := range reENWeek.FindAllStringSubmatchIndex(s, -1) {
		wd, ok := enWeekdayNames[strings.ToLower(s[m[4]:m[5]])]
		if !ok {
			continue
		}
		modifier := tag.ModThis
		n := 0
		if m[2] != -1 {
			switch strings.ToLower(s[m[2]:m[3]]) {
			case "next":
				modifier = tag.ModNext
				n = 1
			case "last":
				modifier = tag.ModLast
				n = 1
			}
		}
		start, end, weekday, mod, weeks := m[0], m[1], wd, modifier, n
		out = append(out, fst.Match{
			Start: start, End: end, Weight: weightWeek, Source: "en.week",
			Emit: func() tag.Tag {
				return tag.Tag{Family: tag.WEEK, Start: start, End: end, Payload: tag.WeekPayload{
					Weekday: weekday, Modifier: mod, N: weeks,
				}}
			},
		})
	}
	return out
}

// scanENWeekAfterNext resolves "weekday after next" as ModNext two
// weeks out, matching spec.md §4.2's example directly.
func scanENWeekAfterNext(s string) []fst.Match {
	var out []fst.Match
	for _, m := range reENWeekAfterNext.FindAllStringSubmatchIndex(s, -1) {
		wd, ok := enWeekdayNames[strings.ToLower(s[m[2]:m[3]])]
		if !ok {
			continue
		}
		start, end, weekday := m[0], m[1], wd
		out = append(out, fst.Match{
			Start: start, End: end, Weight: weightWeek, Source: "en.week",
			Emit: func() tag.Tag {
				return tag.Tag{Family: tag.WEEK, Start: start, End: end, Payload: tag.WeekPayload{
					Weekday: weekday, Modifier: tag.ModNext, N: 2,
				}}
			},
		})
	}
	return out
}

// scanENWeekNthOfMonth resolves "first tuesday of october" (explicit
// month) and "last friday of the month" (base's own month, Month left
// zero for resolve.weekDay to fill in).
func scanENWeekNthOfMonth(s string) []fst.Match {
	var out []fst.Match
	for _, m := range reENWeekNthOfMonth.FindAllStringSubmatchIndex(s, -1) {
		ord := strings.ToLower(s[m[2]:m[3]])
		wd, ok := enWeekdayNames[strings.ToLower(s[m[4]:m[5]])]
		if !ok {
			continue
		}
		var month time.Month
		if m[6] != -1 {
			mon, ok := enMonthNames[strings.ToLower(s[m[6]:m[7]])]
			if !ok {
				continue
			}
			month = mon
		}

		start, end, weekday, mo := m[0], m[1], wd, month
		if ord == "last" {
			out = append(out, fst.Match{
				Start: start, End: end, Weight: weightWeek, Source: "en.week",
				Emit: func() tag.Tag {
					return tag.Tag{Family: tag.WEEK, Start: start, End: end, Payload: tag.WeekPayload{
						Weekday: weekday, Modifier: tag.ModLastOf, Month: mo,
					}}
				},
			})
			continue
		}
		n, ok := enWeekOrdinals[ord]
		if !ok {
			continue
		}
		nth := n
		out = append(out, fst.Match{
			Start: start, End: end, Weight: weightWeek, Source: "en.week",
			Emit: func() tag.Tag {
				return tag.Tag{Family: tag.WEEK, Start: start, End: end, Payload: tag.WeekPayload{
					Weekday: weekday, Modifier: tag.ModNth, N: nth, Month: mo,
				}}
			},
		})
	}
	return out
}
