package grammar

import (
	"regexp"
	"strconv"
	"time"

	"github.com/az-ai-labs/timenlp/fst"
	"github.com/az-ai-labs/timenlp/tag"
)

// ---------- UTCTimeRule (zh) ----------

var (
	reZHFullDate = regexp.MustCompile(`(\d{4})年(\d{1,2})月(\d{1,2})日(?:\s*(\d{1,2})[:：](\d{2})(?:[:：](\d{2}))?)?`)
	reZHISODate  = regexp.MustCompile(`(\d{4})-(\d{1,2})-(\d{1,2})`)
	reZHSlash    = regexp.MustCompile(`(\d{4})/(\d{1,2})/(\d{1,2})`)
)

// newZHUTCFragment implements UTCTimeRule: strict numeric dates
// (YYYY-MM-DD, YYYY/MM/DD, YYYY年M月D日) with an optional HH:MM[:SS].
func newZHUTCFragment() fst.Fragment {
	return fst.FragmentFunc{
		FragmentName: "zh.utc",
		ScanFunc: func(s string) []fst.Match {
			var out []fst.Match
			out = append(out, scanZHFullDate(s)...)
			out = append(out, scanZHNumericDate(s, reZHISODate)...)
			out = append(out, scanZHNumericDate(s, reZHSlash)...)
			return out
		},
	}
}

func scanZHFullDate(s string) []fst.Match {
	var out []fst.Match
	for _, m := range reZHFullDate.FindAllStringSubmatchIndex(s, -1) {
		year, month, day, ok := parseYMD(s[m[2]:m[3]], s[m[4]:m[5]], s[m[6]:m[7]])
		if !ok {
			continue
		}
		hasTime := m[8] != -1
		hour, minute, second := 0, 0, 0
		if hasTime {
			hour, _ = strconv.Atoi(s[m[8]:m[9]])
			minute, _ = strconv.Atoi(s[m[10]:m[11]])
			if m[12] != -1 {
				second, _ = strconv.Atoi(s[m[12]:m[13]])
			}
			if hour > 23 || minute > 59 {
				continue
			}
		}
		start, end := m[0], m[1]
		y, mo, d, h, mi, se, ht := year, month, day, hour, minute, second, hasTime
		out = append(out, fst.Match{
			Start: start, End: end, Weight: weightUTC, Source: "zh.utc",
			Emit: func() tag.Tag {
				return tag.Tag{Family: tag.UTC, Start: start, End: end, Payload: tag.UTCPayload{
					Year: y, Month: mo, Day: d, Hour: h, Minute: mi, Second: se, HasTime: ht,
				}}
			},
		})
	}
	return out
}

func scanZHNumericDate(s string, re *regexp.Regexp) []fst.Match {
	var out []fst.Match
	for _, m := range re.FindAllStringSubmatchIndex(s, -1) {
		year, month, day, ok := parseYMD(s[m[2]:m[3]], s[m[4]:m[5]], s[m[6]:m[7]])
		if !ok {
			continue
		}
		start, end, y, mo, d := m[0], m[1], year, month, day
		out = append(out, fst.Match{
			Start: start, End: end, Weight: weightUTC, Source: "zh.utc",
			Emit: func() tag.Tag {
				return tag.Tag{Family: tag.UTC, Start: start, End: end, Payload: tag.UTCPayload{Year: y, Month: mo, Day: d}}
			},
		})
	}
	return out
}

// parseYMD validates year/month/day strings and rejects impossible
// calendar dates (e.g. Feb 30) by checking that time.Date does not
// normalize the day/month away — the same check the teacher's
// datetime.parseDateParts uses.
func parseYMD(yearStr, monthStr, dayStr string) (year, month, day int, ok bool) {
	year, err1 := strconv.Atoi(yearStr)
	month, err2 := strconv.Atoi(monthStr)
	day, err3 := strconv.Atoi(dayStr)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, false
	}
	if year < 1 || year > 9999 || month < 1 || month > 12 || day < 1 || day > 31 {
		return 0, 0, 0, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month {
		return 0, 0, 0, false
	}
	return year, month, day, true
}

// ---------- RelativeRule (zh) ----------

// zhDayOffsets maps single- and multi-character relative-day words to a
// signed day offset from base.
var zhDayOffsets = map[string]int{
	"今天": 0, "今日": 0, "本日": 0,
	"明天": 1, "明日": 1,
	"后天": 2, "後天": 2,
	"大后天": 3, "大後天": 3,
	"昨天": -1, "昨日": -1,
	"前天": -2,
	"大前天": -3,
}

// newZHRelativeFragment implements RelativeRule: day-level relative
// references, including multi-character literals like "大后天".
func newZHRelativeFragment() fst.Fragment {
	words := make([]string, 0, len(zhDayOffsets))
	for w := range zhDayOffsets {
		words = append(words, w)
	}
	return fst.FragmentFunc{
		FragmentName: "zh.relative",
		ScanFunc: func(s string) []fst.Match {
			var out []fst.Match
			for _, w := range words {
				offset := zhDayOffsets[w]
				for i := 0; i+len(w) <= len(s); i++ {
					if !literalAt(s, i, w) {
						continue
					}
					start, end, off := i, i+len(w), offset
					out = append(out, fst.Match{
						Start: start, End: end, Weight: weightRel, Source: "zh.relative",
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

// ---------- WeekRule (zh) ----------

var zhWeekdayChar = map[rune]time.Weekday{
	'一': time.Monday, '二': time.Tuesday, '三': time.Wednesday,
	'四': time.Thursday, '五': time.Friday, '六': time.Saturday,
	'日': time.Sunday, '天': time.Sunday,
}

// zhWeekModifierOffsets maps a modifier prefix to a signed week offset; "这"/
// "本" is ModThis (offset 0), "下下下" chains to +3, "上上" to -2.
var zhWeekModifierOffsets = []struct {
	prefix string
	offset int
}{
	{"下下下", 3}, {"上上上", -3}, {"下下", 2}, {"上上", -2},
	{"下", 1}, {"上", -1}, {"这", 0}, {"本", 0},
}

var zhWeekStems = []string{"星期", "周", "禮拜", "礼拜"}

// newZHWeekFragment implements WeekRule: "周X"/"星期X"/"礼拜X" with an
// optional this/next/last/chained-next/chained-last prefix.
func newZHWeekFragment() fst.Fragment {
	return fst.FragmentFunc{
		FragmentName: "zh.week",
		ScanFunc: func(s string) []fst.Match {
			var out []fst.Match
			for _, stem := range zhWeekStems {
				for i := 0; i+len(stem) <= len(s); i++ {
					if !literalAt(s, i, stem) {
						continue
					}
					wdPos := i + len(stem)
					r, size := decodeRuneAt(s, wdPos)
					wd, ok := zhWeekdayChar[r]
					if !ok {
						continue
					}
					end := wdPos + size
					matchStart := i
					var offset int
					hasModifier := false
					for _, mo := range zhWeekModifierOffsets {
						ps := i - len(mo.prefix)
						if ps >= 0 && literalAt(s, ps, mo.prefix) {
							matchStart = ps
							offset = mo.offset
							hasModifier = true
							break
						}
					}
					modifier := tag.ModThis
					switch {
					case !hasModifier:
						modifier = tag.ModThis
					case offset > 0:
						modifier = tag.ModNext
					case offset < 0:
						modifier = tag.ModLast
					}
					n := offset
					if n < 0 {
						n = -n
					}
					start, endSpan, weekday, weeks, mod := matchStart, end, wd, n, modifier
					out = append(out, fst.Match{
						Start: start, End: endSpan, Weight: weightWeek, Source: "zh.week",
						Emit: func() tag.Tag {
							return tag.Tag{Family: tag.WEEK, Start: start, End: endSpan, Payload: tag.WeekPayload{
								Weekday: weekday, Modifier: mod, N: weeks,
							}}
						},
					})
				}
			}
			return out
		},
	}
}

func decodeRuneAt(s string, i int) (rune, int) {
	if i >= len(s) {
		return 0, 0
	}
	for j, r := range s[i:] {
		if j == 0 {
			return r, len(string(r))
		}
	}
	return 0, 0
}
