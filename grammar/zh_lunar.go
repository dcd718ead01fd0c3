package grammar

import (
	"regexp"
	"strings"

	"github.com/az-ai-labs/timenlp/fst"
	"github.com/az-ai-labs/timenlp/tag"
)

// reZHLunar matches traditional lunar month/day expressions such as
// "农历三月初五", "闰四月十五", "腊月三十". The leading calendar marker
// and leap-month flag are both optional; Chinese speakers routinely
// drop "农历" once the lunar context is already established.
var reZHLunar = regexp.MustCompile(
	`(农历|阴历)?(闰)?([一二两三四五六七八九十]{1,2}|正|腊)月(初[一二三四五六七八九十]|二十|三十|廿[一二三四五六七八九]|十[一二三四五六七八九])(?:日|号)?`)

// zhLunarMonthNames maps the named lunar months to their number.
var zhLunarMonthNames = map[string]int{"正": 1, "腊": 12}

// newZHLunarFragment implements LunarRule: lunar calendar month/day
// references without a solar year attached (HasYear is always false —
// a bare lunar date is anchored to the base instant's lunar year by
// the resolver).
func newZHLunarFragment() fst.Fragment {
	return fst.FragmentFunc{
		FragmentName: "zh.lunar",
		ScanFunc: func(s string) []fst.Match {
			var out []fst.Match
			for _, m := range reZHLunar.FindAllStringSubmatchIndex(s, -1) {
				leap := m[4] != -1
				monthStr := s[m[6]:m[7]]
				dayStr := s[m[8]:m[9]]

				month, ok := zhLunarMonthNames[monthStr]
				if !ok {
					month, ok = parseChineseNumeral(monthStr)
				}
				if !ok || month < 1 || month > 12 {
					continue
				}
				day, ok := parseLunarDay(dayStr)
				if !ok || day < 1 || day > 30 {
					continue
				}

				start, end, mo, d, lp := m[0], m[1], month, day, leap
				out = append(out, fst.Match{
					Start: start, End: end, Weight: weightLunar, Source: "zh.lunar",
					Emit: func() tag.Tag {
						return tag.Tag{Family: tag.LUNAR, Start: start, End: end, Payload: tag.LunarPayload{
							HasYear: false, Month: mo, Day: d, IsLeapMonth: lp,
						}}
					},
				})
			}
			return out
		},
	}
}

// parseLunarDay parses a lunar-calendar day word: "初X" for days 1-10,
// a bare numeral for 11-19, "二十"/"廿X" for 20-29, "三十" for 30.
func parseLunarDay(s string) (int, bool) {
	if strings.HasPrefix(s, "初") {
		rest := []rune(strings.TrimPrefix(s, "初"))
		if len(rest) == 1 && rest[0] == '十' {
			return 10, true
		}
		if len(rest) == 1 {
			v, ok := chineseDigits[rest[0]]
			return v, ok
		}
		return 0, false
	}
	return parseChineseNumeral(s)
}
