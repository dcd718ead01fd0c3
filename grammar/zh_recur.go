package grammar

import (
	"regexp"

	"github.com/az-ai-labs/timenlp/fst"
	"github.com/az-ai-labs/timenlp/tag"
)

var reZHRecurDay = regexp.MustCompile(`每天|每日`)
var reZHRecurWeek = regexp.MustCompile(`每(星期|周|禮拜|礼拜)([一二三四五六日天])`)
var reZHRecurMonthDay = regexp.MustCompile(`每月(\d{1,2})(?:日|号)`)
var reZHRecurYearDate = regexp.MustCompile(`每年(\d{1,2})月(\d{1,2})日`)

// newZHRecurFragment implements RecurringRule: a "每" ("every")
// prefix wrapping a day, weekday, or month/day inner expression.
func newZHRecurFragment() fst.Fragment {
	return fst.FragmentFunc{
		FragmentName: "zh.recur",
		ScanFunc: func(s string) []fst.Match {
			var out []fst.Match

			for _, m := range reZHRecurDay.FindAllStringIndex(s, -1) {
				start, end := m[0], m[1]
				out = append(out, fst.Match{
					Start: start, End: end, Weight: weightRecur, Source: "zh.recur",
					Emit: func() tag.Tag {
						inner := tag.Tag{Family: tag.REL, Start: start, End: end, Payload: tag.RelPayload{Unit: tag.RelDay, Offset: 0}}
						return tag.Tag{Family: tag.RECUR, Start: start, End: end, Payload: tag.RecurPayload{Inner: &inner}}
					},
				})
			}

			for _, m := range reZHRecurWeek.FindAllStringSubmatchIndex(s, -1) {
				wdChar := []rune(s[m[4]:m[5]])[0]
				wd, ok := zhWeekdayChar[wdChar]
				if !ok {
					continue
				}
				start, end, weekday := m[0], m[1], wd
				out = append(out, fst.Match{
					Start: start, End: end, Weight: weightRecur, Source: "zh.recur",
					Emit: func() tag.Tag {
						inner := tag.Tag{Family: tag.WEEK, Start: start, End: end, Payload: tag.WeekPayload{
							Weekday: weekday, Modifier: tag.ModThis,
						}}
						return tag.Tag{Family: tag.RECUR, Start: start, End: end, Payload: tag.RecurPayload{Inner: &inner}}
					},
				})
			}

			for _, m := range reZHRecurMonthDay.FindAllStringSubmatchIndex(s, -1) {
				day, ok := parseChineseNumeral(s[m[2]:m[3]])
				if !ok || day < 1 || day > 31 {
					continue
				}
				start, end, d := m[0], m[1], day
				out = append(out, fst.Match{
					Start: start, End: end, Weight: weightRecur, Source: "zh.recur",
					Emit: func() tag.Tag {
						inner := tag.Tag{Family: tag.UTC, Start: start, End: end, Payload: tag.UTCPayload{Day: d}}
						return tag.Tag{Family: tag.RECUR, Start: start, End: end, Payload: tag.RecurPayload{Inner: &inner}}
					},
				})
			}

			for _, m := range reZHRecurYearDate.FindAllStringSubmatchIndex(s, -1) {
				month, ok1 := parseChineseNumeral(s[m[2]:m[3]])
				day, ok2 := parseChineseNumeral(s[m[4]:m[5]])
				if !ok1 || !ok2 || month < 1 || month > 12 || day < 1 || day > 31 {
					continue
				}
				start, end, mo, d := m[0], m[1], month, day
				out = append(out, fst.Match{
					Start: start, End: end, Weight: weightRecur, Source: "zh.recur",
					Emit: func() tag.Tag {
						inner := tag.Tag{Family: tag.UTC, Start: start, End: end, Payload: tag.UTCPayload{Month: mo, Day: d}}
						return tag.Tag{Family: tag.RECUR, Start: start, End: end, Payload: tag.RecurPayload{Inner: &inner}}
					},
				})
			}

			return out
		},
	}
}
