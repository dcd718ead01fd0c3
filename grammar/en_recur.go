package grammar

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/az-ai-labs/timenlp/fst"
	"github.com/az-ai-labs/timenlp/tag"
)

var reENRecurDay = regexp.MustCompile(`(?i)\bevery\s+day\b`)
var reENRecurWeek = regexp.MustCompile(`(?i)\bevery\s+(sunday|sun|monday|mon|tuesday|tue|tues|wednesday|wed|thursday|thu|thurs|friday|fri|saturday|sat)\b`)
var reENRecurMonthDay = regexp.MustCompile(`(?i)\bevery\s+month\s+on\s+the\s+(\d{1,2})(?:st|nd|rd|th)?\b`)

// newENRecurFragment implements RecurringRule for English: "every
// day", "every Monday", "every month on the 5th".
func newENRecurFragment() fst.Fragment {
	return fst.FragmentFunc{
		FragmentName: "en.recur",
		ScanFunc: func(s string) []fst.Match {
			var out []fst.Match

			for _, m := range reENRecurDay.FindAllStringIndex(s, -1) {
				start, end := m[0], m[1]
				out = append(out, fst.Match{
					Start: start, End: end, Weight: weightRecur, Source: "en.recur",
					Emit: func() tag.Tag {
						inner := tag.Tag{Family: tag.REL, Start: start, End: end, Payload: tag.RelPayload{Unit: tag.RelDay, Offset: 0}}
						return tag.Tag{Family: tag.RECUR, Start: start, End: end, Payload: tag.RecurPayload{Inner: &inner}}
					},
				})
			}

			for _, m := range reENRecurWeek.FindAllStringSubmatchIndex(s, -1) {
				wd, ok := enWeekdayNames[strings.ToLower(s[m[2]:m[3]])]
				if !ok {
					continue
				}
				start, end, weekday := m[0], m[1], wd
				out = append(out, fst.Match{
					Start: start, End: end, Weight: weightRecur, Source: "en.recur",
					Emit: func() tag.Tag {
						inner := tag.Tag{Family: tag.WEEK, Start: start, End: end, Payload: tag.WeekPayload{
							Weekday: weekday, Modifier: tag.ModThis,
						}}
						return tag.Tag{Family: tag.RECUR, Start: start, End: end, Payload: tag.RecurPayload{Inner: &inner}}
					},
				})
			}

			for _, m := range reENRecurMonthDay.FindAllStringSubmatchIndex(s, -1) {
				day, err := strconv.Atoi(s[m[2]:m[3]])
				if err != nil || day < 1 || day > 31 {
					continue
				}
				start, end, d := m[0], m[1], day
				out = append(out, fst.Match{
					Start: start, End: end, Weight: weightRecur, Source: "en.recur",
					Emit: func() tag.Tag {
						inner := tag.Tag{Family: tag.UTC, Start: start, End: end, Payload: tag.UTCPayload{Day: d}}
						return tag.Tag{Family: tag.RECUR, Start: start, End: end, Payload: tag.RecurPayload{Inner: &inner}}
					},
				})
			}

			return out
		},
	}
}
