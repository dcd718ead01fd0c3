package grammar

import (
	"strings"

	"github.com/az-ai-labs/timenlp/fst"
	"github.com/az-ai-labs/timenlp/tag"
)

// enHolidayNames maps a holiday phrase to the same stable ID space
// zh_holiday.go uses, so the holiday lookup table is shared across
// both languages wherever the occasion itself is shared (Christmas,
// New Year's Day) and diverges only where the occasion does
// (Thanksgiving has no Chinese counterpart, 春节 has no English one).
var enHolidayNames = map[string]string{
	"new year's day": "new_year",
	"new years day":  "new_year",
	"christmas":      "christmas",
	"christmas day":  "christmas",
	"thanksgiving":   "thanksgiving",
	"valentine's day": "valentines_day",
	"valentines day":  "valentines_day",
	"mother's day":    "mothers_day",
	"mothers day":     "mothers_day",
	"father's day":    "fathers_day",
	"fathers day":     "fathers_day",
	"halloween":       "halloween",
	"independence day": "independence_day",
	"labor day":        "labor_day",
	"memorial day":     "memorial_day",
}

const enNextPrefix = "next "

// newENHolidayFragment implements HolidayRule for English: a
// recognized holiday phrase, optionally preceded by "next".
func newENHolidayFragment() fst.Fragment {
	phrases := make([]string, 0, len(enHolidayNames))
	for p := range enHolidayNames {
		phrases = append(phrases, p)
	}
	return fst.FragmentFunc{
		FragmentName: "en.holiday",
		ScanFunc: func(s string) []fst.Match {
			lower := strings.ToLower(s)
			var out []fst.Match
			for _, phrase := range phrases {
				id := enHolidayNames[phrase]
				for i := 0; i+len(phrase) <= len(lower); i++ {
					if lower[i:i+len(phrase)] != phrase {
						continue
					}
					if !wordBoundary(lower, i, i+len(phrase)) {
						continue
					}
					matchStart := i
					next := false
					if i >= len(enNextPrefix) && lower[i-len(enNextPrefix):i] == enNextPrefix {
						matchStart = i - len(enNextPrefix)
						next = true
					}
					start, end, hid, isNext := matchStart, i+len(phrase), id, next
					out = append(out, fst.Match{
						Start: start, End: end, Weight: weightHoliday, Source: "en.holiday",
						Emit: func() tag.Tag {
							return tag.Tag{Family: tag.HOLIDAY, Start: start, End: end, Payload: tag.HolidayPayload{
								ID: hid, Next: isNext,
							}}
						},
					})
				}
			}
			return out
		},
	}
}
