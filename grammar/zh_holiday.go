package grammar

import (
	"github.com/az-ai-labs/timenlp/fst"
	"github.com/az-ai-labs/timenlp/tag"
)

// zhHolidayNames maps a holiday literal to the stable ID the holiday
// package resolves against. IDs intentionally say nothing about
// whether the date is fixed or lunar-anchored — that distinction lives
// entirely inside the holiday lookup table.
var zhHolidayNames = map[string]string{
	"元旦":  "new_year",
	"春节":  "spring_festival",
	"除夕":  "lunar_new_year_eve",
	"劳动节": "labor_day",
	"五一":  "labor_day",
	"国庆节": "national_day",
	"国庆":  "national_day",
	"妇女节": "womens_day",
	"儿童节": "childrens_day",
	"青年节": "youth_day",
	"建军节": "army_day",
	"清明节": "qingming",
	"清明":  "qingming",
	"端午节": "dragon_boat",
	"端午":  "dragon_boat",
	"中秋节": "mid_autumn",
	"中秋":  "mid_autumn",
	"重阳节": "double_ninth",
	"圣诞节": "christmas",
	"情人节": "valentines_day",
	"母亲节": "mothers_day",
	"父亲节": "fathers_day",
	"冬至":  "dongzhi",
	"立春":  "lichun",
}

var zhNextHolidayPrefixes = []string{"下一个", "下个"}

// newZHHolidayFragment implements HolidayRule: a recognized holiday
// name, optionally prefixed with "下一个"/"下个" to request the next
// future occurrence rather than the occurrence in the base year.
func newZHHolidayFragment() fst.Fragment {
	return fst.FragmentFunc{
		FragmentName: "zh.holiday",
		ScanFunc: func(s string) []fst.Match {
			var out []fst.Match
			for name, id := range zhHolidayNames {
				for i := 0; i+len(name) <= len(s); i++ {
					if !literalAt(s, i, name) {
						continue
					}
					matchStart := i
					next := false
					for _, prefix := range zhNextHolidayPrefixes {
						ps := i - len(prefix)
						if ps >= 0 && literalAt(s, ps, prefix) {
							matchStart = ps
							next = true
							break
						}
					}
					start, end, hid, isNext := matchStart, i+len(name), id, next
					out = append(out, fst.Match{
						Start: start, End: end, Weight: weightHoliday, Source: "zh.holiday",
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
