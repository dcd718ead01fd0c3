package grammar

import (
	"github.com/az-ai-labs/timenlp/fst"
	"github.com/az-ai-labs/timenlp/tag"
)

// zhPeriods enumerates the day-part words PeriodRule recognizes. Each
// word's hour bounds come from periodHours, keyed by its PeriodKind,
// so e.g. "晚上" and "夜里" (both PeriodEvening/PeriodNight, which
// spec.md §4.2 gives the same window) resolve identically.
var zhPeriods = []struct {
	word string
	kind tag.PeriodKind
}{
	{"凌晨", tag.PeriodDawn},
	{"清晨", tag.PeriodDawn},
	{"早上", tag.PeriodMorning},
	{"早晨", tag.PeriodMorning},
	{"上午", tag.PeriodMorning},
	{"中午", tag.PeriodNoon},
	{"正午", tag.PeriodNoon},
	{"下午", tag.PeriodAfternoon},
	{"午后", tag.PeriodAfternoon},
	{"傍晚", tag.PeriodEvening},
	{"晚上", tag.PeriodEvening},
	{"夜里", tag.PeriodNight},
	{"深夜", tag.PeriodNight},
	{"半夜", tag.PeriodMidnight},
	{"午夜", tag.PeriodMidnight},
}

// newZHPeriodFragment implements PeriodRule for Chinese day-part words.
func newZHPeriodFragment() fst.Fragment {
	return fst.FragmentFunc{
		FragmentName: "zh.period",
		ScanFunc: func(s string) []fst.Match {
			var out []fst.Match
			for _, p := range zhPeriods {
				sh, eh := periodBounds(p.kind)
				for i := 0; i+len(p.word) <= len(s); i++ {
					if !literalAt(s, i, p.word) {
						continue
					}
					start, end, kind := i, i+len(p.word), p.kind
					out = append(out, fst.Match{
						Start: start, End: end, Weight: weightPeriod, Source: "zh.period",
						Emit: func() tag.Tag {
							return tag.Tag{Family: tag.PERIOD, Start: start, End: end, Payload: tag.PeriodPayload{
								Kind: kind, StartH: sh, EndH: eh,
							}}
						},
					})
				}
			}
			return out
		},
	}
}
