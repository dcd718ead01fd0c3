package grammar

import (
	"regexp"
	"strconv"

	"github.com/az-ai-labs/timenlp/fst"
	"github.com/az-ai-labs/timenlp/tag"
)

// reZHColonClock matches "9:30", "09:30:00" — digits-only clock time.
var reZHColonClock = regexp.MustCompile(`(\d{1,2})[:：](\d{2})(?:[:：](\d{2}))?`)

// reZHDianClock matches "9点", "9点30分", "9点30分15秒", "9点半".
var reZHDianClock = regexp.MustCompile(`(\d{1,2})点(半|(?:(\d{1,2})分(?:(\d{1,2})秒)?)?)`)

// newZHClockFragment implements the CLOCK half of spec.md §4.2's
// UTCTimeRule/clock matching for Chinese: explicit "H:MM[:SS]" and
// "H点[M分[S秒]]"/"H点半" forms. am/pm disambiguation is left to the
// merger via an adjacent PERIOD tag, per spec.md §4.5's CLOCK policy.
func newZHClockFragment() fst.Fragment {
	return fst.FragmentFunc{
		FragmentName: "zh.clock",
		ScanFunc: func(s string) []fst.Match {
			var out []fst.Match
			for _, m := range reZHColonClock.FindAllStringSubmatchIndex(s, -1) {
				hour, mErr := strconv.Atoi(s[m[2]:m[3]])
				minute, _ := strconv.Atoi(s[m[4]:m[5]])
				if mErr != nil || hour > 23 || minute > 59 {
					continue
				}
				second := 0
				hasSecond := m[6] != -1
				if hasSecond {
					second, _ = strconv.Atoi(s[m[6]:m[7]])
				}
				start, end, h, mi, se, hs := m[0], m[1], hour, minute, second, hasSecond
				out = append(out, fst.Match{
					Start: start, End: end, Weight: weightClock, Source: "zh.clock",
					Emit: func() tag.Tag {
						return tag.Tag{Family: tag.CLOCK, Start: start, End: end, Payload: tag.ClockPayload{
							Hour: h, Minute: mi, Second: se, HasSecond: hs,
						}}
					},
				})
			}
			for _, m := range reZHDianClock.FindAllStringSubmatchIndex(s, -1) {
				hour, err := strconv.Atoi(s[m[2]:m[3]])
				if err != nil || hour > 23 {
					continue
				}
				minute, second := 0, 0
				if m[4] != -1 && s[m[4]:m[5]] == "半" {
					minute = 30
				} else if m[6] != -1 {
					minute, _ = strconv.Atoi(s[m[6]:m[7]])
					if m[8] != -1 {
						second, _ = strconv.Atoi(s[m[8]:m[9]])
					}
				}
				if minute > 59 || second > 59 {
					continue
				}
				start, end, h, mi, se := m[0], m[1], hour, minute, second
				out = append(out, fst.Match{
					Start: start, End: end, Weight: weightClock, Source: "zh.clock",
					Emit: func() tag.Tag {
						return tag.Tag{Family: tag.CLOCK, Start: start, End: end, Payload: tag.ClockPayload{
							Hour: h, Minute: mi, Second: se, HasSecond: se != 0,
						}}
					},
				})
			}
			return out
		},
	}
}
