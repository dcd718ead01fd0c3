package grammar

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/az-ai-labs/timenlp/fst"
	"github.com/az-ai-labs/timenlp/tag"
)

// reENClock matches "9:30", "9:30:15", "9:30am", "9:30 pm", "9am", "9 pm".
var reENClock = regexp.MustCompile(`(?i)\b(\d{1,2})(?::(\d{2})(?::(\d{2}))?)?\s*(a\.?m\.?|p\.?m\.?)?\b`)

// newENClockFragment implements the CLOCK half of UTCTimeRule for
// English: colon-separated clock times with an optional am/pm marker.
// A bare hour with no colon and no am/pm marker is rejected — "9" on
// its own is far too common a false positive to treat as a time.
func newENClockFragment() fst.Fragment {
	return fst.FragmentFunc{
		FragmentName: "en.clock",
		ScanFunc: func(s string) []fst.Match {
			var out []fst.Match
			for _, m := range reENClock.FindAllStringSubmatchIndex(s, -1) {
				hasMinute := m[4] != -1
				hasAMPM := m[8] != -1
				if !hasMinute && !hasAMPM {
					continue
				}
				hour, err := strconv.Atoi(s[m[2]:m[3]])
				if err != nil {
					continue
				}
				minute := 0
				if hasMinute {
					minute, _ = strconv.Atoi(s[m[4]:m[5]])
				}
				second := 0
				hasSecond := m[6] != -1
				if hasSecond {
					second, _ = strconv.Atoi(s[m[6]:m[7]])
				}
				pm := false
				if hasAMPM {
					ampm := strings.ToLower(strings.ReplaceAll(s[m[8]:m[9]], ".", ""))
					pm = ampm == "pm"
					if hour == 12 {
						hour = 0
					}
				}
				if hour > 23 || minute > 59 || second > 59 {
					continue
				}
				start, end, h, mi, se, hs, hap, isPM := m[0], m[1], hour, minute, second, hasSecond, hasAMPM, pm
				out = append(out, fst.Match{
					Start: start, End: end, Weight: weightClock, Source: "en.clock",
					Emit: func() tag.Tag {
						return tag.Tag{Family: tag.CLOCK, Start: start, End: end, Payload: tag.ClockPayload{
							Hour: h, Minute: mi, Second: se, HasSecond: hs, HasAMPM: hap, PM: isPM,
						}}
					},
				})
			}
			return out
		},
	}
}
