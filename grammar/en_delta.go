package grammar

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/az-ai-labs/timenlp/fst"
	"github.com/az-ai-labs/timenlp/tag"
)

// reENDelta matches "in 3 days", "2 weeks ago", "a few days from now",
// "a couple of hours later". The leading "in" and the trailing
// ago/from-now/later are mutually exclusive in natural English but the
// regex accepts either position; at least one direction marker is
// required for a match, same as zh_delta.go's required suffix.
var reENDelta = regexp.MustCompile(
	`(?i)\b(in\s+)?(\d+|a few|a couple(?: of)?|several|few|couple)\s+(year|years|month|months|week|weeks|day|days|hour|hours|minute|minutes|second|seconds)\b(\s+(?:ago|from now|later))?`)

var enDeltaUnits = map[string]tag.DeltaUnit{
	"year": tag.DeltaYear, "years": tag.DeltaYear,
	"month": tag.DeltaMonth, "months": tag.DeltaMonth,
	"week": tag.DeltaWeek, "weeks": tag.DeltaWeek,
	"day": tag.DeltaDay, "days": tag.DeltaDay,
	"hour": tag.DeltaHour, "hours": tag.DeltaHour,
	"minute": tag.DeltaMinute, "minutes": tag.DeltaMinute,
	"second": tag.DeltaSecond, "seconds": tag.DeltaSecond,
}

// newENDeltaFragment implements DeltaRule for English.
func newENDeltaFragment() fst.Fragment {
	return fst.FragmentFunc{
		FragmentName: "en.delta",
		ScanFunc: func(s string) []fst.Match {
			var out []fst.Match
			for _, m := range reENDelta.FindAllStringSubmatchIndex(s, -1) {
				hasIn := m[2] != -1
				hasSuffix := m[8] != -1
				if !hasIn && !hasSuffix {
					continue
				}
				qty := strings.ToLower(s[m[4]:m[5]])
				unitStr := strings.ToLower(s[m[6]:m[7]])
				unit, ok := enDeltaUnits[unitStr]
				if !ok {
					continue
				}
				amount, fuzzy, ok := parseENQuantity(qty)
				if !ok {
					continue
				}
				future := true
				if hasSuffix {
					suffix := strings.ToLower(strings.TrimSpace(s[m[8]:m[9]]))
					future = suffix != "ago"
				}
				if !future {
					amount = -amount
				}
				start, end := m[0], m[1]
				u, amt, fz := unit, amount, fuzzy
				out = append(out, fst.Match{
					Start: start, End: end, Weight: weightDelta, Source: "en.delta",
					Emit: func() tag.Tag {
						return tag.Tag{Family: tag.DELTA, Start: start, End: end, Payload: tag.DeltaPayload{
							Unit: u, Amount: amt, Fuzzy: fz,
						}}
					},
				})
			}
			return out
		},
	}
}

func parseENQuantity(s string) (amount int, fuzzy bool, ok bool) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, false, true
	}
	if n, ok := fuzzyQuantifiers[s]; ok {
		return n, true, true
	}
	return 0, false, false
}
