package grammar

import (
	"regexp"
	"strings"

	"github.com/az-ai-labs/timenlp/fst"
	"github.com/az-ai-labs/timenlp/tag"
)

var enPeriods = []struct {
	phrase string
	kind   tag.PeriodKind
}{
	{"dawn", tag.PeriodDawn},
	{"early morning", tag.PeriodDawn},
	{"morning", tag.PeriodMorning},
	{"noon", tag.PeriodNoon},
	{"midday", tag.PeriodNoon},
	{"afternoon", tag.PeriodAfternoon},
	{"evening", tag.PeriodEvening},
	{"tonight", tag.PeriodEvening},
	{"night", tag.PeriodNight},
	{"midnight", tag.PeriodMidnight},
}

var reENPeriodWord = regexp.MustCompile(`(?i)\b(dawn|early morning|morning|noon|midday|afternoon|evening|tonight|night|midnight)\b`)

// newENPeriodFragment implements PeriodRule for English day-part
// words. Every phrase's hour bounds come from periodHours, keyed by
// its PeriodKind, so "tonight" and "evening" always resolve to the
// same window.
func newENPeriodFragment() fst.Fragment {
	byPhrase := make(map[string]tag.PeriodKind, len(enPeriods))
	for _, p := range enPeriods {
		byPhrase[p.phrase] = p.kind
	}
	return fst.FragmentFunc{
		FragmentName: "en.period",
		ScanFunc: func(s string) []fst.Match {
			var out []fst.Match
			for _, m := range reENPeriodWord.FindAllStringSubmatchIndex(s, -1) {
				phrase := strings.ToLower(s[m[2]:m[3]])
				kind, ok := byPhrase[phrase]
				if !ok {
					continue
				}
				sh, eh := periodBounds(kind)
				start, end, k := m[0], m[1], kind
				out = append(out, fst.Match{
					Start: start, End: end, Weight: weightPeriod, Source: "en.period",
					Emit: func() tag.Tag {
						return tag.Tag{Family: tag.PERIOD, Start: start, End: end, Payload: tag.PeriodPayload{
							Kind: k, StartH: sh, EndH: eh,
						}}
					},
				})
			}
			return out
		},
	}
}
