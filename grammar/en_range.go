package grammar

import (
	"regexp"

	"github.com/az-ai-labs/timenlp/fst"
	"github.com/az-ai-labs/timenlp/tag"
)

var reENRangeOpen = regexp.MustCompile(`(?i)\b(from|between)\b`)
var reENRangeSep = regexp.MustCompile(`(?i)\b(to|and|through|till|until)\b|--?|–|—`)

// newENRangeFragment implements Between/RangeRule's boundary markers
// for English: "from X to Y" and "between X and Y".
func newENRangeFragment() fst.Fragment {
	return fst.FragmentFunc{
		FragmentName: "en.range",
		ScanFunc: func(s string) []fst.Match {
			var out []fst.Match
			for _, m := range reENRangeOpen.FindAllStringIndex(s, -1) {
				start, end := m[0], m[1]
				out = append(out, fst.Match{
					Start: start, End: end, Weight: weightRangeTok, Source: "en.range",
					Emit: func() tag.Tag { return tag.Tag{Family: tag.RangeOpen, Start: start, End: end} },
				})
			}
			for _, m := range reENRangeSep.FindAllStringIndex(s, -1) {
				start, end := m[0], m[1]
				out = append(out, fst.Match{
					Start: start, End: end, Weight: weightRangeTok, Source: "en.range",
					Emit: func() tag.Tag { return tag.Tag{Family: tag.RangeSep, Start: start, End: end} },
				})
			}
			return out
		},
	}
}
