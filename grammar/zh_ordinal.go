package grammar

import (
	"regexp"

	"github.com/az-ai-labs/timenlp/fst"
	"github.com/az-ai-labs/timenlp/tag"
)

var reZHOrdinal = regexp.MustCompile(`第(\d{1,2}|[一二三四五六七八九十]{1,2})个?`)

// newZHOrdinalFragment emits standalone ordinal references ("第3个"),
// per spec.md §4.2's ORDINAL family. Chinese WeekRule has no nth-
// weekday-of-month construct (spec.md §4.2 names only the English
// "first tuesday of october" example for that), so this fragment never
// combines with tag.WEEK.
func newZHOrdinalFragment() fst.Fragment {
	return fst.FragmentFunc{
		FragmentName: "zh.ordinal",
		ScanFunc: func(s string) []fst.Match {
			var out []fst.Match
			for _, m := range reZHOrdinal.FindAllStringSubmatchIndex(s, -1) {
				numStr := s[m[2]:m[3]]
				n, ok := parseChineseNumeral(numStr)
				if !ok || n < 1 || n > 5 {
					continue
				}
				start, end, value := m[0], m[1], n
				out = append(out, fst.Match{
					Start: start, End: end, Weight: weightOrdinal, Source: "zh.ordinal",
					Emit: func() tag.Tag {
						return tag.Tag{Family: tag.ORDINAL, Start: start, End: end, Payload: tag.OrdinalPayload{N: value}}
					},
				})
			}
			return out
		},
	}
}
