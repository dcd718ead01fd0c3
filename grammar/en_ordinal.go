package grammar

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/az-ai-labs/timenlp/fst"
	"github.com/az-ai-labs/timenlp/tag"
)

var reENOrdinalNumeric = regexp.MustCompile(`(?i)\bthe\s+(\d{1,2})(?:st|nd|rd|th)\b`)

var enOrdinalWords = map[string]int{
	"first": 1, "second": 2, "third": 3, "fourth": 4, "fifth": 5,
}

var reENOrdinalWord = regexp.MustCompile(`(?i)\b(first|second|third|fourth|fifth)\b`)

// newENOrdinalFragment emits standalone ordinal references ("the 3rd",
// "the third") that carry no date of their own, per spec.md §4.2's
// ORDINAL family. WeekRule's own "Nth weekday of the month" construct
// is built directly in grammar.newENWeekFragment instead of composing
// with this fragment's output.
func newENOrdinalFragment() fst.Fragment {
	return fst.FragmentFunc{
		FragmentName: "en.ordinal",
		ScanFunc: func(s string) []fst.Match {
			var out []fst.Match
			for _, m := range reENOrdinalNumeric.FindAllStringSubmatchIndex(s, -1) {
				n, err := strconv.Atoi(s[m[2]:m[3]])
				if err != nil || n < 1 || n > 5 {
					continue
				}
				start, end, value := m[0], m[1], n
				out = append(out, fst.Match{
					Start: start, End: end, Weight: weightOrdinal, Source: "en.ordinal",
					Emit: func() tag.Tag {
						return tag.Tag{Family: tag.ORDINAL, Start: start, End: end, Payload: tag.OrdinalPayload{N: value}}
					},
				})
			}
			for _, m := range reENOrdinalWord.FindAllStringSubmatchIndex(s, -1) {
				n, ok := enOrdinalWords[strings.ToLower(s[m[2]:m[3]])]
				if !ok {
					continue
				}
				start, end, value := m[0], m[1], n
				out = append(out, fst.Match{
					Start: start, End: end, Weight: weightOrdinal, Source: "en.ordinal",
					Emit: func() tag.Tag {
						return tag.Tag{Family: tag.ORDINAL, Start: start, End: end, Payload: tag.OrdinalPayload{N: value}}
					},
				})
			}
			return out
		},
	}
}
