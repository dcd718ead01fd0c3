package grammar

import (
	"github.com/az-ai-labs/timenlp/fst"
	"github.com/az-ai-labs/timenlp/tag"
)

var zhRangeOpenWords = []string{"从", "自"}
var zhRangeSepWords = []string{"到", "至", "~", "～", "-", "—"}
var zhRangeCloseWords = []string{"为止", "止"}

// newZHRangeFragment implements Between/RangeRule's boundary markers.
// The markers carry no payload of their own — merge stitches the
// date/clock tags on either side into an Interval once it sees the
// Open/Sep/Close sequence.
func newZHRangeFragment() fst.Fragment {
	return fst.FragmentFunc{
		FragmentName: "zh.range",
		ScanFunc: func(s string) []fst.Match {
			var out []fst.Match
			out = append(out, scanZHRangeWords(s, zhRangeOpenWords, tag.RangeOpen)...)
			out = append(out, scanZHRangeWords(s, zhRangeSepWords, tag.RangeSep)...)
			out = append(out, scanZHRangeWords(s, zhRangeCloseWords, tag.RangeClose)...)
			return out
		},
	}
}

func scanZHRangeWords(s string, words []string, family tag.Family) []fst.Match {
	var out []fst.Match
	for _, w := range words {
		for i := 0; i+len(w) <= len(s); i++ {
			if !literalAt(s, i, w) {
				continue
			}
			start, end, fam := i, i+len(w), family
			out = append(out, fst.Match{
				Start: start, End: end, Weight: weightRangeTok, Source: "zh.range",
				Emit: func() tag.Tag {
					return tag.Tag{Family: fam, Start: start, End: end}
				},
			})
		}
	}
	return out
}
