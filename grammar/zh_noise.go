package grammar

import (
	"regexp"

	"github.com/az-ai-labs/timenlp/fst"
	"github.com/az-ai-labs/timenlp/tag"
)

// reZHAspectRatio matches common screen/image aspect ratios ("16:9",
// "4:3") and tags them NOISE, so postprocess drops any tag whose span
// lies inside one. The clock patterns in zh_clock.go need two-digit
// minutes, so these ratios are not read as clock times in any case.
var reZHAspectRatio = regexp.MustCompile(`\b(?:16:9|4:3|21:9|3:2|1:1)\b`)

// newZHNoiseFragment implements disambiguation fragments that exist
// purely to out-compete a real family's over-eager match on known
// false-positive idioms.
func newZHNoiseFragment() fst.Fragment {
	return fst.FragmentFunc{
		FragmentName: "zh.noise",
		ScanFunc: func(s string) []fst.Match {
			var out []fst.Match
			for _, m := range reZHAspectRatio.FindAllStringIndex(s, -1) {
				start, end := m[0], m[1]
				out = append(out, fst.Match{
					Start: start, End: end, Weight: weightNoise, Source: "zh.noise",
					Emit: func() tag.Tag {
						return tag.Tag{Family: tag.NOISE, Start: start, End: end}
					},
				})
			}
			return out
		},
	}
}
