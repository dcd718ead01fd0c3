package grammar

import (
	"regexp"

	"github.com/az-ai-labs/timenlp/fst"
	"github.com/az-ai-labs/timenlp/tag"
)

// reENAspectRatio mirrors zh_noise.go's NOISE tagging of aspect-ratio
// digit pairs. en.clock's "H:MM" pattern needs two-digit minutes, so
// these ratios are not read as clock times in any case.
var reENAspectRatio = regexp.MustCompile(`\b(?:16:9|4:3|21:9|3:2|1:1)\b`)

// newENNoiseFragment implements English disambiguation fragments.
func newENNoiseFragment() fst.Fragment {
	return fst.FragmentFunc{
		FragmentName: "en.noise",
		ScanFunc: func(s string) []fst.Match {
			var out []fst.Match
			for _, m := range reENAspectRatio.FindAllStringIndex(s, -1) {
				start, end := m[0], m[1]
				out = append(out, fst.Match{
					Start: start, End: end, Weight: weightNoise, Source: "en.noise",
					Emit: func() tag.Tag { return tag.Tag{Family: tag.NOISE, Start: start, End: end} },
				})
			}
			return out
		},
	}
}
