package grammar

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/az-ai-labs/timenlp/fst"
	"github.com/az-ai-labs/timenlp/tag"
)

var reENCentury = regexp.MustCompile(`(?i)\b(early|mid|late)?\s*(\d{1,2})(?:st|nd|rd|th)\s+century\b`)
var reENDecade = regexp.MustCompile(`(?i)\b(early|mid|late)?\s*(?:the\s+)?(\d{1,4})0s\b`)

var enQualifierWords = map[string]tag.CenturyQualifier{
	"early": tag.QualEarly,
	"mid":   tag.QualMid,
	"late":  tag.QualLate,
}

// newENCenturyFragment implements Century/DecadeRule for English:
// "21st century", "early 20th century", "the 1980s", "the 80s".
func newENCenturyFragment() fst.Fragment {
	return fst.FragmentFunc{
		FragmentName: "en.century",
		ScanFunc: func(s string) []fst.Match {
			var out []fst.Match
			for _, m := range reENCentury.FindAllStringSubmatchIndex(s, -1) {
				value, err := strconv.Atoi(s[m[4]:m[5]])
				if err != nil {
					continue
				}
				qualifier := tag.QualAll
				if m[2] != -1 {
					qualifier = enQualifierWords[strings.ToLower(s[m[2]:m[3]])]
				}
				start, end, v, q := m[0], m[1], value, qualifier
				out = append(out, fst.Match{
					Start: start, End: end, Weight: weightCentury, Source: "en.century",
					Emit: func() tag.Tag {
						return tag.Tag{Family: tag.CENTURY, Start: start, End: end, Payload: tag.CenturyPayload{
							Value: v, Qualifier: q,
						}}
					},
				})
			}
			for _, m := range reENDecade.FindAllStringSubmatchIndex(s, -1) {
				numStr := s[m[4]:m[5]]
				num, err := strconv.Atoi(numStr)
				if err != nil {
					continue
				}
				century, decade := 0, 0
				switch len(numStr) {
				case 1:
					decade = num
				case 3, 4:
					century = num/10 + 1
					decade = num % 10
				default:
					continue
				}
				qualifier := tag.QualAll
				if m[2] != -1 {
					qualifier = enQualifierWords[strings.ToLower(s[m[2]:m[3]])]
				}
				start, end, c, d, q := m[0], m[1], century, decade, qualifier
				out = append(out, fst.Match{
					Start: start, End: end, Weight: weightDecade, Source: "en.century",
					Emit: func() tag.Tag {
						return tag.Tag{Family: tag.DECADE, Start: start, End: end, Payload: tag.DecadePayload{
							Century: c, Decade: d, Qualifier: q,
						}}
					},
				})
			}
			return out
		},
	}
}
