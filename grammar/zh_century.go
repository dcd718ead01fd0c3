package grammar

import (
	"regexp"
	"strconv"

	"github.com/az-ai-labs/timenlp/fst"
	"github.com/az-ai-labs/timenlp/tag"
)

var reZHCentury = regexp.MustCompile(`(\d{1,2})世纪(初|中|末)?`)
var reZHDecade = regexp.MustCompile(`(?:(\d{1,2})世纪)?(\d)0年代(初|中|末)?`)
var reZHDecadeTail = regexp.MustCompile(`^(\d)0年代`)

var zhQualifierWords = map[string]tag.CenturyQualifier{
	"初": tag.QualEarly,
	"中": tag.QualMid,
	"末": tag.QualLate,
}

// newZHCenturyFragment implements Century/DecadeRule: "21世纪",
// "20世纪初", and decade forms like "80年代" / "20世纪80年代末".
func newZHCenturyFragment() fst.Fragment {
	return fst.FragmentFunc{
		FragmentName: "zh.century",
		ScanFunc: func(s string) []fst.Match {
			var out []fst.Match
			for _, m := range reZHDecade.FindAllStringSubmatchIndex(s, -1) {
				century := 0
				if m[2] != -1 {
					century, _ = strconv.Atoi(s[m[2]:m[3]])
				}
				decadeDigit, _ := strconv.Atoi(s[m[4]:m[5]])
				qualifier := tag.QualAll
				if m[6] != -1 {
					qualifier = zhQualifierWords[s[m[6]:m[7]]]
				}
				start, end, c, d, q := m[0], m[1], century, decadeDigit, qualifier
				out = append(out, fst.Match{
					Start: start, End: end, Weight: weightDecade, Source: "zh.century",
					Emit: func() tag.Tag {
						return tag.Tag{Family: tag.DECADE, Start: start, End: end, Payload: tag.DecadePayload{
							Century: c, Decade: d, Qualifier: q,
						}}
					},
				})
			}
			for _, m := range reZHCentury.FindAllStringSubmatchIndex(s, -1) {
				// Skip centuries that are really the prefix of a decade
				// expression already captured above ("20世纪80年代").
				if reZHDecade.MatchString(s[m[0]:clampEnd(len(s), m[1]+10)]) && m[1] < len(s) {
					tail := s[m[1]:clampEnd(len(s), m[1]+12)]
					if reZHDecadeTail.MatchString(tail) {
						continue
					}
				}
				value, _ := strconv.Atoi(s[m[2]:m[3]])
				qualifier := tag.QualAll
				if m[4] != -1 {
					qualifier = zhQualifierWords[s[m[4]:m[5]]]
				}
				start, end, v, q := m[0], m[1], value, qualifier
				out = append(out, fst.Match{
					Start: start, End: end, Weight: weightCentury, Source: "zh.century",
					Emit: func() tag.Tag {
						return tag.Tag{Family: tag.CENTURY, Start: start, End: end, Payload: tag.CenturyPayload{
							Value: v, Qualifier: q,
						}}
					},
				})
			}
			return out
		},
	}
}

func clampEnd(a, b int) int {
	if a < b {
		return a
	}
	return b
}
