// Package postprocess implements C4: rejecting tags covered by a
// NOISE span, dropping tags dominated by a more specific overlapping
// tag, and sorting the survivors by source span.
package postprocess

import (
	"cmp"
	"slices"

	"github.com/az-ai-labs/timenlp/tag"
)

// rank orders tag families by specificity for dominance filtering,
// per the priority UTC > LUNAR > HOLIDAY > REL > WEEK > PERIOD > CLOCK
// > DELTA. Lower rank wins when two tags' spans overlap. Families with
// no listed priority (range markers, ordinal, century/decade, recur)
// share one rank after DELTA — they never compete for the same span as a
// date/time tag in practice, since the grammar does not emit them over
// overlapping text.
func rank(f tag.Family) int {
	switch f {
	case tag.UTC:
		return 0
	case tag.LUNAR:
		return 1
	case tag.HOLIDAY:
		return 2
	case tag.REL:
		return 3
	case tag.WEEK:
		return 4
	case tag.PERIOD:
		return 5
	case tag.CLOCK:
		return 6
	case tag.DELTA:
		return 7
	default:
		return 8
	}
}

// Clean implements the C4 pipeline: drop NOISE-covered spans, drop
// dominated overlapping tags, and return the survivors sorted by
// source span start.
func Clean(tags []tag.Tag) []tag.Tag {
	var noiseSpans [][2]int
	var rest []tag.Tag
	for _, t := range tags {
		if t.Family == tag.NOISE {
			noiseSpans = append(noiseSpans, [2]int{t.Start, t.End})
			continue
		}
		rest = append(rest, t)
	}

	rest = slices.DeleteFunc(rest, func(t tag.Tag) bool {
		return coveredByAny(t, noiseSpans)
	})
	if len(rest) == 0 {
		return nil
	}

	sorted := make([]tag.Tag, len(rest))
	copy(sorted, rest)
	slices.SortFunc(sorted, func(a, b tag.Tag) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		if c := cmp.Compare(rank(a.Family), rank(b.Family)); c != 0 {
			return c
		}
		la, lb := a.End-a.Start, b.End-b.Start
		return cmp.Compare(lb, la)
	})

	out := make([]tag.Tag, 0, len(sorted))
	maxEnd := 0
	for _, t := range sorted {
		if t.Start >= maxEnd {
			out = append(out, t)
			maxEnd = t.End
			continue
		}
		if t.End > maxEnd && rank(t.Family) < rank(out[len(out)-1].Family) {
			out[len(out)-1] = t
			maxEnd = t.End
		}
	}

	slices.SortFunc(out, func(a, b tag.Tag) int { return cmp.Compare(a.Start, b.Start) })
	return out
}

func coveredByAny(t tag.Tag, spans [][2]int) bool {
	for _, sp := range spans {
		if t.Start >= sp[0] && t.End <= sp[1] {
			return true
		}
	}
	return false
}
