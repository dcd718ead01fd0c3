// Package tagger implements C3: composing the rule grammar into one
// transducer and applying it to preprocessed text to emit a tag
// stream, re-applying on any gaps the first pass left untagged so
// multiple independent expressions in one utterance are all found.
package tagger

import (
	"sort"

	"github.com/az-ai-labs/timenlp/cache"
	"github.com/az-ai-labs/timenlp/fst"
	"github.com/az-ai-labs/timenlp/grammar"
	"github.com/az-ai-labs/timenlp/tag"
)

// Tagger holds a compiled grammar and applies it to text.
type Tagger struct {
	grammar *fst.Grammar
}

// New compiles (or loads the cached identity of) the grammar for lang.
func New(lang grammar.Language, cacheDir string, overwriteCache bool) (*Tagger, error) {
	g, err := cache.Load(lang, cacheDir, overwriteCache)
	if err != nil {
		return nil, err
	}
	return &Tagger{grammar: g}, nil
}

// Tag applies the compiled grammar to preprocessed text and returns
// every tag found, in left-to-right span order. The grammar's own
// best-cover selection locks the spans of its first pass; Tag then
// re-scans each gap left between locked spans so disjoint expressions
// elsewhere in the same utterance are still recovered.
func (t *Tagger) Tag(s string) []tag.Tag {
	first := t.grammar.Apply(s)
	if len(first) == 0 {
		return nil
	}

	locked := make([]fst.Match, len(first))
	copy(locked, first)
	sort.Slice(locked, func(i, j int) bool { return locked[i].Start < locked[j].Start })

	var all []fst.Match
	all = append(all, locked...)

	cursor := 0
	for _, m := range locked {
		if m.Start > cursor {
			all = append(all, rescanGap(t.grammar, s, cursor, m.Start)...)
		}
		cursor = m.End
	}
	if cursor < len(s) {
		all = append(all, rescanGap(t.grammar, s, cursor, len(s))...)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].Start < all[j].Start })
	return fst.Tags(all)
}

// rescanGap re-applies every fragment to the [start,end) slice of s and
// offsets the resulting matches back into s's coordinate space.
func rescanGap(g *fst.Grammar, s string, start, end int) []fst.Match {
	if end <= start {
		return nil
	}
	sub := s[start:end]
	var matches []fst.Match
	for _, f := range g.Fragments {
		matches = append(matches, f.Scan(sub)...)
	}
	if len(matches) == 0 {
		return nil
	}
	for i := range matches {
		matches[i] = offsetMatch(matches[i], start)
	}
	return fst.SelectCover(matches)
}

// offsetMatch shifts a Match's span by delta and wraps Emit so the
// emitted tag's span is shifted too.
func offsetMatch(m fst.Match, delta int) fst.Match {
	emit := m.Emit
	shifted := fst.Match{
		Start:  m.Start + delta,
		End:    m.End + delta,
		Weight: m.Weight,
		Source: m.Source,
	}
	shifted.Emit = func() tag.Tag {
		t := emit()
		t.Start += delta
		t.End += delta
		return t
	}
	return shifted
}
