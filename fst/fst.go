// Package fst implements the small weighted transducer engine the rule
// grammar (C2) is composed over and the tagger (C3) applies.
//
// A real FST toolkit (lazy composition, true shortest-path over a
// weighted automaton) is treated as an external collaborator by the
// specification this package implements; nothing in the reference pack
// ships one, so this package plays that role directly: each Fragment
// is a closure that scans the input for one rule's surface forms and
// reports weighted Matches, Grammar unions fragments together, and
// Apply selects one best non-overlapping cover (lower weight wins,
// longer span breaks ties) — the same greedy interval-scheduling
// policy the teacher's datetime package uses for overlap resolution,
// generalized to run across many fragments instead of one.
//
// Swapping in a genuine transducer library later only requires
// reimplementing Grammar and Apply; Fragment, Match, and SymbolTable
// are already the minimal surface a caller needs.
package fst

import (
	"cmp"
	"slices"

	"github.com/az-ai-labs/timenlp/tag"
)

// Match is one candidate tagging of a span, with the weight its
// originating rule was registered at and a thunk producing the tag
// payload (emission is deferred so unselected matches never build the
// payload).
type Match struct {
	Start, End int
	Weight     int
	Source     string // fragment name, for debugging
	Emit       func() tag.Tag
}

// Fragment scans preprocessed text and reports every surface match it
// recognizes, independent of any other fragment.
type Fragment interface {
	Name() string
	Scan(s string) []Match
}

// FragmentFunc adapts a plain scan function into a Fragment.
type FragmentFunc struct {
	FragmentName string
	ScanFunc     func(s string) []Match
}

func (f FragmentFunc) Name() string          { return f.FragmentName }
func (f FragmentFunc) Scan(s string) []Match { return f.ScanFunc(s) }

// SymbolTable resolves named fragments so rules that reference other
// rules (e.g. RangeRule referencing the date/time rules it brackets)
// do so by name, not by import-order-sensitive direct reference. All
// symbols must be registered before Resolve is called.
type SymbolTable struct {
	byName map[string]Fragment
}

// NewSymbolTable builds an empty table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{byName: make(map[string]Fragment)}
}

// Register adds a fragment under its own name.
func (t *SymbolTable) Register(f Fragment) {
	t.byName[f.Name()] = f
}

// Resolve looks up a fragment by name. It panics on an unknown symbol
// since that represents a grammar-construction bug, not a runtime
// condition — callers build the table once at init time.
func (t *SymbolTable) Resolve(name string) Fragment {
	f, ok := t.byName[name]
	if !ok {
		panic("fst: unresolved symbol " + name)
	}
	return f
}

// All returns every registered fragment, sorted by name for
// determinism (the table itself is an unordered map).
func (t *SymbolTable) All() []Fragment {
	out := make([]Fragment, 0, len(t.byName))
	for _, f := range t.byName {
		out = append(out, f)
	}
	slices.SortFunc(out, func(a, b Fragment) int { return cmp.Compare(a.Name(), b.Name()) })
	return out
}

// Grammar is the composed union of a language's rule fragments,
// ready to be applied to preprocessed text.
type Grammar struct {
	Fragments []Fragment
}

// Compose unions fragments by weight; fragment order does not matter,
// Apply re-derives priority from each Match's Weight.
func Compose(fragments ...Fragment) *Grammar {
	return &Grammar{Fragments: fragments}
}

// SourceNames returns the sorted list of fragment names, used by the
// cache package to content-hash a grammar's rule sources.
func (g *Grammar) SourceNames() []string {
	names := make([]string, len(g.Fragments))
	for i, f := range g.Fragments {
		names[i] = f.Name()
	}
	slices.Sort(names)
	return names
}

// Tags emits the tag.Tag for each selected Match, in span order.
func Tags(matches []Match) []tag.Tag {
	out := make([]tag.Tag, len(matches))
	for i, m := range matches {
		out[i] = m.Emit()
	}
	return out
}

// Apply scans s with every fragment, then selects one non-overlapping
// cover with SelectCover: candidates are taken in order of start
// offset (at equal starts, lower weight first, then longer span), and
// a candidate overlapping the previous pick replaces it only when it
// has a lower weight and ends later.
func (g *Grammar) Apply(s string) []Match {
	var all []Match
	for _, f := range g.Fragments {
		all = append(all, f.Scan(s)...)
	}
	return SelectCover(all)
}

// SelectCover performs weighted interval scheduling over candidate
// matches: sort by start, then prefer lower weight, then longer span;
// keep the first match whose start is not already covered.
func SelectCover(matches []Match) []Match {
	if len(matches) <= 1 {
		return matches
	}
	sorted := make([]Match, len(matches))
	copy(sorted, matches)
	slices.SortFunc(sorted, func(a, b Match) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Weight, b.Weight); c != 0 {
			return c
		}
		la, lb := a.End-a.Start, b.End-b.Start
		return cmp.Compare(lb, la)
	})

	out := make([]Match, 0, len(sorted))
	maxEnd := 0
	for _, m := range sorted {
		if m.Start >= maxEnd {
			out = append(out, m)
			maxEnd = m.End
		} else if m.End > maxEnd && m.Weight < out[len(out)-1].Weight {
			// A lower-weight match overlaps but extends further and wins
			// on priority: replace the previous pick.
			out[len(out)-1] = m
			maxEnd = m.End
		}
	}
	return out
}
