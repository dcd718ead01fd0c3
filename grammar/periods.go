package grammar

import "github.com/az-ai-labs/timenlp/tag"

// periodHours is the canonical default (start_h, end_h) window per
// PeriodKind, from spec.md §4.2: dawn=(04,06), morning=(06,12),
// noon=12, afternoon=(12,18), evening=(18,24), night=(18,24) (the same
// window as evening), midnight=0. Noon and midnight are given in
// spec.md as a single hour rather than a range, so they are encoded
// here as the one-hour window starting at that hour. Both en_period.go
// and zh_period.go resolve a matched word's PeriodKind and look its
// bounds up here, so every synonym in either language shares its
// kind's one authoritative window.
var periodHours = map[tag.PeriodKind]struct{ Start, End int }{
	tag.PeriodDawn:      {4, 6},
	tag.PeriodMorning:   {6, 12},
	tag.PeriodNoon:      {12, 13},
	tag.PeriodAfternoon: {12, 18},
	tag.PeriodEvening:   {18, 24},
	tag.PeriodNight:     {18, 24},
	tag.PeriodMidnight:  {0, 1},
}

func periodBounds(k tag.PeriodKind) (start, end int) {
	b := periodHours[k]
	return b.Start, b.End
}
