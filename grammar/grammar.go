// Package grammar declares the per-language rule modules required by
// spec.md §4.2 (UTCTimeRule, RelativeRule, WeekRule, PeriodRule,
// DeltaRule, HolidayRule, LunarRule, Between/RangeRule,
// Century/DecadeRule, RecurringRule) and composes them into one
// fst.Grammar per language.
//
// Each rule module is an ordinary constructor function returning one
// fst.Fragment — there is no package-level mutable registry. This
// directly answers spec.md §9's note to replace a "global rule
// registry" with an explicit builder: Build(lang) is the only entry
// point. No fragment refers to another (the range markers are
// standalone tags that package merge pairs with their neighbours), so
// Build passes the fragments straight to fst.Compose and builds no
// fst.SymbolTable.
package grammar

import "github.com/az-ai-labs/timenlp/fst"

// Language selects which rule set Build composes.
type Language int

const (
	Chinese Language = iota
	English
)

// Build composes every rule module for lang into one Grammar, ready
// for tagger.Tagger.
func Build(lang Language) *fst.Grammar {
	switch lang {
	case Chinese:
		return buildChinese()
	case English:
		return buildEnglish()
	default:
		panic("grammar: unknown language")
	}
}
