package grammar

import "github.com/az-ai-labs/timenlp/fst"

// buildEnglish composes every English-language rule module into one
// Grammar. There is no LunarRule here — the lunisolar calendar is a
// Chinese-only concept in this grammar, matching how holidays anchored
// to it (春节, 中秋) have no English lexical form either.
func buildEnglish() *fst.Grammar {
	return fst.Compose(
		newENNoiseFragment(),

		newENUTCFragment(),
		newENRelativeFragment(),
		newENWeekFragment(),
		newENPeriodFragment(),
		newENClockFragment(),
		newENDeltaFragment(),
		newENHolidayFragment(),
		newENRangeFragment(),
		newENCenturyFragment(),
		newENRecurFragment(),
		newENOrdinalFragment(),
	)
}
