package grammar

import "github.com/az-ai-labs/timenlp/fst"

// buildChinese composes every Chinese-language rule module into one
// Grammar. Fragment order does not affect the result — fst.SelectCover
// resolves overlaps purely by weight and span — but grouping them here
// by rule module keeps the set legible.
func buildChinese() *fst.Grammar {
	return fst.Compose(
		newZHNoiseFragment(),

		newZHUTCFragment(),
		newZHRelativeFragment(),
		newZHWeekFragment(),
		newZHPeriodFragment(),
		newZHClockFragment(),
		newZHDeltaFragment(),
		newZHHolidayFragment(),
		newZHLunarFragment(),
		newZHRangeFragment(),
		newZHCenturyFragment(),
		newZHRecurFragment(),
		newZHOrdinalFragment(),
	)
}
