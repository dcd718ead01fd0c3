package holiday_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/az-ai-labs/timenlp/holiday"
)

func TestLookup_FixedDate(t *testing.T) {
	m, d, ok := holiday.Lookup(holiday.LocaleUS, "christmas", 2025)
	require.True(t, ok)
	require.Equal(t, 12, m)
	require.Equal(t, 25, d)
}

func TestLookup_WeekdayRule_Thanksgiving(t *testing.T) {
	m, d, ok := holiday.Lookup(holiday.LocaleUS, "thanksgiving", 2025)
	require.True(t, ok)
	require.Equal(t, 11, m)
	require.Equal(t, 27, d) // fourth Thursday of November 2025
}

func TestLookup_WeekdayRule_MemorialDay(t *testing.T) {
	m, d, ok := holiday.Lookup(holiday.LocaleUS, "memorial_day", 2025)
	require.True(t, ok)
	require.Equal(t, 5, m)
	require.Equal(t, 26, d) // last Monday of May 2025
}

func TestLookup_LunarAnchoredReportsUnresolved(t *testing.T) {
	_, _, ok := holiday.Lookup(holiday.LocaleCN, "spring_festival", 2025)
	require.False(t, ok)
	require.True(t, holiday.IsLunarAnchored(holiday.LocaleCN, "spring_festival"))
}

func TestLookup_UnknownName(t *testing.T) {
	_, _, ok := holiday.Lookup(holiday.LocaleUS, "not_a_holiday", 2025)
	require.False(t, ok)
}

func TestTable_OverrideAddsAndRemoves(t *testing.T) {
	tbl := holiday.NewTable([]holiday.Override{
		{Locale: holiday.LocaleUS, Name: "company_day", Month: 3, Day: 15},
		{Locale: holiday.LocaleUS, Name: "halloween", Remove: true},
	})

	m, d, ok := tbl.Lookup(holiday.LocaleUS, "company_day", 2025)
	require.True(t, ok)
	require.Equal(t, 3, m)
	require.Equal(t, 15, d)

	_, _, ok = tbl.Lookup(holiday.LocaleUS, "halloween", 2025)
	require.False(t, ok)

	m, d, ok = tbl.Lookup(holiday.LocaleUS, "christmas", 2025)
	require.True(t, ok)
	require.Equal(t, 12, m)
	require.Equal(t, 25, d)
}
