package resolve_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/az-ai-labs/timenlp/holiday"
	"github.com/az-ai-labs/timenlp/resolve"
	"github.com/az-ai-labs/timenlp/tag"
)

func mustBase(t *testing.T) tag.Instant {
	t.Helper()
	tm, err := time.Parse(time.RFC3339, "2025-01-21T08:00:00Z")
	require.NoError(t, err)
	return tag.NewInstant(tm)
}

func TestResolveUTCBareDateExpandsToFullDay(t *testing.T) {
	ctx := resolve.NewContext(holiday.LocaleCN)
	base := mustBase(t)

	r, err := resolve.Dispatch(tag.Tag{
		Family: tag.UTC, Payload: tag.UTCPayload{Year: 2025, Month: 3, Day: 10},
	}, base, ctx)
	require.NoError(t, err)

	require.Equal(t, tag.ResultInterval, r.Kind)
	assert.Equal(t, "2025-03-10T00:00:00Z", r.Interval.Start.String())
	assert.Equal(t, "2025-03-10T23:59:59Z", r.Interval.End.String())
}

func TestResolveRELDayOffset(t *testing.T) {
	ctx := resolve.NewContext(holiday.LocaleCN)
	base := mustBase(t)

	r, err := resolve.Dispatch(tag.Tag{
		Family: tag.REL, Payload: tag.RelPayload{Unit: tag.RelDay, Offset: 1},
	}, base, ctx)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-22T00:00:00Z", r.Interval.Start.String())
}

func TestResolveWEEKChainedNext(t *testing.T) {
	ctx := resolve.NewContext(holiday.LocaleCN)
	base := mustBase(t) // Tuesday 2025-01-21

	r, err := resolve.Dispatch(tag.Tag{
		Family: tag.WEEK, Payload: tag.WeekPayload{Weekday: time.Monday, Modifier: tag.ModNext, N: 3},
	}, base, ctx)
	require.NoError(t, err)
	assert.Equal(t, "2025-02-10T00:00:00Z", r.Interval.Start.String())
}

func TestResolveDECADEUnqualified(t *testing.T) {
	ctx := resolve.NewContext(holiday.LocaleUS)
	base := mustBase(t)

	r, err := resolve.Dispatch(tag.Tag{
		Family: tag.DECADE, Payload: tag.DecadePayload{Century: 0, Decade: 8},
	}, base, ctx)
	require.NoError(t, err)
	assert.Equal(t, "1980-01-01T00:00:00Z", r.Interval.Start.String())
	assert.Equal(t, "1989-12-31T23:59:59Z", r.Interval.End.String())
}

func TestResolveCENTURYEarlyQualifier(t *testing.T) {
	ctx := resolve.NewContext(holiday.LocaleCN)
	base := mustBase(t)

	r, err := resolve.Dispatch(tag.Tag{
		Family: tag.CENTURY, Payload: tag.CenturyPayload{Value: 20, Qualifier: tag.QualEarly},
	}, base, ctx)
	require.NoError(t, err)
	assert.Equal(t, 1901, r.Interval.Start.Time().Year())
	assert.True(t, r.Interval.End.Time().Year() < 1934)
}

func TestSplitClockAMPM(t *testing.T) {
	hour, minute, _, err := resolve.SplitClock(tag.ClockPayload{Hour: 5, Minute: 0, HasAMPM: true, PM: true}, nil)
	require.NoError(t, err)
	assert.Equal(t, 17, hour)
	assert.Equal(t, 0, minute)
}

func TestSplitClockPeriodDisambiguates(t *testing.T) {
	afternoon := tag.PeriodPayload{Kind: tag.PeriodAfternoon, StartH: 12, EndH: 18}
	hour, _, _, err := resolve.SplitClock(tag.ClockPayload{Hour: 5, Minute: 0}, &afternoon)
	require.NoError(t, err)
	assert.Equal(t, 17, hour)
}

func TestResolveHOLIDAYFixedDate(t *testing.T) {
	ctx := resolve.NewContext(holiday.LocaleCN)
	base := mustBase(t)

	r, err := resolve.Dispatch(tag.Tag{
		Family: tag.HOLIDAY, Payload: tag.HolidayPayload{ID: "christmas"},
	}, base, ctx)
	require.NoError(t, err)
	assert.Equal(t, "2025-12-25T00:00:00Z", r.Interval.Start.String())
}

func TestResolveHOLIDAYSolarTerm(t *testing.T) {
	ctx := resolve.NewContext(holiday.LocaleCN)
	base := mustBase(t)

	r, err := resolve.Dispatch(tag.Tag{
		Family: tag.HOLIDAY, Payload: tag.HolidayPayload{ID: "dongzhi"},
	}, base, ctx)
	require.NoError(t, err)
	assert.Equal(t, "2025-12-21T00:00:00Z", r.Interval.Start.String())
}
