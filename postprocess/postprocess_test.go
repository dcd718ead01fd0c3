package postprocess_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/az-ai-labs/timenlp/postprocess"
	"github.com/az-ai-labs/timenlp/tag"
)

func TestClean_DropsNoiseCoveredSpans(t *testing.T) {
	tags := []tag.Tag{
		{Family: tag.NOISE, Start: 0, End: 5},
		{Family: tag.CLOCK, Start: 1, End: 3, Payload: &tag.ClockPayload{Hour: 1}},
		{Family: tag.WEEK, Start: 10, End: 12, Payload: &tag.WeekPayload{Weekday: 1}},
	}

	got := postprocess.Clean(tags)
	require.Len(t, got, 1)
	require.Equal(t, tag.WEEK, got[0].Family)
}

func TestClean_DropsDominatedOverlap(t *testing.T) {
	tags := []tag.Tag{
		{Family: tag.CLOCK, Start: 0, End: 10, Payload: &tag.ClockPayload{Hour: 9}},
		{Family: tag.UTC, Start: 0, End: 10, Payload: &tag.UTCPayload{Year: 2025, Month: 1, Day: 1}},
	}

	got := postprocess.Clean(tags)
	require.Len(t, got, 1)
	require.Equal(t, tag.UTC, got[0].Family)
}

func TestClean_KeepsNonOverlappingInSpanOrder(t *testing.T) {
	tags := []tag.Tag{
		{Family: tag.CLOCK, Start: 20, End: 22, Payload: &tag.ClockPayload{Hour: 9}},
		{Family: tag.WEEK, Start: 0, End: 2, Payload: &tag.WeekPayload{Weekday: 1}},
	}

	got := postprocess.Clean(tags)
	require.Len(t, got, 2)
	require.Equal(t, tag.WEEK, got[0].Family)
	require.Equal(t, tag.CLOCK, got[1].Family)
}

func TestClean_AllNoiseYieldsNil(t *testing.T) {
	tags := []tag.Tag{
		{Family: tag.NOISE, Start: 0, End: 5},
	}
	require.Nil(t, postprocess.Clean(tags))
}

func TestClean_EmptyInput(t *testing.T) {
	require.Nil(t, postprocess.Clean(nil))
}
