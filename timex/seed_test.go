package timex_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/az-ai-labs/timenlp/tag"
	"github.com/az-ai-labs/timenlp/timex"
)

func mustUTC(t *testing.T, s string) time.Time {
	t.Helper()
	tm, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return tm.UTC()
}

func TestSeedScenarios(t *testing.T) {
	base := mustUTC(t, "2025-01-21T08:00:00Z")

	cases := []struct {
		name     string
		lang     timex.Language
		text     string
		want     []string // "instant" or "start|end" per result, in order
		queryTag tag.QueryTag
	}{
		{
			name: "zh tomorrow morning 9", lang: timex.Chinese, text: "明天上午9点",
			want: []string{"2025-01-22T09:00:00Z"}, queryTag: tag.QueryRelative,
		},
		{
			name: "zh range tomorrow morning to afternoon", lang: timex.Chinese, text: "从明天上午9点到下午5点",
			want: []string{"2025-01-22T09:00:00Z|2025-01-22T17:00:00Z"}, queryTag: tag.QueryRange,
		},
		{
			name: "zh chained next weekday", lang: timex.Chinese, text: "下下下周一",
			want: []string{"2025-02-10T00:00:00Z|2025-02-10T23:59:59Z"}, queryTag: tag.QueryRelative,
		},
		{
			name: "zh winter solstice", lang: timex.Chinese, text: "冬至那天",
			want: []string{"2025-12-21T00:00:00Z|2025-12-21T23:59:59Z"}, queryTag: tag.QueryHoliday,
		},
		{
			name: "en day after tomorrow 5pm", lang: timex.English, text: "the day after tomorrow 5pm",
			want: []string{"2025-01-23T17:00:00Z"}, queryTag: tag.QueryRelative,
		},
		{
			name: "en between clock range on weekday", lang: timex.English, text: "between 9:30 and 11:00 on thursday",
			want: []string{"2025-01-23T09:30:00Z|2025-01-23T11:00:00Z"}, queryTag: tag.QueryRange,
		},
		{
			name: "en decade", lang: timex.English, text: "the 80s",
			want: []string{"1980-01-01T00:00:00Z|1989-12-31T23:59:59Z"}, queryTag: tag.QueryRange,
		},
		{
			name: "zh bare digit noise", lang: timex.Chinese, text: "45901",
			want: nil, queryTag: tag.QueryNone,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			extractor, err := timex.New(tc.lang)
			require.NoError(t, err)

			results, queryTag := extractor.Extract(tc.text, base)
			require.Equal(t, tc.queryTag, queryTag)
			require.Equal(t, len(tc.want), len(results), "result count for %q", tc.text)

			for i, want := range tc.want {
				got := formatResult(results[i])
				require.Equal(t, want, got, "result %d for %q", i, tc.text)
			}
		})
	}
}

func formatResult(r tag.Result) string {
	if r.Kind == tag.ResultPoint {
		return r.Point.String()
	}
	return r.Interval.Start.String() + "|" + r.Interval.End.String()
}
