package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/az-ai-labs/timenlp/config"
	"github.com/az-ai-labs/timenlp/holiday"
)

func TestLoadHolidayOverrides_EmptyPathIsNotAnError(t *testing.T) {
	overrides, err := config.LoadHolidayOverrides(holiday.LocaleUS, "")
	require.NoError(t, err)
	require.Nil(t, overrides)
}

func TestLoadHolidayOverrides_MissingFileIsNotAnError(t *testing.T) {
	overrides, err := config.LoadHolidayOverrides(holiday.LocaleUS, filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.Nil(t, overrides)
}

func TestLoadHolidayOverrides_ParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.yaml")
	content := `
holidays:
  - name: company_day
    month: 3
    day: 15
  - name: halloween
    remove: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	overrides, err := config.LoadHolidayOverrides(holiday.LocaleUS, path)
	require.NoError(t, err)
	require.Len(t, overrides, 2)

	require.Equal(t, holiday.Override{Locale: holiday.LocaleUS, Name: "company_day", Month: 3, Day: 15}, overrides[0])
	require.Equal(t, holiday.Override{Locale: holiday.LocaleUS, Name: "halloween", Remove: true}, overrides[1])
}

func TestLoadHolidayOverrides_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("not: [valid"), 0o644))

	_, err := config.LoadHolidayOverrides(holiday.LocaleUS, path)
	require.Error(t, err)
}
