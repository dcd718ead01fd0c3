// Package config loads deployment-supplied overrides for the holiday
// tables from YAML, the same "name: rule" override shape
// coredds-GoHoliday's config package uses for its CustomHoliday list.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/az-ai-labs/timenlp/holiday"
)

// holidayEntry is one line of a holiday override file.
type holidayEntry struct {
	Name   string `yaml:"name"`
	Month  int    `yaml:"month"`
	Day    int    `yaml:"day"`
	Remove bool   `yaml:"remove"`
}

// holidayFile is the top-level shape of a holiday override YAML file.
type holidayFile struct {
	Holidays []holidayEntry `yaml:"holidays"`
}

// LoadHolidayOverrides reads a YAML override file for loc and returns
// the []holiday.Override it describes. A missing path is not an
// error — it simply yields no overrides, since supplying an override
// file is always optional.
func LoadHolidayOverrides(loc holiday.Locale, path string) ([]holiday.Override, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var f holidayFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	overrides := make([]holiday.Override, 0, len(f.Holidays))
	for _, e := range f.Holidays {
		overrides = append(overrides, holiday.Override{
			Locale: loc, Name: e.Name, Month: e.Month, Day: e.Day, Remove: e.Remove,
		})
	}
	return overrides, nil
}
