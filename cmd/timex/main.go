// Command timex is a thin CLI wrapper over package timex: extract
// time expressions from a single --text value or from a --file of one
// JSON object per line ({text, base_time}).
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/az-ai-labs/timenlp/config"
	"github.com/az-ai-labs/timenlp/holiday"
	"github.com/az-ai-labs/timenlp/tag"
	"github.com/az-ai-labs/timenlp/timex"
	"github.com/az-ai-labs/timenlp/timexerr"
)

var (
	flagText             string
	flagFile             string
	flagLanguage         string
	flagCacheDir         string
	flagOverwriteCache   bool
	flagBaseTime         string
	flagVerbose          bool
	flagHolidayOverrides string
)

type batchLine struct {
	Text     string `json:"text"`
	BaseTime string `json:"base_time,omitempty"`
}

type batchOutput struct {
	Results  []tag.Result `json:"results"`
	QueryTag tag.QueryTag `json:"query_tag"`
}

func main() {
	root := &cobra.Command{
		Use:   "timex",
		Short: "Extract natural-language time expressions into UTC instants and intervals",
		RunE:  run,
	}
	root.Flags().StringVar(&flagText, "text", "", "a single text string to extract from")
	root.Flags().StringVar(&flagFile, "file", "", "path to a batch file: one JSON object per line, {text, base_time}")
	root.Flags().StringVar(&flagLanguage, "language", "chinese", "chinese or english")
	root.Flags().StringVar(&flagCacheDir, "cache-dir", "", "directory for the compiled grammar's cache artifact")
	root.Flags().BoolVar(&flagOverwriteCache, "overwrite-cache", false, "force the cache artifact to be rewritten")
	root.Flags().StringVar(&flagBaseTime, "base-time", "", "ISO-8601 UTC base time for --text (default: now)")
	root.Flags().BoolVar(&flagVerbose, "verbose", false, "enable development-mode structured logging")
	root.Flags().StringVar(&flagHolidayOverrides, "holiday-overrides", "", "path to a YAML file of holiday table overrides")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(flagVerbose)
	if err != nil {
		return fmt.Errorf("timex: building logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	lang, err := parseLanguage(flagLanguage)
	if err != nil {
		return err
	}

	overrides, err := config.LoadHolidayOverrides(localeFor(lang), flagHolidayOverrides)
	if err != nil {
		return fmt.Errorf("timex: loading holiday overrides: %w", err)
	}

	extractor, err := timex.New(lang,
		timex.WithCacheDir(flagCacheDir),
		timex.WithOverwriteCache(flagOverwriteCache),
		timex.WithLogger(logger),
		timex.WithHolidayOverrides(overrides),
	)
	if err != nil {
		return err
	}

	switch {
	case flagFile != "":
		return runBatch(extractor, flagFile)
	case flagText != "":
		return runSingle(extractor, flagText, flagBaseTime)
	default:
		return fmt.Errorf("timex: one of --text or --file is required")
	}
}

func localeFor(lang timex.Language) holiday.Locale {
	if lang == timex.Chinese {
		return holiday.LocaleCN
	}
	return holiday.LocaleUS
}

func parseLanguage(s string) (timex.Language, error) {
	switch s {
	case "chinese", "zh":
		return timex.Chinese, nil
	case "english", "en":
		return timex.English, nil
	default:
		return 0, fmt.Errorf("timex: unknown --language %q", s)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func runSingle(e *timex.Extractor, text, baseStr string) error {
	base, err := parseBaseTime(baseStr)
	if err != nil {
		return &timexerr.InvalidBaseTime{Input: baseStr, Err: err}
	}
	results, queryTag := e.Extract(text, base)
	return printResult(os.Stdout, results, queryTag)
}

func runBatch(e *timex.Extractor, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("timex: opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	out := bufio.NewWriter(os.Stdout)
	defer func() { _ = out.Flush() }()

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var bl batchLine
		if err := json.Unmarshal(line, &bl); err != nil {
			return fmt.Errorf("timex: malformed batch line: %w", err)
		}
		base, err := parseBaseTime(bl.BaseTime)
		if err != nil {
			return &timexerr.InvalidBaseTime{Input: bl.BaseTime, Err: err}
		}
		results, queryTag := e.Extract(bl.Text, base)
		if err := json.NewEncoder(out).Encode(batchOutput{Results: results, QueryTag: queryTag}); err != nil {
			return fmt.Errorf("timex: encoding output: %w", err)
		}
	}
	return scanner.Err()
}

func parseBaseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC(), nil
	}
	return time.Parse(time.RFC3339, s)
}

func printResult(w *os.File, results []tag.Result, queryTag tag.QueryTag) error {
	return json.NewEncoder(w).Encode(batchOutput{Results: results, QueryTag: queryTag})
}
