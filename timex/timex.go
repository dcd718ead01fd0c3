// Package timex is the public façade: construct an Extractor for a
// language, then call Extract on any number of texts. Extract never
// returns an error — per spec.md §7. A tag with no payload is logged,
// counted and skipped; a tag that fails to resolve is dropped by the
// merger without being logged or counted. Construction-time failures
// (a grammar that fails to compile or load) are returned from New.
package timex

import (
	"time"

	"go.uber.org/zap"

	"github.com/az-ai-labs/timenlp/grammar"
	"github.com/az-ai-labs/timenlp/holiday"
	"github.com/az-ai-labs/timenlp/internal/metrics"
	"github.com/az-ai-labs/timenlp/merge"
	"github.com/az-ai-labs/timenlp/postprocess"
	"github.com/az-ai-labs/timenlp/preprocess"
	"github.com/az-ai-labs/timenlp/resolve"
	"github.com/az-ai-labs/timenlp/tag"
	"github.com/az-ai-labs/timenlp/tagger"
	"github.com/az-ai-labs/timenlp/timexerr"
)

// Language selects which grammar and holiday locale Extract uses.
type Language int

const (
	Chinese Language = iota
	English
)

func (l Language) grammarLang() grammar.Language {
	if l == Chinese {
		return grammar.Chinese
	}
	return grammar.English
}

func (l Language) locale() holiday.Locale {
	if l == Chinese {
		return holiday.LocaleCN
	}
	return holiday.LocaleUS
}

func (l Language) String() string {
	if l == Chinese {
		return "chinese"
	}
	return "english"
}

type options struct {
	cacheDir        string
	overwriteCache  bool
	logger          *zap.Logger
	holidayOverride []holiday.Override
}

// Option configures New.
type Option func(*options)

// WithCacheDir sets the directory the compiled grammar's bookkeeping
// artifact is persisted to. Empty (the default) disables caching.
func WithCacheDir(dir string) Option {
	return func(o *options) { o.cacheDir = dir }
}

// WithOverwriteCache forces the cache artifact to be rewritten even if
// its content hash still matches.
func WithOverwriteCache(overwrite bool) Option {
	return func(o *options) { o.overwriteCache = overwrite }
}

// WithLogger sets the zap.Logger recoverable errors are reported
// through. The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithHolidayOverrides installs deployment-supplied holiday table
// overrides (see package config for loading them from YAML).
func WithHolidayOverrides(overrides []holiday.Override) Option {
	return func(o *options) { o.holidayOverride = overrides }
}

// Extractor is a compiled, reentrant extraction pipeline for one
// language. After New returns successfully, all of an Extractor's
// state is read-only except its metrics counters, which are updated
// with atomic operations, so an Extractor is safe for concurrent use.
type Extractor struct {
	*metrics.Counters

	lang   Language
	tagger *tagger.Tagger
	ctx    *resolve.Context
	log    *zap.Logger
}

// New compiles (or loads the cached identity of) lang's grammar and
// returns a ready-to-use Extractor. The only error this returns is a
// *timexerr.GrammarLoadFailure.
func New(lang Language, opts ...Option) (*Extractor, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	t, err := tagger.New(lang.grammarLang(), o.cacheDir, o.overwriteCache)
	if err != nil {
		return nil, &timexerr.GrammarLoadFailure{Lang: lang.String(), Err: err}
	}

	ctx := resolve.NewContext(lang.locale())
	if len(o.holidayOverride) > 0 {
		ctx.Holidays = holiday.NewTable(o.holidayOverride)
	}

	return &Extractor{
		Counters: &metrics.Counters{},
		lang:     lang,
		tagger:   t,
		ctx:      ctx,
		log:      o.logger,
	}, nil
}

// Extract runs the full pipeline (preprocess -> tag -> clean -> merge)
// against text, anchored at base, and returns the recognized
// instants/intervals plus the overall QueryTag. It never returns an
// error and never panics on malformed input: anything unrecognized
// yields (nil, tag.QueryNone).
func (e *Extractor) Extract(text string, base time.Time) ([]tag.Result, tag.QueryTag) {
	e.ExtractCalls.Add(1)

	preText := preprocess.Preprocess(text)
	raw := e.tagger.Tag(preText)

	var tags []tag.Tag
	for _, candidate := range raw {
		if candidate.Payload == nil && candidate.Family != tag.NOISE &&
			candidate.Family != tag.RangeOpen && candidate.Family != tag.RangeClose && candidate.Family != tag.RangeSep {
			e.ResolveErrors.Add(1)
			e.log.Warn("internal tag parse error: nil payload on a family that requires one",
				zap.String("family", candidate.Family.String()))
			continue
		}
		tags = append(tags, candidate)
	}
	e.TagsEmitted.Add(int64(len(tags)))

	cleaned := postprocess.Clean(tags)
	e.TagsDropped.Add(int64(len(tags) - len(cleaned)))

	baseInstant := tag.NewInstant(base)
	results, queryTag := merge.Merge(cleaned, baseInstant, e.ctx)
	return results, queryTag
}

// Metrics returns a point-in-time snapshot of this Extractor's
// counters.
func (e *Extractor) Metrics() metrics.Snapshot {
	return e.Counters.Snapshot()
}
