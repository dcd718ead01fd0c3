package grammar

// Fragment weights. Lower wins when fst.SelectCover must choose between
// overlapping candidates from different rule families, mirroring
// spec.md §4.4's specificity order:
// UTC > LUNAR > HOLIDAY > REL+CLOCK > REL > WEEK > PERIOD > CLOCK > DELTA.
// NOISE sits below everything so a disambiguation fragment always wins
// the span it covers.
const (
	weightNoise    = -100
	weightUTC      = 0
	weightLunar    = 10
	weightRecur    = 15
	weightHoliday  = 20
	weightRel      = 30
	weightWeek     = 40
	weightCentury  = 45
	weightDecade   = 46
	weightPeriod   = 50
	weightClock    = 60
	weightDelta    = 70
	weightOrdinal  = 80
	weightRangeTok = 5 // RANGE_OPEN/SEP/CLOSE markers: narrow spans, should never lose to a wider false positive
)
