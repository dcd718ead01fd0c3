package grammar

import (
	"regexp"
	"strconv"

	"github.com/az-ai-labs/timenlp/fst"
	"github.com/az-ai-labs/timenlp/tag"
)

// reZHDelta matches a quantity, a unit word, and a required direction
// suffix: "三天后", "两周后", "5天前", "几天后", "一个月以后".
var reZHDelta = regexp.MustCompile(
	`(\d+|[〇零一二两三四五六七八九十廿卅]+|几个|几|一些)(年|个月|月|周|星期|天|日|小时|钟头|分钟|分|秒)(之后|以后|后|之前|以前|前)`)

// reZHDeltaBracket matches "近" ("approximately/recent") as a prefix
// fuzzy quantifier with no direction suffix: "近一年", "近几天". It
// resolves to a symmetric bracket around base rather than a shift.
var reZHDeltaBracket = regexp.MustCompile(
	`近(\d+|[〇零一二两三四五六七八九十廿卅]+|几个|几|一些)(年|个月|月|周|星期|天|日|小时|钟头|分钟|分|秒)`)

var zhDeltaUnits = map[string]tag.DeltaUnit{
	"年": tag.DeltaYear,
	"个月": tag.DeltaMonth, "月": tag.DeltaMonth,
	"周": tag.DeltaWeek, "星期": tag.DeltaWeek,
	"天": tag.DeltaDay, "日": tag.DeltaDay,
	"小时": tag.DeltaHour, "钟头": tag.DeltaHour,
	"分钟": tag.DeltaMinute, "分": tag.DeltaMinute,
	"秒": tag.DeltaSecond,
}

var zhFutureSuffixes = map[string]bool{"之后": true, "以后": true, "后": true}

// newZHDeltaFragment implements DeltaRule: a signed quantity of a time
// unit relative to the base instant, including fuzzy quantifiers like
// "几天后" ("a few days from now") and the fuzzy bracket "近一年"
// ("roughly the past/next year").
func newZHDeltaFragment() fst.Fragment {
	return fst.FragmentFunc{
		FragmentName: "zh.delta",
		ScanFunc: func(s string) []fst.Match {
			var out []fst.Match
			out = append(out, scanZHDeltaDirectional(s)...)
			out = append(out, scanZHDeltaBracket(s)...)
			return out
		},
	}
}

func scanZHDeltaDirectional(s string) []fst.Match {
	var out []fst.Match
	for _, m := range reZHDelta.FindAllStringSubmatchIndex(s, -1) {
		qtyStr := s[m[2]:m[3]]
		unitStr := s[m[4]:m[5]]
		dirStr := s[m[6]:m[7]]

		unit, ok := zhDeltaUnits[unitStr]
		if !ok {
			continue
		}

		amount, fuzzy, ok := parseZHQuantity(qtyStr)
		if !ok {
			continue
		}

		future := zhFutureSuffixes[dirStr]
		if !future {
			amount = -amount
		}

		start, end, u, amt, fz := m[0], m[1], unit, amount, fuzzy
		out = append(out, fst.Match{
			Start: start, End: end, Weight: weightDelta, Source: "zh.delta",
			Emit: func() tag.Tag {
				return tag.Tag{Family: tag.DELTA, Start: start, End: end, Payload: tag.DeltaPayload{
					Unit: u, Amount: amt, Fuzzy: fz,
				}}
			},
		})
	}
	return out
}

// scanZHDeltaBracket handles the "近<quantity><unit>" fuzzy-prefix
// construct, which has no direction of its own and resolves to a
// symmetric ±amount bracket around base.
func scanZHDeltaBracket(s string) []fst.Match {
	var out []fst.Match
	for _, m := range reZHDeltaBracket.FindAllStringSubmatchIndex(s, -1) {
		qtyStr := s[m[2]:m[3]]
		unitStr := s[m[4]:m[5]]

		unit, ok := zhDeltaUnits[unitStr]
		if !ok {
			continue
		}
		amount, _, ok := parseZHQuantity(qtyStr)
		if !ok {
			continue
		}

		start, end, u, amt := m[0], m[1], unit, amount
		out = append(out, fst.Match{
			Start: start, End: end, Weight: weightDelta, Source: "zh.delta",
			Emit: func() tag.Tag {
				return tag.Tag{Family: tag.DELTA, Start: start, End: end, Payload: tag.DeltaPayload{
					Unit: u, Amount: amt, Fuzzy: true, Bracket: true,
				}}
			},
		})
	}
	return out
}

func parseZHQuantity(s string) (amount int, fuzzy bool, ok bool) {
	if n, ok := fuzzyQuantifiers[s]; ok {
		return n, true, true
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, false, true
	}
	if n, ok := parseChineseNumeral(s); ok {
		return n, false, true
	}
	return 0, false, false
}
