package grammar

import "strconv"

// chineseDigits maps single-character Chinese numerals to their value.
var chineseDigits = map[rune]int{
	'〇': 0, '零': 0, '一': 1, '二': 2, '两': 2, '三': 3, '四': 4,
	'五': 5, '六': 6, '七': 7, '八': 8, '九': 9, '十': 10, '廿': 20, '卅': 30,
}

// parseChineseNumeral converts a simple Chinese numeral word (up to two
// digits, the range this grammar needs for days-of-month, hours, and
// small offsets) into an integer. Supports bare digits ("三" -> 3),
// teens ("十五" -> 15, "十" -> 10), and tens ("二十" -> 20,
// "二十三" -> 23, "廿三" -> 23).
func parseChineseNumeral(s string) (int, bool) {
	runes := []rune(s)
	if len(runes) == 0 {
		return 0, false
	}

	// Bare Arabic digits, in case callers pass a pre-normalized string.
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}

	if len(runes) == 1 {
		v, ok := chineseDigits[runes[0]]
		return v, ok
	}

	// "廿三" / "卅一": tens-word directly followed by a units digit.
	if tens, ok := chineseDigits[runes[0]]; ok && (tens == 20 || tens == 30) && len(runes) == 2 {
		units, ok := chineseDigits[runes[1]]
		if !ok {
			return 0, false
		}
		return tens + units, true
	}

	// "十五": 十 followed by a units digit (10-19).
	if runes[0] == '十' && len(runes) == 2 {
		units, ok := chineseDigits[runes[1]]
		if !ok {
			return 0, false
		}
		return 10 + units, true
	}

	// "二十", "三十": a leading digit-word, then 十, optionally then units.
	if len(runes) >= 2 && runes[1] == '十' {
		tensDigit, ok := chineseDigits[runes[0]]
		if !ok || tensDigit < 1 || tensDigit > 9 {
			return 0, false
		}
		total := tensDigit * 10
		if len(runes) == 2 {
			return total, true
		}
		if len(runes) == 3 {
			units, ok := chineseDigits[runes[2]]
			if !ok {
				return 0, false
			}
			return total + units, true
		}
	}

	return 0, false
}

// fuzzyQuantifiers maps fuzzy-quantity words to a representative integer
// amount, per spec.md §4.2's DeltaRule ("a couple of" -> 2, "a few" -> 3).
var fuzzyQuantifiers = map[string]int{
	"几":        3,
	"几个":       3,
	"一些":       3,
	"couple":   2,
	"a couple": 2,
	"a couple of": 2,
	"few":      3,
	"a few":    3,
	"several":  4,
}
