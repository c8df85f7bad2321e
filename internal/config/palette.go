package config

const (
	latinChars  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	symbolChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// Katakana Unicode block U+30A0..U+30FF.
	katakanaFirst = 0x30A0
	katakanaLast  = 0x30FF

	// How many runes of the Katakana block the Mixed palette takes.
	mixedKatakanaCount = 96
)

func buildPalette(p Params) []rune {
	switch p.CharSet {
	case CharSetLatin:
		return []rune(latinChars)
	case CharSetKatakana:
		return katakanaRunes(katakanaLast - katakanaFirst + 1)
	case CharSetBinary:
		return []rune{'0', '1'}
	case CharSetCustom:
		if p.CustomChars != "" {
			return []rune(p.CustomChars)
		}
		fallthrough
	default: // Mixed
		palette := []rune(latinChars + symbolChars)
		return append(palette, katakanaRunes(mixedKatakanaCount)...)
	}
}

func katakanaRunes(n int) []rune {
	runes := make([]rune, 0, n)
	for r := rune(katakanaFirst); r < katakanaFirst+rune(n); r++ {
		runes = append(runes, r)
	}
	return runes
}
