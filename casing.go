package symspell

import "unicode"

// casingClass is the casing pattern detected in a source string.
type casingClass int

const (
	casingLower casingClass = iota
	casingUpper
	casingTitle
	casingMixed
)

func classifyCasing(src string) casingClass {
	runes := []rune(src)

	hasLetter := false
	hasUpper := false
	hasLower := false
	for _, r := range runes {
		if !unicode.IsLetter(r) {
			continue
		}
		hasLetter = true
		if unicode.IsUpper(r) {
			hasUpper = true
		} else if unicode.IsLower(r) {
			hasLower = true
		}
	}

	if !hasLetter {
		return casingLower
	}
	if hasUpper && !hasLower {
		return casingUpper
	}
	if !hasUpper {
		return casingLower
	}

	// Mixed case: check specifically for title-case (first letter upper,
	// every other letter lower).
	firstLetterSeen := false
	isTitle := true
	for _, r := range runes {
		if !unicode.IsLetter(r) {
			continue
		}
		if !firstLetterSeen {
			firstLetterSeen = true
			if !unicode.IsUpper(r) {
				isTitle = false
				break
			}
			continue
		}
		if unicode.IsUpper(r) {
			isTitle = false
			break
		}
	}
	if isTitle {
		return casingTitle
	}
	return casingMixed
}

// transferCase maps target's letters to mirror source's casing class:
// all-upper, all-lower, title-case, or a character-by-character
// mirror of source's per-position case flags (mixed), truncated or padded to
// target's length. Non-letter source positions pass through as lower-case
// target characters.
func transferCase(src, target string) string {
	switch classifyCasing(src) {
	case casingUpper:
		return toUpperString(target)
	case casingTitle:
		return toTitleString(target)
	case casingMixed:
		return mirrorCase(src, target)
	default: // casingLower
		return toLowerString(target)
	}
}

func toUpperString(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = unicode.ToUpper(r)
	}
	return string(runes)
}

func toLowerString(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return string(runes)
}

func toTitleString(s string) string {
	runes := []rune(s)
	seenFirst := false
	for i, r := range runes {
		if !unicode.IsLetter(r) {
			runes[i] = unicode.ToLower(r)
			continue
		}
		if !seenFirst {
			runes[i] = unicode.ToUpper(r)
			seenFirst = true
		} else {
			runes[i] = unicode.ToLower(r)
		}
	}
	return string(runes)
}

func mirrorCase(src, target string) string {
	srcRunes := []rune(src)
	tgtRunes := []rune(target)

	out := make([]rune, len(tgtRunes))
	for i, r := range tgtRunes {
		upper := false
		if i < len(srcRunes) && unicode.IsUpper(srcRunes[i]) {
			upper = true
		}
		if upper {
			out[i] = unicode.ToUpper(r)
		} else {
			out[i] = unicode.ToLower(r)
		}
	}
	return string(out)
}
