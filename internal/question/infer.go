package question

import (
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// hullCodes are naval hull classification prefixes that carry no model name.
var hullCodes = map[string]struct{}{
	"DDG": {}, "FFG": {}, "CG": {}, "CVN": {}, "LHD": {}, "LHA": {},
	"DD": {}, "BB": {}, "SSN": {}, "SSK": {}, "SSBN": {}, "LCS": {},
	"DDH": {}, "DDX": {}, "CV": {}, "CVF": {}, "CVL": {}, "CVS": {},
}

// InferModel derives a human-readable ship model hint from an image file name.
//
// "DDG-51_Arleigh_Burke.png" becomes "Arleigh Burke". Numeric and short
// tokens are dropped, then hull codes, unless removing hull codes would leave
// nothing. When no token survives, the bare stem is returned as-is.
func InferModel(filename string) string {
	base := stem(filename)

	var tokens []string
	for _, chunk := range strings.FieldsFunc(base, isSeparator) {
		if isNumeric(chunk) || utf8.RuneCountInString(chunk) <= 2 {
			continue
		}
		tokens = append(tokens, chunk)
	}

	filtered := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, ok := hullCodes[strings.ToUpper(token)]; ok {
			continue
		}
		filtered = append(filtered, token)
	}
	if len(filtered) == 0 {
		filtered = tokens
	}

	hint := titleCase(strings.Join(strings.Fields(strings.Join(filtered, " ")), " "))
	if hint == "" {
		return base
	}
	return hint
}

// stem returns the base name without its final suffix. A name whose only dot
// is the leading one, or which ends in a dot, has no suffix.
func stem(filename string) string {
	if filename == "" {
		return ""
	}
	name := filepath.Base(filename)
	dot := strings.LastIndex(name, ".")
	if dot <= 0 || dot == len(name)-1 {
		return name
	}
	return name[:dot]
}

func isSeparator(r rune) bool {
	return r == ' ' || r == '_' || r == '-'
}

func isNumeric(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// titleCase upper-cases each cased letter that follows an uncased character
// and lower-cases the rest, so "o'BRIEN class" becomes "O'Brien Class".
func titleCase(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	prevCased := false
	for _, r := range value {
		cased := unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
		switch {
		case cased && prevCased:
			b.WriteRune(unicode.ToLower(r))
		case cased:
			b.WriteRune(unicode.ToTitle(r))
		default:
			b.WriteRune(r)
		}
		prevCased = cased
	}
	return b.String()
}
