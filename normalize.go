package sitebot

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	spaceRe = regexp.MustCompile(`\s+`)
	junkRe  = regexp.MustCompile(`[^\p{L}\p{N}\s.,!?'&:/@+-]`)
)

// NormalizeSpace collapses all whitespace runs to single spaces and
// trims leading and trailing whitespace.
func NormalizeSpace(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

// CleanText normalizes whitespace and strips characters that are
// neither letters, digits, whitespace, nor common punctuation. Entity
// remnants and decorative symbols from scraped markup are removed.
func CleanText(s string) string {
	return NormalizeSpace(junkRe.ReplaceAllString(s, ""))
}

// NormalizedKey returns the canonical dedup key for a piece of text:
// lowercased with whitespace collapsed.
func NormalizedKey(s string) string {
	return strings.ToLower(NormalizeSpace(s))
}

// AlphanumericRatio returns the share of non-space runes that are
// letters or digits. Low ratios indicate symbol or number noise.
func AlphanumericRatio(s string) float64 {
	var total, alnum int
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			alnum++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(alnum) / float64(total)
}
