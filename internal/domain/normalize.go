package domain

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// NormalizeText prepares text for storage and comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses runs of whitespace into one space
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}

// compactName drops everything but letters and digits so that
// "Sky-View CC" and "skyview cc" compare equal.
func compactName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SameName reports whether two names are equal under NormalizeText.
func SameName(a, b string) bool {
	return NormalizeText(a) == NormalizeText(b)
}

// MatchCourseName resolves name against a list of canonical names.
// It tries, in order: exact normalized match, punctuation-insensitive match,
// containment of one compact form in the other, and finally the closest
// Levenshtein candidate within a fifth of the name length (at least 1).
// Returns the canonical name and true on success.
func MatchCourseName(name string, canonical []string) (string, bool) {
	norm := NormalizeText(name)
	if norm == "" {
		return "", false
	}
	for _, c := range canonical {
		if NormalizeText(c) == norm {
			return c, true
		}
	}

	compact := compactName(norm)
	if compact == "" {
		return "", false
	}
	for _, c := range canonical {
		if compactName(c) == compact {
			return c, true
		}
	}

	// Containment only counts when the shorter side is specific enough.
	const minContained = 4
	for _, c := range canonical {
		cc := compactName(c)
		if cc == "" {
			continue
		}
		if len(compact) >= minContained && strings.Contains(cc, compact) {
			return c, true
		}
		if len(cc) >= minContained && strings.Contains(compact, cc) {
			return c, true
		}
	}

	if len([]rune(compact)) < minContained {
		return "", false
	}

	best, bestDist := "", -1
	for _, c := range canonical {
		cc := compactName(c)
		if cc == "" {
			continue
		}
		d := levenshtein.ComputeDistance(compact, cc)
		if bestDist == -1 || d < bestDist {
			best, bestDist = c, d
		}
	}
	threshold := max(1, len([]rune(compact))/5)
	if bestDist >= 0 && bestDist <= threshold {
		return best, true
	}
	return "", false
}
