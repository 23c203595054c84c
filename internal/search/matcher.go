package search

import (
	"strings"
	"unicode/utf8"

	"actionsearch/internal/domain"
)

// Result sections. Lower sections sort first.
const (
	SectionHistory   = 0 // recently used, or unranked "show all"
	SectionPrefix    = 1 // label starts with the keyword, or initials match
	SectionSubstring = 2 // keyword found inside the label
	SectionTooltip   = 3 // keyword found in the tooltip
	SectionFuzzy     = 4 // keyword characters appear in order in the label
)

// MatchKeyword decides whether action matches keyword and in which section
// it ranks. A nil keyword matches every action in SectionHistory. Matching
// is case-insensitive.
//
// Rules, first success wins:
//   - a two-character keyword matches the first letters of the label's
//     first and second words ("gb" finds "Gaussian Blur...")
//   - the keyword is a substring of the label
//   - a keyword longer than two characters is a substring of the tooltip
//   - the keyword is a subsequence of the label
func MatchKeyword(action *domain.Action, keyword *string) (int, bool) {
	if keyword == nil {
		return SectionHistory, true
	}

	key := strings.ToLower(*keyword)
	label := strings.ToLower(action.DisplayLabel())
	keyLen := utf8.RuneCountInString(key)

	if keyLen == 2 && initialsMatch(label, key) {
		return SectionPrefix, true
	}

	if i := strings.Index(label, key); i >= 0 {
		if i == 0 {
			return SectionPrefix, true
		}
		return SectionSubstring, true
	}

	if keyLen > 2 && action.Tooltip != "" {
		if strings.Contains(strings.ToLower(action.Tooltip), key) {
			return SectionTooltip, true
		}
	}

	if fuzzyMatch(label, key) {
		return SectionFuzzy, true
	}

	return 0, false
}

// initialsMatch reports whether the two runes of key are the first rune of
// label and the rune right after label's first space. Single-word labels
// never match.
func initialsMatch(label, key string) bool {
	space := strings.IndexByte(label, ' ')
	if space < 0 {
		return false
	}

	k0, n := utf8.DecodeRuneInString(key)
	k1, _ := utf8.DecodeRuneInString(key[n:])

	first, _ := utf8.DecodeRuneInString(label)
	second, size := utf8.DecodeRuneInString(label[space+1:])
	if size == 0 {
		return false
	}
	return first == k0 && second == k1
}

// fuzzyMatch reports whether every rune of key occurs in s in the same
// order. Each key rune consumes the leftmost occurrence after the previous
// one.
func fuzzyMatch(s, key string) bool {
	rest := s
	for _, r := range key {
		i := strings.IndexRune(rest, r)
		if i < 0 {
			return false
		}
		_, size := utf8.DecodeRuneInString(rest[i:])
		rest = rest[i+size:]
	}
	return true
}
