package passmeter

import (
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// l33tTable maps a letter to the substitute characters that commonly stand
// in for it. The table is part of the compatibility contract and must not
// be changed.
var l33tTable = map[string][]string{
	"a": {"4", "@"},
	"b": {"8"},
	"c": {"(", "{", "[", "<"},
	"e": {"3"},
	"g": {"6", "9"},
	"i": {"1", "!", "|"},
	"l": {"1", "|", "7"},
	"o": {"0"},
	"s": {"$", "5"},
	"t": {"+", "7"},
	"x": {"%"},
	"z": {"2"},
}

// lowerRunes lowercases rune by rune so indices stay aligned with the
// original password.
func lowerRunes(password []rune) []rune {
	lower := make([]rune, len(password))
	for i, r := range password {
		lower[i] = unicode.ToLower(r)
	}
	return lower
}

// matchRanked scans every substring of password against the given ranked
// dictionaries. Dictionary names are iterated in sorted order so results
// are deterministic.
func matchRanked(password []rune, dicts map[string]rankedDictionary, names []string) []*Match {
	var matches []*Match
	n := len(password)
	lower := lowerRunes(password)
	for _, name := range names {
		dict := dicts[name]
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				word := string(lower[i : j+1])
				rank, ok := dict[word]
				if !ok {
					continue
				}
				matches = append(matches, &Match{
					Pattern:        PatternDictionary,
					I:              i,
					J:              j,
					Token:          string(password[i : j+1]),
					DictionaryName: name,
					MatchedWord:    word,
					Rank:           rank,
				})
			}
		}
	}
	sortMatches(matches)
	return matches
}

func (e *Estimator) dictionaryMatch(password []rune) []*Match {
	return matchRanked(password, e.ranked, e.dictNames)
}

// reverseDictionaryMatch finds words typed backwards by scanning the
// password against the reversed-token views of each dictionary.
func (e *Estimator) reverseDictionaryMatch(password []rune) []*Match {
	matches := matchRanked(password, e.reversed, e.dictNames)
	for _, m := range matches {
		m.Reversed = true
		// the dictionary word is the mirror of the covered token
		m.MatchedWord = reverseString(m.MatchedWord)
	}
	return matches
}

// relevantL33tSubtable restricts the l33t table to substitute characters
// that actually occur in the password.
func relevantL33tSubtable(password []rune) map[string][]string {
	present := map[string]bool{}
	for _, r := range password {
		present[string(r)] = true
	}
	subtable := map[string][]string{}
	for letter, subs := range l33tTable {
		var relevant []string
		for _, sub := range subs {
			if present[sub] {
				relevant = append(relevant, sub)
			}
		}
		if len(relevant) > 0 {
			subtable[letter] = relevant
		}
	}
	return subtable
}

// enumerateL33tSubs lists every non-empty substitution map over the
// characters in the subtable: each substitute character is either unused
// or stands for one of its candidate letters, and at least one must be
// used. Enumeration order is deterministic.
func enumerateL33tSubs(subtable map[string][]string) []map[string]string {
	// invert to substitute char -> candidate letters
	letters := make(map[string][]string)
	for letter, subs := range subtable {
		for _, sub := range subs {
			letters[sub] = append(letters[sub], letter)
		}
	}
	chars := make([]string, 0, len(letters))
	for sub := range letters {
		sort.Strings(letters[sub])
		chars = append(chars, sub)
	}
	sort.Strings(chars)

	subs := []map[string]string{{}}
	for _, chr := range chars {
		next := make([]map[string]string, 0, len(subs)*(len(letters[chr])+1))
		for _, sub := range subs {
			next = append(next, sub)
			for _, letter := range letters[chr] {
				extended := make(map[string]string, len(sub)+1)
				for k, v := range sub {
					extended[k] = v
				}
				extended[chr] = letter
				next = append(next, extended)
			}
		}
		subs = next
	}
	nonEmpty := subs[:0]
	for _, sub := range subs {
		if len(sub) > 0 {
			nonEmpty = append(nonEmpty, sub)
		}
	}
	return nonEmpty
}

// translateRunes applies a substitution map to the password.
func translateRunes(password []rune, sub map[string]string) []rune {
	out := make([]rune, len(password))
	for i, r := range password {
		if letter, ok := sub[string(r)]; ok {
			out[i] = []rune(letter)[0]
		} else {
			out[i] = r
		}
	}
	return out
}

// l33tMatch de-l33ts the password under every candidate substitution map
// and reports dictionary hits whose covered range actually used at least
// one substitution. Single-character hits are noise and dropped.
func (e *Estimator) l33tMatch(password []rune) []*Match {
	var matches []*Match
	seen := map[string]bool{}
	for _, sub := range enumerateL33tSubs(relevantL33tSubtable(password)) {
		subbed := translateRunes(password, sub)
		for _, m := range matchRanked(subbed, e.ranked, e.dictNames) {
			token := string(password[m.I : m.J+1])
			if strings.ToLower(token) == m.MatchedWord {
				// no substitution inside the match range
				continue
			}
			if len([]rune(token)) <= 1 {
				continue
			}
			matchSub := map[string]string{}
			for chr, letter := range sub {
				if strings.Contains(token, chr) {
					matchSub[chr] = letter
				}
			}
			key := dedupeKey(m, matchSub)
			if seen[key] {
				continue
			}
			seen[key] = true
			m.Token = token
			m.L33t = true
			m.Sub = matchSub
			m.SubDisplay = subDisplay(matchSub)
			matches = append(matches, m)
		}
	}
	sortMatches(matches)
	return matches
}

func subDisplay(sub map[string]string) string {
	keys := make([]string, 0, len(sub))
	for k := range sub {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" -> "+sub[k])
	}
	return strings.Join(parts, ", ")
}

func dedupeKey(m *Match, sub map[string]string) string {
	return strconv.Itoa(m.I) + ":" + strconv.Itoa(m.J) + ":" + m.DictionaryName + ":" + m.MatchedWord + ":" + subDisplay(sub)
}
