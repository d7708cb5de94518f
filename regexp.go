package passmeter

import (
	"regexp"
	"strconv"
)

// regexCatalog holds the fixed regex weakness patterns. Only recent_year
// is part of the compatibility contract; additions must not change match
// coordinates of existing entries.
var regexCatalog = []struct {
	name string
	rx   *regexp.Regexp
}{
	{"recent_year", regexp.MustCompile(`19\d\d|20[0-4]\d|2050`)},
}

// regexMatch reports non-overlapping hits of the catalog patterns.
func (e *Estimator) regexMatch(password []rune) []*Match {
	var matches []*Match
	s := string(password)
	for _, entry := range regexCatalog {
		for _, loc := range entry.rx.FindAllStringIndex(s, -1) {
			i := len([]rune(s[:loc[0]]))
			token := s[loc[0]:loc[1]]
			j := i + len([]rune(token)) - 1
			m := &Match{
				Pattern:   PatternRegex,
				I:         i,
				J:         j,
				Token:     token,
				RegexName: entry.name,
			}
			if entry.name == "recent_year" {
				m.Year, _ = strconv.Atoi(token)
			}
			matches = append(matches, m)
		}
	}
	sortMatches(matches)
	return matches
}
