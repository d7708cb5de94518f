package passmeter

import (
	"math"
	"regexp"
	"strings"
)

const (
	bruteforceCardinality        = 10
	minSubmatchGuessesSingleChar = 10
	minSubmatchGuessesMultiChar  = 50
	minYearSpace                 = 20
	referenceYear                = 2000
)

var (
	startUpper = regexp.MustCompile(`^[A-Z][^A-Z]+$`)
	endUpper   = regexp.MustCompile(`^[^A-Z]+[A-Z]$`)
	allUpper   = regexp.MustCompile(`^[^a-z]+$`)
	allLower   = regexp.MustCompile(`^[^A-Z]+$`)
)

// estimateGuesses assigns a guess count to a match, memoizing on the match
// itself. Submatch floors only apply when the match covers part of the
// password: a full-cover match already is the whole attack surface.
func (e *Estimator) estimateGuesses(m *Match, password []rune) float64 {
	if m.Guesses > 0 {
		return m.Guesses
	}
	minGuesses := 1.0
	if m.Length() < len(password) {
		if m.Length() == 1 {
			minGuesses = minSubmatchGuessesSingleChar
		} else {
			minGuesses = minSubmatchGuessesMultiChar
		}
	}

	var guesses float64
	switch m.Pattern {
	case PatternDictionary:
		guesses = dictionaryGuesses(m)
	case PatternSpatial:
		guesses = e.spatialGuesses(m)
	case PatternRepeat:
		guesses = repeatGuesses(m)
	case PatternSequence:
		guesses = sequenceGuesses(m)
	case PatternRegex:
		guesses = regexGuesses(m)
	case PatternDate:
		guesses = dateGuesses(m)
	case PatternBruteforce:
		return e.bruteforceGuesses(m, password)
	}

	m.Guesses = math.Max(guesses, minGuesses)
	m.GuessesLog10 = math.Log10(m.Guesses)
	return m.Guesses
}

func (e *Estimator) bruteforceGuesses(m *Match, password []rune) float64 {
	guesses := math.Pow(bruteforceCardinality, float64(m.Length()))
	if math.IsInf(guesses, 1) {
		guesses = math.MaxFloat64
	}
	// small detail: make bruteforce matches at minimum one guess bigger
	// than smallest allowed submatch guesses, such that non-bruteforce
	// submatches over the same span are preferred
	minGuesses := float64(minSubmatchGuessesSingleChar + 1)
	if m.Length() > 1 {
		minGuesses = minSubmatchGuessesMultiChar + 1
	}
	if m.Length() == len(password) {
		minGuesses = 1
	}
	m.Guesses = math.Max(guesses, minGuesses)
	m.GuessesLog10 = math.Log10(m.Guesses)
	return m.Guesses
}

func dictionaryGuesses(m *Match) float64 {
	guesses := float64(m.Rank) * uppercaseVariations(m.Token) * l33tVariations(m)
	if m.Reversed {
		guesses *= 2
	}
	return guesses
}

// uppercaseVariations counts the capitalization patterns an attacker has
// to try on top of the lowercase word. First-letter-only and all-caps
// styles are so common they only double the work.
func uppercaseVariations(word string) float64 {
	if allLower.MatchString(word) || strings.ToLower(word) == word {
		return 1
	}
	for _, rx := range []*regexp.Regexp{startUpper, endUpper, allUpper} {
		if rx.MatchString(word) {
			return 2
		}
	}
	upper, lower := 0, 0
	for _, r := range word {
		switch {
		case r >= 'A' && r <= 'Z':
			upper++
		case r >= 'a' && r <= 'z':
			lower++
		}
	}
	variations := 0.0
	for i := 1; i <= min(upper, lower); i++ {
		variations += nCk(upper+lower, i)
	}
	return variations
}

func l33tVariations(m *Match) float64 {
	if !m.L33t {
		return 1
	}
	variations := 1.0
	lowerToken := strings.ToLower(m.Token)
	for subbed, unsubbed := range m.Sub {
		subbedCount := strings.Count(lowerToken, subbed)
		unsubbedCount := strings.Count(lowerToken, unsubbed)
		if subbedCount == 0 || unsubbedCount == 0 {
			// for this substitution, password is either fully subbed (444)
			// or fully unsubbed (aaa): the attacker just tries both
			variations *= 2
			continue
		}
		// this case is similar to capitalization: with aa44a, the attacker
		// needs to try unsubbed 'a' in each possible position
		possibilities := 0.0
		for i := 1; i <= min(subbedCount, unsubbedCount); i++ {
			possibilities += nCk(subbedCount+unsubbedCount, i)
		}
		variations *= possibilities
	}
	return variations
}

func (e *Estimator) spatialGuesses(m *Match) float64 {
	graph := e.graphs[m.Graph]
	s := float64(graph.KeyCount)
	d := graph.AverageDegree
	guesses := 0.0
	tokenLen := m.Length()
	// estimate the number of possible patterns of token length or less
	// with the match's turn count or fewer turns
	for i := 2; i <= tokenLen; i++ {
		possibleTurns := min(m.Turns, i-1)
		for j := 1; j <= possibleTurns; j++ {
			guesses += nCk(i-1, j-1) * s * math.Pow(d, float64(j))
		}
	}
	// add extra guesses for shifted keys (% instead of 5, A instead of a)
	if m.ShiftedCount > 0 {
		shifted := m.ShiftedCount
		unshifted := tokenLen - shifted
		if shifted == 0 || unshifted == 0 {
			guesses *= 2
		} else {
			variations := 0.0
			for i := 1; i <= min(shifted, unshifted); i++ {
				variations += nCk(shifted+unshifted, i)
			}
			guesses *= variations
		}
	}
	return guesses
}

func repeatGuesses(m *Match) float64 {
	return m.BaseGuesses * float64(m.RepeatCount)
}

func sequenceGuesses(m *Match) float64 {
	firstChr := []rune(m.Token)[0]
	var baseGuesses float64
	switch {
	case strings.ContainsRune("aAzZ019", firstChr):
		// lower guesses for obvious starting points
		baseGuesses = 4
	case firstChr >= '0' && firstChr <= '9':
		baseGuesses = 10
	default:
		baseGuesses = 26
	}
	if !m.Ascending {
		// need to try a descending sequence in addition to every ascending one
		baseGuesses *= 2
	}
	return baseGuesses * float64(m.Length())
}

func regexGuesses(m *Match) float64 {
	if m.RegexName == "recent_year" {
		return math.Max(math.Abs(float64(m.Year-referenceYear)), minYearSpace)
	}
	return math.Pow(26, float64(m.Length()))
}

func dateGuesses(m *Match) float64 {
	yearSpace := math.Max(math.Abs(float64(m.Year-referenceYear)), minYearSpace)
	guesses := yearSpace * 365
	if m.Separator != "" {
		guesses *= 4
	}
	return guesses
}

// guessesToScore buckets a guess count into the 0-4 score. The +5 delta
// keeps boundary guess counts from flapping between buckets.
func guessesToScore(guesses float64) int {
	const delta = 5
	switch {
	case guesses < 1e3+delta:
		return 0
	case guesses < 1e6+delta:
		return 1
	case guesses < 1e8+delta:
		return 2
	case guesses < 1e10+delta:
		return 3
	default:
		return 4
	}
}

// nCk is the binomial coefficient, computed multiplicatively in floats:
// guess counts live in float64 anyway and n stays small.
func nCk(n, k int) float64 {
	if k > n {
		return 0
	}
	if k == 0 {
		return 1
	}
	r := 1.0
	for d := 1; d <= k; d++ {
		r *= float64(n)
		r /= float64(d)
		n--
	}
	return r
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
