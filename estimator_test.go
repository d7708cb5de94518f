package passmeter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustEstimator(t *testing.T, opts *Options) *Estimator {
	t.Helper()
	e, err := New(opts)
	require.Nil(t, err)
	return e
}

// requireTiles asserts the invariant every result must hold: the match
// sequence covers the password exactly, with abutting matches.
func requireTiles(t *testing.T, result *Result) {
	t.Helper()
	runes := []rune(result.Password)
	if len(runes) == 0 {
		require.Empty(t, result.Sequence)
		return
	}
	require.NotEmpty(t, result.Sequence)
	require.EqualValues(t, 0, result.Sequence[0].I)
	require.EqualValues(t, len(runes)-1, result.Sequence[len(result.Sequence)-1].J)
	for k, m := range result.Sequence {
		require.Equal(t, string(runes[m.I:m.J+1]), m.Token)
		if k > 0 {
			require.EqualValues(t, result.Sequence[k-1].J+1, m.I)
		}
	}
}

func TestEstimateEmptyPassword(t *testing.T) {
	result := Estimate("")
	require.EqualValues(t, 1, result.Guesses)
	require.EqualValues(t, 0, result.GuessesLog10)
	require.EqualValues(t, 0, result.Score)
	require.Empty(t, result.Sequence)
}

func TestEstimateTopPassword(t *testing.T) {
	e := mustEstimator(t, nil)
	result := e.Estimate("password")
	requireTiles(t, result)
	require.Len(t, result.Sequence, 1)

	m := result.Sequence[0]
	require.Equal(t, PatternDictionary, m.Pattern)
	require.Equal(t, "passwords", m.DictionaryName)
	require.EqualValues(t, 1, m.Rank)
	// rank 1, no variations, plus the constant additive term
	require.EqualValues(t, 2, result.Guesses)
	require.EqualValues(t, 0, result.Score)
	require.Equal(t, "This is a top-10 common password", result.Feedback.Warning)
}

func TestEstimateL33tPassword(t *testing.T) {
	e := mustEstimator(t, nil)
	result := e.Estimate("p@ssword")
	requireTiles(t, result)
	require.Len(t, result.Sequence, 1)

	m := result.Sequence[0]
	require.Equal(t, PatternDictionary, m.Pattern)
	require.True(t, m.L33t)
	require.Equal(t, "password", m.MatchedWord)
	require.Equal(t, map[string]string{"@": "a"}, m.Sub)
	require.EqualValues(t, 0, result.Score)
}

func TestEstimateSequencePassword(t *testing.T) {
	e := mustEstimator(t, nil)
	result := e.Estimate("abcdefghijk")
	requireTiles(t, result)
	require.Len(t, result.Sequence, 1)

	m := result.Sequence[0]
	require.Equal(t, PatternSequence, m.Pattern)
	require.Equal(t, "lower", m.SequenceName)
	require.True(t, m.Ascending)
	// obvious start 'a': 4 base guesses per character, plus the additive term
	require.EqualValues(t, 4*11+1, result.Guesses)
	require.Equal(t, "Sequences like abc or 6543 are easy to guess", result.Feedback.Warning)
}

func TestEstimateDatePassword(t *testing.T) {
	e := mustEstimator(t, nil)
	result := e.Estimate("11/11/2011")
	requireTiles(t, result)
	require.Len(t, result.Sequence, 1)

	m := result.Sequence[0]
	require.Equal(t, PatternDate, m.Pattern)
	require.EqualValues(t, 2011, m.Year)
	require.EqualValues(t, 11, m.Month)
	require.EqualValues(t, 11, m.Day)
	require.Equal(t, "/", m.Separator)
	// year distance below the minimum year space: 20 * 365 * 4 + 1
	require.EqualValues(t, 20*365*4+1, result.Guesses)
	require.EqualValues(t, 1, result.Score)
}

func TestEstimatePassphrase(t *testing.T) {
	e := mustEstimator(t, nil)
	result := e.Estimate("correcthorsebatterystaple")
	requireTiles(t, result)
	require.Len(t, result.Sequence, 4)

	words := []string{"correct", "horse", "battery", "staple"}
	product := 1.0
	for k, m := range result.Sequence {
		require.Equal(t, PatternDictionary, m.Pattern)
		require.Equal(t, words[k], m.MatchedWord)
		product *= float64(e.ranked["english_wikipedia"][words[k]])
	}
	expected := factorial(4)*product + 10000*10000*10000
	require.EqualValues(t, expected, result.Guesses)
	require.GreaterOrEqual(t, result.Score, 3)
	require.Empty(t, result.Feedback.Warning)
	require.Empty(t, result.Feedback.Suggestions)
}

func TestEstimateL33tWithTail(t *testing.T) {
	e := mustEstimator(t, nil)
	result := e.Estimate("Tr0ub4dour&3")
	requireTiles(t, result)
	require.Len(t, result.Sequence, 2)

	m := result.Sequence[0]
	require.Equal(t, PatternDictionary, m.Pattern)
	require.True(t, m.L33t)
	require.Equal(t, "troubadour", m.MatchedWord)
	require.Equal(t, map[string]string{"0": "o", "4": "a"}, m.Sub)
	// rank * capitalized-first * ('0'<->'o' choice * fully-subbed '4')
	rank := float64(e.ranked["english_wikipedia"]["troubadour"])
	require.EqualValues(t, rank*2*4, m.Guesses)

	require.Equal(t, PatternBruteforce, result.Sequence[1].Pattern)
	require.EqualValues(t, 1, result.Score)
}

func TestEstimateRepeatWithL33tPrefix(t *testing.T) {
	e := mustEstimator(t, nil)
	result := e.Estimate("D0g...................")
	requireTiles(t, result)
	require.Len(t, result.Sequence, 2)

	dict, repeat := result.Sequence[0], result.Sequence[1]
	require.Equal(t, PatternDictionary, dict.Pattern)
	require.True(t, dict.L33t)
	require.Equal(t, "dog", dict.MatchedWord)
	require.Equal(t, PatternRepeat, repeat.Pattern)
	require.Equal(t, ".", repeat.BaseToken)
	require.EqualValues(t, 19, repeat.RepeatCount)

	rank := float64(e.ranked["english_wikipedia"]["dog"])
	expected := 2*(rank*2*2)*(11*19) + 10000
	require.EqualValues(t, expected, result.Guesses)
}

func TestEstimateBruteforceOnly(t *testing.T) {
	e := mustEstimator(t, nil)
	result := e.Estimate("zmqlvw")
	requireTiles(t, result)
	require.Len(t, result.Sequence, 1)
	require.Equal(t, PatternBruteforce, result.Sequence[0].Pattern)
	require.EqualValues(t, 1e6+1, result.Guesses)
	require.EqualValues(t, 1, result.Score)
}

// appending a character to a bruteforce-only password never lowers the
// guess count
func TestEstimateBruteforceMonotonic(t *testing.T) {
	e := mustEstimator(t, nil)
	password := "mqzkvjx"
	last := 0.0
	for i := 1; i <= len(password); i++ {
		result := e.Estimate(password[:i])
		require.Greater(t, result.Guesses, last, "prefix %q", password[:i])
		last = result.Guesses
	}
}

func TestEstimateDeterministic(t *testing.T) {
	e := mustEstimator(t, nil)
	first := e.Estimate("Tr0ub4dour&3")
	second := e.Estimate("Tr0ub4dour&3")
	first.CalcTime, second.CalcTime = 0, 0
	require.Equal(t, first, second)
}

func TestEstimateTruncation(t *testing.T) {
	e := mustEstimator(t, &Options{MaxLength: 5})
	result := e.Estimate("password")
	require.Equal(t, "passw", result.Password)
	requireTiles(t, result)
}

func TestEstimateUserInputs(t *testing.T) {
	e := mustEstimator(t, &Options{UserInputs: []string{"AcmeCorp", "wile"}})
	result := e.Estimate("acmecorp")
	require.Len(t, result.Sequence, 1)

	m := result.Sequence[0]
	require.Equal(t, PatternDictionary, m.Pattern)
	require.Equal(t, UserInputsDictionary, m.DictionaryName)
	require.EqualValues(t, 1, m.Rank)
	require.EqualValues(t, 0, result.Score)
}

func TestEstimateCustomDictionaries(t *testing.T) {
	e := mustEstimator(t, &Options{
		Dictionaries: map[string][]string{
			"company_terms": {"flurble", "blorptech"},
		},
	})
	result := e.Estimate("blorptech")
	require.Len(t, result.Sequence, 1)
	require.Equal(t, "company_terms", result.Sequence[0].DictionaryName)
	require.EqualValues(t, 2, result.Sequence[0].Rank)
}

func TestEstimateStrictRejectsInvalidUTF8(t *testing.T) {
	e := mustEstimator(t, nil)
	_, err := e.EstimateStrict(string([]byte{0xff, 0xfe}))
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestScoreThresholds(t *testing.T) {
	testcases := []struct {
		guesses float64
		score   int
	}{
		{1, 0},
		{1e3 + 4, 0},
		{1e3 + 5, 1},
		{1e6 + 4, 1},
		{1e6 + 5, 2},
		{1e8 + 4, 2},
		{1e8 + 5, 3},
		{1e10 + 4, 3},
		{1e10 + 5, 4},
	}
	for _, tc := range testcases {
		require.EqualValues(t, tc.score, guessesToScore(tc.guesses), "guesses %v", tc.guesses)
	}
}

func TestLoadDictionaries(t *testing.T) {
	dicts, err := LoadDictionaries()
	require.Nil(t, err)
	for _, name := range frequencyListNames {
		require.NotEmpty(t, dicts[name], "missing %v", name)
	}
	require.EqualValues(t, 1, dicts["passwords"]["password"])
}
