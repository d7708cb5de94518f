package passmeter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFeedbackEmptyForStrongPasswords(t *testing.T) {
	result := Estimate("correcthorsebatterystaple")
	require.GreaterOrEqual(t, result.Score, 3)
	require.Empty(t, result.Feedback.Warning)
	require.Empty(t, result.Feedback.Suggestions)
}

func TestFeedbackDefaultSuggestions(t *testing.T) {
	result := Estimate("")
	require.Empty(t, result.Feedback.Warning)
	require.Equal(t, []string{
		"Use a few words, avoid common phrases",
		"No need for symbols, digits, or uppercase letters",
	}, result.Feedback.Suggestions)
}

func TestFeedbackTopPasswordTiers(t *testing.T) {
	e := mustEstimator(t, nil)
	require.Equal(t, "This is a top-10 common password", e.Estimate("password").Feedback.Warning)
	require.Equal(t, "This is a top-100 common password", e.Estimate("monkey").Feedback.Warning)
}

func TestFeedbackReversedWord(t *testing.T) {
	result := Estimate("drowssap")
	require.Contains(t, result.Feedback.Suggestions, "Reversed words aren't much harder to guess")
}

func TestFeedbackL33tSubstitution(t *testing.T) {
	result := Estimate("p@ssword")
	require.Contains(t, result.Feedback.Suggestions, "Predictable substitutions like '@' for 'a' don't help very much")
}

func TestFeedbackCapitalization(t *testing.T) {
	result := Estimate("Password")
	require.Contains(t, result.Feedback.Suggestions, "Capitalization doesn't help very much")
}

func TestFeedbackRepeat(t *testing.T) {
	e := mustEstimator(t, nil)
	require.Equal(t, `Repeats like "aaa" are easy to guess`, e.Estimate("aaaaaaa").Feedback.Warning)
	require.Equal(t, `Repeats like "abcabcabc" are only slightly harder to guess than "abc"`,
		e.Estimate("xzvxzvxzv").Feedback.Warning)
}

func TestFeedbackSpatial(t *testing.T) {
	e := mustEstimator(t, nil)
	// straight row, single direction
	result := e.Estimate("asdfghjkl")
	require.Equal(t, "Straight rows of keys are easy to guess", result.Feedback.Warning)
}

func TestFeedbackDateAndYear(t *testing.T) {
	e := mustEstimator(t, nil)
	require.Equal(t, "Dates are often easy to guess", e.Estimate("11/11/2011").Feedback.Warning)
	require.Equal(t, "Recent years are easy to guess", e.Estimate("2019").Feedback.Warning)
}

func TestFeedbackEveryMatchHasSuggestionPrefix(t *testing.T) {
	result := Estimate("monkey")
	require.Equal(t, "Add another word or two. Uncommon words are better.", result.Feedback.Suggestions[0])
}

func TestTranslator(t *testing.T) {
	e := mustEstimator(t, &Options{Translate: strings.ToUpper})
	result := e.Estimate("password")
	require.Equal(t, "THIS IS A TOP-10 COMMON PASSWORD", result.Feedback.Warning)
}
