package passmeter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDateMatchNoSeparator(t *testing.T) {
	e := mustEstimator(t, nil)
	matches := e.dateMatch([]rune("11111991"))
	require.Len(t, matches, 1)
	m := matches[0]
	require.Equal(t, PatternDate, m.Pattern)
	require.EqualValues(t, 0, m.I)
	require.EqualValues(t, 7, m.J)
	require.EqualValues(t, 1991, m.Year)
	require.EqualValues(t, 11, m.Month)
	require.EqualValues(t, 11, m.Day)
	require.Equal(t, "", m.Separator)
}

func TestDateMatchSeparated(t *testing.T) {
	e := mustEstimator(t, nil)

	testcases := []struct {
		password         string
		year, month, day int
		separator        string
	}{
		{"1/1/91", 1991, 1, 1, "/"},
		{"11.11.2011", 2011, 11, 11, "."},
		{"4-5-1950", 1950, 5, 4, "-"},
	}
	for _, tc := range testcases {
		matches := e.dateMatch([]rune(tc.password))
		require.Len(t, matches, 1, tc.password)
		m := matches[0]
		require.EqualValues(t, tc.year, m.Year, tc.password)
		require.EqualValues(t, tc.month, m.Month, tc.password)
		require.EqualValues(t, tc.day, m.Day, tc.password)
		require.Equal(t, tc.separator, m.Separator, tc.password)
	}
}

func TestDateMatchPrefersYearCloseToReference(t *testing.T) {
	e := mustEstimator(t, nil)
	// 1191 reads as 1/1/91 or 11/9/1: the year 2001 reading is closer to
	// the reference year than 1991
	matches := e.dateMatch([]rune("1191"))
	require.Len(t, matches, 1)
	require.EqualValues(t, 2001, matches[0].Year)
}

func TestDateMatchMixedSeparators(t *testing.T) {
	e := mustEstimator(t, nil)
	require.Empty(t, e.dateMatch([]rune("1/1-91")))
}

func TestDateMatchRejectsNonDates(t *testing.T) {
	e := mustEstimator(t, nil)
	require.Empty(t, e.dateMatch([]rune("13.37.2000")))
	require.Empty(t, e.dateMatch([]rune("99/99/99")))
	require.Empty(t, e.dateMatch([]rune("no digits here")))
}

func TestDateMatchPrunesContained(t *testing.T) {
	e := mustEstimator(t, nil)
	matches := e.dateMatch([]rune("11/11/2011"))
	require.Len(t, matches, 1)
	require.EqualValues(t, 0, matches[0].I)
	require.EqualValues(t, 9, matches[0].J)
}

func TestRegexMatchRecentYear(t *testing.T) {
	e := mustEstimator(t, nil)
	matches := e.regexMatch([]rune("in2019start"))
	require.Len(t, matches, 1)
	m := matches[0]
	require.Equal(t, PatternRegex, m.Pattern)
	require.Equal(t, "recent_year", m.RegexName)
	require.EqualValues(t, 2, m.I)
	require.EqualValues(t, 5, m.J)
	require.EqualValues(t, 2019, m.Year)

	require.Empty(t, e.regexMatch([]rune("1899")))
	require.Empty(t, e.regexMatch([]rune("2051")))
}
