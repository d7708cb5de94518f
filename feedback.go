package passmeter

import "strings"

// Feedback message IDs. The translator receives these short English
// strings and returns the localized text; the identity translator makes
// them user-facing as-is.
const (
	msgUseAFewWords        = "Use a few words, avoid common phrases"
	msgNoNeedForSymbols    = "No need for symbols, digits, or uppercase letters"
	msgAddAnotherWord      = "Add another word or two. Uncommon words are better."
	msgTop10Password       = "This is a top-10 common password"
	msgTop100Password      = "This is a top-100 common password"
	msgVeryCommonPassword  = "This is a very common password"
	msgSimilarToCommon     = "This is similar to a commonly used password"
	msgWordByItself        = "A word by itself is easy to guess"
	msgNamesByThemselves   = "Names and surnames by themselves are easy to guess"
	msgCommonNames         = "Common names and surnames are easy to guess"
	msgCapitalization      = "Capitalization doesn't help very much"
	msgAllUppercase        = "All-uppercase is almost as easy to guess as all-lowercase"
	msgReversedWords       = "Reversed words aren't much harder to guess"
	msgPredictableSubs     = "Predictable substitutions like '@' for 'a' don't help very much"
	msgStraightRows        = "Straight rows of keys are easy to guess"
	msgShortKeyboard       = "Short keyboard patterns are easy to guess"
	msgLongerKeyboard      = "Use a longer keyboard pattern with more turns"
	msgRepeatsSingleChar   = `Repeats like "aaa" are easy to guess`
	msgRepeatsMultiChar    = `Repeats like "abcabcabc" are only slightly harder to guess than "abc"`
	msgAvoidRepeats        = "Avoid repeated words and characters"
	msgSequences           = "Sequences like abc or 6543 are easy to guess"
	msgAvoidSequences      = "Avoid sequences"
	msgRecentYears         = "Recent years are easy to guess"
	msgAvoidRecentYears    = "Avoid recent years"
	msgAvoidAssociatedYears = "Avoid years that are associated with you"
	msgDates               = "Dates are often easy to guess"
	msgAvoidDates          = "Avoid dates and years that are associated with you"
)

// getFeedback derives a warning and suggestions from the longest match of
// the optimal sequence. Strong passwords get no feedback at all.
func (e *Estimator) getFeedback(score int, sequence []*Match) Feedback {
	if len(sequence) == 0 {
		return Feedback{
			Warning:     "",
			Suggestions: []string{e.translate(msgUseAFewWords), e.translate(msgNoNeedForSymbols)},
		}
	}
	if score > 2 {
		return Feedback{Suggestions: []string{}}
	}

	longest := sequence[0]
	for _, m := range sequence[1:] {
		if len([]rune(m.Token)) > len([]rune(longest.Token)) {
			longest = m
		}
	}

	feedback := e.matchFeedback(longest, len(sequence) == 1)
	feedback.Suggestions = append([]string{e.translate(msgAddAnotherWord)}, feedback.Suggestions...)
	return feedback
}

func (e *Estimator) matchFeedback(m *Match, isSoleMatch bool) Feedback {
	switch m.Pattern {
	case PatternDictionary:
		return e.dictionaryMatchFeedback(m, isSoleMatch)
	case PatternSpatial:
		warning := msgShortKeyboard
		if m.Turns == 1 {
			warning = msgStraightRows
		}
		return Feedback{
			Warning:     e.translate(warning),
			Suggestions: []string{e.translate(msgLongerKeyboard)},
		}
	case PatternRepeat:
		warning := msgRepeatsMultiChar
		if len([]rune(m.BaseToken)) == 1 {
			warning = msgRepeatsSingleChar
		}
		return Feedback{
			Warning:     e.translate(warning),
			Suggestions: []string{e.translate(msgAvoidRepeats)},
		}
	case PatternSequence:
		return Feedback{
			Warning:     e.translate(msgSequences),
			Suggestions: []string{e.translate(msgAvoidSequences)},
		}
	case PatternRegex:
		if m.RegexName == "recent_year" {
			return Feedback{
				Warning:     e.translate(msgRecentYears),
				Suggestions: []string{e.translate(msgAvoidRecentYears), e.translate(msgAvoidAssociatedYears)},
			}
		}
	case PatternDate:
		return Feedback{
			Warning:     e.translate(msgDates),
			Suggestions: []string{e.translate(msgAvoidDates)},
		}
	}
	return Feedback{Suggestions: []string{}}
}

func (e *Estimator) dictionaryMatchFeedback(m *Match, isSoleMatch bool) Feedback {
	warning := ""
	switch {
	case m.DictionaryName == "passwords":
		if isSoleMatch && !m.L33t && !m.Reversed {
			switch {
			case m.Rank <= 10:
				warning = msgTop10Password
			case m.Rank <= 100:
				warning = msgTop100Password
			default:
				warning = msgVeryCommonPassword
			}
		} else if m.GuessesLog10 <= 4 {
			warning = msgSimilarToCommon
		}
	case m.DictionaryName == "english_wikipedia":
		if isSoleMatch {
			warning = msgWordByItself
		}
	case m.DictionaryName == "surnames" || m.DictionaryName == "male_names" || m.DictionaryName == "female_names":
		if isSoleMatch {
			warning = msgNamesByThemselves
		} else {
			warning = msgCommonNames
		}
	}

	var suggestions []string
	if startUpper.MatchString(m.Token) {
		suggestions = append(suggestions, e.translate(msgCapitalization))
	} else if allUpper.MatchString(m.Token) && strings.ToLower(m.Token) != m.Token {
		suggestions = append(suggestions, e.translate(msgAllUppercase))
	}
	if m.Reversed && len([]rune(m.Token)) >= 4 {
		suggestions = append(suggestions, e.translate(msgReversedWords))
	}
	if m.L33t {
		suggestions = append(suggestions, e.translate(msgPredictableSubs))
	}
	if suggestions == nil {
		suggestions = []string{}
	}
	if warning != "" {
		warning = e.translate(warning)
	}
	return Feedback{Warning: warning, Suggestions: suggestions}
}
