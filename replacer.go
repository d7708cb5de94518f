package passmeter

import (
	"fmt"
	"strconv"

	"github.com/projectdiscovery/fasttemplate"
)

const (
	// ParenthesisOpen marker - begin of a placeholder
	ParenthesisOpen = "{{"
	// ParenthesisClose marker - end of a placeholder
	ParenthesisClose = "}}"
)

// Replace renders an output template with values on the fly.
func Replace(template string, values map[string]interface{}) string {
	valuesMap := make(map[string]interface{}, len(values))
	for k, v := range values {
		valuesMap[k] = fmt.Sprint(v)
	}
	return fasttemplate.ExecuteStringStd(template, ParenthesisOpen, ParenthesisClose, valuesMap)
}

// FormatResult renders a result through a {{var}} line template. Available
// variables: password, guesses, guesses_log10, score, warning, suggestions,
// patterns and the four crack-time displays.
func FormatResult(template string, result *Result) string {
	patterns := ""
	for idx, m := range result.Sequence {
		if idx > 0 {
			patterns += ","
		}
		patterns += string(m.Pattern)
	}
	suggestions := ""
	for idx, s := range result.Feedback.Suggestions {
		if idx > 0 {
			suggestions += "; "
		}
		suggestions += s
	}
	return Replace(template, map[string]interface{}{
		"password":              result.Password,
		"guesses":               strconv.FormatFloat(result.Guesses, 'f', -1, 64),
		"guesses_log10":         strconv.FormatFloat(result.GuessesLog10, 'f', 4, 64),
		"score":                 result.Score,
		"warning":               result.Feedback.Warning,
		"suggestions":           suggestions,
		"patterns":              patterns,
		"online_throttled":      result.CrackTimesDisplay.OnlineThrottling100PerHour,
		"online_unthrottled":    result.CrackTimesDisplay.OnlineNoThrottling10PerSec,
		"offline_slow_hashing":  result.CrackTimesDisplay.OfflineSlowHashing1e4PerSec,
		"offline_fast_hashing":  result.CrackTimesDisplay.OfflineFastHashing1e10PerSec,
	})
}
