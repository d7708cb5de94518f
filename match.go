package passmeter

import "time"

// Pattern identifies the weakness class a match belongs to.
type Pattern string

const (
	PatternDictionary Pattern = "dictionary"
	PatternSpatial    Pattern = "spatial"
	PatternRepeat     Pattern = "repeat"
	PatternSequence   Pattern = "sequence"
	PatternRegex      Pattern = "regex"
	PatternDate       Pattern = "date"
	PatternBruteforce Pattern = "bruteforce"
)

// Match describes one weakness found in a password. I and J are rune
// offsets (inclusive) and Token is always the covered slice of the
// evaluated password. Fields beyond the shared ones are only populated
// for the corresponding Pattern.
type Match struct {
	Pattern Pattern `json:"pattern"`
	I       int     `json:"i"`
	J       int     `json:"j"`
	Token   string  `json:"token"`

	// dictionary (also set for reversed/l33t variants)
	DictionaryName string            `json:"dictionary_name,omitempty"`
	MatchedWord    string            `json:"matched_word,omitempty"`
	Rank           int               `json:"rank,omitempty"`
	Reversed       bool              `json:"reversed,omitempty"`
	L33t           bool              `json:"l33t,omitempty"`
	Sub            map[string]string `json:"sub,omitempty"`
	SubDisplay     string            `json:"sub_display,omitempty"`

	// spatial
	Graph        string `json:"graph,omitempty"`
	Turns        int    `json:"turns,omitempty"`
	ShiftedCount int    `json:"shifted_count,omitempty"`

	// repeat
	BaseToken   string  `json:"base_token,omitempty"`
	BaseGuesses float64 `json:"base_guesses,omitempty"`
	RepeatCount int     `json:"repeat_count,omitempty"`

	// sequence
	SequenceName  string `json:"sequence_name,omitempty"`
	SequenceSpace int    `json:"sequence_space,omitempty"`
	Ascending     bool   `json:"ascending,omitempty"`

	// regex
	RegexName string `json:"regex_name,omitempty"`

	// date
	Year      int    `json:"year,omitempty"`
	Month     int    `json:"month,omitempty"`
	Day       int    `json:"day,omitempty"`
	Separator string `json:"separator,omitempty"`

	// filled by the estimator during search
	Guesses      float64 `json:"guesses"`
	GuessesLog10 float64 `json:"guesses_log10"`
}

// Length returns the number of runes covered by the match.
func (m *Match) Length() int {
	return m.J - m.I + 1
}

// CrackTimes holds attacker-model timings derived from the guess count.
type CrackTimes struct {
	OnlineThrottling100PerHour float64 `json:"online_throttling_100_per_hour"`
	OnlineNoThrottling10PerSec float64 `json:"online_no_throttling_10_per_second"`
	OfflineSlowHashing1e4PerSec float64 `json:"offline_slow_hashing_1e4_per_second"`
	OfflineFastHashing1e10PerSec float64 `json:"offline_fast_hashing_1e10_per_second"`
}

// CrackTimesDisplay mirrors CrackTimes with humanized strings.
type CrackTimesDisplay struct {
	OnlineThrottling100PerHour string `json:"online_throttling_100_per_hour"`
	OnlineNoThrottling10PerSec string `json:"online_no_throttling_10_per_second"`
	OfflineSlowHashing1e4PerSec string `json:"offline_slow_hashing_1e4_per_second"`
	OfflineFastHashing1e10PerSec string `json:"offline_fast_hashing_1e10_per_second"`
}

// Feedback carries an actionable warning and suggestions for weak passwords.
// Both are localized through the estimator's translator.
type Feedback struct {
	Warning     string   `json:"warning"`
	Suggestions []string `json:"suggestions"`
}

// Result is the outcome of evaluating a single password.
type Result struct {
	Password          string            `json:"password"`
	Guesses           float64           `json:"guesses"`
	GuessesLog10      float64           `json:"guesses_log10"`
	Score             int               `json:"score"`
	Sequence          []*Match          `json:"sequence"`
	CrackTimesSeconds CrackTimes        `json:"crack_times_seconds"`
	CrackTimesDisplay CrackTimesDisplay `json:"crack_times_display"`
	Feedback          Feedback          `json:"feedback"`
	CalcTime          time.Duration     `json:"calc_time"`
}
