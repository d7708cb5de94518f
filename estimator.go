package passmeter

import (
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"
	sliceutil "github.com/projectdiscovery/utils/slice"
)

// DefaultMaxLength is the evaluation cutoff applied when Options.MaxLength
// is unset. Longer passwords are truncated before matching.
const DefaultMaxLength = 72

var (
	// ErrInvalidInput is returned when the password is not valid UTF-8.
	ErrInvalidInput = errorutil.NewWithTag("passmeter", "password is not a valid utf-8 string")
	// ErrLengthExceeded is returned by surfaces that refuse to truncate.
	ErrLengthExceeded = errorutil.NewWithTag("passmeter", "password exceeds max length")
)

// TranslateFunc localizes a feedback message by its ID (the short English
// string). The default translator is the identity function.
type TranslateFunc func(msgID string) string

// Estimator Options
type Options struct {
	// UserInputs is caller-supplied context (names, emails, company)
	// ranked by insertion order into an ad-hoc dictionary
	UserInputs []string
	// MaxLength truncation cutoff (default 72)
	MaxLength int
	// Dictionaries are extra ranked token lists merged over the frozen set
	// (rank = position, most common first)
	Dictionaries map[string][]string
	// Translate localizes feedback messages (default identity)
	Translate TranslateFunc
}

// Estimator evaluates password strength against immutable reference data.
// It is safe for concurrent use: evaluation has no shared mutable state.
type Estimator struct {
	opts      *Options
	ranked    map[string]rankedDictionary
	reversed  map[string]rankedDictionary
	dictNames []string
	graphs    map[string]*AdjacencyGraph
	translate TranslateFunc
}

// New creates and returns a new estimator instance from options
func New(opts *Options) (*Estimator, error) {
	if opts == nil {
		opts = &Options{}
	}
	if opts.MaxLength <= 0 {
		opts.MaxLength = DefaultMaxLength
	}
	frozen, err := loadFrozenDictionaries()
	if err != nil {
		return nil, err
	}
	ranked := make(map[string]rankedDictionary, len(frozen)+len(opts.Dictionaries)+1)
	for name, dict := range frozen {
		ranked[name] = dict
	}
	// purge duplicates if any
	for name, tokens := range opts.Dictionaries {
		dedupe := sliceutil.Dedupe(tokens)
		if len(tokens) != len(dedupe) {
			gologger.Warning().Msgf("%v duplicate tokens found in %v. purging them..", len(tokens)-len(dedupe), name)
		}
		ranked[name] = rankStrings(dedupe)
	}
	ranked[UserInputsDictionary] = rankStrings(sanitizeUserInputs(opts.UserInputs))

	reversed := make(map[string]rankedDictionary, len(ranked))
	names := make([]string, 0, len(ranked))
	for name, dict := range ranked {
		reversed[name] = reverseDictionary(dict)
		names = append(names, name)
	}
	sort.Strings(names)

	translate := opts.Translate
	if translate == nil {
		translate = func(msgID string) string { return msgID }
	}
	return &Estimator{
		opts:      opts,
		ranked:    ranked,
		reversed:  reversed,
		dictNames: names,
		graphs:    adjacencyGraphs,
		translate: translate,
	}, nil
}

func sanitizeUserInputs(inputs []string) []string {
	lowered := make([]string, 0, len(inputs))
	for _, input := range inputs {
		if input == "" {
			continue
		}
		lowered = append(lowered, strings.ToLower(input))
	}
	dedupe := sliceutil.Dedupe(lowered)
	if len(lowered) != len(dedupe) {
		gologger.Warning().Msgf("%v duplicate user inputs found. purging them..", len(lowered)-len(dedupe))
	}
	return dedupe
}

// Estimate evaluates a single password and returns the full result.
// Passwords longer than MaxLength are truncated first; the returned
// Password field reflects the evaluated (possibly truncated) input.
func (e *Estimator) Estimate(password string) *Result {
	start := time.Now()
	runes := []rune(password)
	if len(runes) > e.opts.MaxLength {
		runes = runes[:e.opts.MaxLength]
	}
	matches := e.omnimatch(runes)
	result := e.mostGuessableMatchSequence(runes, matches, false)
	result.CrackTimesSeconds, result.CrackTimesDisplay = e.estimateAttackTimes(result.Guesses)
	result.Feedback = e.getFeedback(result.Score, result.Sequence)
	result.CalcTime = time.Since(start)
	return result
}

// EstimateStrict behaves like Estimate but rejects invalid input instead
// of sanitizing it: non-UTF-8 passwords return ErrInvalidInput.
func (e *Estimator) EstimateStrict(password string) (*Result, error) {
	if !utf8.ValidString(password) {
		return nil, ErrInvalidInput
	}
	return e.Estimate(password), nil
}

// omnimatch runs every matcher and returns the combined matches sorted by
// position. Matchers are independent; order here only affects tie-breaks,
// which must stay deterministic.
func (e *Estimator) omnimatch(password []rune) []*Match {
	var matches []*Match
	matches = append(matches, e.dictionaryMatch(password)...)
	matches = append(matches, e.reverseDictionaryMatch(password)...)
	matches = append(matches, e.l33tMatch(password)...)
	matches = append(matches, e.spatialMatch(password)...)
	matches = append(matches, e.repeatMatch(password)...)
	matches = append(matches, e.sequenceMatch(password)...)
	matches = append(matches, e.regexMatch(password)...)
	matches = append(matches, e.dateMatch(password)...)
	sortMatches(matches)
	return matches
}

func sortMatches(matches []*Match) {
	sort.SliceStable(matches, func(a, b int) bool {
		if matches[a].I != matches[b].I {
			return matches[a].I < matches[b].I
		}
		return matches[a].J < matches[b].J
	})
}

var (
	defaultEstimatorOnce sync.Once
	defaultEstimator     *Estimator
)

// Estimate evaluates a password with the frozen reference data and optional
// user inputs. Reference data is loaded lazily on first use; a broken
// embedded asset is fatal to the evaluator.
func Estimate(password string, userInputs ...string) *Result {
	if len(userInputs) > 0 {
		e, err := New(&Options{UserInputs: userInputs})
		if err != nil {
			panic(err)
		}
		return e.Estimate(password)
	}
	defaultEstimatorOnce.Do(func() {
		e, err := New(nil)
		if err != nil {
			panic(err)
		}
		defaultEstimator = e
	})
	return defaultEstimator.Estimate(password)
}
