package passmeter

import (
	"bufio"
	"embed"
	"strings"
	"sync"

	errorutil "github.com/projectdiscovery/utils/errors"
)

//go:embed dictionaries/*.txt
var dictionaryFS embed.FS

// frequencyListNames enumerates the frozen lists bundled with the library,
// one token per line, most common first.
var frequencyListNames = []string{
	"passwords",
	"english_wikipedia",
	"surnames",
	"male_names",
	"female_names",
	"us_tv_and_film",
}

// UserInputsDictionary is the name of the ad-hoc dictionary built from
// caller-supplied context (names, emails, company).
const UserInputsDictionary = "user_inputs"

// rankedDictionary maps a lowercase token to its 1-based frequency rank.
type rankedDictionary map[string]int

var (
	frozenOnce  sync.Once
	frozenDicts map[string]rankedDictionary
	frozenErr   error
)

// loadFrozenDictionaries parses the embedded frequency lists once.
func loadFrozenDictionaries() (map[string]rankedDictionary, error) {
	frozenOnce.Do(func() {
		frozenDicts = make(map[string]rankedDictionary, len(frequencyListNames))
		for _, name := range frequencyListNames {
			bin, err := dictionaryFS.ReadFile("dictionaries/" + name + ".txt")
			if err != nil {
				frozenErr = errorutil.NewWithTag("passmeter", "missing frequency list %v: %v", name, err)
				return
			}
			frozenDicts[name] = rankTokens(bin)
		}
	})
	return frozenDicts, frozenErr
}

func rankTokens(bin []byte) rankedDictionary {
	ranked := rankedDictionary{}
	scanner := bufio.NewScanner(strings.NewReader(string(bin)))
	rank := 1
	for scanner.Scan() {
		token := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if token == "" {
			continue
		}
		if _, ok := ranked[token]; ok {
			continue
		}
		ranked[token] = rank
		rank++
	}
	return ranked
}

// rankStrings builds a ranked dictionary from an ordered token list,
// lowercasing entries and keeping the first rank on duplicates.
func rankStrings(tokens []string) rankedDictionary {
	ranked := rankedDictionary{}
	rank := 1
	for _, token := range tokens {
		token = strings.ToLower(token)
		if token == "" {
			continue
		}
		if _, ok := ranked[token]; ok {
			continue
		}
		ranked[token] = rank
		rank++
	}
	return ranked
}

// reverseDictionary returns a view keyed by the reversed token. The reverse
// matcher looks up password substrings in this view directly instead of
// re-reversing the password for every scan.
func reverseDictionary(ranked rankedDictionary) rankedDictionary {
	reversed := make(rankedDictionary, len(ranked))
	for token, rank := range ranked {
		reversed[reverseString(token)] = rank
	}
	return reversed
}

func reverseString(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// LoadDictionaries returns the frozen frequency lists as token→rank maps.
// The maps are shared reference data and must be treated as read-only.
func LoadDictionaries() (map[string]map[string]int, error) {
	frozen, err := loadFrozenDictionaries()
	if err != nil {
		return nil, err
	}
	out := make(map[string]map[string]int, len(frozen))
	for name, ranked := range frozen {
		out[name] = ranked
	}
	return out, nil
}
