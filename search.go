package passmeter

import (
	"math"
	"sort"
)

// minGuessesBeforeGrowingSequence penalizes decompositions into many small
// chunks: growing the sequence length must buy at least this much per
// added chunk to win.
const minGuessesBeforeGrowingSequence = 10000

// optimalTable is the forward DP state, one map per password position,
// keyed by sequence length l.
type optimalTable struct {
	// m holds the best last match covering position k with exactly l matches
	m []map[int]*Match
	// pi holds the product term Π guesses over that decomposition
	pi []map[int]float64
	// g holds the full objective l!·Π + 10000^(l-1)
	g []map[int]float64
}

// mostGuessableMatchSequence searches, over all decompositions of the
// password into matches plus bruteforce filler, for the one an optimal
// attacker would need the fewest guesses to cover. The objective for a
// decomposition of length l is l!·Π guesses(mᵢ) plus the growth penalty;
// the factorial accounts for the orderings an attacker must try across
// independent chunks.
func (e *Estimator) mostGuessableMatchSequence(password []rune, matches []*Match, excludeAdditive bool) *Result {
	n := len(password)

	matchesByJ := make([][]*Match, n)
	for _, m := range matches {
		matchesByJ[m.J] = append(matchesByJ[m.J], m)
	}
	// small detail: for deterministic output, sort each sublist by i
	for _, sublist := range matchesByJ {
		sort.SliceStable(sublist, func(a, b int) bool { return sublist[a].I < sublist[b].I })
	}

	optimal := optimalTable{
		m:  make([]map[int]*Match, n),
		pi: make([]map[int]float64, n),
		g:  make([]map[int]float64, n),
	}
	for k := 0; k < n; k++ {
		optimal.m[k] = map[int]*Match{}
		optimal.pi[k] = map[int]float64{}
		optimal.g[k] = map[int]float64{}
	}

	// considers whether a length-l sequence ending at match m is better
	// than previously encountered sequences, updating state if so
	update := func(m *Match, l int) {
		k := m.J
		pi := e.estimateGuesses(m, password)
		if l > 1 {
			// we're considering a length-l sequence ending with match m:
			// obtain the product term in the minimization function by
			// multiplying m's guesses by the product of the length-(l-1)
			// sequence ending just before m
			pi *= optimal.pi[m.I-1][l-1]
		}
		g := factorial(l) * pi
		if !excludeAdditive {
			g += math.Pow(minGuessesBeforeGrowingSequence, float64(l-1))
		}
		// update state if new best. first see if any competing sequences
		// covering this prefix, with l or fewer matches, fare better than
		// this sequence. if so, skip it: it can't be optimal.
		for _, competingL := range sortedLengths(optimal.g[k]) {
			if competingL > l {
				continue
			}
			if optimal.g[k][competingL] <= g {
				return
			}
		}
		optimal.g[k][l] = g
		optimal.m[k][l] = m
		optimal.pi[k][l] = pi
	}

	// evaluates bruteforce matches ending at position k
	bruteforceUpdate := func(k int) {
		// see if a single bruteforce match spanning the whole prefix is optimal
		update(e.makeBruteforceMatch(password, 0, k), 1)
		for i := 1; i <= k; i++ {
			// generate k bruteforce matches, spanning from (i=1, j=k) up to
			// (i=k, j=k). see if adding these new matches to any of the
			// sequences in optimal[i-1] leads to new bests.
			m := e.makeBruteforceMatch(password, i, k)
			for _, l := range sortedLengths(optimal.m[i-1]) {
				lastMatch := optimal.m[i-1][l]
				// corner: an optimal sequence will never have two adjacent
				// bruteforce matches: it is strictly better to have a single
				// bruteforce match spanning the same region
				if lastMatch.Pattern == PatternBruteforce {
					continue
				}
				update(m, l+1)
			}
		}
	}

	for k := 0; k < n; k++ {
		for _, m := range matchesByJ[k] {
			if m.I > 0 {
				for _, l := range sortedLengths(optimal.m[m.I-1]) {
					update(m, l+1)
				}
			} else {
				update(m, 1)
			}
		}
		bruteforceUpdate(k)
	}

	sequence := unwind(optimal, n)

	var guesses float64
	if n == 0 {
		guesses = 1
	} else {
		guesses = optimal.g[n-1][len(sequence)]
	}

	return &Result{
		Password:     string(password),
		Guesses:      guesses,
		GuessesLog10: math.Log10(guesses),
		Score:        guessesToScore(guesses),
		Sequence:     sequence,
	}
}

// unwind steps backwards through the optimal table to reconstruct the
// winning decomposition.
func unwind(optimal optimalTable, n int) []*Match {
	sequence := []*Match{}
	if n == 0 {
		return sequence
	}
	k := n - 1
	// find the final best sequence length and score
	l := -1
	g := math.Inf(1)
	for _, candidateL := range sortedLengths(optimal.g[k]) {
		if optimal.g[k][candidateL] < g {
			l = candidateL
			g = optimal.g[k][candidateL]
		}
	}
	for k >= 0 {
		m := optimal.m[k][l]
		sequence = append([]*Match{m}, sequence...)
		k = m.I - 1
		l--
	}
	return sequence
}

// makeBruteforceMatch synthesizes a filler match over an uncovered gap.
func (e *Estimator) makeBruteforceMatch(password []rune, i, j int) *Match {
	return &Match{
		Pattern: PatternBruteforce,
		I:       i,
		J:       j,
		Token:   string(password[i : j+1]),
	}
}

// sortedLengths returns the l keys of a DP cell in increasing order;
// map iteration order would leak into tie-breaks otherwise.
func sortedLengths[V any](cell map[int]V) []int {
	lengths := make([]int, 0, len(cell))
	for l := range cell {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)
	return lengths
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}
