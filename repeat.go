package passmeter

// repeatMatch finds maximal runs of a repeating unit, shortest unit first.
// The guess cost of the unit is delegated to the full evaluator so that
// "abcabcabc" inherits the sequence strength of "abc" rather than a flat
// per-character charge. The recursion terminates because the unit is
// always strictly shorter than the run.
func (e *Estimator) repeatMatch(password []rune) []*Match {
	return repeatMatchHelper(password, e.evaluateBase)
}

// evaluateBase runs the full match/search pipeline on a repeat unit and
// returns its guess count.
func (e *Estimator) evaluateBase(base []rune) float64 {
	result := e.mostGuessableMatchSequence(base, e.omnimatch(base), false)
	return result.Guesses
}

func repeatMatchHelper(password []rune, evaluate func([]rune) float64) []*Match {
	var matches []*Match
	n := len(password)
	i := 0
	for i < n {
		bestSpan, bestUnit := 0, 0
		maxUnit := (n - i) / 2
		for unit := 1; unit <= maxUnit; unit++ {
			count := repetitions(password, i, unit)
			if count < 2 {
				continue
			}
			span := unit * count
			if span > bestSpan {
				bestSpan = span
				bestUnit = unit
			}
		}
		if bestSpan == 0 {
			i++
			continue
		}
		base := password[i : i+bestUnit]
		matches = append(matches, &Match{
			Pattern:     PatternRepeat,
			I:           i,
			J:           i + bestSpan - 1,
			Token:       string(password[i : i+bestSpan]),
			BaseToken:   string(base),
			BaseGuesses: evaluate(base),
			RepeatCount: bestSpan / bestUnit,
		})
		i += bestSpan
	}
	return matches
}

// repetitions counts how many times the unit starting at i repeats
// back to back, including the first occurrence.
func repetitions(password []rune, i, unit int) int {
	count := 1
	for {
		start := i + count*unit
		if start+unit > len(password) {
			return count
		}
		for k := 0; k < unit; k++ {
			if password[start+k] != password[i+k] {
				return count
			}
		}
		count++
	}
}
