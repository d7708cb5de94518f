package passmeter

import "regexp"

// maxSequenceDelta bounds the code-point step of an arithmetic run.
const maxSequenceDelta = 5

var (
	allLowerSeq = regexp.MustCompile(`^[a-z]+$`)
	allUpperSeq = regexp.MustCompile(`^[A-Z]+$`)
	allDigits   = regexp.MustCompile(`^\d+$`)
)

// sequenceMatch identifies arithmetic progressions in code-point space:
// "jihgfed", "abcdef", "246810". Runs are maximal; a new run starts
// whenever the step changes. Length-2 runs only count for step ±1.
func (e *Estimator) sequenceMatch(password []rune) []*Match {
	if len(password) <= 1 {
		return nil
	}

	var matches []*Match
	update := func(i, j, delta int) {
		if j-i <= 1 && abs(delta) != 1 {
			return
		}
		if delta == 0 || abs(delta) > maxSequenceDelta {
			return
		}
		token := string(password[i : j+1])
		var sequenceName string
		var sequenceSpace int
		switch {
		case allLowerSeq.MatchString(token):
			sequenceName, sequenceSpace = "lower", 26
		case allUpperSeq.MatchString(token):
			sequenceName, sequenceSpace = "upper", 26
		case allDigits.MatchString(token):
			sequenceName, sequenceSpace = "digits", 10
		default:
			sequenceName, sequenceSpace = "unicode", 26
		}
		matches = append(matches, &Match{
			Pattern:       PatternSequence,
			I:             i,
			J:             j,
			Token:         token,
			SequenceName:  sequenceName,
			SequenceSpace: sequenceSpace,
			Ascending:     delta > 0,
		})
	}

	i := 0
	lastDelta := int(password[1]) - int(password[0])
	for k := 1; k < len(password); k++ {
		delta := int(password[k]) - int(password[k-1])
		if delta == lastDelta {
			continue
		}
		update(i, k-1, lastDelta)
		i = k - 1
		lastDelta = delta
	}
	update(i, len(password)-1, lastDelta)
	return matches
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
