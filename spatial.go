package passmeter

import (
	"sort"
	"strings"
)

// shiftedChars are the characters that require the shift modifier on a
// US-layout keyboard. Keypads have no shifted variants.
const shiftedChars = `~!@#$%^&*()_+QWERTYUIOP{}|ASDFGHJKL:"ZXCVBNM<>?`

// spatialMatch finds adjacency walks in every built-in graph. Graphs are
// scanned in name order for deterministic output.
func (e *Estimator) spatialMatch(password []rune) []*Match {
	graphNames := make([]string, 0, len(e.graphs))
	for name := range e.graphs {
		graphNames = append(graphNames, name)
	}
	sort.Strings(graphNames)

	var matches []*Match
	for _, name := range graphNames {
		matches = append(matches, spatialMatchHelper(password, e.graphs[name])...)
	}
	sortMatches(matches)
	return matches
}

// spatialMatchHelper emits the longest walk starting at each position.
// Walks shorter than three keys are ignored: two adjacent keys carry no
// signal, most bigrams are adjacent on some layout.
func spatialMatchHelper(password []rune, graph *AdjacencyGraph) []*Match {
	var matches []*Match
	keyboard := graph.Name == "qwerty" || graph.Name == "dvorak"
	n := len(password)
	i := 0
	for i < n-1 {
		j := i + 1
		lastDirection := -1
		turns := 0
		shiftedCount := 0
		if keyboard && strings.ContainsRune(shiftedChars, password[i]) {
			// initial character is shifted
			shiftedCount = 1
		}
		for {
			prevChar := string(password[j-1])
			found := false
			foundDirection := -1
			curDirection := -1
			adjacents := graph.Adjacency[prevChar]
			// consider growing the pattern by one character if j hasn't
			// gone over the edge
			if j < n {
				curChar := string(password[j])
				for _, adj := range adjacents {
					curDirection++
					idx := strings.Index(adj, curChar)
					if adj == "" || idx < 0 {
						continue
					}
					found = true
					foundDirection = curDirection
					if idx == 1 {
						// index 1 in the adjacency means the key is shifted
						shiftedCount++
					}
					if lastDirection != foundDirection {
						// adding a turn is correct even in the initial case
						// when last direction is unset
						turns++
						lastDirection = foundDirection
					}
					break
				}
			}
			if found {
				j++
				continue
			}
			// otherwise push the pattern discovered so far, if any
			if j-i > 2 {
				matches = append(matches, &Match{
					Pattern:      PatternSpatial,
					I:            i,
					J:            j - 1,
					Token:        string(password[i:j]),
					Graph:        graph.Name,
					Turns:        turns,
					ShiftedCount: shiftedCount,
				})
			}
			i = j
			break
		}
	}
	return matches
}
