package passmeter

import "strings"

// AdjacencyGraph describes a physical key layout as a neighbor map. Every
// key maps to an ordered neighbor list whose positions encode direction
// (keyboards: left, upper-left, upper-right, right, lower-right, lower-left).
// An empty entry means no key at that position. Each neighbor entry holds
// the unshifted and shifted character of that key ("sS"), so matchers can
// detect shifted presses by index.
type AdjacencyGraph struct {
	Name          string
	Adjacency     map[string][]string
	AverageDegree float64
	KeyCount      int
}

// Keyboard layouts are slanted (each row shifted right by one half key),
// keypads are aligned. Tokens hold the unshifted and shifted character of
// a key; keypad keys have no shifted variant.
const qwertyLayout = `
` + "`~" + ` 1! 2@ 3# 4$ 5% 6^ 7& 8* 9( 0) -_ =+
    qQ wW eE rR tT yY uU iI oO pP [{ ]} \|
     aA sS dD fF gG hH jJ kK lL ;: '"
      zZ xX cC vV bB nN mM ,< .> /?
`

const dvorakLayout = `
` + "`~" + ` 1! 2@ 3# 4$ 5% 6^ 7& 8* 9( 0) [{ ]}
    '" ,< .> pP yY fF gG cC rR lL /? =+ \|
     aA oO eE uU iI dD hH tT nN sS -_
      ;: qQ jJ kK xX bB mM wW vV zZ
`

const keypadLayout = `
  / * -
7 8 9 +
4 5 6
1 2 3
  0 .
`

const macKeypadLayout = `
  = / *
7 8 9 -
4 5 6 +
1 2 3
  0 .
`

// adjacencyGraphs holds every built-in layout, keyed by graph name.
var adjacencyGraphs = map[string]*AdjacencyGraph{
	"qwerty":     buildGraph("qwerty", qwertyLayout, true),
	"dvorak":     buildGraph("dvorak", dvorakLayout, true),
	"keypad":     buildGraph("keypad", keypadLayout, false),
	"mac_keypad": buildGraph("mac_keypad", macKeypadLayout, false),
}

type keyCoord struct {
	x, y int
}

func slantedAdjacents(c keyCoord) []keyCoord {
	return []keyCoord{
		{c.x - 1, c.y}, {c.x, c.y - 1}, {c.x + 1, c.y - 1},
		{c.x + 1, c.y}, {c.x, c.y + 1}, {c.x - 1, c.y + 1},
	}
}

func alignedAdjacents(c keyCoord) []keyCoord {
	return []keyCoord{
		{c.x - 1, c.y}, {c.x - 1, c.y - 1}, {c.x, c.y - 1}, {c.x + 1, c.y - 1},
		{c.x + 1, c.y}, {c.x + 1, c.y + 1}, {c.x, c.y + 1}, {c.x - 1, c.y + 1},
	}
}

// buildGraph turns a layout string into an adjacency graph. On slanted
// layouts row y starts y-1 columns further right; that offset is removed
// before dividing by the key width, so keys such as "q", "a" and "z" share
// a column index and become diagonal neighbors.
func buildGraph(name, layout string, slanted bool) *AdjacencyGraph {
	lines := strings.Split(layout, "\n")
	tokenSize := 0
	for _, line := range lines {
		if fields := strings.Fields(line); len(fields) > 0 {
			tokenSize = len(fields[0])
			break
		}
	}
	xUnit := tokenSize + 1

	positions := map[keyCoord]string{}
	for y, line := range lines {
		slant := 0
		if slanted {
			slant = y - 1
		}
		col := 0
		for col < len(line) {
			if line[col] == ' ' {
				col++
				continue
			}
			end := col
			for end < len(line) && line[end] != ' ' {
				end++
			}
			positions[keyCoord{(col - slant) / xUnit, y}] = line[col:end]
			col = end
		}
	}

	adjacency := map[string][]string{}
	for coord, token := range positions {
		var neighborCoords []keyCoord
		if slanted {
			neighborCoords = slantedAdjacents(coord)
		} else {
			neighborCoords = alignedAdjacents(coord)
		}
		neighbors := make([]string, 0, len(neighborCoords))
		for _, nc := range neighborCoords {
			neighbors = append(neighbors, positions[nc])
		}
		for _, ch := range token {
			adjacency[string(ch)] = neighbors
		}
	}

	g := &AdjacencyGraph{
		Name:      name,
		Adjacency: adjacency,
		KeyCount:  len(adjacency),
	}
	g.AverageDegree = calcAverageDegree(adjacency)
	return g
}

func calcAverageDegree(adjacency map[string][]string) float64 {
	total := 0
	for _, neighbors := range adjacency {
		for _, n := range neighbors {
			if n != "" {
				total++
			}
		}
	}
	return float64(total) / float64(len(adjacency))
}

// LoadAdjacencyGraphs returns the built-in adjacency graphs keyed by name.
// The returned maps are shared and must be treated as read-only.
func LoadAdjacencyGraphs() map[string]*AdjacencyGraph {
	return adjacencyGraphs
}
