package extractor

import (
	"fmt"

	"github.com/qmn/pershing/pkg/cell"
)

// splitPattern is one recognized run-of-tokens to cut a via or an
// already-placed repeater out of, plus what it collapses to.
type splitPattern struct {
	match       []Token
	replacement Token
}

var splitPatterns = []splitPattern{
	{match: []Token{Repeater}, replacement: Repeater},
	{match: []Token{Wire, UpVia}, replacement: UpVia},
	{match: []Token{Wire, DownVia}, replacement: DownVia},
}

func tokensMatch(tokens []Token, pattern []Token) bool {
	if len(tokens) < len(pattern) {
		return false
	}
	for i, p := range pattern {
		if tokens[i] != p {
			return false
		}
	}
	return true
}

// coordAt returns netCoords[i] if i is a valid index, else stopCoord: the
// synthetic final token (arrival at the driven pin) has no coordinate of
// its own in netCoords.
func coordAt(netCoords []cell.Coord, i int, stopCoord cell.Coord) cell.Coord {
	if i >= 0 && i < len(netCoords) {
		return netCoords[i]
	}
	return stopCoord
}

// splitExtraction walks the initial token stream, cutting out via/repeater
// transitions and running placeRepeaters over every plain-wire run between
// them.
func splitExtraction(tokens []Token, netCoords []cell.Coord, startCoord, stopCoord cell.Coord, startStrength, minStrength int) ([]Token, []cell.Coord, error) {
	var resultToks []Token
	var resultCoords []cell.Coord

	prev, curr := 0, 0
	for curr < len(tokens) {
		found := false
		for _, sp := range splitPatterns {
			chunk := len(sp.match)
			if curr+chunk > len(tokens) || !tokensMatch(tokens[curr:curr+chunk], sp.match) {
				continue
			}

			if prev == curr {
				curr += chunk
				prev = curr
				found = true
				break
			}

			before := startCoord
			if prev != 0 {
				before = coordAt(netCoords, prev-1, stopCoord)
			}
			after := coordAt(netCoords, curr, stopCoord)

			repeated, err := placeRepeaters(tokens[prev:curr], netCoords[prev:curr], before, after, startStrength, minStrength)
			if err != nil {
				return nil, nil, err
			}
			resultToks = append(resultToks, repeated...)
			resultCoords = append(resultCoords, netCoords[prev:curr]...)

			resultToks = append(resultToks, sp.replacement)
			resultCoords = append(resultCoords, after)

			curr += chunk
			prev = curr
			found = true
			break
		}
		if !found {
			curr++
		}
	}

	before := startCoord
	if prev != 0 {
		before = coordAt(netCoords, prev-1, stopCoord)
	}
	tail := tokens[prev:]
	tailCoords := netCoords[minInt(prev, len(netCoords)):]
	repeated, err := placeRepeaters(tail, tailCoords, before, stopCoord, startStrength, minStrength)
	if err != nil {
		return nil, nil, err
	}
	resultToks = append(resultToks, repeated...)
	resultCoords = append(resultCoords, tailCoords...)

	return resultToks, resultCoords, nil
}

// placeRepeaters inserts REPEATER tokens into subsection until every
// signal-strength value along it is at or above minStrength. coords
// holds the voxel for every entry of subsection that has one (the final
// trailing run has one fewer coord than token, for the synthetic stop
// transition); before/after seed the repeatable() check at the
// subsection's own edges.
func placeRepeaters(subsection []Token, coords []cell.Coord, before0, after0 cell.Coord, startStrength, minStrength int) ([]Token, error) {
	subsection = append([]Token(nil), subsection...)

	computeStrength := func() []int {
		if len(subsection) == 0 {
			return nil
		}
		strengths := make([]int, len(subsection))
		strengths[0] = startStrength
		for i := 1; i < len(strengths) && strengths[i-1] > 0; i++ {
			switch subsection[i] {
			case Wire:
				strengths[i] = strengths[i-1] - 1
			case Repeater:
				strengths[i] = 16
			default:
				strengths[i] = strengths[i-1] - 1
			}
		}
		return strengths
	}

	strengths := computeStrength()
	for anyBelow(strengths, minStrength) {
		idx := indexOfValue(strengths, minStrength-1)
		if idx < 0 {
			return nil, fmt.Errorf("extractor: cannot place repeaters to satisfy minimum strength")
		}

		repeaterI := idx
		for repeaterI >= 0 {
			before := before0
			if repeaterI > 0 {
				before = coords[repeaterI-1]
			}
			after := after0
			if repeaterI < len(coords)-1 {
				after = coords[repeaterI+1]
			}

			if repeatable(before, after) {
				subsection[repeaterI] = Repeater
				break
			}
			repeaterI--
		}
		if repeaterI < 0 {
			return nil, fmt.Errorf("extractor: cannot place repeaters to satisfy minimum strength")
		}

		strengths = computeStrength()
	}

	return subsection, nil
}

// repeatable reports whether a repeater between before and after would
// sit on a straight Z or X run.
func repeatable(before, after cell.Coord) bool {
	if before.Y != after.Y {
		return false
	}
	if before.Z == after.Z && absInt(before.X-after.X) == 2 {
		return true
	}
	if before.X == after.X && absInt(before.Z-after.Z) == 2 {
		return true
	}
	return false
}

func anyBelow(strengths []int, min int) bool {
	for _, s := range strengths {
		if s < min {
			return true
		}
	}
	return false
}

func indexOfValue(values []int, v int) int {
	for i, x := range values {
		if x == v {
			return i
		}
	}
	return -1
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
