package extractor

import (
	"fmt"

	"github.com/qmn/pershing/pkg/cell"
	"github.com/qmn/pershing/pkg/config"
)

// TokenCoord is one classified step of an extracted segment.
type TokenCoord struct {
	Token Token
	Coord cell.Coord
}

// ExtractedSegment is the zipped (token, coord) sequence a routed segment
// extracts to.
type ExtractedSegment []TokenCoord

// Extractor classifies polyline steps and inserts repeaters to keep
// signal strength above its configured floor.
type Extractor struct {
	cfg config.ExtractorConfig
}

// New builds an Extractor.
func New(cfg config.ExtractorConfig) *Extractor {
	return &Extractor{cfg: cfg}
}

func determineMovement(c1, c2 cell.Coord) (Token, error) {
	dy := c2.Y - c1.Y
	isWire := abs(dy) <= 1 &&
		((c1.X == c2.X && abs(c1.Z-c2.Z) == 1) || (c1.Z == c2.Z && abs(c1.X-c2.X) == 1))
	switch {
	case isWire:
		return Wire, nil
	case c1.Z == c2.Z && c1.X == c2.X && dy == 3:
		return UpVia, nil
	case c1.Z == c2.Z && c1.X == c2.X && dy == -3:
		return DownVia, nil
	default:
		return 0, fmt.Errorf("extractor: no admissible connection between %+v and %+v", c1, c2)
	}
}

// generateInitialExtraction tokenizes start->net[0], each internal
// net[i]->net[i+1], and net[-1]->stop, producing one more token than
// len(net).
func generateInitialExtraction(startPin cell.Coord, net []cell.Coord, stopPin cell.Coord) ([]Token, error) {
	if len(net) == 0 {
		tok, err := determineMovement(startPin, stopPin)
		if err != nil {
			return nil, err
		}
		return []Token{tok}, nil
	}

	tokens := make([]Token, 0, len(net)+1)
	first, err := determineMovement(startPin, net[0])
	if err != nil {
		return nil, err
	}
	tokens = append(tokens, first)

	for i := 0; i < len(net)-1; i++ {
		tok, err := determineMovement(net[i], net[i+1])
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}

	last, err := determineMovement(net[len(net)-1], stopPin)
	if err != nil {
		return nil, err
	}
	tokens = append(tokens, last)
	return tokens, nil
}

// ExtractSegment tokenizes a segment's polyline and inserts repeaters,
// returning the zipped (token, coord) sequence that place_blocks paints.
func (e *Extractor) ExtractSegment(net []cell.Coord, startPin, stopPin cell.Coord) (ExtractedSegment, error) {
	tokens, err := generateInitialExtraction(startPin, net, stopPin)
	if err != nil {
		return nil, err
	}

	resultToks, resultCoords, err := splitExtraction(tokens, net, startPin, stopPin, e.cfg.StartSignalStrength, e.cfg.MinSignalStrength)
	if err != nil {
		return nil, err
	}

	if len(resultToks) > len(resultCoords) {
		resultToks = resultToks[:len(resultCoords)]
	}

	seg := make(ExtractedSegment, len(resultCoords))
	for i := range resultCoords {
		seg[i] = TokenCoord{Token: resultToks[i], Coord: resultCoords[i]}
	}
	return seg, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
