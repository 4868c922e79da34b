package placer

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/qmn/pershing/pkg/cell"
)

// jsonPlacement is the wire form of a Placement: Pins is sorted by key at
// encode time only implicitly, via Go's stable map-to-JSON-object encoding.
type jsonPlacement struct {
	Name      string            `json:"name"`
	Placement [3]int            `json:"placement"`
	Turns     int               `json:"turns"`
	Pins      map[string]string `json:"pins"`
}

// SavePlacements writes placements.json's two documents:
// the placements array, then the dimensions array, each on its own line.
func SavePlacements(w io.Writer, placements []Placement, dims cell.Shape) error {
	enc := json.NewEncoder(w)

	out := make([]jsonPlacement, len(placements))
	for i, p := range placements {
		out[i] = jsonPlacement{
			Name:      p.Name,
			Placement: [3]int{p.Placement.Y, p.Placement.Z, p.Placement.X},
			Turns:     p.Turns,
			Pins:      p.Pins,
		}
	}
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("placer: encode placements: %w", err)
	}
	if err := enc.Encode([3]int{dims.Height, dims.Width, dims.Length}); err != nil {
		return fmt.Errorf("placer: encode dimensions: %w", err)
	}
	return nil
}

// LoadPlacements reads a placements.json stream produced by SavePlacements.
func LoadPlacements(r io.Reader) ([]Placement, cell.Shape, error) {
	dec := json.NewDecoder(r)

	var raw []jsonPlacement
	if err := dec.Decode(&raw); err != nil {
		return nil, cell.Shape{}, fmt.Errorf("placer: decode placements: %w", err)
	}
	var dimsArr [3]int
	if err := dec.Decode(&dimsArr); err != nil {
		return nil, cell.Shape{}, fmt.Errorf("placer: decode dimensions: %w", err)
	}

	placements := make([]Placement, len(raw))
	for i, rp := range raw {
		placements[i] = Placement{
			Name:      rp.Name,
			Placement: cell.Coord{Y: rp.Placement[0], Z: rp.Placement[1], X: rp.Placement[2]},
			Turns:     rp.Turns,
			Pins:      rp.Pins,
		}
	}
	dims := cell.Shape{Height: dimsArr[0], Width: dimsArr[1], Length: dimsArr[2]}
	return placements, dims, nil
}
