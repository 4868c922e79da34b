package extractor

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/qmn/pershing/pkg/cell"
	"github.com/qmn/pershing/pkg/placer"
)

// SaveExtraction writes extraction.json: a single 3D integer array of
// block IDs.
func SaveExtraction(w io.Writer, layout *placer.Layout) error {
	if err := json.NewEncoder(w).Encode(layout.ToNested()); err != nil {
		return fmt.Errorf("extractor: encode extraction: %w", err)
	}
	return nil
}

// LoadExtraction reads an extraction.json document back into a Layout.
func LoadExtraction(r io.Reader) (*placer.Layout, error) {
	var nested [][][]int
	if err := json.NewDecoder(r).Decode(&nested); err != nil {
		return nil, fmt.Errorf("extractor: decode extraction: %w", err)
	}

	h := len(nested)
	w := 0
	l := 0
	if h > 0 {
		w = len(nested[0])
		if w > 0 {
			l = len(nested[0][0])
		}
	}
	layout := placer.NewLayout(cell.Shape{Height: h, Width: w, Length: l})
	for y := 0; y < h; y++ {
		for z := 0; z < w; z++ {
			for x := 0; x < l; x++ {
				layout.SetBlock(cell.Coord{Y: y, Z: z, X: x}, nested[y][z][x], 0)
			}
		}
	}
	return layout, nil
}
