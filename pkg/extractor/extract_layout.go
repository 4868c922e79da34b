package extractor

import (
	"fmt"

	"github.com/qmn/pershing/pkg/placer"
	"github.com/qmn/pershing/pkg/router"
)

// ExtractedRouting holds every net's extracted segments, keyed by net
// name then segment index, mirroring the router.Routing shape.
type ExtractedRouting map[string][]ExtractedSegment

// ExtractRouting tokenizes and repeater-inserts every segment of routing.
func (e *Extractor) ExtractRouting(routing router.Routing) (ExtractedRouting, error) {
	out := make(ExtractedRouting, len(routing))
	for netName, nr := range routing {
		segs := make([]ExtractedSegment, len(nr.Segments))
		for i, seg := range nr.Segments {
			extracted, err := e.ExtractSegment(seg.Net, seg.Driver.PinCoord, seg.Driven.PinCoord)
			if err != nil {
				return nil, fmt.Errorf("extractor: net %q segment %d: %w", netName, i, err)
			}
			segs[i] = extracted
		}
		out[netName] = segs
	}
	return out, nil
}

// ExtractLayout paints every extracted segment into a copy of layout.
func ExtractLayout(extracted ExtractedRouting, layout *placer.Layout) *placer.Layout {
	out := &placer.Layout{
		Shape:  layout.Shape,
		Blocks: append([]int(nil), layout.Blocks...),
		Data:   append([]int(nil), layout.Data...),
	}
	for _, segs := range extracted {
		for _, seg := range segs {
			PlaceBlocks(seg, out)
		}
	}
	return out
}
