package router

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/qmn/pershing/pkg/cell"
)

type jsonPin struct {
	CellIndex  int    `json:"cell_index"`
	Port       string `json:"port"`
	PinCoord   [3]int `json:"pin_coord"`
	RouteCoord [3]int `json:"route_coord"`
	IsOutput   bool   `json:"is_output"`
}

type jsonSegment struct {
	Pins [2]jsonPin `json:"pins"`
	Net  [][3]int   `json:"net"`
}

type jsonNetRouting struct {
	Pins     []jsonPin     `json:"pins"`
	Segments []jsonSegment `json:"segments"`
}

func toJSONPin(p ExtendedPin) jsonPin {
	return jsonPin{
		CellIndex:  p.CellIndex,
		Port:       p.Port,
		PinCoord:   [3]int{p.PinCoord.Y, p.PinCoord.Z, p.PinCoord.X},
		RouteCoord: [3]int{p.RouteCoord.Y, p.RouteCoord.Z, p.RouteCoord.X},
		IsOutput:   p.IsOutput,
	}
}

func fromJSONPin(p jsonPin) ExtendedPin {
	return ExtendedPin{
		CellIndex:  p.CellIndex,
		Port:       p.Port,
		PinCoord:   cell.Coord{Y: p.PinCoord[0], Z: p.PinCoord[1], X: p.PinCoord[2]},
		RouteCoord: cell.Coord{Y: p.RouteCoord[0], Z: p.RouteCoord[1], X: p.RouteCoord[2]},
		IsOutput:   p.IsOutput,
	}
}

// SaveRouting writes routing.json's two documents: the
// routing object, net name -> {pins, segments:[{pins, net}]}, then the
// dimensions array. The wire and violation grids are not persisted; they
// are re-derived on load.
func SaveRouting(w io.Writer, routing Routing, dims cell.Shape) error {
	enc := json.NewEncoder(w)

	out := make(map[string]jsonNetRouting, len(routing))
	for netName, nr := range routing {
		jr := jsonNetRouting{Pins: make([]jsonPin, len(nr.Pins))}
		for i, p := range nr.Pins {
			jr.Pins[i] = toJSONPin(p)
		}
		for _, seg := range nr.Segments {
			net := make([][3]int, len(seg.Net))
			for i, c := range seg.Net {
				net[i] = [3]int{c.Y, c.Z, c.X}
			}
			jr.Segments = append(jr.Segments, jsonSegment{
				Pins: [2]jsonPin{toJSONPin(seg.Driver), toJSONPin(seg.Driven)},
				Net:  net,
			})
		}
		out[netName] = jr
	}

	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("router: encode routing: %w", err)
	}
	if err := enc.Encode([3]int{dims.Height, dims.Width, dims.Length}); err != nil {
		return fmt.Errorf("router: encode dimensions: %w", err)
	}
	return nil
}

// LoadRouting reads a routing.json stream produced by SaveRouting,
// re-deriving each segment's wire and violation grids from its polyline.
func LoadRouting(r io.Reader) (Routing, cell.Shape, error) {
	dec := json.NewDecoder(r)

	var raw map[string]jsonNetRouting
	if err := dec.Decode(&raw); err != nil {
		return nil, cell.Shape{}, fmt.Errorf("router: decode routing: %w", err)
	}
	var dimsArr [3]int
	if err := dec.Decode(&dimsArr); err != nil {
		return nil, cell.Shape{}, fmt.Errorf("router: decode dimensions: %w", err)
	}

	routing := make(Routing, len(raw))
	for netName, jr := range raw {
		nr := &NetRouting{Pins: make([]ExtendedPin, len(jr.Pins))}
		for i, p := range jr.Pins {
			nr.Pins[i] = fromJSONPin(p)
		}
		for _, js := range jr.Segments {
			driver := fromJSONPin(js.Pins[0])
			driven := fromJSONPin(js.Pins[1])
			net := make([]cell.Coord, len(js.Net))
			for i, c := range js.Net {
				net[i] = cell.Coord{Y: c[0], Z: c[1], X: c[2]}
			}
			wire, violation := wireAndViolation(net, [2]cell.Coord{driver.RouteCoord, driven.RouteCoord})
			nr.Segments = append(nr.Segments, &Segment{Driver: driver, Driven: driven, Net: net, Wire: wire, Violation: violation})
		}
		routing[netName] = nr
	}

	dims := cell.Shape{Height: dimsArr[0], Width: dimsArr[1], Length: dimsArr[2]}
	return routing, dims, nil
}
