package router

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/qmn/pershing/pkg/cell"
	"github.com/qmn/pershing/pkg/config"
	"github.com/qmn/pershing/pkg/placer"
)

// Router turns a placement into a routed, violation-free conductor layout.
type Router struct {
	cells cell.Pregenerated
	cfg   config.RouterConfig
	rng   *rand.Rand
	maze  *MazeRouter
}

// NewRouter builds a Router over dims-sized voxel grids.
func NewRouter(cells cell.Pregenerated, cfg config.RouterConfig, dims cell.Shape, rng *rand.Rand) *Router {
	return &Router{
		cells: cells,
		cfg:   cfg,
		rng:   rng,
		maze:  NewMazeRouter(dims, cfg.ViolationCost),
	}
}

// extractExtendedPins computes every net's extended pins from a placement
// set: each pin's route_coord is one cell beyond its pin_coord, in the
// port's facing direction.
func (r *Router) extractExtendedPins(placements []placer.Placement) (map[string][]ExtendedPin, error) {
	byNet := make(map[string][]ExtendedPin)
	for cellIdx, p := range placements {
		tmpl, err := r.cells.Lookup(p.Name, p.Turns)
		if err != nil {
			return nil, err
		}
		for portName, net := range p.Pins {
			port, ok := tmpl.Ports[portName]
			if !ok {
				return nil, fmt.Errorf("router: placement %q has no port %q", p.Name, portName)
			}
			pinCoord := p.Placement.Add(port.Coord)
			routeCoord := port.Facing.Step(pinCoord)
			byNet[net] = append(byNet[net], ExtendedPin{
				CellIndex:  cellIdx,
				Port:       portName,
				PinCoord:   pinCoord,
				RouteCoord: routeCoord,
				IsOutput:   port.Direction == cell.Output,
			})
		}
	}
	return byNet, nil
}

// InitialRouting decomposes every multi-pin net into an MST-derived DAG of
// segments and dumb-routes each one.
func (r *Router) InitialRouting(placements []placer.Placement, dims cell.Shape) (Routing, error) {
	pinsByNet, err := r.extractExtendedPins(placements)
	if err != nil {
		return nil, err
	}

	routing := make(Routing, len(pinsByNet))
	for netName, pins := range pinsByNet {
		nr := &NetRouting{Pins: pins}
		if len(pins) >= 2 {
			mst := minimumSpanningTree(len(pins), func(i int) [3]int {
				c := pins[i].RouteCoord
				return [3]int{c.Y, c.Z, c.X}
			})
			dag := dagFromOutputMST(mst, func(i int) bool { return pins[i].IsOutput })

			for _, e := range dag {
				driver, driven := pins[e.driver], pins[e.driven]
				seg, err := r.buildSegment(driver, driven)
				if err != nil {
					return nil, err
				}
				nr.Segments = append(nr.Segments, seg)
			}
		}
		routing[netName] = nr
	}
	return routing, nil
}

func (r *Router) buildSegment(driver, driven ExtendedPin) (*Segment, error) {
	net, err := dumbRoute(driver.RouteCoord, driven.RouteCoord)
	if err != nil {
		return nil, err
	}
	wire, violation := wireAndViolation(net, [2]cell.Coord{driver.RouteCoord, driven.RouteCoord})
	return &Segment{Driver: driver, Driven: driven, Net: net, Wire: wire, Violation: violation}, nil
}

// segmentScore implements per-segment cost:
// alpha*violations + beta*(vias-num_pins) + gamma*(length/max(1,manhattan)).
func (r *Router) segmentScore(seg *Segment, usage map[cell.Coord]bool) (score float64, violations int) {
	violations = countViolations(seg.Violation, usage)
	const vias = 0
	const numPins = 2
	a := [3]int{seg.Driver.RouteCoord.Y, seg.Driver.RouteCoord.Z, seg.Driver.RouteCoord.X}
	b := [3]int{seg.Driven.RouteCoord.Y, seg.Driven.RouteCoord.Z, seg.Driven.RouteCoord.X}
	lowerBound := manhattan(a, b)
	if lowerBound < 1 {
		lowerBound = 1
	}
	lengthRatio := float64(len(seg.Net)) / float64(lowerBound)

	score = r.cfg.ViolationWeight*float64(violations) +
		r.cfg.ViaPinWeight*float64(vias-numPins) +
		r.cfg.LengthWeight*lengthRatio
	return score, violations
}

// scoreRouting scores every segment of every net against usage, returning
// per-net score slices (parallel to each net's Segments) and the total
// violation count.
func (r *Router) scoreRouting(routing Routing, usage map[cell.Coord]bool) (map[string][]float64, int) {
	scores := make(map[string][]float64, len(routing))
	total := 0
	for netName, nr := range routing {
		netScores := make([]float64, len(nr.Segments))
		for i, seg := range nr.Segments {
			s, v := r.segmentScore(seg, usage)
			netScores[i] = s
			total += v
		}
		scores[netName] = netScores
	}
	return scores, total
}

// Score sums every segment's score into one routing-quality number.
func (r *Router) Score(routing Routing, usage map[cell.Coord]bool) float64 {
	scores, _ := r.scoreRouting(routing, usage)
	total := 0.0
	for _, netScores := range scores {
		for _, s := range netScores {
			total += s
		}
	}
	return total
}

// Route runs the full pipeline: initial dumb routing followed by
// rip-up-and-reroute until no violations remain or cancel fires.
func (r *Router) Route(placements []placer.Placement, layout *placer.Layout, dims cell.Shape, cancel <-chan struct{}) (Routing, error) {
	routing, err := r.InitialRouting(placements, dims)
	if err != nil {
		return nil, err
	}

	usage := buildUsageMatrix(layout, routing, nil)
	scores, violations := r.scoreRouting(routing, usage)

	for violations > 0 {
		select {
		case <-cancel:
			return routing, nil
		default:
		}

		normalized := normalizeScores(scores, r.cfg.NormMargin)
		ripUp := r.naturalSelection(normalized)

		exclude := make(excludeSet)
		for _, ru := range ripUp {
			if exclude[ru.net] == nil {
				exclude[ru.net] = make(map[int]bool)
			}
			exclude[ru.net][ru.index] = true
		}

		rerouteUsage := buildUsageMatrix(layout, routing, exclude)

		sort.SliceStable(ripUp, func(i, j int) bool {
			return normalized[ripUp[i].net][ripUp[i].index] > normalized[ripUp[j].net][ripUp[j].index]
		})

		for _, ru := range ripUp {
			nr := routing[ru.net]
			old := nr.Segments[ru.index]
			path, err := r.maze.Route(old.Driver.RouteCoord, old.Driven.RouteCoord, rerouteUsage)
			if err != nil {
				return routing, fmt.Errorf("router: reroute %s[%d]: %w", ru.net, ru.index, err)
			}
			wire, violation := wireAndViolation(path, [2]cell.Coord{old.Driver.RouteCoord, old.Driven.RouteCoord})
			nr.Segments[ru.index] = &Segment{Driver: old.Driver, Driven: old.Driven, Net: path, Wire: wire, Violation: violation}
			for c := range wire {
				rerouteUsage[c] = true
			}
		}

		usage = buildUsageMatrix(layout, routing, nil)
		scores, violations = r.scoreRouting(routing, usage)
	}

	return routing, nil
}

type ripUpEntry struct {
	net   string
	index int
}

func (r *Router) naturalSelection(normalized map[string][]float64) []ripUpEntry {
	var out []ripUpEntry
	for netName, netScores := range normalized {
		for i, s := range netScores {
			if r.rng.Float64() < s {
				out = append(out, ripUpEntry{net: netName, index: i})
			}
		}
	}
	return out
}
