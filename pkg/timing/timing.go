// Package timing computes critical-path combinational delay over a
// routed, extracted circuit by walking its driver-to-driven DAG.
package timing

import (
	"github.com/qmn/pershing/pkg/cell"
	"github.com/qmn/pershing/pkg/config"
	"github.com/qmn/pershing/pkg/extractor"
	"github.com/qmn/pershing/pkg/placer"
	"github.com/qmn/pershing/pkg/router"
)

// Path is one completed driver-to-driven walk: its total delay and the
// alternating cell/net names it passed through.
type Path struct {
	Delay int
	Trace []string
}

// Timing names which cell templates act as combinational path endpoints.
type Timing struct {
	cfg config.TimingConfig
}

// New builds a Timing analyzer.
func New(cfg config.TimingConfig) *Timing {
	return &Timing{cfg: cfg}
}

// ComputeNetDelay sums a segment's per-token delay: WIRE contributes
// nothing, REPEATER costs 1 tick, and either via costs 2.
func (t *Timing) ComputeNetDelay(seg extractor.ExtractedSegment) int {
	total := 0
	for _, tc := range seg {
		switch tc.Token {
		case extractor.Wire:
			// no delay
		case extractor.Repeater:
			total++
		case extractor.UpVia, extractor.DownVia:
			total += 2
		}
	}
	return total
}

type explorationFrame struct {
	exploreList []int
	delay       int
	path        []string
}

// ComputeCombinationalDelay walks from every driver cell (an input pin or
// register output) to every driven cell (a register input or output pin),
// returning one Path per completed walk. A combinational cycle is
// detected and silently dropped, contributing no path.
func (t *Timing) ComputeCombinationalDelay(placements []placer.Placement, routing router.Routing, extracted extractor.ExtractedRouting, lib *cell.Library) []Path {
	drivenSet := indexSet(placements, t.cfg.DrivenCellNames)

	var all []Path
	for _, driverIndex := range indicesNamed(placements, t.cfg.DriverCellNames) {
		all = append(all, t.dfs(driverIndex, placements, routing, extracted, lib, drivenSet)...)
	}
	return all
}

func (t *Timing) dfs(driverIndex int, placements []placer.Placement, routing router.Routing, extracted extractor.ExtractedRouting, lib *cell.Library, drivenSet map[int]bool) []Path {
	var completed []Path
	stack := []explorationFrame{{exploreList: []int{driverIndex}}}

	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		driver := frame.exploreList[len(frame.exploreList)-1]
		cellInst := placements[driver]
		tmpl, ok := lib.Cells[cellInst.Name]
		if !ok {
			continue
		}
		cellDelay := 0
		if tmpl.Delay.HasCombinational {
			cellDelay = tmpl.Delay.Combinational
		}

		if drivenSet[driver] && len(frame.exploreList) > 1 {
			completed = append(completed, Path{Delay: frame.delay, Trace: append(append([]string{}, frame.path...), cellInst.Name)})
			continue
		}
		if seenBefore(frame.exploreList, driver) {
			continue
		}

		for portName, port := range tmpl.Ports {
			if port.Direction != cell.Output {
				continue
			}
			drivenNet, ok := cellInst.Pins[portName]
			if !ok {
				continue
			}
			nr := routing[drivenNet]
			if nr == nil {
				continue
			}

			indicesAlongNet := []int{driver}
			for len(indicesAlongNet) > 0 {
				tempDriver := indicesAlongNet[len(indicesAlongNet)-1]
				indicesAlongNet = indicesAlongNet[:len(indicesAlongNet)-1]

				for segIdx, seg := range nr.Segments {
					if seg.Driver.CellIndex != tempDriver {
						continue
					}
					segs := extracted[drivenNet]
					if segIdx >= len(segs) {
						continue
					}
					segDelay := t.ComputeNetDelay(segs[segIdx])
					cumulative := frame.delay + cellDelay + segDelay
					drivenCellIndex := seg.Driven.CellIndex

					indicesAlongNet = append(indicesAlongNet, drivenCellIndex)

					stack = append(stack, explorationFrame{
						exploreList: append(append([]int{}, frame.exploreList...), drivenCellIndex),
						delay:       cumulative,
						path:        append(append([]string{}, frame.path...), cellInst.Name, drivenNet),
					})
				}
			}
		}
	}

	return completed
}

func seenBefore(exploreList []int, driver int) bool {
	for _, idx := range exploreList[:len(exploreList)-1] {
		if idx == driver {
			return true
		}
	}
	return false
}

func indicesNamed(placements []placer.Placement, names []string) []int {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	var out []int
	for i, p := range placements {
		if set[p.Name] {
			out = append(out, i)
		}
	}
	return out
}

func indexSet(placements []placer.Placement, names []string) map[int]bool {
	out := make(map[int]bool)
	for _, i := range indicesNamed(placements, names) {
		out[i] = true
	}
	return out
}
