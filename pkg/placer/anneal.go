package placer

import (
	"math"

	"github.com/qmn/pershing/pkg/cell"
)

// moveKind names the move a generate step produced.
type moveKind int

const (
	moveInterchange moveKind = iota
	moveDisplace
	moveReorient
)

// generate produces one candidate placement set by picking a random
// placement and either interchanging it with a distinct other placement,
// or displacing/reorienting it according to the adaptive method state.
// The displace window is proportional to the layout's own Z/X extent
// (dims.Width/dims.Length), not a fixed constant.
func (pl *Placer) generate(current []Placement, method moveKind, t, t0 float64, dims cell.Shape) ([]Placement, moveKind) {
	n := len(current)
	if n == 0 {
		return ClonePlacements(current), method
	}

	out := ClonePlacements(current)
	i := pl.rng.Intn(n)

	if n > 1 && pl.rng.Float64() > 1.0/float64(pl.cfg.InterchangeRatio) {
		j := i
		for j == i {
			j = pl.rng.Intn(n)
		}
		out[i].Placement, out[j].Placement = out[j].Placement, out[i].Placement
		return out, moveInterchange
	}

	if method == moveReorient {
		out[i].Turns = mod4(out[i].Turns + 1)
		return out, moveReorient
	}

	sigma := math.Log(t) / math.Log(t0)
	halfWindowZ := int(math.Max(2, math.Round(float64(dims.Width)*sigma)))
	halfWindowX := int(math.Max(2, math.Round(float64(dims.Length)*sigma)))
	dz := pl.sampleOffset(halfWindowZ)
	dx := pl.sampleOffset(halfWindowX)

	if pl.GridSnap {
		interval := pl.cfg.GridSpacing + pl.maxCellSide
		if interval < 1 {
			interval = 1
		}
		gridHalfWindow := int(math.Max(2, math.Round(float64(interval)*5*sigma)))
		dz = roundToMultiple(pl.sampleOffset(gridHalfWindow), interval)
		dx = roundToMultiple(pl.sampleOffset(gridHalfWindow), interval)
	}

	out[i].Placement.Z += dz
	out[i].Placement.X += dx
	return out, moveDisplace
}

func (pl *Placer) sampleOffset(halfWindow int) int {
	if halfWindow <= 0 {
		return 0
	}
	return pl.rng.Intn(2*halfWindow+1) - halfWindow
}

func roundToMultiple(v, interval int) int {
	if interval == 0 {
		return v
	}
	f := math.Round(float64(v) / float64(interval))
	return int(f) * interval
}

func mod4(n int) int {
	return ((n % 4) + 4) % 4
}

// Anneal runs the simulated-annealing placement loop, returning the
// best-scoring placement observed. cancel, if non-nil, lets a caller
// interrupt the loop early; the best state so far is returned.
func (pl *Placer) Anneal(initial []Placement, dims cell.Shape, cancel <-chan struct{}) []Placement {
	current := ClonePlacements(initial)
	best := ClonePlacements(initial)
	currentScore := pl.Score(current, dims)
	bestScore := currentScore

	t0 := pl.cfg.InitialTemperature
	t := t0

	for iter := 0; iter < pl.cfg.Iterations; iter++ {
		select {
		case <-cancel:
			return best
		default:
		}

		method := moveDisplace
		for g := 0; g < pl.cfg.Generations; g++ {
			candidate, kind := pl.generate(current, method, t, t0, dims)
			candidateScore := pl.Score(candidate, dims)
			delta := candidateScore - currentScore

			accept := -delta/t > 1 || pl.rng.Float64() < math.Exp(-delta/t)

			switch kind {
			case moveDisplace:
				if !accept {
					method = moveReorient
				}
			case moveReorient:
				if accept {
					method = moveDisplace
				}
			}

			if accept {
				current = candidate
				currentScore = candidateScore
				if currentScore < bestScore {
					best = ClonePlacements(current)
					bestScore = currentScore
				}
			}
		}

		t *= pl.cfg.Cooling
	}

	return best
}
