package router

import "gonum.org/v1/gonum/floats"

// normalizeScores rescales every net's segment scores into
// [normMargin, 1-normMargin] against the global min/max across all
// segments.
func normalizeScores(scores map[string][]float64, normMargin float64) map[string][]float64 {
	var all []float64
	for _, s := range scores {
		all = append(all, s...)
	}
	if len(all) == 0 {
		return map[string][]float64{}
	}

	minScore := floats.Min(all)
	maxScore := floats.Max(all)
	normRange := 1.0 - 2*normMargin
	spread := maxScore - minScore

	out := make(map[string][]float64, len(scores))
	for netName, netScores := range scores {
		normalized := make([]float64, len(netScores))
		for i, s := range netScores {
			if spread == 0 {
				normalized[i] = normMargin
				continue
			}
			scale := normRange / spread
			normalized[i] = normMargin + (s-minScore)*scale
		}
		out[netName] = normalized
	}
	return out
}
