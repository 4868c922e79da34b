// Package config holds the tuning constants for the placer, router, and
// extractor engines: a plain struct of defaults rather than a global, so
// every engine run is reproducible from an explicit configuration and an
// explicit seed.
package config

// PlacerConfig tunes the simulated-annealing placement of cell instances.
type PlacerConfig struct {
	InitialTemperature float64 // T0
	Iterations         int
	Generations        int     // gens per iteration
	Cooling            float64 // geometric cooling factor alpha, applied each outer iteration
	InterchangeRatio   int     // R: interchange happens with probability 1 - 1/R
	GridSpacing        int     // GridPlacer: spacing between adjacent cell rows/columns
}

// DefaultPlacerConfig returns conservative interactive defaults (T_0=500,
// iterations=2000, generations=20); override via flags for production-size
// runs.
func DefaultPlacerConfig() PlacerConfig {
	return PlacerConfig{
		InitialTemperature: 500,
		Iterations:         2000,
		Generations:        20,
		Cooling:            0.9,
		InterchangeRatio:   5,
		GridSpacing:        1,
	}
}

// RouterConfig tunes net scoring and the rip-up-and-reroute loop.
type RouterConfig struct {
	ViolationWeight float64 // alpha
	ViaPinWeight    float64 // beta
	LengthWeight    float64 // gamma
	NormMargin      float64
	ViolationCost   int // maze-route penalty for stepping near a foreign conductor
}

// DefaultRouterConfig returns the standard segment-scoring constants
// (alpha=3, beta=0.1, gamma=1, norm_margin=0.1) and a maze-route
// violation penalty of 1000.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		ViolationWeight: 3,
		ViaPinWeight:    0.1,
		LengthWeight:    1,
		NormMargin:      0.1,
		ViolationCost:   1000,
	}
}

// ExtractorConfig tunes repeater insertion.
type ExtractorConfig struct {
	StartSignalStrength int
	MinSignalStrength   int
}

// DefaultExtractorConfig returns a driver-side signal strength of 13
// (nominally 15, derated by a 2-tick margin for the driving gate) and a
// floor of 1.
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		StartSignalStrength: 13,
		MinSignalStrength:   1,
	}
}

// TimingConfig names the cell-template types that act as combinational
// drivers/driven endpoints.
type TimingConfig struct {
	DriverCellNames []string // e.g. input_pin, DFF
	DrivenCellNames []string // e.g. output_pin, DFF
}

// DefaultTimingConfig names input pins and flip-flop outputs as drivers,
// and flip-flop inputs and output pins as driven endpoints.
func DefaultTimingConfig() TimingConfig {
	return TimingConfig{
		DriverCellNames: []string{"input_pin", "DFF"},
		DrivenCellNames: []string{"DFF", "output_pin"},
	}
}
