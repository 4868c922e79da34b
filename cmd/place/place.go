package place

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/qmn/pershing/pkg/cell"
	"github.com/qmn/pershing/pkg/common"
	"github.com/qmn/pershing/pkg/config"
	"github.com/qmn/pershing/pkg/netlist"
	"github.com/qmn/pershing/pkg/placer"
	"github.com/qmn/pershing/pkg/ui"
)

var (
	libraryPath    string
	placementsPath string
	seed           int64
	iterations     int
	temperature    float64
	gridSnap       bool
)

var placeCmd = &cobra.Command{
	Use:   "place <netlist.blif>",
	Short: "Place cell instances with simulated annealing",
	Long: `Place reads a BLIF netlist and a cell library, runs the simulated-
annealing placer, and writes the resulting placements and bounding shape
to a placements.json document.

Examples:
  pershing place netlist.blif --library library.yaml
  pershing place netlist.blif --library library.yaml --placements out/placements.json --seed 7`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		netlistPath := args[0]

		common.Info("Loading cell library from %s", libraryPath)
		libFile, err := os.Open(libraryPath)
		if err != nil {
			return fmt.Errorf("place: open library: %w", err)
		}
		defer libFile.Close()
		lib, err := cell.LoadLibrary(libFile)
		if err != nil {
			return fmt.Errorf("place: load library: %w", err)
		}
		cells := cell.Pregenerate(lib)

		common.Info("Loading netlist from %s", netlistPath)
		nlFile, err := os.Open(netlistPath)
		if err != nil {
			return fmt.Errorf("place: open netlist: %w", err)
		}
		defer nlFile.Close()
		nl, err := netlist.Load(nlFile)
		if err != nil {
			return fmt.Errorf("place: load netlist: %w", err)
		}
		common.Verbose("Netlist %q: %d cells, %d inputs, %d outputs", nl.Model, len(nl.Cells), len(nl.Inputs), len(nl.Outputs))

		cfg := config.DefaultPlacerConfig()
		if iterations > 0 {
			cfg.Iterations = iterations
		}
		if temperature > 0 {
			cfg.InitialTemperature = temperature
		}

		rng := rand.New(rand.NewSource(seed))
		var pl *placer.Placer
		if gridSnap {
			pl = placer.NewGridPlacer(cells, cfg, rng)
		} else {
			pl = placer.NewPlacer(cells, cfg, rng)
		}

		initial, dims := pl.InitialPlacement(nl)

		spin := ui.NewSpinner(fmt.Sprintf("annealing %d iterations...", cfg.Iterations))
		spin.Start()
		annealed := pl.Anneal(initial, dims, nil)
		spin.Stop()

		shrunk, shrunkDims := pl.Shrink(annealed)
		withPins, finalDims, err := pl.PlacePins(shrunk, shrunkDims, nl)
		if err != nil {
			return fmt.Errorf("place: assign pins: %w", err)
		}

		common.Info("Placement score: %.2f", pl.Score(withPins, finalDims))

		out, err := os.Create(placementsPath)
		if err != nil {
			return fmt.Errorf("place: create %s: %w", placementsPath, err)
		}
		defer out.Close()
		if err := placer.SavePlacements(out, withPins, finalDims); err != nil {
			return fmt.Errorf("place: save placements: %w", err)
		}

		common.Info("Wrote %d placements to %s", len(withPins), placementsPath)
		return nil
	},
}

func init() {
	placeCmd.Flags().StringVar(&libraryPath, "library", "library.yaml", "cell library document")
	placeCmd.Flags().StringVar(&placementsPath, "placements", "placements.json", "output placements document")
	placeCmd.Flags().Int64Var(&seed, "seed", 1, "seed for the annealing RNG")
	placeCmd.Flags().IntVar(&iterations, "iterations", 0, "override the annealer's outer iteration count")
	placeCmd.Flags().Float64Var(&temperature, "temperature", 0, "override the annealer's initial temperature")
	placeCmd.Flags().BoolVar(&gridSnap, "grid", false, "snap displacement moves to the grid interval (grid spacing plus the largest cell side)")
}

// GetCommand returns the place command for registration with root.
func GetCommand() *cobra.Command {
	return placeCmd
}
