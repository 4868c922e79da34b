package run

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/qmn/pershing/pkg/cell"
	"github.com/qmn/pershing/pkg/common"
	"github.com/qmn/pershing/pkg/config"
	"github.com/qmn/pershing/pkg/extractor"
	"github.com/qmn/pershing/pkg/netlist"
	"github.com/qmn/pershing/pkg/placer"
	"github.com/qmn/pershing/pkg/router"
	"github.com/qmn/pershing/pkg/timing"
	"github.com/qmn/pershing/pkg/ui"
)

var (
	libraryPath    string
	placementsPath string
	routingsPath   string
	extractionPath string
	outputDir      string
	worldPath      string
	seed           int64
)

var runCmd = &cobra.Command{
	Use:   "run <netlist.blif>",
	Short: "Run the full place -> route -> extract -> timing pipeline",
	Long: `Run takes a BLIF netlist and a cell library through placement, routing,
extraction, and timing analysis in one pass, writing placements.json,
routing.json, and extraction.json into --output-dir.

Examples:
  pershing run netlist.blif --library library.yaml --output-dir build/`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		netlistPath := args[0]

		if outputDir != "" {
			if err := os.MkdirAll(outputDir, 0o755); err != nil {
				return fmt.Errorf("run: create output dir: %w", err)
			}
		}
		resolve := func(path string) string {
			if outputDir == "" || filepath.IsAbs(path) {
				return path
			}
			return filepath.Join(outputDir, path)
		}

		common.Info("Loading cell library from %s", libraryPath)
		libFile, err := os.Open(libraryPath)
		if err != nil {
			return fmt.Errorf("run: open library: %w", err)
		}
		defer libFile.Close()
		lib, err := cell.LoadLibrary(libFile)
		if err != nil {
			return fmt.Errorf("run: load library: %w", err)
		}
		cells := cell.Pregenerate(lib)

		common.Info("Loading netlist from %s", netlistPath)
		nlFile, err := os.Open(netlistPath)
		if err != nil {
			return fmt.Errorf("run: open netlist: %w", err)
		}
		defer nlFile.Close()
		nl, err := netlist.Load(nlFile)
		if err != nil {
			return fmt.Errorf("run: load netlist: %w", err)
		}

		placerCfg := config.DefaultPlacerConfig()
		rng := rand.New(rand.NewSource(seed))
		pl := placer.NewPlacer(cells, placerCfg, rng)

		initial, dims := pl.InitialPlacement(nl)

		spin := ui.NewSpinner(fmt.Sprintf("annealing %d iterations...", placerCfg.Iterations))
		spin.Start()
		annealed := pl.Anneal(initial, dims, nil)
		spin.Stop()

		shrunk, shrunkDims := pl.Shrink(annealed)
		placements, finalDims, err := pl.PlacePins(shrunk, shrunkDims, nl)
		if err != nil {
			return fmt.Errorf("run: assign pins: %w", err)
		}
		spin.LogInfo("placement score: %.2f", pl.Score(placements, finalDims))

		placementsFile, err := os.Create(resolve(placementsPath))
		if err != nil {
			return fmt.Errorf("run: create %s: %w", placementsPath, err)
		}
		if err := placer.SavePlacements(placementsFile, placements, finalDims); err != nil {
			placementsFile.Close()
			return fmt.Errorf("run: save placements: %w", err)
		}
		placementsFile.Close()

		layout, err := pl.PlacementToLayout(finalDims, placements)
		if err != nil {
			return fmt.Errorf("run: render placement layout: %w", err)
		}

		r := router.NewRouter(cells, config.DefaultRouterConfig(), finalDims, rand.New(rand.NewSource(seed)))
		spin = ui.NewSpinner("routing nets...")
		spin.Start()
		routing, err := r.Route(placements, layout, finalDims, nil)
		spin.Stop()
		if err != nil {
			return fmt.Errorf("run: route: %w", err)
		}

		routingFile, err := os.Create(resolve(routingsPath))
		if err != nil {
			return fmt.Errorf("run: create %s: %w", routingsPath, err)
		}
		if err := router.SaveRouting(routingFile, routing, finalDims); err != nil {
			routingFile.Close()
			return fmt.Errorf("run: save routing: %w", err)
		}
		routingFile.Close()

		extractorCfg := config.DefaultExtractorConfig()
		e := extractor.New(extractorCfg)
		extracted, err := e.ExtractRouting(routing)
		if err != nil {
			return fmt.Errorf("run: extract: %w", err)
		}
		painted := extractor.ExtractLayout(extracted, layout)

		if worldPath != "" {
			common.Verbose("--world %s named; the voxel-world writer is an external adapter and is not invoked here", worldPath)
		}

		extractionFile, err := os.Create(resolve(extractionPath))
		if err != nil {
			return fmt.Errorf("run: create %s: %w", extractionPath, err)
		}
		if err := extractor.SaveExtraction(extractionFile, painted); err != nil {
			extractionFile.Close()
			return fmt.Errorf("run: save extraction: %w", err)
		}
		extractionFile.Close()

		t := timing.New(config.DefaultTimingConfig())
		paths := t.ComputeCombinationalDelay(placements, routing, extracted, lib)
		worst := 0
		for _, p := range paths {
			if p.Delay > worst {
				worst = p.Delay
			}
		}
		common.Info("Pipeline complete: %d cells, %d nets routed, %d combinational paths, worst delay %d ticks", len(placements), len(routing), len(paths), worst)
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&libraryPath, "library", "library.yaml", "cell library document")
	runCmd.Flags().StringVar(&placementsPath, "placements", "placements.json", "placements output filename, relative to --output-dir")
	runCmd.Flags().StringVar(&routingsPath, "routings", "routing.json", "routing output filename, relative to --output-dir")
	runCmd.Flags().StringVar(&extractionPath, "extraction", "extraction.json", "extraction output filename, relative to --output-dir")
	runCmd.Flags().StringVar(&outputDir, "output-dir", ".", "directory for generated artifacts")
	runCmd.Flags().StringVar(&worldPath, "world", "", "target world directory for the external voxel-world writer")
	runCmd.Flags().Int64Var(&seed, "seed", 1, "seed for the placer and router RNGs")
}

// GetCommand returns the run command for registration with root.
func GetCommand() *cobra.Command {
	return runCmd
}
