package timing

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qmn/pershing/pkg/cell"
	"github.com/qmn/pershing/pkg/common"
	"github.com/qmn/pershing/pkg/config"
	"github.com/qmn/pershing/pkg/extractor"
	"github.com/qmn/pershing/pkg/placer"
	"github.com/qmn/pershing/pkg/router"
	"github.com/qmn/pershing/pkg/timing"
)

var (
	libraryPath    string
	placementsPath string
	routingsPath   string
)

var timingCmd = &cobra.Command{
	Use:   "timing",
	Short: "Report combinational critical-path delay",
	Long: `Timing reads a placements and routing document, re-derives each net's
extracted token stream, and walks the driver-to-driven DAG to report every
completed combinational path and its delay in redstone ticks.

Examples:
  pershing timing --placements placements.json --routings routing.json --library library.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		libFile, err := os.Open(libraryPath)
		if err != nil {
			return fmt.Errorf("timing: open library: %w", err)
		}
		defer libFile.Close()
		lib, err := cell.LoadLibrary(libFile)
		if err != nil {
			return fmt.Errorf("timing: load library: %w", err)
		}

		plFile, err := os.Open(placementsPath)
		if err != nil {
			return fmt.Errorf("timing: open placements: %w", err)
		}
		defer plFile.Close()
		placements, _, err := placer.LoadPlacements(plFile)
		if err != nil {
			return fmt.Errorf("timing: load placements: %w", err)
		}

		rtFile, err := os.Open(routingsPath)
		if err != nil {
			return fmt.Errorf("timing: open routings: %w", err)
		}
		defer rtFile.Close()
		routing, _, err := router.LoadRouting(rtFile)
		if err != nil {
			return fmt.Errorf("timing: load routing: %w", err)
		}

		e := extractor.New(config.DefaultExtractorConfig())
		extracted, err := e.ExtractRouting(routing)
		if err != nil {
			return fmt.Errorf("timing: %w", err)
		}

		t := timing.New(config.DefaultTimingConfig())
		paths := t.ComputeCombinationalDelay(placements, routing, extracted, lib)

		worst := 0
		for _, p := range paths {
			common.Info("delay=%d  %s", p.Delay, strings.Join(p.Trace, " -> "))
			if p.Delay > worst {
				worst = p.Delay
			}
		}
		common.Info("%d combinational paths, worst delay %d ticks", len(paths), worst)
		return nil
	},
}

func init() {
	timingCmd.Flags().StringVar(&libraryPath, "library", "library.yaml", "cell library document")
	timingCmd.Flags().StringVar(&placementsPath, "placements", "placements.json", "input placements document")
	timingCmd.Flags().StringVar(&routingsPath, "routings", "routing.json", "input routing document")
}

// GetCommand returns the timing command for registration with root.
func GetCommand() *cobra.Command {
	return timingCmd
}
