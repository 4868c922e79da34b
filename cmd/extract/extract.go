package extract

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/qmn/pershing/pkg/cell"
	"github.com/qmn/pershing/pkg/common"
	"github.com/qmn/pershing/pkg/config"
	"github.com/qmn/pershing/pkg/extractor"
	"github.com/qmn/pershing/pkg/placer"
	"github.com/qmn/pershing/pkg/router"
)

var (
	libraryPath    string
	placementsPath string
	routingsPath   string
	extractionPath string
	worldPath      string
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract wire/repeater/via primitives and paint the final layout",
	Long: `Extract reads a routing document, tokenizes each net's polyline into
wire, repeater, and via primitives (inserting repeaters where the redstone
signal would decay past its floor), and paints the result onto the
placement layout. The painted layout is written as a dense 3D block-ID
array to extraction.json.

The --world flag names a target world directory for an external voxel-world
writer to consume; pershing itself only emits the block-ID array, per its
I/O boundary.

Examples:
  pershing extract --placements placements.json --routings routing.json --library library.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		common.Info("Loading cell library from %s", libraryPath)
		libFile, err := os.Open(libraryPath)
		if err != nil {
			return fmt.Errorf("extract: open library: %w", err)
		}
		defer libFile.Close()
		lib, err := cell.LoadLibrary(libFile)
		if err != nil {
			return fmt.Errorf("extract: load library: %w", err)
		}
		cells := cell.Pregenerate(lib)

		plFile, err := os.Open(placementsPath)
		if err != nil {
			return fmt.Errorf("extract: open placements: %w", err)
		}
		defer plFile.Close()
		placements, dims, err := placer.LoadPlacements(plFile)
		if err != nil {
			return fmt.Errorf("extract: load placements: %w", err)
		}

		rtFile, err := os.Open(routingsPath)
		if err != nil {
			return fmt.Errorf("extract: open routings: %w", err)
		}
		defer rtFile.Close()
		routing, _, err := router.LoadRouting(rtFile)
		if err != nil {
			return fmt.Errorf("extract: load routing: %w", err)
		}

		pl := placer.NewPlacer(cells, config.DefaultPlacerConfig(), rand.New(rand.NewSource(1)))
		layout, err := pl.PlacementToLayout(dims, placements)
		if err != nil {
			return fmt.Errorf("extract: render placement layout: %w", err)
		}

		e := extractor.New(config.DefaultExtractorConfig())
		extracted, err := e.ExtractRouting(routing)
		if err != nil {
			return fmt.Errorf("extract: %w", err)
		}
		painted := extractor.ExtractLayout(extracted, layout)

		if worldPath != "" {
			common.Verbose("--world %s named; the voxel-world writer is an external adapter and is not invoked here", worldPath)
		}

		out, err := os.Create(extractionPath)
		if err != nil {
			return fmt.Errorf("extract: create %s: %w", extractionPath, err)
		}
		defer out.Close()
		if err := extractor.SaveExtraction(out, painted); err != nil {
			return fmt.Errorf("extract: save extraction: %w", err)
		}

		common.Info("Wrote extracted layout to %s", extractionPath)
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVar(&libraryPath, "library", "library.yaml", "cell library document")
	extractCmd.Flags().StringVar(&placementsPath, "placements", "placements.json", "input placements document")
	extractCmd.Flags().StringVar(&routingsPath, "routings", "routing.json", "input routing document")
	extractCmd.Flags().StringVar(&extractionPath, "extraction", "extraction.json", "output extraction document")
	extractCmd.Flags().StringVar(&worldPath, "world", "", "target world directory for the external voxel-world writer")
}

// GetCommand returns the extract command for registration with root.
func GetCommand() *cobra.Command {
	return extractCmd
}
