package route

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/qmn/pershing/pkg/cell"
	"github.com/qmn/pershing/pkg/common"
	"github.com/qmn/pershing/pkg/config"
	"github.com/qmn/pershing/pkg/placer"
	"github.com/qmn/pershing/pkg/router"
	"github.com/qmn/pershing/pkg/ui"
)

var (
	libraryPath    string
	placementsPath string
	routingsPath   string
	seed           int64
)

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Route nets between placed pins",
	Long: `Route reads a placements document and a cell library, runs Lee's maze
routing with rip-up-and-reroute, and writes the resulting routing to a
routing.json document.

Examples:
  pershing route --placements placements.json --library library.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		common.Info("Loading cell library from %s", libraryPath)
		libFile, err := os.Open(libraryPath)
		if err != nil {
			return fmt.Errorf("route: open library: %w", err)
		}
		defer libFile.Close()
		lib, err := cell.LoadLibrary(libFile)
		if err != nil {
			return fmt.Errorf("route: load library: %w", err)
		}
		cells := cell.Pregenerate(lib)

		common.Info("Loading placements from %s", placementsPath)
		plFile, err := os.Open(placementsPath)
		if err != nil {
			return fmt.Errorf("route: open placements: %w", err)
		}
		defer plFile.Close()
		placements, dims, err := placer.LoadPlacements(plFile)
		if err != nil {
			return fmt.Errorf("route: load placements: %w", err)
		}

		pl := placer.NewPlacer(cells, config.DefaultPlacerConfig(), rand.New(rand.NewSource(seed)))
		layout, err := pl.PlacementToLayout(dims, placements)
		if err != nil {
			return fmt.Errorf("route: render placement layout: %w", err)
		}

		r := router.NewRouter(cells, config.DefaultRouterConfig(), dims, rand.New(rand.NewSource(seed)))

		spin := ui.NewSpinner("routing nets...")
		spin.Start()
		routing, err := r.Route(placements, layout, dims, nil)
		spin.Stop()
		if err != nil {
			return fmt.Errorf("route: %w", err)
		}

		out, err := os.Create(routingsPath)
		if err != nil {
			return fmt.Errorf("route: create %s: %w", routingsPath, err)
		}
		defer out.Close()
		if err := router.SaveRouting(out, routing, dims); err != nil {
			return fmt.Errorf("route: save routing: %w", err)
		}

		common.Info("Routed %d nets to %s", len(routing), routingsPath)
		return nil
	},
}

func init() {
	routeCmd.Flags().StringVar(&libraryPath, "library", "library.yaml", "cell library document")
	routeCmd.Flags().StringVar(&placementsPath, "placements", "placements.json", "input placements document")
	routeCmd.Flags().StringVar(&routingsPath, "routings", "routing.json", "output routing document")
	routeCmd.Flags().Int64Var(&seed, "seed", 1, "seed for the rip-up-and-reroute natural-selection draws")
}

// GetCommand returns the route command for registration with root.
func GetCommand() *cobra.Command {
	return routeCmd
}
