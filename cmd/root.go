package cmd

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qmn/pershing/cmd/clean"
	"github.com/qmn/pershing/cmd/extract"
	"github.com/qmn/pershing/cmd/place"
	"github.com/qmn/pershing/cmd/route"
	"github.com/qmn/pershing/cmd/run"
	"github.com/qmn/pershing/cmd/timing"
	"github.com/qmn/pershing/pkg/common"
)

var (
	// Global flags
	verbose    bool
	workers    string
	workingDir string

	// Parsed workers value
	WorkersCount int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pershing",
	Short: "Place and route gate-level netlists into 3D redstone layouts",
	Long: `Pershing converts a BLIF gate-level netlist into a placed, routed, and
extracted 3D conductor layout, driven by a structured cell-library
document describing each gate's physical template.

It provides commands for:
  - Placing cell instances with simulated annealing
  - Routing nets between placed pins and clearing proximity violations
  - Extracting wire/repeater/via primitives and painting the final layout
  - Reporting combinational critical-path timing
  - Running the full place -> route -> extract -> timing pipeline`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		common.VerboseEnabled = verbose

		count, err := parseWorkers(workers)
		if err != nil {
			return fmt.Errorf("invalid --workers value: %w", err)
		}
		WorkersCount = count
		common.Verbose("Workers: %d (from flag: %s)", WorkersCount, workers)

		if workingDir != "" {
			common.Verbose("Changing working directory to: %s", workingDir)
			if err := os.Chdir(workingDir); err != nil {
				return fmt.Errorf("failed to change working directory: %w", err)
			}
		}

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output for debugging")
	rootCmd.PersistentFlags().StringVarP(&workers, "workers", "j", "half", "number of concurrent workers (integer, 'half', or 'full') -- reserved for future parallel rip-up-and-reroute batches")
	rootCmd.PersistentFlags().StringVarP(&workingDir, "working-dir", "w", "", "working directory for relative paths (default: current directory)")

	// Register subcommands
	rootCmd.AddCommand(place.GetCommand())
	rootCmd.AddCommand(route.GetCommand())
	rootCmd.AddCommand(extract.GetCommand())
	rootCmd.AddCommand(timing.GetCommand())
	rootCmd.AddCommand(run.GetCommand())
	rootCmd.AddCommand(clean.GetCommand())
}

// parseWorkers parses the workers flag value.
// Accepts: "full" -> NumCPU(), "half" -> NumCPU()/2, or integer string -> that value.
func parseWorkers(value string) (int, error) {
	value = strings.TrimSpace(strings.ToLower(value))

	switch value {
	case "full":
		return runtime.NumCPU(), nil
	case "half":
		count := runtime.NumCPU() / 2
		if count < 1 {
			count = 1
		}
		return count, nil
	default:
		count, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("must be 'full', 'half', or a positive integer (got: %s)", value)
		}
		if count < 1 {
			return 0, fmt.Errorf("must be at least 1 (got: %d)", count)
		}
		return count, nil
	}
}
