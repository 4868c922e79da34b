package clean

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/qmn/pershing/pkg/common"
)

var outputDir string

// artifactNames are the files a place/route/extract/run invocation may
// have written into --output-dir.
var artifactNames = []string{"placements.json", "routing.json", "extraction.json"}

// cleanCmd represents the clean command
var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove generated pipeline artifacts",
	Long: `Remove the placements, routing, and extraction documents a previous
place/route/extract/run invocation wrote into --output-dir.

This is a destructive operation. Use with caution.

Examples:
  pershing clean
  pershing clean --output-dir build/ --verbose`,
	RunE: func(cmd *cobra.Command, args []string) error {
		common.Info("Cleaning generated artifacts in %s...", outputDir)

		removed := 0
		for _, name := range artifactNames {
			path := filepath.Join(outputDir, name)
			common.Verbose("Removing %s", path)
			if err := os.Remove(path); err != nil {
				if os.IsNotExist(err) {
					continue
				}
				return fmt.Errorf("clean failed: %w", err)
			}
			removed++
		}

		common.Info("Removed %d generated artifact(s)", removed)
		return nil
	},
}

func init() {
	cleanCmd.Flags().StringVar(&outputDir, "output-dir", ".", "directory generated artifacts were written to")
}

// GetCommand returns the clean command for registration with root
func GetCommand() *cobra.Command {
	return cleanCmd
}
