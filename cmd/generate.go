package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jugglefest/jugglefest/fest/festfile"
)

var (
	// CLI flags for the generate command
	genConfig festfile.GenerateConfig
	genOutput string // Destination file; stdout when empty
)

// generateCmd writes a random fest in the input format
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a random fest input file",
	Run: func(cmd *cobra.Command, args []string) {
		f, err := festfile.Generate(genConfig)
		if err != nil {
			logrus.Fatalf("Generation failed: %v", err)
		}

		out := os.Stdout
		if genOutput != "" {
			out, err = os.Create(genOutput)
			if err != nil {
				logrus.Fatalf("Failed to create %s: %v", genOutput, err)
			}
			defer out.Close()
		}
		if err := festfile.WriteFest(out, f.Circuits, f.Jugglers); err != nil {
			logrus.Fatalf("Failed to write fest: %v", err)
		}
		logrus.Infof("Generated %d circuits and %d jugglers (seed %d)", f.Circuits.Len(), len(f.Jugglers), genConfig.Seed)
	},
}

// init sets up CLI flags for the generate command
func init() {
	generateCmd.Flags().Int64Var(&genConfig.Seed, "seed", 42, "Seed for random fest generation")
	generateCmd.Flags().IntVar(&genConfig.Circuits, "circuits", 2000, "Number of circuits")
	generateCmd.Flags().IntVar(&genConfig.Jugglers, "jugglers", 12000, "Number of jugglers")
	generateCmd.Flags().IntVar(&genConfig.Preferences, "preferences", 10, "Preferred circuits per juggler")
	generateCmd.Flags().IntVar(&genConfig.MaxSkill, "max-skill", 10, "Largest skill rating")
	generateCmd.Flags().IntVar(&genConfig.Dimensions, "dimensions", 0, "Skill dimensions (0 = H, E, P)")
	generateCmd.Flags().StringVar(&genOutput, "output", "", "Path to write the fest to (default stdout)")
}
