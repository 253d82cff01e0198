// mapairy sweeps the Map-Airy distribution evaluators over their
// documented operating ranges and writes the results as CSV files.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	var outDir string

	root := &cobra.Command{
		Use:           "mapairy",
		Short:         "Map-Airy distribution evaluation sweeps",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	sweep := &cobra.Command{
		Use:   "sweep",
		Short: "write pdf, cdf and quantile sweeps as CSV files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweeps(logger, outDir)
		},
	}
	sweep.Flags().StringVarP(&outDir, "out", "o", "results", "output directory for CSV files")
	root.AddCommand(sweep)

	if err := root.Execute(); err != nil {
		logger.Error("sweep failed", zap.Error(err))
		os.Exit(1)
	}
}
