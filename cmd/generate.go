package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"cpu-scheduling-simulator/internal/generator"
	"cpu-scheduling-simulator/internal/requests"
)

func newGenerateCmd(_ *rootOptions) *cobra.Command {
	var (
		count int
		seed  int64
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a random workload as YAML, ready for run --input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			processes, err := generator.Generate(count, generator.NewRand(seed))
			if err != nil {
				return err
			}
			return requests.WriteYAML(cmd.OutOrStdout(), requests.FromProcesses(processes))
		},
	}
	cmd.Flags().IntVar(&count, "count", 5, "Number of processes")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed (default: current time)")
	return cmd
}
