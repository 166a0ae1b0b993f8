package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cpu-scheduling-simulator/internal/generator"
	"cpu-scheduling-simulator/internal/report"
	"cpu-scheduling-simulator/internal/requests"
	"cpu-scheduling-simulator/internal/responses"
	"cpu-scheduling-simulator/internal/schedulers"
)

type runOptions struct {
	input      string
	processes  int
	seed       int64
	algorithms []string
	quantum    int
	levels     []int
	jsonOutput bool
}

func newRunCmd(root *rootOptions) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Schedule one batch of processes under the selected policies",
		Long: `Schedule one batch of processes under the selected policies.

The batch comes from --input (YAML, or JSON for .json files) or, without it,
is generated from --processes and --seed. Every policy sees the same batch.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := opts.workload()
			if err != nil {
				return err
			}

			// Flags win over the workload file, which wins over config.
			if cmd.Flags().Changed("algorithms") {
				request.Algorithms = opts.algorithms
			}
			if cmd.Flags().Changed("quantum") {
				request.TimeQuantum = opts.quantum
			}
			if cmd.Flags().Changed("levels") {
				request.LevelsTimeQuantum = opts.levels
			}
			schedulerOptions := schedulers.Options{
				TimeQuantum:       root.config.RoundRobinTimeQuantum,
				LevelsTimeQuantum: root.config.MultilevelFeedbackQueueLevelsTimeQuantum,
			}
			if request.TimeQuantum != 0 {
				schedulerOptions.TimeQuantum = request.TimeQuantum
			}
			if len(request.LevelsTimeQuantum) > 0 {
				schedulerOptions.LevelsTimeQuantum = request.LevelsTimeQuantum
			}

			algs, err := schedulers.ParseAlgorithms(request.Algorithms)
			if err != nil {
				return err
			}
			results, err := schedulers.ScheduleAll(request.Processes(), algs, schedulerOptions)
			if err != nil {
				return err
			}
			logrus.WithField("processes", len(request.Jobs)).Infof("scheduled %d policies", len(algs))

			all := responses.AllSchedulesResponse{Results: make([]responses.ScheduleResponse, len(results))}
			for i, result := range results {
				all.Results[i] = schedulers.GenerateResponse(algs[i], result)
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(all)
			}
			for i, resp := range all.Results {
				report.Render(out, algs[i].Title(), resp)
			}
			if len(all.Results) > 1 {
				report.RenderComparison(out, all.Results)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.input, "input", "", "Workload file (YAML, or JSON when the name ends in .json)")
	cmd.Flags().IntVar(&opts.processes, "processes", 5, "Number of processes to generate when no --input is given")
	cmd.Flags().Int64Var(&opts.seed, "seed", 42, "Seed for process generation")
	cmd.Flags().StringSliceVar(&opts.algorithms, "algorithms", nil, "Comma-separated policies (fifo, fcfs, sjf, stcf, rr, mlfq); default all")
	cmd.Flags().IntVar(&opts.quantum, "quantum", 0, "Round robin time quantum (default from config)")
	cmd.Flags().IntSliceVar(&opts.levels, "levels", nil, "Comma-separated MLFQ level quanta, 0 = run to completion (default from config)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Print results as JSON instead of tables")
	return cmd
}

func (o *runOptions) workload() (*requests.ScheduleRequests, error) {
	if o.input != "" {
		request, err := requests.LoadScheduleRequests(o.input)
		if err != nil {
			return nil, err
		}
		logrus.WithField("path", o.input).Debugf("loaded %d jobs", len(request.Jobs))
		return request, nil
	}
	processes, err := generator.Generate(o.processes, generator.NewRand(o.seed))
	if err != nil {
		return nil, fmt.Errorf("generate workload: %w", err)
	}
	logrus.WithField("seed", o.seed).Debugf("generated %d processes", len(processes))
	return requests.FromProcesses(processes), nil
}
