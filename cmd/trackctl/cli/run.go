package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apirun "github.com/opst/trackfab/pkg/api/types/runs"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Manage runs",
}

var runCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a run in an experiment",
	RunE:  runRunCreate,
}

var runGetCmd = &cobra.Command{
	Use:   "get <run-id-or-commit-hash>",
	Short: "Show a run with its metrics and hyperparameters",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunGet,
}

var runTrainingTimeCmd = &cobra.Command{
	Use:   "trainingtime <run-id>",
	Short: "Record the training wall time of a run",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunTrainingTime,
}

// Flags
var (
	runExperimentId   string
	runExperimentName string
	runCommitSHA      string
	trainingSeconds   float64
)

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.AddCommand(runCreateCmd)
	runCmd.AddCommand(runGetCmd)
	runCmd.AddCommand(runTrainingTimeCmd)

	runCreateCmd.Flags().StringVar(&runExperimentId, "experiment-id", "", "experiment id the run belongs to")
	runCreateCmd.Flags().StringVar(&runExperimentName, "experiment", "", "experiment name (registered on the fly when new)")
	runCreateCmd.Flags().StringVar(&runCommitSHA, "commit", "", "commit hash of the code being trained")

	runTrainingTimeCmd.Flags().Float64Var(&trainingSeconds, "seconds", 0, "training wall time in seconds")
	runTrainingTimeCmd.MarkFlagRequired("seconds")
}

func runRunCreate(cmd *cobra.Command, args []string) error {
	if runExperimentId == "" && runExperimentName == "" {
		return fmt.Errorf("either --experiment-id or --experiment is required")
	}

	detail, err := newClient().RegisterRun(context.Background(), apirun.Spec{
		ExperimentId:   runExperimentId,
		ExperimentName: runExperimentName,
		CommitSHA:      runCommitSHA,
	})
	if err != nil {
		return err
	}
	return printJson(detail)
}

func runRunGet(cmd *cobra.Command, args []string) error {
	detail, err := newClient().GetRun(context.Background(), args[0])
	if err != nil {
		return err
	}
	return printJson(detail)
}

func runRunTrainingTime(cmd *cobra.Command, args []string) error {
	if err := newClient().SetTrainingTime(context.Background(), args[0], trainingSeconds); err != nil {
		return err
	}
	fmt.Printf("recorded %.3fs for run %s\n", trainingSeconds, args[0])
	return nil
}
