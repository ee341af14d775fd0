package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var experimentCmd = &cobra.Command{
	Use:   "experiment",
	Short: "Manage experiments",
}

var experimentCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Register an experiment (idempotent)",
	Args:  cobra.ExactArgs(1),
	RunE:  runExperimentCreate,
}

var experimentGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Show an experiment and its run ids",
	Args:  cobra.ExactArgs(1),
	RunE:  runExperimentGet,
}

func init() {
	rootCmd.AddCommand(experimentCmd)
	experimentCmd.AddCommand(experimentCreateCmd)
	experimentCmd.AddCommand(experimentGetCmd)
}

func runExperimentCreate(cmd *cobra.Command, args []string) error {
	summary, err := newClient().RegisterExperiment(context.Background(), args[0])
	if err != nil {
		return err
	}
	return printJson(summary)
}

func runExperimentGet(cmd *cobra.Command, args []string) error {
	detail, err := newClient().GetExperiment(context.Background(), args[0])
	if err != nil {
		return err
	}
	return printJson(detail)
}
