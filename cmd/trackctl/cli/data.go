package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Capture and inspect dataset schemas",
}

var dataLogCmd = &cobra.Command{
	Use:   "log <run-id> <csv-file>",
	Short: "Capture the schema of a CSV dataset for a run",
	Args:  cobra.ExactArgs(2),
	RunE:  runDataLog,
}

var dataGetCmd = &cobra.Command{
	Use:   "get <run-id>",
	Short: "Show the captured dataset schema of a run",
	Args:  cobra.ExactArgs(1),
	RunE:  runDataGet,
}

func init() {
	rootCmd.AddCommand(dataCmd)
	dataCmd.AddCommand(dataLogCmd)
	dataCmd.AddCommand(dataGetCmd)
}

func runDataLog(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[1])
	if err != nil {
		return err
	}
	defer f.Close()

	schema, err := newClient().LogData(context.Background(), args[0], f)
	if err != nil {
		return err
	}
	return printJson(schema)
}

func runDataGet(cmd *cobra.Command, args []string) error {
	schema, err := newClient().GetDataSchema(context.Background(), args[0])
	if err != nil {
		return err
	}
	return printJson(schema)
}
