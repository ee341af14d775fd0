package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var paramCmd = &cobra.Command{
	Use:   "param",
	Short: "Append run hyperparameters",
}

var paramLogCmd = &cobra.Command{
	Use:   "log <run-id>",
	Short: "Append a hyperparameter to a run",
	Args:  cobra.ExactArgs(1),
	RunE:  runParamLog,
}

// Flags
var (
	paramName  string
	paramValue string
)

func init() {
	rootCmd.AddCommand(paramCmd)
	paramCmd.AddCommand(paramLogCmd)

	paramLogCmd.Flags().StringVar(&paramName, "name", "", "hyperparameter name, e.g. lr")
	paramLogCmd.Flags().StringVar(&paramValue, "value", "", "hyperparameter value, as text")
	paramLogCmd.MarkFlagRequired("name")
	paramLogCmd.MarkFlagRequired("value")
}

func runParamLog(cmd *cobra.Command, args []string) error {
	if err := newClient().LogHyperParameter(context.Background(), args[0], paramName, paramValue); err != nil {
		return err
	}
	fmt.Printf("logged %s=%s for run %s\n", paramName, paramValue, args[0])
	return nil
}
