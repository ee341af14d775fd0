package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var metricCmd = &cobra.Command{
	Use:   "metric",
	Short: "Append and list run metrics",
}

var metricLogCmd = &cobra.Command{
	Use:   "log <run-id>",
	Short: "Append a metric observation to a run",
	Args:  cobra.ExactArgs(1),
	RunE:  runMetricLog,
}

var metricListCmd = &cobra.Command{
	Use:   "list <run-id>",
	Short: "List the metrics of a run in logged order",
	Args:  cobra.ExactArgs(1),
	RunE:  runMetricList,
}

// Flags
var (
	metricName  string
	metricValue float64
)

func init() {
	rootCmd.AddCommand(metricCmd)
	metricCmd.AddCommand(metricLogCmd)
	metricCmd.AddCommand(metricListCmd)

	metricLogCmd.Flags().StringVar(&metricName, "name", "", "metric name, e.g. accuracy")
	metricLogCmd.Flags().Float64Var(&metricValue, "value", 0, "observed value")
	metricLogCmd.MarkFlagRequired("name")
	metricLogCmd.MarkFlagRequired("value")
}

func runMetricLog(cmd *cobra.Command, args []string) error {
	if err := newClient().LogMetric(context.Background(), args[0], metricName, metricValue); err != nil {
		return err
	}
	fmt.Printf("logged %s=%v for run %s\n", metricName, metricValue, args[0])
	return nil
}

func runMetricList(cmd *cobra.Command, args []string) error {
	metrics, err := newClient().GetMetrics(context.Background(), args[0])
	if err != nil {
		return err
	}
	return printJson(metrics)
}
