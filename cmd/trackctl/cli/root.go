package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opst/trackfab/pkg/client"
)

var rootCmd = &cobra.Command{
	Use:   "trackctl",
	Short: "Track machine learning experiments, runs and their metadata",
	Long: `trackctl talks to a trackfab API server.

Register experiments and runs, append metrics and hyperparameters,
log evaluation artifacts and inspect what has been tracked.`,
}

var server string

func init() {
	defaultServer := os.Getenv("TRACKFAB_SERVER")
	if defaultServer == "" {
		defaultServer = "http://localhost:8080"
	}
	rootCmd.PersistentFlags().StringVar(
		&server, "server", defaultServer,
		"base URL of the trackfab API server (env: TRACKFAB_SERVER)",
	)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newClient(options ...client.Option) *client.TrackClient {
	return client.New(server, options...)
}

func printJson(v any) error {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(payload))
	return nil
}
