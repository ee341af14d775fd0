package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/opst/trackfab/pkg/auth"
	"github.com/opst/trackfab/pkg/client"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administrative operations",
}

var adminTokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an admin token",
	Long: `Issue an admin token signed with the server's admin token key.

The key must be the same "adminTokenKey" the server is configured with.`,
	RunE: runAdminToken,
}

var adminCleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Remove every tracked record",
	RunE:  runAdminCleanup,
}

// Flags
var (
	adminKey      string
	adminTokenTTL time.Duration
	adminToken    string
)

func init() {
	rootCmd.AddCommand(adminCmd)
	adminCmd.AddCommand(adminTokenCmd)
	adminCmd.AddCommand(adminCleanupCmd)

	adminTokenCmd.Flags().StringVar(&adminKey, "key", "", "admin token key of the server")
	adminTokenCmd.Flags().DurationVar(&adminTokenTTL, "ttl", time.Hour, "token lifetime")
	adminTokenCmd.MarkFlagRequired("key")

	adminCleanupCmd.Flags().StringVar(&adminToken, "token", "", "admin token (see: trackctl admin token)")
	adminCleanupCmd.MarkFlagRequired("token")
}

func runAdminToken(cmd *cobra.Command, args []string) error {
	token, err := auth.IssueAdminToken([]byte(adminKey), adminTokenTTL)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}

func runAdminCleanup(cmd *cobra.Command, args []string) error {
	result, err := newClient(client.WithAdminToken(adminToken)).CleanupRecords(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("removed %d records\n", result.RemovedRecords)
	return nil
}
