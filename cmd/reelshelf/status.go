package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show server and session status",
	Args:  cobra.NoArgs,
	RunE:  runStatusCmd,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatusCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)

	status, err := client.Status()
	if err != nil {
		return fmt.Errorf("status check failed: %w", err)
	}
	session, err := client.Session()
	if err != nil {
		return fmt.Errorf("session lookup failed: %w", err)
	}

	if jsonOutput {
		printJSON(map[string]any{
			"status":  status,
			"session": session,
		})
		return nil
	}

	fmt.Printf("reelshelf v%s | Server: %s | %s\n\n", status.Version, serverURL, status.Status)
	fmt.Println("Session")
	fmt.Printf("  ID:       %s\n", session.ID)
	fmt.Printf("  View:     %s\n", session.View)
	if session.Query != "" {
		fmt.Printf("  Query:    %q\n", session.Query)
	} else {
		fmt.Println("  Query:    (none)")
	}
	fmt.Printf("  Entries:  %d\n", status.Entries)
	return nil
}
