package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the reminder daemon.",
	Long:  `Stop the reminder daemon, escalating to a forced kill if it does not exit cleanly.`,
	RunE:  runStop,
}

func init() {
	rootCmd.AddCommand(stopCmd)
}

func runStop(cmd *cobra.Command, args []string) error {
	sup, err := newSupervisor()
	if err != nil {
		return err
	}

	if err := sup.Stop(); err != nil {
		return err
	}

	fmt.Println("Daemon stopped.")
	return nil
}
