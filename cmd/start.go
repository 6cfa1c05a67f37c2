package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the reminder daemon.",
	Long:  `Start the reminder daemon as a detached background process.`,
	RunE:  runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	sup, err := newSupervisor()
	if err != nil {
		return err
	}

	pid, err := sup.Start()
	if err != nil {
		return err
	}

	fmt.Printf("Daemon started (pid %d).\n", pid)
	return nil
}
