package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var restartCmd = &cobra.Command{
	Use:   "restart",
	Short: "Restart the reminder daemon.",
	Long:  `Stop the reminder daemon if it is running, then start a fresh one.`,
	RunE:  runRestart,
}

func init() {
	rootCmd.AddCommand(restartCmd)
}

func runRestart(cmd *cobra.Command, args []string) error {
	sup, err := newSupervisor()
	if err != nil {
		return err
	}

	pid, err := sup.Restart()
	if err != nil {
		return err
	}

	fmt.Printf("Daemon restarted (pid %d).\n", pid)
	return nil
}
