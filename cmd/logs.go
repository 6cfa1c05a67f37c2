package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hydrate-cli/hydrate/internal/logbook"
)

var logsReminders bool

var logsCmd = &cobra.Command{
	Use:   "logs [n]",
	Short: "Show the last daemon log lines.",
	Long:  `Show the last n lines (default 20) of the daemon lifecycle log.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLogs,
}

func init() {
	logsCmd.Flags().BoolVar(&logsReminders, "reminders", false, "Show the fired-reminder log instead of the lifecycle log.")
	rootCmd.AddCommand(logsCmd)
}

func runLogs(cmd *cobra.Command, args []string) error {
	n := logbook.DefaultTailLines
	if len(args) == 1 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 1 {
			return fmt.Errorf("invalid line count %q", args[0])
		}
		n = v
	}

	var lines []string
	if logsReminders {
		lb, err := reminderLogbook()
		if err != nil {
			return err
		}
		if lines, err = lb.Tail(n); err != nil {
			return err
		}
	} else {
		sup, err := newSupervisor()
		if err != nil {
			return err
		}
		if lines, err = sup.Logs(n); err != nil {
			return err
		}
	}

	for _, line := range lines {
		fmt.Println(line)
	}
	return nil
}
