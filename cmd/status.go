package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the daemon is running.",
	Long:  `Show whether the daemon is running, along with the current settings.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	sup, err := newSupervisor()
	if err != nil {
		return err
	}

	st := sup.Status()
	if !st.Running {
		fmt.Println("Daemon is not running.")
		return nil
	}

	fmt.Println("Daemon is running.")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "  PID:\t%d\n", st.PID)
	if st.Executable != "" {
		fmt.Fprintf(w, "  Process:\t%s\n", st.Executable)
	}
	if !st.StartedAt.IsZero() {
		fmt.Fprintf(w, "  Uptime:\t%s\n", time.Since(st.StartedAt).Round(time.Second))
	}

	if store, err := newConfigStore(); err == nil {
		if cfg, err := store.Load(); err == nil {
			fmt.Fprintf(w, "  Interval:\t%d min\n", cfg.IntervalMinutes)
			fmt.Fprintf(w, "  Sound:\t%t\n", cfg.SoundEnabled)
			msg := cfg.CustomMessage
			if msg == "" {
				msg = "(random built-in)"
			}
			fmt.Fprintf(w, "  Message:\t%s\n", msg)
			fmt.Fprintf(w, "  Icon:\t%s\n", cfg.IconPath)
		}
	}
	return w.Flush()
}
