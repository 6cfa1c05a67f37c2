package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive menu over the daemon controls.",
	RunE:  runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

func runMenu(cmd *cobra.Command, args []string) error {
	for {
		var choice string
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("hydrate").
					Options(
						huh.NewOption("Start daemon", "start"),
						huh.NewOption("Stop daemon", "stop"),
						huh.NewOption("Restart daemon", "restart"),
						huh.NewOption("Show status", "status"),
						huh.NewOption("Show logs", "logs"),
						huh.NewOption("Send a test reminder", "test"),
						huh.NewOption("Edit settings", "config"),
						huh.NewOption("Quit", "quit"),
					).
					Value(&choice),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}

		var err error
		switch choice {
		case "start":
			err = runStart(cmd, nil)
		case "stop":
			err = runStop(cmd, nil)
		case "restart":
			err = runRestart(cmd, nil)
		case "status":
			err = runStatus(cmd, nil)
		case "logs":
			err = runLogs(cmd, nil)
		case "test":
			err = runTest(cmd, nil)
		case "config":
			err = runConfig(cmd, nil)
		case "quit":
			return nil
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		fmt.Println()
	}
}
